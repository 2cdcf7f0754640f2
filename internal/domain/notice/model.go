package notice

import (
	"strings"
	"time"
)

const (
	TypeAnnouncement = "announcement"
	TypeEvent        = "event"
	TypeAlert        = "alert"
	TypeInfo         = "info"

	PriorityLow    = "low"
	PriorityNormal = "normal"
	PriorityHigh   = "high"
	PriorityUrgent = "urgent"

	AudienceAll       = "all"
	AudienceResidents = "residents"
	AudienceStaff     = "staff"
	AudienceSpecific  = "specific"
)

type Notice struct {
	ID       string `firestore:"id" json:"id"`
	Title    string `firestore:"title" json:"title"`
	Message  string `firestore:"message" json:"message"`
	Type     string `firestore:"type" json:"type"`
	Priority string `firestore:"priority" json:"priority"`

	Audience string `firestore:"audience" json:"audience"`
	// Populated only when audience is "specific".
	UserIDs []string `firestore:"userIds" json:"userIds"`

	ScheduledAt *time.Time `firestore:"scheduledAt,omitempty" json:"scheduledAt,omitempty"`
	ExpiresAt   *time.Time `firestore:"expiresAt,omitempty" json:"expiresAt,omitempty"`
	Active      bool       `firestore:"active" json:"active"`

	ActionLabel string `firestore:"actionLabel,omitempty" json:"actionLabel,omitempty"`
	ActionURL   string `firestore:"actionUrl,omitempty" json:"actionUrl,omitempty"`

	CreatedAt time.Time `firestore:"createdAt" json:"createdAt"`
	UpdatedAt time.Time `firestore:"updatedAt" json:"updatedAt"`
}

// VisibleAt reports whether the notice should be shown at the given time:
// active, past its schedule, and not expired.
func (n *Notice) VisibleAt(at time.Time) bool {
	if !n.Active {
		return false
	}
	if n.ScheduledAt != nil && at.Before(*n.ScheduledAt) {
		return false
	}
	if n.ExpiresAt != nil && !at.Before(*n.ExpiresAt) {
		return false
	}
	return true
}

type CreateNoticeInput struct {
	Title       string     `json:"title"`
	Message     string     `json:"message"`
	Type        string     `json:"type,omitempty"`
	Priority    string     `json:"priority,omitempty"`
	Audience    string     `json:"audience,omitempty"`
	UserIDs     []string   `json:"userIds,omitempty"`
	ScheduledAt *time.Time `json:"scheduledAt,omitempty"`
	ExpiresAt   *time.Time `json:"expiresAt,omitempty"`
	ActionLabel string     `json:"actionLabel,omitempty"`
	ActionURL   string     `json:"actionUrl,omitempty"`
}

type UpdateNoticeInput struct {
	Title       *string    `json:"title,omitempty"`
	Message     *string    `json:"message,omitempty"`
	Priority    *string    `json:"priority,omitempty"`
	ScheduledAt *time.Time `json:"scheduledAt,omitempty"`
	ExpiresAt   *time.Time `json:"expiresAt,omitempty"`
	ActionLabel *string    `json:"actionLabel,omitempty"`
	ActionURL   *string    `json:"actionUrl,omitempty"`
}

func (in *CreateNoticeInput) Trim() {
	in.Title = strings.TrimSpace(in.Title)
	in.Message = strings.TrimSpace(in.Message)
	in.Type = strings.TrimSpace(in.Type)
	in.Priority = strings.TrimSpace(in.Priority)
	in.Audience = strings.TrimSpace(in.Audience)
}
