package account

import (
	"strings"
	"time"
)

// User is a platform-level account, separate from any per-project entity.
type User struct {
	ID          string `firestore:"id" json:"id"`
	AuthUID     string `firestore:"authUid" json:"authUid"`
	Email       string `firestore:"email" json:"email"`
	DisplayName string `firestore:"displayName" json:"displayName"`

	IsTemporary       bool       `firestore:"isTemporary" json:"isTemporary"`
	ValidityStartDate *time.Time `firestore:"validityStartDate,omitempty" json:"validityStartDate,omitempty"`
	ValidityEndDate   *time.Time `firestore:"validityEndDate,omitempty" json:"validityEndDate,omitempty"`
	IsExpired         bool       `firestore:"isExpired" json:"isExpired"`
	ExpiredAt         *time.Time `firestore:"expiredAt,omitempty" json:"expiredAt,omitempty"`

	IsSuspended      bool   `firestore:"isSuspended" json:"isSuspended"`
	SuspensionReason string `firestore:"suspensionReason,omitempty" json:"suspensionReason,omitempty"`

	CreatedAt time.Time `firestore:"createdAt" json:"createdAt"`
	UpdatedAt time.Time `firestore:"updatedAt" json:"updatedAt"`
}

// AccessDecision is the outcome of evaluating a user's validity window and
// suspension state at a point in time.
type AccessDecision int

const (
	AccessValid AccessDecision = iota
	AccessSuspended
	AccessExpired
	AccessNotYetActive
)

// EvaluateAccess applies the access rules in precedence order: suspension
// first, then the temporary validity window.
func EvaluateAccess(u *User, now time.Time) AccessDecision {
	if u.IsSuspended {
		return AccessSuspended
	}
	if u.IsTemporary {
		if u.ValidityEndDate != nil && now.After(*u.ValidityEndDate) {
			return AccessExpired
		}
		if u.ValidityStartDate != nil && now.Before(*u.ValidityStartDate) {
			return AccessNotYetActive
		}
	}
	return AccessValid
}

type CreateUserInput struct {
	Email                  string     `json:"email"`
	DisplayName            string     `json:"displayName"`
	SendPasswordResetEmail bool       `json:"sendPasswordResetEmail,omitempty"`
	IsTemporary            bool       `json:"isTemporary,omitempty"`
	ValidityStartDate      *time.Time `json:"validityStartDate,omitempty"`
	ValidityEndDate        *time.Time `json:"validityEndDate,omitempty"`
}

func (in *CreateUserInput) Trim() {
	in.Email = strings.TrimSpace(in.Email)
	in.DisplayName = strings.TrimSpace(in.DisplayName)
}

type CreateUserResult struct {
	Success bool   `json:"success"`
	UID     string `json:"uid"`
	Email   string `json:"email"`
	Message string `json:"message"`
}

type AccessResult struct {
	Success         bool       `json:"success"`
	IsValid         bool       `json:"isValid"`
	IsTemporary     bool       `json:"isTemporary"`
	ValidityEndDate *time.Time `json:"validityEndDate,omitempty"`
}
