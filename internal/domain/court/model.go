package court

import (
	"strings"
	"time"
)

const (
	StatusAvailable   = "available"
	StatusMaintenance = "maintenance"
	StatusBooked      = "booked"
)

type Court struct {
	ID         string  `firestore:"id" json:"id"`
	Name       string  `firestore:"name" json:"name"`
	Location   string  `firestore:"location" json:"location"`
	SportID    string  `firestore:"sportId" json:"sportId"`
	Surface    string  `firestore:"surface,omitempty" json:"surface,omitempty"`
	HourlyRate float64 `firestore:"hourlyRate" json:"hourlyRate"`
	Capacity   int     `firestore:"capacity,omitempty" json:"capacity,omitempty"`
	Status     string  `firestore:"status" json:"status"`

	// Keyed by weekday name ("Monday".."Sunday").
	Availability map[string]DayAvailability `firestore:"availability" json:"availability"`
	// Booking granularity in minutes.
	SlotMinutes int `firestore:"slotMinutes" json:"slotMinutes"`

	ImageURL  string `firestore:"imageUrl,omitempty" json:"imageUrl,omitempty"`
	ImagePath string `firestore:"imagePath,omitempty" json:"imagePath,omitempty"`

	CreatedAt time.Time `firestore:"createdAt" json:"createdAt"`
	UpdatedAt time.Time `firestore:"updatedAt" json:"updatedAt"`
}

type DayAvailability struct {
	Enabled bool   `firestore:"enabled" json:"enabled"`
	Open    string `firestore:"open" json:"open"`   // "HH:MM"
	Close   string `firestore:"close" json:"close"` // "HH:MM"
}

type CreateCourtInput struct {
	Name         string                     `json:"name"`
	Location     string                     `json:"location"`
	SportID      string                     `json:"sportId"`
	Surface      string                     `json:"surface,omitempty"`
	HourlyRate   float64                    `json:"hourlyRate"`
	Capacity     int                        `json:"capacity,omitempty"`
	Availability map[string]DayAvailability `json:"availability,omitempty"`
	SlotMinutes  int                        `json:"slotMinutes,omitempty"`
	ImageURL     string                     `json:"imageUrl,omitempty"`
	ImagePath    string                     `json:"imagePath,omitempty"`
}

func (in *CreateCourtInput) Trim() {
	in.Name = strings.TrimSpace(in.Name)
	in.Location = strings.TrimSpace(in.Location)
	in.SportID = strings.TrimSpace(in.SportID)
	in.Surface = strings.TrimSpace(in.Surface)
}

type UpdateCourtInput struct {
	Name         *string                     `json:"name,omitempty"`
	Location     *string                     `json:"location,omitempty"`
	SportID      *string                     `json:"sportId,omitempty"`
	Surface      *string                     `json:"surface,omitempty"`
	HourlyRate   *float64                    `json:"hourlyRate,omitempty"`
	Capacity     *int                        `json:"capacity,omitempty"`
	Availability *map[string]DayAvailability `json:"availability,omitempty"`
	SlotMinutes  *int                        `json:"slotMinutes,omitempty"`
	ImageURL     *string                     `json:"imageUrl,omitempty"`
	ImagePath    *string                     `json:"imagePath,omitempty"`
}
