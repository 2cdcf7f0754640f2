package academy

import (
	"strings"
	"time"
)

type Academy struct {
	ID         string   `firestore:"id" json:"id"`
	Name       string   `firestore:"name" json:"name"`
	Type       string   `firestore:"type,omitempty" json:"type,omitempty"`
	Rating     float64  `firestore:"rating" json:"rating"` // 0-5
	Email      string   `firestore:"email" json:"email"`
	Phone      string   `firestore:"phone,omitempty" json:"phone,omitempty"`
	Location   string   `firestore:"location" json:"location"`
	Capacity   int      `firestore:"capacity,omitempty" json:"capacity,omitempty"`
	OpenTime   string   `firestore:"openTime,omitempty" json:"openTime,omitempty"`
	CloseTime  string   `firestore:"closeTime,omitempty" json:"closeTime,omitempty"`
	Facilities []string `firestore:"facilities" json:"facilities"`

	// Programs are embedded in the academy document. There is no per-program
	// document on the remote side; any program mutation rewrites the full list.
	Programs []Program `firestore:"programs" json:"programs"`

	CreatedAt time.Time `firestore:"createdAt" json:"createdAt"`
	UpdatedAt time.Time `firestore:"updatedAt" json:"updatedAt"`
}

type Program struct {
	ID       string   `firestore:"id" json:"id"`
	Name     string   `firestore:"name" json:"name"`
	Category string   `firestore:"category,omitempty" json:"category,omitempty"`
	AgeGroup string   `firestore:"ageGroup,omitempty" json:"ageGroup,omitempty"`
	Duration string   `firestore:"duration,omitempty" json:"duration,omitempty"`
	Price    float64  `firestore:"price" json:"price"`
	Capacity int      `firestore:"capacity,omitempty" json:"capacity,omitempty"`
	Days     []string `firestore:"days" json:"days"`
	// One or more time-of-day slots per selected day, keyed by weekday name.
	TimeSlots map[string][]TimeSlot `firestore:"timeSlots" json:"timeSlots"`
	Coaches   []string              `firestore:"coaches" json:"coaches"`
}

type TimeSlot struct {
	Start string `firestore:"start" json:"start"` // "HH:MM"
	End   string `firestore:"end" json:"end"`
}

type CreateAcademyInput struct {
	Name       string   `json:"name"`
	Type       string   `json:"type,omitempty"`
	Email      string   `json:"email"`
	Phone      string   `json:"phone,omitempty"`
	Location   string   `json:"location"`
	Capacity   int      `json:"capacity,omitempty"`
	OpenTime   string   `json:"openTime,omitempty"`
	CloseTime  string   `json:"closeTime,omitempty"`
	Facilities []string `json:"facilities,omitempty"`
}

func (in *CreateAcademyInput) Trim() {
	in.Name = strings.TrimSpace(in.Name)
	in.Type = strings.TrimSpace(in.Type)
	in.Email = strings.TrimSpace(in.Email)
	in.Phone = strings.TrimSpace(in.Phone)
	in.Location = strings.TrimSpace(in.Location)
}

type UpdateAcademyInput struct {
	Name       *string   `json:"name,omitempty"`
	Type       *string   `json:"type,omitempty"`
	Email      *string   `json:"email,omitempty"`
	Phone      *string   `json:"phone,omitempty"`
	Location   *string   `json:"location,omitempty"`
	Capacity   *int      `json:"capacity,omitempty"`
	OpenTime   *string   `json:"openTime,omitempty"`
	CloseTime  *string   `json:"closeTime,omitempty"`
	Rating     *float64  `json:"rating,omitempty"`
	Facilities *[]string `json:"facilities,omitempty"`
}

type ProgramInput struct {
	Name      string                `json:"name"`
	Category  string                `json:"category,omitempty"`
	AgeGroup  string                `json:"ageGroup,omitempty"`
	Duration  string                `json:"duration,omitempty"`
	Price     float64               `json:"price"`
	Capacity  int                   `json:"capacity,omitempty"`
	Days      []string              `json:"days"`
	TimeSlots map[string][]TimeSlot `json:"timeSlots"`
	Coaches   []string              `json:"coaches,omitempty"`
}

func (in *ProgramInput) Trim() {
	in.Name = strings.TrimSpace(in.Name)
	in.Category = strings.TrimSpace(in.Category)
	in.AgeGroup = strings.TrimSpace(in.AgeGroup)
	in.Duration = strings.TrimSpace(in.Duration)
}
