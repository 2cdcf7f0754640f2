package sport

import (
	"strings"
	"time"
)

// Sport is a lookup dimension referenced by courts.
type Sport struct {
	ID         string    `firestore:"id" json:"id"`
	Name       string    `firestore:"name" json:"name"`
	Category   string    `firestore:"category,omitempty" json:"category,omitempty"`
	Difficulty string    `firestore:"difficulty,omitempty" json:"difficulty,omitempty"`
	AgeGroup   string    `firestore:"ageGroup,omitempty" json:"ageGroup,omitempty"`
	Equipment  []string  `firestore:"equipment" json:"equipment"`
	Rules      []string  `firestore:"rules" json:"rules"`
	Active     bool      `firestore:"active" json:"active"`
	CreatedAt  time.Time `firestore:"createdAt" json:"createdAt"`
	UpdatedAt  time.Time `firestore:"updatedAt" json:"updatedAt"`
}

type CreateSportInput struct {
	Name       string   `json:"name"`
	Category   string   `json:"category,omitempty"`
	Difficulty string   `json:"difficulty,omitempty"`
	AgeGroup   string   `json:"ageGroup,omitempty"`
	Equipment  []string `json:"equipment,omitempty"`
	Rules      []string `json:"rules,omitempty"`
}

func (in *CreateSportInput) Trim() {
	in.Name = strings.TrimSpace(in.Name)
	in.Category = strings.TrimSpace(in.Category)
	in.Difficulty = strings.TrimSpace(in.Difficulty)
	in.AgeGroup = strings.TrimSpace(in.AgeGroup)
}

type UpdateSportInput struct {
	Name       *string   `json:"name,omitempty"`
	Category   *string   `json:"category,omitempty"`
	Difficulty *string   `json:"difficulty,omitempty"`
	AgeGroup   *string   `json:"ageGroup,omitempty"`
	Equipment  *[]string `json:"equipment,omitempty"`
	Rules      *[]string `json:"rules,omitempty"`
}
