package gatepass

import (
	"strings"
	"time"
)

const (
	TypeVisitor    = "visitor"
	TypeContractor = "contractor"
	TypeVendor     = "vendor"
	TypeMember     = "member"
	TypeGuest      = "guest"

	StatusActive  = "active"
	StatusUsed    = "used"
	StatusRevoked = "revoked"
)

type GatePass struct {
	ID           string     `firestore:"id" json:"id"`
	Type         string     `firestore:"type" json:"type"`
	HolderName   string     `firestore:"holderName" json:"holderName"`
	ValidFrom    time.Time  `firestore:"validFrom" json:"validFrom"`
	ValidUntil   time.Time  `firestore:"validUntil" json:"validUntil"`
	EntryAt      *time.Time `firestore:"entryAt,omitempty" json:"entryAt,omitempty"`
	ExitAt       *time.Time `firestore:"exitAt,omitempty" json:"exitAt,omitempty"`
	Status       string     `firestore:"status" json:"status"`
	AccessLevel  string     `firestore:"accessLevel,omitempty" json:"accessLevel,omitempty"`
	AllowedAreas []string   `firestore:"allowedAreas" json:"allowedAreas"`

	CreatedAt time.Time `firestore:"createdAt" json:"createdAt"`
	UpdatedAt time.Time `firestore:"updatedAt" json:"updatedAt"`
}

// CanCheckIn: only an active pass can be used. Checking in anything else is
// a no-op at the service layer.
func (p *GatePass) CanCheckIn() bool {
	return p.Status == StatusActive
}

func (p *GatePass) CanRevoke() bool {
	return p.Status == StatusActive
}

func ValidType(t string) bool {
	switch t {
	case TypeVisitor, TypeContractor, TypeVendor, TypeMember, TypeGuest:
		return true
	}
	return false
}

type CreatePassInput struct {
	Type         string    `json:"type"`
	HolderName   string    `json:"holderName"`
	ValidFrom    time.Time `json:"validFrom"`
	ValidUntil   time.Time `json:"validUntil"`
	AccessLevel  string    `json:"accessLevel,omitempty"`
	AllowedAreas []string  `json:"allowedAreas,omitempty"`
}

func (in *CreatePassInput) Trim() {
	in.Type = strings.TrimSpace(in.Type)
	in.HolderName = strings.TrimSpace(in.HolderName)
	in.AccessLevel = strings.TrimSpace(in.AccessLevel)
}
