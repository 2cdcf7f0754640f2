package gatepass

import (
	"context"
	"fmt"
	"time"
)

type Service struct {
	repo *Repo
}

func NewService(repo *Repo) *Service {
	return &Service{repo: repo}
}

func (s *Service) Create(ctx context.Context, projectID string, in CreatePassInput) (*GatePass, error) {
	in.Trim()
	if !ValidType(in.Type) {
		return nil, fmt.Errorf("%w: invalid pass type %q", ErrBadRequest, in.Type)
	}
	if in.HolderName == "" {
		return nil, fmt.Errorf("%w: holderName is required", ErrBadRequest)
	}
	if in.ValidUntil.Before(in.ValidFrom) {
		return nil, fmt.Errorf("%w: validUntil must be after validFrom", ErrBadRequest)
	}

	now := time.Now().UTC()
	p := GatePass{
		Type:         in.Type,
		HolderName:   in.HolderName,
		ValidFrom:    in.ValidFrom,
		ValidUntil:   in.ValidUntil,
		Status:       StatusActive,
		AccessLevel:  in.AccessLevel,
		AllowedAreas: in.AllowedAreas,
		CreatedAt:    now,
		UpdatedAt:    now,
	}
	if p.AllowedAreas == nil {
		p.AllowedAreas = []string{}
	}

	return s.repo.Create(ctx, projectID, p)
}

func (s *Service) Get(ctx context.Context, projectID, id string) (*GatePass, error) {
	if id == "" {
		return nil, fmt.Errorf("%w: passId is required", ErrBadRequest)
	}
	p, err := s.repo.Get(ctx, projectID, id)
	if err != nil {
		return nil, fmt.Errorf("%w: gate pass not found", ErrNotFound)
	}
	return p, nil
}

func (s *Service) List(ctx context.Context, projectID, passType, status string) ([]GatePass, error) {
	if projectID == "" {
		return nil, fmt.Errorf("%w: projectId is required", ErrBadRequest)
	}
	return s.repo.List(ctx, projectID, passType, status)
}

// CheckIn moves an active pass to used and stamps the entry time. A pass in
// any other status is left untouched and no write is issued.
func (s *Service) CheckIn(ctx context.Context, projectID, id string) (*GatePass, error) {
	p, err := s.Get(ctx, projectID, id)
	if err != nil {
		return nil, err
	}
	if !p.CanCheckIn() {
		return p, nil
	}

	now := time.Now().UTC()
	p.Status = StatusUsed
	p.EntryAt = &now
	p.UpdatedAt = now

	err = s.repo.Update(ctx, projectID, id, map[string]interface{}{
		"status":    StatusUsed,
		"entryAt":   now,
		"updatedAt": now,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to check in pass: %w", err)
	}
	return p, nil
}

// CheckOut stamps the exit time on a used pass.
func (s *Service) CheckOut(ctx context.Context, projectID, id string) (*GatePass, error) {
	p, err := s.Get(ctx, projectID, id)
	if err != nil {
		return nil, err
	}
	if p.Status != StatusUsed || p.ExitAt != nil {
		return p, nil
	}

	now := time.Now().UTC()
	p.ExitAt = &now
	p.UpdatedAt = now

	err = s.repo.Update(ctx, projectID, id, map[string]interface{}{
		"exitAt":    now,
		"updatedAt": now,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to check out pass: %w", err)
	}
	return p, nil
}

func (s *Service) Revoke(ctx context.Context, projectID, id string) (*GatePass, error) {
	p, err := s.Get(ctx, projectID, id)
	if err != nil {
		return nil, err
	}
	if !p.CanRevoke() {
		return nil, fmt.Errorf("%w: only active passes can be revoked", ErrBadRequest)
	}

	now := time.Now().UTC()
	p.Status = StatusRevoked
	p.UpdatedAt = now

	err = s.repo.Update(ctx, projectID, id, map[string]interface{}{
		"status":    StatusRevoked,
		"updatedAt": now,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to revoke pass: %w", err)
	}
	return p, nil
}

func (s *Service) Delete(ctx context.Context, projectID, id string) error {
	if id == "" {
		return fmt.Errorf("%w: passId is required", ErrBadRequest)
	}
	return s.repo.Delete(ctx, projectID, id)
}
