package sport

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"
)

var (
	ErrNotFound   = errors.New("not found")
	ErrBadRequest = errors.New("bad request")
)

func IsErrNotFound(err error) bool   { return errors.Is(err, ErrNotFound) }
func IsErrBadRequest(err error) bool { return errors.Is(err, ErrBadRequest) }

type Service struct {
	repo *Repo
}

func NewService(repo *Repo) *Service {
	return &Service{repo: repo}
}

func (s *Service) Create(ctx context.Context, projectID string, in CreateSportInput) (*Sport, error) {
	in.Trim()
	if in.Name == "" {
		return nil, fmt.Errorf("%w: name is required", ErrBadRequest)
	}

	now := time.Now().UTC()
	sp := Sport{
		Name:       in.Name,
		Category:   in.Category,
		Difficulty: in.Difficulty,
		AgeGroup:   in.AgeGroup,
		Equipment:  in.Equipment,
		Rules:      in.Rules,
		Active:     true,
		CreatedAt:  now,
		UpdatedAt:  now,
	}
	if sp.Equipment == nil {
		sp.Equipment = []string{}
	}
	if sp.Rules == nil {
		sp.Rules = []string{}
	}

	return s.repo.Create(ctx, projectID, sp)
}

func (s *Service) List(ctx context.Context, projectID string, activeOnly bool) ([]Sport, error) {
	if projectID == "" {
		return nil, fmt.Errorf("%w: projectId is required", ErrBadRequest)
	}
	return s.repo.List(ctx, projectID, activeOnly)
}

func (s *Service) Get(ctx context.Context, projectID, id string) (*Sport, error) {
	if id == "" {
		return nil, fmt.Errorf("%w: sportId is required", ErrBadRequest)
	}
	sp, err := s.repo.Get(ctx, projectID, id)
	if err != nil {
		return nil, fmt.Errorf("%w: sport not found", ErrNotFound)
	}
	return sp, nil
}

func (s *Service) Update(ctx context.Context, projectID, id string, in UpdateSportInput) error {
	if id == "" {
		return fmt.Errorf("%w: sportId is required", ErrBadRequest)
	}

	fields := map[string]interface{}{}
	if in.Name != nil {
		name := strings.TrimSpace(*in.Name)
		if name == "" {
			return fmt.Errorf("%w: name cannot be empty", ErrBadRequest)
		}
		fields["name"] = name
	}
	if in.Category != nil {
		fields["category"] = strings.TrimSpace(*in.Category)
	}
	if in.Difficulty != nil {
		fields["difficulty"] = strings.TrimSpace(*in.Difficulty)
	}
	if in.AgeGroup != nil {
		fields["ageGroup"] = strings.TrimSpace(*in.AgeGroup)
	}
	if in.Equipment != nil {
		fields["equipment"] = *in.Equipment
	}
	if in.Rules != nil {
		fields["rules"] = *in.Rules
	}
	if len(fields) == 0 {
		return fmt.Errorf("%w: nothing to update", ErrBadRequest)
	}
	fields["updatedAt"] = time.Now().UTC()

	if err := s.repo.Update(ctx, projectID, id, fields); err != nil {
		return fmt.Errorf("failed to update sport: %w", err)
	}
	return nil
}

// ToggleActive flips the active flag, the only status transition sports have.
func (s *Service) ToggleActive(ctx context.Context, projectID, id string) (*Sport, error) {
	sp, err := s.Get(ctx, projectID, id)
	if err != nil {
		return nil, err
	}
	sp.Active = !sp.Active
	sp.UpdatedAt = time.Now().UTC()
	err = s.repo.Update(ctx, projectID, id, map[string]interface{}{
		"active":    sp.Active,
		"updatedAt": sp.UpdatedAt,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to toggle sport: %w", err)
	}
	return sp, nil
}

func (s *Service) Delete(ctx context.Context, projectID, id string) error {
	if id == "" {
		return fmt.Errorf("%w: sportId is required", ErrBadRequest)
	}
	return s.repo.Delete(ctx, projectID, id)
}
