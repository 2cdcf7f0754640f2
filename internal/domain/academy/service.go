package academy

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	"facility-admin/internal/utils"
)

type Service struct {
	repo *Repo
}

func NewService(repo *Repo) *Service {
	return &Service{repo: repo}
}

func (s *Service) Create(ctx context.Context, projectID string, in CreateAcademyInput) (*Academy, error) {
	if projectID == "" {
		return nil, fmt.Errorf("%w: projectId is required", ErrBadRequest)
	}
	in.Trim()
	if errs := ValidateCreate(in); len(errs) > 0 {
		return nil, fmt.Errorf("%w: %s", ErrValidation, joinFieldErrors(errs))
	}

	now := time.Now().UTC()
	a := Academy{
		Name:       in.Name,
		Type:       in.Type,
		Rating:     0,
		Email:      in.Email,
		Phone:      in.Phone,
		Location:   in.Location,
		Capacity:   in.Capacity,
		OpenTime:   in.OpenTime,
		CloseTime:  in.CloseTime,
		Facilities: in.Facilities,
		Programs:   []Program{},
		CreatedAt:  now,
		UpdatedAt:  now,
	}
	if a.Facilities == nil {
		a.Facilities = []string{}
	}

	return s.repo.Create(ctx, projectID, a)
}

func (s *Service) Get(ctx context.Context, projectID, id string) (*Academy, error) {
	if id == "" {
		return nil, fmt.Errorf("%w: academyId is required", ErrBadRequest)
	}
	a, err := s.repo.Get(ctx, projectID, id)
	if err != nil {
		return nil, fmt.Errorf("%w: academy not found", ErrNotFound)
	}
	return a, nil
}

func (s *Service) List(ctx context.Context, projectID string) ([]Academy, error) {
	if projectID == "" {
		return nil, fmt.Errorf("%w: projectId is required", ErrBadRequest)
	}
	return s.repo.List(ctx, projectID)
}

// Search filters the fetched list in memory, substring match on name,
// location and type, as the dashboard list views do.
func (s *Service) Search(ctx context.Context, projectID, query string) ([]Academy, error) {
	all, err := s.List(ctx, projectID)
	if err != nil {
		return nil, err
	}
	out := []Academy{}
	for _, a := range all {
		if utils.MatchesSearch(query, a.Name, a.Location, a.Type) {
			out = append(out, a)
		}
	}
	return out, nil
}

func (s *Service) Update(ctx context.Context, projectID, id string, in UpdateAcademyInput) error {
	if id == "" {
		return fmt.Errorf("%w: academyId is required", ErrBadRequest)
	}

	updates := map[string]interface{}{
		"updatedAt": time.Now().UTC(),
	}
	if in.Name != nil {
		name := strings.TrimSpace(*in.Name)
		if name == "" {
			return fmt.Errorf("%w: name cannot be empty", ErrValidation)
		}
		updates["name"] = name
	}
	if in.Type != nil {
		updates["type"] = *in.Type
	}
	if in.Email != nil {
		updates["email"] = *in.Email
	}
	if in.Phone != nil {
		updates["phone"] = *in.Phone
	}
	if in.Location != nil {
		updates["location"] = *in.Location
	}
	if in.Capacity != nil {
		updates["capacity"] = *in.Capacity
	}
	if in.OpenTime != nil {
		updates["openTime"] = *in.OpenTime
	}
	if in.CloseTime != nil {
		updates["closeTime"] = *in.CloseTime
	}
	if in.Rating != nil {
		if *in.Rating < 0 || *in.Rating > 5 {
			return fmt.Errorf("%w: rating must be between 0 and 5", ErrValidation)
		}
		updates["rating"] = *in.Rating
	}
	if in.Facilities != nil {
		updates["facilities"] = *in.Facilities
	}

	if err := s.repo.Update(ctx, projectID, id, updates); err != nil {
		return fmt.Errorf("failed to update academy: %w", err)
	}
	return nil
}

func (s *Service) Delete(ctx context.Context, projectID, id string) error {
	if id == "" {
		return fmt.Errorf("%w: academyId is required", ErrBadRequest)
	}
	return s.repo.Delete(ctx, projectID, id)
}

// AddProgram appends a program to the academy's embedded list. The whole list
// is read, patched and rewritten; two clients editing sibling programs will
// overwrite each other (last writer wins).
func (s *Service) AddProgram(ctx context.Context, projectID, academyID string, in ProgramInput) (*Program, error) {
	in.Trim()
	if errs := ValidateProgram(in); len(errs) > 0 {
		return nil, fmt.Errorf("%w: %s", ErrValidation, joinFieldErrors(errs))
	}

	a, err := s.Get(ctx, projectID, academyID)
	if err != nil {
		return nil, err
	}

	p := Program{
		ID:        uuid.NewString(),
		Name:      in.Name,
		Category:  in.Category,
		AgeGroup:  in.AgeGroup,
		Duration:  in.Duration,
		Price:     in.Price,
		Capacity:  in.Capacity,
		Days:      in.Days,
		TimeSlots: in.TimeSlots,
		Coaches:   in.Coaches,
	}
	if p.Coaches == nil {
		p.Coaches = []string{}
	}

	programs := append(a.Programs, p)
	if err := s.repo.SetPrograms(ctx, projectID, academyID, programs, time.Now().UTC()); err != nil {
		return nil, fmt.Errorf("failed to save programs: %w", err)
	}
	return &p, nil
}

func (s *Service) UpdateProgram(ctx context.Context, projectID, academyID, programID string, in ProgramInput) (*Program, error) {
	in.Trim()
	if errs := ValidateProgram(in); len(errs) > 0 {
		return nil, fmt.Errorf("%w: %s", ErrValidation, joinFieldErrors(errs))
	}

	a, err := s.Get(ctx, projectID, academyID)
	if err != nil {
		return nil, err
	}

	idx := -1
	for i, p := range a.Programs {
		if p.ID == programID {
			idx = i
			break
		}
	}
	if idx < 0 {
		return nil, fmt.Errorf("%w: program not found", ErrNotFound)
	}

	p := a.Programs[idx]
	p.Name = in.Name
	p.Category = in.Category
	p.AgeGroup = in.AgeGroup
	p.Duration = in.Duration
	p.Price = in.Price
	p.Capacity = in.Capacity
	p.Days = in.Days
	p.TimeSlots = in.TimeSlots
	if in.Coaches != nil {
		p.Coaches = in.Coaches
	}
	a.Programs[idx] = p

	if err := s.repo.SetPrograms(ctx, projectID, academyID, a.Programs, time.Now().UTC()); err != nil {
		return nil, fmt.Errorf("failed to save programs: %w", err)
	}
	return &p, nil
}

func (s *Service) DeleteProgram(ctx context.Context, projectID, academyID, programID string) error {
	a, err := s.Get(ctx, projectID, academyID)
	if err != nil {
		return err
	}

	programs := make([]Program, 0, len(a.Programs))
	found := false
	for _, p := range a.Programs {
		if p.ID == programID {
			found = true
			continue
		}
		programs = append(programs, p)
	}
	if !found {
		return fmt.Errorf("%w: program not found", ErrNotFound)
	}

	return s.repo.SetPrograms(ctx, projectID, academyID, programs, time.Now().UTC())
}

func joinFieldErrors(errs map[string]string) string {
	parts := make([]string, 0, len(errs))
	for field, msg := range errs {
		parts = append(parts, field+": "+msg)
	}
	return strings.Join(parts, "; ")
}
