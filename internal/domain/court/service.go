package court

import (
	"context"
	"fmt"
	"time"
)

var weekdays = []string{"Monday", "Tuesday", "Wednesday", "Thursday", "Friday", "Saturday", "Sunday"}

type Service struct {
	repo *Repo
}

func NewService(repo *Repo) *Service {
	return &Service{repo: repo}
}

func (s *Service) Create(ctx context.Context, projectID string, in CreateCourtInput) (*Court, error) {
	in.Trim()
	if in.Name == "" {
		return nil, fmt.Errorf("%w: name is required", ErrBadRequest)
	}
	if in.SportID == "" {
		return nil, fmt.Errorf("%w: sportId is required", ErrBadRequest)
	}

	availability := in.Availability
	if availability == nil {
		availability = map[string]DayAvailability{}
		for _, d := range weekdays {
			availability[d] = DayAvailability{Enabled: true, Open: "08:00", Close: "22:00"}
		}
	}

	slotMinutes := in.SlotMinutes
	if slotMinutes <= 0 {
		slotMinutes = 60
	}

	now := time.Now().UTC()
	c := Court{
		Name:         in.Name,
		Location:     in.Location,
		SportID:      in.SportID,
		Surface:      in.Surface,
		HourlyRate:   in.HourlyRate,
		Capacity:     in.Capacity,
		Status:       StatusAvailable,
		Availability: availability,
		SlotMinutes:  slotMinutes,
		ImageURL:     in.ImageURL,
		ImagePath:    in.ImagePath,
		CreatedAt:    now,
		UpdatedAt:    now,
	}

	return s.repo.Create(ctx, projectID, c)
}

func (s *Service) Get(ctx context.Context, projectID, id string) (*Court, error) {
	if id == "" {
		return nil, fmt.Errorf("%w: courtId is required", ErrBadRequest)
	}
	c, err := s.repo.Get(ctx, projectID, id)
	if err != nil {
		return nil, fmt.Errorf("%w: court not found", ErrNotFound)
	}
	return c, nil
}

func (s *Service) List(ctx context.Context, projectID, sportID, status string) ([]Court, error) {
	if projectID == "" {
		return nil, fmt.Errorf("%w: projectId is required", ErrBadRequest)
	}
	return s.repo.List(ctx, projectID, sportID, status)
}

// Update applies a partial patch; the previous image blob, if replaced, is the
// caller's to clean up after this returns.
func (s *Service) Update(ctx context.Context, projectID, id string, in UpdateCourtInput) (oldImagePath string, err error) {
	c, err := s.Get(ctx, projectID, id)
	if err != nil {
		return "", err
	}

	updates := map[string]interface{}{
		"updatedAt": time.Now().UTC(),
	}
	if in.Name != nil {
		updates["name"] = *in.Name
	}
	if in.Location != nil {
		updates["location"] = *in.Location
	}
	if in.SportID != nil {
		updates["sportId"] = *in.SportID
	}
	if in.Surface != nil {
		updates["surface"] = *in.Surface
	}
	if in.HourlyRate != nil {
		updates["hourlyRate"] = *in.HourlyRate
	}
	if in.Capacity != nil {
		updates["capacity"] = *in.Capacity
	}
	if in.Availability != nil {
		updates["availability"] = *in.Availability
	}
	if in.SlotMinutes != nil {
		updates["slotMinutes"] = *in.SlotMinutes
	}
	if in.ImageURL != nil {
		updates["imageUrl"] = *in.ImageURL
	}
	if in.ImagePath != nil {
		updates["imagePath"] = *in.ImagePath
		if c.ImagePath != "" && c.ImagePath != *in.ImagePath {
			oldImagePath = c.ImagePath
		}
	}

	if err := s.repo.Update(ctx, projectID, id, updates); err != nil {
		return "", fmt.Errorf("failed to update court: %w", err)
	}
	return oldImagePath, nil
}

func (s *Service) UpdateStatus(ctx context.Context, projectID, id, status string) error {
	switch status {
	case StatusAvailable, StatusMaintenance, StatusBooked:
	default:
		return fmt.Errorf("%w: invalid status %q", ErrBadRequest, status)
	}
	return s.repo.Update(ctx, projectID, id, map[string]interface{}{
		"status":    status,
		"updatedAt": time.Now().UTC(),
	})
}

func (s *Service) Delete(ctx context.Context, projectID, id string) (imagePath string, err error) {
	c, err := s.Get(ctx, projectID, id)
	if err != nil {
		return "", err
	}
	if err := s.repo.Delete(ctx, projectID, id); err != nil {
		return "", err
	}
	return c.ImagePath, nil
}

// Slots returns the bookable slots for a court on a given weekday.
func (s *Service) Slots(ctx context.Context, projectID, id, day string) ([]Slot, error) {
	c, err := s.Get(ctx, projectID, id)
	if err != nil {
		return nil, err
	}
	return c.SlotsForDay(day)
}
