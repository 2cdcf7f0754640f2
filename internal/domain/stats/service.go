package stats

import (
	"context"
	"errors"
	"fmt"

	"cloud.google.com/go/firestore"
	"google.golang.org/api/iterator"
)

var ErrBadRequest = errors.New("bad request")

func IsErrBadRequest(err error) bool { return errors.Is(err, ErrBadRequest) }

// DashboardStats is the aggregate view the admin landing page renders.
// Everything is re-derived by scanning the collections; nothing is cached.
type DashboardStats struct {
	Courts     StatusCounts `json:"courts"`
	Orders     StatusCounts `json:"orders"`
	GatePasses StatusCounts `json:"gatePasses"`
	Academies  int          `json:"academies"`
	Stores     int          `json:"stores"`
}

type StatusCounts struct {
	Total    int            `json:"total"`
	ByStatus map[string]int `json:"byStatus"`
}

type Service struct {
	client *firestore.Client
}

func NewService(client *firestore.Client) *Service {
	return &Service{client: client}
}

func (s *Service) project(projectID string) *firestore.DocumentRef {
	return s.client.Collection("projects").Doc(projectID)
}

func (s *Service) GetDashboardStats(ctx context.Context, projectID string) (*DashboardStats, error) {
	if projectID == "" {
		return nil, fmt.Errorf("%w: projectId is required", ErrBadRequest)
	}

	courts, err := s.countByStatus(ctx, projectID, "courts", "status")
	if err != nil {
		return nil, fmt.Errorf("failed to count courts: %w", err)
	}
	orders, err := s.countByStatus(ctx, projectID, "orders", "status")
	if err != nil {
		return nil, fmt.Errorf("failed to count orders: %w", err)
	}
	passes, err := s.countByStatus(ctx, projectID, "gatePasses", "status")
	if err != nil {
		return nil, fmt.Errorf("failed to count gate passes: %w", err)
	}

	academies, err := s.countAll(ctx, projectID, "academies")
	if err != nil {
		return nil, fmt.Errorf("failed to count academies: %w", err)
	}
	stores, err := s.countAll(ctx, projectID, "stores")
	if err != nil {
		return nil, fmt.Errorf("failed to count stores: %w", err)
	}

	return &DashboardStats{
		Courts:     courts,
		Orders:     orders,
		GatePasses: passes,
		Academies:  academies,
		Stores:     stores,
	}, nil
}

func (s *Service) countByStatus(ctx context.Context, projectID, collection, field string) (StatusCounts, error) {
	counts := StatusCounts{ByStatus: map[string]int{}}

	it := s.project(projectID).Collection(collection).Documents(ctx)
	for {
		doc, err := it.Next()
		if err == iterator.Done {
			break
		}
		if err != nil {
			return counts, err
		}
		counts.Total++
		if status, _ := doc.Data()[field].(string); status != "" {
			counts.ByStatus[status]++
		}
	}
	return counts, nil
}

func (s *Service) countAll(ctx context.Context, projectID, collection string) (int, error) {
	it := s.project(projectID).Collection(collection).Documents(ctx)
	n := 0
	for {
		_, err := it.Next()
		if err == iterator.Done {
			break
		}
		if err != nil {
			return n, err
		}
		n++
	}
	return n, nil
}
