package order

import (
	"context"
	"fmt"
	"time"
)

type CreateOrderInput struct {
	UserID   string      `json:"userId"`
	Items    []OrderItem `json:"items"`
	Tax      float64     `json:"tax,omitempty"`
	Shipping float64     `json:"shipping,omitempty"`
}

type Service struct {
	repo *Repo
}

func NewService(repo *Repo) *Service {
	return &Service{repo: repo}
}

func (s *Service) Create(ctx context.Context, projectID string, in CreateOrderInput) (*Order, error) {
	if len(in.Items) == 0 {
		return nil, fmt.Errorf("%w: order needs at least one item", ErrBadRequest)
	}
	for _, it := range in.Items {
		if it.Quantity <= 0 {
			return nil, fmt.Errorf("%w: item quantity must be positive", ErrBadRequest)
		}
		if it.StoreID == "" {
			return nil, fmt.Errorf("%w: item is missing its store reference", ErrBadRequest)
		}
	}

	now := time.Now().UTC()
	o := Order{
		UserID:        in.UserID,
		Items:         in.Items,
		Tax:           in.Tax,
		Shipping:      in.Shipping,
		Status:        StatusPending,
		PaymentStatus: PaymentPending,
		CreatedAt:     now,
		UpdatedAt:     now,
	}
	o.Recalculate()

	return s.repo.Create(ctx, projectID, o)
}

func (s *Service) Get(ctx context.Context, projectID, id string) (*Order, error) {
	if id == "" {
		return nil, fmt.Errorf("%w: orderId is required", ErrBadRequest)
	}
	o, err := s.repo.Get(ctx, projectID, id)
	if err != nil {
		return nil, fmt.Errorf("%w: order not found", ErrNotFound)
	}
	return o, nil
}

func (s *Service) List(ctx context.Context, projectID, status, paymentStatus string) ([]Order, error) {
	if projectID == "" {
		return nil, fmt.Errorf("%w: projectId is required", ErrBadRequest)
	}
	return s.repo.List(ctx, projectID, status, paymentStatus)
}

// AddItem appends an item and rewrites the totals so the invariant holds
// after every item change.
func (s *Service) AddItem(ctx context.Context, projectID, orderID string, item OrderItem) (*Order, error) {
	if item.Quantity <= 0 {
		return nil, fmt.Errorf("%w: item quantity must be positive", ErrBadRequest)
	}
	o, err := s.Get(ctx, projectID, orderID)
	if err != nil {
		return nil, err
	}
	if o.Status != StatusPending {
		return nil, fmt.Errorf("%w: items can only be added to pending orders", ErrBadRequest)
	}

	o.Items = append(o.Items, item)
	o.Recalculate()
	o.UpdatedAt = time.Now().UTC()

	err = s.repo.Update(ctx, projectID, orderID, map[string]interface{}{
		"items":     o.Items,
		"subtotal":  o.Subtotal,
		"total":     o.Total,
		"updatedAt": o.UpdatedAt,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to update order: %w", err)
	}
	return o, nil
}

func (s *Service) UpdateStatus(ctx context.Context, projectID, id, status string) (*Order, error) {
	o, err := s.Get(ctx, projectID, id)
	if err != nil {
		return nil, err
	}
	if !CanTransition(o.Status, status) {
		return nil, fmt.Errorf("%w: %s -> %s", ErrInvalidTransition, o.Status, status)
	}

	o.Status = status
	o.UpdatedAt = time.Now().UTC()
	err = s.repo.Update(ctx, projectID, id, map[string]interface{}{
		"status":    status,
		"updatedAt": o.UpdatedAt,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to update order status: %w", err)
	}
	return o, nil
}

// SetPaymentStatus is the write path the payment webhook uses.
func (s *Service) SetPaymentStatus(ctx context.Context, projectID, id, paymentStatus string) error {
	switch paymentStatus {
	case PaymentPending, PaymentPaid, PaymentFailed, PaymentRefunded:
	default:
		return fmt.Errorf("%w: invalid payment status %q", ErrBadRequest, paymentStatus)
	}
	return s.repo.Update(ctx, projectID, id, map[string]interface{}{
		"paymentStatus": paymentStatus,
		"updatedAt":     time.Now().UTC(),
	})
}

func (s *Service) Delete(ctx context.Context, projectID, id string) error {
	if id == "" {
		return fmt.Errorf("%w: orderId is required", ErrBadRequest)
	}
	return s.repo.Delete(ctx, projectID, id)
}
