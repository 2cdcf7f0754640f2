package retail

import (
	"context"
	"fmt"
	"strings"
	"time"

	"go.uber.org/zap"
)

type Service struct {
	repo *Repo
	log  *zap.Logger
}

func NewService(repo *Repo, log *zap.Logger) *Service {
	return &Service{repo: repo, log: log}
}

func (s *Service) CreateStore(ctx context.Context, projectID string, in CreateStoreInput) (*Store, error) {
	in.Trim()
	if in.Name == "" {
		return nil, fmt.Errorf("%w: name is required", ErrBadRequest)
	}
	storeType := in.Type
	switch storeType {
	case "":
		storeType = TypeRetail
	case TypeRetail, TypeDining:
	default:
		return nil, fmt.Errorf("%w: type must be %q or %q", ErrBadRequest, TypeRetail, TypeDining)
	}

	now := time.Now().UTC()
	st := Store{
		Name:         in.Name,
		Type:         storeType,
		Location:     in.Location,
		DeliveryTime: in.DeliveryTime,
		DeliveryFee:  in.DeliveryFee,
		Status:       StatusOpen,
		WorkingDays:  in.WorkingDays,
		OpenTime:     in.OpenTime,
		CloseTime:    in.CloseTime,
		CreatedAt:    now,
		UpdatedAt:    now,
	}
	if st.WorkingDays == nil {
		st.WorkingDays = []string{}
	}

	return s.repo.CreateStore(ctx, projectID, st)
}

// ListStores fetches stores and recomputes each rating aggregate from the
// ratings subcollection. An aggregate that fails to compute leaves the store
// at zero rather than failing the fetch.
func (s *Service) ListStores(ctx context.Context, projectID, storeType string) ([]Store, error) {
	if projectID == "" {
		return nil, fmt.Errorf("%w: projectId is required", ErrBadRequest)
	}
	stores, err := s.repo.ListStores(ctx, projectID, storeType)
	if err != nil {
		return nil, err
	}
	for i := range stores {
		avg, count, err := s.repo.AverageRating(ctx, projectID, stores[i].ID)
		if err != nil {
			s.log.Warn("failed to compute store rating",
				zap.String("storeId", stores[i].ID),
				zap.Error(err))
			continue
		}
		stores[i].Rating = avg
		stores[i].RatingCount = count
	}
	return stores, nil
}

func (s *Service) GetStore(ctx context.Context, projectID, id string) (*Store, error) {
	if id == "" {
		return nil, fmt.Errorf("%w: storeId is required", ErrBadRequest)
	}
	st, err := s.repo.GetStore(ctx, projectID, id)
	if err != nil {
		return nil, fmt.Errorf("%w: store not found", ErrNotFound)
	}
	avg, count, err := s.repo.AverageRating(ctx, projectID, id)
	if err == nil {
		st.Rating = avg
		st.RatingCount = count
	}
	return st, nil
}

func (s *Service) UpdateStore(ctx context.Context, projectID, id string, in UpdateStoreInput) error {
	if id == "" {
		return fmt.Errorf("%w: storeId is required", ErrBadRequest)
	}

	fields := map[string]interface{}{}
	if in.Name != nil {
		name := strings.TrimSpace(*in.Name)
		if name == "" {
			return fmt.Errorf("%w: name cannot be empty", ErrBadRequest)
		}
		fields["name"] = name
	}
	if in.Location != nil {
		fields["location"] = strings.TrimSpace(*in.Location)
	}
	if in.DeliveryTime != nil {
		fields["deliveryTime"] = strings.TrimSpace(*in.DeliveryTime)
	}
	if in.DeliveryFee != nil {
		if *in.DeliveryFee < 0 {
			return fmt.Errorf("%w: deliveryFee cannot be negative", ErrBadRequest)
		}
		fields["deliveryFee"] = *in.DeliveryFee
	}
	if in.WorkingDays != nil {
		fields["workingDays"] = *in.WorkingDays
	}
	if in.OpenTime != nil {
		fields["openTime"] = strings.TrimSpace(*in.OpenTime)
	}
	if in.CloseTime != nil {
		fields["closeTime"] = strings.TrimSpace(*in.CloseTime)
	}
	if len(fields) == 0 {
		return fmt.Errorf("%w: nothing to update", ErrBadRequest)
	}
	fields["updatedAt"] = time.Now().UTC()

	return s.repo.UpdateStore(ctx, projectID, id, fields)
}

func (s *Service) UpdateStoreStatus(ctx context.Context, projectID, id, status string) error {
	if status != StatusOpen && status != StatusClosed {
		return fmt.Errorf("%w: invalid status %q", ErrBadRequest, status)
	}
	return s.repo.UpdateStore(ctx, projectID, id, map[string]interface{}{
		"status":    status,
		"updatedAt": time.Now().UTC(),
	})
}

func (s *Service) DeleteStore(ctx context.Context, projectID, id string) error {
	if id == "" {
		return fmt.Errorf("%w: storeId is required", ErrBadRequest)
	}
	return s.repo.DeleteStore(ctx, projectID, id)
}

func (s *Service) AddRating(ctx context.Context, projectID, storeID, userID string, value float64, comment string) (*Rating, error) {
	if value < 1 || value > 5 {
		return nil, fmt.Errorf("%w: rating must be between 1 and 5", ErrBadRequest)
	}
	return s.repo.AddRating(ctx, projectID, storeID, Rating{
		UserID:    userID,
		Value:     value,
		Comment:   comment,
		CreatedAt: time.Now().UTC(),
	})
}

func (s *Service) CreateProduct(ctx context.Context, projectID, storeID string, in CreateProductInput) (*Product, error) {
	in.Trim()
	if in.Name == "" {
		return nil, fmt.Errorf("%w: name is required", ErrBadRequest)
	}
	if in.Price < 0 {
		return nil, fmt.Errorf("%w: price cannot be negative", ErrBadRequest)
	}
	if _, err := s.repo.GetStore(ctx, projectID, storeID); err != nil {
		return nil, fmt.Errorf("%w: store not found", ErrNotFound)
	}

	now := time.Now().UTC()
	p := Product{
		Name:          in.Name,
		Price:         in.Price,
		Category:      in.Category,
		StockQuantity: in.StockQuantity,
		MinStockLevel: in.MinStockLevel,
		ImageURL:      in.ImageURL,
		ImagePath:     in.ImagePath,
		CreatedAt:     now,
		UpdatedAt:     now,
	}

	return s.repo.CreateProduct(ctx, projectID, storeID, p)
}

func (s *Service) ListProducts(ctx context.Context, projectID, storeID string) ([]Product, error) {
	if storeID == "" {
		return nil, fmt.Errorf("%w: storeId is required", ErrBadRequest)
	}
	return s.repo.ListProducts(ctx, projectID, storeID)
}

func (s *Service) UpdateProduct(ctx context.Context, projectID, storeID, id string, in UpdateProductInput) (oldImagePath string, err error) {
	p, err := s.repo.GetProduct(ctx, projectID, storeID, id)
	if err != nil {
		return "", fmt.Errorf("%w: product not found", ErrNotFound)
	}

	updates := map[string]interface{}{
		"updatedAt": time.Now().UTC(),
	}
	if in.Name != nil {
		updates["name"] = *in.Name
	}
	if in.Price != nil {
		updates["price"] = *in.Price
	}
	if in.Category != nil {
		updates["category"] = *in.Category
	}
	if in.StockQuantity != nil {
		updates["stockQuantity"] = *in.StockQuantity
	}
	if in.MinStockLevel != nil {
		updates["minStockLevel"] = *in.MinStockLevel
	}
	if in.ImageURL != nil {
		updates["imageUrl"] = *in.ImageURL
	}
	if in.ImagePath != nil {
		updates["imagePath"] = *in.ImagePath
		if p.ImagePath != "" && p.ImagePath != *in.ImagePath {
			oldImagePath = p.ImagePath
		}
	}

	if err := s.repo.UpdateProduct(ctx, projectID, storeID, id, updates); err != nil {
		return "", fmt.Errorf("failed to update product: %w", err)
	}
	return oldImagePath, nil
}

func (s *Service) DeleteProduct(ctx context.Context, projectID, storeID, id string) (imagePath string, err error) {
	p, err := s.repo.GetProduct(ctx, projectID, storeID, id)
	if err != nil {
		return "", fmt.Errorf("%w: product not found", ErrNotFound)
	}
	if err := s.repo.DeleteProduct(ctx, projectID, storeID, id); err != nil {
		return "", err
	}
	return p.ImagePath, nil
}

// Stock returns the derived stock breakdown for a store's products.
func (s *Service) Stock(ctx context.Context, projectID, storeID string) (*StockSummary, error) {
	products, err := s.ListProducts(ctx, projectID, storeID)
	if err != nil {
		return nil, err
	}
	sum := ClassifyStock(products)
	return &sum, nil
}
