package retail

import (
	"strings"
	"time"
)

const (
	TypeRetail = "retail"
	TypeDining = "dining"

	StatusOpen   = "open"
	StatusClosed = "closed"
)

type Store struct {
	ID           string   `firestore:"id" json:"id"`
	Name         string   `firestore:"name" json:"name"`
	Type         string   `firestore:"type" json:"type"` // retail | dining
	Location     string   `firestore:"location" json:"location"`
	DeliveryTime string   `firestore:"deliveryTime,omitempty" json:"deliveryTime,omitempty"`
	DeliveryFee  float64  `firestore:"deliveryFee" json:"deliveryFee"`
	Status       string   `firestore:"status" json:"status"`
	WorkingDays  []string `firestore:"workingDays" json:"workingDays"`
	OpenTime     string   `firestore:"openTime,omitempty" json:"openTime,omitempty"`
	CloseTime    string   `firestore:"closeTime,omitempty" json:"closeTime,omitempty"`

	// Recomputed from the ratings subcollection on each fetch, never stored
	// denormalized at write time.
	Rating      float64 `firestore:"-" json:"rating"`
	RatingCount int     `firestore:"-" json:"ratingCount"`

	CreatedAt time.Time `firestore:"createdAt" json:"createdAt"`
	UpdatedAt time.Time `firestore:"updatedAt" json:"updatedAt"`
}

// Product is a child document under a store.
type Product struct {
	ID            string  `firestore:"id" json:"id"`
	Name          string  `firestore:"name" json:"name"`
	Price         float64 `firestore:"price" json:"price"`
	Category      string  `firestore:"category,omitempty" json:"category,omitempty"`
	StockQuantity int     `firestore:"stockQuantity" json:"stockQuantity"`
	MinStockLevel int     `firestore:"minStockLevel" json:"minStockLevel"`
	ImageURL      string  `firestore:"imageUrl,omitempty" json:"imageUrl,omitempty"`
	ImagePath     string  `firestore:"imagePath,omitempty" json:"imagePath,omitempty"`

	CreatedAt time.Time `firestore:"createdAt" json:"createdAt"`
	UpdatedAt time.Time `firestore:"updatedAt" json:"updatedAt"`
}

type Rating struct {
	ID        string    `firestore:"id" json:"id"`
	UserID    string    `firestore:"userId" json:"userId"`
	Value     float64   `firestore:"value" json:"value"` // 1-5
	Comment   string    `firestore:"comment,omitempty" json:"comment,omitempty"`
	CreatedAt time.Time `firestore:"createdAt" json:"createdAt"`
}

type CreateStoreInput struct {
	Name         string   `json:"name"`
	Type         string   `json:"type,omitempty"`
	Location     string   `json:"location"`
	DeliveryTime string   `json:"deliveryTime,omitempty"`
	DeliveryFee  float64  `json:"deliveryFee,omitempty"`
	WorkingDays  []string `json:"workingDays,omitempty"`
	OpenTime     string   `json:"openTime,omitempty"`
	CloseTime    string   `json:"closeTime,omitempty"`
}

func (in *CreateStoreInput) Trim() {
	in.Name = strings.TrimSpace(in.Name)
	in.Type = strings.TrimSpace(in.Type)
	in.Location = strings.TrimSpace(in.Location)
	in.DeliveryTime = strings.TrimSpace(in.DeliveryTime)
}

type UpdateStoreInput struct {
	Name         *string   `json:"name,omitempty"`
	Location     *string   `json:"location,omitempty"`
	DeliveryTime *string   `json:"deliveryTime,omitempty"`
	DeliveryFee  *float64  `json:"deliveryFee,omitempty"`
	WorkingDays  *[]string `json:"workingDays,omitempty"`
	OpenTime     *string   `json:"openTime,omitempty"`
	CloseTime    *string   `json:"closeTime,omitempty"`
}

type CreateProductInput struct {
	Name          string  `json:"name"`
	Price         float64 `json:"price"`
	Category      string  `json:"category,omitempty"`
	StockQuantity int     `json:"stockQuantity,omitempty"`
	MinStockLevel int     `json:"minStockLevel,omitempty"`
	ImageURL      string  `json:"imageUrl,omitempty"`
	ImagePath     string  `json:"imagePath,omitempty"`
}

func (in *CreateProductInput) Trim() {
	in.Name = strings.TrimSpace(in.Name)
	in.Category = strings.TrimSpace(in.Category)
}

type UpdateProductInput struct {
	Name          *string  `json:"name,omitempty"`
	Price         *float64 `json:"price,omitempty"`
	Category      *string  `json:"category,omitempty"`
	StockQuantity *int     `json:"stockQuantity,omitempty"`
	MinStockLevel *int     `json:"minStockLevel,omitempty"`
	ImageURL      *string  `json:"imageUrl,omitempty"`
	ImagePath     *string  `json:"imagePath,omitempty"`
}
