package order

import "time"

const (
	StatusPending    = "pending"
	StatusConfirmed  = "confirmed"
	StatusProcessing = "processing"
	StatusShipped    = "shipped"
	StatusDelivered  = "delivered"
	StatusCancelled  = "cancelled"

	PaymentPending  = "pending"
	PaymentPaid     = "paid"
	PaymentFailed   = "failed"
	PaymentRefunded = "refunded"
)

type Order struct {
	ID            string      `firestore:"id" json:"id"`
	UserID        string      `firestore:"userId" json:"userId"`
	Items         []OrderItem `firestore:"items" json:"items"`
	Subtotal      float64     `firestore:"subtotal" json:"subtotal"`
	Tax           float64     `firestore:"tax" json:"tax"`
	Shipping      float64     `firestore:"shipping" json:"shipping"`
	Total         float64     `firestore:"total" json:"total"`
	Status        string      `firestore:"status" json:"status"`
	PaymentStatus string      `firestore:"paymentStatus" json:"paymentStatus"`

	// Stripe payment intent backing this order, when one was created.
	PaymentIntentID string `firestore:"paymentIntentId,omitempty" json:"paymentIntentId,omitempty"`

	CreatedAt time.Time `firestore:"createdAt" json:"createdAt"`
	UpdatedAt time.Time `firestore:"updatedAt" json:"updatedAt"`
}

// OrderItem captures its own store reference at order time. History stays
// stable even if the store is renamed or deleted later.
type OrderItem struct {
	ProductID string  `firestore:"productId" json:"productId"`
	StoreID   string  `firestore:"storeId" json:"storeId"`
	StoreName string  `firestore:"storeName,omitempty" json:"storeName,omitempty"`
	Name      string  `firestore:"name" json:"name"`
	UnitPrice float64 `firestore:"unitPrice" json:"unitPrice"`
	Quantity  int     `firestore:"quantity" json:"quantity"`
}

// Recalculate restores the totals invariant after any item change:
// subtotal is the sum of quantity times unit price, total adds tax and shipping.
func (o *Order) Recalculate() {
	subtotal := 0.0
	for _, it := range o.Items {
		subtotal += float64(it.Quantity) * it.UnitPrice
	}
	o.Subtotal = subtotal
	o.Total = subtotal + o.Tax + o.Shipping
}

// nextStatuses maps each order status to the transitions the dashboard allows.
var nextStatuses = map[string][]string{
	StatusPending:    {StatusConfirmed, StatusCancelled},
	StatusConfirmed:  {StatusProcessing, StatusCancelled},
	StatusProcessing: {StatusShipped, StatusCancelled},
	StatusShipped:    {StatusDelivered, StatusCancelled},
	StatusDelivered:  {},
	StatusCancelled:  {},
}

func CanTransition(from, to string) bool {
	for _, s := range nextStatuses[from] {
		if s == to {
			return true
		}
	}
	return false
}
