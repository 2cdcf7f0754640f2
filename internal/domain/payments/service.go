package payments

import (
	"context"
	"errors"
	"fmt"
	"math"
	"os"

	"github.com/stripe/stripe-go/v76"
	"github.com/stripe/stripe-go/v76/paymentintent"
	"github.com/stripe/stripe-go/v76/refund"

	"facility-admin/internal/domain/order"
)

var (
	ErrNotFound   = errors.New("not found")
	ErrBadRequest = errors.New("bad request")
)

func IsErrNotFound(err error) bool   { return errors.Is(err, ErrNotFound) }
func IsErrBadRequest(err error) bool { return errors.Is(err, ErrBadRequest) }

type Config struct {
	SecretKey     string
	WebhookSecret string
}

func LoadConfig() Config {
	return Config{
		SecretKey:     os.Getenv("STRIPE_SECRET_KEY"),
		WebhookSecret: os.Getenv("STRIPE_WEBHOOK_SECRET"),
	}
}

type Service struct {
	orders *order.Service
	repo   *order.Repo
	config Config
}

func NewService(orders *order.Service, repo *order.Repo, cfg Config) *Service {
	stripe.Key = cfg.SecretKey
	return &Service{orders: orders, repo: repo, config: cfg}
}

// toCents converts a dollar total to Stripe's integer cents. Rounding, not
// truncation: 19.99 is not representable in binary and truncates to 1998.
func toCents(total float64) int64 {
	return int64(math.Round(total * 100))
}

type IntentResult struct {
	PaymentIntentID string `json:"paymentIntentId"`
	ClientSecret    string `json:"clientSecret"`
	Amount          int64  `json:"amount"`
}

// CreateIntent opens a Stripe payment intent for an order's total. The
// intent id is written back onto the order so webhook events can find it.
func (s *Service) CreateIntent(ctx context.Context, projectID, orderID string) (*IntentResult, error) {
	o, err := s.orders.Get(ctx, projectID, orderID)
	if err != nil {
		return nil, fmt.Errorf("%w: order not found", ErrNotFound)
	}
	if o.PaymentStatus == order.PaymentPaid {
		return nil, fmt.Errorf("%w: order is already paid", ErrBadRequest)
	}
	if o.Total <= 0 {
		return nil, fmt.Errorf("%w: order total must be positive", ErrBadRequest)
	}

	amount := toCents(o.Total)
	params := &stripe.PaymentIntentParams{
		Amount:   stripe.Int64(amount),
		Currency: stripe.String(string(stripe.CurrencyUSD)),
		Metadata: map[string]string{
			"projectId": projectID,
			"orderId":   orderID,
		},
	}
	pi, err := paymentintent.New(params)
	if err != nil {
		return nil, fmt.Errorf("failed to create payment intent: %w", err)
	}

	err = s.repo.Update(ctx, projectID, orderID, map[string]interface{}{
		"paymentIntentId": pi.ID,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to save payment intent id: %w", err)
	}

	return &IntentResult{
		PaymentIntentID: pi.ID,
		ClientSecret:    pi.ClientSecret,
		Amount:          amount,
	}, nil
}

// RefundOrder refunds a paid order's payment intent and flips its payment
// status to refunded.
func (s *Service) RefundOrder(ctx context.Context, projectID, orderID string) error {
	o, err := s.orders.Get(ctx, projectID, orderID)
	if err != nil {
		return fmt.Errorf("%w: order not found", ErrNotFound)
	}
	if o.PaymentStatus != order.PaymentPaid {
		return fmt.Errorf("%w: only paid orders can be refunded", ErrBadRequest)
	}
	if o.PaymentIntentID == "" {
		return fmt.Errorf("%w: order has no payment intent", ErrBadRequest)
	}

	_, err = refund.New(&stripe.RefundParams{
		PaymentIntent: stripe.String(o.PaymentIntentID),
	})
	if err != nil {
		return fmt.Errorf("failed to create refund: %w", err)
	}

	return s.orders.SetPaymentStatus(ctx, projectID, orderID, order.PaymentRefunded)
}
