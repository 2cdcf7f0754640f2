package payments

import (
	"encoding/json"
	"fmt"
	"io"
	"net/http"

	"github.com/stripe/stripe-go/v76"
	"github.com/stripe/stripe-go/v76/webhook"
	"go.uber.org/zap"

	"facility-admin/internal/domain/order"
	"facility-admin/internal/logging"
)

// HandleWebhook processes incoming Stripe events. Failures after signature
// verification are logged but acknowledged, so Stripe does not retry forever.
func (s *Service) HandleWebhook(w http.ResponseWriter, r *http.Request) {
	const MaxBodyBytes = int64(65536)
	r.Body = http.MaxBytesReader(w, r.Body, MaxBodyBytes)

	payload, err := io.ReadAll(r.Body)
	if err != nil {
		http.Error(w, "Error reading request body", http.StatusServiceUnavailable)
		return
	}

	sigHeader := r.Header.Get("Stripe-Signature")
	event, err := webhook.ConstructEvent(payload, sigHeader, s.config.WebhookSecret)
	if err != nil {
		logging.L().Warn("webhook signature verification failed", zap.Error(err))
		http.Error(w, fmt.Sprintf("Webhook signature verification failed: %v", err), http.StatusBadRequest)
		return
	}

	ctx := r.Context()
	log := logging.L()
	log.Info("stripe webhook received",
		zap.String("type", string(event.Type)),
		zap.String("id", event.ID))

	switch event.Type {
	case "payment_intent.succeeded", "payment_intent.payment_failed":
		var pi stripe.PaymentIntent
		if err := json.Unmarshal(event.Data.Raw, &pi); err != nil {
			http.Error(w, fmt.Sprintf("Error parsing webhook JSON: %v", err), http.StatusBadRequest)
			return
		}

		status := order.PaymentPaid
		if event.Type == "payment_intent.payment_failed" {
			status = order.PaymentFailed
		}

		projectID := pi.Metadata["projectId"]
		orderID := pi.Metadata["orderId"]
		if projectID == "" || orderID == "" {
			log.Warn("payment intent missing order metadata", zap.String("intent", pi.ID))
			break
		}

		if err := s.orders.SetPaymentStatus(ctx, projectID, orderID, status); err != nil {
			log.Error("failed to record payment status",
				zap.String("orderId", orderID),
				zap.String("status", status),
				zap.Error(err))
		}

	default:
		// Unhandled event types are acknowledged and dropped.
	}

	w.WriteHeader(http.StatusOK)
}
