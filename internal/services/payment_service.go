// internal/services/payment_service.go
package services

import (
	"fmt"

	"github.com/shopspring/decimal"
	"github.com/stripe/stripe-go/v74"
	"github.com/stripe/stripe-go/v74/paymentintent"

	"github.com/typackaging/backend/internal/config"
	"github.com/typackaging/backend/internal/models"
)

type PaymentService struct {
	cfg *config.Config
}

func NewPaymentService(cfg *config.Config) *PaymentService {
	stripe.Key = cfg.Payment.StripeSecretKey
	return &PaymentService{cfg: cfg}
}

// CreatePaymentIntent registers a Stripe payment intent for a STRIPE order.
// INVOICE orders never reach this; they are settled by manual invoicing.
func (s *PaymentService) CreatePaymentIntent(order *models.Order) (*stripe.PaymentIntent, error) {
	if s.cfg.Payment.StripeSecretKey == "" {
		return nil, fmt.Errorf("stripe is not configured")
	}

	// Stripe amounts are in the currency's minor unit.
	amountInAgorot := order.Total.Mul(decimal.NewFromInt(100)).IntPart()

	params := &stripe.PaymentIntentParams{
		Amount:   stripe.Int64(amountInAgorot),
		Currency: stripe.String("ils"),
	}
	params.AddMetadata("order_number", order.OrderNumber)
	params.AddMetadata("company_id", order.CompanyID.String())

	intent, err := paymentintent.New(params)
	if err != nil {
		return nil, fmt.Errorf("failed to create payment intent: %w", err)
	}

	return intent, nil
}
