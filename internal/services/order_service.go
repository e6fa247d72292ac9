// internal/services/order_service.go
package services

import (
	"fmt"
	"strings"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/sirupsen/logrus"
	"github.com/stripe/stripe-go/v74"

	"github.com/typackaging/backend/internal/cart"
	"github.com/typackaging/backend/internal/models"
	"github.com/typackaging/backend/internal/repository"
	"github.com/typackaging/backend/internal/utils"
)

// PaymentIntentCreator registers a payment intent with the payment provider.
// Satisfied by PaymentService.
type PaymentIntentCreator interface {
	CreatePaymentIntent(order *models.Order) (*stripe.PaymentIntent, error)
}

type OrderService struct {
	orders              repository.OrderRepository
	companies           repository.CompanyRepository
	notificationService *NotificationService
	paymentService      PaymentIntentCreator
}

type OrderItemRequest struct {
	ProductID uuid.UUID       `json:"productId" validate:"required"`
	VariantID *uuid.UUID      `json:"variantId,omitempty"`
	Quantity  int             `json:"quantity" validate:"required,min=1"`
	UnitPrice decimal.Decimal `json:"unitPrice" validate:"required"`
}

type AddressRequest struct {
	Company    string `json:"company" validate:"required"`
	Street     string `json:"street" validate:"required"`
	City       string `json:"city" validate:"required"`
	PostalCode string `json:"postalCode,omitempty"`
	Region     string `json:"region,omitempty"`
}

type CreateOrderRequest struct {
	Items           []OrderItemRequest   `json:"items" validate:"required,min=1,dive"`
	ShippingAddress AddressRequest       `json:"shippingAddress" validate:"required"`
	BillingAddress  AddressRequest       `json:"billingAddress" validate:"required"`
	PaymentMethod   models.PaymentMethod `json:"paymentMethod" validate:"required,oneof=STRIPE INVOICE"`
	Notes           string               `json:"notes,omitempty"`
}

func NewOrderService(
	orders repository.OrderRepository,
	companies repository.CompanyRepository,
	notificationService *NotificationService,
	paymentService PaymentIntentCreator,
) *OrderService {
	return &OrderService{
		orders:              orders,
		companies:           companies,
		notificationService: notificationService,
		paymentService:      paymentService,
	}
}

// CreateOrder turns a submitted cart into a durable order. Totals are
// computed from the submitted unit prices; the catalog price is not
// re-checked here.
func (s *OrderService) CreateOrder(companyID uuid.UUID, req *CreateOrderRequest) (*models.Order, error) {
	if err := utils.ValidateStruct(req); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrValidation, err)
	}
	for _, item := range req.Items {
		if item.UnitPrice.IsNegative() {
			return nil, fmt.Errorf("%w: unit price must not be negative", ErrValidation)
		}
	}

	lines := make([]cart.Item, 0, len(req.Items))
	for _, item := range req.Items {
		lines = append(lines, cart.Item{
			ProductID: item.ProductID.String(),
			Quantity:  item.Quantity,
			UnitPrice: item.UnitPrice,
		})
	}
	subtotal, vatAmount, total := cart.Totals(lines)

	order := &models.Order{
		OrderNumber:     NewOrderNumber(),
		CompanyID:       companyID,
		Status:          models.OrderStatusPending,
		PaymentMethod:   req.PaymentMethod,
		PaymentStatus:   models.PaymentStatusPending,
		Subtotal:        subtotal,
		VATRate:         cart.VATRate,
		VATAmount:       vatAmount,
		Shipping:        decimal.Zero,
		Discount:        decimal.Zero,
		Total:           total,
		Currency:        "ILS",
		ShippingAddress: addressSnapshot(req.ShippingAddress),
		BillingAddress:  addressSnapshot(req.BillingAddress),
		Notes:           req.Notes,
	}

	for _, item := range req.Items {
		order.Items = append(order.Items, models.OrderItem{
			ProductID: item.ProductID,
			VariantID: item.VariantID,
			Quantity:  item.Quantity,
			UnitPrice: item.UnitPrice,
			Total:     item.UnitPrice.Mul(decimal.NewFromInt(int64(item.Quantity))).Round(2),
		})
	}

	if err := s.orders.CreateWithStockDecrement(order); err != nil {
		return nil, err
	}

	if req.PaymentMethod == models.PaymentMethodStripe && s.paymentService != nil {
		intent, err := s.paymentService.CreatePaymentIntent(order)
		if err != nil {
			// Payment collection is retried out of band; the order stands.
			logrus.WithError(err).WithField("order_number", order.OrderNumber).
				Error("Failed to create payment intent")
		} else {
			order.PaymentClientSecret = intent.ClientSecret
		}
	}

	go s.sendOrderConfirmation(order)

	return order, nil
}

// ListOrders returns the company's most recent orders. OWNER and ADMIN roles
// may ask for a different company via filterCompanyID.
func (s *OrderService) ListOrders(companyID uuid.UUID, role models.UserRole, filterCompanyID string, limit int) ([]models.Order, error) {
	target := companyID
	if filterCompanyID != "" && (role == models.UserRoleOwner || role == models.UserRoleAdmin) {
		parsed, err := uuid.Parse(filterCompanyID)
		if err != nil {
			return nil, fmt.Errorf("%w: invalid company id", ErrValidation)
		}
		target = parsed
	}

	if limit <= 0 || limit > 100 {
		limit = 50
	}

	return s.orders.ListByCompany(target, limit)
}

func (s *OrderService) GetOrder(id uuid.UUID, companyID uuid.UUID, role models.UserRole) (*models.Order, error) {
	order, err := s.orders.FindByID(id)
	if err != nil {
		return nil, err
	}

	if order.CompanyID != companyID && role != models.UserRoleOwner && role != models.UserRoleAdmin {
		return nil, repository.ErrNotFound
	}

	return order, nil
}

// NewOrderNumber returns a unique order number. The uniqueness guarantee
// comes from the UUID plus the unique index on order_number, not the clock.
func NewOrderNumber() string {
	return "TY-" + strings.ToUpper(uuid.New().String())
}

func (s *OrderService) sendOrderConfirmation(order *models.Order) {
	if s.notificationService == nil {
		return
	}

	company, err := s.companies.FindByID(order.CompanyID)
	if err != nil {
		logrus.WithError(err).WithField("order_number", order.OrderNumber).
			Error("Failed to load company for order confirmation")
		return
	}
	if company.Email == "" {
		return
	}

	if err := s.notificationService.SendOrderConfirmation(company.Email, "he", order.OrderNumber, order.Total); err != nil {
		// Confirmation delivery never affects the order itself.
		logrus.WithError(err).WithField("order_number", order.OrderNumber).
			Error("Failed to send order confirmation")
	}
}

func addressSnapshot(addr AddressRequest) models.JSONB {
	snapshot := models.JSONB{
		"company": addr.Company,
		"street":  addr.Street,
		"city":    addr.City,
	}
	if addr.PostalCode != "" {
		snapshot["postalCode"] = addr.PostalCode
	}
	if addr.Region != "" {
		snapshot["region"] = addr.Region
	}
	return snapshot
}
