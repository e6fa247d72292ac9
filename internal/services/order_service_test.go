// internal/services/order_service_test.go
package services

import (
	"errors"
	"strings"
	"sync"
	"testing"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/typackaging/backend/internal/models"
	"github.com/typackaging/backend/internal/repository"
)

func newTestOrderService() (*OrderService, *fakeProductRepo, *fakeOrderRepo) {
	products := newFakeProductRepo()
	orders := newFakeOrderRepo(products)
	companies := newFakeCompanyRepo()
	svc := NewOrderService(orders, companies, nil, nil)
	return svc, products, orders
}

func seedProduct(t *testing.T, products *fakeProductRepo, stock int) *models.Product {
	t.Helper()
	product := &models.Product{
		Slug:             "pb-20x30-clear",
		SKU:              "PB-20x30-CLEAR",
		NameEn:           "Clear Poly Bag 20x30",
		NameHe:           "שקית ניילון שקופה 20x30",
		Price:            decimal.RequireFromString("45.50"),
		Stock:            stock,
		MinOrderQuantity: 100,
		IsActive:         true,
	}
	require.NoError(t, products.Create(product))
	return product
}

func orderRequest(productID uuid.UUID, quantity int, unitPrice string) *CreateOrderRequest {
	address := AddressRequest{
		Company:    "Levi Restaurants Ltd.",
		Street:     "Dizengoff 100",
		City:       "Tel Aviv",
		PostalCode: "6433222",
	}
	return &CreateOrderRequest{
		Items: []OrderItemRequest{
			{
				ProductID: productID,
				Quantity:  quantity,
				UnitPrice: decimal.RequireFromString(unitPrice),
			},
		},
		ShippingAddress: address,
		BillingAddress:  address,
		PaymentMethod:   models.PaymentMethodInvoice,
	}
}

func TestCreateOrderComputesTotalsAndDecrementsStock(t *testing.T) {
	svc, products, _ := newTestOrderService()
	product := seedProduct(t, products, 1000)
	companyID := uuid.New()

	order, err := svc.CreateOrder(companyID, orderRequest(product.ID, 100, "45.50"))
	require.NoError(t, err)

	assert.Equal(t, "4550.00", order.Subtotal.StringFixed(2))
	assert.Equal(t, "773.50", order.VATAmount.StringFixed(2))
	assert.Equal(t, "5323.50", order.Total.StringFixed(2))
	assert.Equal(t, "ILS", order.Currency)
	assert.Equal(t, models.OrderStatusPending, order.Status)
	assert.Equal(t, models.PaymentStatusPending, order.PaymentStatus)
	assert.True(t, strings.HasPrefix(order.OrderNumber, "TY-"))

	require.Len(t, order.Items, 1)
	assert.Equal(t, "4550.00", order.Items[0].Total.StringFixed(2))

	stored, err := products.FindByID(product.ID)
	require.NoError(t, err)
	assert.Equal(t, 900, stored.Stock)

	assert.Equal(t, "Tel Aviv", order.ShippingAddress["city"])
}

func TestCreateOrderInsufficientStock(t *testing.T) {
	svc, products, orders := newTestOrderService()
	product := seedProduct(t, products, 50)

	_, err := svc.CreateOrder(uuid.New(), orderRequest(product.ID, 100, "45.50"))
	assert.True(t, errors.Is(err, repository.ErrInsufficientStock))

	// Nothing persisted, stock untouched.
	stored, err := products.FindByID(product.ID)
	require.NoError(t, err)
	assert.Equal(t, 50, stored.Stock)
	assert.Empty(t, orders.orders)
}

func TestCreateOrderConcurrentIntakeNeverOversells(t *testing.T) {
	svc, products, _ := newTestOrderService()
	product := seedProduct(t, products, 5)

	var wg sync.WaitGroup
	results := make(chan error, 2)
	for i := 0; i < 2; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_, err := svc.CreateOrder(uuid.New(), orderRequest(product.ID, 5, "45.50"))
			results <- err
		}()
	}
	wg.Wait()
	close(results)

	var succeeded, failed int
	for err := range results {
		if err == nil {
			succeeded++
		} else if errors.Is(err, repository.ErrInsufficientStock) {
			failed++
		} else {
			t.Fatalf("unexpected error: %v", err)
		}
	}

	assert.Equal(t, 1, succeeded)
	assert.Equal(t, 1, failed)

	stored, err := products.FindByID(product.ID)
	require.NoError(t, err)
	assert.Equal(t, 0, stored.Stock)
}

func TestCreateOrderRejectsNegativePrice(t *testing.T) {
	svc, products, _ := newTestOrderService()
	product := seedProduct(t, products, 1000)

	req := orderRequest(product.ID, 10, "45.50")
	req.Items[0].UnitPrice = decimal.RequireFromString("-1.00")

	_, err := svc.CreateOrder(uuid.New(), req)
	assert.True(t, errors.Is(err, ErrValidation))
}

func TestListOrdersRejectsMalformedCompanyFilter(t *testing.T) {
	svc, _, _ := newTestOrderService()

	_, err := svc.ListOrders(uuid.New(), models.UserRoleOwner, "not-a-uuid", 0)
	assert.True(t, errors.Is(err, ErrValidation))
}

func TestCreateOrderExposesStripeClientSecret(t *testing.T) {
	products := newFakeProductRepo()
	orders := newFakeOrderRepo(products)
	svc := NewOrderService(orders, newFakeCompanyRepo(), nil, &stubPaymentIntents{})
	product := seedProduct(t, products, 1000)

	req := orderRequest(product.ID, 100, "45.50")
	req.PaymentMethod = models.PaymentMethodStripe

	order, err := svc.CreateOrder(uuid.New(), req)
	require.NoError(t, err)
	assert.Equal(t, "pi_test_secret", order.PaymentClientSecret)
}

func TestCreateOrderSurvivesPaymentIntentFailure(t *testing.T) {
	products := newFakeProductRepo()
	orders := newFakeOrderRepo(products)
	svc := NewOrderService(orders, newFakeCompanyRepo(), nil, &stubPaymentIntents{err: errors.New("stripe down")})
	product := seedProduct(t, products, 1000)

	req := orderRequest(product.ID, 100, "45.50")
	req.PaymentMethod = models.PaymentMethodStripe

	order, err := svc.CreateOrder(uuid.New(), req)
	require.NoError(t, err)
	assert.Empty(t, order.PaymentClientSecret)

	stored, err := orders.FindByID(order.ID)
	require.NoError(t, err)
	assert.Equal(t, order.OrderNumber, stored.OrderNumber)
}

func TestCreateOrderInvoiceHasNoClientSecret(t *testing.T) {
	products := newFakeProductRepo()
	orders := newFakeOrderRepo(products)
	svc := NewOrderService(orders, newFakeCompanyRepo(), nil, &stubPaymentIntents{})
	product := seedProduct(t, products, 1000)

	order, err := svc.CreateOrder(uuid.New(), orderRequest(product.ID, 100, "45.50"))
	require.NoError(t, err)
	assert.Empty(t, order.PaymentClientSecret)
}

func TestOrderNumbersAreUnique(t *testing.T) {
	seen := make(map[string]bool)
	for i := 0; i < 100; i++ {
		number := NewOrderNumber()
		assert.True(t, strings.HasPrefix(number, "TY-"))
		assert.Equal(t, strings.ToUpper(number), number)
		assert.False(t, seen[number])
		seen[number] = true
	}
}

func TestListOrdersScopedToCompany(t *testing.T) {
	svc, products, _ := newTestOrderService()
	product := seedProduct(t, products, 1000)

	companyA := uuid.New()
	companyB := uuid.New()

	_, err := svc.CreateOrder(companyA, orderRequest(product.ID, 100, "45.50"))
	require.NoError(t, err)
	_, err = svc.CreateOrder(companyB, orderRequest(product.ID, 100, "45.50"))
	require.NoError(t, err)

	mine, err := svc.ListOrders(companyA, models.UserRoleBuyer, "", 0)
	require.NoError(t, err)
	require.Len(t, mine, 1)
	assert.Equal(t, companyA, mine[0].CompanyID)

	// A buyer asking for another company's orders still gets their own.
	mine, err = svc.ListOrders(companyA, models.UserRoleBuyer, companyB.String(), 0)
	require.NoError(t, err)
	require.Len(t, mine, 1)
	assert.Equal(t, companyA, mine[0].CompanyID)

	// OWNER may look across companies.
	theirs, err := svc.ListOrders(companyA, models.UserRoleOwner, companyB.String(), 0)
	require.NoError(t, err)
	require.Len(t, theirs, 1)
	assert.Equal(t, companyB, theirs[0].CompanyID)
}

func TestGetOrderForeignCompanyHidden(t *testing.T) {
	svc, products, _ := newTestOrderService()
	product := seedProduct(t, products, 1000)

	companyA := uuid.New()
	order, err := svc.CreateOrder(companyA, orderRequest(product.ID, 100, "45.50"))
	require.NoError(t, err)

	_, err = svc.GetOrder(order.ID, uuid.New(), models.UserRoleBuyer)
	assert.True(t, errors.Is(err, repository.ErrNotFound))

	found, err := svc.GetOrder(order.ID, companyA, models.UserRoleBuyer)
	require.NoError(t, err)
	assert.Equal(t, order.OrderNumber, found.OrderNumber)
}
