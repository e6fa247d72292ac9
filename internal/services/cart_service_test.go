// internal/services/cart_service_test.go
package services

import (
	"errors"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/typackaging/backend/internal/repository"
)

func TestCheckAvailability(t *testing.T) {
	products := newFakeProductRepo()
	svc := NewCartService(products)
	product := seedProduct(t, products, 200)

	checked, err := svc.CheckAvailability(&CartItemRequest{
		ProductID: product.ID,
		Quantity:  100,
	})
	require.NoError(t, err)
	assert.Equal(t, product.ID, checked.ID)
}

func TestCheckAvailabilityInsufficientStock(t *testing.T) {
	products := newFakeProductRepo()
	svc := NewCartService(products)
	product := seedProduct(t, products, 50)

	_, err := svc.CheckAvailability(&CartItemRequest{
		ProductID: product.ID,
		Quantity:  100,
	})
	assert.True(t, errors.Is(err, repository.ErrInsufficientStock))
}

func TestCheckAvailabilityUnknownProduct(t *testing.T) {
	svc := NewCartService(newFakeProductRepo())

	_, err := svc.CheckAvailability(&CartItemRequest{
		ProductID: uuid.New(),
		Quantity:  1,
	})
	assert.True(t, errors.Is(err, repository.ErrNotFound))
}

func TestCheckAvailabilityInactiveProduct(t *testing.T) {
	products := newFakeProductRepo()
	svc := NewCartService(products)
	product := seedProduct(t, products, 200)
	require.NoError(t, products.Deactivate(product.ID))

	_, err := svc.CheckAvailability(&CartItemRequest{
		ProductID: product.ID,
		Quantity:  1,
	})
	assert.True(t, errors.Is(err, repository.ErrNotFound))
}
