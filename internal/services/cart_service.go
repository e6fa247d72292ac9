// internal/services/cart_service.go
package services

import (
	"fmt"

	"github.com/google/uuid"

	"github.com/typackaging/backend/internal/models"
	"github.com/typackaging/backend/internal/repository"
	"github.com/typackaging/backend/internal/utils"
)

// CartService backs the availability-check endpoint. The cart itself lives in
// the buyer's local storage; order intake does NOT consult this check, so a
// cart that passed here can still fail at order time.
type CartService struct {
	products repository.ProductRepository
}

type CartItemRequest struct {
	ProductID uuid.UUID  `json:"productId" validate:"required"`
	VariantID *uuid.UUID `json:"variantId,omitempty"`
	Quantity  int        `json:"quantity" validate:"required,min=1"`
}

func NewCartService(products repository.ProductRepository) *CartService {
	return &CartService{products: products}
}

// CheckAvailability verifies a prospective cart line against the live
// catalog: the product must exist, be active, and have enough stock.
func (s *CartService) CheckAvailability(req *CartItemRequest) (*models.Product, error) {
	if err := utils.ValidateStruct(req); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrValidation, err)
	}

	product, err := s.products.FindByID(req.ProductID)
	if err != nil {
		return nil, err
	}

	if !product.IsActive {
		return nil, repository.ErrNotFound
	}

	if product.Stock < req.Quantity {
		return nil, repository.ErrInsufficientStock
	}

	return product, nil
}
