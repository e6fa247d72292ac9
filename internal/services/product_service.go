// internal/services/product_service.go
package services

import (
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/lib/pq"
	"github.com/shopspring/decimal"

	"github.com/typackaging/backend/internal/models"
	"github.com/typackaging/backend/internal/repository"
	"github.com/typackaging/backend/internal/utils"
)

type ProductService struct {
	products   repository.ProductRepository
	categories repository.CategoryRepository
}

type CreateProductRequest struct {
	Slug               string          `json:"slug" validate:"required,slug"`
	SKU                string          `json:"sku" validate:"required,min=2,max=100"`
	NameEn             string          `json:"name_en" validate:"required,min=1"`
	NameHe             string          `json:"name_he" validate:"required,min=1"`
	DescriptionEn      string          `json:"description_en,omitempty"`
	DescriptionHe      string          `json:"description_he,omitempty"`
	ShortDescriptionEn string          `json:"short_description_en,omitempty"`
	ShortDescriptionHe string          `json:"short_description_he,omitempty"`
	CategoryID         uuid.UUID       `json:"category_id" validate:"required"`
	Price              decimal.Decimal `json:"price" validate:"required"`
	Stock              int             `json:"stock" validate:"min=0"`
	MinOrderQuantity   int             `json:"min_order_quantity" validate:"min=1"`
	PackMultiple       int             `json:"pack_multiple,omitempty"`
	Material           string          `json:"material,omitempty"`
	Thickness          float64         `json:"thickness,omitempty"`
	SizeLength         float64         `json:"size_length,omitempty"`
	SizeWidth          float64         `json:"size_width,omitempty"`
	SizeHeight         float64         `json:"size_height,omitempty"`
	Color              string          `json:"color,omitempty"`
	Usage              string          `json:"usage,omitempty"`
	Images             []string        `json:"images,omitempty"`
	FoodGrade          bool            `json:"food_grade"`
	IsActive           *bool           `json:"is_active,omitempty"`
	IsFeatured         bool            `json:"is_featured"`
}

// UpdateProductRequest carries a partial merge: nil fields are left untouched,
// set fields overwrite. There is no concurrency token; last writer wins.
type UpdateProductRequest struct {
	Slug               *string          `json:"slug,omitempty" validate:"omitempty,slug"`
	SKU                *string          `json:"sku,omitempty" validate:"omitempty,min=2,max=100"`
	NameEn             *string          `json:"name_en,omitempty" validate:"omitempty,min=1"`
	NameHe             *string          `json:"name_he,omitempty" validate:"omitempty,min=1"`
	DescriptionEn      *string          `json:"description_en,omitempty"`
	DescriptionHe      *string          `json:"description_he,omitempty"`
	ShortDescriptionEn *string          `json:"short_description_en,omitempty"`
	ShortDescriptionHe *string          `json:"short_description_he,omitempty"`
	CategoryID         *uuid.UUID       `json:"category_id,omitempty"`
	Price              *decimal.Decimal `json:"price,omitempty"`
	Stock              *int             `json:"stock,omitempty" validate:"omitempty,min=0"`
	MinOrderQuantity   *int             `json:"min_order_quantity,omitempty" validate:"omitempty,min=1"`
	PackMultiple       *int             `json:"pack_multiple,omitempty"`
	Material           *string          `json:"material,omitempty"`
	Thickness          *float64         `json:"thickness,omitempty"`
	SizeLength         *float64         `json:"size_length,omitempty"`
	SizeWidth          *float64         `json:"size_width,omitempty"`
	SizeHeight         *float64         `json:"size_height,omitempty"`
	Color              *string          `json:"color,omitempty"`
	Usage              *string          `json:"usage,omitempty"`
	Images             []string         `json:"images,omitempty"`
	FoodGrade          *bool            `json:"food_grade,omitempty"`
	IsActive           *bool            `json:"is_active,omitempty"`
	IsFeatured         *bool            `json:"is_featured,omitempty"`
}

func NewProductService(products repository.ProductRepository, categories repository.CategoryRepository) *ProductService {
	return &ProductService{
		products:   products,
		categories: categories,
	}
}

// ListProducts is the public storefront listing: active rows only.
func (s *ProductService) ListProducts(filter repository.ProductFilter) ([]models.Product, int64, error) {
	filter.ActiveOnly = true
	return s.products.Search(filter)
}

func (s *ProductService) GetProduct(id uuid.UUID) (*models.Product, error) {
	return s.products.FindByID(id)
}

func (s *ProductService) CreateProduct(req *CreateProductRequest) (*models.Product, error) {
	if err := utils.ValidateStruct(req); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrValidation, err)
	}

	if req.Price.IsNegative() {
		return nil, fmt.Errorf("%w: price must not be negative", ErrValidation)
	}

	if _, err := s.categories.FindByID(req.CategoryID); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, fmt.Errorf("%w: category not found", ErrValidation)
		}
		return nil, err
	}

	// Uniqueness pre-checks; the unique indexes remain the final authority.
	if _, err := s.products.FindBySlug(req.Slug); err == nil {
		return nil, repository.ErrDuplicate
	} else if !errors.Is(err, repository.ErrNotFound) {
		return nil, err
	}
	if _, err := s.products.FindBySKU(req.SKU); err == nil {
		return nil, repository.ErrDuplicate
	} else if !errors.Is(err, repository.ErrNotFound) {
		return nil, err
	}

	isActive := true
	if req.IsActive != nil {
		isActive = *req.IsActive
	}
	minOrder := req.MinOrderQuantity
	if minOrder < 1 {
		minOrder = 1
	}
	packMultiple := req.PackMultiple
	if packMultiple < 1 {
		packMultiple = 1
	}

	product := &models.Product{
		Slug:               req.Slug,
		SKU:                req.SKU,
		NameEn:             req.NameEn,
		NameHe:             req.NameHe,
		DescriptionEn:      req.DescriptionEn,
		DescriptionHe:      req.DescriptionHe,
		ShortDescriptionEn: req.ShortDescriptionEn,
		ShortDescriptionHe: req.ShortDescriptionHe,
		CategoryID:         req.CategoryID,
		Price:              req.Price,
		Stock:              req.Stock,
		MinOrderQuantity:   minOrder,
		PackMultiple:       packMultiple,
		Material:           req.Material,
		Thickness:          req.Thickness,
		SizeLength:         req.SizeLength,
		SizeWidth:          req.SizeWidth,
		SizeHeight:         req.SizeHeight,
		Color:              req.Color,
		Usage:              req.Usage,
		Images:             pq.StringArray(req.Images),
		FoodGrade:          req.FoodGrade,
		IsActive:           isActive,
		IsFeatured:         req.IsFeatured,
	}

	if err := s.products.Create(product); err != nil {
		return nil, err
	}

	return s.products.FindByID(product.ID)
}

func (s *ProductService) UpdateProduct(id uuid.UUID, req *UpdateProductRequest) (*models.Product, error) {
	if err := utils.ValidateStruct(req); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrValidation, err)
	}

	updates := make(map[string]interface{})
	if req.Slug != nil {
		updates["slug"] = *req.Slug
	}
	if req.SKU != nil {
		updates["sku"] = *req.SKU
	}
	if req.NameEn != nil {
		updates["name_en"] = *req.NameEn
	}
	if req.NameHe != nil {
		updates["name_he"] = *req.NameHe
	}
	if req.DescriptionEn != nil {
		updates["description_en"] = *req.DescriptionEn
	}
	if req.DescriptionHe != nil {
		updates["description_he"] = *req.DescriptionHe
	}
	if req.ShortDescriptionEn != nil {
		updates["short_description_en"] = *req.ShortDescriptionEn
	}
	if req.ShortDescriptionHe != nil {
		updates["short_description_he"] = *req.ShortDescriptionHe
	}
	if req.CategoryID != nil {
		if _, err := s.categories.FindByID(*req.CategoryID); err != nil {
			if errors.Is(err, repository.ErrNotFound) {
				return nil, fmt.Errorf("%w: category not found", ErrValidation)
			}
			return nil, err
		}
		updates["category_id"] = *req.CategoryID
	}
	if req.Price != nil {
		if req.Price.IsNegative() {
			return nil, fmt.Errorf("%w: price must not be negative", ErrValidation)
		}
		updates["price"] = *req.Price
	}
	if req.Stock != nil {
		updates["stock"] = *req.Stock
	}
	if req.MinOrderQuantity != nil {
		updates["min_order_quantity"] = *req.MinOrderQuantity
	}
	if req.PackMultiple != nil {
		updates["pack_multiple"] = *req.PackMultiple
	}
	if req.Material != nil {
		updates["material"] = *req.Material
	}
	if req.Thickness != nil {
		updates["thickness"] = *req.Thickness
	}
	if req.SizeLength != nil {
		updates["size_length"] = *req.SizeLength
	}
	if req.SizeWidth != nil {
		updates["size_width"] = *req.SizeWidth
	}
	if req.SizeHeight != nil {
		updates["size_height"] = *req.SizeHeight
	}
	if req.Color != nil {
		updates["color"] = *req.Color
	}
	if req.Usage != nil {
		updates["usage"] = *req.Usage
	}
	if req.Images != nil {
		updates["images"] = pq.StringArray(req.Images)
	}
	if req.FoodGrade != nil {
		updates["food_grade"] = *req.FoodGrade
	}
	if req.IsActive != nil {
		updates["is_active"] = *req.IsActive
	}
	if req.IsFeatured != nil {
		updates["is_featured"] = *req.IsFeatured
	}

	if len(updates) == 0 {
		return s.products.FindByID(id)
	}

	return s.products.Updates(id, updates)
}

// SoftDeleteProduct hides the product from public listings without touching
// its stock or any historical order lines that reference it.
func (s *ProductService) SoftDeleteProduct(id uuid.UUID) error {
	return s.products.Deactivate(id)
}

func (s *ProductService) ListCategories(locale string) ([]models.LocalizedCategory, error) {
	categories, err := s.categories.ListOrdered()
	if err != nil {
		return nil, err
	}

	localized := make([]models.LocalizedCategory, 0, len(categories))
	for i := range categories {
		localized = append(localized, categories[i].Localize(locale))
	}
	return localized, nil
}
