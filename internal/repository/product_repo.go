// internal/repository/product_repo.go
package repository

import (
	"errors"
	"fmt"
	"strings"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/typackaging/backend/internal/models"
)

// ProductFilter narrows public and admin product listings.
type ProductFilter struct {
	Search     string
	CategoryID *uuid.UUID
	Material   string
	Featured   *bool
	ActiveOnly bool
	Page       int
	Limit      int
}

type ProductRepository interface {
	Create(product *models.Product) error
	FindByID(id uuid.UUID) (*models.Product, error)
	FindBySlug(slug string) (*models.Product, error)
	FindBySKU(sku string) (*models.Product, error)
	Search(filter ProductFilter) ([]models.Product, int64, error)
	Updates(id uuid.UUID, updates map[string]interface{}) (*models.Product, error)
	Deactivate(id uuid.UUID) error
}

type productRepository struct {
	db *gorm.DB
}

func NewProductRepository(db *gorm.DB) ProductRepository {
	return &productRepository{db: db}
}

func (r *productRepository) Create(product *models.Product) error {
	if err := r.db.Create(product).Error; err != nil {
		if isUniqueViolation(err) {
			return ErrDuplicate
		}
		return fmt.Errorf("failed to create product: %w", err)
	}
	return nil
}

func (r *productRepository) FindByID(id uuid.UUID) (*models.Product, error) {
	var product models.Product
	if err := r.db.Preload("Category").First(&product, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("database error: %w", err)
	}
	return &product, nil
}

func (r *productRepository) FindBySlug(slug string) (*models.Product, error) {
	var product models.Product
	if err := r.db.Preload("Category").First(&product, "slug = ?", slug).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("database error: %w", err)
	}
	return &product, nil
}

func (r *productRepository) FindBySKU(sku string) (*models.Product, error) {
	var product models.Product
	if err := r.db.First(&product, "sku = ?", sku).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("database error: %w", err)
	}
	return &product, nil
}

func (r *productRepository) Search(filter ProductFilter) ([]models.Product, int64, error) {
	query := r.db.Model(&models.Product{}).Preload("Category")

	if filter.ActiveOnly {
		query = query.Where("is_active = ?", true)
	}

	if filter.CategoryID != nil {
		query = query.Where("category_id = ?", *filter.CategoryID)
	}

	if filter.Material != "" {
		query = query.Where("material = ?", filter.Material)
	}

	if filter.Featured != nil {
		query = query.Where("is_featured = ?", *filter.Featured)
	}

	if filter.Search != "" {
		searchTerm := "%" + strings.ToLower(filter.Search) + "%"
		query = query.Where(
			"LOWER(name_en) LIKE ? OR LOWER(name_he) LIKE ? OR LOWER(description_en) LIKE ? OR LOWER(description_he) LIKE ? OR LOWER(sku) LIKE ?",
			searchTerm, searchTerm, searchTerm, searchTerm, searchTerm,
		)
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, fmt.Errorf("failed to count products: %w", err)
	}

	query = query.Order("created_at DESC")

	if filter.Limit > 0 {
		page := filter.Page
		if page < 1 {
			page = 1
		}
		query = query.Offset((page - 1) * filter.Limit).Limit(filter.Limit)
	}

	var products []models.Product
	if err := query.Find(&products).Error; err != nil {
		return nil, 0, fmt.Errorf("failed to fetch products: %w", err)
	}

	return products, total, nil
}

func (r *productRepository) Updates(id uuid.UUID, updates map[string]interface{}) (*models.Product, error) {
	var product models.Product
	if err := r.db.First(&product, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("database error: %w", err)
	}

	if err := r.db.Model(&product).Updates(updates).Error; err != nil {
		if isUniqueViolation(err) {
			return nil, ErrDuplicate
		}
		return nil, fmt.Errorf("failed to update product: %w", err)
	}

	if err := r.db.Preload("Category").First(&product, "id = ?", id).Error; err != nil {
		return nil, fmt.Errorf("database error: %w", err)
	}
	return &product, nil
}

func (r *productRepository) Deactivate(id uuid.UUID) error {
	result := r.db.Model(&models.Product{}).Where("id = ?", id).Update("is_active", false)
	if result.Error != nil {
		return fmt.Errorf("failed to deactivate product: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}

// isUniqueViolation detects Postgres unique-constraint failures (SQLSTATE 23505).
func isUniqueViolation(err error) bool {
	return err != nil && (errors.Is(err, gorm.ErrDuplicatedKey) ||
		strings.Contains(err.Error(), "23505") ||
		strings.Contains(err.Error(), "duplicate key"))
}
