// internal/repository/order_repo.go
package repository

import (
	"errors"
	"fmt"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/typackaging/backend/internal/models"
)

type OrderRepository interface {
	// CreateWithStockDecrement persists the order with its items and applies a
	// conditional stock decrement per line, all inside one transaction. A line
	// whose product lacks sufficient stock fails the whole order with
	// ErrInsufficientStock and rolls everything back, so stock never goes
	// negative under concurrent intake.
	CreateWithStockDecrement(order *models.Order) error
	FindByID(id uuid.UUID) (*models.Order, error)
	ListByCompany(companyID uuid.UUID, limit int) ([]models.Order, error)
}

type orderRepository struct {
	db *gorm.DB
}

func NewOrderRepository(db *gorm.DB) OrderRepository {
	return &orderRepository{db: db}
}

func (r *orderRepository) CreateWithStockDecrement(order *models.Order) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(order).Error; err != nil {
			if isUniqueViolation(err) {
				return ErrDuplicate
			}
			return fmt.Errorf("failed to create order: %w", err)
		}

		for _, item := range order.Items {
			result := tx.Model(&models.Product{}).
				Where("id = ? AND stock >= ?", item.ProductID, item.Quantity).
				Update("stock", gorm.Expr("stock - ?", item.Quantity))
			if result.Error != nil {
				return fmt.Errorf("failed to decrement stock: %w", result.Error)
			}
			if result.RowsAffected == 0 {
				return ErrInsufficientStock
			}
		}

		return nil
	})
}

func (r *orderRepository) FindByID(id uuid.UUID) (*models.Order, error) {
	var order models.Order
	err := r.db.Preload("Items").Preload("Items.Product").Preload("Company").
		First(&order, "id = ?", id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("database error: %w", err)
	}
	return &order, nil
}

func (r *orderRepository) ListByCompany(companyID uuid.UUID, limit int) ([]models.Order, error) {
	if limit <= 0 {
		limit = 50
	}

	var orders []models.Order
	err := r.db.Preload("Items").Preload("Items.Product").Preload("Company").
		Where("company_id = ?", companyID).
		Order("created_at DESC").
		Limit(limit).
		Find(&orders).Error
	if err != nil {
		return nil, fmt.Errorf("failed to fetch orders: %w", err)
	}
	return orders, nil
}
