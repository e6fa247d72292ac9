// internal/models/order.go
package models

import (
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

type Order struct {
	BaseModel
	OrderNumber     string          `json:"order_number" gorm:"uniqueIndex;size:50;not null"`
	CompanyID       uuid.UUID       `json:"company_id" gorm:"type:uuid;not null;index"`
	Status          OrderStatus     `json:"status" gorm:"type:varchar(20);default:'PENDING';index"`
	PaymentMethod   PaymentMethod   `json:"payment_method" gorm:"type:varchar(20);not null"`
	PaymentStatus   PaymentStatus   `json:"payment_status" gorm:"type:varchar(20);default:'PENDING'"`
	Subtotal        decimal.Decimal `json:"subtotal" gorm:"type:decimal(12,2);not null"`
	VATRate         decimal.Decimal `json:"vat_rate" gorm:"type:decimal(5,2);not null"`
	VATAmount       decimal.Decimal `json:"vat_amount" gorm:"type:decimal(12,2);not null"`
	Shipping        decimal.Decimal `json:"shipping" gorm:"type:decimal(12,2);default:0"`
	Discount        decimal.Decimal `json:"discount" gorm:"type:decimal(12,2);default:0"`
	Total           decimal.Decimal `json:"total" gorm:"type:decimal(12,2);not null"`
	Currency        string          `json:"currency" gorm:"size:3;default:'ILS'"`
	ShippingAddress JSONB           `json:"shipping_address" gorm:"type:jsonb"`
	BillingAddress  JSONB           `json:"billing_address" gorm:"type:jsonb"`
	Notes           string          `json:"notes" gorm:"type:text"`

	// PaymentClientSecret is set on creation responses for STRIPE orders so
	// the buyer can complete payment. Never persisted.
	PaymentClientSecret string `json:"payment_client_secret,omitempty" gorm:"-"`

	// Relationships
	Company Company     `json:"company,omitempty" gorm:"foreignKey:CompanyID"`
	Items   []OrderItem `json:"items" gorm:"foreignKey:OrderID"`
}

type OrderItem struct {
	BaseModel
	OrderID   uuid.UUID       `json:"order_id" gorm:"type:uuid;not null;index"`
	ProductID uuid.UUID       `json:"product_id" gorm:"type:uuid;not null;index"`
	VariantID *uuid.UUID      `json:"variant_id,omitempty" gorm:"type:uuid"`
	Quantity  int             `json:"quantity" gorm:"not null"`
	UnitPrice decimal.Decimal `json:"unit_price" gorm:"type:decimal(10,2);not null"`
	Total     decimal.Decimal `json:"total" gorm:"type:decimal(12,2);not null"`

	// Relationships
	Product Product `json:"product,omitempty" gorm:"foreignKey:ProductID"`
}
