// internal/models/product.go
package models

import (
	"github.com/google/uuid"
	"github.com/lib/pq"
	"github.com/shopspring/decimal"
)

type Product struct {
	BaseModel
	Slug               string          `json:"slug" gorm:"uniqueIndex;size:100;not null"`
	SKU                string          `json:"sku" gorm:"uniqueIndex;size:100;not null"`
	NameEn             string          `json:"name_en" gorm:"size:255;not null"`
	NameHe             string          `json:"name_he" gorm:"size:255;not null"`
	DescriptionEn      string          `json:"description_en" gorm:"type:text"`
	DescriptionHe      string          `json:"description_he" gorm:"type:text"`
	ShortDescriptionEn string          `json:"short_description_en" gorm:"size:512"`
	ShortDescriptionHe string          `json:"short_description_he" gorm:"size:512"`
	CategoryID         uuid.UUID       `json:"category_id" gorm:"type:uuid;not null;index"`
	Price              decimal.Decimal `json:"price" gorm:"type:decimal(10,2);not null"`
	Stock              int             `json:"stock" gorm:"default:0"`
	MinOrderQuantity   int             `json:"min_order_quantity" gorm:"default:1"`
	PackMultiple       int             `json:"pack_multiple" gorm:"default:1"`
	Material           string          `json:"material" gorm:"size:100;index"`
	Thickness          float64         `json:"thickness"`
	SizeLength         float64         `json:"size_length"`
	SizeWidth          float64         `json:"size_width"`
	SizeHeight         float64         `json:"size_height"`
	Color              string          `json:"color" gorm:"size:50"`
	Usage              string          `json:"usage" gorm:"size:255"`
	Images             pq.StringArray  `json:"images" gorm:"type:text[]"`
	FoodGrade          bool            `json:"food_grade" gorm:"default:false"`
	IsActive           bool            `json:"is_active" gorm:"default:true;index"`
	IsFeatured         bool            `json:"is_featured" gorm:"default:false"`

	// Relationships
	Category Category `json:"category,omitempty" gorm:"foreignKey:CategoryID"`
}
