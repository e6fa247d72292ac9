// internal/models/company.go
package models

type Company struct {
	BaseModel
	Name       string      `json:"name" gorm:"size:255;not null"`
	NameEn     string      `json:"name_en" gorm:"size:255"`
	BusinessID string      `json:"business_id" gorm:"size:50"`
	VATNumber  string      `json:"vat_number" gorm:"size:50"`
	Address    string      `json:"address" gorm:"size:255"`
	City       string      `json:"city" gorm:"size:100"`
	PostalCode string      `json:"postal_code" gorm:"size:20"`
	Phone      string      `json:"phone" gorm:"size:50"`
	Email      string      `json:"email" gorm:"size:255"`
	Tier       CompanyTier `json:"tier" gorm:"type:varchar(20);default:'retail'"`

	// Relationships
	Users  []User  `json:"users,omitempty" gorm:"foreignKey:CompanyID"`
	Orders []Order `json:"orders,omitempty" gorm:"foreignKey:CompanyID"`
}
