// internal/models/category.go
package models

type Category struct {
	BaseModel
	Slug          string `json:"slug" gorm:"uniqueIndex;size:100;not null"`
	NameEn        string `json:"name_en" gorm:"size:255;not null"`
	NameHe        string `json:"name_he" gorm:"size:255;not null"`
	DescriptionEn string `json:"description_en" gorm:"type:text"`
	DescriptionHe string `json:"description_he" gorm:"type:text"`
	Image         string `json:"image" gorm:"size:512"`
	DisplayOrder  int    `json:"display_order" gorm:"column:display_order;default:0"`

	// Relationships
	Products []Product `json:"products,omitempty" gorm:"foreignKey:CategoryID"`
}

// LocalizedCategory is the locale-projected shape returned by the public API.
type LocalizedCategory struct {
	ID           string `json:"id"`
	Slug         string `json:"slug"`
	Name         string `json:"name"`
	NameEn       string `json:"name_en"`
	NameHe       string `json:"name_he"`
	Description  string `json:"description"`
	Image        string `json:"image,omitempty"`
	DisplayOrder int    `json:"display_order"`
}

func (c *Category) Localize(locale string) LocalizedCategory {
	lc := LocalizedCategory{
		ID:           c.ID.String(),
		Slug:         c.Slug,
		Name:         c.NameEn,
		NameEn:       c.NameEn,
		NameHe:       c.NameHe,
		Description:  c.DescriptionEn,
		Image:        c.Image,
		DisplayOrder: c.DisplayOrder,
	}
	if locale == "he" {
		lc.Name = c.NameHe
		lc.Description = c.DescriptionHe
	}
	return lc
}
