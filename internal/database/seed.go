// internal/database/seed.go
package database

import (
	"fmt"
	"log"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"

	"github.com/typackaging/backend/internal/models"
)

// SeedInitialData loads the starter catalog plus a sample company and an
// OWNER user. Safe to run repeatedly; existing rows are left untouched.
func SeedInitialData(db *gorm.DB) error {
	log.Println("Seeding initial data...")

	categories := []models.Category{
		{
			Slug:          "plastic-bags",
			NameEn:        "Plastic Bags",
			NameHe:        "שקיות פלסטיק",
			DescriptionEn: "Food-grade plastic bags for packaging",
			DescriptionHe: "שקיות פלסטיק למזון לאריזה",
			DisplayOrder:  1,
		},
		{
			Slug:          "nylon-rolls",
			NameEn:        "Nylon Rolls",
			NameHe:        "גלילי ניילון",
			DescriptionEn: "Heavy-duty nylon rolls for packaging",
			DescriptionHe: "גלילי ניילון עמידים לאריזה",
			DisplayOrder:  2,
		},
		{
			Slug:          "carton-boxes",
			NameEn:        "Carton Boxes",
			NameHe:        "קופסאות קרטון",
			DescriptionEn: "Recyclable carton boxes",
			DescriptionHe: "קופסאות קרטון ממוחזרות",
			DisplayOrder:  3,
		},
		{
			Slug:          "foam-trays",
			NameEn:        "Foam Trays",
			NameHe:        "מגשי קצף",
			DescriptionEn: "Food-grade foam trays",
			DescriptionHe: "מגשי קצף למזון",
			DisplayOrder:  4,
		},
	}

	bySlug := make(map[string]models.Category, len(categories))
	for _, category := range categories {
		var existing models.Category
		err := db.Where("slug = ?", category.Slug).First(&existing).Error
		if err == nil {
			bySlug[category.Slug] = existing
			continue
		}
		if err != gorm.ErrRecordNotFound {
			return fmt.Errorf("failed to look up category %s: %w", category.Slug, err)
		}
		if err := db.Create(&category).Error; err != nil {
			return fmt.Errorf("failed to create category %s: %w", category.Slug, err)
		}
		bySlug[category.Slug] = category
		log.Printf("Created category: %s", category.NameEn)
	}

	type seedProduct struct {
		models.Product
		categorySlug string
	}

	products := []seedProduct{
		{
			Product: models.Product{
				Slug:               "plastic-bags-clear-20x30",
				SKU:                "PB-20x30-CLEAR",
				NameEn:             "Clear Plastic Bags 20x30cm",
				NameHe:             "שקיות פלסטיק שקופות 20x30 ס\"מ",
				DescriptionEn:      "Food-grade clear plastic bags perfect for packaging fresh produce, meat, and other food items. Made from high-quality polyethylene.",
				DescriptionHe:      "שקיות פלסטיק שקופות למזון, מושלמות לאריזת פירות וירקות טריים, בשר ומוצרי מזון אחרים. עשויות מפוליאתילן איכותי.",
				ShortDescriptionEn: "Food-grade clear plastic bags",
				ShortDescriptionHe: "שקיות פלסטיק שקופות למזון",
				Price:              decimal.RequireFromString("45.50"),
				Stock:              1000,
				MinOrderQuantity:   100,
				PackMultiple:       100,
				Material:           "Plastic",
				Thickness:          20,
				SizeLength:         30,
				SizeWidth:          20,
				FoodGrade:          true,
				IsActive:           true,
				IsFeatured:         true,
			},
			categorySlug: "plastic-bags",
		},
		{
			Product: models.Product{
				Slug:               "nylon-rolls-50cm",
				SKU:                "NR-50CM",
				NameEn:             "Nylon Rolls 50cm Width",
				NameHe:             "גלילי ניילון רוחב 50 ס\"מ",
				DescriptionEn:      "Heavy-duty nylon rolls for packaging. Perfect for wrapping and protecting products.",
				DescriptionHe:      "גלילי ניילון עמידים לאריזה. מושלמים לעטיפה והגנה על מוצרים.",
				ShortDescriptionEn: "Heavy-duty nylon rolls",
				ShortDescriptionHe: "גלילי ניילון עמידים",
				Price:              decimal.RequireFromString("120.00"),
				Stock:              500,
				MinOrderQuantity:   10,
				PackMultiple:       10,
				Material:           "Nylon",
				Thickness:          30,
				FoodGrade:          true,
				IsActive:           true,
				IsFeatured:         true,
			},
			categorySlug: "nylon-rolls",
		},
		{
			Product: models.Product{
				Slug:               "carton-boxes-small",
				SKU:                "CB-SMALL",
				NameEn:             "Small Carton Boxes",
				NameHe:             "קופסאות קרטון קטנות",
				DescriptionEn:      "Recyclable carton boxes. Eco-friendly packaging solution.",
				DescriptionHe:      "קופסאות קרטון ממוחזרות. פתרון אריזה ידידותי לסביבה.",
				ShortDescriptionEn: "Recyclable carton boxes",
				ShortDescriptionHe: "קופסאות קרטון ממוחזרות",
				Price:              decimal.RequireFromString("8.50"),
				Stock:              2000,
				MinOrderQuantity:   50,
				PackMultiple:       50,
				Material:           "Carton",
				FoodGrade:          false,
				IsActive:           true,
				IsFeatured:         false,
			},
			categorySlug: "carton-boxes",
		},
		{
			Product: models.Product{
				Slug:               "foam-trays-standard",
				SKU:                "FT-STD",
				NameEn:             "Standard Foam Trays",
				NameHe:             "מגשי קצף סטנדרטיים",
				DescriptionEn:      "Food-grade foam trays for meat and produce packaging.",
				DescriptionHe:      "מגשי קצף למזון לאריזת בשר ופירות.",
				ShortDescriptionEn: "Food-grade foam trays",
				ShortDescriptionHe: "מגשי קצף למזון",
				Price:              decimal.RequireFromString("15.75"),
				Stock:              800,
				MinOrderQuantity:   20,
				PackMultiple:       20,
				Material:           "Foam",
				FoodGrade:          true,
				IsActive:           true,
				IsFeatured:         true,
			},
			categorySlug: "foam-trays",
		},
	}

	for _, p := range products {
		category, ok := bySlug[p.categorySlug]
		if !ok {
			continue
		}

		var count int64
		db.Model(&models.Product{}).Where("slug = ?", p.Slug).Count(&count)
		if count > 0 {
			continue
		}

		p.Product.CategoryID = category.ID
		if err := db.Create(&p.Product).Error; err != nil {
			return fmt.Errorf("failed to create product %s: %w", p.Slug, err)
		}
		log.Printf("Created product: %s", p.NameEn)
	}

	// Sample company and admin user
	var userCount int64
	db.Model(&models.User{}).Where("email = ?", "admin@typackaging.com").Count(&userCount)
	if userCount == 0 {
		company := models.Company{
			Name:       "Sample Company Ltd.",
			NameEn:     "Sample Company Ltd.",
			BusinessID: "123456789",
			VATNumber:  "IL123456789",
			Address:    "123 Main St",
			City:       "Tel Aviv",
			PostalCode: "12345",
			Phone:      "+972-50-1234567",
			Email:      "info@sample.com",
			Tier:       models.CompanyTierWholesaleA,
		}
		if err := db.Create(&company).Error; err != nil {
			return fmt.Errorf("failed to create sample company: %w", err)
		}

		admin := models.User{
			Email:     "admin@typackaging.com",
			Name:      "Admin User",
			Role:      models.UserRoleOwner,
			CompanyID: company.ID,
			Language:  "he",
		}
		if err := admin.SetPassword("admin123"); err != nil {
			return fmt.Errorf("failed to set admin password: %w", err)
		}
		if err := db.Create(&admin).Error; err != nil {
			return fmt.Errorf("failed to create admin user: %w", err)
		}

		log.Printf("Created admin user: %s", admin.Email)
		log.Printf("Created company: %s", company.Name)
	}

	log.Println("Initial data seeding completed")
	return nil
}
