// internal/repository/company_repo.go
package repository

import (
	"errors"
	"fmt"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/typackaging/backend/internal/models"
)

type CompanyRepository interface {
	Create(company *models.Company) error
	FindByID(id uuid.UUID) (*models.Company, error)
}

type companyRepository struct {
	db *gorm.DB
}

func NewCompanyRepository(db *gorm.DB) CompanyRepository {
	return &companyRepository{db: db}
}

func (r *companyRepository) Create(company *models.Company) error {
	if err := r.db.Create(company).Error; err != nil {
		return fmt.Errorf("failed to create company: %w", err)
	}
	return nil
}

func (r *companyRepository) FindByID(id uuid.UUID) (*models.Company, error) {
	var company models.Company
	if err := r.db.First(&company, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("database error: %w", err)
	}
	return &company, nil
}
