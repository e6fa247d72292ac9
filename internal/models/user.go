// internal/models/user.go
package models

import (
	"strings"
	"time"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
)

type User struct {
	BaseModel
	Email        string     `json:"email" gorm:"uniqueIndex;size:255;not null"`
	PasswordHash string     `json:"-" gorm:"column:password;size:255"`
	Name         string     `json:"name" gorm:"size:255;not null"`
	Role         UserRole   `json:"role" gorm:"type:varchar(20);default:'BUYER'"`
	CompanyID    uuid.UUID  `json:"company_id" gorm:"type:uuid;not null;index"`
	Language     string     `json:"language" gorm:"size:5;default:'he'"`
	LastLoginAt  *time.Time `json:"last_login_at"`

	// Relationships
	Company Company `json:"company,omitempty" gorm:"foreignKey:CompanyID"`
}

func (u *User) SetPassword(password string) error {
	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return err
	}
	u.PasswordHash = string(hashedPassword)
	return nil
}

func (u *User) CheckPassword(password string) error {
	return bcrypt.CompareHashAndPassword([]byte(u.PasswordHash), []byte(password))
}

// HasHashedPassword reports whether the stored credential is a bcrypt hash.
// Plain-text credentials exist only in seeded development databases.
func (u *User) HasHashedPassword() bool {
	return strings.HasPrefix(u.PasswordHash, "$2")
}

func (u *User) IsPrivileged() bool {
	return u.Role == UserRoleOwner || u.Role == UserRoleAdmin
}
