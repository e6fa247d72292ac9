// internal/services/auth_service.go
package services

import (
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"

	"github.com/typackaging/backend/internal/config"
	"github.com/typackaging/backend/internal/models"
	"github.com/typackaging/backend/internal/repository"
	"github.com/typackaging/backend/internal/utils"
)

type AuthService struct {
	users     repository.UserRepository
	companies repository.CompanyRepository
	cfg       *config.Config
}

type LoginRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required,min=6"`
}

type RegisterRequest struct {
	Email       string `json:"email" validate:"required,email"`
	Password    string `json:"password" validate:"required,min=6"`
	Name        string `json:"name" validate:"required,min=1"`
	CompanyName string `json:"companyName" validate:"required,min=1"`
	BusinessID  string `json:"businessId,omitempty"`
	VATNumber   string `json:"vatNumber,omitempty"`
	Phone       string `json:"phone,omitempty"`
	Address     string `json:"address,omitempty"`
	City        string `json:"city,omitempty"`
	PostalCode  string `json:"postalCode,omitempty"`
}

type AuthResponse struct {
	User        *models.User `json:"user"`
	AccessToken string       `json:"access_token"`
	TokenType   string       `json:"token_type"`
	ExpiresIn   int          `json:"expires_in"` // in seconds
}

func NewAuthService(users repository.UserRepository, companies repository.CompanyRepository, cfg *config.Config) *AuthService {
	return &AuthService{
		users:     users,
		companies: companies,
		cfg:       cfg,
	}
}

// Register creates the buyer's company and its OWNER user in one call.
// New companies always start on the retail tier.
func (s *AuthService) Register(req *RegisterRequest) (*AuthResponse, error) {
	if err := utils.ValidateStruct(req); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrValidation, err)
	}

	if _, err := s.users.FindByEmail(req.Email); err == nil {
		return nil, repository.ErrDuplicate
	} else if !errors.Is(err, repository.ErrNotFound) {
		return nil, err
	}

	company := &models.Company{
		Name:       req.CompanyName,
		NameEn:     req.CompanyName,
		BusinessID: req.BusinessID,
		VATNumber:  req.VATNumber,
		Phone:      req.Phone,
		Address:    req.Address,
		City:       req.City,
		PostalCode: req.PostalCode,
		Email:      req.Email,
		Tier:       models.CompanyTierRetail,
	}
	if err := s.companies.Create(company); err != nil {
		return nil, fmt.Errorf("failed to create company: %w", err)
	}

	user := &models.User{
		Email:     req.Email,
		Name:      req.Name,
		Role:      models.UserRoleOwner,
		CompanyID: company.ID,
		Language:  s.cfg.I18n.DefaultLocale,
	}
	if err := user.SetPassword(req.Password); err != nil {
		return nil, fmt.Errorf("failed to hash password: %w", err)
	}

	if err := s.users.Create(user); err != nil {
		return nil, err
	}
	user.Company = *company

	return s.issueTokens(user)
}

// Login resolves credentials to an identity. Bcrypt-formatted credentials get
// a constant-time comparison; anything else is accepted by plain equality only
// outside production (seeded development accounts).
func (s *AuthService) Login(req *LoginRequest) (*AuthResponse, error) {
	if err := utils.ValidateStruct(req); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrValidation, err)
	}

	user, err := s.users.FindByEmail(req.Email)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrUnauthorized
		}
		return nil, err
	}

	if user.PasswordHash == "" {
		logrus.WithField("email", req.Email).Warn("Login rejected: user has no credential set")
		return nil, ErrUnauthorized
	}

	if user.HasHashedPassword() {
		if err := user.CheckPassword(req.Password); err != nil {
			return nil, ErrUnauthorized
		}
	} else {
		if s.cfg.IsProduction() {
			logrus.WithField("email", req.Email).Error("Plain text credential detected in production")
			return nil, ErrUnauthorized
		}
		// Dev-only fallback for unhashed seeded credentials.
		if req.Password != user.PasswordHash {
			return nil, ErrUnauthorized
		}
		logrus.WithField("email", req.Email).Warn("Login via plain text credential (development only)")
	}

	now := time.Now()
	user.LastLoginAt = &now
	if err := s.users.Save(user); err != nil {
		logrus.WithError(err).Warn("Failed to record last login time")
	}

	return s.issueTokens(user)
}

func (s *AuthService) GetUserByID(id string) (*models.User, error) {
	userID, err := uuid.Parse(id)
	if err != nil {
		return nil, repository.ErrNotFound
	}
	return s.users.FindByID(userID)
}

func (s *AuthService) issueTokens(user *models.User) (*AuthResponse, error) {
	companyClaim := utils.CompanyClaim{
		ID:   user.CompanyID.String(),
		Name: user.Company.Name,
		Tier: string(user.Company.Tier),
	}

	accessToken, err := utils.GenerateJWT(user.ID, user.Name, string(user.Role), companyClaim, s.cfg.JWT.AccessTokenTTL)
	if err != nil {
		return nil, fmt.Errorf("failed to generate access token: %w", err)
	}

	return &AuthResponse{
		User:        user,
		AccessToken: accessToken,
		TokenType:   "Bearer",
		ExpiresIn:   s.cfg.JWT.AccessTokenTTL * 3600,
	}, nil
}
