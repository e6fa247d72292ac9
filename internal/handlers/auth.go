// internal/handlers/auth.go
package handlers

import (
	"errors"

	"github.com/gin-gonic/gin"

	"github.com/typackaging/backend/internal/i18n"
	"github.com/typackaging/backend/internal/repository"
	"github.com/typackaging/backend/internal/services"
	"github.com/typackaging/backend/internal/utils"
)

type AuthHandler struct {
	authService *services.AuthService
}

func NewAuthHandler(authService *services.AuthService) *AuthHandler {
	return &AuthHandler{
		authService: authService,
	}
}

// POST /auth/register
func (h *AuthHandler) Register(c *gin.Context) {
	lang := utils.GetLangFromContext(c)

	var req services.RegisterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.BadRequestResponse(c, i18n.T(lang, i18n.KeyValidationInvalid, "input"), err.Error())
		return
	}

	if validationErrors := utils.GetValidationErrors(utils.ValidateStruct(&req)); len(validationErrors) > 0 {
		utils.ValidationErrorResponse(c, validationErrors)
		return
	}

	authResponse, err := h.authService.Register(&req)
	if err != nil {
		if errors.Is(err, repository.ErrDuplicate) {
			utils.ConflictResponse(c, i18n.T(lang, i18n.KeyAuthUserExists))
			return
		}
		utils.InternalErrorResponse(c, err.Error())
		return
	}

	utils.CreatedResponse(c, gin.H{
		"message":    i18n.T(lang, i18n.KeyAuthRegisterSuccess),
		"user_id":    authResponse.User.ID,
		"user":       authResponse.User,
		"token":      authResponse.AccessToken,
		"token_type": authResponse.TokenType,
		"expires_in": authResponse.ExpiresIn,
	})
}

// POST /auth/login
func (h *AuthHandler) Login(c *gin.Context) {
	lang := utils.GetLangFromContext(c)

	var req services.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.BadRequestResponse(c, i18n.T(lang, i18n.KeyValidationInvalid, "input"), err.Error())
		return
	}

	if validationErrors := utils.GetValidationErrors(utils.ValidateStruct(&req)); len(validationErrors) > 0 {
		utils.ValidationErrorResponse(c, validationErrors)
		return
	}

	authResponse, err := h.authService.Login(&req)
	if err != nil {
		if errors.Is(err, services.ErrUnauthorized) {
			utils.UnauthorizedResponse(c, i18n.T(lang, i18n.KeyAuthInvalidCredentials))
			return
		}
		utils.InternalErrorResponse(c, err.Error())
		return
	}

	utils.SuccessResponse(c, gin.H{
		"message":    i18n.T(lang, i18n.KeyAuthLoginSuccess),
		"user":       authResponse.User,
		"token":      authResponse.AccessToken,
		"token_type": authResponse.TokenType,
		"expires_in": authResponse.ExpiresIn,
	})
}

// POST /auth/logout
func (h *AuthHandler) Logout(c *gin.Context) {
	lang := utils.GetLangFromContext(c)

	// Sessions are stateless JWTs; the client discards the token.
	utils.SuccessResponse(c, gin.H{
		"message": i18n.T(lang, i18n.KeyAuthLogoutSuccess),
	})
}

// GET /auth/me
func (h *AuthHandler) GetProfile(c *gin.Context) {
	userID, exists := utils.GetUserIDFromContext(c)
	if !exists {
		lang := utils.GetLangFromContext(c)
		utils.UnauthorizedResponse(c, i18n.T(lang, i18n.KeyAuthRequired))
		return
	}

	user, err := h.authService.GetUserByID(userID)
	if err != nil {
		utils.NotFoundResponse(c, "user")
		return
	}

	utils.SuccessResponse(c, gin.H{
		"user": user,
	})
}
