// internal/handlers/cart.go
package handlers

import (
	"errors"

	"github.com/gin-gonic/gin"

	"github.com/typackaging/backend/internal/i18n"
	"github.com/typackaging/backend/internal/repository"
	"github.com/typackaging/backend/internal/services"
	"github.com/typackaging/backend/internal/utils"
)

// CartHandler exposes the stateless cart endpoints. The cart itself lives
// client-side; the server only validates prospective items against the
// live catalog.
type CartHandler struct {
	cartService *services.CartService
}

func NewCartHandler(cartService *services.CartService) *CartHandler {
	return &CartHandler{
		cartService: cartService,
	}
}

// GET /cart
func (h *CartHandler) GetCart(c *gin.Context) {
	utils.SuccessResponse(c, gin.H{
		"items": []interface{}{},
	})
}

// POST /cart
func (h *CartHandler) CheckItem(c *gin.Context) {
	lang := utils.GetLangFromContext(c)

	var req services.CartItemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.BadRequestResponse(c, i18n.T(lang, i18n.KeyValidationInvalid, "input"), err.Error())
		return
	}

	if validationErrors := utils.GetValidationErrors(utils.ValidateStruct(&req)); len(validationErrors) > 0 {
		utils.ValidationErrorResponse(c, validationErrors)
		return
	}

	product, err := h.cartService.CheckAvailability(&req)
	if err != nil {
		switch {
		case errors.Is(err, repository.ErrNotFound):
			utils.NotFoundResponse(c, "product")
		case errors.Is(err, repository.ErrInsufficientStock):
			utils.InsufficientStockResponse(c)
		case errors.Is(err, services.ErrValidation):
			utils.BadRequestResponse(c, err.Error(), nil)
		default:
			utils.InternalErrorResponse(c, err.Error())
		}
		return
	}

	utils.SuccessResponse(c, gin.H{
		"message": i18n.T(lang, i18n.KeyProductAddedToCart),
		"product": product,
	})
}
