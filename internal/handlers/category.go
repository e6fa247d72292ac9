// internal/handlers/category.go
package handlers

import (
	"github.com/gin-gonic/gin"

	"github.com/typackaging/backend/internal/services"
	"github.com/typackaging/backend/internal/utils"
)

type CategoryHandler struct {
	productService *services.ProductService
}

func NewCategoryHandler(productService *services.ProductService) *CategoryHandler {
	return &CategoryHandler{
		productService: productService,
	}
}

// GET /categories
func (h *CategoryHandler) GetCategories(c *gin.Context) {
	locale := c.Query("locale")
	if locale == "" {
		locale = utils.GetLangFromContext(c)
	}

	categories, err := h.productService.ListCategories(locale)
	if err != nil {
		utils.InternalErrorResponse(c, err.Error())
		return
	}

	utils.SuccessResponse(c, gin.H{
		"categories": categories,
	})
}
