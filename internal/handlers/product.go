// internal/handlers/product.go
package handlers

import (
	"errors"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/typackaging/backend/internal/i18n"
	"github.com/typackaging/backend/internal/repository"
	"github.com/typackaging/backend/internal/services"
	"github.com/typackaging/backend/internal/utils"
)

type ProductHandler struct {
	productService *services.ProductService
}

func NewProductHandler(productService *services.ProductService) *ProductHandler {
	return &ProductHandler{
		productService: productService,
	}
}

// GET /products
func (h *ProductHandler) GetProducts(c *gin.Context) {
	params := utils.GetPaginationParams(c)

	filter := repository.ProductFilter{
		Search:   params.Search,
		Material: c.Query("material"),
		Page:     params.Page,
		Limit:    params.Limit,
	}

	if categoryIDStr := c.Query("categoryId"); categoryIDStr != "" {
		if categoryID, err := uuid.Parse(categoryIDStr); err == nil {
			filter.CategoryID = &categoryID
		}
	}

	if featuredStr := c.Query("featured"); featuredStr != "" {
		featured := featuredStr == "true"
		filter.Featured = &featured
	}

	products, total, err := h.productService.ListProducts(filter)
	if err != nil {
		utils.InternalErrorResponse(c, err.Error())
		return
	}

	result := utils.CreatePaginationResult(products, total, params)
	utils.PaginatedResponse(c, result)
}

// GET /products/:id
func (h *ProductHandler) GetProduct(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		utils.BadRequestResponse(c, "Invalid product ID", nil)
		return
	}

	product, err := h.productService.GetProduct(id)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			utils.NotFoundResponse(c, "product")
			return
		}
		utils.InternalErrorResponse(c, err.Error())
		return
	}

	utils.SuccessResponse(c, gin.H{
		"product": product,
	})
}

// POST /products
func (h *ProductHandler) CreateProduct(c *gin.Context) {
	lang := utils.GetLangFromContext(c)

	var req services.CreateProductRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.BadRequestResponse(c, i18n.T(lang, i18n.KeyValidationInvalid, "input"), err.Error())
		return
	}

	if validationErrors := utils.GetValidationErrors(utils.ValidateStruct(&req)); len(validationErrors) > 0 {
		utils.ValidationErrorResponse(c, validationErrors)
		return
	}

	product, err := h.productService.CreateProduct(&req)
	if err != nil {
		switch {
		case errors.Is(err, repository.ErrDuplicate):
			utils.ConflictResponse(c, i18n.T(lang, i18n.KeyProductSlugTaken))
		case errors.Is(err, services.ErrValidation):
			utils.BadRequestResponse(c, err.Error(), nil)
		default:
			utils.InternalErrorResponse(c, err.Error())
		}
		return
	}

	utils.CreatedResponse(c, gin.H{
		"message": i18n.T(lang, i18n.KeyProductCreated),
		"product": product,
	})
}

// PATCH /products/:id
func (h *ProductHandler) UpdateProduct(c *gin.Context) {
	lang := utils.GetLangFromContext(c)

	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		utils.BadRequestResponse(c, "Invalid product ID", nil)
		return
	}

	var req services.UpdateProductRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.BadRequestResponse(c, i18n.T(lang, i18n.KeyValidationInvalid, "input"), err.Error())
		return
	}

	if validationErrors := utils.GetValidationErrors(utils.ValidateStruct(&req)); len(validationErrors) > 0 {
		utils.ValidationErrorResponse(c, validationErrors)
		return
	}

	product, err := h.productService.UpdateProduct(id, &req)
	if err != nil {
		switch {
		case errors.Is(err, repository.ErrNotFound):
			utils.NotFoundResponse(c, "product")
		case errors.Is(err, repository.ErrDuplicate):
			utils.ConflictResponse(c, i18n.T(lang, i18n.KeyProductSlugTaken))
		case errors.Is(err, services.ErrValidation):
			utils.BadRequestResponse(c, err.Error(), nil)
		default:
			utils.InternalErrorResponse(c, err.Error())
		}
		return
	}

	utils.SuccessResponse(c, gin.H{
		"message": i18n.T(lang, i18n.KeyProductUpdated),
		"product": product,
	})
}

// DELETE /products/:id (soft delete)
func (h *ProductHandler) DeleteProduct(c *gin.Context) {
	lang := utils.GetLangFromContext(c)

	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		utils.BadRequestResponse(c, "Invalid product ID", nil)
		return
	}

	if err := h.productService.SoftDeleteProduct(id); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			utils.NotFoundResponse(c, "product")
			return
		}
		utils.InternalErrorResponse(c, err.Error())
		return
	}

	utils.SuccessResponse(c, gin.H{
		"message": i18n.T(lang, i18n.KeyProductDeleted),
	})
}
