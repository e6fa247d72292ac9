// internal/handlers/order.go
package handlers

import (
	"errors"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/typackaging/backend/internal/i18n"
	"github.com/typackaging/backend/internal/models"
	"github.com/typackaging/backend/internal/repository"
	"github.com/typackaging/backend/internal/services"
	"github.com/typackaging/backend/internal/utils"
)

type OrderHandler struct {
	orderService *services.OrderService
}

func NewOrderHandler(orderService *services.OrderService) *OrderHandler {
	return &OrderHandler{
		orderService: orderService,
	}
}

// companyFromContext resolves the authenticated company. Orders always
// belong to a company, so a token without one cannot place or read them.
func companyFromContext(c *gin.Context) (uuid.UUID, bool) {
	companyIDStr, ok := utils.GetCompanyIDFromContext(c)
	if !ok {
		return uuid.Nil, false
	}
	companyID, err := uuid.Parse(companyIDStr)
	if err != nil {
		return uuid.Nil, false
	}
	return companyID, true
}

func roleFromContext(c *gin.Context) models.UserRole {
	roleStr, _ := utils.GetUserRoleFromContext(c)
	return models.UserRole(roleStr)
}

// POST /orders
func (h *OrderHandler) CreateOrder(c *gin.Context) {
	lang := utils.GetLangFromContext(c)

	companyID, ok := companyFromContext(c)
	if !ok {
		utils.UnauthorizedResponse(c, i18n.T(lang, i18n.KeyAuthRequired))
		return
	}

	var req services.CreateOrderRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.BadRequestResponse(c, i18n.T(lang, i18n.KeyValidationInvalid, "input"), err.Error())
		return
	}

	if validationErrors := utils.GetValidationErrors(utils.ValidateStruct(&req)); len(validationErrors) > 0 {
		utils.ValidationErrorResponse(c, validationErrors)
		return
	}

	if len(req.Items) == 0 {
		utils.BadRequestResponse(c, i18n.T(lang, i18n.KeyOrderEmpty), nil)
		return
	}

	order, err := h.orderService.CreateOrder(companyID, &req)
	if err != nil {
		switch {
		case errors.Is(err, repository.ErrInsufficientStock):
			utils.InsufficientStockResponse(c)
		case errors.Is(err, services.ErrValidation):
			utils.BadRequestResponse(c, err.Error(), nil)
		default:
			utils.InternalErrorResponse(c, err.Error())
		}
		return
	}

	utils.CreatedResponse(c, gin.H{
		"message": i18n.T(lang, i18n.KeyOrderCreated),
		"order":   order,
	})
}

// GET /orders
func (h *OrderHandler) GetOrders(c *gin.Context) {
	lang := utils.GetLangFromContext(c)

	companyID, ok := companyFromContext(c)
	if !ok {
		utils.UnauthorizedResponse(c, i18n.T(lang, i18n.KeyAuthRequired))
		return
	}

	// No limit query means the service default of the 50 most recent.
	limit := 0
	if limitStr := c.Query("limit"); limitStr != "" {
		limit, _ = strconv.Atoi(limitStr)
	}

	orders, err := h.orderService.ListOrders(companyID, roleFromContext(c), c.Query("companyId"), limit)
	if err != nil {
		if errors.Is(err, services.ErrValidation) {
			utils.BadRequestResponse(c, err.Error(), nil)
			return
		}
		utils.InternalErrorResponse(c, err.Error())
		return
	}

	utils.SuccessResponse(c, gin.H{
		"orders": orders,
	})
}

// GET /orders/:id
func (h *OrderHandler) GetOrder(c *gin.Context) {
	lang := utils.GetLangFromContext(c)

	companyID, ok := companyFromContext(c)
	if !ok {
		utils.UnauthorizedResponse(c, i18n.T(lang, i18n.KeyAuthRequired))
		return
	}

	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		utils.BadRequestResponse(c, "Invalid order ID", nil)
		return
	}

	order, err := h.orderService.GetOrder(id, companyID, roleFromContext(c))
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			utils.NotFoundResponse(c, "order")
			return
		}
		utils.InternalErrorResponse(c, err.Error())
		return
	}

	utils.SuccessResponse(c, gin.H{
		"order": order,
	})
}
