// internal/handlers/order.go
package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/javajoker/custom-creations-api/internal/services"
	"github.com/javajoker/custom-creations-api/internal/utils"
)

type OrderHandler struct {
	orderService *services.OrderService
}

func NewOrderHandler(orderService *services.OrderService) *OrderHandler {
	return &OrderHandler{orderService: orderService}
}

// POST /api/orders
func (h *OrderHandler) CreateOrder(c *gin.Context) {
	body, err := c.GetRawData()
	if err != nil {
		respondError(c, utils.NewValidationError("body", "read", "Unable to read request body"))
		return
	}

	receipt, err := h.orderService.CreateOrder(c.Request.Context(), body)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, receipt)
}
