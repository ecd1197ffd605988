package handlers

import (
	"context"
	"errors"
	"net/http"
	"sort"
	"strings"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"farmchoice-admin/internal/logger"
	"farmchoice-admin/internal/models"
	"farmchoice-admin/internal/repository"
)

// CustomerRepo abstrae el repositorio de clientes/pedidos
type CustomerRepo interface {
	FindAll(ctx context.Context) ([]models.Customer, error)
	UpdateOrderStatus(ctx context.Context, customerID, orderID, status string) error
}

type OrderHandler struct {
	repo CustomerRepo
}

func NewOrderHandler(repo CustomerRepo) *OrderHandler {
	return &OrderHandler{repo: repo}
}

type customerListResponse struct {
	Customers []models.Customer `json:"customers"`
	Total     int               `json:"total"`
}

// ListCustomers retorna todos los clientes con sus pedidos,
// el de pedido más reciente primero
func (h *OrderHandler) ListCustomers(c *gin.Context) {
	log := logger.FromContext(c)

	customers, err := h.repo.FindAll(c.Request.Context())
	if err != nil {
		log.Error("Failed to list customers", zap.Error(err))
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "failed to load customers"})
		return
	}

	sort.SliceStable(customers, func(i, j int) bool {
		return customers[i].LastOrderAt().After(customers[j].LastOrderAt())
	})

	c.JSON(http.StatusOK, customerListResponse{
		Customers: customers,
		Total:     len(customers),
	})
}

type statusUpdateRequest struct {
	Status string `json:"status"`
}

// UpdateOrderStatus cambia el estado de un pedido puntual:
// PATCH /v1/orders/customers/:id/orders/:orderId/status
// Cualquier estado puede pasar a cualquier otro; no hay progresión forzada.
func (h *OrderHandler) UpdateOrderStatus(c *gin.Context) {
	log := logger.FromContext(c)

	var req statusUpdateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: err.Error()})
		return
	}

	status := strings.TrimSpace(req.Status)
	if !models.ValidOrderStatus(status) {
		c.JSON(http.StatusUnprocessableEntity, ErrorResponse{
			Error: "status must be one of: " + strings.Join(models.OrderStatuses, ", "),
		})
		return
	}

	customerID := c.Param("id")
	orderID := c.Param("orderId")

	err := h.repo.UpdateOrderStatus(c.Request.Context(), customerID, orderID, status)
	switch {
	case errors.Is(err, repository.ErrInvalidID):
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid customer ID"})
		return
	case errors.Is(err, repository.ErrNotFound):
		c.JSON(http.StatusNotFound, ErrorResponse{Error: "order not found"})
		return
	case err != nil:
		log.Error("Failed to update order status",
			zap.String("customer_id", customerID),
			zap.String("order_id", orderID),
			zap.Error(err))
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "failed to update order status"})
		return
	}

	log.Info("Order status updated",
		zap.String("customer_id", customerID),
		zap.String("order_id", orderID),
		zap.String("status", status))

	c.JSON(http.StatusOK, SuccessResponse{Message: "order status updated"})
}
