package handlers

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"farmchoice-admin/internal/analytics"
	"farmchoice-admin/internal/logger"
	"farmchoice-admin/internal/models"
)

// CustomerSource es lo mínimo que necesita la agregación
type CustomerSource interface {
	FindAll(ctx context.Context) ([]models.Customer, error)
}

type AnalyticsHandler struct {
	source CustomerSource
}

func NewAnalyticsHandler(source CustomerSource) *AnalyticsHandler {
	return &AnalyticsHandler{source: source}
}

// Summary junta los pedidos de todos los clientes y retorna la serie
// diaria y el histograma de estados para los gráficos del panel
func (h *AnalyticsHandler) Summary(c *gin.Context) {
	log := logger.FromContext(c)

	customers, err := h.source.FindAll(c.Request.Context())
	if err != nil {
		log.Error("Failed to fetch orders for analytics", zap.Error(err))
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "failed to load orders"})
		return
	}

	var orders []models.Order
	for _, customer := range customers {
		orders = append(orders, customer.Orders...)
	}

	summary := analytics.Aggregate(orders, log)
	if summary.SkippedOrders > 0 {
		log.Warn("Some orders were skipped from the daily series",
			zap.Int("skipped", summary.SkippedOrders))
	}

	c.JSON(http.StatusOK, summary)
}
