package handlers

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"farmchoice-admin/internal/analytics"
	"farmchoice-admin/internal/models"
)

func TestAnalyticsSummaryFlattensAllCustomers(t *testing.T) {
	gin.SetMode(gin.TestMode)

	day := time.Date(2026, 8, 1, 10, 0, 0, 0, time.UTC)
	repo := &fakeCustomerRepo{customers: []models.Customer{
		{
			Orders: []models.Order{{
				ID: "a", CreatedAt: day, Status: models.StatusPacked,
				Items: []models.OrderItem{{Variant: &models.OrderVariant{Price: 100}, Quantity: 1}},
			}},
		},
		{
			Orders: []models.Order{{
				ID: "b", CreatedAt: day.Add(time.Hour), Status: models.StatusPacked,
				Items: []models.OrderItem{{Variant: &models.OrderVariant{Price: 50}, Quantity: 1}},
			}},
		},
	}}

	router := gin.New()
	router.GET("/v1/analytics/summary", NewAnalyticsHandler(repo).Summary)

	w := httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/v1/analytics/summary", nil))

	require.Equal(t, http.StatusOK, w.Code)

	var summary analytics.Summary
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &summary))
	require.Len(t, summary.DailyBuckets, 1)
	assert.Equal(t, 2, summary.DailyBuckets[0].Orders)
	assert.Equal(t, 150.0, summary.DailyBuckets[0].Sales)
	assert.Equal(t, 2, summary.StatusCounts[models.StatusPacked])
}
