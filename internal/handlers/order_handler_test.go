package handlers

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"farmchoice-admin/internal/models"
	"farmchoice-admin/internal/repository"
)

type fakeCustomerRepo struct {
	customers []models.Customer
	updateErr error

	lastCustomerID string
	lastOrderID    string
	lastStatus     string
}

func (f *fakeCustomerRepo) FindAll(ctx context.Context) ([]models.Customer, error) {
	return f.customers, nil
}

func (f *fakeCustomerRepo) UpdateOrderStatus(ctx context.Context, customerID, orderID, status string) error {
	f.lastCustomerID = customerID
	f.lastOrderID = orderID
	f.lastStatus = status
	return f.updateErr
}

func orderRouter(repo *fakeCustomerRepo) *gin.Engine {
	gin.SetMode(gin.TestMode)
	router := gin.New()

	h := NewOrderHandler(repo)
	router.GET("/v1/orders/customers", h.ListCustomers)
	router.PATCH("/v1/orders/customers/:id/orders/:orderId/status", h.UpdateOrderStatus)

	return router
}

func customerWithOrder(name string, orderedAt time.Time) models.Customer {
	return models.Customer{
		Profile: []models.Profile{{Name: name, Phone: "9876543210", City: "Pune"}},
		Orders: []models.Order{
			{ID: "ord-" + name, CreatedAt: orderedAt, Status: models.StatusProcessing},
		},
	}
}

func TestListCustomersMostRecentOrderFirst(t *testing.T) {
	now := time.Now()
	repo := &fakeCustomerRepo{customers: []models.Customer{
		customerWithOrder("older", now.Add(-48*time.Hour)),
		customerWithOrder("newest", now),
		customerWithOrder("middle", now.Add(-24*time.Hour)),
	}}
	router := orderRouter(repo)

	w := httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/v1/orders/customers", nil))

	require.Equal(t, http.StatusOK, w.Code)

	var resp customerListResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	require.Equal(t, 3, resp.Total)
	assert.Equal(t, "newest", resp.Customers[0].Profile[0].Name)
	assert.Equal(t, "middle", resp.Customers[1].Profile[0].Name)
	assert.Equal(t, "older", resp.Customers[2].Profile[0].Name)
}

func TestUpdateOrderStatusSuccess(t *testing.T) {
	repo := &fakeCustomerRepo{}
	router := orderRouter(repo)

	body := `{"status": "Packed"}`
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPatch, "/v1/orders/customers/64a000000000000000000001/orders/ord-1/status", strings.NewReader(body))
	router.ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "64a000000000000000000001", repo.lastCustomerID)
	assert.Equal(t, "ord-1", repo.lastOrderID)
	assert.Equal(t, models.StatusPacked, repo.lastStatus)
}

func TestUpdateOrderStatusAllowsAnyTransition(t *testing.T) {
	// Delivered → Processing es válido: no hay progresión forzada
	repo := &fakeCustomerRepo{}
	router := orderRouter(repo)

	body := `{"status": "Processing your order"}`
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPatch, "/v1/orders/customers/64a000000000000000000001/orders/ord-9/status", strings.NewReader(body))
	router.ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, models.StatusProcessing, repo.lastStatus)
}

func TestUpdateOrderStatusRejectsUnknownStatus(t *testing.T) {
	router := orderRouter(&fakeCustomerRepo{})

	body := `{"status": "Lost in transit"}`
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPatch, "/v1/orders/customers/64a000000000000000000001/orders/ord-1/status", strings.NewReader(body))
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusUnprocessableEntity, w.Code)
	assert.Contains(t, w.Body.String(), "status must be one of")
}

func TestUpdateOrderStatusNotFound(t *testing.T) {
	router := orderRouter(&fakeCustomerRepo{updateErr: repository.ErrNotFound})

	body := `{"status": "Shipped"}`
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPatch, "/v1/orders/customers/64a000000000000000000001/orders/missing/status", strings.NewReader(body))
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestUpdateOrderStatusInvalidCustomerID(t *testing.T) {
	router := orderRouter(&fakeCustomerRepo{updateErr: repository.ErrInvalidID})

	body := `{"status": "Shipped"}`
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPatch, "/v1/orders/customers/nope/orders/ord-1/status", strings.NewReader(body))
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}
