package handlers

import (
	"context"
	"errors"
	"net/http"
	"regexp"
	"strings"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"farmchoice-admin/internal/delhivery"
	"farmchoice-admin/internal/logger"
)

var pincodeRe = regexp.MustCompile(`^\d{6}$`)

// LogisticsClient abstrae el cliente de Delhivery para los tests
type LogisticsClient interface {
	PincodeHeavyServiceability(ctx context.Context, pincode string) (map[string]interface{}, error)
	PincodeLookup(ctx context.Context, pincode string) (interface{}, error)
	ShippingEstimate(ctx context.Context, p delhivery.EstimateParams) (interface{}, error)
}

type DelhiveryHandler struct {
	client        LogisticsClient
	originPincode string
}

func NewDelhiveryHandler(client LogisticsClient, originPincode string) *DelhiveryHandler {
	return &DelhiveryHandler{
		client:        client,
		originPincode: originPincode,
	}
}

// PincodeHeavy consulta cobertura de productos pesados:
// GET /v1/delhivery/pincode/heavy?pincode=<6 dígitos>&product_type=Heavy
func (h *DelhiveryHandler) PincodeHeavy(c *gin.Context) {
	pincode := c.Query("pincode")
	productType := c.DefaultQuery("product_type", "Heavy")

	if !pincodeRe.MatchString(pincode) {
		c.JSON(http.StatusUnprocessableEntity, ErrorResponse{Error: "Invalid pincode (must be 6 digits)"})
		return
	}
	if productType != "Heavy" {
		c.JSON(http.StatusUnprocessableEntity, ErrorResponse{Error: `product_type must be "Heavy"`})
		return
	}

	data, err := h.client.PincodeHeavyServiceability(c.Request.Context(), pincode)
	if err != nil {
		h.relayError(c, err)
		return
	}

	out := gin.H{"pin": pincode, "raw": data}
	if status, ok := data["status"].(string); ok && strings.ToUpper(status) == "NSZ" {
		out["serviceable"] = false
	}
	if pt, ok := data["payment_type"]; ok {
		out["payment_type"] = pt
	}

	c.JSON(http.StatusOK, out)
}

// Pincode consulta los datos de un pincode:
// GET /v1/delhivery/pincode?pin_code=<código>
func (h *DelhiveryHandler) Pincode(c *gin.Context) {
	pinCode := c.Query("pin_code")
	if pinCode == "" {
		// Mensaje literal que espera la pantalla de envíos
		c.JSON(http.StatusOK, gin.H{"Result": "Plaese Enter Pincode"})
		return
	}

	data, err := h.client.PincodeLookup(c.Request.Context(), pinCode)
	if err != nil {
		h.relayError(c, err)
		return
	}

	c.JSON(http.StatusOK, data)
}

type estimateRequest struct {
	ToPincode   string `json:"to_pincode"`
	WeightGrams *int64 `json:"weight_grams"`
	FromPincode string `json:"from_pincode"`
	PaymentType string `json:"payment_type"`
	BillingMode string `json:"billing_mode"`
}

// ShippingEstimate cotiza el costo de envío contra Delhivery:
// POST /v1/delhivery/shipping/estimate
func (h *DelhiveryHandler) ShippingEstimate(c *gin.Context) {
	var req estimateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: err.Error()})
		return
	}

	var msgs []string
	if !pincodeRe.MatchString(req.ToPincode) {
		msgs = append(msgs, "to_pincode must be a 6 digit pincode")
	}
	if req.WeightGrams == nil {
		msgs = append(msgs, "weight_grams is required")
	} else if *req.WeightGrams < 0 {
		msgs = append(msgs, "weight_grams cannot be negative")
	}
	if req.FromPincode != "" && !pincodeRe.MatchString(req.FromPincode) {
		msgs = append(msgs, "from_pincode must be a 6 digit pincode")
	}
	if req.PaymentType != "" && req.PaymentType != "Pre-paid" && req.PaymentType != "COD" {
		msgs = append(msgs, `payment_type must be "Pre-paid" or "COD"`)
	}
	if req.BillingMode != "" && req.BillingMode != "S" && req.BillingMode != "E" {
		msgs = append(msgs, `billing_mode must be "S" or "E"`)
	}
	if len(msgs) > 0 {
		c.JSON(http.StatusUnprocessableEntity, ErrorResponse{Error: strings.Join(msgs, "; ")})
		return
	}

	params := delhivery.EstimateParams{
		ToPincode:   req.ToPincode,
		WeightGrams: *req.WeightGrams,
		FromPincode: req.FromPincode,
		PaymentType: req.PaymentType,
		BillingMode: req.BillingMode,
	}
	// Defaults de facturación y origen
	if params.BillingMode == "" {
		params.BillingMode = "S"
	}
	if params.PaymentType == "" {
		params.PaymentType = "Pre-paid"
	}
	if params.FromPincode == "" {
		params.FromPincode = h.originPincode
	}

	data, err := h.client.ShippingEstimate(c.Request.Context(), params)
	if err != nil {
		h.relayError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"raw": data})
}

// Pickup todavía no llama a Delhivery; devuelve un eco para que la
// pantalla pueda integrarse. Falta cablear la API real de pickups.
func (h *DelhiveryHandler) Pickup(c *gin.Context) {
	h.stub(c, "Implement Delhivery pickup creation")
}

// WarehouseCreate es un stub, igual que Pickup
func (h *DelhiveryHandler) WarehouseCreate(c *gin.Context) {
	h.stub(c, "Implement warehouse creation")
}

// WarehouseUpdate es un stub, igual que Pickup
func (h *DelhiveryHandler) WarehouseUpdate(c *gin.Context) {
	h.stub(c, "Implement warehouse update")
}

func (h *DelhiveryHandler) stub(c *gin.Context, note string) {
	var body map[string]interface{}
	if err := c.ShouldBindJSON(&body); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"status": "stub",
		"note":   note,
		"echo":   body,
	})
}

// relayError retransmite las fallas del upstream con su estado y
// cuerpo originales; cualquier otra cosa es un 502
func (h *DelhiveryHandler) relayError(c *gin.Context, err error) {
	var upstream *delhivery.UpstreamError
	if errors.As(err, &upstream) {
		c.String(upstream.Status, upstream.Body)
		return
	}

	logger.FromContext(c).Error("Delhivery call failed", zap.Error(err))
	c.JSON(http.StatusBadGateway, ErrorResponse{Error: "logistics upstream unavailable"})
}
