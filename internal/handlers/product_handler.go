package handlers

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
	"go.uber.org/zap"

	"farmchoice-admin/internal/catalog"
	"farmchoice-admin/internal/logger"
	"farmchoice-admin/internal/models"
	"farmchoice-admin/internal/repository"
)

// ProductRepo abstrae el repositorio para poder probar los
// handlers sin MongoDB
type ProductRepo interface {
	Create(ctx context.Context, product *models.Product) error
	FindByID(ctx context.Context, id string) (*models.Product, error)
	Replace(ctx context.Context, id string, product *models.Product) error
	Delete(ctx context.Context, id string) error
}

type ErrorResponse struct {
	Error string `json:"error"`
}

type SuccessResponse struct {
	Message string `json:"message"`
}

type ProductHandler struct {
	repo  ProductRepo
	store *catalog.Store
}

func NewProductHandler(repo ProductRepo, store *catalog.Store) *ProductHandler {
	return &ProductHandler{
		repo:  repo,
		store: store,
	}
}

// ListProducts retorna la vista filtrada del catálogo:
// GET /v1/products?q=&category=&visible=all|visible|hidden&stock=all|out|in
func (h *ProductHandler) ListProducts(c *gin.Context) {
	log := logger.FromContext(c)

	products, err := h.store.Load(c.Request.Context())
	if err != nil {
		log.Error("Failed to load catalog", zap.Error(err))
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "failed to load products"})
		return
	}

	filters := catalog.Filters{
		Query:      c.Query("q"),
		Category:   c.Query("category"),
		Visibility: catalog.ParseVisibility(c.Query("visible")),
		Stock:      catalog.ParseStock(c.Query("stock")),
	}

	result := catalog.Search(products, filters)
	log.Info("Catalog search",
		zap.String("query", filters.Query),
		zap.Int("showing", result.Showing),
		zap.Int("total", result.Total))

	c.JSON(http.StatusOK, result)
}

// GetProduct obtiene un producto por ID
func (h *ProductHandler) GetProduct(c *gin.Context) {
	product, err := h.repo.FindByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		h.writeRepoError(c, err, "failed to get product")
		return
	}

	c.JSON(http.StatusOK, product)
}

// CreateProduct crea un nuevo producto desde el formulario de alta
func (h *ProductHandler) CreateProduct(c *gin.Context) {
	var product models.Product
	if err := c.ShouldBindJSON(&product); err != nil {
		writeBindError(c, err)
		return
	}

	if msgs := validateProduct(&product); len(msgs) > 0 {
		c.JSON(http.StatusUnprocessableEntity, ErrorResponse{Error: strings.Join(msgs, "; ")})
		return
	}

	if err := h.repo.Create(c.Request.Context(), &product); err != nil {
		logger.FromContext(c).Error("Failed to create product", zap.Error(err))
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "failed to create product"})
		return
	}

	// El catálogo en memoria quedó viejo
	h.store.Invalidate()

	c.JSON(http.StatusCreated, product)
}

// UpdateProduct sobreescribe el producto completo; el formulario de
// edición siempre envía todos los campos, no hay patch parcial
func (h *ProductHandler) UpdateProduct(c *gin.Context) {
	var product models.Product
	if err := c.ShouldBindJSON(&product); err != nil {
		writeBindError(c, err)
		return
	}

	if msgs := validateProduct(&product); len(msgs) > 0 {
		c.JSON(http.StatusUnprocessableEntity, ErrorResponse{Error: strings.Join(msgs, "; ")})
		return
	}

	if err := h.repo.Replace(c.Request.Context(), c.Param("id"), &product); err != nil {
		h.writeRepoError(c, err, "failed to update product")
		return
	}

	h.store.Invalidate()

	c.JSON(http.StatusOK, product)
}

// DeleteProduct elimina un producto
func (h *ProductHandler) DeleteProduct(c *gin.Context) {
	if err := h.repo.Delete(c.Request.Context(), c.Param("id")); err != nil {
		h.writeRepoError(c, err, "failed to delete product")
		return
	}

	h.store.Invalidate()

	c.JSON(http.StatusOK, SuccessResponse{Message: "product deleted successfully"})
}

func (h *ProductHandler) writeRepoError(c *gin.Context, err error, generic string) {
	switch {
	case errors.Is(err, repository.ErrInvalidID):
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid product ID"})
	case errors.Is(err, repository.ErrNotFound):
		c.JSON(http.StatusNotFound, ErrorResponse{Error: "product not found"})
	default:
		logger.FromContext(c).Error(generic, zap.Error(err))
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: generic})
	}
}

// writeBindError distingue JSON malformado (400) de fallas de
// validación de campos (422 con mensaje legible)
func writeBindError(c *gin.Context, err error) {
	var verrs validator.ValidationErrors
	if errors.As(err, &verrs) {
		msgs := make([]string, 0, len(verrs))
		for _, fe := range verrs {
			msgs = append(msgs, fmt.Sprintf("%s failed on %s", fe.Field(), fe.Tag()))
		}
		c.JSON(http.StatusUnprocessableEntity, ErrorResponse{Error: strings.Join(msgs, "; ")})
		return
	}
	c.JSON(http.StatusBadRequest, ErrorResponse{Error: err.Error()})
}

// validateProduct junta todos los problemas en un solo mensaje
func validateProduct(p *models.Product) []string {
	var msgs []string

	if strings.TrimSpace(p.ProductName.Mr) == "" && strings.TrimSpace(p.ProductName.En) == "" {
		msgs = append(msgs, "productName is required in at least one language")
	}
	if p.Position < 0 {
		msgs = append(msgs, "position cannot be negative")
	}
	for i, v := range p.MapVariant {
		if v.Price < 0 {
			msgs = append(msgs, fmt.Sprintf("mapVariant[%d].price cannot be negative", i))
		}
		if v.InventoryQuantity < 0 {
			msgs = append(msgs, fmt.Sprintf("mapVariant[%d].inventoryQuantity cannot be negative", i))
		}
	}

	return msgs
}
