package handlers

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"farmchoice-admin/internal/auth"
	"farmchoice-admin/internal/logger"
)

// CredentialValidator delega la verificación al servicio externo
type CredentialValidator interface {
	Validate(ctx context.Context, username, password string) (bool, error)
}

type AuthHandler struct {
	validator CredentialValidator
	tokens    *auth.TokenService
}

func NewAuthHandler(validator CredentialValidator, tokens *auth.TokenService) *AuthHandler {
	return &AuthHandler{
		validator: validator,
		tokens:    tokens,
	}
}

type loginRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

// Login valida credenciales contra la función externa y, si son
// correctas, deja la cookie de sesión firmada (httpOnly, secure)
func (h *AuthHandler) Login(c *gin.Context) {
	log := logger.FromContext(c)

	var req loginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: err.Error()})
		return
	}

	valid, err := h.validator.Validate(c.Request.Context(), req.Username, req.Password)
	if err != nil {
		log.Error("Credential validation call failed", zap.Error(err))
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "Authentication failed"})
		return
	}
	if !valid {
		c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "Invalid credentials"})
		return
	}

	token, err := h.tokens.Sign(req.Username)
	if err != nil {
		log.Error("Failed to sign session token", zap.Error(err))
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "Authentication failed"})
		return
	}

	maxAge := int(h.tokens.TTL().Seconds())
	c.SetCookie(auth.CookieName, token, maxAge, "/", "", true, true)

	log.Info("Admin logged in", zap.String("username", req.Username))
	c.JSON(http.StatusOK, gin.H{"success": true})
}
