package middleware

import (
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"go.uber.org/zap"

	"farmchoice-admin/internal/logger"
)

// RequestID asigna un identificador único al request y deja en el
// contexto un logger hijo que lo incluye en cada línea
func RequestID() gin.HandlerFunc {
	return func(c *gin.Context) {
		requestID := uuid.New().String()

		c.Request.Header.Set("X-Request-ID", requestID)
		c.Writer.Header().Set("X-Request-ID", requestID)

		log := logger.Get().With(zap.String("request_id", requestID))
		c.Set(logger.ContextKey, log)

		c.Next()
	}
}
