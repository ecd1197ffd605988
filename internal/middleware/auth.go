package middleware

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"farmchoice-admin/internal/auth"
	"farmchoice-admin/internal/logger"
)

// RequireAuth protege las rutas del panel: sin cookie de sesión
// válida redirige a la página de login
func RequireAuth(tokens *auth.TokenService) gin.HandlerFunc {
	return func(c *gin.Context) {
		token, err := c.Cookie(auth.CookieName)
		if err != nil || token == "" {
			c.Redirect(http.StatusFound, "/login")
			c.Abort()
			return
		}

		claims, err := tokens.Verify(token)
		if err != nil {
			logger.FromContext(c).Warn("JWT verification failed", zap.Error(err))
			c.Redirect(http.StatusFound, "/login")
			c.Abort()
			return
		}

		c.Set("username", claims.Username)
		c.Next()
	}
}
