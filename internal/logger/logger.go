package logger

import (
	"sync"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

const ContextKey = "logger"

var (
	once     sync.Once
	instance *zap.Logger
)

// Get retorna el logger global (se construye una sola vez)
func Get() *zap.Logger {
	once.Do(func() {
		cfg := zap.NewProductionConfig()
		cfg.OutputPaths = []string{"stdout"}
		logger, err := cfg.Build()
		if err != nil {
			panic(err)
		}
		instance = logger
	})
	return instance
}

// FromContext retorna el logger del request (con request_id) si existe
func FromContext(c *gin.Context) *zap.Logger {
	if v, ok := c.Get(ContextKey); ok {
		if log, ok := v.(*zap.Logger); ok {
			return log
		}
	}
	return Get()
}
