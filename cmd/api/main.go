package main

import (
	"log"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"farmchoice-admin/internal/config"
	"farmchoice-admin/internal/database"
	"farmchoice-admin/internal/logger"
	"farmchoice-admin/internal/routes"
)

func main() {
	cfg := config.LoadConfig()
	client := database.Connect(cfg.MongoURI)
	db := client.Database(cfg.MongoDB)

	zlog := logger.Get()
	defer zlog.Sync()

	router := gin.Default()
	routes.RegisterRoutes(router, db, cfg)

	zlog.Info("🚀 Server running", zap.String("port", cfg.Port))
	if err := router.Run(":" + cfg.Port); err != nil {
		log.Fatal("server error:", err)
	}
}
