package routes

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.mongodb.org/mongo-driver/mongo"

	"farmchoice-admin/internal/auth"
	"farmchoice-admin/internal/cache"
	"farmchoice-admin/internal/catalog"
	"farmchoice-admin/internal/config"
	"farmchoice-admin/internal/delhivery"
	"farmchoice-admin/internal/handlers"
	"farmchoice-admin/internal/middleware"
	"farmchoice-admin/internal/repository"
)

// RegisterRoutes arma las dependencias y registra todas las rutas del panel
func RegisterRoutes(router *gin.Engine, db *mongo.Database, cfg *config.Config) {
	productRepo := repository.NewProductRepository(db.Collection("products"))
	customerRepo := repository.NewCustomerRepository(db.Collection("userProfilesAndOrderStatus"))

	store := catalog.NewStore(productRepo, cache.New(cfg.CatalogCacheTTL))
	tokens := auth.NewTokenService(cfg.JWTSecret, cfg.SessionTTL)

	productHandler := handlers.NewProductHandler(productRepo, store)
	orderHandler := handlers.NewOrderHandler(customerRepo)
	analyticsHandler := handlers.NewAnalyticsHandler(customerRepo)
	authHandler := handlers.NewAuthHandler(auth.NewValidator(cfg.AuthValidateURL), tokens)
	delhiveryHandler := handlers.NewDelhiveryHandler(
		delhivery.NewClient(cfg.DelhiveryToken, cfg.HeavyBaseURL, cfg.TrackBaseURL),
		cfg.OriginPincode,
	)

	router.Use(middleware.RequestID())
	router.Use(middleware.Metrics())

	router.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})
	router.GET("/metrics", gin.WrapH(promhttp.Handler()))
	router.POST("/login", authHandler.Login)

	v1 := router.Group("/v1")
	{
		// Rutas del panel protegidas por la cookie de sesión
		products := v1.Group("/products", middleware.RequireAuth(tokens))
		{
			products.GET("", productHandler.ListProducts)
			products.GET("/:id", productHandler.GetProduct)
			products.POST("", productHandler.CreateProduct)
			products.PUT("/:id", productHandler.UpdateProduct)
			products.DELETE("/:id", productHandler.DeleteProduct)
		}

		orders := v1.Group("/orders", middleware.RequireAuth(tokens))
		{
			orders.GET("/customers", orderHandler.ListCustomers)
			orders.PATCH("/customers/:id/orders/:orderId/status", orderHandler.UpdateOrderStatus)
		}

		analytics := v1.Group("/analytics", middleware.RequireAuth(tokens))
		{
			analytics.GET("/summary", analyticsHandler.Summary)
		}

		// El proxy de logística queda abierto, igual que la pantalla
		// pública de consulta de envíos
		delhiveryGroup := v1.Group("/delhivery")
		{
			delhiveryGroup.GET("/pincode/heavy", delhiveryHandler.PincodeHeavy)
			delhiveryGroup.GET("/pincode", delhiveryHandler.Pincode)
			delhiveryGroup.POST("/shipping/estimate", delhiveryHandler.ShippingEstimate)
			delhiveryGroup.POST("/pickup", delhiveryHandler.Pickup)
			delhiveryGroup.POST("/warehouse/create", delhiveryHandler.WarehouseCreate)
			delhiveryGroup.PUT("/warehouse/update", delhiveryHandler.WarehouseUpdate)
		}
	}
}
