// internal/router/router.go
package router

import (
	"github.com/gin-gonic/gin"
	"golang.org/x/time/rate"

	"github.com/javajoker/custom-creations-api/internal/config"
	"github.com/javajoker/custom-creations-api/internal/database"
	"github.com/javajoker/custom-creations-api/internal/handlers"
	"github.com/javajoker/custom-creations-api/internal/middleware"
	"github.com/javajoker/custom-creations-api/internal/services"
	"github.com/javajoker/custom-creations-api/internal/utils"
)

const Version = "1.0.0"

func Initialize(store database.Store, cfg *config.Config) *gin.Engine {
	// Initialize services
	catalogService := services.NewCatalogService(store)
	orderService := services.NewOrderService(store)
	diagnosticsService := services.NewDiagnosticsService(store, cfg.Database)

	// Initialize handlers
	catalogHandler := handlers.NewCatalogHandler(catalogService)
	orderHandler := handlers.NewOrderHandler(orderService)
	systemHandler := handlers.NewSystemHandler(diagnosticsService, Version)

	writeLimiter := middleware.NewRateLimiter(rate.Limit(cfg.RateLimit.RequestsPerSecond), cfg.RateLimit.Burst)

	// Initialize Gin router
	r := gin.New()

	// Global middleware
	r.Use(gin.Recovery())
	r.Use(middleware.RequestLogger())
	r.Use(middleware.CORS(cfg.CORS.AllowedOrigins))

	r.NoRoute(utils.NotFoundResponse)

	r.GET("/", systemHandler.Root)
	r.GET("/health", systemHandler.Health)
	r.GET("/test", systemHandler.Diagnostics)

	api := r.Group("/api")
	{
		api.GET("/hello", systemHandler.Hello)
		api.GET("/products", catalogHandler.GetProducts)
		api.GET("/projects", catalogHandler.GetProjects)

		writes := api.Group("")
		writes.Use(writeLimiter.Middleware())
		{
			writes.POST("/orders", orderHandler.CreateOrder)
			writes.POST("/seed", catalogHandler.Seed)
		}
	}

	return r
}
