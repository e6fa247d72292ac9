// internal/router/router.go
package router

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/typackaging/backend/internal/config"
	"github.com/typackaging/backend/internal/handlers"
	"github.com/typackaging/backend/internal/middleware"
	"github.com/typackaging/backend/internal/models"
	"github.com/typackaging/backend/internal/repository"
	"github.com/typackaging/backend/internal/services"
	"github.com/typackaging/backend/internal/utils"
)

func Initialize(db *gorm.DB, cfg *config.Config) *gin.Engine {
	// Initialize repositories
	userRepo := repository.NewUserRepository(db)
	companyRepo := repository.NewCompanyRepository(db)
	categoryRepo := repository.NewCategoryRepository(db)
	productRepo := repository.NewProductRepository(db)
	orderRepo := repository.NewOrderRepository(db)

	// Initialize services
	notificationService := services.NewNotificationService(cfg)
	paymentService := services.NewPaymentService(cfg)

	authService := services.NewAuthService(userRepo, companyRepo, cfg)
	productService := services.NewProductService(productRepo, categoryRepo)
	cartService := services.NewCartService(productRepo)
	orderService := services.NewOrderService(orderRepo, companyRepo, notificationService, paymentService)

	// Initialize handlers
	authHandler := handlers.NewAuthHandler(authService)
	productHandler := handlers.NewProductHandler(productService)
	categoryHandler := handlers.NewCategoryHandler(productService)
	cartHandler := handlers.NewCartHandler(cartService)
	orderHandler := handlers.NewOrderHandler(orderService)

	// Set JWT secret
	utils.SetJWTSecret(cfg.JWT.SecretKey)

	// Initialize Gin router
	r := gin.New()

	// Global middleware
	r.Use(gin.Recovery())
	r.Use(middleware.RequestLogger())
	r.Use(middleware.CORS(cfg))
	r.Use(middleware.I18nMiddleware())
	r.Use(middleware.GeneralRateLimit())

	// Health check
	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"status":  "healthy",
			"version": "1.0.0",
		})
	})

	// API v1 routes
	v1 := r.Group("/v1")
	{
		// Authentication routes
		auth := v1.Group("/auth")
		auth.Use(middleware.AuthRateLimit())
		{
			auth.POST("/register", authHandler.Register)
			auth.POST("/login", authHandler.Login)
			auth.POST("/logout", middleware.AuthRequired(), authHandler.Logout)
			auth.GET("/me", middleware.AuthRequired(), authHandler.GetProfile)
		}

		// Product routes
		products := v1.Group("/products")
		{
			products.GET("", middleware.OptionalAuth(), productHandler.GetProducts)
			products.GET("/:id", middleware.OptionalAuth(), productHandler.GetProduct)

			// Catalog management, owner and admin only
			protected := products.Group("")
			protected.Use(middleware.AuthRequired(), middleware.RoleRequired(models.UserRoleOwner, models.UserRoleAdmin))
			{
				protected.POST("", productHandler.CreateProduct)
				protected.PATCH("/:id", productHandler.UpdateProduct)
				protected.DELETE("/:id", productHandler.DeleteProduct)
			}
		}

		// Category routes
		categories := v1.Group("/categories")
		{
			categories.GET("", categoryHandler.GetCategories)
		}

		// Cart routes
		cart := v1.Group("/cart")
		cart.Use(middleware.AuthRequired())
		{
			cart.GET("", cartHandler.GetCart)
			cart.POST("", cartHandler.CheckItem)
		}

		// Order routes
		orders := v1.Group("/orders")
		orders.Use(middleware.AuthRequired())
		{
			orders.POST("", orderHandler.CreateOrder)
			orders.GET("", orderHandler.GetOrders)
			orders.GET("/:id", orderHandler.GetOrder)
		}
	}

	return r
}
