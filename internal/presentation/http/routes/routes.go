package routes

import (
	"time"

	"github.com/gin-gonic/gin"
	"github.com/nishantgoyal/fashionhub-api/internal/config"
	"github.com/nishantgoyal/fashionhub-api/internal/domain/enum"
	domainRepo "github.com/nishantgoyal/fashionhub-api/internal/domain/repository"
	"github.com/nishantgoyal/fashionhub-api/internal/presentation/http/handler"
	"github.com/nishantgoyal/fashionhub-api/internal/presentation/http/middleware"
	"github.com/nishantgoyal/fashionhub-api/pkg/utils"
)

// Handlers holds all the HTTP handlers used for route registration.
type Handlers struct {
	Auth      *handler.AuthHandler
	Product   *handler.ProductHandler
	Shop      *handler.ShopHandler
	Image     *handler.ImageHandler
	Sale      *handler.SaleHandler
	Dues      *handler.DuesHandler
	Dashboard *handler.DashboardHandler
}

// Deps holds shared dependencies needed by the routes.
type Deps struct {
	JWTManager      *utils.JWTManager
	Cfg             *config.Config
	IdempotencyRepo domainRepo.IdempotencyRepository
}

// Setup creates the Gin router and registers all routes.
func Setup(h *Handlers, deps *Deps) *gin.Engine {
	router := gin.New()

	// Global middleware
	router.Use(gin.Recovery())
	router.Use(middleware.LoggerMiddleware())
	router.Use(middleware.CORSMiddleware(&deps.Cfg.CORS))

	// Health check endpoint
	router.GET("/health", func(c *gin.Context) {
		c.JSON(200, gin.H{
			"status":  "ok",
			"service": deps.Cfg.App.Name,
		})
	})

	// API v1 routes
	v1 := router.Group("/api/v1")
	{
		// Public routes (no authentication required)
		registerAuthRoutes(v1, h)

		// Public storefront
		v1.GET("/shop/products", h.Shop.Products)

		// Protected routes (authentication required)
		protected := v1.Group("")
		protected.Use(middleware.AuthMiddleware(deps.JWTManager))

		// Per-user rate limiter
		rateLimiter := middleware.NewUserRateLimiter(middleware.RateLimiterConfig{
			RequestsPerSecond: float64(deps.Cfg.RateLimit.Requests) / float64(deps.Cfg.RateLimit.Duration),
			BurstSize:         deps.Cfg.RateLimit.Requests,
			CleanupInterval:   5 * time.Minute,
			EntryTTL:          10 * time.Minute,
		})
		protected.Use(rateLimiter.Middleware())

		registerProtectedRoutes(protected, h, deps)
	}

	return router
}

func registerAuthRoutes(v1 *gin.RouterGroup, h *Handlers) {
	auth := v1.Group("/auth")
	{
		auth.POST("/login", h.Auth.Login)
		auth.POST("/refresh-token", h.Auth.RefreshToken)
		// Google OAuth routes
		auth.GET("/google", h.Auth.GoogleLogin)
		auth.GET("/google/callback", h.Auth.GoogleCallback)
	}
}

func registerProtectedRoutes(protected *gin.RouterGroup, h *Handlers, deps *Deps) {
	// Auth/Profile routes
	protected.POST("/auth/logout", h.Auth.Logout)
	protected.GET("/auth/me", h.Auth.Me)
	protected.POST("/auth/register-staff", middleware.RequireRole(enum.RoleOwner), h.Auth.RegisterStaff)
	protected.GET("/auth/staff", middleware.RequireRole(enum.RoleOwner), h.Auth.ListStaff)

	// Dashboard
	protected.GET("/dashboard/stats", h.Dashboard.Stats)

	// Products
	products := protected.Group("/products")
	{
		products.POST("", h.Product.Create)
		products.GET("", h.Product.List)
		products.GET("/categories", h.Product.Categories)
		products.GET("/categories/:category/sub-categories", h.Product.SubCategories)
		products.GET("/:id", h.Product.Get)
		products.PUT("/:id", h.Product.Update)
		products.DELETE("/:id", h.Product.Delete)
	}

	// Image upload signatures
	protected.GET("/images/sign-upload", h.Image.SignUpload)

	// Transactions: sale creation is idempotent so a retried submission
	// replays instead of double-recording
	idempotency := middleware.Idempotency(middleware.IdempotencyConfig{Repo: deps.IdempotencyRepo})
	transactions := protected.Group("/transactions")
	{
		transactions.POST("/sale", idempotency, h.Sale.RecordSale)
		transactions.POST("/expense", h.Sale.RecordExpense)
		transactions.GET("/history", h.Sale.Activity)
		transactions.GET("/:id", h.Sale.Get)
	}

	// Dues ledger
	dues := protected.Group("/dues")
	{
		dues.GET("", h.Dues.List)
		dues.GET("/overdue", h.Dues.Overdue)
		dues.GET("/statistics", h.Dues.Statistics)
		dues.GET("/:id", h.Dues.Get)
		dues.POST("/:id/collect", h.Dues.Collect)
		dues.PATCH("/:id/status", middleware.RequireRole(enum.RoleOwner), h.Dues.UpdateStatus)
	}
}
