package main

import (
	"log"

	"github.com/gin-gonic/gin"
	"github.com/nishantgoyal/fashionhub-api/internal/application/service"
	"github.com/nishantgoyal/fashionhub-api/internal/config"
	"github.com/nishantgoyal/fashionhub-api/internal/infrastructure/database"
	"github.com/nishantgoyal/fashionhub-api/internal/infrastructure/repository"
	"github.com/nishantgoyal/fashionhub-api/internal/presentation/http/handler"
	"github.com/nishantgoyal/fashionhub-api/internal/presentation/http/routes"
	"github.com/nishantgoyal/fashionhub-api/pkg/imaging"
	"github.com/nishantgoyal/fashionhub-api/pkg/oauth"
	"github.com/nishantgoyal/fashionhub-api/pkg/utils"
)

func main() {
	// Load configuration
	cfg := config.Load()

	// Set Gin mode based on environment
	if cfg.App.Env == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	// Connect to database
	db, err := database.NewPostgresDB(&cfg.Database)
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}

	// Run auto-migrations
	if err := database.AutoMigrate(db); err != nil {
		log.Fatalf("Failed to run migrations: %v", err)
	}

	// Seed default data
	if err := database.SeedDefaultData(db); err != nil {
		log.Printf("Warning: Failed to seed default data: %v", err)
	}

	// Initialize JWT manager
	jwtManager := utils.NewJWTManager(
		cfg.JWT.Secret,
		cfg.JWT.ExpiryHours,
		cfg.JWT.RefreshExpiryHours,
	)

	// Initialize repositories
	userRepo := repository.NewUserRepository(db)
	productRepo := repository.NewProductRepository(db)
	txnRepo := repository.NewTransactionRepository(db)
	dueRepo := repository.NewDueRepository(db)
	idempotencyRepo := repository.NewIdempotencyRepository(db)

	// Initialize Google OAuth service
	googleOAuthService := oauth.NewGoogleOAuthService(oauth.GoogleOAuthConfig{
		ClientID:           cfg.OAuth.GoogleClientID,
		ClientSecret:       cfg.OAuth.GoogleClientSecret,
		RedirectURL:        cfg.OAuth.GoogleRedirectURL,
		FrontendSuccessURL: cfg.OAuth.FrontendSuccessURL,
		FrontendErrorURL:   cfg.OAuth.FrontendErrorURL,
	})

	// Initialize image hosting; the API still runs without it, minus
	// upload signing and remote image cleanup
	var imagingService *imaging.Service
	if cfg.Cloudinary.CloudName != "" {
		imagingService, err = imaging.New(imaging.Config{
			CloudName:      cfg.Cloudinary.CloudName,
			APIKey:         cfg.Cloudinary.APIKey,
			APISecret:      cfg.Cloudinary.APISecret,
			Folder:         cfg.Cloudinary.Folder,
			Transformation: cfg.Cloudinary.Transformation,
		})
		if err != nil {
			log.Printf("Warning: Failed to initialize image hosting: %v", err)
		}
	}

	// Initialize services
	authService := service.NewAuthService(userRepo, jwtManager, googleOAuthService)
	var destroyer service.ImageDestroyer
	if imagingService != nil {
		destroyer = imagingService
	}
	productService := service.NewProductService(productRepo, destroyer)
	saleService := service.NewSaleService(txnRepo, productRepo)
	duesService := service.NewDuesService(dueRepo, txnRepo)
	dashboardService := service.NewDashboardService(txnRepo, productRepo, dueRepo)

	// Initialize handlers
	handlers := &routes.Handlers{
		Auth:      handler.NewAuthHandler(authService, googleOAuthService),
		Product:   handler.NewProductHandler(productService),
		Shop:      handler.NewShopHandler(productService),
		Image:     handler.NewImageHandler(imagingService),
		Sale:      handler.NewSaleHandler(saleService),
		Dues:      handler.NewDuesHandler(duesService),
		Dashboard: handler.NewDashboardHandler(dashboardService),
	}

	// Setup routes
	router := routes.Setup(handlers, &routes.Deps{
		JWTManager:      jwtManager,
		Cfg:             cfg,
		IdempotencyRepo: idempotencyRepo,
	})

	port := cfg.App.Port
	if port == "" {
		port = "8000"
	}

	log.Printf("Starting %s server on port %s...", cfg.App.Name, port)
	log.Printf("Environment: %s", cfg.App.Env)

	if err := router.Run(":" + port); err != nil {
		log.Fatalf("Failed to start server: %v", err)
	}
}
