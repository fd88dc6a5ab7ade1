package database

import (
	"fmt"
	"log"

	"github.com/google/uuid"
	"github.com/nishantgoyal/fashionhub-api/internal/config"
	"github.com/nishantgoyal/fashionhub-api/internal/domain/entity"
	"github.com/nishantgoyal/fashionhub-api/internal/domain/enum"
	"github.com/spf13/viper"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// NewPostgresDB creates a new PostgreSQL database connection
func NewPostgresDB(cfg *config.DatabaseConfig) (*gorm.DB, error) {
	logLevel := logger.Info

	db, err := gorm.Open(postgres.New(postgres.Config{
		DSN:                  cfg.DSN(),
		PreferSimpleProtocol: true, // disables implicit prepared statement usage
	}), &gorm.Config{
		Logger: logger.Default.LogMode(logLevel),
	})
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}

	// Get underlying SQL DB to set connection pool settings
	sqlDB, err := db.DB()
	if err != nil {
		return nil, fmt.Errorf("failed to get underlying sql.DB: %w", err)
	}

	sqlDB.SetMaxIdleConns(10)
	sqlDB.SetMaxOpenConns(100)

	log.Println("Successfully connected to PostgreSQL database")
	return db, nil
}

// AutoMigrate runs GORM auto-migration for all entities
func AutoMigrate(db *gorm.DB) error {
	log.Println("Running database migrations...")

	err := db.AutoMigrate(
		// User entities
		&entity.User{},

		// Catalog entities
		&entity.Product{},
		&entity.ProductImage{},

		// Sales entities
		&entity.Transaction{},
		&entity.Due{},
		&entity.DuePayment{},

		// System entities
		&entity.IdempotencyKey{},
	)

	if err != nil {
		return fmt.Errorf("failed to run migrations: %w", err)
	}

	log.Println("Database migrations completed successfully")
	return nil
}

// SeedDefaultData creates the owner account when configured via environment variables
func SeedDefaultData(db *gorm.DB) error {
	log.Println("Seeding default data...")

	ownerEmail := viper.GetString("OWNER_EMAIL")
	ownerPassword := viper.GetString("OWNER_PASSWORD")
	ownerName := viper.GetString("OWNER_NAME")

	if ownerEmail != "" && ownerPassword != "" {
		var existing entity.User
		if err := db.Where("email = ?", ownerEmail).First(&existing).Error; err != nil {
			hashedPassword, err := bcrypt.GenerateFromPassword([]byte(ownerPassword), bcrypt.DefaultCost)
			if err != nil {
				log.Printf("Warning: failed to hash owner password: %v", err)
			} else {
				if ownerName == "" {
					ownerName = "Store Owner"
				}
				owner := entity.User{
					ID:       uuid.New(),
					Name:     ownerName,
					Email:    &ownerEmail,
					Password: string(hashedPassword),
					Role:     enum.RoleOwner,
				}
				if err := db.Create(&owner).Error; err != nil {
					log.Printf("Warning: failed to create owner user: %v", err)
				} else {
					log.Printf("Owner user created: %s", ownerEmail)
				}
			}
		} else {
			log.Printf("Owner user already exists: %s", ownerEmail)
		}
	}

	log.Println("Default data seeding completed")
	return nil
}
