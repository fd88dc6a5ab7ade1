package entity

import (
	"encoding/json"
	"math"
	"time"

	"github.com/google/uuid"
	"github.com/nishantgoyal/fashionhub-api/internal/domain/enum"
	"gorm.io/gorm"
)

// Product is an item of the store's catalog. Prices are stored in paise
// (the smallest currency unit) and converted to decimal at the JSON edge.
type Product struct {
	ID           uuid.UUID      `gorm:"type:uuid;primary_key" json:"id"`
	UserID       uuid.UUID      `gorm:"type:uuid;not null;index" json:"user_id"`
	Name         string         `gorm:"size:255;not null" json:"name"`
	Price        int64          `gorm:"not null" json:"-"` // paise
	Category     enum.Category  `gorm:"size:20;not null;index" json:"category"`
	SubCategory  string         `gorm:"size:100;not null" json:"sub_category"`
	Description  *string        `gorm:"type:text" json:"description,omitempty"`
	IsOnline     bool           `gorm:"default:false;index" json:"is_online"`
	IsNewArrival bool           `gorm:"default:false" json:"is_new_arrival"`
	IsBestSeller bool           `gorm:"default:false" json:"is_best_seller"`
	CreatedAt    time.Time      `json:"created_at"`
	UpdatedAt    time.Time      `json:"updated_at"`
	DeletedAt    gorm.DeletedAt `gorm:"index" json:"-"`

	// Relationships
	User   User           `gorm:"foreignKey:UserID" json:"-"`
	Images []ProductImage `gorm:"foreignKey:ProductID" json:"images,omitempty"`
}

// BeforeCreate generates a UUID before creating a new product
func (p *Product) BeforeCreate(tx *gorm.DB) error {
	if p.ID == uuid.Nil {
		p.ID = uuid.New()
	}
	return nil
}

// TableName returns the table name for the Product model
func (Product) TableName() string {
	return "products"
}

// GetPriceDecimal returns the price in rupees
func (p *Product) GetPriceDecimal() float64 {
	return float64(p.Price) / 100
}

// SetPriceFromDecimal sets the price from a rupee value. Rounded, not
// truncated, so 0.29 stores as 29 paise.
func (p *Product) SetPriceFromDecimal(price float64) {
	p.Price = int64(math.Round(price * 100))
}

// PrimaryImageURL returns the first image URL, or empty when none exist
func (p *Product) PrimaryImageURL() string {
	if len(p.Images) == 0 {
		return ""
	}
	return p.Images[0].URL
}

// MarshalJSON converts the stored paise price to a decimal for API responses
func (p Product) MarshalJSON() ([]byte, error) {
	type Alias Product
	return json.Marshal(&struct {
		Alias
		Price float64 `json:"price"`
	}{
		Alias: Alias(p),
		Price: p.GetPriceDecimal(),
	})
}

// ProductImage is an uploaded catalog image hosted on external storage.
// PublicID identifies the asset for later cleanup.
type ProductImage struct {
	ID        uuid.UUID `gorm:"type:uuid;primary_key" json:"-"`
	ProductID uuid.UUID `gorm:"type:uuid;not null;index" json:"-"`
	URL       string    `gorm:"size:500;not null" json:"url"`
	PublicID  string    `gorm:"size:255;not null" json:"public_id"`
	CreatedAt time.Time `json:"-"`
}

// BeforeCreate generates a UUID before creating a new product image
func (i *ProductImage) BeforeCreate(tx *gorm.DB) error {
	if i.ID == uuid.Nil {
		i.ID = uuid.New()
	}
	return nil
}

// TableName returns the table name for the ProductImage model
func (ProductImage) TableName() string {
	return "product_images"
}
