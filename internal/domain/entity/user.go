package entity

import (
	"time"

	"github.com/google/uuid"
	"github.com/nishantgoyal/fashionhub-api/internal/domain/enum"
	"gorm.io/gorm"
)

// User is an owner or staff member of the store
type User struct {
	ID         uuid.UUID      `gorm:"type:uuid;primary_key" json:"id"`
	Name       string         `gorm:"size:255;not null" json:"name"`
	Email      *string        `gorm:"size:255;uniqueIndex" json:"email,omitempty"`
	StaffID    *string        `gorm:"size:50;uniqueIndex;column:staff_id" json:"staff_id,omitempty"`
	Password   string         `gorm:"size:255" json:"-"` // bcrypt hash of the password or PIN
	Role       enum.Role      `gorm:"size:20;not null;default:'staff'" json:"role"`
	Provider   string         `gorm:"size:50;default:'local'" json:"provider"`
	ProviderID *string        `gorm:"size:255" json:"-"`
	Photo      *string        `gorm:"size:255" json:"photo,omitempty"`
	CreatedAt  time.Time      `json:"created_at"`
	UpdatedAt  time.Time      `json:"updated_at"`
	DeletedAt  gorm.DeletedAt `gorm:"index" json:"-"`

	// Relationships
	Transactions []Transaction `gorm:"foreignKey:StaffUserID" json:"-"`
}

// BeforeCreate generates a UUID before creating a new user
func (u *User) BeforeCreate(tx *gorm.DB) error {
	if u.ID == uuid.Nil {
		u.ID = uuid.New()
	}
	return nil
}

// TableName returns the table name for the User model
func (User) TableName() string {
	return "users"
}

// IsOwner reports whether the user holds the owner role
func (u *User) IsOwner() bool {
	return u.Role == enum.RoleOwner
}
