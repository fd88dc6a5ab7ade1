package entity

import (
	"encoding/json"
	"time"

	"github.com/google/uuid"
	"github.com/nishantgoyal/fashionhub-api/internal/domain/enum"
	"gorm.io/gorm"
)

// Transaction records a sale or an expense. The product fields are a
// denormalized snapshot taken at sale time, so later catalog edits never
// rewrite history. Amounts are stored in paise and converted to decimal
// at the JSON edge.
type Transaction struct {
	ID            uuid.UUID            `gorm:"type:uuid;primary_key" json:"id"`
	Type          enum.TransactionType `gorm:"size:20;not null;index" json:"type"`
	Amount        int64                `gorm:"not null" json:"-"` // total, paise
	AmountPaid    int64                `gorm:"default:0" json:"-"`
	DueAmount     int64                `gorm:"default:0" json:"-"`
	PaymentStatus enum.PaymentStatus   `gorm:"size:10;not null;index" json:"payment_status"`
	StaffUserID   uuid.UUID            `gorm:"type:uuid;not null;index" json:"staff_user_id"`
	Description   *string              `gorm:"type:text" json:"description,omitempty"`

	// Product snapshot at sale time
	ProductID          *uuid.UUID    `gorm:"type:uuid;index" json:"product_id,omitempty"`
	ProductName        string        `gorm:"size:255" json:"product_name,omitempty"`
	ProductCategory    enum.Category `gorm:"size:20" json:"product_category,omitempty"`
	ProductSubCategory string        `gorm:"size:100" json:"product_sub_category,omitempty"`
	ProductImageURL    string        `gorm:"size:500" json:"product_image_url,omitempty"`

	// Customer identity, present only when store credit was extended
	CustomerName  *string    `gorm:"size:255" json:"customer_name,omitempty"`
	CustomerPhone *string    `gorm:"size:20" json:"customer_phone,omitempty"`
	DueDate       *time.Time `json:"due_date,omitempty"`

	CreatedAt time.Time      `json:"created_at"`
	UpdatedAt time.Time      `json:"updated_at"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"-"`

	// Relationships
	Staff Staff `gorm:"-" json:"staff"`
	User  User  `gorm:"foreignKey:StaffUserID" json:"-"`
	Due   *Due  `gorm:"foreignKey:TransactionID" json:"due,omitempty"`
}

// Staff is the denormalized staff reference exposed on API responses
type Staff struct {
	Name    string `json:"name"`
	StaffID string `json:"staff_id,omitempty"`
}

// BeforeCreate generates a UUID before creating a new transaction
func (t *Transaction) BeforeCreate(tx *gorm.DB) error {
	if t.ID == uuid.Nil {
		t.ID = uuid.New()
	}
	return nil
}

// AfterFind fills the denormalized staff reference from the preloaded user
func (t *Transaction) AfterFind(tx *gorm.DB) error {
	if t.User.ID != uuid.Nil {
		t.Staff = Staff{Name: t.User.Name}
		if t.User.StaffID != nil {
			t.Staff.StaffID = *t.User.StaffID
		}
	}
	return nil
}

// TableName returns the table name for the Transaction model
func (Transaction) TableName() string {
	return "transactions"
}

// DueRemaining returns the outstanding amount in paise, never negative.
// It is always recomputed from total and amount paid rather than read
// from the stored column.
func (t *Transaction) DueRemaining() int64 {
	remaining := t.Amount - t.AmountPaid
	if remaining < 0 {
		return 0
	}
	return remaining
}

// ApplyCollection credits a dues collection against the transaction,
// recomputing due amount and flipping payment status when settled.
func (t *Transaction) ApplyCollection(amount int64) {
	t.AmountPaid += amount
	t.DueAmount = t.DueRemaining()
	if t.DueAmount == 0 {
		t.PaymentStatus = enum.PaymentStatusPaid
	} else {
		t.PaymentStatus = enum.PaymentStatusDue
	}
}

// MarshalJSON converts stored paise values to decimal for API responses
func (t Transaction) MarshalJSON() ([]byte, error) {
	type Alias Transaction
	return json.Marshal(&struct {
		Alias
		Amount     float64 `json:"amount"`
		AmountPaid float64 `json:"amount_paid"`
		DueAmount  float64 `json:"due_amount"`
	}{
		Alias:      Alias(t),
		Amount:     float64(t.Amount) / 100,
		AmountPaid: float64(t.AmountPaid) / 100,
		DueAmount:  float64(t.DueRemaining()) / 100,
	})
}
