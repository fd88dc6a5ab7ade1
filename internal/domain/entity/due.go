package entity

import (
	"encoding/json"
	"time"

	"github.com/google/uuid"
	"github.com/nishantgoyal/fashionhub-api/internal/domain/enum"
	"gorm.io/gorm"
)

// Due is the credit ledger entry created when a sale carries a DUES
// allocation. It tracks the named customer who owes the remainder and
// every collection made against it.
type Due struct {
	ID              uuid.UUID       `gorm:"type:uuid;primary_key" json:"id"`
	TransactionID   uuid.UUID       `gorm:"type:uuid;not null;uniqueIndex" json:"transaction_id"`
	CustomerName    string          `gorm:"size:255;not null" json:"customer_name"`
	PhoneNumber     string          `gorm:"size:20;not null;index" json:"phone_number"`
	Amount          int64           `gorm:"not null" json:"-"` // original credit, paise
	AmountCollected int64           `gorm:"default:0" json:"-"`
	Status          enum.DuesStatus `gorm:"size:10;not null;index" json:"status"`
	DueDate         *time.Time      `json:"due_date,omitempty"`
	CreatedAt       time.Time       `json:"created_at"`
	UpdatedAt       time.Time       `json:"updated_at"`
	DeletedAt       gorm.DeletedAt  `gorm:"index" json:"-"`

	// Relationships
	Transaction *Transaction `gorm:"foreignKey:TransactionID" json:"transaction,omitempty"`
	Payments    []DuePayment `gorm:"foreignKey:DueID" json:"payments,omitempty"`
}

// BeforeCreate generates a UUID before creating a new due
func (d *Due) BeforeCreate(tx *gorm.DB) error {
	if d.ID == uuid.Nil {
		d.ID = uuid.New()
	}
	return nil
}

// TableName returns the table name for the Due model
func (Due) TableName() string {
	return "dues"
}

// Remaining returns the uncollected amount in paise, never negative
func (d *Due) Remaining() int64 {
	remaining := d.Amount - d.AmountCollected
	if remaining < 0 {
		return 0
	}
	return remaining
}

// IsOverdue reports whether the due date has passed without full collection
func (d *Due) IsOverdue(now time.Time) bool {
	if d.Status == enum.DuesStatusPaid || d.DueDate == nil {
		return false
	}
	return d.DueDate.Before(now)
}

// ApplyCollection credits a collection and recomputes the status
func (d *Due) ApplyCollection(amount int64) {
	d.AmountCollected += amount
	switch {
	case d.Remaining() == 0:
		d.Status = enum.DuesStatusPaid
	case d.AmountCollected > 0:
		d.Status = enum.DuesStatusPartial
	default:
		d.Status = enum.DuesStatusPending
	}
}

// MarshalJSON converts stored paise values to decimal for API responses
func (d Due) MarshalJSON() ([]byte, error) {
	type Alias Due
	return json.Marshal(&struct {
		Alias
		Amount          float64 `json:"amount"`
		AmountCollected float64 `json:"amount_collected"`
		Remaining       float64 `json:"remaining"`
	}{
		Alias:           Alias(d),
		Amount:          float64(d.Amount) / 100,
		AmountCollected: float64(d.AmountCollected) / 100,
		Remaining:       float64(d.Remaining()) / 100,
	})
}

// DuePayment is one collection receipt against a due
type DuePayment struct {
	ID          uuid.UUID        `gorm:"type:uuid;primary_key" json:"id"`
	DueID       uuid.UUID        `gorm:"type:uuid;not null;index" json:"due_id"`
	Amount      int64            `gorm:"not null" json:"-"` // paise
	PaymentMode enum.PaymentMode `gorm:"size:10;not null" json:"payment_mode"`
	CollectedBy uuid.UUID        `gorm:"type:uuid;not null" json:"collected_by"`
	CreatedAt   time.Time        `json:"created_at"`
}

// BeforeCreate generates a UUID before creating a new due payment
func (p *DuePayment) BeforeCreate(tx *gorm.DB) error {
	if p.ID == uuid.Nil {
		p.ID = uuid.New()
	}
	return nil
}

// TableName returns the table name for the DuePayment model
func (DuePayment) TableName() string {
	return "due_payments"
}

// MarshalJSON converts the stored paise amount to decimal for API responses
func (p DuePayment) MarshalJSON() ([]byte, error) {
	type Alias DuePayment
	return json.Marshal(&struct {
		Alias
		Amount float64 `json:"amount"`
	}{
		Alias:  Alias(p),
		Amount: float64(p.Amount) / 100,
	})
}
