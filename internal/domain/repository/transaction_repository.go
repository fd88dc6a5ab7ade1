package repository

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/nishantgoyal/fashionhub-api/internal/domain/entity"
	"github.com/nishantgoyal/fashionhub-api/internal/domain/enum"
)

// TransactionRepository defines the interface for transaction data operations
type TransactionRepository interface {
	Create(ctx context.Context, txn *entity.Transaction) error
	// CreateSale persists the transaction and its due record atomically;
	// due may be nil for fully paid sales.
	CreateSale(ctx context.Context, txn *entity.Transaction, due *entity.Due) error
	GetByID(ctx context.Context, id uuid.UUID) (*entity.Transaction, error)
	Update(ctx context.Context, txn *entity.Transaction) error
	// ListRecent returns the most recent transactions of the given type
	// (all types when nil), newest first.
	ListRecent(ctx context.Context, txnType *enum.TransactionType, limit int) ([]entity.Transaction, error)
	SumByTypeSince(ctx context.Context, txnType enum.TransactionType, since time.Time) (int64, error)
	DailySalesTotals(ctx context.Context, since time.Time) (map[string]int64, error)
	CategorySalesTotals(ctx context.Context, since time.Time) (map[string]int64, error)
}
