package repository

import (
	"context"

	"github.com/google/uuid"
	"github.com/nishantgoyal/fashionhub-api/internal/domain/entity"
	"github.com/nishantgoyal/fashionhub-api/internal/domain/enum"
	"github.com/nishantgoyal/fashionhub-api/pkg/pagination"
)

// DueRepository defines the interface for dues ledger operations
type DueRepository interface {
	GetByID(ctx context.Context, id uuid.UUID) (*entity.Due, error)
	Update(ctx context.Context, due *entity.Due) error
	// Collect atomically appends the payment receipt and saves the updated
	// due together with its parent transaction.
	Collect(ctx context.Context, due *entity.Due, txn *entity.Transaction, payment *entity.DuePayment) error
	List(ctx context.Context, params *DueFilterParams) ([]entity.Due, int64, error)
	ListOverdue(ctx context.Context, params *DueFilterParams) ([]entity.Due, int64, error)
	Statistics(ctx context.Context) (*DueStatistics, error)
}

// DueFilterParams contains filtering parameters for dues queries
type DueFilterParams struct {
	Pagination *pagination.PaginationParams
	Status     *enum.DuesStatus
	Search     string // matches customer name or phone
}

// DueStatusBucket aggregates count and amount for one dues status
type DueStatusBucket struct {
	Count  int64 `json:"count"`
	Amount int64 `json:"-"` // paise; services convert to decimal
}

// DueStatistics is the aggregate view of the dues ledger
type DueStatistics struct {
	TotalRecords    int64
	TotalAmount     int64 // paise
	PendingAmount   int64
	PartialAmount   int64
	CollectedAmount int64
	ByStatus        map[enum.DuesStatus]DueStatusBucket
}
