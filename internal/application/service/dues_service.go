package service

import (
	"context"
	"math"

	"github.com/google/uuid"
	"github.com/nishantgoyal/fashionhub-api/internal/domain/entity"
	"github.com/nishantgoyal/fashionhub-api/internal/domain/enum"
	"github.com/nishantgoyal/fashionhub-api/internal/domain/repository"
	"github.com/nishantgoyal/fashionhub-api/pkg/apperror"
	"github.com/nishantgoyal/fashionhub-api/pkg/pagination"
)

// DuesService handles the store credit ledger
type DuesService struct {
	dueRepo repository.DueRepository
	txnRepo repository.TransactionRepository
}

// NewDuesService creates a new dues service
func NewDuesService(dueRepo repository.DueRepository, txnRepo repository.TransactionRepository) *DuesService {
	return &DuesService{
		dueRepo: dueRepo,
		txnRepo: txnRepo,
	}
}

// CollectInput represents a dues collection
type CollectInput struct {
	DueID       uuid.UUID
	Amount      float64
	PaymentMode enum.PaymentMode
	CollectedBy uuid.UUID
}

// Collect records a payment against a due. Collecting the full remainder
// settles the due and flips the parent sale to PAID; a partial collection
// leaves it in PARTIAL with the remainder still owed.
func (s *DuesService) Collect(ctx context.Context, input *CollectInput) (*entity.Due, error) {
	if input.Amount <= 0 {
		return nil, apperror.NewUnprocessableError("Collection amount must be greater than zero")
	}
	if !input.PaymentMode.IsValid() {
		return nil, apperror.NewBadRequestError("Unknown payment mode: " + string(input.PaymentMode))
	}

	due, err := s.dueRepo.GetByID(ctx, input.DueID)
	if err != nil {
		return nil, err
	}
	if due == nil {
		return nil, apperror.NewNotFoundError("Due")
	}
	if due.Status == enum.DuesStatusPaid {
		return nil, apperror.NewConflictError("Due is already fully collected")
	}

	amount := int64(math.Round(input.Amount * 100))
	if amount > due.Remaining() {
		return nil, apperror.NewUnprocessableError("Collection exceeds the remaining due amount")
	}

	txn, err := s.txnRepo.GetByID(ctx, due.TransactionID)
	if err != nil {
		return nil, err
	}
	if txn == nil {
		return nil, apperror.NewNotFoundError("Transaction")
	}

	due.ApplyCollection(amount)
	txn.ApplyCollection(amount)

	payment := &entity.DuePayment{
		DueID:       due.ID,
		Amount:      amount,
		PaymentMode: input.PaymentMode,
		CollectedBy: input.CollectedBy,
	}

	if err := s.dueRepo.Collect(ctx, due, txn, payment); err != nil {
		return nil, err
	}

	due.Payments = append(due.Payments, *payment)
	due.Transaction = txn
	return due, nil
}

// GetDue returns a due by ID
func (s *DuesService) GetDue(ctx context.Context, id uuid.UUID) (*entity.Due, error) {
	due, err := s.dueRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if due == nil {
		return nil, apperror.NewNotFoundError("Due")
	}
	return due, nil
}

// ListDues returns the filtered, paginated ledger
func (s *DuesService) ListDues(ctx context.Context, params *repository.DueFilterParams) (*pagination.PaginatedResult[entity.Due], error) {
	if params.Pagination == nil {
		params.Pagination = pagination.DefaultPagination()
	}

	dues, total, err := s.dueRepo.List(ctx, params)
	if err != nil {
		return nil, err
	}

	pag := pagination.NewPagination(params.Pagination.Page, params.Pagination.PerPage, total)
	return pagination.NewPaginatedResult(dues, pag), nil
}

// ListOverdue returns dues whose due date has passed without settlement
func (s *DuesService) ListOverdue(ctx context.Context, params *repository.DueFilterParams) (*pagination.PaginatedResult[entity.Due], error) {
	if params.Pagination == nil {
		params.Pagination = pagination.DefaultPagination()
	}

	dues, total, err := s.dueRepo.ListOverdue(ctx, params)
	if err != nil {
		return nil, err
	}

	pag := pagination.NewPagination(params.Pagination.Page, params.Pagination.PerPage, total)
	return pagination.NewPaginatedResult(dues, pag), nil
}

// DuesStatistics is the ledger summary exposed to the dashboard
type DuesStatistics struct {
	TotalRecords      int64                    `json:"total_records"`
	TotalAmount       float64                  `json:"total_amount"`
	PendingAmount     float64                  `json:"pending_amount"`
	PartialAmount     float64                  `json:"partial_amount"`
	CollectedAmount   float64                  `json:"collected_amount"`
	OutstandingAmount float64                  `json:"outstanding_amount"`
	ByStatus          map[string]StatusSummary `json:"by_status"`
}

// StatusSummary aggregates one dues status bucket
type StatusSummary struct {
	Count  int64   `json:"count"`
	Amount float64 `json:"amount"`
}

// Statistics returns the aggregate view of the ledger
func (s *DuesService) Statistics(ctx context.Context) (*DuesStatistics, error) {
	stats, err := s.dueRepo.Statistics(ctx)
	if err != nil {
		return nil, err
	}

	out := &DuesStatistics{
		TotalRecords:      stats.TotalRecords,
		TotalAmount:       float64(stats.TotalAmount) / 100,
		PendingAmount:     float64(stats.PendingAmount) / 100,
		PartialAmount:     float64(stats.PartialAmount) / 100,
		CollectedAmount:   float64(stats.CollectedAmount) / 100,
		OutstandingAmount: float64(stats.PendingAmount+stats.PartialAmount) / 100,
		ByStatus:          make(map[string]StatusSummary, len(stats.ByStatus)),
	}
	for status, bucket := range stats.ByStatus {
		out.ByStatus[string(status)] = StatusSummary{
			Count:  bucket.Count,
			Amount: float64(bucket.Amount) / 100,
		}
	}
	return out, nil
}

// UpdateStatus overrides a due's status, for manual corrections like
// writing off an uncollectable debt.
func (s *DuesService) UpdateStatus(ctx context.Context, id uuid.UUID, status enum.DuesStatus) (*entity.Due, error) {
	if !status.IsValid() {
		return nil, apperror.NewBadRequestError("Unknown dues status: " + string(status))
	}

	due, err := s.dueRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if due == nil {
		return nil, apperror.NewNotFoundError("Due")
	}

	due.Status = status
	if err := s.dueRepo.Update(ctx, due); err != nil {
		return nil, err
	}
	return due, nil
}
