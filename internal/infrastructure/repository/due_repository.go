package repository

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/nishantgoyal/fashionhub-api/internal/domain/entity"
	"github.com/nishantgoyal/fashionhub-api/internal/domain/enum"
	domainRepo "github.com/nishantgoyal/fashionhub-api/internal/domain/repository"
	"gorm.io/gorm"
)

type dueRepository struct {
	db *gorm.DB
}

// NewDueRepository creates a new due repository
func NewDueRepository(db *gorm.DB) domainRepo.DueRepository {
	return &dueRepository{db: db}
}

func (r *dueRepository) GetByID(ctx context.Context, id uuid.UUID) (*entity.Due, error) {
	var due entity.Due
	err := r.db.WithContext(ctx).
		Preload("Transaction").Preload("Payments").
		First(&due, "id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	return &due, err
}

func (r *dueRepository) Update(ctx context.Context, due *entity.Due) error {
	return r.db.WithContext(ctx).Save(due).Error
}

// Collect writes the payment receipt and the updated due and transaction
// rows atomically, so the ledger and the sale can never disagree on how
// much has been collected.
func (r *dueRepository) Collect(ctx context.Context, due *entity.Due, txn *entity.Transaction, payment *entity.DuePayment) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(payment).Error; err != nil {
			return err
		}
		if err := tx.Model(&entity.Due{}).Where("id = ?", due.ID).Updates(map[string]interface{}{
			"amount_collected": due.AmountCollected,
			"status":           due.Status,
		}).Error; err != nil {
			return err
		}
		return tx.Model(&entity.Transaction{}).Where("id = ?", txn.ID).Updates(map[string]interface{}{
			"amount_paid":    txn.AmountPaid,
			"due_amount":     txn.DueAmount,
			"payment_status": txn.PaymentStatus,
		}).Error
	})
}

func (r *dueRepository) List(ctx context.Context, params *domainRepo.DueFilterParams) ([]entity.Due, int64, error) {
	var dues []entity.Due
	var total int64

	query := r.db.WithContext(ctx).Model(&entity.Due{})

	if params.Status != nil {
		query = query.Where("status = ?", *params.Status)
	}

	if params.Search != "" {
		query = query.Where("customer_name ILIKE ? OR phone_number ILIKE ?",
			"%"+params.Search+"%", "%"+params.Search+"%")
	}

	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	params.Pagination.Validate()
	err := query.Offset(params.Pagination.Offset()).Limit(params.Pagination.PerPage).
		Preload("Transaction").Preload("Payments").
		Order("created_at DESC").
		Find(&dues).Error

	return dues, total, err
}

func (r *dueRepository) ListOverdue(ctx context.Context, params *domainRepo.DueFilterParams) ([]entity.Due, int64, error) {
	var dues []entity.Due
	var total int64

	query := r.db.WithContext(ctx).Model(&entity.Due{}).
		Where("status <> ? AND due_date IS NOT NULL AND due_date < ?", enum.DuesStatusPaid, time.Now())

	if params.Search != "" {
		query = query.Where("customer_name ILIKE ? OR phone_number ILIKE ?",
			"%"+params.Search+"%", "%"+params.Search+"%")
	}

	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	params.Pagination.Validate()
	err := query.Offset(params.Pagination.Offset()).Limit(params.Pagination.PerPage).
		Preload("Transaction").Preload("Payments").
		Order("due_date ASC").
		Find(&dues).Error

	return dues, total, err
}

func (r *dueRepository) Statistics(ctx context.Context) (*domainRepo.DueStatistics, error) {
	type row struct {
		Status    enum.DuesStatus
		Count     int64
		Amount    int64
		Collected int64
	}
	var rows []row
	err := r.db.WithContext(ctx).Model(&entity.Due{}).
		Select("status, COUNT(*) AS count, COALESCE(SUM(amount), 0) AS amount, COALESCE(SUM(amount_collected), 0) AS collected").
		Group("status").
		Scan(&rows).Error
	if err != nil {
		return nil, err
	}

	stats := &domainRepo.DueStatistics{
		ByStatus: make(map[enum.DuesStatus]domainRepo.DueStatusBucket),
	}
	for _, rec := range rows {
		stats.TotalRecords += rec.Count
		stats.TotalAmount += rec.Amount
		stats.CollectedAmount += rec.Collected
		outstanding := rec.Amount - rec.Collected
		switch rec.Status {
		case enum.DuesStatusPending:
			stats.PendingAmount += outstanding
		case enum.DuesStatusPartial:
			stats.PartialAmount += outstanding
		}
		stats.ByStatus[rec.Status] = domainRepo.DueStatusBucket{
			Count:  rec.Count,
			Amount: outstanding,
		}
	}
	return stats, nil
}
