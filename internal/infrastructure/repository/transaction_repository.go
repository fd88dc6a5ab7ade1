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

type transactionRepository struct {
	db *gorm.DB
}

// NewTransactionRepository creates a new transaction repository
func NewTransactionRepository(db *gorm.DB) domainRepo.TransactionRepository {
	return &transactionRepository{db: db}
}

func (r *transactionRepository) Create(ctx context.Context, txn *entity.Transaction) error {
	return r.db.WithContext(ctx).Create(txn).Error
}

// CreateSale persists the transaction and its due record in a single
// database transaction, so a failed due insert never leaves an orphaned
// sale behind.
func (r *transactionRepository) CreateSale(ctx context.Context, txn *entity.Transaction, due *entity.Due) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(txn).Error; err != nil {
			return err
		}
		if due != nil {
			due.TransactionID = txn.ID
			if err := tx.Create(due).Error; err != nil {
				return err
			}
		}
		return nil
	})
}

func (r *transactionRepository) GetByID(ctx context.Context, id uuid.UUID) (*entity.Transaction, error) {
	var txn entity.Transaction
	err := r.db.WithContext(ctx).
		Preload("User").Preload("Due").
		First(&txn, "id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	return &txn, err
}

func (r *transactionRepository) Update(ctx context.Context, txn *entity.Transaction) error {
	return r.db.WithContext(ctx).Save(txn).Error
}

func (r *transactionRepository) ListRecent(ctx context.Context, txnType *enum.TransactionType, limit int) ([]entity.Transaction, error) {
	var txns []entity.Transaction

	query := r.db.WithContext(ctx).Model(&entity.Transaction{})
	if txnType != nil {
		query = query.Where("type = ?", *txnType)
	}

	err := query.
		Preload("User").Preload("Due").
		Order("created_at DESC").
		Limit(limit).
		Find(&txns).Error

	return txns, err
}

func (r *transactionRepository) SumByTypeSince(ctx context.Context, txnType enum.TransactionType, since time.Time) (int64, error) {
	var total int64
	err := r.db.WithContext(ctx).Model(&entity.Transaction{}).
		Where("type = ? AND created_at >= ?", txnType, since).
		Select("COALESCE(SUM(amount), 0)").
		Scan(&total).Error
	return total, err
}

func (r *transactionRepository) DailySalesTotals(ctx context.Context, since time.Time) (map[string]int64, error) {
	type row struct {
		Day   time.Time
		Total int64
	}
	var rows []row
	err := r.db.WithContext(ctx).Model(&entity.Transaction{}).
		Where("type = ? AND created_at >= ?", enum.TransactionTypeSale, since).
		Select("DATE_TRUNC('day', created_at) AS day, COALESCE(SUM(amount), 0) AS total").
		Group("day").
		Scan(&rows).Error
	if err != nil {
		return nil, err
	}

	totals := make(map[string]int64, len(rows))
	for _, rec := range rows {
		totals[rec.Day.Format("2006-01-02")] = rec.Total
	}
	return totals, nil
}

func (r *transactionRepository) CategorySalesTotals(ctx context.Context, since time.Time) (map[string]int64, error) {
	type row struct {
		Category string
		Total    int64
	}
	var rows []row
	err := r.db.WithContext(ctx).Model(&entity.Transaction{}).
		Where("type = ? AND created_at >= ? AND product_category <> ''", enum.TransactionTypeSale, since).
		Select("product_category AS category, COALESCE(SUM(amount), 0) AS total").
		Group("product_category").
		Scan(&rows).Error
	if err != nil {
		return nil, err
	}

	totals := make(map[string]int64, len(rows))
	for _, rec := range rows {
		totals[rec.Category] = rec.Total
	}
	return totals, nil
}
