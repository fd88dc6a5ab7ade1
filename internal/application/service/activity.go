package service

import (
	"context"
	"sort"

	"github.com/nishantgoyal/fashionhub-api/internal/domain/entity"
	"github.com/nishantgoyal/fashionhub-api/internal/domain/enum"
	"github.com/nishantgoyal/fashionhub-api/pkg/apperror"
)

// Activity filter values
const (
	ActivityFilterAll  = "all"
	ActivityFilterPaid = "paid"
	ActivityFilterDue  = "due"
)

// Activity sort values
const (
	ActivitySortNewest     = "newest"
	ActivitySortOldest     = "oldest"
	ActivitySortHighAmount = "high_amount"
	ActivitySortLowAmount  = "low_amount"
)

const defaultActivityLimit = 50

// ListActivityInput represents the activity feed query
type ListActivityInput struct {
	Type   string
	Filter string
	Sort   string
	Limit  int
}

// ListActivity returns the recent sales feed, filtered by payment status
// and ordered by the requested sort. Filtering and ordering happen after
// the fetch, on the same recent window the feed always shows.
func (s *SaleService) ListActivity(ctx context.Context, input *ListActivityInput) ([]entity.Transaction, error) {
	if input.Filter == "" {
		input.Filter = ActivityFilterAll
	}
	if input.Sort == "" {
		input.Sort = ActivitySortNewest
	}
	if input.Limit <= 0 {
		input.Limit = defaultActivityLimit
	}

	txnType := enum.TransactionTypeSale
	if input.Type != "" {
		txnType = enum.TransactionType(input.Type)
		if !txnType.IsValid() {
			return nil, apperror.NewBadRequestError("Unknown transaction type: " + input.Type)
		}
	}
	switch input.Filter {
	case ActivityFilterAll, ActivityFilterPaid, ActivityFilterDue:
	default:
		return nil, apperror.NewBadRequestError("Unknown filter: " + input.Filter)
	}
	switch input.Sort {
	case ActivitySortNewest, ActivitySortOldest, ActivitySortHighAmount, ActivitySortLowAmount:
	default:
		return nil, apperror.NewBadRequestError("Unknown sort: " + input.Sort)
	}

	txns, err := s.txnRepo.ListRecent(ctx, &txnType, input.Limit)
	if err != nil {
		return nil, err
	}

	txns = FilterActivity(txns, input.Filter)
	SortActivity(txns, input.Sort)
	return txns, nil
}

// FilterActivity keeps the transactions matching the payment status
// filter. "all" keeps everything; "paid" and "due" partition the feed.
func FilterActivity(txns []entity.Transaction, filter string) []entity.Transaction {
	if filter == ActivityFilterAll {
		return txns
	}

	out := txns[:0:0]
	for _, t := range txns {
		switch filter {
		case ActivityFilterPaid:
			if t.PaymentStatus == enum.PaymentStatusPaid {
				out = append(out, t)
			}
		case ActivityFilterDue:
			if t.PaymentStatus == enum.PaymentStatusDue {
				out = append(out, t)
			}
		}
	}
	return out
}

// SortActivity orders the feed in place. The sort is stable, so entries
// with equal keys keep their newest-first fetch order.
func SortActivity(txns []entity.Transaction, by string) {
	switch by {
	case ActivitySortOldest:
		sort.SliceStable(txns, func(i, j int) bool {
			return txns[i].CreatedAt.Before(txns[j].CreatedAt)
		})
	case ActivitySortHighAmount:
		sort.SliceStable(txns, func(i, j int) bool {
			return txns[i].Amount > txns[j].Amount
		})
	case ActivitySortLowAmount:
		sort.SliceStable(txns, func(i, j int) bool {
			return txns[i].Amount < txns[j].Amount
		})
	default: // newest
		sort.SliceStable(txns, func(i, j int) bool {
			return txns[i].CreatedAt.After(txns[j].CreatedAt)
		})
	}
}
