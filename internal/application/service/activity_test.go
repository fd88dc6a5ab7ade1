package service

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/nishantgoyal/fashionhub-api/internal/domain/entity"
	"github.com/nishantgoyal/fashionhub-api/internal/domain/enum"
)

func activityFixture() []entity.Transaction {
	base := time.Date(2026, 8, 1, 10, 0, 0, 0, time.UTC)
	return []entity.Transaction{
		{ProductName: "Sherwani", Amount: 150000, PaymentStatus: enum.PaymentStatusPaid, CreatedAt: base.Add(3 * time.Hour)},
		{ProductName: "Saree", Amount: 90000, PaymentStatus: enum.PaymentStatusDue, CreatedAt: base.Add(2 * time.Hour)},
		{ProductName: "Kurti", Amount: 35000, PaymentStatus: enum.PaymentStatusPaid, CreatedAt: base.Add(time.Hour)},
		{ProductName: "Shirt", Amount: 90000, PaymentStatus: enum.PaymentStatusDue, CreatedAt: base},
	}
}

func names(txns []entity.Transaction) []string {
	out := make([]string, len(txns))
	for i, t := range txns {
		out[i] = t.ProductName
	}
	return out
}

func TestListActivity_RejectsUnknownInputs(t *testing.T) {
	svc := NewSaleService(newFakeTransactionRepo(), newFakeProductRepo())
	ctx := context.Background()

	_, err := svc.ListActivity(ctx, &ListActivityInput{Type: "REFUND"})
	require.Error(t, err)

	_, err = svc.ListActivity(ctx, &ListActivityInput{Filter: "pending"})
	require.Error(t, err)

	_, err = svc.ListActivity(ctx, &ListActivityInput{Sort: "amount"})
	require.Error(t, err)

	_, err = svc.ListActivity(ctx, &ListActivityInput{})
	require.NoError(t, err)
}

func TestFilterActivity(t *testing.T) {
	txns := activityFixture()

	all := FilterActivity(txns, ActivityFilterAll)
	require.Len(t, all, 4)

	paid := FilterActivity(txns, ActivityFilterPaid)
	require.Equal(t, []string{"Sherwani", "Kurti"}, names(paid))

	due := FilterActivity(txns, ActivityFilterDue)
	require.Equal(t, []string{"Saree", "Shirt"}, names(due))

	// paid and due partition the feed
	require.Len(t, paid, 4-len(due))
}

func TestSortActivity(t *testing.T) {
	newest := activityFixture()
	SortActivity(newest, ActivitySortNewest)
	require.Equal(t, []string{"Sherwani", "Saree", "Kurti", "Shirt"}, names(newest))

	oldest := activityFixture()
	SortActivity(oldest, ActivitySortOldest)
	require.Equal(t, []string{"Shirt", "Kurti", "Saree", "Sherwani"}, names(oldest))

	high := activityFixture()
	SortActivity(high, ActivitySortHighAmount)
	require.Equal(t, []string{"Sherwani", "Saree", "Shirt", "Kurti"}, names(high))

	low := activityFixture()
	SortActivity(low, ActivitySortLowAmount)
	require.Equal(t, []string{"Kurti", "Saree", "Shirt", "Sherwani"}, names(low))
}

func TestSortActivity_StableOnEqualAmounts(t *testing.T) {
	// Saree and Shirt share an amount; the stable sort must keep their
	// newest-first fetch order in both directions.
	high := activityFixture()
	SortActivity(high, ActivitySortHighAmount)
	require.Equal(t, "Saree", high[1].ProductName)
	require.Equal(t, "Shirt", high[2].ProductName)

	low := activityFixture()
	SortActivity(low, ActivitySortLowAmount)
	require.Equal(t, "Saree", low[1].ProductName)
	require.Equal(t, "Shirt", low[2].ProductName)
}
