package service

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"

	"github.com/nishantgoyal/fashionhub-api/internal/domain/entity"
	"github.com/nishantgoyal/fashionhub-api/internal/domain/enum"
)

// seedDue creates a sale with 400 paid and 600 owed by Rohit.
func seedDue(t *testing.T, txns *fakeTransactionRepo, dues *fakeDueRepo) *entity.Due {
	t.Helper()

	txn := &entity.Transaction{
		ID:            uuid.New(),
		Type:          enum.TransactionTypeSale,
		Amount:        100000,
		AmountPaid:    40000,
		DueAmount:     60000,
		PaymentStatus: enum.PaymentStatusDue,
		StaffUserID:   uuid.New(),
	}
	require.NoError(t, txns.Create(context.Background(), txn))

	dueDate := time.Now().AddDate(0, 0, 7)
	due := &entity.Due{
		TransactionID: txn.ID,
		CustomerName:  "Rohit",
		PhoneNumber:   "9876543210",
		Amount:        60000,
		Status:        enum.DuesStatusPending,
		DueDate:       &dueDate,
	}
	dues.add(due)
	return due
}

func TestCollect_FullAmountSettles(t *testing.T) {
	txns := newFakeTransactionRepo()
	dues := newFakeDueRepo(txns)
	svc := NewDuesService(dues, txns)

	due := seedDue(t, txns, dues)

	collected, err := svc.Collect(context.Background(), &CollectInput{
		DueID:       due.ID,
		Amount:      600,
		PaymentMode: enum.PaymentModeCash,
		CollectedBy: uuid.New(),
	})
	require.NoError(t, err)

	require.Equal(t, enum.DuesStatusPaid, collected.Status)
	require.Equal(t, int64(0), collected.Remaining())

	// Parent sale flips to PAID
	txn := txns.txns[due.TransactionID]
	require.Equal(t, enum.PaymentStatusPaid, txn.PaymentStatus)
	require.Equal(t, int64(100000), txn.AmountPaid)
	require.Equal(t, int64(0), txn.DueRemaining())
	require.Len(t, dues.payments, 1)
}

func TestCollect_PartialLeavesRemainder(t *testing.T) {
	txns := newFakeTransactionRepo()
	dues := newFakeDueRepo(txns)
	svc := NewDuesService(dues, txns)

	due := seedDue(t, txns, dues)

	collected, err := svc.Collect(context.Background(), &CollectInput{
		DueID:       due.ID,
		Amount:      200,
		PaymentMode: enum.PaymentModeOnline,
		CollectedBy: uuid.New(),
	})
	require.NoError(t, err)

	require.Equal(t, enum.DuesStatusPartial, collected.Status)
	require.Equal(t, int64(40000), collected.Remaining())

	// Parent sale stays DUE with 400 still owed
	txn := txns.txns[due.TransactionID]
	require.Equal(t, enum.PaymentStatusDue, txn.PaymentStatus)
	require.Equal(t, int64(40000), txn.DueRemaining())
}

func TestCollect_RejectsOverCollection(t *testing.T) {
	txns := newFakeTransactionRepo()
	dues := newFakeDueRepo(txns)
	svc := NewDuesService(dues, txns)

	due := seedDue(t, txns, dues)

	_, err := svc.Collect(context.Background(), &CollectInput{
		DueID:       due.ID,
		Amount:      601,
		PaymentMode: enum.PaymentModeCash,
		CollectedBy: uuid.New(),
	})
	require.Error(t, err)
	require.Empty(t, dues.payments)
}

func TestCollect_RejectsSettledDue(t *testing.T) {
	txns := newFakeTransactionRepo()
	dues := newFakeDueRepo(txns)
	svc := NewDuesService(dues, txns)

	due := seedDue(t, txns, dues)
	due.ApplyCollection(60000)
	require.Equal(t, enum.DuesStatusPaid, due.Status)

	_, err := svc.Collect(context.Background(), &CollectInput{
		DueID:       due.ID,
		Amount:      100,
		PaymentMode: enum.PaymentModeCash,
		CollectedBy: uuid.New(),
	})
	require.Error(t, err)
}

func TestCollect_RejectsUnknownPaymentMode(t *testing.T) {
	txns := newFakeTransactionRepo()
	dues := newFakeDueRepo(txns)
	svc := NewDuesService(dues, txns)

	due := seedDue(t, txns, dues)

	_, err := svc.Collect(context.Background(), &CollectInput{
		DueID:       due.ID,
		Amount:      100,
		PaymentMode: enum.PaymentMode("CHEQUE"),
		CollectedBy: uuid.New(),
	})
	require.Error(t, err)
}

func TestStatistics(t *testing.T) {
	txns := newFakeTransactionRepo()
	dues := newFakeDueRepo(txns)
	svc := NewDuesService(dues, txns)

	pending := seedDue(t, txns, dues)
	_ = pending

	partial := seedDue(t, txns, dues)
	partial.ApplyCollection(20000)

	settled := seedDue(t, txns, dues)
	settled.ApplyCollection(60000)

	stats, err := svc.Statistics(context.Background())
	require.NoError(t, err)

	require.Equal(t, int64(3), stats.TotalRecords)
	require.InDelta(t, 1800.0, stats.TotalAmount, 0.001)
	require.InDelta(t, 600.0, stats.PendingAmount, 0.001)
	require.InDelta(t, 400.0, stats.PartialAmount, 0.001)
	require.InDelta(t, 800.0, stats.CollectedAmount, 0.001)
	require.InDelta(t, 1000.0, stats.OutstandingAmount, 0.001)
	require.Equal(t, int64(1), stats.ByStatus[string(enum.DuesStatusPaid)].Count)
}

func TestUpdateStatus(t *testing.T) {
	txns := newFakeTransactionRepo()
	dues := newFakeDueRepo(txns)
	svc := NewDuesService(dues, txns)

	due := seedDue(t, txns, dues)

	updated, err := svc.UpdateStatus(context.Background(), due.ID, enum.DuesStatusPaid)
	require.NoError(t, err)
	require.Equal(t, enum.DuesStatusPaid, updated.Status)

	_, err = svc.UpdateStatus(context.Background(), due.ID, enum.DuesStatus("WRITTEN_OFF"))
	require.Error(t, err)
}
