package entity

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/nishantgoyal/fashionhub-api/internal/domain/enum"
)

func TestTransactionDueRemaining(t *testing.T) {
	txn := &Transaction{Amount: 100000, AmountPaid: 40000}
	require.Equal(t, int64(60000), txn.DueRemaining())

	// Overpayment never yields a negative remainder
	txn.AmountPaid = 120000
	require.Equal(t, int64(0), txn.DueRemaining())
}

func TestTransactionApplyCollection(t *testing.T) {
	txn := &Transaction{
		Amount:        100000,
		AmountPaid:    40000,
		DueAmount:     60000,
		PaymentStatus: enum.PaymentStatusDue,
	}

	txn.ApplyCollection(20000)
	require.Equal(t, enum.PaymentStatusDue, txn.PaymentStatus)
	require.Equal(t, int64(40000), txn.DueAmount)

	txn.ApplyCollection(40000)
	require.Equal(t, enum.PaymentStatusPaid, txn.PaymentStatus)
	require.Equal(t, int64(0), txn.DueAmount)
}

func TestTransactionMarshalJSON_DecimalAmounts(t *testing.T) {
	txn := Transaction{Amount: 100000, AmountPaid: 40000}

	data, err := json.Marshal(txn)
	require.NoError(t, err)

	var out map[string]interface{}
	require.NoError(t, json.Unmarshal(data, &out))
	require.Equal(t, 1000.0, out["amount"])
	require.Equal(t, 400.0, out["amount_paid"])
	require.Equal(t, 600.0, out["due_amount"])
}

func TestDueIsOverdue(t *testing.T) {
	now := time.Date(2026, 8, 30, 12, 0, 0, 0, time.UTC)
	past := now.AddDate(0, 0, -1)
	future := now.AddDate(0, 0, 1)

	overdue := &Due{Status: enum.DuesStatusPending, DueDate: &past}
	require.True(t, overdue.IsOverdue(now))

	upcoming := &Due{Status: enum.DuesStatusPending, DueDate: &future}
	require.False(t, upcoming.IsOverdue(now))

	// A settled due is never overdue, regardless of its date
	settled := &Due{Status: enum.DuesStatusPaid, DueDate: &past}
	require.False(t, settled.IsOverdue(now))

	// No due date means nothing to be overdue against
	dateless := &Due{Status: enum.DuesStatusPending}
	require.False(t, dateless.IsOverdue(now))
}

func TestDueApplyCollection(t *testing.T) {
	due := &Due{Amount: 60000, Status: enum.DuesStatusPending}

	due.ApplyCollection(20000)
	require.Equal(t, enum.DuesStatusPartial, due.Status)
	require.Equal(t, int64(40000), due.Remaining())

	due.ApplyCollection(40000)
	require.Equal(t, enum.DuesStatusPaid, due.Status)
	require.Equal(t, int64(0), due.Remaining())
}
