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

func seedProduct(t *testing.T, repo *fakeProductRepo) *entity.Product {
	t.Helper()
	product := &entity.Product{
		UserID:      uuid.New(),
		Name:        "Royal Silk Sherwani",
		Category:    enum.CategoryMen,
		SubCategory: "Sherwani",
		Images: []entity.ProductImage{
			{URL: "https://cdn.example.com/sherwani.jpg", PublicID: "products/sherwani"},
		},
	}
	product.SetPriceFromDecimal(1000)
	require.NoError(t, repo.Create(context.Background(), product))
	return product
}

func duesDetails(dueDate time.Time) *DuesDetailsInput {
	return &DuesDetailsInput{
		Name:        "Rohit",
		PhoneNumber: "9876543210",
		DueDate:     &dueDate,
	}
}

func TestRecordSale_CashAndDues(t *testing.T) {
	products := newFakeProductRepo()
	txns := newFakeTransactionRepo()
	svc := NewSaleService(txns, products)

	product := seedProduct(t, products)
	dueDate := time.Now().AddDate(0, 0, 7)

	txn, err := svc.RecordSale(context.Background(), &RecordSaleInput{
		StaffUserID: uuid.New(),
		ProductID:   product.ID,
		SalePrice:   1000,
		Allocations: []PaymentAllocationInput{
			{Type: enum.AllocationCash, Amount: 400},
			{Type: enum.AllocationDues, Amount: 600, DuesDetails: duesDetails(dueDate)},
		},
	})
	require.NoError(t, err)

	require.Equal(t, enum.PaymentStatusDue, txn.PaymentStatus)
	require.Equal(t, int64(100000), txn.Amount)
	require.Equal(t, int64(40000), txn.AmountPaid)
	require.Equal(t, int64(60000), txn.DueRemaining())

	// Product snapshot
	require.Equal(t, "Royal Silk Sherwani", txn.ProductName)
	require.Equal(t, enum.CategoryMen, txn.ProductCategory)
	require.Equal(t, "https://cdn.example.com/sherwani.jpg", txn.ProductImageURL)

	// Due record carries the customer and the credit amount
	require.NotNil(t, txn.Due)
	require.Equal(t, "Rohit", txn.Due.CustomerName)
	require.Equal(t, "9876543210", txn.Due.PhoneNumber)
	require.Equal(t, int64(60000), txn.Due.Amount)
	require.Equal(t, enum.DuesStatusPending, txn.Due.Status)
	require.Len(t, txns.dues, 1)
}

func TestRecordSale_FullyPaid(t *testing.T) {
	products := newFakeProductRepo()
	txns := newFakeTransactionRepo()
	svc := NewSaleService(txns, products)

	product := seedProduct(t, products)

	txn, err := svc.RecordSale(context.Background(), &RecordSaleInput{
		StaffUserID: uuid.New(),
		ProductID:   product.ID,
		SalePrice:   1000,
		Allocations: []PaymentAllocationInput{
			{Type: enum.AllocationCash, Amount: 700},
			{Type: enum.AllocationOnline, Amount: 300},
		},
	})
	require.NoError(t, err)

	require.Equal(t, enum.PaymentStatusPaid, txn.PaymentStatus)
	require.Equal(t, int64(100000), txn.AmountPaid)
	require.Equal(t, int64(0), txn.DueRemaining())
	require.Nil(t, txn.Due)
	require.Empty(t, txns.dues)
}

func TestRecordSale_AllocationSumMismatch(t *testing.T) {
	products := newFakeProductRepo()
	txns := newFakeTransactionRepo()
	svc := NewSaleService(txns, products)

	product := seedProduct(t, products)

	_, err := svc.RecordSale(context.Background(), &RecordSaleInput{
		StaffUserID: uuid.New(),
		ProductID:   product.ID,
		SalePrice:   1000,
		Allocations: []PaymentAllocationInput{
			{Type: enum.AllocationCash, Amount: 400},
			{Type: enum.AllocationOnline, Amount: 500},
		},
	})
	require.Error(t, err)
	require.Empty(t, txns.txns)
}

func TestRecordSale_ToleratesFloatRemainder(t *testing.T) {
	products := newFakeProductRepo()
	txns := newFakeTransactionRepo()
	svc := NewSaleService(txns, products)

	product := seedProduct(t, products)

	_, err := svc.RecordSale(context.Background(), &RecordSaleInput{
		StaffUserID: uuid.New(),
		ProductID:   product.ID,
		SalePrice:   1000,
		Allocations: []PaymentAllocationInput{
			{Type: enum.AllocationCash, Amount: 333.33},
			{Type: enum.AllocationOnline, Amount: 333.33},
			{Type: enum.AllocationOnline, Amount: 333.34},
		},
	})
	require.NoError(t, err)
}

func TestRecordSale_DuesValidation(t *testing.T) {
	products := newFakeProductRepo()
	txns := newFakeTransactionRepo()
	svc := NewSaleService(txns, products)

	product := seedProduct(t, products)
	dueDate := time.Now().AddDate(0, 0, 7)

	cases := []struct {
		name    string
		details *DuesDetailsInput
	}{
		{"missing details", nil},
		{"empty name", &DuesDetailsInput{PhoneNumber: "9876543210", DueDate: &dueDate}},
		{"short phone", &DuesDetailsInput{Name: "Rohit", PhoneNumber: "12345", DueDate: &dueDate}},
		{"phone with letters", &DuesDetailsInput{Name: "Rohit", PhoneNumber: "98765abcde", DueDate: &dueDate}},
		{"missing due date", &DuesDetailsInput{Name: "Rohit", PhoneNumber: "9876543210"}},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := svc.RecordSale(context.Background(), &RecordSaleInput{
				StaffUserID: uuid.New(),
				ProductID:   product.ID,
				SalePrice:   1000,
				Allocations: []PaymentAllocationInput{
					{Type: enum.AllocationCash, Amount: 400},
					{Type: enum.AllocationDues, Amount: 600, DuesDetails: tc.details},
				},
			})
			require.Error(t, err)
		})
	}
	require.Empty(t, txns.txns)
}

func TestRecordSale_RejectsSecondDuesAllocation(t *testing.T) {
	products := newFakeProductRepo()
	txns := newFakeTransactionRepo()
	svc := NewSaleService(txns, products)

	product := seedProduct(t, products)
	dueDate := time.Now().AddDate(0, 0, 7)

	_, err := svc.RecordSale(context.Background(), &RecordSaleInput{
		StaffUserID: uuid.New(),
		ProductID:   product.ID,
		SalePrice:   1000,
		Allocations: []PaymentAllocationInput{
			{Type: enum.AllocationDues, Amount: 400, DuesDetails: duesDetails(dueDate)},
			{Type: enum.AllocationDues, Amount: 600, DuesDetails: duesDetails(dueDate)},
		},
	})
	require.Error(t, err)
}

func TestRecordSale_UnknownProduct(t *testing.T) {
	products := newFakeProductRepo()
	txns := newFakeTransactionRepo()
	svc := NewSaleService(txns, products)

	_, err := svc.RecordSale(context.Background(), &RecordSaleInput{
		StaffUserID: uuid.New(),
		ProductID:   uuid.New(),
		SalePrice:   1000,
		Allocations: []PaymentAllocationInput{
			{Type: enum.AllocationCash, Amount: 1000},
		},
	})
	require.Error(t, err)
}

func TestRecordExpense(t *testing.T) {
	txns := newFakeTransactionRepo()
	svc := NewSaleService(txns, newFakeProductRepo())

	txn, err := svc.RecordExpense(context.Background(), &RecordExpenseInput{
		StaffUserID: uuid.New(),
		Amount:      250.50,
		Description: "Shop rent advance",
	})
	require.NoError(t, err)

	require.Equal(t, enum.TransactionTypeExpense, txn.Type)
	require.Equal(t, int64(25050), txn.Amount)
	require.Equal(t, enum.PaymentStatusPaid, txn.PaymentStatus)

	_, err = svc.RecordExpense(context.Background(), &RecordExpenseInput{
		StaffUserID: uuid.New(),
		Amount:      100,
	})
	require.Error(t, err, "description is required")
}
