package service

import (
	"context"
	"math"
	"regexp"
	"time"

	"github.com/google/uuid"
	"github.com/nishantgoyal/fashionhub-api/internal/domain/entity"
	"github.com/nishantgoyal/fashionhub-api/internal/domain/enum"
	"github.com/nishantgoyal/fashionhub-api/internal/domain/repository"
	"github.com/nishantgoyal/fashionhub-api/pkg/apperror"
)

// allocationTolerance is how far the allocation sum may drift from the
// sale price before the sale is rejected. Inputs arrive as decimals, so
// an exact comparison would reject legitimate floating point remainders.
const allocationTolerance = 0.01

var phonePattern = regexp.MustCompile(`^\d{10}$`)

// SaleService records sales and expenses
type SaleService struct {
	txnRepo     repository.TransactionRepository
	productRepo repository.ProductRepository
}

// NewSaleService creates a new sale service
func NewSaleService(txnRepo repository.TransactionRepository, productRepo repository.ProductRepository) *SaleService {
	return &SaleService{
		txnRepo:     txnRepo,
		productRepo: productRepo,
	}
}

// DuesDetailsInput identifies the customer who owes the DUES allocation
type DuesDetailsInput struct {
	Name        string
	PhoneNumber string
	DueDate     *time.Time
}

// PaymentAllocationInput is one slice of the sale price
type PaymentAllocationInput struct {
	Type        enum.AllocationType
	Amount      float64
	DuesDetails *DuesDetailsInput
}

// RecordSaleInput represents a sale submission
type RecordSaleInput struct {
	StaffUserID uuid.UUID
	ProductID   uuid.UUID
	SalePrice   float64
	Allocations []PaymentAllocationInput
}

// RecordSale validates the payment allocations, snapshots the product and
// persists the transaction (with its due record, when store credit was
// extended) atomically.
func (s *SaleService) RecordSale(ctx context.Context, input *RecordSaleInput) (*entity.Transaction, error) {
	if input.SalePrice <= 0 {
		return nil, apperror.NewUnprocessableError("Sale price must be greater than zero")
	}
	if len(input.Allocations) == 0 {
		return nil, apperror.NewUnprocessableError("At least one payment method is required")
	}

	var (
		sum      float64
		paid     int64
		duesAmt  int64
		dues     *PaymentAllocationInput
		duesSeen bool
	)

	for i := range input.Allocations {
		alloc := &input.Allocations[i]
		if !alloc.Type.IsValid() {
			return nil, apperror.NewBadRequestError("Unknown payment method: " + string(alloc.Type))
		}
		if alloc.Amount <= 0 {
			return nil, apperror.NewUnprocessableError("Payment amounts must be greater than zero")
		}
		sum += alloc.Amount

		if alloc.Type == enum.AllocationDues {
			if duesSeen {
				return nil, apperror.NewUnprocessableError("Only one dues allocation is allowed per sale")
			}
			duesSeen = true
			dues = alloc
			duesAmt += toPaise(alloc.Amount)
		} else {
			paid += toPaise(alloc.Amount)
		}
	}

	if math.Abs(sum-input.SalePrice) > allocationTolerance {
		return nil, apperror.NewUnprocessableError("Payment amounts must add up to the sale price")
	}

	if dues != nil {
		if err := validateDuesDetails(dues.DuesDetails); err != nil {
			return nil, err
		}
	}

	product, err := s.productRepo.GetByID(ctx, input.ProductID)
	if err != nil {
		return nil, err
	}
	if product == nil {
		return nil, apperror.NewNotFoundError("Product")
	}

	total := toPaise(input.SalePrice)
	status := enum.PaymentStatusPaid
	if duesAmt > 0 {
		status = enum.PaymentStatusDue
	}

	productID := product.ID
	txn := &entity.Transaction{
		Type:               enum.TransactionTypeSale,
		Amount:             total,
		AmountPaid:         paid,
		DueAmount:          duesAmt,
		PaymentStatus:      status,
		StaffUserID:        input.StaffUserID,
		ProductID:          &productID,
		ProductName:        product.Name,
		ProductCategory:    product.Category,
		ProductSubCategory: product.SubCategory,
		ProductImageURL:    product.PrimaryImageURL(),
	}

	var due *entity.Due
	if dues != nil {
		name := dues.DuesDetails.Name
		phone := dues.DuesDetails.PhoneNumber
		txn.CustomerName = &name
		txn.CustomerPhone = &phone
		txn.DueDate = dues.DuesDetails.DueDate

		due = &entity.Due{
			CustomerName: name,
			PhoneNumber:  phone,
			Amount:       duesAmt,
			Status:       enum.DuesStatusPending,
			DueDate:      dues.DuesDetails.DueDate,
		}
	}

	if err := s.txnRepo.CreateSale(ctx, txn, due); err != nil {
		return nil, err
	}
	txn.Due = due

	return txn, nil
}

// RecordExpenseInput represents an expense submission
type RecordExpenseInput struct {
	StaffUserID uuid.UUID
	Amount      float64
	Description string
}

// RecordExpense records a cash outflow
func (s *SaleService) RecordExpense(ctx context.Context, input *RecordExpenseInput) (*entity.Transaction, error) {
	if input.Amount <= 0 {
		return nil, apperror.NewUnprocessableError("Expense amount must be greater than zero")
	}
	if input.Description == "" {
		return nil, apperror.NewUnprocessableError("Expense description is required")
	}

	amount := toPaise(input.Amount)
	description := input.Description
	txn := &entity.Transaction{
		Type:          enum.TransactionTypeExpense,
		Amount:        amount,
		AmountPaid:    amount,
		PaymentStatus: enum.PaymentStatusPaid,
		StaffUserID:   input.StaffUserID,
		Description:   &description,
	}

	if err := s.txnRepo.Create(ctx, txn); err != nil {
		return nil, err
	}

	return txn, nil
}

// GetTransaction returns a transaction by ID
func (s *SaleService) GetTransaction(ctx context.Context, id uuid.UUID) (*entity.Transaction, error) {
	txn, err := s.txnRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if txn == nil {
		return nil, apperror.NewNotFoundError("Transaction")
	}
	return txn, nil
}

func validateDuesDetails(details *DuesDetailsInput) error {
	if details == nil {
		return apperror.NewUnprocessableError("Dues payments require customer details")
	}
	if details.Name == "" {
		return apperror.NewUnprocessableError("Customer name is required for dues")
	}
	if !phonePattern.MatchString(details.PhoneNumber) {
		return apperror.NewUnprocessableError("Customer phone must be a 10-digit number")
	}
	if details.DueDate == nil {
		return apperror.NewUnprocessableError("Due date is required for dues")
	}
	return nil
}

// toPaise converts a decimal rupee amount to paise, rounding to the
// nearest paisa to absorb float representation error.
func toPaise(amount float64) int64 {
	return int64(math.Round(amount * 100))
}
