package enum

// TransactionType distinguishes money coming in from money going out
type TransactionType string

const (
	TransactionTypeSale    TransactionType = "SALE"
	TransactionTypeExpense TransactionType = "EXPENSE"
)

// IsValid reports whether the transaction type is a known value
func (t TransactionType) IsValid() bool {
	return t == TransactionTypeSale || t == TransactionTypeExpense
}

// PaymentStatus is the settlement state of a transaction
type PaymentStatus string

const (
	PaymentStatusPaid PaymentStatus = "PAID"
	PaymentStatusDue  PaymentStatus = "DUE"
)

// PaymentMode is the settlement channel for an amount paid now
type PaymentMode string

const (
	PaymentModeCash   PaymentMode = "CASH"
	PaymentModeOnline PaymentMode = "ONLINE"
)

// IsValid reports whether the payment mode is a known value
func (m PaymentMode) IsValid() bool {
	return m == PaymentModeCash || m == PaymentModeOnline
}

// AllocationType tags one entry of a sale's payment breakdown.
// CASH and ONLINE are settled immediately; DUES is store credit
// extended to a named customer.
type AllocationType string

const (
	AllocationCash   AllocationType = "CASH"
	AllocationOnline AllocationType = "ONLINE"
	AllocationDues   AllocationType = "DUES"
)

// IsValid reports whether the allocation type is a known value
func (a AllocationType) IsValid() bool {
	switch a {
	case AllocationCash, AllocationOnline, AllocationDues:
		return true
	}
	return false
}

// DuesStatus is the collection state of a dues record
type DuesStatus string

const (
	DuesStatusPending DuesStatus = "PENDING"
	DuesStatusPartial DuesStatus = "PARTIAL"
	DuesStatusPaid    DuesStatus = "PAID"
)

// IsValid reports whether the dues status is a known value
func (s DuesStatus) IsValid() bool {
	switch s {
	case DuesStatusPending, DuesStatusPartial, DuesStatusPaid:
		return true
	}
	return false
}
