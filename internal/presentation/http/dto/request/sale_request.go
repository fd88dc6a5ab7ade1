package request

// DuesDetails identifies the customer who owes the DUES portion
type DuesDetails struct {
	Name        string `json:"name" binding:"required,min=2,max=255"`
	PhoneNumber string `json:"phoneNumber" binding:"required"`
	DueDate     string `json:"dueDate" binding:"required"` // YYYY-MM-DD
}

// PaymentMethod is one slice of the sale price
type PaymentMethod struct {
	Type        string       `json:"type" binding:"required"`
	Amount      float64      `json:"amount" binding:"required,gt=0"`
	DuesDetails *DuesDetails `json:"duesDetails"`
}

// RecordSaleRequest represents a sale submission
type RecordSaleRequest struct {
	ProductID      string          `json:"productId" binding:"required,uuid"`
	SalePrice      float64         `json:"salePrice" binding:"required,gt=0"`
	PaymentMethods []PaymentMethod `json:"paymentMethods" binding:"required,min=1,dive"`
}

// RecordExpenseRequest represents an expense submission
type RecordExpenseRequest struct {
	Amount      float64 `json:"amount" binding:"required,gt=0"`
	Description string  `json:"description" binding:"required,min=2"`
}

// ActivityQuery represents the activity feed query parameters
type ActivityQuery struct {
	Type   string `form:"type"`
	Filter string `form:"filter"`
	Sort   string `form:"sort"`
	Limit  int    `form:"limit"`
}
