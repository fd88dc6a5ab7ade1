package request

// CollectDueRequest represents a dues collection submission
type CollectDueRequest struct {
	Amount      float64 `json:"amount" binding:"required,gt=0"`
	PaymentMode string  `json:"paymentMode" binding:"required"`
}

// UpdateDueStatusRequest represents a manual status override
type UpdateDueStatusRequest struct {
	Status string `json:"status" binding:"required"`
}

// ListDuesQuery represents dues list query parameters
type ListDuesQuery struct {
	Page   int    `form:"page"`
	Limit  int    `form:"limit"`
	Status string `form:"status"`
	Search string `form:"search"`
}
