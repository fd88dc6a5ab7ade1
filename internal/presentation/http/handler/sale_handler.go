package handler

import (
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/nishantgoyal/fashionhub-api/internal/application/service"
	"github.com/nishantgoyal/fashionhub-api/internal/domain/enum"
	"github.com/nishantgoyal/fashionhub-api/internal/presentation/http/dto/request"
	"github.com/nishantgoyal/fashionhub-api/internal/presentation/http/dto/response"
)

// SaleHandler handles sale and expense HTTP requests
type SaleHandler struct {
	saleService *service.SaleService
}

// NewSaleHandler creates a new sale handler
func NewSaleHandler(saleService *service.SaleService) *SaleHandler {
	return &SaleHandler{saleService: saleService}
}

// RecordSale handles a sale submission
// @Summary Record sale
// @Description Record a sale with its payment allocations
// @Tags transactions
// @Accept json
// @Produce json
// @Param request body request.RecordSaleRequest true "Sale data"
// @Success 201 {object} response.APIResponse
// @Failure 422 {object} response.APIResponse
// @Router /transactions/sale [post]
func (h *SaleHandler) RecordSale(c *gin.Context) {
	var req request.RecordSaleRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request body")
		return
	}

	userID := GetUserID(c)
	if userID == nil {
		response.Unauthorized(c, "Unauthorized")
		return
	}

	productID, err := uuid.Parse(req.ProductID)
	if err != nil {
		response.BadRequest(c, "Invalid product ID")
		return
	}

	input := &service.RecordSaleInput{
		StaffUserID: *userID,
		ProductID:   productID,
		SalePrice:   req.SalePrice,
	}
	for _, pm := range req.PaymentMethods {
		alloc := service.PaymentAllocationInput{
			Type:   enum.AllocationType(pm.Type),
			Amount: pm.Amount,
		}
		if pm.DuesDetails != nil {
			details := &service.DuesDetailsInput{
				Name:        pm.DuesDetails.Name,
				PhoneNumber: pm.DuesDetails.PhoneNumber,
			}
			if pm.DuesDetails.DueDate != "" {
				dueDate, err := time.Parse("2006-01-02", pm.DuesDetails.DueDate)
				if err != nil {
					response.BadRequest(c, "Invalid due date, expected YYYY-MM-DD")
					return
				}
				details.DueDate = &dueDate
			}
			alloc.DuesDetails = details
		}
		input.Allocations = append(input.Allocations, alloc)
	}

	txn, err := h.saleService.RecordSale(c.Request.Context(), input)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Created(c, "Sale recorded successfully", txn)
}

// RecordExpense handles an expense submission
func (h *SaleHandler) RecordExpense(c *gin.Context) {
	var req request.RecordExpenseRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request body")
		return
	}

	userID := GetUserID(c)
	if userID == nil {
		response.Unauthorized(c, "Unauthorized")
		return
	}

	txn, err := h.saleService.RecordExpense(c.Request.Context(), &service.RecordExpenseInput{
		StaffUserID: *userID,
		Amount:      req.Amount,
		Description: req.Description,
	})
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Created(c, "Expense recorded successfully", txn)
}

// Get returns a single transaction
func (h *SaleHandler) Get(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.BadRequest(c, "Invalid transaction ID")
		return
	}

	txn, err := h.saleService.GetTransaction(c.Request.Context(), id)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Transaction retrieved successfully", txn)
}

// Activity returns the recent sales feed with filter and sort
func (h *SaleHandler) Activity(c *gin.Context) {
	var query request.ActivityQuery
	if err := c.ShouldBindQuery(&query); err != nil {
		response.BadRequest(c, "Invalid query parameters")
		return
	}

	txns, err := h.saleService.ListActivity(c.Request.Context(), &service.ListActivityInput{
		Type:   query.Type,
		Filter: query.Filter,
		Sort:   query.Sort,
		Limit:  query.Limit,
	})
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Activity retrieved successfully", gin.H{"transactions": txns})
}
