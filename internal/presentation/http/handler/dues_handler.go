package handler

import (
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/nishantgoyal/fashionhub-api/internal/application/service"
	"github.com/nishantgoyal/fashionhub-api/internal/domain/enum"
	"github.com/nishantgoyal/fashionhub-api/internal/domain/repository"
	"github.com/nishantgoyal/fashionhub-api/internal/presentation/http/dto/request"
	"github.com/nishantgoyal/fashionhub-api/internal/presentation/http/dto/response"
	"github.com/nishantgoyal/fashionhub-api/pkg/pagination"
)

// DuesHandler handles dues ledger HTTP requests
type DuesHandler struct {
	duesService *service.DuesService
}

// NewDuesHandler creates a new dues handler
func NewDuesHandler(duesService *service.DuesService) *DuesHandler {
	return &DuesHandler{duesService: duesService}
}

// List returns the filtered, paginated ledger
func (h *DuesHandler) List(c *gin.Context) {
	params, err := bindDueFilters(c)
	if err != nil {
		response.BadRequest(c, "Invalid query parameters")
		return
	}

	result, err := h.duesService.ListDues(c.Request.Context(), params)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.SuccessWithPagination(c, 200, "Dues retrieved successfully", result)
}

// Overdue returns dues past their due date
func (h *DuesHandler) Overdue(c *gin.Context) {
	params, err := bindDueFilters(c)
	if err != nil {
		response.BadRequest(c, "Invalid query parameters")
		return
	}

	result, err := h.duesService.ListOverdue(c.Request.Context(), params)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.SuccessWithPagination(c, 200, "Overdue dues retrieved successfully", result)
}

// Get returns a single due with its collection history
func (h *DuesHandler) Get(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.BadRequest(c, "Invalid due ID")
		return
	}

	due, err := h.duesService.GetDue(c.Request.Context(), id)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Due retrieved successfully", due)
}

// Collect records a payment against a due
// @Summary Collect due
// @Description Record a full or partial collection against a due
// @Tags dues
// @Accept json
// @Produce json
// @Param id path string true "Due ID"
// @Param request body request.CollectDueRequest true "Collection data"
// @Success 200 {object} response.APIResponse
// @Failure 422 {object} response.APIResponse
// @Router /dues/{id}/collect [post]
func (h *DuesHandler) Collect(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.BadRequest(c, "Invalid due ID")
		return
	}

	var req request.CollectDueRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request body")
		return
	}

	userID := GetUserID(c)
	if userID == nil {
		response.Unauthorized(c, "Unauthorized")
		return
	}

	due, err := h.duesService.Collect(c.Request.Context(), &service.CollectInput{
		DueID:       id,
		Amount:      req.Amount,
		PaymentMode: enum.PaymentMode(req.PaymentMode),
		CollectedBy: *userID,
	})
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Collection recorded successfully", due)
}

// UpdateStatus overrides a due's status
func (h *DuesHandler) UpdateStatus(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.BadRequest(c, "Invalid due ID")
		return
	}

	var req request.UpdateDueStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request body")
		return
	}

	due, err := h.duesService.UpdateStatus(c.Request.Context(), id, enum.DuesStatus(req.Status))
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Due status updated successfully", due)
}

// Statistics returns the ledger summary
func (h *DuesHandler) Statistics(c *gin.Context) {
	stats, err := h.duesService.Statistics(c.Request.Context())
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Dues statistics retrieved successfully", stats)
}

func bindDueFilters(c *gin.Context) (*repository.DueFilterParams, error) {
	var query request.ListDuesQuery
	if err := c.ShouldBindQuery(&query); err != nil {
		return nil, err
	}

	params := &repository.DueFilterParams{
		Pagination: &pagination.PaginationParams{Page: query.Page, PerPage: query.Limit},
		Search:     query.Search,
	}
	if query.Status != "" {
		status := enum.DuesStatus(query.Status)
		params.Status = &status
	}
	return params, nil
}
