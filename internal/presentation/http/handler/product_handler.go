package handler

import (
	"math"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/nishantgoyal/fashionhub-api/internal/application/service"
	"github.com/nishantgoyal/fashionhub-api/internal/domain/enum"
	"github.com/nishantgoyal/fashionhub-api/internal/domain/repository"
	"github.com/nishantgoyal/fashionhub-api/internal/presentation/http/dto/request"
	"github.com/nishantgoyal/fashionhub-api/internal/presentation/http/dto/response"
	"github.com/nishantgoyal/fashionhub-api/pkg/catalog"
	"github.com/nishantgoyal/fashionhub-api/pkg/pagination"
)

// ProductHandler handles product catalog HTTP requests
type ProductHandler struct {
	productService *service.ProductService
}

// NewProductHandler creates a new product handler
func NewProductHandler(productService *service.ProductService) *ProductHandler {
	return &ProductHandler{productService: productService}
}

// Create handles product creation
// @Summary Create product
// @Tags products
// @Accept json
// @Produce json
// @Param request body request.CreateProductRequest true "Product data"
// @Success 201 {object} response.APIResponse
// @Router /products [post]
func (h *ProductHandler) Create(c *gin.Context) {
	var req request.CreateProductRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request body")
		return
	}

	userID := GetUserID(c)
	if userID == nil {
		response.Unauthorized(c, "Unauthorized")
		return
	}

	input := &service.CreateProductInput{
		UserID:       *userID,
		Name:         req.Name,
		Price:        req.Price,
		Category:     enum.Category(req.Category),
		SubCategory:  req.SubCategory,
		Description:  req.Description,
		IsOnline:     req.IsOnline,
		IsNewArrival: req.IsNewArrival,
		IsBestSeller: req.IsBestSeller,
	}
	for _, img := range req.Images {
		input.Images = append(input.Images, service.ProductImageInput{
			URL:      img.URL,
			PublicID: img.PublicID,
		})
	}

	product, err := h.productService.CreateProduct(c.Request.Context(), input)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Created(c, "Product created successfully", product)
}

// Get returns a single product
func (h *ProductHandler) Get(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.BadRequest(c, "Invalid product ID")
		return
	}

	product, err := h.productService.GetProduct(c.Request.Context(), id)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Product retrieved successfully", product)
}

// Update handles partial product updates
func (h *ProductHandler) Update(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.BadRequest(c, "Invalid product ID")
		return
	}

	var req request.UpdateProductRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request body")
		return
	}

	input := &service.UpdateProductInput{
		ID:           id,
		Name:         req.Name,
		Price:        req.Price,
		SubCategory:  req.SubCategory,
		Description:  req.Description,
		IsOnline:     req.IsOnline,
		IsNewArrival: req.IsNewArrival,
		IsBestSeller: req.IsBestSeller,
	}
	if req.Category != nil {
		category := enum.Category(*req.Category)
		input.Category = &category
	}

	product, err := h.productService.UpdateProduct(c.Request.Context(), input)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Product updated successfully", product)
}

// Delete removes a product and its hosted images
func (h *ProductHandler) Delete(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.BadRequest(c, "Invalid product ID")
		return
	}

	if err := h.productService.DeleteProduct(c.Request.Context(), id); err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Product deleted successfully", nil)
}

// List returns the filtered, paginated catalog
func (h *ProductHandler) List(c *gin.Context) {
	params, err := bindProductFilters(c)
	if err != nil {
		response.BadRequest(c, "Invalid query parameters")
		return
	}

	result, err := h.productService.ListProducts(c.Request.Context(), params)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.SuccessWithPagination(c, 200, "Products retrieved successfully", result)
}

// SubCategories returns the fixed sub-category list for a category
func (h *ProductHandler) SubCategories(c *gin.Context) {
	category := enum.Category(c.Param("category"))

	subs, err := h.productService.SubCategories(category)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Sub-categories retrieved successfully", gin.H{
		"category":       category,
		"sub_categories": subs,
	})
}

// Categories returns the top-level category list with sub-categories
func (h *ProductHandler) Categories(c *gin.Context) {
	response.OK(c, "Categories retrieved successfully", gin.H{
		"categories":     enum.Categories(),
		"sub_categories": catalog.SubCategories,
	})
}

func bindProductFilters(c *gin.Context) (*repository.ProductFilterParams, error) {
	var query request.ListProductsQuery
	if err := c.ShouldBindQuery(&query); err != nil {
		return nil, err
	}

	params := &repository.ProductFilterParams{
		Pagination: &pagination.PaginationParams{Page: query.Page, PerPage: query.Limit},
		Search:     query.Search,
		Sort:       query.Sort,
	}
	if query.Category != "" {
		category := enum.Category(query.Category)
		params.Category = &category
	}
	if query.MinPrice != nil {
		min := int64(math.Round(*query.MinPrice * 100))
		params.MinPrice = &min
	}
	if query.MaxPrice != nil {
		max := int64(math.Round(*query.MaxPrice * 100))
		params.MaxPrice = &max
	}
	return params, nil
}
