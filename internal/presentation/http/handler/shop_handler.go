package handler

import (
	"github.com/gin-gonic/gin"
	"github.com/nishantgoyal/fashionhub-api/internal/application/service"
	"github.com/nishantgoyal/fashionhub-api/internal/presentation/http/dto/response"
)

// ShopHandler serves the public, unauthenticated storefront
type ShopHandler struct {
	productService *service.ProductService
}

// NewShopHandler creates a new shop handler
func NewShopHandler(productService *service.ProductService) *ShopHandler {
	return &ShopHandler{productService: productService}
}

// Products returns the public catalog: online products only, with the
// built-in sample catalog as fallback when nothing is published yet.
func (h *ShopHandler) Products(c *gin.Context) {
	params, err := bindProductFilters(c)
	if err != nil {
		response.BadRequest(c, "Invalid query parameters")
		return
	}

	shop, err := h.productService.ShopProducts(c.Request.Context(), params)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Shop catalog retrieved successfully", shop)
}
