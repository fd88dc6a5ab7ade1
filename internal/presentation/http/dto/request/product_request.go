package request

// ProductImageRef is one uploaded image reference returned by the
// client-side Cloudinary upload.
type ProductImageRef struct {
	URL      string `json:"url" binding:"required,url"`
	PublicID string `json:"public_id" binding:"required"`
}

// CreateProductRequest represents a product creation request
type CreateProductRequest struct {
	Name         string            `json:"name" binding:"required,min=2,max=255"`
	Price        float64           `json:"price" binding:"required,gt=0"`
	Category     string            `json:"category" binding:"required"`
	SubCategory  string            `json:"subCategory" binding:"required"`
	Description  *string           `json:"description"`
	IsOnline     bool              `json:"isOnline"`
	IsNewArrival bool              `json:"isNewArrival"`
	IsBestSeller bool              `json:"isBestSeller"`
	Images       []ProductImageRef `json:"images" binding:"omitempty,dive"`
}

// UpdateProductRequest represents a partial product update request
type UpdateProductRequest struct {
	Name         *string  `json:"name" binding:"omitempty,min=2,max=255"`
	Price        *float64 `json:"price" binding:"omitempty,gt=0"`
	Category     *string  `json:"category"`
	SubCategory  *string  `json:"subCategory"`
	Description  *string  `json:"description"`
	IsOnline     *bool    `json:"isOnline"`
	IsNewArrival *bool    `json:"isNewArrival"`
	IsBestSeller *bool    `json:"isBestSeller"`
}

// ListProductsQuery represents product list query parameters
type ListProductsQuery struct {
	Page     int      `form:"page"`
	Limit    int      `form:"limit"`
	Search   string   `form:"search"`
	Category string   `form:"category"`
	MinPrice *float64 `form:"minPrice"`
	MaxPrice *float64 `form:"maxPrice"`
	Sort     string   `form:"sort"`
}

// SignUploadRequest represents an upload signature request. The content
// type of the pending upload is declared up front so unsupported files
// are rejected before a signature is issued.
type SignUploadRequest struct {
	ContentType string `form:"content_type"`
}
