package service

import (
	"context"
	"log"

	"github.com/google/uuid"
	"github.com/nishantgoyal/fashionhub-api/internal/domain/entity"
	"github.com/nishantgoyal/fashionhub-api/internal/domain/enum"
	"github.com/nishantgoyal/fashionhub-api/internal/domain/repository"
	"github.com/nishantgoyal/fashionhub-api/pkg/apperror"
	"github.com/nishantgoyal/fashionhub-api/pkg/catalog"
	"github.com/nishantgoyal/fashionhub-api/pkg/pagination"
)

// ImageDestroyer removes a hosted image by its public ID
type ImageDestroyer interface {
	Destroy(ctx context.Context, publicID string) error
}

// ProductService handles product catalog operations
type ProductService struct {
	productRepo repository.ProductRepository
	images      ImageDestroyer
}

// NewProductService creates a new product service
func NewProductService(productRepo repository.ProductRepository, images ImageDestroyer) *ProductService {
	return &ProductService{
		productRepo: productRepo,
		images:      images,
	}
}

// ProductImageInput is one uploaded image reference
type ProductImageInput struct {
	URL      string
	PublicID string
}

// CreateProductInput represents the product creation input
type CreateProductInput struct {
	UserID       uuid.UUID
	Name         string
	Price        float64
	Category     enum.Category
	SubCategory  string
	Description  *string
	IsOnline     bool
	IsNewArrival bool
	IsBestSeller bool
	Images       []ProductImageInput
}

// CreateProduct validates and persists a new catalog product
func (s *ProductService) CreateProduct(ctx context.Context, input *CreateProductInput) (*entity.Product, error) {
	if err := validateProductInput(input.Price, input.Category, input.SubCategory, input.IsNewArrival, input.IsBestSeller); err != nil {
		return nil, err
	}

	product := &entity.Product{
		UserID:       input.UserID,
		Name:         input.Name,
		Category:     input.Category,
		SubCategory:  input.SubCategory,
		Description:  input.Description,
		IsOnline:     input.IsOnline,
		IsNewArrival: input.IsNewArrival,
		IsBestSeller: input.IsBestSeller,
	}
	product.SetPriceFromDecimal(input.Price)

	for _, img := range input.Images {
		product.Images = append(product.Images, entity.ProductImage{
			URL:      img.URL,
			PublicID: img.PublicID,
		})
	}

	if err := s.productRepo.Create(ctx, product); err != nil {
		return nil, err
	}

	return product, nil
}

// UpdateProductInput represents the product update input; nil fields are
// left unchanged.
type UpdateProductInput struct {
	ID           uuid.UUID
	Name         *string
	Price        *float64
	Category     *enum.Category
	SubCategory  *string
	Description  *string
	IsOnline     *bool
	IsNewArrival *bool
	IsBestSeller *bool
}

// UpdateProduct applies a partial update to a product
func (s *ProductService) UpdateProduct(ctx context.Context, input *UpdateProductInput) (*entity.Product, error) {
	product, err := s.productRepo.GetByID(ctx, input.ID)
	if err != nil {
		return nil, err
	}
	if product == nil {
		return nil, apperror.NewNotFoundError("Product")
	}

	if input.Name != nil {
		product.Name = *input.Name
	}
	if input.Category != nil {
		product.Category = *input.Category
	}
	if input.SubCategory != nil {
		product.SubCategory = *input.SubCategory
	}
	if input.Description != nil {
		product.Description = input.Description
	}
	if input.IsOnline != nil {
		product.IsOnline = *input.IsOnline
	}
	if input.IsNewArrival != nil {
		product.IsNewArrival = *input.IsNewArrival
	}
	if input.IsBestSeller != nil {
		product.IsBestSeller = *input.IsBestSeller
	}

	price := product.GetPriceDecimal()
	if input.Price != nil {
		price = *input.Price
	}

	if err := validateProductInput(price, product.Category, product.SubCategory, product.IsNewArrival, product.IsBestSeller); err != nil {
		return nil, err
	}
	product.SetPriceFromDecimal(price)

	if err := s.productRepo.Update(ctx, product); err != nil {
		return nil, err
	}

	return product, nil
}

// GetProduct returns a product by ID
func (s *ProductService) GetProduct(ctx context.Context, id uuid.UUID) (*entity.Product, error) {
	product, err := s.productRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if product == nil {
		return nil, apperror.NewNotFoundError("Product")
	}
	return product, nil
}

// DeleteProduct removes a product and its hosted images. Image cleanup
// is best effort: a failed remote delete never blocks the catalog delete.
func (s *ProductService) DeleteProduct(ctx context.Context, id uuid.UUID) error {
	product, err := s.productRepo.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if product == nil {
		return apperror.NewNotFoundError("Product")
	}

	if err := s.productRepo.Delete(ctx, id); err != nil {
		return err
	}

	if s.images != nil {
		for _, img := range product.Images {
			if img.PublicID == "" {
				continue
			}
			if err := s.images.Destroy(ctx, img.PublicID); err != nil {
				log.Printf("Warning: failed to delete image %s: %v", img.PublicID, err)
			}
		}
	}

	return nil
}

// ListProducts returns the filtered, paginated catalog
func (s *ProductService) ListProducts(ctx context.Context, params *repository.ProductFilterParams) (*pagination.PaginatedResult[entity.Product], error) {
	if params.Pagination == nil {
		params.Pagination = pagination.DefaultPagination()
	}

	products, total, err := s.productRepo.List(ctx, params)
	if err != nil {
		return nil, err
	}

	pag := pagination.NewPagination(params.Pagination.Page, params.Pagination.PerPage, total)
	return pagination.NewPaginatedResult(products, pag), nil
}

// ShopCatalog is the public storefront payload
type ShopCatalog struct {
	Products []entity.Product        `json:"products"`
	Samples  []catalog.SampleProduct `json:"samples,omitempty"`
	Fallback bool                    `json:"fallback"`
}

// ShopProducts returns the public catalog: online products only. When
// the store has not published anything yet it falls back to the built-in
// sample catalog, so the storefront is never empty.
func (s *ProductService) ShopProducts(ctx context.Context, params *repository.ProductFilterParams) (*ShopCatalog, error) {
	if params.Pagination == nil {
		params.Pagination = pagination.DefaultPagination()
	}
	params.OnlineOnly = true

	products, _, err := s.productRepo.List(ctx, params)
	if err != nil {
		return nil, err
	}

	if len(products) == 0 {
		// Only fall back when the whole online catalog is empty, not
		// when filters simply matched nothing.
		unfiltered := &repository.ProductFilterParams{
			Pagination: pagination.DefaultPagination(),
			OnlineOnly: true,
		}
		_, total, err := s.productRepo.List(ctx, unfiltered)
		if err != nil {
			return nil, err
		}
		if total == 0 {
			return &ShopCatalog{Samples: catalog.SampleProducts, Fallback: true}, nil
		}
	}

	return &ShopCatalog{Products: products}, nil
}

// SubCategories returns the fixed sub-category list for a category
func (s *ProductService) SubCategories(category enum.Category) ([]string, error) {
	if !category.IsValid() {
		return nil, apperror.NewBadRequestError("Invalid category")
	}
	return catalog.SubCategories[category], nil
}

func validateProductInput(price float64, category enum.Category, subCategory string, newArrival, bestSeller bool) error {
	if price <= 0 {
		return apperror.NewUnprocessableError("Price must be greater than zero")
	}
	if !category.IsValid() {
		return apperror.NewBadRequestError("Invalid category")
	}
	if !catalog.IsValidSubCategory(category, subCategory) {
		return apperror.NewUnprocessableError("Unknown sub-category for category " + string(category))
	}
	if newArrival && bestSeller {
		return apperror.NewUnprocessableError("A product cannot be both a new arrival and a best seller")
	}
	return nil
}
