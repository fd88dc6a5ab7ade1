package service

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"

	"github.com/nishantgoyal/fashionhub-api/internal/domain/enum"
	"github.com/nishantgoyal/fashionhub-api/internal/domain/repository"
)

func TestCreateProduct(t *testing.T) {
	repo := newFakeProductRepo()
	svc := NewProductService(repo, nil)

	product, err := svc.CreateProduct(context.Background(), &CreateProductInput{
		UserID:      uuid.New(),
		Name:        "Banarasi Silk Saree",
		Price:       8999.50,
		Category:    enum.CategoryWomen,
		SubCategory: "Saree",
		IsOnline:    true,
		Images: []ProductImageInput{
			{URL: "https://cdn.example.com/saree.jpg", PublicID: "products/saree"},
		},
	})
	require.NoError(t, err)

	require.Equal(t, int64(899950), product.Price)
	require.Len(t, product.Images, 1)
	require.Equal(t, "https://cdn.example.com/saree.jpg", product.PrimaryImageURL())
}

func TestCreateProduct_Validation(t *testing.T) {
	repo := newFakeProductRepo()
	svc := NewProductService(repo, nil)

	base := CreateProductInput{
		UserID:      uuid.New(),
		Name:        "Test",
		Price:       100,
		Category:    enum.CategoryMen,
		SubCategory: "Shirt",
	}

	zeroPrice := base
	zeroPrice.Price = 0
	_, err := svc.CreateProduct(context.Background(), &zeroPrice)
	require.Error(t, err)

	badCategory := base
	badCategory.Category = enum.Category("Unisex")
	_, err = svc.CreateProduct(context.Background(), &badCategory)
	require.Error(t, err)

	// Saree is a Women sub-category, not a Men one
	badSub := base
	badSub.SubCategory = "Saree"
	_, err = svc.CreateProduct(context.Background(), &badSub)
	require.Error(t, err)

	bothBadges := base
	bothBadges.IsNewArrival = true
	bothBadges.IsBestSeller = true
	_, err = svc.CreateProduct(context.Background(), &bothBadges)
	require.Error(t, err)

	require.Empty(t, repo.products)
}

func TestUpdateProduct_RevalidatesSubCategory(t *testing.T) {
	repo := newFakeProductRepo()
	svc := NewProductService(repo, nil)

	product, err := svc.CreateProduct(context.Background(), &CreateProductInput{
		UserID:      uuid.New(),
		Name:        "Cotton Shirt",
		Price:       1299,
		Category:    enum.CategoryMen,
		SubCategory: "Shirt",
	})
	require.NoError(t, err)

	// Moving to Women without a matching sub-category must fail
	women := enum.CategoryWomen
	_, err = svc.UpdateProduct(context.Background(), &UpdateProductInput{
		ID:       product.ID,
		Category: &women,
	})
	require.Error(t, err)

	saree := "Saree"
	updated, err := svc.UpdateProduct(context.Background(), &UpdateProductInput{
		ID:          product.ID,
		Category:    &women,
		SubCategory: &saree,
	})
	require.NoError(t, err)
	require.Equal(t, enum.CategoryWomen, updated.Category)
}

func TestDeleteProduct_DestroysHostedImages(t *testing.T) {
	repo := newFakeProductRepo()
	destroyer := &fakeImageDestroyer{}
	svc := NewProductService(repo, destroyer)

	product, err := svc.CreateProduct(context.Background(), &CreateProductInput{
		UserID:      uuid.New(),
		Name:        "Kids Party Suit",
		Price:       2499,
		Category:    enum.CategoryKids,
		SubCategory: "Party Wear",
		Images: []ProductImageInput{
			{URL: "https://cdn.example.com/suit1.jpg", PublicID: "products/suit1"},
			{URL: "https://cdn.example.com/suit2.jpg", PublicID: "products/suit2"},
		},
	})
	require.NoError(t, err)

	require.NoError(t, svc.DeleteProduct(context.Background(), product.ID))
	require.Empty(t, repo.products)
	require.Equal(t, []string{"products/suit1", "products/suit2"}, destroyer.destroyed)
}

func TestShopProducts_FallbackWhenCatalogEmpty(t *testing.T) {
	repo := newFakeProductRepo()
	svc := NewProductService(repo, nil)

	shop, err := svc.ShopProducts(context.Background(), &repository.ProductFilterParams{})
	require.NoError(t, err)

	require.True(t, shop.Fallback)
	require.NotEmpty(t, shop.Samples)
	require.Empty(t, shop.Products)
}

func TestShopProducts_OnlineOnly(t *testing.T) {
	repo := newFakeProductRepo()
	svc := NewProductService(repo, nil)

	_, err := svc.CreateProduct(context.Background(), &CreateProductInput{
		UserID:      uuid.New(),
		Name:        "Online Kurta",
		Price:       999,
		Category:    enum.CategoryMen,
		SubCategory: "Kurta",
		IsOnline:    true,
	})
	require.NoError(t, err)

	_, err = svc.CreateProduct(context.Background(), &CreateProductInput{
		UserID:      uuid.New(),
		Name:        "Store-only Pant",
		Price:       799,
		Category:    enum.CategoryMen,
		SubCategory: "Pant",
	})
	require.NoError(t, err)

	shop, err := svc.ShopProducts(context.Background(), &repository.ProductFilterParams{})
	require.NoError(t, err)

	require.False(t, shop.Fallback)
	require.Len(t, shop.Products, 1)
	require.Equal(t, "Online Kurta", shop.Products[0].Name)
}

func TestShopProducts_NoFallbackWhenFilterMatchesNothing(t *testing.T) {
	repo := newFakeProductRepo()
	svc := NewProductService(repo, nil)

	_, err := svc.CreateProduct(context.Background(), &CreateProductInput{
		UserID:      uuid.New(),
		Name:        "Online Kurta",
		Price:       999,
		Category:    enum.CategoryMen,
		SubCategory: "Kurta",
		IsOnline:    true,
	})
	require.NoError(t, err)

	kids := enum.CategoryKids
	shop, err := svc.ShopProducts(context.Background(), &repository.ProductFilterParams{Category: &kids})
	require.NoError(t, err)

	// Filters that match nothing return an empty page, not the samples
	require.False(t, shop.Fallback)
	require.Empty(t, shop.Products)
	require.Empty(t, shop.Samples)
}

func TestSubCategories(t *testing.T) {
	svc := NewProductService(newFakeProductRepo(), nil)

	subs, err := svc.SubCategories(enum.CategoryWomen)
	require.NoError(t, err)
	require.Contains(t, subs, "Lehenga")

	_, err = svc.SubCategories(enum.Category("Pets"))
	require.Error(t, err)
}
