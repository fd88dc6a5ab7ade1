// Package catalog holds the store's fixed merchandising data: the
// per-category sub-category lists staff pick from, and a small sample
// catalog the public shop falls back to when no online products exist.
package catalog

import "github.com/nishantgoyal/fashionhub-api/internal/domain/enum"

// SubCategories maps each top-level category to its fixed list of
// sub-categories. Product creation validates against this list.
var SubCategories = map[enum.Category][]string{
	enum.CategoryMen:   {"Shirt", "Pant", "Kurta", "Sherwani", "Jacket", "Suit"},
	enum.CategoryWomen: {"Saree", "Suit", "Kurti", "Lehenga", "Dress", "Palazzo"},
	enum.CategoryKids:  {"Kurta", "Dress", "Ethnic", "Casual", "Party Wear"},
}

// IsValidSubCategory reports whether sub belongs to the category's list
func IsValidSubCategory(category enum.Category, sub string) bool {
	for _, s := range SubCategories[category] {
		if s == sub {
			return true
		}
	}
	return false
}

// SampleProduct is one entry of the built-in fallback catalog
type SampleProduct struct {
	Name        string        `json:"name"`
	Category    enum.Category `json:"category"`
	SubCategory string        `json:"sub_category"`
	Price       float64       `json:"price"`
	ImageURL    string        `json:"image_url"`
	Badge       string        `json:"badge,omitempty"` // "New Arrival" | "Best Seller"
}

// SampleProducts is shown on the public shop when the store has not yet
// published any online products, so the page is never empty.
var SampleProducts = []SampleProduct{
	{Name: "Royal Silk Sherwani", Category: enum.CategoryMen, SubCategory: "Sherwani", Price: 15999, ImageURL: "https://images.unsplash.com/photo-1594938298603-c8148c4dae35?w=400", Badge: "Best Seller"},
	{Name: "Banarasi Silk Saree", Category: enum.CategoryWomen, SubCategory: "Saree", Price: 8999, ImageURL: "https://images.unsplash.com/photo-1610030469668-bd4ec3c4e2e7?w=400", Badge: "New Arrival"},
	{Name: "Kids Party Suit", Category: enum.CategoryKids, SubCategory: "Party Wear", Price: 2499, ImageURL: "https://images.unsplash.com/photo-1518831959646-742c3a14ebf7?w=400"},
	{Name: "Cotton Casual Shirt", Category: enum.CategoryMen, SubCategory: "Shirt", Price: 1299, ImageURL: "https://images.unsplash.com/photo-1596755094514-f87e34085b2c?w=400"},
	{Name: "Anarkali Kurti", Category: enum.CategoryWomen, SubCategory: "Kurti", Price: 3499, ImageURL: "https://images.unsplash.com/photo-1583391733956-3750e0ff4e8b?w=400"},
}
