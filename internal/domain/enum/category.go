package enum

// Category is the top-level product category of the store
type Category string

const (
	CategoryMen   Category = "Men"
	CategoryWomen Category = "Women"
	CategoryKids  Category = "Kids"
)

// Categories lists every valid category
func Categories() []Category {
	return []Category{CategoryMen, CategoryWomen, CategoryKids}
}

// IsValid reports whether the category is one of the known values
func (c Category) IsValid() bool {
	switch c {
	case CategoryMen, CategoryWomen, CategoryKids:
		return true
	}
	return false
}

func (c Category) String() string {
	return string(c)
}
