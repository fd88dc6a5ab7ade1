package catalog

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/nishantgoyal/fashionhub-api/internal/domain/enum"
)

func TestIsValidSubCategory(t *testing.T) {
	require.True(t, IsValidSubCategory(enum.CategoryMen, "Sherwani"))
	require.True(t, IsValidSubCategory(enum.CategoryWomen, "Lehenga"))
	require.True(t, IsValidSubCategory(enum.CategoryKids, "Party Wear"))

	// Sub-categories do not cross category boundaries
	require.False(t, IsValidSubCategory(enum.CategoryMen, "Saree"))
	require.False(t, IsValidSubCategory(enum.CategoryKids, "Sherwani"))
	require.False(t, IsValidSubCategory(enum.CategoryMen, "sherwani"))
}

func TestSampleProducts(t *testing.T) {
	require.NotEmpty(t, SampleProducts)
	for _, s := range SampleProducts {
		require.True(t, s.Category.IsValid())
		require.True(t, IsValidSubCategory(s.Category, s.SubCategory), "sample %q", s.Name)
		require.Greater(t, s.Price, 0.0)
		require.NotEmpty(t, s.ImageURL)
	}
}
