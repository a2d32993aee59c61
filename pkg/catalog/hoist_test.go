// Test Type: Unit Test
// Description: Tests for the article-level and catalog-level hoisting steps

package catalog

import (
	"testing"

	"github.com/arthur-debert/pricat/pkg/types"
	"github.com/stretchr/testify/assert"
)

func articleWith(number string, rows ...*types.Row) *Article {
	a := NewArticle(number)
	a.Variations = append(a.Variations, rows...)
	return a
}

func itemsOf(rows []*types.Row) [][]types.Item {
	out := make([][]types.Item, 0, len(rows))
	for _, r := range rows {
		out = append(out, types.Items(r))
	}
	return out
}

func TestHoistToArticle(t *testing.T) {
	t.Run("common_attributes_are_leveled_up", func(t *testing.T) {
		a := articleWith("001",
			types.RowOf("name", "same", "colour", "black", "price", "125"),
			types.RowOf("name", "same", "colour", "white", "price", "125"),
			types.RowOf("name", "same", "colour", "red", "price", "125"),
		)

		hoistToArticle(a)

		assert.Equal(t, []types.Item{{Key: "name", Value: "same"}, {Key: "price", Value: "125"}}, types.Items(a.CommonAttributes))
		assert.Equal(t, [][]types.Item{
			{{Key: "colour", Value: "black"}},
			{{Key: "colour", Value: "white"}},
			{{Key: "colour", Value: "red"}},
		}, itemsOf(a.Variations))
	})

	t.Run("no_common_attributes", func(t *testing.T) {
		a := articleWith("002",
			types.RowOf("name", "A", "colour", "black", "price", "125"),
			types.RowOf("name", "B", "colour", "white", "price", "150"),
		)

		hoistToArticle(a)

		assert.Equal(t, 0, a.CommonAttributes.Len())
		assert.Equal(t, [][]types.Item{
			{{Key: "name", Value: "A"}, {Key: "colour", Value: "black"}, {Key: "price", Value: "125"}},
			{{Key: "name", Value: "B"}, {Key: "colour", Value: "white"}, {Key: "price", Value: "150"}},
		}, itemsOf(a.Variations))
	})

	t.Run("empty_variations", func(t *testing.T) {
		a := NewArticle("003")

		hoistToArticle(a)

		assert.Equal(t, 0, a.CommonAttributes.Len())
		assert.Empty(t, a.Variations)
	})

	t.Run("single_variation_moves_everything_up", func(t *testing.T) {
		a := articleWith("004", types.RowOf("name", "solo", "price", "9"))

		hoistToArticle(a)

		assert.Equal(t, []types.Item{{Key: "name", Value: "solo"}, {Key: "price", Value: "9"}}, types.Items(a.CommonAttributes))
		assert.Equal(t, [][]types.Item{{}}, itemsOf(a.Variations))
	})
}

func TestHoistToCatalog(t *testing.T) {
	t.Run("common_attributes_are_leveled_up_including_common_article_attrs", func(t *testing.T) {
		c := New()
		for _, number := range []string{"001", "002"} {
			a := articleWith(number,
				types.RowOf("name", "A"+number, "colour", "black"),
				types.RowOf("name", "B"+number, "colour", "white"),
			)
			a.CommonAttributes = types.RowOf("brand", "asos")
			c.Articles.Set(number, a)
		}

		hoistToCatalog(c)

		assert.Equal(t, []types.Item{{Key: "brand", Value: "asos"}}, types.Items(c.CommonAttributes))
		for pair := c.Articles.Oldest(); pair != nil; pair = pair.Next() {
			assert.Equal(t, 0, pair.Value.CommonAttributes.Len(), pair.Key)
			assert.Len(t, pair.Value.Variations, 2, "variations are untouched")
		}
	})

	t.Run("no_common_attributes", func(t *testing.T) {
		c := New()
		c.Articles.Set("001", articleWith("001", types.RowOf("name", "A")))
		c.Articles.Set("002", articleWith("002", types.RowOf("name", "C")))

		hoistToCatalog(c)

		assert.Equal(t, 0, c.CommonAttributes.Len())
	})

	t.Run("empty_catalog", func(t *testing.T) {
		c := New()

		hoistToCatalog(c)

		assert.Equal(t, 0, c.CommonAttributes.Len())
		assert.Equal(t, 0, c.Articles.Len())
	})
}
