// Test Type: Unit Test
// Description: Tests for grouping rows into articles

package catalog_test

import (
	"testing"

	"github.com/arthur-debert/pricat/pkg/catalog"
	"github.com/arthur-debert/pricat/pkg/errors"
	"github.com/arthur-debert/pricat/pkg/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func variations(a *catalog.Article) [][]types.Item {
	out := make([][]types.Item, 0, len(a.Variations))
	for _, v := range a.Variations {
		out = append(out, types.Items(v))
	}
	return out
}

func TestCatalog_Add(t *testing.T) {
	t.Run("one_article_two_variations", func(t *testing.T) {
		c := catalog.New()
		_, err := c.Add(types.RowOf("article_number", "a", "name", "fancy dream", "colour", "black", "price", "125"))
		require.NoError(t, err)
		_, err = c.Add(types.RowOf("article_number", "a", "name", "fancy dream hearts", "colour", "red", "price", "2"))
		require.NoError(t, err)

		require.Equal(t, 1, c.Articles.Len())
		a, ok := c.Article("a")
		require.True(t, ok)
		assert.Equal(t, "a", a.ArticleNumber)
		assert.Equal(t, [][]types.Item{
			{{Key: "name", Value: "fancy dream"}, {Key: "colour", Value: "black"}, {Key: "price", Value: "125"}},
			{{Key: "name", Value: "fancy dream hearts"}, {Key: "colour", Value: "red"}, {Key: "price", Value: "2"}},
		}, variations(a))
		assert.Equal(t, 0, a.CommonAttributes.Len())
		assert.Equal(t, 0, c.CommonAttributes.Len())
	})

	t.Run("two_articles_one_variation", func(t *testing.T) {
		c := catalog.New()
		_, err := c.Add(types.RowOf("article_number", "a", "name", "fancy dream", "colour", "black", "price", "125"))
		require.NoError(t, err)
		_, err = c.Add(types.RowOf("article_number", "b", "name", "another", "colour", "blue", "price", "35"))
		require.NoError(t, err)

		assert.Equal(t, []string{"a", "b"}, articleNumbers(c))

		a, _ := c.Article("a")
		b, _ := c.Article("b")
		assert.Equal(t, [][]types.Item{
			{{Key: "name", Value: "fancy dream"}, {Key: "colour", Value: "black"}, {Key: "price", Value: "125"}},
		}, variations(a))
		assert.Equal(t, [][]types.Item{
			{{Key: "name", Value: "another"}, {Key: "colour", Value: "blue"}, {Key: "price", Value: "35"}},
		}, variations(b))
	})

	t.Run("empty_input", func(t *testing.T) {
		c := catalog.New()
		assert.Equal(t, 0, c.Articles.Len())
		assert.Equal(t, 0, c.CommonAttributes.Len())
	})

	t.Run("interleaved_rows_keep_order", func(t *testing.T) {
		c := catalog.New()
		for _, row := range []*types.Row{
			types.RowOf("article_number", "b", "n", "1"),
			types.RowOf("article_number", "a", "n", "2"),
			types.RowOf("article_number", "b", "n", "3"),
		} {
			_, err := c.Add(row)
			require.NoError(t, err)
		}

		assert.Equal(t, []string{"b", "a"}, articleNumbers(c))
		b, _ := c.Article("b")
		assert.Equal(t, [][]types.Item{{{Key: "n", Value: "1"}}, {{Key: "n", Value: "3"}}}, variations(b))
	})

	t.Run("chaining_returns_same_catalog", func(t *testing.T) {
		c := catalog.New()
		got, err := c.Add(types.RowOf("article_number", "a"))
		require.NoError(t, err)
		assert.Same(t, c, got)
	})

	t.Run("row_is_not_mutated", func(t *testing.T) {
		row := types.RowOf("article_number", "a", "name", "tee")
		_, err := catalog.New().Add(row)
		require.NoError(t, err)
		assert.Equal(t, []string{"article_number", "name"}, types.Keys(row))
	})
}

func TestCatalog_Add_MissingKey(t *testing.T) {
	tests := []struct {
		name string
		row  *types.Row
	}{
		{"absent", types.RowOf("name", "tee")},
		{"empty", types.RowOf("article_number", "", "name", "tee")},
		{"nil_row", nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := catalog.New()
			_, err := c.Add(tt.row)
			require.Error(t, err)
			assert.True(t, errors.IsErrorCode(err, errors.ErrRequiredFieldMissing))
			assert.Contains(t, err.Error(), "article_number")
			assert.Equal(t, 0, c.Articles.Len())
		})
	}
}

func TestConsolidateCommonAttributes(t *testing.T) {
	c := catalog.New()
	rows := []*types.Row{
		types.RowOf("article_number", "001", "brand", "asos", "name", "tee", "colour", "black"),
		types.RowOf("article_number", "001", "brand", "asos", "name", "tee", "colour", "white"),
		types.RowOf("article_number", "002", "brand", "asos", "name", "hoodie", "colour", "red"),
		types.RowOf("article_number", "002", "brand", "asos", "name", "hoodie", "colour", "blue"),
	}
	for _, row := range rows {
		_, err := c.Add(row)
		require.NoError(t, err)
	}

	got := catalog.ConsolidateCommonAttributes(c)
	assert.Same(t, c, got)

	assert.Equal(t, []types.Item{{Key: "brand", Value: "asos"}}, types.Items(c.CommonAttributes))

	a, _ := c.Article("001")
	assert.Equal(t, []types.Item{{Key: "name", Value: "tee"}}, types.Items(a.CommonAttributes))
	assert.Equal(t, [][]types.Item{
		{{Key: "colour", Value: "black"}},
		{{Key: "colour", Value: "white"}},
	}, variations(a))

	b, _ := c.Article("002")
	assert.Equal(t, []types.Item{{Key: "name", Value: "hoodie"}}, types.Items(b.CommonAttributes))

	assert.Equal(t, catalog.Stats{Articles: 2, Variations: 4, CommonAttributes: 1}, c.Stats())
}

func TestConsolidateCommonAttributes_EmptyCatalog(t *testing.T) {
	c := catalog.ConsolidateCommonAttributes(catalog.New())
	assert.Equal(t, 0, c.Articles.Len())
	assert.Equal(t, 0, c.CommonAttributes.Len())
}

func articleNumbers(c *catalog.Catalog) []string {
	numbers := make([]string, 0, c.Articles.Len())
	for pair := c.Articles.Oldest(); pair != nil; pair = pair.Next() {
		numbers = append(numbers, pair.Key)
	}
	return numbers
}
