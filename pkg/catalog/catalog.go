// Package catalog groups transformed rows into articles and hoists the
// attributes they share.
package catalog

import (
	"github.com/arthur-debert/pricat/pkg/attrs"
	"github.com/arthur-debert/pricat/pkg/errors"
	"github.com/arthur-debert/pricat/pkg/types"
	orderedmap "github.com/wk8/go-ordered-map/v2"
)

// KeyField is the row field articles are grouped by
const KeyField = "article_number"

// Article is a group of variation rows sharing one article number
type Article struct {
	ArticleNumber    string            `json:"article_number"`
	Variations       []*types.Row      `json:"variations"`
	CommonAttributes *types.Attributes `json:"common_attributes"`
}

// NewArticle creates an article with no variations
func NewArticle(number string) *Article {
	return &Article{
		ArticleNumber:    number,
		Variations:       []*types.Row{},
		CommonAttributes: types.NewAttributes(),
	}
}

// Catalog holds every article, in first-seen order, and the attributes common
// to all of them
type Catalog struct {
	Articles         *orderedmap.OrderedMap[string, *Article] `json:"articles"`
	CommonAttributes *types.Attributes                        `json:"common_attributes"`
}

// Stats summarizes the catalog size
type Stats struct {
	Articles         int `json:"articles"`
	Variations       int `json:"variations"`
	CommonAttributes int `json:"common_attributes"`
}

// New creates an empty catalog
func New() *Catalog {
	return &Catalog{
		Articles:         orderedmap.New[string, *Article](),
		CommonAttributes: types.NewAttributes(),
	}
}

// Add files a row as a variation of the article named by its KeyField. The
// key field itself is not kept on the variation. Add returns the catalog for
// chaining.
func (c *Catalog) Add(row *types.Row) (*Catalog, error) {
	number, ok := "", false
	if row != nil {
		number, ok = row.Get(KeyField)
	}
	if !ok || number == "" {
		return c, errors.Newf(errors.ErrRequiredFieldMissing,
			"Required field missing: '%s'", KeyField).
			WithDetail("field", KeyField)
	}

	variation := types.Clone(row)
	variation.Delete(KeyField)

	article, exists := c.Articles.Get(number)
	if !exists {
		article = NewArticle(number)
		c.Articles.Set(number, article)
	}
	article.Variations = append(article.Variations, variation)

	return c, nil
}

// Article returns the article with the given number
func (c *Catalog) Article(number string) (*Article, bool) {
	return c.Articles.Get(number)
}

// Stats returns the number of articles, variations and catalog-level
// attributes
func (c *Catalog) Stats() Stats {
	s := Stats{
		Articles:         c.Articles.Len(),
		CommonAttributes: c.CommonAttributes.Len(),
	}
	for pair := c.Articles.Oldest(); pair != nil; pair = pair.Next() {
		s.Variations += len(pair.Value.Variations)
	}
	return s
}

// ConsolidateCommonAttributes hoists attributes shared by all variations of an
// article to the article, then attributes shared by all articles to the
// catalog. The catalog level works on the article sets produced by the first
// step, so the order of the two steps is fixed.
func ConsolidateCommonAttributes(c *Catalog) *Catalog {
	for pair := c.Articles.Oldest(); pair != nil; pair = pair.Next() {
		hoistToArticle(pair.Value)
	}
	hoistToCatalog(c)
	return c
}

func hoistToArticle(a *Article) {
	common := attrs.Intersect(a.Variations)
	a.CommonAttributes = common

	for _, variation := range a.Variations {
		attrs.RemoveKeys(variation, common)
	}
}

func hoistToCatalog(c *Catalog) {
	sets := make([]*types.Attributes, 0, c.Articles.Len())
	for pair := c.Articles.Oldest(); pair != nil; pair = pair.Next() {
		sets = append(sets, pair.Value.CommonAttributes)
	}

	common := attrs.Intersect(sets)
	for pair := c.Articles.Oldest(); pair != nil; pair = pair.Next() {
		attrs.RemoveKeys(pair.Value.CommonAttributes, common)
	}
	c.CommonAttributes = common
}
