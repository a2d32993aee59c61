package load

import (
	"encoding/json"
	"io"
	"strings"

	"github.com/arthur-debert/pricat/pkg/catalog"
	"github.com/arthur-debert/pricat/pkg/errors"
	"github.com/arthur-debert/pricat/pkg/logging"
	"github.com/arthur-debert/pricat/pkg/types"
	"github.com/beevik/etree"
	"github.com/pelletier/go-toml/v2"
	"gopkg.in/yaml.v3"
)

// Options tune the encoders
type Options struct {
	// Indent is the number of spaces per nesting level
	Indent int
}

// DefaultOptions returns the options used when none are given
func DefaultOptions() Options {
	return Options{Indent: 2}
}

// Encode writes c to w in the given format. JSON, YAML and XML keep the
// catalog's insertion order. TOML tables are written with sorted keys.
func Encode(w io.Writer, c *catalog.Catalog, format Format, opts Options) error {
	logger := logging.GetLogger("load")
	if opts.Indent <= 0 {
		opts.Indent = DefaultOptions().Indent
	}

	var err error
	switch format {
	case FormatJSON, "":
		err = encodeJSON(w, c, opts)
	case FormatYAML:
		err = encodeYAML(w, c, opts)
	case FormatTOML:
		err = encodeTOML(w, c, opts)
	case FormatXML:
		err = encodeXML(w, c, opts)
	default:
		return errors.Newf(errors.ErrInvalidInput, "Unknown output format: %s", format).
			WithDetail("format", string(format))
	}
	if err != nil {
		return errors.Wrapf(err, errors.ErrEncode, "Failed to encode catalog as %s", format).
			WithDetail("format", string(format))
	}

	logger.Debug().Str("format", string(format)).Msg("Catalog encoded")
	return nil
}

func encodeJSON(w io.Writer, c *catalog.Catalog, opts Options) error {
	enc := json.NewEncoder(w)
	enc.SetEscapeHTML(false)
	enc.SetIndent("", strings.Repeat(" ", opts.Indent))
	return enc.Encode(c)
}

func encodeYAML(w io.Writer, c *catalog.Catalog, opts Options) error {
	enc := yaml.NewEncoder(w)
	enc.SetIndent(opts.Indent)
	if err := enc.Encode(yamlCatalog(c)); err != nil {
		return err
	}
	return enc.Close()
}

func yamlCatalog(c *catalog.Catalog) *yaml.Node {
	articles := yamlMap()
	for pair := c.Articles.Oldest(); pair != nil; pair = pair.Next() {
		a := pair.Value

		variations := &yaml.Node{Kind: yaml.SequenceNode}
		for _, v := range a.Variations {
			variations.Content = append(variations.Content, yamlAttributes(v))
		}

		article := yamlMap()
		addYAMLPair(article, "article_number", yamlString(a.ArticleNumber))
		addYAMLPair(article, "variations", variations)
		addYAMLPair(article, "common_attributes", yamlAttributes(a.CommonAttributes))
		addYAMLPair(articles, pair.Key, article)
	}

	root := yamlMap()
	addYAMLPair(root, "articles", articles)
	addYAMLPair(root, "common_attributes", yamlAttributes(c.CommonAttributes))
	return root
}

func yamlMap() *yaml.Node {
	return &yaml.Node{Kind: yaml.MappingNode}
}

// yamlString tags values as strings so "36" or "yes" are quoted
func yamlString(s string) *yaml.Node {
	return &yaml.Node{Kind: yaml.ScalarNode, Tag: "!!str", Value: s}
}

func addYAMLPair(m *yaml.Node, key string, value *yaml.Node) {
	m.Content = append(m.Content, yamlString(key), value)
}

func yamlAttributes(a *types.Attributes) *yaml.Node {
	m := yamlMap()
	for _, item := range types.Items(a) {
		addYAMLPair(m, item.Key, yamlString(item.Value))
	}
	return m
}

func encodeTOML(w io.Writer, c *catalog.Catalog, opts Options) error {
	articles := make(map[string]any, c.Articles.Len())
	for pair := c.Articles.Oldest(); pair != nil; pair = pair.Next() {
		a := pair.Value
		variations := make([]map[string]string, 0, len(a.Variations))
		for _, v := range a.Variations {
			variations = append(variations, types.ToMap(v))
		}
		articles[pair.Key] = map[string]any{
			"article_number":    a.ArticleNumber,
			"variations":        variations,
			"common_attributes": types.ToMap(a.CommonAttributes),
		}
	}

	doc := map[string]any{
		"articles":          articles,
		"common_attributes": types.ToMap(c.CommonAttributes),
	}

	enc := toml.NewEncoder(w)
	enc.SetIndentTables(true)
	enc.SetIndentSymbol(strings.Repeat(" ", opts.Indent))
	return enc.Encode(doc)
}

func encodeXML(w io.Writer, c *catalog.Catalog, opts Options) error {
	doc := etree.NewDocument()
	doc.CreateProcInst("xml", `version="1.0" encoding="UTF-8"`)

	root := doc.CreateElement("catalog")
	articles := root.CreateElement("articles")
	for pair := c.Articles.Oldest(); pair != nil; pair = pair.Next() {
		a := pair.Value

		article := articles.CreateElement("article")
		article.CreateAttr("article_number", a.ArticleNumber)

		variations := article.CreateElement("variations")
		for _, v := range a.Variations {
			xmlAttributes(variations.CreateElement("variation"), v)
		}
		xmlAttributes(article.CreateElement("common_attributes"), a.CommonAttributes)
	}
	xmlAttributes(root.CreateElement("common_attributes"), c.CommonAttributes)

	doc.Indent(opts.Indent)
	_, err := doc.WriteTo(w)
	return err
}

func xmlAttributes(parent *etree.Element, a *types.Attributes) {
	for _, item := range types.Items(a) {
		el := parent.CreateElement("attribute")
		el.CreateAttr("name", item.Key)
		el.SetText(item.Value)
	}
}
