package view_test

import (
	"fmt"
	"testing"

	"github.com/arthur-debert/pricat/pkg/errors"
	"github.com/arthur-debert/pricat/pkg/mapping"
	"github.com/arthur-debert/pricat/pkg/ui/view"
	"github.com/stretchr/testify/assert"
)

func TestSummary_Fields(t *testing.T) {
	s := view.Summary{Output: "catalog.xml", Format: "xml"}

	fields := s.Fields()
	assert.Equal(t, "Source", fields[0].Label)
	assert.Contains(t, fields, view.Field{Label: "Output", Value: "catalog.xml (xml)"})
}

func TestRuleTable_Markdown(t *testing.T) {
	table := view.RuleTable{
		Source: "mappings.csv",
		Rules: []mapping.Rule{{
			Kind: mapping.KindGlob,
			Key:  "*.price|currency",
			Unit: mapping.Unit{
				Source:      mapping.MapAttr{Value: "*", Type: "price|currency"},
				Destination: mapping.MapAttr{Value: "*", Type: "price_currency"},
			},
		}},
		Counts: mapping.Counts{Glob: 1},
	}

	md := table.Markdown()
	assert.Contains(t, md, "| KIND | SOURCE | DESTINATION |\n| --- | --- | --- |\n")
	assert.Contains(t, md, `| glob | price\|currency = * | price_currency = * |`)
	assert.NotContains(t, md, "well formed")
}

func TestErrorLines(t *testing.T) {
	t.Run("coded_error_with_wrapped_cause", func(t *testing.T) {
		err := errors.Wrap(fmt.Errorf("disk full"), errors.ErrEncode, "Failed to encode catalog as json").
			WithDetail("format", "json")

		headline, lines := view.ErrorLines(err)
		assert.Equal(t, "Failed to encode catalog as json: disk full", headline)
		assert.Equal(t, []string{"code: ENCODE", "format: json"}, lines)
	})

	t.Run("plain_error", func(t *testing.T) {
		headline, lines := view.ErrorLines(fmt.Errorf("boom"))
		assert.Equal(t, "boom", headline)
		assert.Empty(t, lines)
	})
}
