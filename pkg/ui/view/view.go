// Package view holds the display models shared by the renderers.
package view

import (
	"fmt"
	"sort"
	"strings"
	"time"

	"github.com/arthur-debert/pricat/pkg/catalog"
	"github.com/arthur-debert/pricat/pkg/errors"
	"github.com/arthur-debert/pricat/pkg/mapping"
)

// Summary describes a finished pipeline run
type Summary struct {
	RunID    string         `json:"run_id"`
	Source   string         `json:"source"`
	Mappings string         `json:"mappings"`
	Output   string         `json:"output"`
	Format   string         `json:"format"`
	Rows     int            `json:"rows"`
	Rules    mapping.Counts `json:"rules"`
	Catalog  catalog.Stats  `json:"catalog"`
	Duration time.Duration  `json:"duration_ns"`
}

// Field is a labelled value of a summary
type Field struct {
	Label string
	Value string
}

// Fields lists the summary as label/value pairs in display order
func (s Summary) Fields() []Field {
	output := s.Output
	if output == "" {
		output = "stdout"
	}
	return []Field{
		{"Source", s.Source},
		{"Mappings", s.Mappings},
		{"Output", fmt.Sprintf("%s (%s)", output, s.Format)},
		{"Rows", fmt.Sprint(s.Rows)},
		{"Rules", fmt.Sprintf("%d direct, %d composite, %d glob", s.Rules.Direct, s.Rules.Composite, s.Rules.Glob)},
		{"Articles", fmt.Sprint(s.Catalog.Articles)},
		{"Variations", fmt.Sprint(s.Catalog.Variations)},
		{"Shared", fmt.Sprintf("%d catalog-wide attributes", s.Catalog.CommonAttributes)},
		{"Duration", s.Duration.Round(time.Millisecond).String()},
	}
}

// RuleTable lists compiled mapping rules
type RuleTable struct {
	Source  string         `json:"source"`
	Rules   []mapping.Rule `json:"rules"`
	Counts  mapping.Counts `json:"counts"`
	Checked bool           `json:"checked"`
}

// Cells returns the table header and one row of cells per rule
func (t RuleTable) Cells() ([]string, [][]string) {
	header := []string{"KIND", "SOURCE", "DESTINATION"}
	rows := make([][]string, 0, len(t.Rules))
	for _, r := range t.Rules {
		rows = append(rows, []string{
			r.Kind.String(),
			attr(r.Unit.Source),
			attr(r.Unit.Destination),
		})
	}
	return header, rows
}

// Markdown renders the table as a GitHub flavoured markdown document
func (t RuleTable) Markdown() string {
	var b strings.Builder

	fmt.Fprintf(&b, "# Mapping rules\n\n`%s`: %d direct, %d composite, %d glob\n\n",
		t.Source, t.Counts.Direct, t.Counts.Composite, t.Counts.Glob)

	header, rows := t.Cells()
	b.WriteString("| " + strings.Join(header, " | ") + " |\n")
	b.WriteString("|" + strings.Repeat(" --- |", len(header)) + "\n")
	for _, row := range rows {
		cells := make([]string, len(row))
		for i, c := range row {
			cells[i] = strings.ReplaceAll(c, "|", `\|`)
		}
		b.WriteString("| " + strings.Join(cells, " | ") + " |\n")
	}

	if t.Checked {
		b.WriteString("\nAll composite rules are well formed.\n")
	}
	return b.String()
}

func attr(a mapping.MapAttr) string {
	return a.Type + " = " + a.Value
}

// ErrorLines splits an error into a headline and sorted detail lines
func ErrorLines(err error) (string, []string) {
	code := errors.GetErrorCode(err)
	details := errors.GetErrorDetails(err)

	headline := err.Error()
	if pe, ok := err.(*errors.PricatError); ok {
		headline = pe.Message
		if pe.Wrapped != nil {
			headline += ": " + pe.Wrapped.Error()
		}
	}

	var lines []string
	if code != errors.ErrUnknown {
		lines = append(lines, "code: "+string(code))
	}
	keys := make([]string, 0, len(details))
	for k := range details {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	for _, k := range keys {
		lines = append(lines, fmt.Sprintf("%s: %v", k, details[k]))
	}
	return headline, lines
}
