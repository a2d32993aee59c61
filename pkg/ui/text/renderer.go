// Package text provides plain text output without any styling
package text

import (
	"fmt"
	"io"

	"github.com/arthur-debert/pricat/pkg/ui/view"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
)

// Renderer provides plain text output without colors or styling
type Renderer struct {
	output io.Writer
}

// New creates a new text renderer
func New(output io.Writer) (*Renderer, error) {
	return &Renderer{output: output}, nil
}

// RenderResult renders any result type as plain text
func (r *Renderer) RenderResult(result interface{}) error {
	switch v := result.(type) {
	case view.Summary:
		return r.renderSummary(v)
	case *view.Summary:
		return r.renderSummary(*v)
	case view.RuleTable:
		return r.renderRules(v)
	case *view.RuleTable:
		return r.renderRules(*v)
	default:
		// For unknown types, just print them
		_, err := fmt.Fprintf(r.output, "%+v\n", result)
		return err
	}
}

func (r *Renderer) renderSummary(s view.Summary) error {
	for _, f := range s.Fields() {
		if _, err := fmt.Fprintf(r.output, "%-11s %s\n", f.Label+":", f.Value); err != nil {
			return err
		}
	}
	return nil
}

func (r *Renderer) renderRules(t view.RuleTable) error {
	if _, err := fmt.Fprintf(r.output, "%s: %d direct, %d composite, %d glob\n",
		t.Source, t.Counts.Direct, t.Counts.Composite, t.Counts.Glob); err != nil {
		return err
	}

	header, rows := t.Cells()
	tbl := table.New().
		Border(lipgloss.ASCIIBorder()).
		BorderRow(false).
		Headers(header...).
		Rows(rows...)
	if _, err := fmt.Fprintln(r.output, tbl.String()); err != nil {
		return err
	}

	if t.Checked {
		_, err := fmt.Fprintln(r.output, "All composite rules are well formed.")
		return err
	}
	return nil
}

// RenderError renders an error as plain text
func (r *Renderer) RenderError(err error) error {
	headline, details := view.ErrorLines(err)
	if _, werr := fmt.Fprintf(r.output, "Error: %s\n", headline); werr != nil {
		return werr
	}
	for _, line := range details {
		if _, werr := fmt.Fprintf(r.output, "  %s\n", line); werr != nil {
			return werr
		}
	}
	return nil
}

// RenderMessage renders a simple message
func (r *Renderer) RenderMessage(msg string) error {
	_, err := fmt.Fprintln(r.output, msg)
	return err
}
