// Package terminal provides rich terminal output with colors and styling
package terminal

import (
	"fmt"
	"io"
	"strings"

	"github.com/arthur-debert/pricat/pkg/logging"
	"github.com/arthur-debert/pricat/pkg/ui/view"
	"github.com/charmbracelet/glamour"
	"github.com/charmbracelet/lipgloss"
)

var (
	accent = lipgloss.AdaptiveColor{Light: "#5A56E0", Dark: "#7571F9"}
	muted  = lipgloss.AdaptiveColor{Light: "#6C6C6C", Dark: "#9B9B9B"}
	danger = lipgloss.AdaptiveColor{Light: "#D7263D", Dark: "#FF5F6D"}
)

type styles struct {
	title  lipgloss.Style
	label  lipgloss.Style
	value  lipgloss.Style
	detail lipgloss.Style
	error  lipgloss.Style
	box    lipgloss.Style
}

// Renderer provides rich terminal output using lipgloss styles and glamour
// markdown rendering
type Renderer struct {
	output io.Writer
	styles styles
	width  int
}

// New creates a new terminal renderer
func New(w io.Writer) (*Renderer, error) {
	log := logging.GetLogger("ui.terminal")

	// A renderer bound to w detects the color profile of that writer
	lr := lipgloss.NewRenderer(w)
	log.Debug().
		Str("colorProfile", fmt.Sprintf("%v", lr.ColorProfile())).
		Bool("darkBackground", lr.HasDarkBackground()).
		Msg("Lipgloss renderer created")

	return &Renderer{
		output: w,
		width:  100,
		styles: styles{
			title:  lr.NewStyle().Bold(true).Foreground(accent),
			label:  lr.NewStyle().Foreground(muted).Width(12),
			value:  lr.NewStyle().Bold(true),
			detail: lr.NewStyle().Foreground(muted).PaddingLeft(2),
			error:  lr.NewStyle().Bold(true).Foreground(danger),
			box: lr.NewStyle().
				Border(lipgloss.RoundedBorder()).
				BorderForeground(accent).
				Padding(0, 1),
		},
	}, nil
}

// RenderResult renders any result type with rich terminal formatting
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
	lines := []string{r.styles.title.Render("pricat run " + s.RunID)}
	for _, f := range s.Fields() {
		lines = append(lines, r.styles.label.Render(f.Label)+r.styles.value.Render(f.Value))
	}
	_, err := fmt.Fprintln(r.output, r.styles.box.Render(strings.Join(lines, "\n")))
	return err
}

func (r *Renderer) renderRules(t view.RuleTable) error {
	md := t.Markdown()

	renderer, err := glamour.NewTermRenderer(
		glamour.WithAutoStyle(),
		glamour.WithWordWrap(r.width),
	)
	if err != nil {
		// Fallback to plain markdown on error
		_, werr := fmt.Fprint(r.output, md)
		return werr
	}

	rendered, err := renderer.Render(md)
	if err != nil {
		rendered = md
	}
	_, err = fmt.Fprint(r.output, rendered)
	return err
}

// RenderError renders an error with appropriate formatting
func (r *Renderer) RenderError(err error) error {
	headline, details := view.ErrorLines(err)
	if _, werr := fmt.Fprintln(r.output, r.styles.error.Render("Error:")+" "+headline); werr != nil {
		return werr
	}
	for _, line := range details {
		if _, werr := fmt.Fprintln(r.output, r.styles.detail.Render(line)); werr != nil {
			return werr
		}
	}
	return nil
}

// RenderMessage renders a simple message
func (r *Renderer) RenderMessage(msg string) error {
	_, err := fmt.Fprintln(r.output, r.styles.title.Render(msg))
	return err
}
