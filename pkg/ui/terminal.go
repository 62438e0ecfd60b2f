package ui

import (
	"fmt"
	"io"
	"strings"

	"github.com/arthur-debert/npmstage/pkg/errors"
	"github.com/charmbracelet/lipgloss"
)

// Styles used by the terminal renderer
type Styles struct {
	Success lipgloss.Style
	Failure lipgloss.Style
	Label   lipgloss.Style
	Step    lipgloss.Style
	Muted   lipgloss.Style
}

// NewStyles builds the styles on r, which decides the color profile
func NewStyles(r *lipgloss.Renderer) Styles {
	return Styles{
		Success: r.NewStyle().Foreground(lipgloss.Color("2")).Bold(true),
		Failure: r.NewStyle().Foreground(lipgloss.Color("1")).Bold(true),
		Label:   r.NewStyle().Foreground(lipgloss.Color("4")),
		Step:    r.NewStyle().PaddingLeft(2),
		Muted:   r.NewStyle().Faint(true),
	}
}

type terminalRenderer struct {
	out    io.Writer
	styles Styles
}

func newTerminalRenderer(w io.Writer) *terminalRenderer {
	return &terminalRenderer{
		out:    w,
		styles: NewStyles(lipgloss.NewRenderer(w)),
	}
}

func (r *terminalRenderer) RenderReport(rep *Report) error {
	var b strings.Builder
	b.WriteString(r.styles.Success.Render("✓ "+rep.Command) + "\n")
	if rep.Project != "" {
		fmt.Fprintf(&b, "%s %s\n", r.styles.Label.Render("project:"), rep.Project)
	}
	if rep.Target != "" {
		fmt.Fprintf(&b, "%s %s\n", r.styles.Label.Render("target: "), rep.Target)
	}
	if rep.NodeEnv != "" {
		fmt.Fprintf(&b, "%s %s\n", r.styles.Label.Render("NODE_ENV:"), rep.NodeEnv)
	}
	for _, step := range rep.Steps {
		b.WriteString(r.styles.Step.Render("- "+step) + "\n")
	}
	if rep.Message != "" {
		b.WriteString(r.styles.Muted.Render(rep.Message) + "\n")
	}
	_, err := io.WriteString(r.out, b.String())
	return err
}

func (r *terminalRenderer) RenderError(err error) error {
	line := r.styles.Failure.Render("✗ " + err.Error())
	if kind := errors.KindOf(err); kind != errors.KindUnknown {
		line += " " + r.styles.Muted.Render("("+string(kind)+" error)")
	}
	_, werr := fmt.Fprintln(r.out, line)
	return werr
}

func (r *terminalRenderer) RenderMessage(msg string) error {
	_, err := fmt.Fprintln(r.out, msg)
	return err
}
