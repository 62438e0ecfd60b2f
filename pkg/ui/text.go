package ui

import (
	"fmt"
	"io"
	"strings"
)

type textRenderer struct {
	out io.Writer
}

func newTextRenderer(w io.Writer) *textRenderer {
	return &textRenderer{out: w}
}

func (r *textRenderer) RenderReport(rep *Report) error {
	var b strings.Builder
	fmt.Fprintf(&b, "%s: ok\n", rep.Command)
	if rep.Project != "" {
		fmt.Fprintf(&b, "project: %s\n", rep.Project)
	}
	if rep.Target != "" {
		fmt.Fprintf(&b, "target: %s\n", rep.Target)
	}
	if rep.NodeEnv != "" {
		fmt.Fprintf(&b, "NODE_ENV: %s\n", rep.NodeEnv)
	}
	for _, step := range rep.Steps {
		fmt.Fprintf(&b, "  - %s\n", step)
	}
	if rep.Message != "" {
		fmt.Fprintln(&b, rep.Message)
	}
	_, err := io.WriteString(r.out, b.String())
	return err
}

func (r *textRenderer) RenderError(err error) error {
	_, werr := fmt.Fprintf(r.out, "error: %v\n", err)
	return werr
}

func (r *textRenderer) RenderMessage(msg string) error {
	_, err := fmt.Fprintln(r.out, msg)
	return err
}
