// Package ui renders command outcomes for the npmstage CLI in terminal
// (styled), text (plain) or JSON form.
package ui

import (
	"io"
	"os"

	"github.com/arthur-debert/npmstage/pkg/config"
	"github.com/arthur-debert/npmstage/pkg/errors"
)

// Report describes what a command did
type Report struct {
	Command string   `json:"command"`
	Project string   `json:"project,omitempty"`
	Target  string   `json:"target,omitempty"`
	NodeEnv string   `json:"nodeEnv,omitempty"`
	Steps   []string `json:"steps,omitempty"`
	Message string   `json:"message,omitempty"`
}

// Renderer is the common interface for all output renderers.
type Renderer interface {
	// RenderReport renders the outcome of a successful command
	RenderReport(r *Report) error

	// RenderError renders an error with appropriate formatting
	RenderError(err error) error

	// RenderMessage renders a simple message
	RenderMessage(msg string) error
}

// NewRenderer creates a new renderer based on the specified format.
// FormatAuto is resolved with DetectFormat when output is a file, and is
// plain text otherwise.
func NewRenderer(format Format, output io.Writer, env config.Environment) (Renderer, error) {
	switch format {
	case FormatAuto:
		if file, ok := output.(*os.File); ok {
			return NewRenderer(DetectFormat(env, file), output, env)
		}
		return NewRenderer(FormatText, output, env)
	case FormatTerminal:
		return newTerminalRenderer(output), nil
	case FormatText:
		return newTextRenderer(output), nil
	case FormatJSON:
		return newJSONRenderer(output), nil
	default:
		return nil, errors.Newf(errors.ErrInvalidInput, "unknown format: %v", format)
	}
}
