package ui

import (
	"os"
	"strings"

	"github.com/arthur-debert/npmstage/pkg/config"
	"github.com/arthur-debert/npmstage/pkg/errors"
	"github.com/mattn/go-isatty"
	"github.com/muesli/termenv"
)

// Format selects how command outcomes are rendered
type Format int

const (
	// FormatAuto picks terminal or text output from the destination
	FormatAuto Format = iota
	FormatTerminal
	FormatText
	FormatJSON
)

// Variables that switch styled output off.
const (
	EnvNoColor = "NO_COLOR"
	EnvTerm    = "TERM"
)

var formatNames = [...]string{
	FormatAuto:     "auto",
	FormatTerminal: "term",
	FormatText:     "text",
	FormatJSON:     "json",
}

// formatAliases maps every accepted --output value onto a Format
var formatAliases = map[string]Format{
	"":         FormatAuto,
	"auto":     FormatAuto,
	"term":     FormatTerminal,
	"terminal": FormatTerminal,
	"text":     FormatText,
	"plain":    FormatText,
	"json":     FormatJSON,
}

func (f Format) String() string {
	if f < 0 || int(f) >= len(formatNames) {
		return "unknown"
	}
	return formatNames[f]
}

// ParseFormat parses an --output value. Matching ignores case and
// surrounding blanks.
func ParseFormat(s string) (Format, error) {
	if f, ok := formatAliases[strings.ToLower(strings.TrimSpace(s))]; ok {
		return f, nil
	}
	return FormatAuto, errors.Newf(errors.ErrInvalidInput, "unknown format: %s", s).
		WithDetail("format", s)
}

// DetectFormat resolves FormatAuto for output. Styled output needs a
// terminal with color support and neither NO_COLOR (https://no-color.org)
// nor TERM=dumb in env. A nil env reads the process environment.
func DetectFormat(env config.Environment, output *os.File) Format {
	if env == nil {
		env = config.OSEnvironment()
	}
	if config.Getenv(env, EnvNoColor) != "" || config.Getenv(env, EnvTerm) == "dumb" {
		return FormatText
	}

	fd := output.Fd()
	if !isatty.IsTerminal(fd) && !isatty.IsCygwinTerminal(fd) {
		return FormatText
	}

	out := termenv.NewOutput(output, termenv.WithEnvironment(termEnviron{env}))
	if out.ColorProfile() == termenv.Ascii {
		return FormatText
	}
	return FormatTerminal
}

// termEnviron lets termenv read the injected environment
type termEnviron struct {
	env config.Environment
}

func (e termEnviron) Getenv(key string) string { return config.Getenv(e.env, key) }

// Environ returns nil; an Environment cannot be enumerated
func (e termEnviron) Environ() []string { return nil }
