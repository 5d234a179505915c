package render

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"strings"

	"gopkg.in/yaml.v3"
)

// Format selects the output encoding.
type Format string

const (
	FormatText Format = "text"
	FormatJSON Format = "json"
	FormatYAML Format = "yaml"
)

// ErrUnknownFormat indicates a format name ParseFormat does not recognize.
var ErrUnknownFormat = errors.New("render: unknown format")

// ParseFormat maps "text", "json" or "yaml" (any case) to a Format.
// An empty name means FormatText.
func ParseFormat(name string) (Format, error) {
	switch f := Format(strings.ToLower(strings.TrimSpace(name))); f {
	case "", FormatText:
		return FormatText, nil
	case FormatJSON, FormatYAML:
		return f, nil
	default:
		return "", fmt.Errorf("%w: %q", ErrUnknownFormat, name)
	}
}

// Printer writes results to one writer in one format.
type Printer struct {
	w      io.Writer
	format Format
}

// New returns a Printer. An unknown format falls back to FormatText.
func New(w io.Writer, format Format) *Printer {
	if format != FormatJSON && format != FormatYAML {
		format = FormatText
	}

	return &Printer{w: w, format: format}
}

// Format returns the Printer's format.
func (p *Printer) Format() Format { return p.format }

// encode writes v as JSON or YAML. It reports false for FormatText.
func (p *Printer) encode(v any) (bool, error) {
	switch p.format {
	case FormatJSON:
		enc := json.NewEncoder(p.w)
		enc.SetIndent("", "  ")
		return true, enc.Encode(v)
	case FormatYAML:
		enc := yaml.NewEncoder(p.w)
		enc.SetIndent(2)
		if err := enc.Encode(v); err != nil {
			return true, err
		}
		return true, enc.Close()
	default:
		return false, nil
	}
}

// println writes lines joined by newlines, with a trailing newline.
func (p *Printer) println(lines ...string) error {
	_, err := io.WriteString(p.w, strings.Join(lines, "\n")+"\n")
	return err
}

// field renders "label: value" with the shared styles.
func field(label string, value any) string {
	return labelStyle.Render(label+":") + " " + valueStyle.Render(fmt.Sprint(value))
}

// minutes formats a duration in minutes without a trailing ".0" for whole values.
func minutes(m float64) string {
	return fmt.Sprintf("%g min", m)
}
