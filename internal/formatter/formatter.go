// Package formatter renders an inferred schema as text or markdown so the
// result of a build can be inspected before code is emitted from it.
package formatter

import (
	"fmt"
	"io"

	"github.com/tordrt/seqschema/internal/schema"
)

const (
	FormatText     = "text"
	FormatMarkdown = "markdown"
)

// Formatter writes a schema to its output
type Formatter interface {
	Format(s *schema.Schema) error
}

// New returns the formatter for the named output format
func New(format string, w io.Writer) (Formatter, error) {
	switch format {
	case FormatText:
		return NewTextFormatter(w), nil
	case FormatMarkdown:
		return NewMarkdownFormatter(w), nil
	default:
		return nil, fmt.Errorf("invalid format: %s (must be 'text' or 'markdown')", format)
	}
}
