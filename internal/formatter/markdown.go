package formatter

import (
	"fmt"
	"io"
	"strings"

	"github.com/tordrt/seqschema/internal/schema"
)

// MarkdownFormatter formats schema as markdown
type MarkdownFormatter struct {
	writer io.Writer
}

// NewMarkdownFormatter creates a new markdown formatter
func NewMarkdownFormatter(w io.Writer) *MarkdownFormatter {
	return &MarkdownFormatter{writer: w}
}

// Format writes the schema in markdown format
func (f *MarkdownFormatter) Format(s *schema.Schema) error {
	_, _ = fmt.Fprintln(f.writer, "# Schema Model")
	_, _ = fmt.Fprintln(f.writer)

	for i := range s.Tables {
		f.formatTable(s, &s.Tables[i])
	}

	if len(s.References) > 0 {
		_, _ = fmt.Fprintln(f.writer, "## References")
		_, _ = fmt.Fprintln(f.writer)
		for _, r := range s.References {
			_, _ = fmt.Fprintf(f.writer, "- %s\n", referenceLine(r))
		}
		_, _ = fmt.Fprintln(f.writer)
	}

	if len(s.Xrefs) > 0 {
		_, _ = fmt.Fprintln(f.writer, "## Xrefs")
		_, _ = fmt.Fprintln(f.writer)
		for _, x := range s.Xrefs {
			_, _ = fmt.Fprintf(f.writer, "- %s\n", xrefLine(x))
		}
		_, _ = fmt.Fprintln(f.writer)
	}

	return nil
}

func (f *MarkdownFormatter) formatTable(s *schema.Schema, t *schema.Table) {
	if t.IsView {
		_, _ = fmt.Fprintf(f.writer, "## %s (view)\n\n", t.Name)
	} else {
		_, _ = fmt.Fprintf(f.writer, "## %s\n\n", t.Name)
	}

	_, _ = fmt.Fprintf(f.writer, "**ID:** %s\n\n", s.IDFieldName(t))
	_, _ = fmt.Fprintln(f.writer, "### Fields")
	_, _ = fmt.Fprintln(f.writer)

	for i := range t.Fields {
		field := &t.Fields[i]
		constraintStr := f.formatConstraints(s, field)
		if constraintStr != "" {
			_, _ = fmt.Fprintf(f.writer, "- **%s:** %s, %s\n", field.Name, typeLabel(s, field), constraintStr)
		} else {
			_, _ = fmt.Fprintf(f.writer, "- **%s:** %s\n", field.Name, typeLabel(s, field))
		}
	}
	_, _ = fmt.Fprintln(f.writer)
}

func (f *MarkdownFormatter) formatConstraints(s *schema.Schema, field *schema.Field) string {
	var constraints []string

	if s.IDFieldLookup[field.Name] {
		constraints = append(constraints, "ID")
	}

	if field.IsReference {
		constraints = append(constraints, "reference")
	}

	if field.IsCalculated {
		constraints = append(constraints, "calculated")
	}

	if !field.IsReference && !field.Nullable {
		constraints = append(constraints, "NOT NULL")
	}

	if field.Default != nil {
		constraints = append(constraints, fmt.Sprintf("DEFAULT %s", *field.Default))
	}

	return strings.Join(constraints, ", ")
}
