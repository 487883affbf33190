package formatter

import (
	"fmt"
	"io"
	"strings"

	"github.com/tordrt/seqschema/internal/schema"
)

// TextFormatter formats schema as compact text
type TextFormatter struct {
	writer io.Writer
}

// NewTextFormatter creates a new text formatter
func NewTextFormatter(w io.Writer) *TextFormatter {
	return &TextFormatter{writer: w}
}

// Format writes the schema in compact text format
func (f *TextFormatter) Format(s *schema.Schema) error {
	for i := range s.Tables {
		if i > 0 {
			_, _ = fmt.Fprintln(f.writer) // Blank line between tables
		}
		f.formatTable(s, &s.Tables[i])
	}

	if len(s.References) > 0 {
		_, _ = fmt.Fprintln(f.writer)
		_, _ = fmt.Fprintln(f.writer, "REFERENCES:")
		for _, r := range s.References {
			_, _ = fmt.Fprintf(f.writer, "  %s\n", referenceLine(r))
		}
	}

	if len(s.Xrefs) > 0 {
		_, _ = fmt.Fprintln(f.writer)
		_, _ = fmt.Fprintln(f.writer, "XREFS:")
		for _, x := range s.Xrefs {
			_, _ = fmt.Fprintf(f.writer, "  %s\n", xrefLine(x))
		}
	}

	if len(s.Associations) > 0 {
		names := make([]string, 0, len(s.Associations))
		for _, a := range s.Associations {
			names = append(names, a.Name)
		}
		_, _ = fmt.Fprintln(f.writer)
		_, _ = fmt.Fprintf(f.writer, "ASSOCIATIONS: %s\n", strings.Join(names, ", "))
	}

	return nil
}

func (f *TextFormatter) formatTable(s *schema.Schema, t *schema.Table) {
	kind := "TABLE"
	if t.IsView {
		kind = "VIEW"
	}

	_, _ = fmt.Fprintf(f.writer, "%s %s (ID: %s)\n", kind, t.Name, s.IDFieldName(t))

	for i := range t.Fields {
		_, _ = fmt.Fprintf(f.writer, "  %s\n", formatField(s, &t.Fields[i]))
	}
}

func formatField(s *schema.Schema, field *schema.Field) string {
	parts := []string{field.Name + ":", typeLabel(s, field)}

	switch {
	case field.IsReference:
		parts = append(parts, "REFERENCE")
	case field.IsCalculated:
		parts = append(parts, "CALCULATED")
	}

	if !field.IsReference && !field.Nullable {
		parts = append(parts, "NOT NULL")
	}

	if field.Default != nil {
		parts = append(parts, fmt.Sprintf("DEFAULT %s", *field.Default))
	}

	return strings.Join(parts, " ")
}

// typeLabel is the column type followed by the generated type when they
// differ, e.g. "varchar (string)" or "int (UserId)".
func typeLabel(s *schema.Schema, field *schema.Field) string {
	generated := s.CustomFieldType(field)
	if generated == field.Type {
		return field.Type
	}
	return fmt.Sprintf("%s (%s)", field.Type, generated)
}

func referenceLine(r schema.Reference) string {
	line := fmt.Sprintf("%s.%s → %s.%s", r.PrimaryTable, r.PrimaryKey, r.ForeignTable, r.ForeignKey)
	if r.AssociationName != "" && r.AssociationName != r.PrimaryTable {
		line += " as " + r.AssociationName
	}
	if r.IsView {
		line += " (view)"
	}
	return line
}

func xrefLine(x schema.Xref) string {
	return fmt.Sprintf("%s.%s ↔ %s.%s via %s", x.FirstTable, x.FirstField, x.SecondTable, x.SecondField, x.XrefTable)
}
