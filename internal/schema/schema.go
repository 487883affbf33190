// Package schema contains the semantic model inferred from database metadata:
// tables, fields, references, cross-reference tables and associations, plus
// the naming helpers a code emitter reads from it.
package schema

import (
	"strings"

	"go.uber.org/zap"

	"github.com/tordrt/seqschema/internal/naming"
)

// New creates an empty schema using the given naming convention and identity
// suffix. A nil logger discards warnings.
func New(conv naming.Options, idSuffix string, useModelFactory bool, logger *zap.Logger) *Schema {
	if logger == nil {
		logger = zap.NewNop()
	}
	if idSuffix == "" {
		idSuffix = DefaultIDSuffix
	}
	return &Schema{
		IDFieldLookup:   make(map[string]bool),
		Naming:          conv,
		IDSuffix:        strings.ToLower(idSuffix),
		UseModelFactory: useModelFactory,
		log:             logger.Sugar(),
	}
}

// Logger returns the logger warnings are reported to.
func (s *Schema) Logger() *zap.SugaredLogger {
	return s.log
}

// AddTable appends an empty table and returns its index.
func (s *Schema) AddTable(name string) int {
	idx := len(s.Tables)
	s.Tables = append(s.Tables, Table{Name: name, Index: idx})
	return idx
}

// AddField appends f to the table at index table and returns its address.
func (s *Schema) AddField(table int, f Field) FieldRef {
	t := &s.Tables[table]
	f.TableIndex = table
	t.Fields = append(t.Fields, f)
	return FieldRef{Table: table, Field: len(t.Fields) - 1}
}

// Field resolves a field address.
func (s *Schema) Field(r FieldRef) *Field {
	return &s.Tables[r.Table].Fields[r.Field]
}

// TableOf returns the table that owns f.
func (s *Schema) TableOf(f *Field) *Table {
	return &s.Tables[f.TableIndex]
}

// Table finds a table by name.
func (s *Schema) Table(name string) *Table {
	for i := range s.Tables {
		if s.Tables[i].Name == name {
			return &s.Tables[i]
		}
	}
	return nil
}

// ViewTables returns the tables recognized as views.
func (s *Schema) ViewTables() []*Table {
	views := make([]*Table, 0, len(s.Views))
	for _, idx := range s.Views {
		views = append(views, &s.Tables[idx])
	}
	return views
}

// IsXref reports whether the table is a many-to-many junction table.
func (t *Table) IsXref() bool {
	return strings.HasPrefix(t.Name, XrefPrefix)
}

// RealDBFields returns the stored columns, without navigation or calculated fields.
func (t *Table) RealDBFields() []Field {
	var fields []Field
	for _, f := range t.Fields {
		if !f.IsReference && !f.IsCalculated {
			fields = append(fields, f)
		}
	}
	return fields
}

// HasSuffixFold reports whether name ends with suffix, ignoring case.
func HasSuffixFold(name, suffix string) bool {
	if len(name) < len(suffix) {
		return false
	}
	return strings.EqualFold(name[len(name)-len(suffix):], suffix)
}

// IsIDField reports whether f is an identity field or a prefixed foreign key
// to one.
func (s *Schema) IsIDField(f *Field) bool {
	return f.TargetIDFieldType != "" || s.IDFieldLookup[f.Name]
}

// IDField returns the first identity field of t, or nil.
func (s *Schema) IDField(t *Table) *Field {
	for i := range t.Fields {
		if s.IsIDField(&t.Fields[i]) {
			return &t.Fields[i]
		}
	}
	return nil
}

// IDFieldName returns the identity field name of t. Tables without one get a
// visibly invalid placeholder so generation can continue.
func (s *Schema) IDFieldName(t *Table) string {
	f := s.IDField(t)
	if f == nil {
		return s.missingIDField(t)
	}
	return f.Name
}

// IDFieldNameTitleCase is IDFieldName converted with the default case style.
func (s *Schema) IDFieldNameTitleCase(t *Table) string {
	f := s.IDField(t)
	if f == nil {
		return s.missingIDField(t)
	}
	return f.ProperCaseName(s.Naming)
}

func (s *Schema) missingIDField(t *Table) string {
	s.log.Warnw("unable to find id field", "table", t.Name)
	return "!!cannotFindIdFieldOn" + t.Name + "!!"
}

// UniqueReferences returns at most one reference per foreign key column.
// Explicit foreign keys come first; every remaining non-view, non-xref table
// then contributes a self reference on its first field. View references are
// skipped.
func (s *Schema) UniqueReferences() []Reference {
	var unique []Reference
	found := make(map[string]bool)

	for _, r := range s.References {
		if r.IsView || found[r.ForeignKey] {
			continue
		}
		unique = append(unique, r)
		found[r.ForeignKey] = true
	}

	for i := range s.Tables {
		t := &s.Tables[i]
		if t.IsView || t.IsXref() || len(t.Fields) == 0 {
			continue
		}
		pk := t.Fields[0].Name
		if found[pk] {
			continue
		}
		found[pk] = true
		unique = append(unique, Reference{
			PrimaryTable: t.Name,
			ForeignTable: t.Name,
			PrimaryKey:   pk,
			ForeignKey:   pk,
		})
	}

	return unique
}
