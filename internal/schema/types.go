package schema

import (
	"go.uber.org/zap"

	"github.com/tordrt/seqschema/internal/naming"
)

// XrefPrefix marks a many-to-many junction table.
const XrefPrefix = "Xref"

// DefaultIDSuffix is the identity field suffix. Compared case-insensitively.
const DefaultIDSuffix = "id"

// Schema is the inferred model of a database. It owns every Table and Field;
// derived collections address them by index.
type Schema struct {
	Tables           []Table
	References       []Reference
	Xrefs            []Xref
	Associations     []Association
	CalculatedFields []FieldRef
	Views            []int
	IDFields         []FieldRef
	IDFieldLookup    map[string]bool

	Naming          naming.Options
	IDSuffix        string
	UseModelFactory bool

	log *zap.SugaredLogger
}

// Table represents a database table or view
type Table struct {
	Name   string
	Fields []Field
	IsView bool

	// Index is the table's position in Schema.Tables.
	Index int
}

// Field represents a table column or a synthesized navigation field
type Field struct {
	Name       string
	Type       string
	ColumnType string
	Default    *string
	Nullable   bool

	// IsReference marks a navigation field that is not a real column.
	IsReference bool
	// IsCalculated marks a custom field that is not a stored column.
	IsCalculated bool

	// TargetIDFieldType is set on prefixed foreign keys (ownerUserId) to the
	// type name of the identity field they point at (UserId).
	TargetIDFieldType string

	// TableIndex is the owning table's position in Schema.Tables.
	TableIndex int
}

// FieldRef addresses a field inside a Schema.
type FieldRef struct {
	Table int
	Field int
}

// Reference represents a foreign key relationship
type Reference struct {
	PrimaryTable    string
	ForeignTable    string
	AssociationName string
	PrimaryKey      string
	ForeignKey      string
	IsView          bool
}

// Xref represents a many-to-many relationship through a junction table
type Xref struct {
	FirstTable  string
	FirstField  string
	SecondTable string
	SecondField string
	XrefTable   string
}

// Association is a named foreign key, like ownerUserId, that disambiguates
// several relationships between the same two tables.
type Association struct {
	Name string
}
