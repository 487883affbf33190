package db

import (
	"context"
	"strings"
)

// ColumnRow is one row of column metadata
type ColumnRow struct {
	TableName       string  `db:"table_name"`
	ColumnName      string  `db:"column_name"`
	IsNullable      string  `db:"is_nullable"`
	DataType        string  `db:"data_type"`
	ColumnType      string  `db:"column_type"`
	ColumnDefault   *string `db:"column_default"`
	OrdinalPosition int     `db:"ordinal_position"`
}

// ForeignKeyRow is one row of foreign key metadata
type ForeignKeyRow struct {
	TableName            string `db:"table_name"`
	ColumnName           string `db:"column_name"`
	ReferencedTableName  string `db:"referenced_table_name"`
	ReferencedColumnName string `db:"referenced_column_name"`
}

// CustomFieldRow is a custom field definition. It carries column metadata and,
// optionally, the relationship the field declares.
type CustomFieldRow struct {
	ColumnRow
	ReferencedTableName  *string `db:"referenced_table_name"`
	ReferencedColumnName *string `db:"referenced_column_name"`
}

// Reference returns the declared relationship of the custom field, if any.
func (r CustomFieldRow) Reference() (ForeignKeyRow, bool) {
	if r.ReferencedTableName == nil || r.ReferencedColumnName == nil {
		return ForeignKeyRow{}, false
	}
	return ForeignKeyRow{
		TableName:            r.TableName,
		ColumnName:           r.ColumnName,
		ReferencedTableName:  *r.ReferencedTableName,
		ReferencedColumnName: *r.ReferencedColumnName,
	}, true
}

// Provider runs the metadata queries the schema builder consumes.
type Provider interface {
	// Columns returns every column of every table and view in the schema.
	Columns(ctx context.Context) ([]ColumnRow, error)
	// CustomFields returns the rows of the custom field definitions table.
	CustomFields(ctx context.Context, table string) ([]CustomFieldRow, error)
	// ForeignKeys returns every foreign key column in the schema.
	ForeignKeys(ctx context.Context) ([]ForeignKeyRow, error)
}

// baseDataType reduces a declared type such as "VARCHAR(255)" to "varchar".
func baseDataType(declared string) string {
	t := strings.ToLower(strings.TrimSpace(declared))
	if i := strings.IndexByte(t, '('); i >= 0 {
		t = strings.TrimSpace(t[:i])
	}
	if i := strings.IndexByte(t, ' '); i >= 0 {
		t = t[:i]
	}
	return t
}

var (
	_ Provider = (*MySQLProvider)(nil)
	_ Provider = (*PostgresProvider)(nil)
	_ Provider = (*SQLiteProvider)(nil)
)
