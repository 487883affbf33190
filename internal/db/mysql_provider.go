package db

import (
	"context"
	"strings"

	sq "github.com/Masterminds/squirrel"
	"github.com/jmoiron/sqlx"
)

// MySQL 8 reports information_schema column labels in upper case, so every
// selected column is aliased to the lower-case name the row structs expect.
var (
	columnSelect = []string{
		"table_name AS table_name",
		"column_name AS column_name",
		"is_nullable AS is_nullable",
		"data_type AS data_type",
		"column_type AS column_type",
		"column_default AS column_default",
		"ordinal_position AS ordinal_position",
	}
	referenceSelect = []string{
		"referenced_table_name AS referenced_table_name",
		"referenced_column_name AS referenced_column_name",
	}
)

// MySQLProvider reads schema metadata from MySQL's information_schema
type MySQLProvider struct {
	db         *sqlx.DB
	schemaName string
}

// NewMySQLProvider creates a metadata provider for the given database
func NewMySQLProvider(db *sqlx.DB, schemaName string) *MySQLProvider {
	return &MySQLProvider{
		db:         db,
		schemaName: schemaName,
	}
}

// Columns returns all columns ordered by table and ordinal position
func (p *MySQLProvider) Columns(ctx context.Context) ([]ColumnRow, error) {
	query, args, err := sq.Select(columnSelect...).
		From("information_schema.columns").
		Where(sq.Eq{"table_schema": p.schemaName}).
		OrderBy("table_name", "ordinal_position").
		ToSql()
	if err != nil {
		return nil, err
	}

	rows := []ColumnRow{}
	if err := p.db.SelectContext(ctx, &rows, query, args...); err != nil {
		return nil, err
	}
	return rows, nil
}

// CustomFields returns the custom field definitions stored in table
func (p *MySQLProvider) CustomFields(ctx context.Context, table string) ([]CustomFieldRow, error) {
	query, args, err := sq.Select(append(columnSelect, referenceSelect...)...).
		From(quoteMySQLIdentifier(table)).
		OrderBy("table_name", "ordinal_position").
		ToSql()
	if err != nil {
		return nil, err
	}

	rows := []CustomFieldRow{}
	if err := p.db.SelectContext(ctx, &rows, query, args...); err != nil {
		return nil, err
	}
	return rows, nil
}

// ForeignKeys returns every column that references another table
func (p *MySQLProvider) ForeignKeys(ctx context.Context) ([]ForeignKeyRow, error) {
	query, args, err := sq.Select(append([]string{
		"table_name AS table_name",
		"column_name AS column_name",
	}, referenceSelect...)...).
		From("information_schema.key_column_usage").
		Where(sq.Eq{"constraint_schema": p.schemaName}).
		Where(sq.NotEq{"referenced_table_name": nil}).
		ToSql()
	if err != nil {
		return nil, err
	}

	rows := []ForeignKeyRow{}
	if err := p.db.SelectContext(ctx, &rows, query, args...); err != nil {
		return nil, err
	}
	return rows, nil
}

func quoteMySQLIdentifier(name string) string {
	return "`" + strings.ReplaceAll(name, "`", "``") + "`"
}
