package db

import (
	"context"
	"fmt"
	"strings"

	"github.com/jmoiron/sqlx"
)

// SQLiteProvider reads schema metadata through SQLite's table-valued pragma
// functions, shaped like MySQL's information_schema rows.
type SQLiteProvider struct {
	db *sqlx.DB
}

// NewSQLiteProvider creates a metadata provider for an SQLite database
func NewSQLiteProvider(db *sqlx.DB) *SQLiteProvider {
	return &SQLiteProvider{db: db}
}

// Columns returns all table and view columns ordered by table and position
func (p *SQLiteProvider) Columns(ctx context.Context) ([]ColumnRow, error) {
	query := `
		SELECT
			m.name AS table_name,
			c.name AS column_name,
			CASE WHEN c."notnull" = 0 THEN 'YES' ELSE 'NO' END AS is_nullable,
			c.type AS column_type,
			c.dflt_value AS column_default,
			c.cid + 1 AS ordinal_position
		FROM sqlite_master m
		JOIN pragma_table_info(m.name) c
		WHERE m.type IN ('table', 'view') AND m.name NOT LIKE 'sqlite_%'
		ORDER BY m.name, c.cid
	`

	rows := []ColumnRow{}
	if err := p.db.SelectContext(ctx, &rows, query); err != nil {
		return nil, err
	}
	for i := range rows {
		rows[i].DataType = baseDataType(rows[i].ColumnType)
		rows[i].ColumnType = strings.ToLower(rows[i].ColumnType)
	}
	return rows, nil
}

// CustomFields returns the custom field definitions stored in table
func (p *SQLiteProvider) CustomFields(ctx context.Context, table string) ([]CustomFieldRow, error) {
	query := fmt.Sprintf(`
		SELECT
			table_name, column_name, is_nullable, data_type, column_type,
			column_default, ordinal_position,
			referenced_table_name, referenced_column_name
		FROM "%s"
		ORDER BY table_name, ordinal_position
	`, strings.ReplaceAll(table, `"`, `""`))

	rows := []CustomFieldRow{}
	if err := p.db.SelectContext(ctx, &rows, query); err != nil {
		return nil, err
	}
	return rows, nil
}

// ForeignKeys returns every column that references another table. A foreign
// key declared without a column list references the parent's primary key;
// its referenced column is reported empty.
func (p *SQLiteProvider) ForeignKeys(ctx context.Context) ([]ForeignKeyRow, error) {
	query := `
		SELECT
			m.name AS table_name,
			f."from" AS column_name,
			f."table" AS referenced_table_name,
			COALESCE(f."to", '') AS referenced_column_name
		FROM sqlite_master m
		JOIN pragma_foreign_key_list(m.name) f
		WHERE m.type = 'table'
		ORDER BY m.name, f.id, f.seq
	`

	rows := []ForeignKeyRow{}
	if err := p.db.SelectContext(ctx, &rows, query); err != nil {
		return nil, err
	}
	return rows, nil
}
