package db

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5"
)

// PostgresClient manages the connection to PostgreSQL
type PostgresClient struct {
	conn *pgx.Conn
}

// NewPostgresClient creates a new PostgreSQL client
func NewPostgresClient(ctx context.Context, connString string) (*PostgresClient, error) {
	conn, err := pgx.Connect(ctx, connString)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}

	if err := conn.Ping(ctx); err != nil {
		_ = conn.Close(ctx)
		return nil, fmt.Errorf("failed to ping database: %w", err)
	}

	return &PostgresClient{conn: conn}, nil
}

// Close closes the database connection
func (c *PostgresClient) Close(ctx context.Context) error {
	return c.conn.Close(ctx)
}

// GetConnection returns the underlying connection
func (c *PostgresClient) GetConnection() *pgx.Conn {
	return c.conn
}

// Querier is the subset of *pgx.Conn the provider needs.
type Querier interface {
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
}

// PostgresProvider reads schema metadata from PostgreSQL's information_schema.
// udt_name stands in for MySQL's data_type and data_type for column_type.
type PostgresProvider struct {
	conn   Querier
	schema string
}

// NewPostgresProvider creates a metadata provider for one PostgreSQL schema
func NewPostgresProvider(conn Querier, schemaName string) *PostgresProvider {
	return &PostgresProvider{
		conn:   conn,
		schema: schemaName,
	}
}

// Columns returns all columns ordered by table and ordinal position
func (p *PostgresProvider) Columns(ctx context.Context) ([]ColumnRow, error) {
	query := `
		SELECT
			c.table_name::text AS table_name,
			c.column_name::text AS column_name,
			c.is_nullable::text AS is_nullable,
			c.udt_name::text AS data_type,
			c.data_type::text AS column_type,
			c.column_default::text AS column_default,
			c.ordinal_position::int AS ordinal_position
		FROM information_schema.columns c
		WHERE c.table_schema = $1
		ORDER BY c.table_name, c.ordinal_position
	`

	rows, err := p.conn.Query(ctx, query, p.schema)
	if err != nil {
		return nil, err
	}
	return pgx.CollectRows(rows, pgx.RowToStructByName[ColumnRow])
}

// CustomFields returns the custom field definitions stored in table
func (p *PostgresProvider) CustomFields(ctx context.Context, table string) ([]CustomFieldRow, error) {
	query := fmt.Sprintf(`
		SELECT
			table_name, column_name, is_nullable, data_type, column_type,
			column_default, ordinal_position::int AS ordinal_position,
			referenced_table_name, referenced_column_name
		FROM %s
		ORDER BY table_name, ordinal_position
	`, pgx.Identifier{p.schema, table}.Sanitize())

	rows, err := p.conn.Query(ctx, query)
	if err != nil {
		return nil, err
	}
	return pgx.CollectRows(rows, pgx.RowToStructByName[CustomFieldRow])
}

// ForeignKeys returns every column that references another table
func (p *PostgresProvider) ForeignKeys(ctx context.Context) ([]ForeignKeyRow, error) {
	query := `
		SELECT
			kcu.table_name::text AS table_name,
			kcu.column_name::text AS column_name,
			ccu.table_name::text AS referenced_table_name,
			ccu.column_name::text AS referenced_column_name
		FROM information_schema.table_constraints AS tc
		JOIN information_schema.key_column_usage AS kcu
			ON tc.constraint_name = kcu.constraint_name
			AND tc.table_schema = kcu.table_schema
		JOIN information_schema.constraint_column_usage AS ccu
			ON ccu.constraint_name = tc.constraint_name
			AND ccu.table_schema = tc.table_schema
		WHERE tc.constraint_type = 'FOREIGN KEY'
			AND tc.table_schema = $1
		ORDER BY kcu.table_name, kcu.ordinal_position
	`

	rows, err := p.conn.Query(ctx, query, p.schema)
	if err != nil {
		return nil, err
	}
	return pgx.CollectRows(rows, pgx.RowToStructByName[ForeignKeyRow])
}
