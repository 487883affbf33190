package db

import (
	"context"
	"fmt"

	"github.com/go-sql-driver/mysql"
	"github.com/jmoiron/sqlx"
)

// MySQLClient holds a connection to the MySQL server whose metadata is read
type MySQLClient struct {
	db     *sqlx.DB
	dbName string
}

// NewMySQLClient connects with a go-sql-driver DSN such as
// user:pass@tcp(host:3306)/database.
func NewMySQLClient(ctx context.Context, dsn string) (*MySQLClient, error) {
	cfg, err := mysql.ParseDSN(dsn)
	if err != nil {
		return nil, fmt.Errorf("invalid MySQL DSN: %w", err)
	}

	db, err := sqlx.ConnectContext(ctx, "mysql", cfg.FormatDSN())
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}

	return &MySQLClient{db: db, dbName: cfg.DBName}, nil
}

// Close closes the database connection
func (c *MySQLClient) Close() error {
	return c.db.Close()
}

// GetDB returns the underlying database connection
func (c *MySQLClient) GetDB() *sqlx.DB {
	return c.db
}

// DatabaseName is the database selected by the DSN, if any.
func (c *MySQLClient) DatabaseName() string {
	return c.dbName
}
