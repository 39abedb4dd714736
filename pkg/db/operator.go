package db

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/gnames/moviedb/pkg/config"
)

// Operator defines the interface for basic database management operations.
// It hides the differences between the PostgreSQL and SQLite backends:
// connection lifecycle, transactions with bulk copy, and simple queries.
type Operator interface {
	// Connect opens a connection to the database.
	Connect(context.Context, *config.DatabaseConfig) error

	// Close closes the database connection.
	Close() error

	// Driver returns the name of the backend ("postgres" or "sqlite").
	Driver() string

	// Placeholder returns the bind parameter for the n-th argument
	// of a query, starting from 1.
	Placeholder(n int) string

	// SQL returns a database/sql handle to the same database for
	// components that need it, such as GORM.
	SQL() (*sql.DB, error)

	// Begin starts a transaction.
	Begin(ctx context.Context) (Tx, error)

	// QueryStrings runs a query that returns one text column.
	QueryStrings(ctx context.Context, query string, args ...any) ([]string, error)

	// Count returns the number of rows in a table.
	Count(ctx context.Context, table string) (int64, error)

	// TableExists checks if a table exists in the database.
	TableExists(ctx context.Context, tableName string) (bool, error)

	// HasTables checks if the database has any tables.
	// Used to determine if schema creation should prompt for confirmation.
	HasTables(ctx context.Context) (bool, error)

	// DropAllTables drops all tables of the database.
	// Used during schema creation when overwriting existing data.
	DropAllTables(ctx context.Context) error
}

// Tx is a database transaction. Nothing is visible to other connections
// until Commit. Rollback after Commit does nothing.
type Tx interface {
	// Exec runs a statement and returns the number of affected rows.
	Exec(ctx context.Context, query string, args ...any) (int64, error)

	// CopyRows bulk-inserts rows into a table. Values of every row follow
	// the order of columns. When the backend can tell which row was
	// rejected, the error is *RowError.
	CopyRows(
		ctx context.Context,
		table string,
		columns []string,
		rows [][]any,
	) (int64, error)

	Commit(ctx context.Context) error
	Rollback(ctx context.Context) error
}

// RowError reports the row that the database rejected during CopyRows.
type RowError struct {
	// Index of the row in the batch, starting from 0.
	Index int
	Err   error
}

func (e *RowError) Error() string {
	return fmt.Sprintf("row %d: %s", e.Index+1, e.Err)
}

func (e *RowError) Unwrap() error {
	return e.Err
}
