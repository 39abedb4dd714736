package iodb

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"

	"github.com/gnames/moviedb/pkg/config"
	"github.com/gnames/moviedb/pkg/db"
	_ "modernc.org/sqlite"
)

// sqliteOperator implements db.Operator interface on an embedded
// SQLite database.
type sqliteOperator struct {
	db *sql.DB
}

// NewSQLiteOperator creates a new SQLite operator
// (without connecting).
func NewSQLiteOperator() db.Operator {
	return &sqliteOperator{}
}

// Connect opens the SQLite file given in cfg.Path with foreign keys
// enforced.
func (s *sqliteOperator) Connect(
	ctx context.Context,
	cfg *config.DatabaseConfig,
) error {
	path := strings.TrimSpace(cfg.Path)
	if path == "" {
		return SQLiteConnectionError(path, errors.New("path is empty"))
	}
	dsn := "file:" + path + "?_pragma=foreign_keys(1)&_pragma=busy_timeout(5000)"

	sdb, err := sql.Open("sqlite", dsn)
	if err != nil {
		return SQLiteConnectionError(path, err)
	}

	// An in-memory database lives as long as its only connection.
	sdb.SetMaxOpenConns(1)
	sdb.SetMaxIdleConns(1)
	sdb.SetConnMaxLifetime(0)

	if err := sdb.PingContext(ctx); err != nil {
		sdb.Close()
		return SQLiteConnectionError(path, err)
	}

	if _, err := sdb.ExecContext(ctx, "PRAGMA foreign_keys = ON"); err != nil {
		sdb.Close()
		return SQLiteConnectionError(path, err)
	}

	s.db = sdb
	return nil
}

func (s *sqliteOperator) Close() error {
	if s.db == nil {
		return nil
	}
	err := s.db.Close()
	s.db = nil
	return err
}

func (s *sqliteOperator) Driver() string {
	return config.DriverSQLite
}

func (s *sqliteOperator) Placeholder(int) string {
	return "?"
}

func (s *sqliteOperator) SQL() (*sql.DB, error) {
	if s.db == nil {
		return nil, NotConnectedError()
	}
	return s.db, nil
}

func (s *sqliteOperator) Begin(ctx context.Context) (db.Tx, error) {
	if s.db == nil {
		return nil, NotConnectedError()
	}
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return nil, TransactionError(err)
	}
	return &sqliteTx{tx: tx}, nil
}

func (s *sqliteOperator) QueryStrings(
	ctx context.Context,
	query string,
	args ...any,
) ([]string, error) {
	if s.db == nil {
		return nil, NotConnectedError()
	}
	rows, err := s.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var res []string
	for rows.Next() {
		var str string
		if err := rows.Scan(&str); err != nil {
			return nil, err
		}
		res = append(res, str)
	}
	return res, rows.Err()
}

func (s *sqliteOperator) Count(ctx context.Context, table string) (int64, error) {
	if s.db == nil {
		return 0, NotConnectedError()
	}
	var res int64
	q := fmt.Sprintf(`SELECT count(*) FROM "%s"`, table)
	err := s.db.QueryRowContext(ctx, q).Scan(&res)
	return res, err
}

func (s *sqliteOperator) TableExists(
	ctx context.Context,
	tableName string,
) (bool, error) {
	if s.db == nil {
		return false, NotConnectedError()
	}

	query := `
		SELECT EXISTS (
			SELECT 1 FROM sqlite_master
			WHERE type = 'table' AND name = ?
		)
	`

	var exists bool
	err := s.db.QueryRowContext(ctx, query, tableName).Scan(&exists)
	if err != nil {
		return false, TableExistsCheckError(tableName, err)
	}
	return exists, nil
}

func (s *sqliteOperator) HasTables(ctx context.Context) (bool, error) {
	if s.db == nil {
		return false, NotConnectedError()
	}

	query := `
		SELECT EXISTS (
			SELECT 1 FROM sqlite_master
			WHERE type = 'table' AND name NOT LIKE 'sqlite_%'
		)
	`

	var hasTables bool
	err := s.db.QueryRowContext(ctx, query).Scan(&hasTables)
	if err != nil {
		return false, TableCheckError(err)
	}
	return hasTables, nil
}

// DropAllTables drops every user table. Foreign keys are switched off
// for the duration, so the order of drops does not matter.
func (s *sqliteOperator) DropAllTables(ctx context.Context) error {
	if s.db == nil {
		return NotConnectedError()
	}

	conn, err := s.db.Conn(ctx)
	if err != nil {
		return QueryTablesError(err)
	}
	defer conn.Close()

	query := `
		SELECT name FROM sqlite_master
		WHERE type = 'table' AND name NOT LIKE 'sqlite_%'
	`
	rows, err := conn.QueryContext(ctx, query)
	if err != nil {
		return QueryTablesError(err)
	}
	var tables []string
	for rows.Next() {
		var name string
		if err := rows.Scan(&name); err != nil {
			rows.Close()
			return ScanTableError(err)
		}
		tables = append(tables, name)
	}
	rows.Close()
	if err := rows.Err(); err != nil {
		return ScanTableError(err)
	}

	if _, err := conn.ExecContext(ctx, "PRAGMA foreign_keys = OFF"); err != nil {
		return QueryTablesError(err)
	}
	defer func() {
		_, _ = conn.ExecContext(context.Background(), "PRAGMA foreign_keys = ON")
	}()

	for _, table := range tables {
		dropSQL := fmt.Sprintf(`DROP TABLE IF EXISTS "%s"`, table)
		if _, err := conn.ExecContext(ctx, dropSQL); err != nil {
			return DropTableError(table, err)
		}
	}
	return nil
}

type sqliteTx struct {
	tx *sql.Tx
}

func (t *sqliteTx) Exec(ctx context.Context, query string, args ...any) (int64, error) {
	res, err := t.tx.ExecContext(ctx, query, args...)
	if err != nil {
		return 0, err
	}
	return res.RowsAffected()
}

// CopyRows inserts rows one by one with a prepared statement, so the
// rejected row is always known.
func (t *sqliteTx) CopyRows(
	ctx context.Context,
	table string,
	columns []string,
	rows [][]any,
) (int64, error) {
	if len(rows) == 0 {
		return 0, nil
	}

	placeholders := make([]string, len(columns))
	for i := range placeholders {
		placeholders[i] = "?"
	}
	stmtSQL := fmt.Sprintf(
		"INSERT INTO %s (%s) VALUES (%s)",
		table,
		strings.Join(columns, ", "),
		strings.Join(placeholders, ", "),
	)

	stmt, err := t.tx.PrepareContext(ctx, stmtSQL)
	if err != nil {
		return 0, err
	}
	defer stmt.Close()

	var inserted int64
	for i, row := range rows {
		if len(row) != len(columns) {
			return inserted, &db.RowError{
				Index: i,
				Err: fmt.Errorf("row length %d != columns length %d",
					len(row), len(columns)),
			}
		}
		if _, err := stmt.ExecContext(ctx, row...); err != nil {
			return inserted, &db.RowError{Index: i, Err: err}
		}
		inserted++
	}
	return inserted, nil
}

func (t *sqliteTx) Commit(context.Context) error {
	return t.tx.Commit()
}

func (t *sqliteTx) Rollback(context.Context) error {
	err := t.tx.Rollback()
	if errors.Is(err, sql.ErrTxDone) {
		return nil
	}
	return err
}
