// Package iodb implements database operations for PostgreSQL (pgxpool)
// and SQLite (modernc.org/sqlite).
// This is an impure I/O package that implements contracts
// defined in pkg/.
package iodb

import (
	"github.com/gnames/moviedb/pkg/config"
	"github.com/gnames/moviedb/pkg/db"
)

// New creates a database operator for the driver given in the config
// (without connecting).
func New(cfg *config.DatabaseConfig) (db.Operator, error) {
	switch cfg.Driver {
	case config.DriverPostgres:
		return NewPgxOperator(), nil
	case config.DriverSQLite:
		return NewSQLiteOperator(), nil
	default:
		return nil, UnknownDriverError(cfg.Driver)
	}
}
