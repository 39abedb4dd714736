// Package iotesting provides shared test utilities for store tests.
// This is an internal package for test infrastructure only.
package iotesting

import (
	"context"
	"os"
	"strconv"
	"testing"

	"github.com/gnames/moviedb/internal/iodb"
	"github.com/gnames/moviedb/internal/ioschema"
	"github.com/gnames/moviedb/pkg/config"
	"github.com/gnames/moviedb/pkg/db"
)

const (
	// TestDatabaseName is the database name used for all integration tests.
	// This ensures tests never accidentally run against production databases.
	TestDatabaseName = "moviedb_test"
)

// GetTestConfig returns a configuration suitable for integration tests.
// It starts from defaults, applies MOVIEDB_DATABASE_* environment
// variables and overrides the database name to TestDatabaseName for
// safety.
//
// Usage in integration tests:
//
//	func TestSomething(t *testing.T) {
//	    if testing.Short() {
//	        t.Skip("Skipping integration test")
//	    }
//	    cfg := iotesting.GetTestConfig()
//	    // ... use cfg for database operations
//	}
func GetTestConfig() *config.Config {
	cfg := config.New()

	var opts []config.Option
	if s, ok := os.LookupEnv("MOVIEDB_DATABASE_HOST"); ok {
		opts = append(opts, config.OptDatabaseHost(s))
	}
	if s, ok := os.LookupEnv("MOVIEDB_DATABASE_PORT"); ok {
		if i, err := strconv.Atoi(s); err == nil {
			opts = append(opts, config.OptDatabasePort(i))
		}
	}
	if s, ok := os.LookupEnv("MOVIEDB_DATABASE_USER"); ok {
		opts = append(opts, config.OptDatabaseUser(s))
	}
	if s, ok := os.LookupEnv("MOVIEDB_DATABASE_PASSWORD"); ok {
		opts = append(opts, config.OptDatabasePassword(s))
	}
	cfg.Update(opts)

	// Always use test database for safety
	cfg.Database.Database = TestDatabaseName

	return cfg
}

// GetTestDatabaseConfig returns only the database configuration for tests.
func GetTestDatabaseConfig() *config.DatabaseConfig {
	cfg := GetTestConfig()
	return &cfg.Database
}

// MemoryConfig returns a configuration with an in-memory SQLite
// database.
func MemoryConfig(t *testing.T) *config.Config {
	t.Helper()
	cfg := config.New()
	cfg.Update([]config.Option{
		config.OptDatabaseDriver(config.DriverSQLite),
		config.OptDatabasePath(":memory:"),
		config.OptPopulateShowProgress(false),
		config.OptHomeDir(t.TempDir()),
	})
	return cfg
}

// MemoryOperator connects to an empty in-memory SQLite database that is
// closed at the end of the test.
func MemoryOperator(t *testing.T) db.Operator {
	t.Helper()
	op := iodb.NewSQLiteOperator()
	err := op.Connect(context.Background(), &MemoryConfig(t).Database)
	if err != nil {
		t.Fatalf("cannot open in-memory database: %s", err)
	}
	t.Cleanup(func() { op.Close() })
	return op
}

// SchemaOperator is MemoryOperator with all moviedb tables created.
func SchemaOperator(t *testing.T) db.Operator {
	t.Helper()
	op := MemoryOperator(t)
	err := ioschema.NewManager(op).Create(context.Background())
	if err != nil {
		t.Fatalf("cannot create schema: %s", err)
	}
	return op
}
