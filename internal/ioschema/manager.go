// Package ioschema implements SchemaManager interface for
// database schema management. This is an impure I/O package
// that wraps GORM AutoMigrate functionality for PostgreSQL and
// runs generated DDL for SQLite.
package ioschema

import (
	"context"
	"log/slog"

	"github.com/gnames/moviedb/pkg/config"
	"github.com/gnames/moviedb/pkg/db"
	"github.com/gnames/moviedb/pkg/lifecycle"
	"github.com/gnames/moviedb/pkg/schema"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// manager implements the lifecycle.SchemaManager interface.
type manager struct {
	operator db.Operator
}

// NewManager creates a new SchemaManager.
func NewManager(op db.Operator) lifecycle.SchemaManager {
	return &manager{operator: op}
}

// Create creates tables, foreign keys and indexes.
func (m *manager) Create(ctx context.Context) error {
	var err error
	switch m.operator.Driver() {
	case config.DriverPostgres:
		err = m.migrate(ctx)
	default:
		err = m.createDDL(ctx)
	}
	if err != nil {
		return err
	}

	if err = m.createIndexes(ctx); err != nil {
		return err
	}

	slog.Info("Schema is created",
		"driver", m.operator.Driver(),
		"tables", len(schema.Models()),
	)
	return nil
}

// migrate uses GORM AutoMigrate to create the schema.
func (m *manager) migrate(ctx context.Context) error {
	sqlDB, err := m.operator.SQL()
	if err != nil {
		return NotConnectedError()
	}

	gormDB, err := gorm.Open(
		postgres.New(postgres.Config{Conn: sqlDB}),
		&gorm.Config{Logger: logger.Default.LogMode(logger.Silent)},
	)
	if err != nil {
		return GORMConnectionError(err)
	}

	if err := schema.Migrate(gormDB.WithContext(ctx)); err != nil {
		return CreateSchemaError(err)
	}
	return nil
}

// createDDL runs CREATE TABLE statements generated from the models in
// one transaction.
func (m *manager) createDDL(ctx context.Context) error {
	tx, err := m.operator.Begin(ctx)
	if err != nil {
		return NotConnectedError()
	}
	defer tx.Rollback(ctx)

	for _, model := range schema.Models() {
		if _, err := tx.Exec(ctx, model.TableDDL()); err != nil {
			return CreateTableError(model.TableName(), err)
		}
	}

	if err := tx.Commit(ctx); err != nil {
		return CreateSchemaError(err)
	}
	return nil
}

func (m *manager) createIndexes(ctx context.Context) error {
	tx, err := m.operator.Begin(ctx)
	if err != nil {
		return NotConnectedError()
	}
	defer tx.Rollback(ctx)

	for _, model := range schema.Models() {
		for _, idx := range model.IndexDDL() {
			if _, err := tx.Exec(ctx, idx); err != nil {
				return CreateTableError(model.TableName(), err)
			}
		}
	}

	if err := tx.Commit(ctx); err != nil {
		return CreateSchemaError(err)
	}
	return nil
}
