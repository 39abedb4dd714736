// Package ioload loads typed rows into the database.
//
// LoadTable puts a whole table in one transaction: either every row is
// stored or none. StagedLoad is used for relationship tables whose
// references may be missing. It copies rows into an unconstrained
// staging table, moves the rows with existing references to the final
// table and drops the staging table, all in one transaction.
package ioload

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"github.com/gnames/moviedb/pkg/db"
	"github.com/gnames/moviedb/pkg/schema"
)

// Loader loads tables through a database operator.
type Loader struct {
	op      db.Operator
	timeout time.Duration
}

// New creates a Loader. A positive timeout limits every load.
func New(op db.Operator, timeout time.Duration) *Loader {
	return &Loader{op: op, timeout: timeout}
}

// StagedStats summarizes a staged load.
type StagedStats struct {
	// Staged is the number of rows copied to the staging table.
	Staged int64
	// Migrated is the number of rows moved to the final table.
	Migrated int64
	// Dropped rows had at least one missing reference.
	Dropped int64
}

// LoadTable stores all rows in the table in one transaction. Nothing is
// stored if any row is rejected, and the error is *LoadError.
func (l *Loader) LoadTable(
	ctx context.Context,
	tbl schema.Table,
	rows []schema.Row,
) (int64, error) {
	ctx, cancel := l.withTimeout(ctx)
	defer cancel()

	tx, err := l.op.Begin(ctx)
	if err != nil {
		return 0, err
	}
	defer tx.Rollback(ctx)

	n, err := tx.CopyRows(ctx, tbl.Name, tbl.ColumnNames(), toValues(rows))
	if err != nil {
		return 0, newLoadError(tbl.Name, rows, err)
	}

	if err = tx.Commit(ctx); err != nil {
		return 0, newLoadError(tbl.Name, rows, err)
	}

	slog.Debug("Table is loaded", "table", tbl.Name, "rows", n)
	return n, nil
}

// StagedLoad stores the rows of a relation whose references exist and
// drops the rest. Dropped rows are counted, they are not an error.
// The staging table never outlives the call.
func (l *Loader) StagedLoad(
	ctx context.Context,
	rel schema.Relation,
	rows []schema.Row,
) (StagedStats, error) {
	var res StagedStats

	ctx, cancel := l.withTimeout(ctx)
	defer cancel()

	tx, err := l.op.Begin(ctx)
	if err != nil {
		return res, err
	}
	defer tx.Rollback(ctx)

	if _, err = tx.Exec(ctx, rel.StagingDDL()); err != nil {
		return res, &StageError{Stage: "create staging", Relation: rel, Err: err}
	}

	res.Staged, err = tx.CopyRows(
		ctx, rel.Staging, rel.Table.ColumnNames(), toValues(rows),
	)
	if err != nil {
		return StagedStats{}, newLoadError(rel.Staging, rows, err)
	}

	res.Migrated, err = tx.Exec(ctx, rel.MigrateSQL())
	if err != nil {
		return StagedStats{}, &StageError{Stage: "migrate", Relation: rel, Err: err}
	}

	if _, err = tx.Exec(ctx, rel.DropStagingSQL()); err != nil {
		return StagedStats{}, &StageError{Stage: "drop staging", Relation: rel, Err: err}
	}

	if err = tx.Commit(ctx); err != nil {
		return StagedStats{}, &StageError{Stage: "commit", Relation: rel, Err: err}
	}

	res.Dropped = res.Staged - res.Migrated
	if res.Dropped > 0 {
		slog.Warn("Rows with missing references are dropped",
			"table", rel.Table.Name,
			"staged", res.Staged,
			"migrated", res.Migrated,
			"dropped", res.Dropped,
		)
	}
	return res, nil
}

func (l *Loader) withTimeout(ctx context.Context) (context.Context, context.CancelFunc) {
	if l.timeout <= 0 {
		return context.WithCancel(ctx)
	}
	return context.WithTimeout(ctx, l.timeout)
}

func toValues(rows []schema.Row) [][]any {
	res := make([][]any, len(rows))
	for i := range rows {
		res[i] = rows[i]
	}
	return res
}

func newLoadError(table string, rows []schema.Row, err error) error {
	res := &LoadError{Table: table, Err: err}
	var re *db.RowError
	if errors.As(err, &re) && re.Index >= 0 && re.Index < len(rows) {
		res.RowNum = re.Index + 1
		res.Row = rows[re.Index]
	}
	return res
}
