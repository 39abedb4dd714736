package ioload

import (
	"fmt"

	"github.com/gnames/moviedb/pkg/schema"
)

// LoadError means that the database rejected a table load. Nothing from
// the batch is stored.
type LoadError struct {
	Table string
	// RowNum is the position of the rejected row in the batch starting
	// from 1, or 0 when the database does not tell.
	RowNum int
	// Row is the rejected row, if known.
	Row schema.Row
	Err error
}

func (e *LoadError) Error() string {
	if e.RowNum > 0 {
		return fmt.Sprintf("cannot load table '%s', row %d %v: %s",
			e.Table, e.RowNum, e.Row, e.Err)
	}
	return fmt.Sprintf("cannot load table '%s': %s", e.Table, e.Err)
}

func (e *LoadError) Unwrap() error {
	return e.Err
}

// StageError is a failure of a staged load step other than copying.
type StageError struct {
	Stage    string
	Relation schema.Relation
	Err      error
}

func (e *StageError) Error() string {
	return fmt.Sprintf("staged load of '%s' failed at %s: %s",
		e.Relation.Table.Name, e.Stage, e.Err)
}

func (e *StageError) Unwrap() error {
	return e.Err
}
