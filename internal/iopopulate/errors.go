package iopopulate

import (
	"errors"
	"fmt"

	"github.com/gnames/gn"
	"github.com/gnames/moviedb/internal/ioload"
	"github.com/gnames/moviedb/pkg/errcode"
	"github.com/gnames/moviedb/pkg/mapper"
	"github.com/gnames/moviedb/pkg/sources"
)

// EmptyDatabaseError creates an error for when populate runs before
// the schema is created.
func EmptyDatabaseError() error {
	msg := `Database has no tables

<em>How to fix:</em>
  Run 'moviedb create' first`

	return &gn.Error{
		Code: errcode.DBEmptyDatabaseError,
		Msg:  msg,
		Vars: nil,
		Err:  errors.New("database schema does not exist"),
	}
}

// SourceNotFoundError creates an error for when a dump file does
// not exist.
func SourceNotFoundError(kind sources.Kind, path string, err error) error {
	msg := `Dump file for <em>%s</em> not found

<em>File path:</em> %s

<em>How to fix:</em>
  1. Check 'dir' and 'files' in sources.yaml
  2. Use 'moviedb populate --dir DIR' to point to the dumps`

	vars := []any{kind, path}

	return &gn.Error{
		Code: errcode.PopulateSourceNotFoundError,
		Msg:  msg,
		Vars: vars,
		Err:  fmt.Errorf("dump file not found: %w", err),
	}
}

// SourceReadError creates an error for when a dump cannot be read
// to the end.
func SourceReadError(kind sources.Kind, path string, err error) error {
	msg := `Cannot read dump <em>%s</em> from %s

<em>Possible causes:</em>
  - Wrong encoding in sources.yaml
  - File is truncated or unreadable`

	vars := []any{kind, path}

	return &gn.Error{
		Code: errcode.PopulateSourceReadError,
		Msg:  msg,
		Vars: vars,
		Err:  fmt.Errorf("failed to read dump: %w", err),
	}
}

// MapError creates an error for a parsed line that does not convert
// to a row of its table.
func MapError(kind sources.Kind, path string, err error) error {
	var ce *mapper.CoercionError
	if errors.As(err, &ce) {
		msg := `Line <em>%d</em> of %s: value '%s' of column <em>%s</em> is not %s

<em>File path:</em> %s`
		vars := []any{ce.Line, kind, ce.Value, ce.Column, ce.Kind, path}
		return &gn.Error{
			Code: errcode.MapCoercionError,
			Msg:  msg,
			Vars: vars,
			Err:  fmt.Errorf("failed to map %s: %w", kind, err),
		}
	}

	var cde *mapper.CardinalityError
	if errors.As(err, &cde) {
		msg := `Line <em>%d</em> of %s has %d fields, expected %d

<em>File path:</em> %s`
		vars := []any{cde.Line, kind, cde.Got, cde.Want, path}
		return &gn.Error{
			Code: errcode.MapCardinalityError,
			Msg:  msg,
			Vars: vars,
			Err:  fmt.Errorf("failed to map %s: %w", kind, err),
		}
	}

	return &gn.Error{
		Code: errcode.UnknownError,
		Msg:  "Cannot convert <em>%s</em> into rows",
		Vars: []any{kind},
		Err:  fmt.Errorf("failed to map %s: %w", kind, err),
	}
}

// LoadTableError creates an error for a table that was rejected by
// the database. Nothing from the table is stored.
func LoadTableError(table string, err error) error {
	msg := `Cannot load table <em>%s</em>, no rows were stored`
	vars := []any{table}

	var le *ioload.LoadError
	if errors.As(err, &le) && le.RowNum > 0 {
		msg = `Cannot load table <em>%s</em>, no rows were stored

<em>Rejected row %d:</em> %v`
		vars = append(vars, le.RowNum, le.Row)
	}

	return &gn.Error{
		Code: errcode.LoadTableError,
		Msg:  msg,
		Vars: vars,
		Err:  fmt.Errorf("failed to load %s: %w", table, err),
	}
}

// LoadStagedError creates an error for a failed staged load of a
// relationship table.
func LoadStagedError(table string, err error) error {
	msg := `Cannot load relationship table <em>%s</em>, no rows were stored`
	vars := []any{table}

	var se *ioload.StageError
	if errors.As(err, &se) {
		msg = `Cannot load relationship table <em>%s</em> at <em>%s</em>, no rows were stored`
		vars = append(vars, se.Stage)
	}

	return &gn.Error{
		Code: errcode.LoadStagedError,
		Msg:  msg,
		Vars: vars,
		Err:  fmt.Errorf("failed staged load of %s: %w", table, err),
	}
}

// QuarantineError creates an error for when the report of quarantined
// lines cannot be written.
func QuarantineError(path string, err error) error {
	msg := "Cannot write quarantine report <em>%s</em>"
	vars := []any{path}

	return &gn.Error{
		Code: errcode.PopulateQuarantineError,
		Msg:  msg,
		Vars: vars,
		Err:  fmt.Errorf("cannot write quarantine report: %w", err),
	}
}

// CancelledError creates an error for when populate
// operation is cancelled.
func CancelledError(err error) error {
	msg := "Population operation was cancelled"

	return &gn.Error{
		Code: errcode.UnknownError,
		Msg:  msg,
		Vars: nil,
		Err:  fmt.Errorf("population cancelled: %w", err),
	}
}
