// Package mapper converts parsed dump fields into typed rows of a table.
package mapper

import (
	"strconv"
	"strings"

	"github.com/gnames/moviedb/pkg/dump"
	"github.com/gnames/moviedb/pkg/schema"
)

// Map converts tuples into rows for the given columns. Any tuple that
// has a wrong number of fields or a value of a wrong type fails the
// whole batch.
func Map(tuples []dump.Tuple, cols []schema.Column) ([]schema.Row, error) {
	res := make([]schema.Row, 0, len(tuples))
	for _, t := range tuples {
		row, err := MapTuple(t, cols)
		if err != nil {
			return nil, err
		}
		res = append(res, row)
	}
	return res, nil
}

// MapTuple converts one tuple into a row.
func MapTuple(t dump.Tuple, cols []schema.Column) (schema.Row, error) {
	if len(t.Fields) != len(cols) {
		return nil, &CardinalityError{
			Line: t.Line,
			Raw:  t.Raw,
			Want: len(cols),
			Got:  len(t.Fields),
		}
	}

	row := make(schema.Row, len(cols))
	for i, col := range cols {
		val, err := coerce(t.Fields[i], col)
		if err != nil {
			return nil, &CoercionError{
				Line:   t.Line,
				Column: col.Name,
				Kind:   col.Kind,
				Value:  t.Fields[i],
				Err:    err,
			}
		}
		row[i] = val
	}
	return row, nil
}

func coerce(s string, col schema.Column) (any, error) {
	if col.Kind == schema.KindString {
		return s, nil
	}

	s = strings.TrimSpace(s)
	if s == "" && col.Sentinel {
		if col.Kind == schema.KindFloat {
			return float64(schema.Sentinel), nil
		}
		return schema.Sentinel, nil
	}

	if col.Kind == schema.KindInt {
		return strconv.Atoi(s)
	}
	return strconv.ParseFloat(s, 64)
}
