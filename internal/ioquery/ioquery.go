// Package ioquery answers ranked queries about movies.
package ioquery

import (
	"context"
	"encoding/csv"
	"fmt"
	"io"
	"log/slog"

	"github.com/gnames/moviedb/pkg/db"
	"github.com/gnames/moviedb/pkg/lifecycle"
)

// Header is the column name of the CSV output.
const Header = "Best Movies"

type ranker struct {
	op db.Operator
}

// New creates a Ranker that reads movies through the operator.
func New(op db.Operator) lifecycle.Ranker {
	return &ranker{op: op}
}

// TopN returns names of the best ranked movies released from startYear
// to endYear inclusive. Movies with the same rank come in the order of
// their ids. An inverted range or a non-positive count give an empty
// result.
func (r *ranker) TopN(
	ctx context.Context,
	count, startYear, endYear int,
) ([]string, error) {
	if count <= 0 || startYear > endYear {
		return []string{}, nil
	}

	q := fmt.Sprintf(`
SELECT name
FROM movie
WHERE year >= %s AND year <= %s
ORDER BY rank DESC, id ASC
LIMIT %s`,
		r.op.Placeholder(1), r.op.Placeholder(2), r.op.Placeholder(3),
	)

	res, err := r.op.QueryStrings(ctx, q, startYear, endYear, count)
	if err != nil {
		return nil, TopNError(count, startYear, endYear, err)
	}
	if res == nil {
		res = []string{}
	}

	slog.Info("Best movies are found",
		"count", count,
		"start_year", startYear,
		"end_year", endYear,
		"found", len(res),
	)
	return res, nil
}

// WriteCSV writes movie names as a one-column CSV with ';' delimiter.
func WriteCSV(w io.Writer, names []string) error {
	cw := csv.NewWriter(w)
	cw.Comma = ';'

	if err := cw.Write([]string{Header}); err != nil {
		return err
	}
	for _, name := range names {
		if err := cw.Write([]string{name}); err != nil {
			return err
		}
	}
	cw.Flush()
	return cw.Error()
}
