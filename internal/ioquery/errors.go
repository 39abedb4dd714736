package ioquery

import (
	"fmt"

	"github.com/gnames/gn"
	"github.com/gnames/moviedb/pkg/errcode"
)

// TopNError is returned when the ranked query fails.
func TopNError(count, startYear, endYear int, err error) error {
	msg := `Cannot find <em>%d</em> best movies from %d to %d

<em>Possible causes:</em>
  • The database is not created yet
  • The database is not populated

<em>How to fix:</em>
  <em>moviedb create</em>
  <em>moviedb populate</em>`
	vars := []any{count, startYear, endYear}
	return &gn.Error{
		Code: errcode.QueryTopNError,
		Msg:  msg,
		Vars: vars,
		Err:  fmt.Errorf("top %d movies %d-%d: %w", count, startYear, endYear, err),
	}
}

// OutputError is returned when the result cannot be saved.
func OutputError(path string, err error) error {
	msg := "Cannot save the result to <em>%s</em>"
	vars := []any{path}
	return &gn.Error{
		Code: errcode.QueryOutputError,
		Msg:  msg,
		Vars: vars,
		Err:  fmt.Errorf("cannot write %s: %w", path, err),
	}
}
