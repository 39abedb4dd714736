package cmd

import (
	"fmt"
	"strings"

	"github.com/gnames/gn"
	"github.com/gnames/moviedb/pkg/errcode"
)

// TopArgsError is returned when the arguments of the top command are
// not three integers.
func TopArgsError(args []string, err error) error {
	msg := `Cannot use <em>%s</em> as COUNT START END

<em>Example:</em>
  moviedb top 10 1990 2000`
	vars := []any{strings.Join(args, " ")}

	return &gn.Error{
		Code: errcode.QueryArgsError,
		Msg:  msg,
		Vars: vars,
		Err:  fmt.Errorf("invalid top arguments %v: %w", args, err),
	}
}
