package dump

import (
	"encoding/csv"
	"strings"
)

// movieMarker closes the year in parentheses at the end of a movie name
// and separates the name from the year column.
const movieMarker = "),"

// Movie parses lines like
//
//	1,Good, the Bad and the Ugly, The (1966),1966,8.9
//
// into id, name, year and rank. A name can contain commas, so the line is
// first split on the marker that ends the name. The closing parenthesis
// stays with the name. Rank can be empty.
func Movie(line string) ([]string, error) {
	line = strings.TrimSpace(line)

	switch n := strings.Count(line, movieMarker); n {
	case 1:
	case 0:
		return nil, structureError("movie line has no %q marker", movieMarker)
	default:
		return nil, structureError(
			"movie line has %d %q markers, expected one", n, movieMarker,
		)
	}

	head, tail, _ := strings.Cut(line, movieMarker)

	id, name, ok := strings.Cut(head, ",")
	if !ok {
		return nil, structureError("movie id is not separated from name")
	}

	year, rank, ok := strings.Cut(tail, ",")
	if !ok {
		return nil, structureError("movie year is not separated from rank")
	}

	return []string{id, name + ")", year, rank}, nil
}

// Cast parses lines like
//
//	pid,mid,role
//
// where the role can contain commas. Only the first two commas separate
// fields. Backslashes around the role are removed.
func Cast(line string) ([]string, error) {
	line = strings.TrimSpace(line)
	res := strings.SplitN(line, ",", 3)
	if len(res) != 3 {
		return nil, structureError(
			"cast line has %d fields, expected 3", len(res),
		)
	}
	res[2] = strings.Trim(res[2], `\`)
	return res, nil
}

// Columnar returns a grammar for plain comma-separated lines with
// exactly n fields. Fields can be quoted.
func Columnar(n int) Grammar {
	return func(line string) ([]string, error) {
		r := csv.NewReader(strings.NewReader(line))
		r.FieldsPerRecord = -1
		r.LazyQuotes = true
		res, err := r.Read()
		if err != nil {
			return nil, structureError("cannot split line: %s", err)
		}
		if len(res) != n {
			return nil, structureError(
				"line has %d fields, expected %d", len(res), n,
			)
		}
		return res, nil
	}
}
