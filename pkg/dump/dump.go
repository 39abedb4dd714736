// Package dump reads the text dumps of movies, people and their
// relationships and splits every line into fields.
//
// A Grammar knows the shape of one kind of line. Lines that do not fit
// the grammar are quarantined with the reason of the mismatch, so a
// single broken line never stops the processing of a dump.
package dump

import (
	"errors"
	"io"
)

// Grammar splits a line into fields. It returns *StructureError when the
// line does not have the expected shape.
type Grammar func(line string) ([]string, error)

// Tuple is a successfully parsed line.
type Tuple struct {
	// Line is the number of the line in the source, starting from 1.
	Line int
	// Raw is the decoded text of the line.
	Raw string
	// Fields are values in the order of the columns.
	Fields []string
}

// Quarantined is a line that could not be parsed.
type Quarantined struct {
	Line   int
	Raw    string
	Reason string
}

// Result of parsing a whole source.
type Result struct {
	Tuples      []Tuple
	Quarantined []Quarantined
}

// Parse reads all lines from r and applies the grammar to each of them.
// Lines with a wrong structure go to the quarantine, the error is only
// returned when the source cannot be read.
func Parse(r io.Reader, g Grammar, opts Options) (Result, error) {
	var res Result

	sc, err := NewScanner(r, opts)
	if err != nil {
		return res, err
	}

	for sc.Scan() {
		ln := sc.Line()
		fields, err := g(ln.Text)
		if err != nil {
			var se *StructureError
			if !errors.As(err, &se) {
				return res, err
			}
			se.Line = ln.Num
			se.Raw = ln.Text
			res.Quarantined = append(res.Quarantined, Quarantined{
				Line:   ln.Num,
				Raw:    ln.Text,
				Reason: se.Reason,
			})
			continue
		}
		res.Tuples = append(res.Tuples, Tuple{
			Line:   ln.Num,
			Raw:    ln.Text,
			Fields: fields,
		})
	}

	if err = sc.Err(); err != nil {
		return res, err
	}
	return res, nil
}
