package dump

import (
	"bufio"
	"io"
	"strings"

	"github.com/gnames/gnlib"
	"golang.org/x/text/encoding/charmap"
)

const (
	// Latin1 is the encoding of the IMDB dumps.
	Latin1 = "latin1"
	// UTF8 input gets invalid byte sequences replaced.
	UTF8 = "utf8"
)

// maxLineSize limits the length of a line in a dump.
const maxLineSize = 1024 * 1024

// Options of reading a source.
type Options struct {
	// Encoding is Latin1 or UTF8, empty means Latin1.
	Encoding string
	// Header is true if the first line of the source has column names.
	Header bool
}

// Line of a source. Num starts from 1 and counts the header and blank
// lines, so it always points to the physical line.
type Line struct {
	Num  int
	Text string
}

// Scanner reads decoded lines from a source, skipping the header and
// blank lines.
type Scanner struct {
	sc      *bufio.Scanner
	fixUTF8 bool
	header  bool
	num     int
	line    Line
}

// NewScanner creates a Scanner for r.
func NewScanner(r io.Reader, opts Options) (*Scanner, error) {
	res := Scanner{header: opts.Header}

	switch NormalizeEncoding(opts.Encoding) {
	case Latin1:
		r = charmap.ISO8859_1.NewDecoder().Reader(r)
	case UTF8:
		res.fixUTF8 = true
	default:
		return nil, &EncodingError{Encoding: opts.Encoding}
	}

	res.sc = bufio.NewScanner(r)
	res.sc.Buffer(make([]byte, 64*1024), maxLineSize)
	return &res, nil
}

// Scan advances to the next data line.
func (s *Scanner) Scan() bool {
	for s.sc.Scan() {
		s.num++
		if s.header && s.num == 1 {
			continue
		}
		text := strings.TrimRight(s.sc.Text(), "\r")
		if strings.TrimSpace(text) == "" {
			continue
		}
		if s.fixUTF8 {
			text = gnlib.FixUtf8(text)
		}
		s.line = Line{Num: s.num, Text: text}
		return true
	}
	return false
}

// Line returns the current line.
func (s *Scanner) Line() Line {
	return s.line
}

// Err returns the first non-EOF error of reading.
func (s *Scanner) Err() error {
	return s.sc.Err()
}

// NormalizeEncoding converts common spellings of supported encodings to
// Latin1 or UTF8. Unknown encodings are returned lowercased.
func NormalizeEncoding(s string) string {
	s = strings.ToLower(strings.TrimSpace(s))
	switch s {
	case "", "latin1", "latin-1", "iso-8859-1", "iso8859-1":
		return Latin1
	case "utf8", "utf-8":
		return UTF8
	default:
		return s
	}
}
