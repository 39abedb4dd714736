package ioquery_test

import (
	"bytes"
	"context"
	"testing"

	"github.com/gnames/gn"
	"github.com/gnames/moviedb/internal/ioload"
	"github.com/gnames/moviedb/internal/ioquery"
	"github.com/gnames/moviedb/internal/iotesting"
	"github.com/gnames/moviedb/pkg/errcode"
	"github.com/gnames/moviedb/pkg/lifecycle"
	"github.com/gnames/moviedb/pkg/schema"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func fixture(t *testing.T) lifecycle.Ranker {
	t.Helper()
	op := iotesting.SchemaOperator(t)
	_, err := ioload.New(op, 0).LoadTable(
		context.Background(),
		schema.MovieTable,
		[]schema.Row{
			{1, "A (2000)", 2000, 7.0},
			{2, "B (2005)", 2005, 9.1},
			{3, "C (2010)", 2010, 8.0},
			{4, "D (2011)", 2011, 9.9},
			{5, "E (2003)", 2003, 8.0},
			{6, "F (2007)", 2007, -1.0},
		},
	)
	require.NoError(t, err)
	return ioquery.New(op)
}

func TestTopN(t *testing.T) {
	ctx := context.Background()
	r := fixture(t)

	tests := []struct {
		msg               string
		count, start, end int
		res               []string
	}{
		{
			msg:   "ties broken by id",
			count: 3, start: 2000, end: 2010,
			res: []string{"B (2005)", "C (2010)", "E (2003)"},
		},
		{
			msg:   "inclusive bounds",
			count: 10, start: 2010, end: 2011,
			res: []string{"D (2011)", "C (2010)"},
		},
		{
			msg:   "unranked movies come last",
			count: 10, start: 2007, end: 2007,
			res: []string{"F (2007)"},
		},
		{
			msg:   "inverted range",
			count: 5, start: 2020, end: 2010,
			res: []string{},
		},
		{
			msg:   "zero count",
			count: 0, start: 2000, end: 2010,
			res: []string{},
		},
		{
			msg:   "no movies in range",
			count: 5, start: 1900, end: 1950,
			res: []string{},
		},
	}

	for _, v := range tests {
		t.Run(v.msg, func(t *testing.T) {
			res, err := r.TopN(ctx, v.count, v.start, v.end)
			require.NoError(t, err)
			assert.Equal(t, v.res, res)
		})
	}
}

func TestTopNWithoutSchema(t *testing.T) {
	r := ioquery.New(iotesting.MemoryOperator(t))
	_, err := r.TopN(context.Background(), 3, 2000, 2010)
	require.Error(t, err)

	gnErr, ok := err.(*gn.Error)
	require.True(t, ok)
	assert.Equal(t, errcode.QueryTopNError, gnErr.Code)
}

func TestWriteCSV(t *testing.T) {
	var buf bytes.Buffer
	err := ioquery.WriteCSV(&buf, []string{
		"Aliens (1986)",
		"Good, the Bad and the Ugly, The (1966)",
		"Semi;colon (2001)",
	})
	require.NoError(t, err)
	assert.Equal(t,
		"Best Movies\n"+
			"Aliens (1986)\n"+
			"Good, the Bad and the Ugly, The (1966)\n"+
			"\"Semi;colon (2001)\"\n",
		buf.String(),
	)

	buf.Reset()
	require.NoError(t, ioquery.WriteCSV(&buf, nil))
	assert.Equal(t, "Best Movies\n", buf.String())
}
