package lifecycle_test

import (
	"testing"

	"github.com/gnames/moviedb/internal/iodb"
	"github.com/gnames/moviedb/internal/iopopulate"
	"github.com/gnames/moviedb/internal/ioquery"
	"github.com/gnames/moviedb/internal/ioschema"
	"github.com/gnames/moviedb/pkg/config"
	"github.com/gnames/moviedb/pkg/lifecycle"
	"github.com/stretchr/testify/assert"
)

// TestContracts ensures that the I/O implementations satisfy
// lifecycle interfaces.
func TestContracts(t *testing.T) {
	op := iodb.NewSQLiteOperator()
	cfg := config.New()

	var sm lifecycle.SchemaManager = ioschema.NewManager(op)
	var pop lifecycle.Populator = iopopulate.New(cfg, op)
	var rk lifecycle.Ranker = ioquery.New(op)

	assert.NotNil(t, sm)
	assert.NotNil(t, pop)
	assert.NotNil(t, rk)
}
