package cmd

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/gnames/moviedb/internal/iodb"
	"github.com/gnames/moviedb/internal/iotesting"
	"github.com/gnames/moviedb/pkg/config"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestGetPopulateCmd_Exists verifies getPopulateCmd returns
// a valid command.
func TestGetPopulateCmd_Exists(t *testing.T) {
	cmd := getPopulateCmd()
	require.NotNil(t, cmd, "Populate command should exist")
	assert.Equal(t, "populate", cmd.Use,
		"Command name should be populate")
}

// TestGetPopulateCmd_Descriptions verifies short and long
// descriptions.
func TestGetPopulateCmd_Descriptions(t *testing.T) {
	cmd := getPopulateCmd()

	assert.Contains(t, cmd.Short, "movie",
		"Short description should mention movies")
	assert.Contains(t, cmd.Long, "sources.yaml",
		"Long description should mention config")
	assert.Contains(t, cmd.Long, "quarantine.csv",
		"Long description should mention quarantine report")
	assert.Contains(t, cmd.Long, "staging table",
		"Long description should mention staging")
}

// TestGetPopulateCmd_Flags verifies populate flags.
func TestGetPopulateCmd_Flags(t *testing.T) {
	cmd := getPopulateCmd()

	flag := cmd.Flags().Lookup("dir")
	require.NotNil(t, flag, "--dir flag should exist")
	assert.Equal(t, "d", flag.Shorthand)
	assert.Contains(t, flag.Usage, "directory")

	flag = cmd.Flags().Lookup("no-progress")
	require.NotNil(t, flag, "--no-progress flag should exist")
	assert.Equal(t, "q", flag.Shorthand)
	assert.Equal(t, "false", flag.DefValue)
}

// TestGetPopulateCmd_IndependentInstances verifies each
// call returns independent instance.
func TestGetPopulateCmd_IndependentInstances(t *testing.T) {
	cmd1 := getPopulateCmd()
	cmd2 := getPopulateCmd()

	assert.NotSame(t, cmd1, cmd2,
		"Each call should return new instance")
}

// Integration Tests

var testDumps = map[string]string{
	"IMDBMovie.txt": "id,name,year,rank\n" +
		"1,Good, the Bad and the Ugly, The (1966),1966,8.9\n" +
		"2,Am\xe9lie (2001),2001,8.5\n" +
		"3,Heat (1995),1995,8.2\n" +
		"4,Unrated (2004),2004,\n",
	"IMDBPerson.txt": "id,fname,lname,gender\n" +
		"1,Clint,Eastwood,M\n",
	"IMDBDirectors.txt": "id,fname,lname\n" +
		"10,Sergio,Leone\n",
	"IMDBCast.txt": "pid,mid,role\n" +
		"1,1,Blondie, the Man with No Name\n",
	"IMDBMovie_Directors.txt": "did,mid\n" +
		"10,1\n" +
		"11,2\n",
}

// sqliteConfig points the global configuration to a SQLite file and
// returns a directory with the dumps.
func sqliteConfig(t *testing.T) string {
	t.Helper()
	tmp := t.TempDir()

	dumpDir := filepath.Join(tmp, "dumps")
	require.NoError(t, os.MkdirAll(dumpDir, 0o755))
	for k, v := range testDumps {
		err := os.WriteFile(filepath.Join(dumpDir, k), []byte(v), 0o644)
		require.NoError(t, err)
	}

	orig := cfg
	t.Cleanup(func() { cfg = orig })

	cfg = iotesting.MemoryConfig(t)
	cfg.Update([]config.Option{
		config.OptDatabasePath(filepath.Join(tmp, "movies.sqlite")),
	})
	return dumpDir
}

// TestCommands_EndToEnd runs create, populate and top against a
// SQLite database.
func TestCommands_EndToEnd(t *testing.T) {
	dumpDir := sqliteConfig(t)
	ctx := context.Background()

	create := getCreateCmd()
	create.SetArgs([]string{})
	require.NoError(t, create.Execute())

	populate := getPopulateCmd()
	populate.SetArgs([]string{"--dir", dumpDir, "-q"})
	require.NoError(t, populate.Execute())
	assert.Equal(t, dumpDir, cfg.Populate.Dir)
	assert.False(t, cfg.Populate.ShowProgress)

	op := iodb.NewSQLiteOperator()
	require.NoError(t, op.Connect(ctx, &cfg.Database))
	n, err := op.Count(ctx, "directs")
	require.NoError(t, err)
	assert.Equal(t, int64(1), n, "link to missing director is dropped")
	require.NoError(t, op.Close())

	out := filepath.Join(t.TempDir(), "best.csv")
	top := getTopCmd()
	buf := new(bytes.Buffer)
	top.SetOut(buf)
	top.SetArgs([]string{"2", "1960", "2010", "-o", out})
	require.NoError(t, top.Execute())

	assert.Contains(t, buf.String(),
		"1. Good, the Bad and the Ugly, The (1966)")
	assert.Contains(t, buf.String(), "2. Amélie (2001)")
	assert.NotContains(t, buf.String(), "Heat")

	data, err := os.ReadFile(out)
	require.NoError(t, err)
	assert.Equal(t,
		"Best Movies\nGood, the Bad and the Ugly, The (1966)\nAmélie (2001)\n",
		string(data))

	// a second create with --force starts from an empty schema
	create = getCreateCmd()
	create.SetArgs([]string{"--force"})
	require.NoError(t, create.Execute())

	op = iodb.NewSQLiteOperator()
	require.NoError(t, op.Connect(ctx, &cfg.Database))
	defer op.Close()
	n, err = op.Count(ctx, "movie")
	require.NoError(t, err)
	assert.Equal(t, int64(0), n)
}

// TestPopulate_EmptyDatabase verifies that populate requires a schema.
func TestPopulate_EmptyDatabase(t *testing.T) {
	dumpDir := sqliteConfig(t)

	populate := getPopulateCmd()
	populate.SetArgs([]string{"--dir", dumpDir, "-q"})
	assert.Error(t, populate.Execute())
}
