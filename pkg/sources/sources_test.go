package sources_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/gnames/moviedb/pkg/sources"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefault(t *testing.T) {
	cfg := sources.Default()
	require.NoError(t, cfg.Validate())
	assert.Empty(t, cfg.Warnings)
	assert.True(t, cfg.Header)
	assert.Equal(t, "latin1", cfg.Encoding)
	assert.Equal(t, filepath.Join(".", "IMDBMovie.txt"), cfg.Path(sources.Movie))
	assert.Equal(t, "IMDBMovie_Directors.txt", cfg.Files[sources.MovieDirectors])
}

func TestKinds(t *testing.T) {
	assert.Equal(t, []sources.Kind{
		sources.Movie, sources.Person, sources.Director,
		sources.Cast, sources.MovieDirectors,
	}, sources.Kinds())
}

func TestValidate(t *testing.T) {
	t.Run("normalizes encoding", func(t *testing.T) {
		cfg := sources.Default()
		cfg.Encoding = "UTF-8"
		require.NoError(t, cfg.Validate())
		assert.Equal(t, "utf8", cfg.Encoding)
	})

	t.Run("rejects unknown encoding", func(t *testing.T) {
		cfg := sources.Default()
		cfg.Encoding = "ebcdic"
		assert.Error(t, cfg.Validate())
	})

	t.Run("requires every file", func(t *testing.T) {
		cfg := sources.Default()
		delete(cfg.Files, sources.Cast)
		err := cfg.Validate()
		require.Error(t, err)
		assert.Contains(t, err.Error(), "cast")
	})

	t.Run("warns about unknown kinds", func(t *testing.T) {
		cfg := sources.Default()
		cfg.Files["genre"] = "IMDBGenre.txt"
		require.NoError(t, cfg.Validate())
		require.Len(t, cfg.Warnings, 1)
		assert.Equal(t, "files.genre", cfg.Warnings[0].Field)
	})

	t.Run("empty dir means current directory", func(t *testing.T) {
		cfg := sources.Default()
		cfg.Dir = ""
		require.NoError(t, cfg.Validate())
		assert.Equal(t, ".", cfg.Dir)
	})
}

func TestPath(t *testing.T) {
	cfg := sources.Default()
	cfg.Dir = "/data/imdb"
	assert.Equal(t, "/data/imdb/IMDBCast.txt", cfg.Path(sources.Cast))

	cfg.Files[sources.Cast] = "/other/cast.txt"
	assert.Equal(t, "/other/cast.txt", cfg.Path(sources.Cast))

	home, err := os.UserHomeDir()
	require.NoError(t, err)
	cfg.Dir = "~/imdb"
	assert.Equal(t, filepath.Join(home, "imdb", "IMDBMovie.txt"),
		cfg.Path(sources.Movie))
}

func TestClone(t *testing.T) {
	cfg := sources.Default()
	res := cfg.Clone()
	res.Files[sources.Movie] = "movies.txt"
	assert.Equal(t, "IMDBMovie.txt", cfg.Files[sources.Movie])
}
