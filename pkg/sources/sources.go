// Package sources describes where the dumps of movies, people and their
// relationships are located and how they are encoded.
//
// The description is kept in sources.yaml in the config directory:
//
//	dir: ~/data/imdb
//	encoding: latin1
//	header: true
//	files:
//	  movie: IMDBMovie.txt
//	  person: IMDBPerson.txt
//	  director: IMDBDirectors.txt
//	  cast: IMDBCast.txt
//	  movie_directors: IMDBMovie_Directors.txt
package sources

import (
	"maps"
	"os"
	"path/filepath"
	"strings"
)

type Sources interface {
	Load() (*SourcesConfig, error)
}

// Kind identifies one of the dumps.
type Kind string

const (
	Movie          Kind = "movie"
	Person         Kind = "person"
	Director       Kind = "director"
	Cast           Kind = "cast"
	MovieDirectors Kind = "movie_directors"
)

// Kinds returns all dumps in the order they have to be loaded.
func Kinds() []Kind {
	return []Kind{Movie, Person, Director, Cast, MovieDirectors}
}

// SourcesConfig represents the complete sources.yaml configuration file.
type SourcesConfig struct {
	// Dir is the directory with the dump files. It can start with "~".
	Dir string `yaml:"dir"`

	// Encoding of the dumps: latin1 or utf8.
	Encoding string `yaml:"encoding"`

	// Header is true when the first line of every dump has column names.
	Header bool `yaml:"header"`

	// Files maps a kind of dump to its file name. Relative names are
	// resolved against Dir.
	Files map[Kind]string `yaml:"files"`

	// Warnings holds non-fatal validation warnings (not serialized)
	Warnings []ValidationWarning `yaml:"-"`
}

// ValidationWarning represents a non-fatal configuration issue.
type ValidationWarning struct {
	Field      string // Field name that has the issue
	Message    string // Description of the issue
	Suggestion string // How to fix it
}

// Default returns the configuration of the IMDB dump set in the
// current directory.
func Default() *SourcesConfig {
	return &SourcesConfig{
		Dir:      ".",
		Encoding: "latin1",
		Header:   true,
		Files: map[Kind]string{
			Movie:          "IMDBMovie.txt",
			Person:         "IMDBPerson.txt",
			Director:       "IMDBDirectors.txt",
			Cast:           "IMDBCast.txt",
			MovieDirectors: "IMDBMovie_Directors.txt",
		},
	}
}

// Clone returns a copy that does not share the map of files.
func (c *SourcesConfig) Clone() *SourcesConfig {
	res := *c
	res.Files = maps.Clone(c.Files)
	res.Warnings = nil
	return &res
}

// Path returns the location of the dump of the given kind.
func (c *SourcesConfig) Path(k Kind) string {
	file := expandHome(c.Files[k])
	if filepath.IsAbs(file) {
		return file
	}
	return filepath.Join(expandHome(c.Dir), file)
}

func expandHome(path string) string {
	if path != "~" && !strings.HasPrefix(path, "~/") {
		return path
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return path
	}
	return filepath.Join(home, strings.TrimPrefix(path, "~"))
}
