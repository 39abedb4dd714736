package schema_test

import (
	"strings"
	"testing"

	"github.com/gnames/moviedb/pkg/schema"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestMovieTableDDL tests DDL generation for Movie model
func TestMovieTableDDL(t *testing.T) {
	ddl := schema.Movie{}.TableDDL()

	assert.Contains(t, ddl, "CREATE TABLE movie (")
	assert.Contains(t, ddl, "id INT NOT NULL PRIMARY KEY")
	assert.Contains(t, ddl, "name VARCHAR(256)")
	assert.Contains(t, ddl, "year INT")
	assert.Contains(t, ddl, "rank FLOAT")
	assert.NotContains(t, ddl, "FOREIGN KEY")
}

// TestRelationTableDDL tests foreign keys of relationship tables
func TestRelationTableDDL(t *testing.T) {
	ddl := schema.ActsIn{}.TableDDL()
	assert.Contains(t, ddl, "CREATE TABLE actsin (")
	assert.Contains(t, ddl, "role VARCHAR(128)")
	assert.Contains(t, ddl, "FOREIGN KEY (pid) REFERENCES person(id)")
	assert.Contains(t, ddl, "FOREIGN KEY (mid) REFERENCES movie(id)")

	ddl = schema.Directs{}.TableDDL()
	assert.Contains(t, ddl, "FOREIGN KEY (did) REFERENCES director(id)")
	assert.Contains(t, ddl, "FOREIGN KEY (mid) REFERENCES movie(id)")
}

func TestTableNames(t *testing.T) {
	var names []string
	for _, m := range schema.Models() {
		names = append(names, m.TableName())
	}
	assert.Equal(t,
		[]string{"movie", "person", "director", "actsin", "directs"},
		names,
	)
	assert.Len(t, schema.AllModels(), len(names))
}

func TestTableOf(t *testing.T) {
	tbl := schema.MovieTable
	assert.Equal(t, "movie", tbl.Name)
	assert.Equal(t, []string{"id", "name", "year", "rank"}, tbl.ColumnNames())

	kinds := []schema.Kind{
		schema.KindInt, schema.KindString, schema.KindInt, schema.KindFloat,
	}
	for i, c := range tbl.Columns {
		assert.Equal(t, kinds[i], c.Kind, c.Name)
		assert.Equal(t, c.Name == "rank", c.Sentinel, c.Name)
		assert.Nil(t, c.Ref, c.Name)
	}

	assert.Equal(t, []string{"id", "fname", "lname", "gender"},
		schema.PersonTable.ColumnNames())
	assert.Equal(t, []string{"id", "fname", "lname"},
		schema.DirectorTable.ColumnNames())
	assert.Equal(t, []string{"pid", "mid", "role"},
		schema.ActsInTable.ColumnNames())
}

func TestReferences(t *testing.T) {
	refs := schema.DirectsTable.References()
	require.Len(t, refs, 2)
	assert.Equal(t, "did", refs[0].Name)
	assert.Equal(t, schema.Reference{Table: "director", Column: "id"}, *refs[0].Ref)
	assert.Equal(t, "mid", refs[1].Name)
	assert.Equal(t, schema.Reference{Table: "movie", Column: "id"}, *refs[1].Ref)

	assert.Empty(t, schema.MovieTable.References())
}

func TestRelation(t *testing.T) {
	rel := schema.DirectsRelation

	t.Run("staging table has no foreign keys", func(t *testing.T) {
		ddl := rel.StagingDDL()
		assert.Contains(t, ddl, "CREATE TABLE temp_directs (")
		assert.Contains(t, ddl, "did INT NOT NULL")
		assert.Contains(t, ddl, "mid INT NOT NULL")
		assert.NotContains(t, ddl, "FOREIGN KEY")
	})

	t.Run("migration checks every reference", func(t *testing.T) {
		sql := rel.MigrateSQL()
		assert.True(t, strings.HasPrefix(sql,
			"INSERT INTO directs (did, mid)\nSELECT s.did, s.mid\nFROM temp_directs s"))
		assert.Contains(t, sql,
			"EXISTS (SELECT 1 FROM director r0 WHERE r0.id = s.did)")
		assert.Contains(t, sql,
			"AND EXISTS (SELECT 1 FROM movie r1 WHERE r1.id = s.mid)")
	})

	t.Run("relation without references copies everything", func(t *testing.T) {
		r := schema.Relation{Table: schema.MovieTable, Staging: "temp_movie"}
		assert.NotContains(t, r.MigrateSQL(), "WHERE")
	})

	assert.Equal(t, "DROP TABLE temp_directs", rel.DropStagingSQL())
}

func TestIndexDDL(t *testing.T) {
	idx := strings.Join(schema.Movie{}.IndexDDL(), "\n")
	assert.Contains(t, idx, "ON movie(year, rank)")
	assert.Empty(t, schema.Person{}.IndexDDL())
}
