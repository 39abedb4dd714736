package schema

import (
	"fmt"
	"strings"
)

// generateDDL creates a CREATE TABLE statement from column descriptors.
// Foreign key clauses are added only if withFK is true.
func generateDDL(cols []Column, tableName string, withFK bool) string {
	var lines []string

	for _, c := range cols {
		lines = append(lines, fmt.Sprintf("    %s %s", c.Name, c.DDL))
	}

	if withFK {
		for _, c := range cols {
			if c.Ref == nil {
				continue
			}
			lines = append(lines, fmt.Sprintf(
				"    FOREIGN KEY (%s) REFERENCES %s(%s)",
				c.Name, c.Ref.Table, c.Ref.Column,
			))
		}
	}

	ddl := fmt.Sprintf("CREATE TABLE %s (\n%s\n);",
		tableName,
		strings.Join(lines, ",\n"))

	return ddl
}

// Movie DDL methods
func (m Movie) TableDDL() string {
	return generateDDL(columnsOf(m), m.TableName(), true)
}

func (m Movie) IndexDDL() []string {
	return []string{
		"CREATE INDEX idx_movie_year_rank ON movie(year, rank);",
	}
}

func (m Movie) TableName() string {
	return "movie"
}

// Person DDL methods
func (p Person) TableDDL() string {
	return generateDDL(columnsOf(p), p.TableName(), true)
}

func (p Person) IndexDDL() []string {
	return []string{}
}

func (p Person) TableName() string {
	return "person"
}

// Director DDL methods
func (d Director) TableDDL() string {
	return generateDDL(columnsOf(d), d.TableName(), true)
}

func (d Director) IndexDDL() []string {
	return []string{}
}

func (d Director) TableName() string {
	return "director"
}

// ActsIn DDL methods
func (a ActsIn) TableDDL() string {
	return generateDDL(columnsOf(a), a.TableName(), true)
}

func (a ActsIn) IndexDDL() []string {
	return []string{
		"CREATE INDEX idx_actsin_mid ON actsin(mid);",
	}
}

func (a ActsIn) TableName() string {
	return "actsin"
}

// Directs DDL methods
func (d Directs) TableDDL() string {
	return generateDDL(columnsOf(d), d.TableName(), true)
}

func (d Directs) IndexDDL() []string {
	return []string{
		"CREATE INDEX idx_directs_mid ON directs(mid);",
	}
}

func (d Directs) TableName() string {
	return "directs"
}
