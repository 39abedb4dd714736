package schema

import (
	"fmt"
	"reflect"
	"strings"
)

// Kind is the value type of a column.
type Kind int

const (
	KindString Kind = iota
	KindInt
	KindFloat
)

// String returns the name of the kind.
func (k Kind) String() string {
	switch k {
	case KindInt:
		return "int"
	case KindFloat:
		return "float"
	default:
		return "string"
	}
}

// Sentinel is stored in numeric columns flagged as sentinel when the
// source value is missing.
const Sentinel = -1

// Reference points to the column of another table.
type Reference struct {
	Table  string
	Column string
}

// Column describes one column of a table.
type Column struct {
	Name     string
	Kind     Kind
	DDL      string
	Sentinel bool
	Ref      *Reference
}

// Row is a record with values in the column order of its table.
// Values are int, float64 or string according to the column kind.
type Row []any

// Table describes a table as a list of columns.
type Table struct {
	Name    string
	Columns []Column
}

// TableOf builds the table descriptor of a model.
func TableOf(m DDLGenerator) Table {
	return Table{Name: m.TableName(), Columns: columnsOf(m)}
}

// ColumnNames returns names of the columns in their order.
func (t Table) ColumnNames() []string {
	res := make([]string, len(t.Columns))
	for i, c := range t.Columns {
		res[i] = c.Name
	}
	return res
}

// References returns the columns that point to other tables.
func (t Table) References() []Column {
	var res []Column
	for _, c := range t.Columns {
		if c.Ref != nil {
			res = append(res, c)
		}
	}
	return res
}

// Relation is a table that is filled through a staging table, so that
// rows with unresolved references are dropped instead of failing the load.
type Relation struct {
	Table   Table
	Staging string
}

// StagingDDL creates the staging table with the columns of the final
// table and without foreign keys.
func (r Relation) StagingDDL() string {
	return generateDDL(r.Table.Columns, r.Staging, false)
}

// MigrateSQL copies rows whose references all exist from the staging
// table to the final table.
func (r Relation) MigrateSQL() string {
	cols := r.Table.ColumnNames()
	sel := make([]string, len(cols))
	for i, c := range cols {
		sel[i] = "s." + c
	}

	var conds []string
	for i, c := range r.Table.References() {
		alias := fmt.Sprintf("r%d", i)
		conds = append(conds, fmt.Sprintf(
			"EXISTS (SELECT 1 FROM %s %s WHERE %s.%s = s.%s)",
			c.Ref.Table, alias, alias, c.Ref.Column, c.Name,
		))
	}

	res := fmt.Sprintf("INSERT INTO %s (%s)\nSELECT %s\nFROM %s s",
		r.Table.Name,
		strings.Join(cols, ", "),
		strings.Join(sel, ", "),
		r.Staging,
	)
	if len(conds) > 0 {
		res += "\nWHERE " + strings.Join(conds, "\n  AND ")
	}
	return res
}

// DropStagingSQL removes the staging table.
func (r Relation) DropStagingSQL() string {
	return "DROP TABLE " + r.Staging
}

// columnsOf reads column descriptors from struct tags of a model.
// Fields without a `db` tag are skipped.
func columnsOf(model any) []Column {
	v := reflect.ValueOf(model)
	if v.Kind() == reflect.Ptr {
		v = v.Elem()
	}
	t := v.Type()

	var res []Column
	for i := 0; i < t.NumField(); i++ {
		field := t.Field(i)
		name := field.Tag.Get("db")
		if name == "" || name == "-" {
			continue
		}
		col := Column{
			Name:     name,
			Kind:     kindOf(field.Type),
			DDL:      field.Tag.Get("ddl"),
			Sentinel: field.Tag.Get("sentinel") == "true",
			Ref:      parseRef(field.Tag.Get("fk")),
		}
		res = append(res, col)
	}
	return res
}

func kindOf(t reflect.Type) Kind {
	switch t.Kind() {
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return KindInt
	case reflect.Float32, reflect.Float64:
		return KindFloat
	default:
		return KindString
	}
}

// parseRef reads "table(column)".
func parseRef(s string) *Reference {
	tbl, col, ok := strings.Cut(s, "(")
	if !ok {
		return nil
	}
	return &Reference{
		Table:  strings.TrimSpace(tbl),
		Column: strings.TrimSpace(strings.TrimSuffix(col, ")")),
	}
}
