// Package schema provides the relational model of moviedb.
//
// Tables are described by Go structs. The `db` tag names a column,
// `ddl` gives its SQL type and constraints, `fk` points to a referenced
// `table(column)`, and `sentinel:"true"` marks a numeric column where a
// missing value is stored as -1. The `gorm` tags describe the same
// layout for GORM AutoMigrate.
package schema

// DDLGenerator defines how Go models generate DDL.
type DDLGenerator interface {
	// TableDDL returns the CREATE TABLE statement for this model.
	TableDDL() string

	// IndexDDL returns CREATE INDEX statements for this model.
	// Returns empty slice if no indexes needed.
	IndexDDL() []string

	// TableName returns the table name for this model.
	TableName() string
}

// Movie is a film from the movie dump.
type Movie struct {
	// ID is the identifier given to the movie by the dump.
	ID int `db:"id" ddl:"INT NOT NULL PRIMARY KEY" gorm:"column:id;primaryKey;autoIncrement:false"`

	// Name is the title together with the release year in parentheses,
	// for example "Aliens (1986)". It may contain commas.
	Name string `db:"name" ddl:"VARCHAR(256)" gorm:"column:name;type:varchar(256)"`

	// Year of the release.
	Year int `db:"year" ddl:"INT" gorm:"column:year;type:int"`

	// Rank is the rating of the movie. Unrated movies get -1, so they
	// stay apart from movies rated 0.
	Rank float64 `db:"rank" ddl:"FLOAT" sentinel:"true" gorm:"column:rank;type:float"`
}

// Person is an actor or actress.
type Person struct {
	ID     int    `db:"id" ddl:"INT NOT NULL PRIMARY KEY" gorm:"column:id;primaryKey;autoIncrement:false"`
	FName  string `db:"fname" ddl:"VARCHAR(128)" gorm:"column:fname;type:varchar(128)"`
	LName  string `db:"lname" ddl:"VARCHAR(128)" gorm:"column:lname;type:varchar(128)"`
	Gender string `db:"gender" ddl:"VARCHAR(128)" gorm:"column:gender;type:varchar(128)"`
}

// Director of one or more movies.
type Director struct {
	ID    int    `db:"id" ddl:"INT NOT NULL PRIMARY KEY" gorm:"column:id;primaryKey;autoIncrement:false"`
	FName string `db:"fname" ddl:"VARCHAR(128)" gorm:"column:fname;type:varchar(128)"`
	LName string `db:"lname" ddl:"VARCHAR(128)" gorm:"column:lname;type:varchar(128)"`
}

// ActsIn links a person to a movie with the role played there.
type ActsIn struct {
	PersonID int `db:"pid" ddl:"INT NOT NULL" fk:"person(id)" gorm:"column:pid;type:int;not null"`
	MovieID  int `db:"mid" ddl:"INT NOT NULL" fk:"movie(id)" gorm:"column:mid;type:int;not null"`

	// Role may contain commas.
	Role string `db:"role" ddl:"VARCHAR(128)" gorm:"column:role;type:varchar(128)"`

	Person *Person `gorm:"foreignKey:PersonID;references:ID"`
	Movie  *Movie  `gorm:"foreignKey:MovieID;references:ID"`
}

// Directs links a director to a movie.
type Directs struct {
	DirectorID int `db:"did" ddl:"INT NOT NULL" fk:"director(id)" gorm:"column:did;type:int;not null"`
	MovieID    int `db:"mid" ddl:"INT NOT NULL" fk:"movie(id)" gorm:"column:mid;type:int;not null"`

	Director *Director `gorm:"foreignKey:DirectorID;references:ID"`
	Movie    *Movie    `gorm:"foreignKey:MovieID;references:ID"`
}

// Models returns all models in the order their tables must be created
// and filled: referenced tables come first.
func Models() []DDLGenerator {
	return []DDLGenerator{
		Movie{},
		Person{},
		Director{},
		ActsIn{},
		Directs{},
	}
}

var (
	MovieTable    = TableOf(Movie{})
	PersonTable   = TableOf(Person{})
	DirectorTable = TableOf(Director{})
	ActsInTable   = TableOf(ActsIn{})
	DirectsTable  = TableOf(Directs{})

	// DirectsRelation loads director links through temp_directs, keeping
	// only links whose director and movie exist.
	DirectsRelation = Relation{Table: DirectsTable, Staging: "temp_directs"}
)
