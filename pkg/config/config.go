// Package config provides configuration management for moviedb.
//
// This package has no I/O dependencies (no file operations, no network calls).
// Validation functions may write user-facing warnings via gn.Warn().
//
// # Configuration Sources
//
// Precedence (highest to lowest): CLI flags > env vars > config.yaml > defaults
//
// A .env file in the working directory is loaded into the environment
// before env vars are read, so it has the same precedence as env vars.
//
// # Design Principles
//
// - Default config (from New()) is always valid - no validation needed
// - All mutations go through Option functions - the only way to modify Config
// - Invalid options are rejected with gn.Warn() - config remains in valid state
// - ToOptions() converts persistent fields (those in config.yaml)
// - Environment variables match ToOptions() fields exactly
//
// # Persistent vs Runtime Fields
//
// Persistent fields (in ToOptions, config.yaml, and env vars):
//   - Database: driver, host, port, user, password, database, ssl_mode,
//     path, load_timeout
//   - Log: level, format, destination
//
// Runtime-only fields (CLI flags only):
//   - Populate.Dir, Populate.ShowProgress (per-command)
//   - HomeDir (set once at startup)
//
// # Environment Variables
//
// Use MOVIEDB_ prefix with underscores for nesting:
//
//	MOVIEDB_DATABASE_DRIVER=postgres
//	MOVIEDB_DATABASE_HOST=localhost
//	MOVIEDB_DATABASE_PORT=5432
//	MOVIEDB_LOG_LEVEL=info
package config

const (
	// DriverPostgres selects the PostgreSQL backend.
	DriverPostgres = "postgres"
	// DriverSQLite selects the embedded SQLite backend.
	DriverSQLite = "sqlite"
)

// Config represents the complete moviedb configuration.
type Config struct {
	// Database contains connection settings of the relational store.
	Database DatabaseConfig `mapstructure:"database" yaml:"database"`

	// Populate contains settings specific to the populate command.
	Populate PopulateConfig `mapstructure:"populate" yaml:"populate"`

	Log LogConfig `mapstructure:"log" yaml:"log"`

	// HomeDir determines where config, cache and logs directories reside.
	// It must be set by CLI during init, there is no default value for it.
	HomeDir string
}

// DatabaseConfig contains connection parameters of the store.
type DatabaseConfig struct {
	// Driver selects the backend: "postgres" or "sqlite".
	Driver string `mapstructure:"driver" yaml:"driver"`

	// Host is the PostgreSQL server hostname or IP address.
	Host string `mapstructure:"host" yaml:"host"`

	// Port is the PostgreSQL server port number.
	Port int `mapstructure:"port" yaml:"port"`

	// User is the PostgreSQL database username.
	User string `mapstructure:"user" yaml:"user"`

	// Password is the PostgreSQL database password.
	Password string `mapstructure:"password" yaml:"password"`

	// Database is the PostgreSQL database name to connect to.
	Database string `mapstructure:"database" yaml:"database"`

	// SSLMode specifies the SSL connection mode.
	// Valid values: "disable", "require", "verify-ca", "verify-full"
	SSLMode string `mapstructure:"ssl_mode" yaml:"ssl_mode"`

	// Path is the SQLite database file. ":memory:" keeps the database
	// in memory for the lifetime of the connection.
	Path string `mapstructure:"path" yaml:"path"`

	// LoadTimeout limits every table load to the given number of seconds.
	// Zero means no limit.
	LoadTimeout int `mapstructure:"load_timeout" yaml:"load_timeout"`
}

// PopulateConfig contains settings specific to the populate command.
type PopulateConfig struct {
	// Dir overrides the directory with dump files given in sources.yaml.
	Dir string `mapstructure:"dir" yaml:"dir"`

	// ShowProgress enables progress bars while dumps are read.
	ShowProgress bool `mapstructure:"show_progress" yaml:"show_progress"`
}

// LogConfig provides typical settings for application logs.
type LogConfig struct {
	// Format can be 'json' or 'text'.
	Format string `mapstructure:"format"      yaml:"format"`
	// Level of logging -- 'error', 'warn', 'info', 'debug'
	Level string `mapstructure:"level"       yaml:"level"`
	// Destination can be a log file (to default place), STDERR or STDOUT
	Destination string `mapstructure:"destination" yaml:"destination"`
}

// New creates a Config with sensible default values.
// The returned config is always valid and ready to use.
// Default values can be overridden using Option functions via Update().
func New() *Config {
	res := &Config{
		Database: DatabaseConfig{
			Driver:   DriverPostgres,
			Host:     "localhost",
			Port:     5432,
			User:     "postgres",
			Password: "postgres",
			Database: "moviesdb",
			SSLMode:  "disable",
			Path:     "moviedb.sqlite",
		},
		Populate: PopulateConfig{
			ShowProgress: true,
		},
		Log: LogConfig{
			Format: "json",
			Level:  "info",
			// for now file is rewritten every time the log starts
			Destination: "file",
		},
	}

	return res
}
