package config

import (
	"path/filepath"
)

var (
	// AppName is used in generating file system paths.
	AppName = "moviedb"
)

// ConfigDir returns the directory path for configuration files.
// Returns ~/.config/moviedb by default.
func ConfigDir(homeDir string) string {
	return filepath.Join(homeDir, ".config", AppName)
}

// CacheDir returns the directory path for cache files.
// Returns ~/.cache/moviedb by default.
func CacheDir(homeDir string) string {
	return filepath.Join(homeDir, ".cache", AppName)
}

// LogDir returns the directory path for log files.
// Returns ~/.local/share/moviedb/logs by default.
func LogDir(homeDir string) string {
	return filepath.Join(homeDir, ".local", "share", AppName, "logs")
}

// ConfigFilePath returns the full path to the config.yaml file.
// Returns ~/.config/moviedb/config.yaml by default.
func ConfigFilePath(homeDir string) string {
	return filepath.Join(ConfigDir(homeDir), "config.yaml")
}

// SourcesFilePath returns the full path to the sources.yaml file.
// Returns ~/.config/moviedb/sources.yaml by default.
func SourcesFilePath(homeDir string) string {
	return filepath.Join(ConfigDir(homeDir), "sources.yaml")
}

// QuarantineFilePath returns the path of the report with dump lines
// that could not be parsed during the last populate run.
func QuarantineFilePath(homeDir string) string {
	return filepath.Join(LogDir(homeDir), "quarantine.csv")
}
