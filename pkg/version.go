// Package moviedb keeps build-time metadata of the moviedb application.
package moviedb

var (
	// Version of the app, set by ldflags during the build.
	Version = "v0.1.0"

	// Build timestamp, set by ldflags during the build.
	Build = "n/a"
)
