package lifecycle

import (
	"context"
)

// SchemaManager defines the interface for database schema management.
type SchemaManager interface {
	// Create creates the tables of movies, people, directors and their
	// relationships together with foreign keys and indexes.
	// Existing tables have to be dropped beforehand.
	Create(ctx context.Context) error
}
