package lifecycle

import (
	"context"
)

// Populator fills the database from the dumps.
type Populator interface {
	// Populate parses, maps and loads all dumps in the order that keeps
	// foreign keys valid. It stops at the first fatal error.
	Populate(ctx context.Context) error
}
