package lifecycle

import (
	"context"
)

// Ranker answers the question about the best movies of a period.
type Ranker interface {
	// TopN returns names of at most count movies released from startYear
	// to endYear inclusive, the highest ranked first.
	TopN(ctx context.Context, count, startYear, endYear int) ([]string, error)
}
