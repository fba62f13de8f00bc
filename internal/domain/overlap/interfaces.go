package overlap

import (
	"context"

	"github.com/rpggio/pairwork/internal/domain/assignment"
)

// RowSource yields the complete set of raw assignment rows for one run.
type RowSource interface {
	Rows(ctx context.Context) ([]assignment.RawRow, error)
}
