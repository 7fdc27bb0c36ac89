package returns

import (
	"context"

	"github.com/google/uuid"
)

// ReturnRepository loads and stores Return aggregates. Controllers use it to
// construct the aggregate a single editor operation is then invoked on; the
// editor itself writes through its Transaction, never through the repository.
type ReturnRepository interface {
	FindByID(ctx context.Context, id uuid.UUID) (*Return, error)
	Save(ctx context.Context, ret *Return) error
}
