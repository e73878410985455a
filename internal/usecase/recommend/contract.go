package recommend

import (
	"context"

	"github.com/litmatch/litmatch/internal/domain"
)

// CorpusStore loads the full paper corpus for an index build. Load order is
// preserved into the index and defines the ranking tie-break.
type CorpusStore interface {
	Load(ctx context.Context) ([]domain.Paper, error)
}
