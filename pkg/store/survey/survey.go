package survey

import (
	"context"

	"github.com/ht-tools/housing-atlas/pkg/models/domain"
)

// Store produces the well-formed survey table the aggregation pipeline
// consumes. Backends return a fresh slice per call; rows are never shared
// or mutated across invocations.
type Store interface {
	GetRows(ctx context.Context) ([]domain.SurveyRow, error)
}
