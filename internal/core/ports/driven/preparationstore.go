package driven

import (
	"context"

	"github.com/custodia-labs/docprep/internal/core/domain"
)

// PreparationStore persists the last preparation per annotation.
type PreparationStore interface {
	// Save stores or replaces the record for record.Ref.
	Save(ctx context.Context, record domain.PreparationRecord) error

	// Get retrieves the record for an annotation.
	// Returns domain.ErrNotFound if none exists.
	Get(ctx context.Context, ref string) (*domain.PreparationRecord, error)

	// List returns all records, most recent first.
	List(ctx context.Context) ([]domain.PreparationRecord, error)

	// Delete removes the record for an annotation.
	Delete(ctx context.Context, ref string) error
}
