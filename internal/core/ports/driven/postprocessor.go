package driven

import (
	"context"

	"github.com/custodia-labs/docprep/internal/core/domain"
)

// PostProcessor rewrites converted markdown in place.
// PostProcessors are chained in a pipeline (e.g., anchor normalisation,
// heading removal).
type PostProcessor interface {
	// Name returns the processor name for logging and configuration.
	Name() string

	// Process rewrites doc.Content.
	Process(ctx context.Context, doc *domain.MarkdownDocument) error
}

// PostProcessorPipeline chains multiple PostProcessors.
type PostProcessorPipeline interface {
	// Process runs the document through all processors in order.
	Process(ctx context.Context, doc *domain.MarkdownDocument) error
}
