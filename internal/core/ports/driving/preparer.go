package driving

import (
	"context"

	"github.com/custodia-labs/docprep/internal/core/domain"
)

// Preparer turns a documentation annotation into a prepared docs tree.
type Preparer interface {
	// Prepare fetches the page tree the annotation points at and writes it
	// to a fresh directory. On error no output is left behind.
	Prepare(ctx context.Context, ref string, opts domain.PrepareOptions) (*domain.PreparationResult, error)
}

// DocsService runs preparations on behalf of a user and remembers them.
type DocsService interface {
	// Build prepares ref, reusing the remembered cache token unless
	// opts.Force is set.
	Build(ctx context.Context, ref string, opts BuildOptions) (*BuildResult, error)

	// History returns remembered preparations, most recent first.
	History(ctx context.Context) ([]domain.PreparationRecord, error)
}

// BuildOptions tunes a Build call.
type BuildOptions struct {
	// Force ignores any remembered cache token.
	Force bool

	// OutputDir, when set, receives the prepared tree. Otherwise the
	// temporary directory is handed off as is.
	OutputDir string
}

// BuildResult is the outcome of a Build call.
type BuildResult struct {
	// NotModified is true when the remembered output is still current.
	// Record then describes the previous run.
	NotModified bool

	Record domain.PreparationRecord
}
