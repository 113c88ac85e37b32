package driven

import (
	"context"
	"io"

	"github.com/custodia-labs/docprep/internal/core/domain"
)

// ContentSource reads pages and attachments from the remote content system.
// Implementations perform no retries; a failed call is returned as is.
type ContentSource interface {
	// GetPage fetches a page by id, including its body and one level of
	// child references. A missing page yields *domain.NotFoundError.
	GetPage(ctx context.Context, id string) (*domain.Page, error)

	// FindPage fetches the best match for a title within a space.
	// The first search result is taken.
	FindPage(ctx context.Context, spaceKey, title string) (*domain.Page, error)

	// ListAttachments returns every attachment of a page.
	ListAttachments(ctx context.Context, pageID string) ([]domain.Attachment, error)

	// Download opens the attachment's binary content.
	// The caller must close the returned reader.
	Download(ctx context.Context, attachment domain.Attachment) (io.ReadCloser, error)
}
