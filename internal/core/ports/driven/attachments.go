package driven

import (
	"context"

	"github.com/custodia-labs/docprep/internal/core/domain"
)

// AttachmentRequest describes one page's attachment resolution.
type AttachmentRequest struct {
	// PageID identifies the page whose attachments are resolved.
	PageID string

	// Markdown is the converted page content.
	Markdown string

	// Attachments is the page's attachment list.
	Attachments []domain.Attachment

	// ImageDir is the absolute directory downloads are written to.
	ImageDir string

	// ImageLink is ImageDir relative to the docs directory, e.g. "img/123".
	ImageLink string

	// PathPrefix is the docs-relative directory of the page's markdown
	// file. Its depth decides how many "../" segments links need.
	PathPrefix string
}

// AttachmentResolver downloads attachments and rewrites their references.
type AttachmentResolver interface {
	// Resolve returns the markdown with references pointing at local copies.
	// Failures for a single attachment are logged and skipped.
	Resolve(ctx context.Context, req AttachmentRequest) (string, error)
}
