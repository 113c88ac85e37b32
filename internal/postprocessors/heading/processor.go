// Package heading removes a leading page-title heading from markdown.
// Documentation renderers print the page title themselves, so the root
// page's own "# Title" line would otherwise appear twice.
package heading

import (
	"context"
	"regexp"

	"github.com/custodia-labs/docprep/internal/core/domain"
	"github.com/custodia-labs/docprep/internal/core/ports/driven"
)

// Name is the registry name of the processor.
const Name = "heading"

// Ensure Processor implements the interface.
var _ driven.PostProcessor = (*Processor)(nil)

// Processor strips doc.StripTitle from the top of the document.
type Processor struct{}

// New creates a heading processor.
func New() *Processor {
	return &Processor{}
}

// Name returns the processor name.
func (p *Processor) Name() string {
	return Name
}

// Process rewrites doc.Content. Documents without a StripTitle are left
// alone.
func (p *Processor) Process(_ context.Context, doc *domain.MarkdownDocument) error {
	doc.Content = Strip(doc.Content, doc.StripTitle)
	return nil
}

// Strip removes exactly one leading "# <title>" line matching title
// case-insensitively. An empty title is a no-op.
func Strip(markdown, title string) string {
	if title == "" {
		return markdown
	}
	pattern := regexp.MustCompile(`(?i)\A\s*#[ \t]+` + regexp.QuoteMeta(title) + `[ \t]*#*[ \t]*(?:\r?\n|\z)`)
	return pattern.ReplaceAllString(markdown, "")
}
