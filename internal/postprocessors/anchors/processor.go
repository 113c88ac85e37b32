// Package anchors rewrites Confluence in-page anchors to heading slugs.
//
// Confluence prefixes anchor ids with the page slug, e.g.
// #MyPage-SomeAnchor, while static site renderers key anchors off the
// heading text alone. Links are rewritten to #someanchor.
package anchors

import (
	"context"
	"regexp"
	"strings"

	"github.com/custodia-labs/docprep/internal/core/domain"
	"github.com/custodia-labs/docprep/internal/core/ports/driven"
)

// Name is the registry name of the processor.
const Name = "anchors"

// Ensure Processor implements the interface.
var _ driven.PostProcessor = (*Processor)(nil)

// A page slug is the title with spaces removed, so it always carries an
// uppercase letter in practice. Normalised fragments are lowercase and
// never match again.
var fragmentPattern = regexp.MustCompile(
	`((?:\]\(|href=")[^)\s"#]*#)[A-Za-z0-9]*[A-Z][A-Za-z0-9]*-([^)\s"]+)`,
)

// Processor normalises anchor fragments in links.
type Processor struct{}

// New creates an anchor processor.
func New() *Processor {
	return &Processor{}
}

// Name returns the processor name.
func (p *Processor) Name() string {
	return Name
}

// Process rewrites doc.Content.
func (p *Processor) Process(_ context.Context, doc *domain.MarkdownDocument) error {
	doc.Content = Normalize(doc.Content)
	return nil
}

// Normalize rewrites #<PageSlug>-<AnchorText> link fragments to
// #<anchortext>. It is idempotent.
func Normalize(markdown string) string {
	return fragmentPattern.ReplaceAllStringFunc(markdown, func(match string) string {
		m := fragmentPattern.FindStringSubmatch(match)
		return m[1] + strings.ToLower(m[2])
	})
}
