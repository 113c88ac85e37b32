package attachments

import (
	"context"
	"fmt"
	"io"
	"net/url"
	"os"
	"path/filepath"
	"regexp"
	"sort"
	"strings"

	"github.com/custodia-labs/docprep/internal/core/domain"
	"github.com/custodia-labs/docprep/internal/core/ports/driven"
	"github.com/custodia-labs/docprep/internal/logger"
)

// Ensure Resolver implements the interface.
var _ driven.AttachmentResolver = (*Resolver)(nil)

// Resolver materialises attachments for one page at a time.
type Resolver struct {
	source driven.ContentSource
}

// NewResolver creates a resolver that downloads through source.
func NewResolver(source driven.ContentSource) *Resolver {
	return &Resolver{source: source}
}

// Resolve downloads the page's attachments and rewrites references.
// Only context cancellation is returned as an error.
func (r *Resolver) Resolve(ctx context.Context, req driven.AttachmentRequest) (string, error) {
	markdown := req.Markdown
	if len(req.Attachments) == 0 {
		return markdown, nil
	}

	linkBase := strings.Repeat("../", prefixDepth(req.PathPrefix)) + strings.TrimSuffix(req.ImageLink, "/")
	substitutes := diagramSubstitutes(req.Attachments)

	handled := make(map[string]bool)
	local := make(map[string]string)

	for _, a := range req.Attachments {
		if err := ctx.Err(); err != nil {
			return "", err
		}

		if a.IsDiagramSource() {
			if png, ok := substitutes[a.Title]; ok {
				if !handled[png.ID] {
					handled[png.ID] = true
					markdown = r.materialise(ctx, req, png, linkBase, markdown, local)
				}
				continue
			}
		}

		if handled[a.ID] {
			continue
		}
		handled[a.ID] = true
		markdown = r.materialise(ctx, req, a, linkBase, markdown, local)
	}

	// References to a diagram source point at its rendered PNG.
	sources := make([]string, 0, len(substitutes))
	for title := range substitutes {
		sources = append(sources, title)
	}
	sort.Strings(sources)
	for _, title := range sources {
		if link, ok := local[substitutes[title].ID]; ok {
			markdown = rewriteReferences(markdown, title, link)
		}
	}

	return markdown, nil
}

// materialise downloads a, writes it under the image directory and
// rewrites references to it. Failures are logged and skipped.
func (r *Resolver) materialise(
	ctx context.Context,
	req driven.AttachmentRequest,
	a domain.Attachment,
	linkBase, markdown string,
	local map[string]string,
) string {
	name := SanitizeFilename(a.Title)
	if err := r.download(ctx, a, filepath.Join(req.ImageDir, name)); err != nil {
		logger.Warn("page %s: skipping attachment %q: %v", req.PageID, a.Title, err)
		return markdown
	}

	link := linkBase + "/" + name
	local[a.ID] = link
	logger.Debug("page %s: attachment %q -> %s", req.PageID, a.Title, link)

	return rewriteReferences(markdown, a.Title, link)
}

func (r *Resolver) download(ctx context.Context, a domain.Attachment, dest string) error {
	body, err := r.source.Download(ctx, a)
	if err != nil {
		return err
	}
	defer body.Close()

	if err := os.MkdirAll(filepath.Dir(dest), 0o755); err != nil {
		return fmt.Errorf("create image dir: %w", err)
	}

	f, err := os.Create(dest)
	if err != nil {
		return fmt.Errorf("create file: %w", err)
	}
	if _, err := io.Copy(f, body); err != nil {
		f.Close()
		_ = os.Remove(dest)
		return fmt.Errorf("write file: %w", err)
	}
	return f.Close()
}

// diagramSubstitutes maps each diagram source title to its sibling PNG.
func diagramSubstitutes(attachments []domain.Attachment) map[string]domain.Attachment {
	byTitle := make(map[string]domain.Attachment, len(attachments))
	for _, a := range attachments {
		byTitle[a.Title] = a
	}

	substitutes := make(map[string]domain.Attachment)
	for _, a := range attachments {
		if !a.IsDiagramSource() {
			continue
		}
		if png, ok := byTitle[a.Title+".png"]; ok {
			substitutes[a.Title] = png
		}
	}
	return substitutes
}

// rewriteReferences points every link or image whose target ends in the
// title (optionally with a query string and link title) at link. Targets
// are matched from their opening "](" so a link wrapping an image, as in
// [![](a.png)](a.png), has both targets rewritten.
func rewriteReferences(markdown, title, link string) string {
	variants := []string{regexp.QuoteMeta(title)}
	if escaped := url.PathEscape(title); escaped != title {
		variants = append(variants, regexp.QuoteMeta(escaped))
	}

	pattern := regexp.MustCompile(
		`\]\((?:[^)\s]*/)?(?:` + strings.Join(variants, "|") + `)(?:\?[^)\s]*)?(\s+"[^"]*")?\)`,
	)
	return pattern.ReplaceAllString(markdown, "]("+strings.ReplaceAll(link, "$", "$$")+"${1})")
}

// prefixDepth counts the directories in a docs-relative path prefix.
func prefixDepth(prefix string) int {
	prefix = strings.Trim(prefix, "/")
	if prefix == "" {
		return 0
	}
	return strings.Count(prefix, "/") + 1
}
