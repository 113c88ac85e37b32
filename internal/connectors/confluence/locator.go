package confluence

import (
	"net/url"
	"regexp"
	"strings"

	"github.com/custodia-labs/docprep/internal/core/domain"
)

// SupportedFormats lists the URL shapes ResolveLocator understands.
var SupportedFormats = []string{
	"/display/{space}/{title}",
	"/spaces/{space}/pages/{id}",
	"?pageId={id}",
}

var (
	displayPattern = regexp.MustCompile(`/display/([^/]+)/([^/?#]+)`)
	spacesPattern  = regexp.MustCompile(`/spaces/([^/]+)/pages/(\d+)`)
)

// ResolveLocator extracts a page locator from a Confluence URL.
func ResolveLocator(raw string) (domain.PageLocator, error) {
	u, err := url.Parse(strings.TrimSpace(raw))
	if err != nil {
		return domain.PageLocator{}, unsupported(raw)
	}

	path := u.EscapedPath()

	if m := displayPattern.FindStringSubmatch(path); m != nil {
		space, _ := url.PathUnescape(m[1])
		return domain.PageLocator{SpaceKey: space, PageTitle: decodeTitle(m[2])}, nil
	}

	if m := spacesPattern.FindStringSubmatch(path); m != nil {
		space, _ := url.PathUnescape(m[1])
		return domain.PageLocator{SpaceKey: space, PageID: m[2]}, nil
	}

	if id := u.Query().Get("pageId"); id != "" {
		return domain.PageLocator{PageID: id}, nil
	}

	return domain.PageLocator{}, unsupported(raw)
}

// decodeTitle turns a /display/ title segment into the page title.
// Confluence encodes spaces as '+' in these URLs.
func decodeTitle(segment string) string {
	segment = strings.ReplaceAll(segment, "+", " ")
	if decoded, err := url.PathUnescape(segment); err == nil {
		return decoded
	}
	return segment
}

func unsupported(raw string) error {
	return &domain.InputError{
		Input:  raw,
		Reason: "unsupported Confluence URL, expected one of: " + strings.Join(SupportedFormats, ", "),
	}
}
