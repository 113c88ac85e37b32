package confluence

import (
	"strings"

	"github.com/custodia-labs/docprep/internal/core/domain"
)

const (
	// AnnotationKey is the entity annotation that points at documentation.
	AnnotationKey = "backstage.io/techdocs-ref"

	// PrefixConfluenceURL marks an annotation as a Confluence URL.
	PrefixConfluenceURL = "confluence-url:"

	// PrefixURL marks a generic URL annotation.
	PrefixURL = "url:"
)

// ParseAnnotation extracts the Confluence URL from an annotation.
// A confluence-url: annotation is returned unchanged; a url: annotation
// must additionally be recognised by IsConfluenceURL.
func ParseAnnotation(ref string) (string, error) {
	ref = strings.TrimSpace(ref)

	switch {
	case strings.HasPrefix(ref, PrefixConfluenceURL):
		target := strings.TrimPrefix(ref, PrefixConfluenceURL)
		if target == "" {
			return "", &domain.InputError{Input: ref, Reason: "missing URL after " + PrefixConfluenceURL}
		}
		return target, nil

	case strings.HasPrefix(ref, PrefixURL):
		target := strings.TrimPrefix(ref, PrefixURL)
		if !IsConfluenceURL(target) {
			return "", &domain.InputError{Input: ref, Reason: "URL is not a Confluence page"}
		}
		return target, nil
	}

	return "", &domain.InputError{
		Input:  ref,
		Reason: "expected " + PrefixConfluenceURL + "<url> or " + PrefixURL + "<url>",
	}
}
