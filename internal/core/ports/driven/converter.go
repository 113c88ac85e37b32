package driven

import "context"

// Converter turns a page's rich-text export into markdown.
// It performs no I/O.
type Converter interface {
	// Convert converts html to markdown. When stripTitle is non-empty, a
	// leading heading matching it is removed.
	Convert(ctx context.Context, html, stripTitle string) (string, error)
}
