package domain

// MarkdownDocument is converted page content moving through the
// post-processing pipeline.
type MarkdownDocument struct {
	// PageID identifies the page the content came from.
	PageID string

	// StripTitle, when set, is the page title whose leading heading should
	// be removed. It is only set for the root of the whole tree.
	StripTitle string

	// Content is the markdown text.
	Content string
}

// PrepareOptions tunes a single preparation call.
type PrepareOptions struct {
	// ETag is the cache token of a previous preparation. When it equals the
	// root page id, preparation stops with ErrNotModified.
	ETag string
}
