package domain

// Page is one unit of remote content plus its immediate child references.
// Children are lightweight references; each child is fetched again by id
// when the tree is expanded.
type Page struct {
	// ID is the remote page identifier and the page's identity.
	ID string

	// Title is the mutable display label.
	Title string

	// BodyHTML is the page's rendered export body.
	BodyHTML string

	// Children lists the immediate child pages in remote order.
	Children []PageRef
}

// HasChildren reports whether the page lists any child pages.
func (p *Page) HasChildren() bool {
	return len(p.Children) > 0
}

// PageRef is a lightweight reference to a child page.
type PageRef struct {
	ID    string
	Title string
}

// Attachment is a binary file attached to a page.
type Attachment struct {
	// ID is the remote attachment identifier.
	ID string

	// Title is the human filename. It is used for on-disk naming and for
	// matching references in converted content.
	Title string

	// DownloadURL is the link to the binary, relative to the remote base URL
	// or absolute.
	DownloadURL string

	// MediaType is the attachment's content type.
	MediaType string
}

// MediaTypeDrawio is the media type of editable draw.io diagram sources.
const MediaTypeDrawio = "application/vnd.jgraph.mxfile"

// IsDiagramSource reports whether the attachment is an editable diagram.
func (a *Attachment) IsDiagramSource() bool {
	return a.MediaType == MediaTypeDrawio
}

// PageLocator identifies the page a documentation tree is rooted at.
// Either PageID or the SpaceKey and PageTitle pair is set.
type PageLocator struct {
	SpaceKey  string
	PageTitle string
	PageID    string
}

// HasID reports whether the locator addresses the page by numeric id.
func (l PageLocator) HasID() bool {
	return l.PageID != ""
}
