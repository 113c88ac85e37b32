package services

import (
	"context"
	"io"
	"strings"
	"sync"
	"sync/atomic"

	"github.com/custodia-labs/docprep/internal/core/domain"
	"github.com/custodia-labs/docprep/internal/core/ports/driven"
)

// fakeSource serves pages and attachments from maps.
type fakeSource struct {
	mu          sync.Mutex
	pages       map[string]*domain.Page
	attachments map[string][]domain.Attachment
	pageErrs    map[string]error
	listErrs    map[string]error
	fetched     []string
	found       []string

	// onGet runs inside GetPage before it returns.
	onGet func(id string)

	inflight    atomic.Int32
	maxInflight atomic.Int32
}

var _ driven.ContentSource = (*fakeSource)(nil)

func newFakeSource(pages ...*domain.Page) *fakeSource {
	s := &fakeSource{
		pages:       make(map[string]*domain.Page),
		attachments: make(map[string][]domain.Attachment),
		pageErrs:    make(map[string]error),
		listErrs:    make(map[string]error),
	}
	for _, p := range pages {
		s.pages[p.ID] = p
	}
	return s
}

func (s *fakeSource) enter() func() {
	n := s.inflight.Add(1)
	for {
		cur := s.maxInflight.Load()
		if n <= cur || s.maxInflight.CompareAndSwap(cur, n) {
			break
		}
	}
	return func() { s.inflight.Add(-1) }
}

func (s *fakeSource) GetPage(_ context.Context, id string) (*domain.Page, error) {
	defer s.enter()()

	s.mu.Lock()
	s.fetched = append(s.fetched, id)
	err := s.pageErrs[id]
	page, ok := s.pages[id]
	s.mu.Unlock()

	if s.onGet != nil {
		s.onGet(id)
	}
	if err != nil {
		return nil, err
	}
	if !ok {
		return nil, &domain.NotFoundError{Kind: "page", Query: id}
	}
	copied := *page
	return &copied, nil
}

func (s *fakeSource) FindPage(_ context.Context, spaceKey, title string) (*domain.Page, error) {
	defer s.enter()()

	s.mu.Lock()
	defer s.mu.Unlock()
	s.found = append(s.found, spaceKey+"/"+title)
	for _, p := range s.pages {
		if p.Title == title {
			copied := *p
			return &copied, nil
		}
	}
	return nil, &domain.NotFoundError{Kind: "page", Query: title}
}

func (s *fakeSource) ListAttachments(_ context.Context, pageID string) ([]domain.Attachment, error) {
	defer s.enter()()

	s.mu.Lock()
	defer s.mu.Unlock()
	if err := s.listErrs[pageID]; err != nil {
		return nil, err
	}
	return s.attachments[pageID], nil
}

func (s *fakeSource) Download(_ context.Context, a domain.Attachment) (io.ReadCloser, error) {
	return io.NopCloser(strings.NewReader(a.Title)), nil
}

func (s *fakeSource) fetchedIDs() []string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]string(nil), s.fetched...)
}

// fakeConverter returns the trimmed HTML unchanged and records title hints.
type fakeConverter struct {
	mu    sync.Mutex
	hints map[string]string
}

var _ driven.Converter = (*fakeConverter)(nil)

func (c *fakeConverter) Convert(_ context.Context, html, stripTitle string) (string, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.hints == nil {
		c.hints = make(map[string]string)
	}
	c.hints[html] = stripTitle
	return strings.TrimSpace(html), nil
}

// fakeResolver appends a marker pointing at the image link.
type fakeResolver struct {
	mu       sync.Mutex
	requests []driven.AttachmentRequest
}

var _ driven.AttachmentResolver = (*fakeResolver)(nil)

func (r *fakeResolver) Resolve(_ context.Context, req driven.AttachmentRequest) (string, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.requests = append(r.requests, req)
	return req.Markdown + "\n![img](" + req.ImageLink + "/a.png)", nil
}

// fakeWorkspace keeps documents in memory.
type fakeWorkspace struct {
	mu       sync.Mutex
	docs     map[string]string
	siteName string
	nav      []domain.NavNode
	manifest bool
	removed  bool
}

var _ driven.Workspace = (*fakeWorkspace)(nil)

func (w *fakeWorkspace) Root() string { return "/tmp/fake-workspace" }

func (w *fakeWorkspace) WriteDocument(relPath, content string) error {
	w.mu.Lock()
	defer w.mu.Unlock()
	w.docs[relPath] = content
	return nil
}

func (w *fakeWorkspace) ImageDir(pageID string) (string, string, error) {
	return w.Root() + "/docs/img/" + pageID, "img/" + pageID, nil
}

func (w *fakeWorkspace) WriteManifest(siteName string, nav []domain.NavNode) error {
	w.mu.Lock()
	defer w.mu.Unlock()
	w.siteName = siteName
	w.nav = nav
	w.manifest = true
	return nil
}

func (w *fakeWorkspace) Remove() error {
	w.mu.Lock()
	defer w.mu.Unlock()
	w.removed = true
	return nil
}

type fakeFactory struct {
	created []*fakeWorkspace
}

var _ driven.WorkspaceFactory = (*fakeFactory)(nil)

func (f *fakeFactory) Create() (driven.Workspace, error) {
	ws := &fakeWorkspace{docs: make(map[string]string)}
	f.created = append(f.created, ws)
	return ws, nil
}

func (f *fakeFactory) last() *fakeWorkspace {
	if len(f.created) == 0 {
		return nil
	}
	return f.created[len(f.created)-1]
}

// page builds a page whose body is "<p>title</p>".
func page(id, title string, children ...string) *domain.Page {
	p := &domain.Page{ID: id, Title: title, BodyHTML: "<p>" + title + "</p>"}
	for _, c := range children {
		p.Children = append(p.Children, domain.PageRef{ID: c})
	}
	return p
}
