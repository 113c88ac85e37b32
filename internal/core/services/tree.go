package services

import (
	"context"
	"fmt"
	"path"
	"strings"

	"golang.org/x/sync/errgroup"

	"github.com/custodia-labs/docprep/internal/core/domain"
	"github.com/custodia-labs/docprep/internal/core/ports/driven"
	"github.com/custodia-labs/docprep/internal/logger"
	"github.com/custodia-labs/docprep/internal/postprocessors/attachments"
)

// rootFile is the markdown file of the overall root page.
const rootFile = "index.md"

// treeNode is one page in the traversal arena. Children always have
// higher indices than their parent.
type treeNode struct {
	ref      domain.PageRef
	page     *domain.Page
	depth    int
	prefix   string
	children []int

	// Filled in by process.
	file       string
	hasContent bool
	childRefs  []domain.PageRef
}

func (n *treeNode) isRoot() bool {
	return n.depth == 0
}

// walk processes the tree level by level and returns the navigation.
func (p *Preparer) walk(ctx context.Context, ws driven.Workspace, root *domain.Page) ([]domain.NavNode, error) {
	arena := []*treeNode{{
		ref:  domain.PageRef{ID: root.ID, Title: root.Title},
		page: root,
	}}
	visited := map[string]bool{root.ID: true}

	level := []int{0}
	for depth := 0; len(level) > 0; depth++ {
		logger.Section(fmt.Sprintf("Depth %d (%d pages)", depth, len(level)))
		if err := p.processLevel(ctx, ws, arena, level); err != nil {
			return nil, err
		}

		var next []int
		for _, idx := range level {
			node := arena[idx]
			childPrefix := path.Join(node.prefix, attachments.SanitizeFilename(node.page.Title))
			for _, ref := range node.childRefs {
				if visited[ref.ID] {
					logger.Warn("page %s %q already included, skipping", ref.ID, ref.Title)
					continue
				}
				visited[ref.ID] = true

				arena = append(arena, &treeNode{
					ref:    ref,
					depth:  node.depth + 1,
					prefix: childPrefix,
				})
				child := len(arena) - 1
				node.children = append(node.children, child)
				next = append(next, child)
			}
		}
		level = next
	}

	return buildNav(arena), nil
}

// processLevel runs process for every node of one level, honouring the
// tree policy. Results land in the nodes themselves.
func (p *Preparer) processLevel(ctx context.Context, ws driven.Workspace, arena []*treeNode, level []int) error {
	if !p.policy.Parallel {
		for _, idx := range level {
			if err := p.process(ctx, ws, arena[idx]); err != nil {
				return err
			}
		}
		return nil
	}

	g, gctx := errgroup.WithContext(ctx)
	if p.policy.MaxConcurrency > 0 {
		g.SetLimit(p.policy.MaxConcurrency)
	}
	for _, idx := range level {
		node := arena[idx]
		g.Go(func() error {
			return p.process(gctx, ws, node)
		})
	}
	return g.Wait()
}

// process fetches, converts and writes a single page.
func (p *Preparer) process(ctx context.Context, ws driven.Workspace, node *treeNode) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	if node.page == nil {
		page, err := p.source.GetPage(ctx, node.ref.ID)
		if err != nil {
			return fmt.Errorf("fetch page %s: %w", node.ref.ID, err)
		}
		node.page = page
	}
	page := node.page
	logger.Debug("processing page %s %q at depth %d", page.ID, page.Title, node.depth)

	hint := ""
	if node.isRoot() {
		hint = page.Title
	}
	markdown, err := p.converter.Convert(ctx, page.BodyHTML, hint)
	if err != nil {
		return fmt.Errorf("convert page %s: %w", page.ID, err)
	}

	list, err := p.source.ListAttachments(ctx, page.ID)
	if err != nil {
		return fmt.Errorf("list attachments of page %s: %w", page.ID, err)
	}
	if len(list) > 0 {
		dir, link, err := ws.ImageDir(page.ID)
		if err != nil {
			return fmt.Errorf("page %s: %w", page.ID, err)
		}
		markdown, err = p.attachments.Resolve(ctx, driven.AttachmentRequest{
			PageID:      page.ID,
			Markdown:    markdown,
			Attachments: list,
			ImageDir:    dir,
			ImageLink:   link,
			PathPrefix:  node.prefix,
		})
		if err != nil {
			return fmt.Errorf("resolve attachments of page %s: %w", page.ID, err)
		}
	}

	node.hasContent = strings.TrimSpace(markdown) != ""
	node.file = rootFile
	if !node.isRoot() {
		node.file = path.Join(node.prefix, attachments.SanitizeFilename(page.Title)+".md")
	}
	if err := ws.WriteDocument(node.file, markdown); err != nil {
		return fmt.Errorf("write page %s: %w", page.ID, err)
	}

	if page.HasChildren() && p.policy.ShouldDescend(node.depth) {
		node.childRefs = page.Children
	}
	return nil
}

// buildNav folds the arena into navigation entries. Nodes are visited in
// reverse so every child entry exists before its parent needs it.
// The root's own group is unwrapped into the top-level navigation.
func buildNav(arena []*treeNode) []domain.NavNode {
	entries := make([]domain.NavNode, len(arena))
	var rootChildren []domain.NavNode

	for i := len(arena) - 1; i >= 0; i-- {
		node := arena[i]
		title := node.page.Title

		if len(node.children) == 0 {
			entries[i] = domain.NavLeaf{Title: title, Path: node.file}
			continue
		}

		children := make([]domain.NavNode, 0, len(node.children)+1)
		if node.hasContent {
			children = append(children, domain.NavLeaf{Title: domain.OverviewTitle, Path: node.file})
		}
		for _, c := range node.children {
			children = append(children, entries[c])
		}
		entries[i] = domain.NavGroup{Title: title, Children: children}
		if i == 0 {
			rootChildren = children
		}
	}

	if rootChildren != nil {
		return rootChildren
	}
	return []domain.NavNode{entries[0]}
}
