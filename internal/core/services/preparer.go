package services

import (
	"context"
	"errors"
	"fmt"

	"github.com/custodia-labs/docprep/internal/connectors/confluence"
	"github.com/custodia-labs/docprep/internal/core/domain"
	"github.com/custodia-labs/docprep/internal/core/ports/driven"
	"github.com/custodia-labs/docprep/internal/core/ports/driving"
	"github.com/custodia-labs/docprep/internal/logger"
)

// Ensure Preparer implements the interface.
var _ driving.Preparer = (*Preparer)(nil)

// Preparer fetches a page tree and writes it as a documentation site.
type Preparer struct {
	source      driven.ContentSource
	converter   driven.Converter
	attachments driven.AttachmentResolver
	workspaces  driven.WorkspaceFactory
	policy      domain.TreePolicy
}

// NewPreparer creates a preparer. The policy applies to every call.
func NewPreparer(
	source driven.ContentSource,
	converter driven.Converter,
	attachments driven.AttachmentResolver,
	workspaces driven.WorkspaceFactory,
	policy domain.TreePolicy,
) *Preparer {
	return &Preparer{
		source:      source,
		converter:   converter,
		attachments: attachments,
		workspaces:  workspaces,
		policy:      policy,
	}
}

// Prepare resolves ref to a root page and writes the page tree below it.
// On any error the workspace is removed and nothing is handed off.
func (p *Preparer) Prepare(ctx context.Context, ref string, opts domain.PrepareOptions) (*domain.PreparationResult, error) {
	target, err := confluence.ParseAnnotation(ref)
	if err != nil {
		return nil, err
	}
	locator, err := confluence.ResolveLocator(target)
	if err != nil {
		return nil, err
	}

	logger.Section("Fetch Root")
	root, err := p.fetchRoot(ctx, locator)
	if err != nil {
		return nil, fmt.Errorf("fetch root page: %w", err)
	}
	logger.Info("root page %s %q", root.ID, root.Title)

	if opts.ETag != "" && opts.ETag == root.ID {
		logger.Info("root page %s unchanged", root.ID)
		return nil, domain.ErrNotModified
	}

	ws, err := p.workspaces.Create()
	if err != nil {
		return nil, fmt.Errorf("create workspace: %w", err)
	}

	nav, err := p.walk(ctx, ws, root)
	if err == nil {
		logger.Section("Write Manifest")
		err = ws.WriteManifest(root.Title, nav)
	}
	if err != nil {
		if rmErr := ws.Remove(); rmErr != nil {
			logger.Warn("failed to remove workspace %s: %v", ws.Root(), rmErr)
		}
		return nil, err
	}

	return &domain.PreparationResult{
		OutputDir:  ws.Root(),
		CacheToken: root.ID,
		SiteName:   root.Title,
	}, nil
}

func (p *Preparer) fetchRoot(ctx context.Context, locator domain.PageLocator) (*domain.Page, error) {
	if locator.HasID() {
		return p.source.GetPage(ctx, locator.PageID)
	}
	if locator.SpaceKey == "" || locator.PageTitle == "" {
		return nil, errors.New("locator has neither page id nor space and title")
	}
	return p.source.FindPage(ctx, locator.SpaceKey, locator.PageTitle)
}
