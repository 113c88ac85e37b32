package services

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/google/uuid"

	"github.com/custodia-labs/docprep/internal/core/domain"
	"github.com/custodia-labs/docprep/internal/core/ports/driven"
	"github.com/custodia-labs/docprep/internal/core/ports/driving"
	"github.com/custodia-labs/docprep/internal/logger"
)

// Ensure DocsService implements the interface.
var _ driving.DocsService = (*DocsService)(nil)

// DocsService runs preparations and remembers their cache tokens.
type DocsService struct {
	preparer  driving.Preparer
	store     driven.PreparationStore
	publisher driven.OutputPublisher
}

// NewDocsService creates a docs service.
func NewDocsService(preparer driving.Preparer, store driven.PreparationStore, publisher driven.OutputPublisher) *DocsService {
	return &DocsService{
		preparer:  preparer,
		store:     store,
		publisher: publisher,
	}
}

// Build prepares ref. A remembered cache token is offered to the preparer
// unless opts.Force is set or the remembered output no longer exists.
func (s *DocsService) Build(ctx context.Context, ref string, opts driving.BuildOptions) (*driving.BuildResult, error) {
	var previous *domain.PreparationRecord
	if !opts.Force {
		record, err := s.store.Get(ctx, ref)
		switch {
		case err == nil:
			if _, statErr := os.Stat(record.OutputDir); statErr == nil {
				previous = record
			} else {
				logger.Debug("previous output %s is gone, rebuilding", record.OutputDir)
			}
		case errors.Is(err, domain.ErrNotFound):
		default:
			return nil, fmt.Errorf("load previous preparation: %w", err)
		}
	}

	var prepareOpts domain.PrepareOptions
	if previous != nil {
		prepareOpts.ETag = previous.CacheToken
	}

	result, err := s.preparer.Prepare(ctx, ref, prepareOpts)
	if errors.Is(err, domain.ErrNotModified) && previous != nil {
		return &driving.BuildResult{NotModified: true, Record: *previous}, nil
	}
	if err != nil {
		return nil, err
	}

	outputDir := result.OutputDir
	if opts.OutputDir != "" {
		dest, err := filepath.Abs(opts.OutputDir)
		if err != nil {
			return nil, fmt.Errorf("resolve output directory: %w", err)
		}
		if err := s.publisher.Publish(result.OutputDir, dest); err != nil {
			if rmErr := os.RemoveAll(result.OutputDir); rmErr != nil {
				logger.Warn("removing unpublished output %s: %v", result.OutputDir, rmErr)
			}
			return nil, fmt.Errorf("publish output: %w", err)
		}
		outputDir = dest
	}

	record := domain.PreparationRecord{
		ID:         uuid.NewString(),
		Ref:        ref,
		CacheToken: result.CacheToken,
		OutputDir:  outputDir,
		SiteName:   result.SiteName,
		PreparedAt: time.Now(),
	}
	if err := s.store.Save(ctx, record); err != nil {
		return nil, fmt.Errorf("save preparation: %w", err)
	}

	return &driving.BuildResult{Record: record}, nil
}

// History returns remembered preparations, most recent first.
func (s *DocsService) History(ctx context.Context) ([]domain.PreparationRecord, error) {
	return s.store.List(ctx)
}
