package mcp

import (
	"context"

	"github.com/custodia-labs/docprep/internal/core/domain"
	"github.com/custodia-labs/docprep/internal/core/ports/driving"
)

// mockDocsService is a mock implementation of driving.DocsService.
type mockDocsService struct {
	result  *driving.BuildResult
	records []domain.PreparationRecord
	err     error

	ref  string
	opts driving.BuildOptions
}

func (m *mockDocsService) Build(_ context.Context, ref string, opts driving.BuildOptions) (*driving.BuildResult, error) {
	m.ref = ref
	m.opts = opts
	return m.result, m.err
}

func (m *mockDocsService) History(_ context.Context) ([]domain.PreparationRecord, error) {
	return m.records, m.err
}
