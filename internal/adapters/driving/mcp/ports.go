package mcp

import (
	"github.com/custodia-labs/docprep/internal/core/ports/driving"
)

// Ports aggregates all driving port interfaces required by the MCP server.
// This provides a single injection point for dependency injection.
type Ports struct {
	// Docs runs preparations and lists their history.
	Docs driving.DocsService
}

// Validate ensures all required ports are set.
func (p *Ports) Validate() error {
	if p.Docs == nil {
		return ErrMissingDocsService
	}
	return nil
}
