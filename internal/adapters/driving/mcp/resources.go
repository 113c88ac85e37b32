package mcp

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/custodia-labs/docprep/internal/adapters/driven/workspace"
)

const (
	// uriScheme is the custom URI scheme for docprep resources.
	uriScheme = "docprep://"
)

// registerResources registers all resource handlers with the MCP server.
func (s *Server) registerResources() {
	// Static resource for listing preparations.
	s.server.AddResource(&mcp.Resource{
		URI:         uriScheme + "preparations",
		Name:        "preparations",
		Description: "Remembered preparations, most recent first",
		MIMEType:    "application/json",
	}, s.handlePreparationsResource)

	// Template for the navigation manifest of one preparation.
	s.server.AddResourceTemplate(&mcp.ResourceTemplate{
		URITemplate: uriScheme + "preparations/{preparationId}/manifest",
		Name:        "preparation-manifest",
		Description: "Navigation manifest written by a preparation",
		MIMEType:    "application/yaml",
	}, s.handleManifestResource)
}

// handlePreparationsResource returns the preparation history.
func (s *Server) handlePreparationsResource(
	ctx context.Context,
	req *mcp.ReadResourceRequest,
) (*mcp.ReadResourceResult, error) {
	records, err := s.ports.Docs.History(ctx)
	if err != nil {
		return nil, fmt.Errorf("listing preparations: %w", err)
	}

	type preparationInfo struct {
		ID         string    `json:"id"`
		Annotation string    `json:"annotation"`
		SiteName   string    `json:"site_name"`
		CacheToken string    `json:"cache_token"`
		OutputDir  string    `json:"output_dir"`
		PreparedAt time.Time `json:"prepared_at"`
	}

	infos := make([]preparationInfo, len(records))
	for i := range records {
		infos[i] = preparationInfo{
			ID:         records[i].ID,
			Annotation: records[i].Ref,
			SiteName:   records[i].SiteName,
			CacheToken: records[i].CacheToken,
			OutputDir:  records[i].OutputDir,
			PreparedAt: records[i].PreparedAt,
		}
	}

	data, err := json.MarshalIndent(infos, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("marshalling preparations: %w", err)
	}

	return &mcp.ReadResourceResult{
		Contents: []*mcp.ResourceContents{{
			URI:      req.Params.URI,
			MIMEType: "application/json",
			Text:     string(data),
		}},
	}, nil
}

// handleManifestResource returns the manifest of a remembered preparation.
func (s *Server) handleManifestResource(
	ctx context.Context,
	req *mcp.ReadResourceRequest,
) (*mcp.ReadResourceResult, error) {
	id := extractPreparationID(req.Params.URI)
	if id == "" {
		return nil, mcp.ResourceNotFoundError(req.Params.URI)
	}

	records, err := s.ports.Docs.History(ctx)
	if err != nil {
		return nil, fmt.Errorf("listing preparations: %w", err)
	}

	for i := range records {
		if records[i].ID != id {
			continue
		}
		data, err := os.ReadFile(filepath.Join(records[i].OutputDir, workspace.ManifestFile))
		if err != nil {
			if os.IsNotExist(err) {
				return nil, mcp.ResourceNotFoundError(req.Params.URI)
			}
			return nil, fmt.Errorf("reading manifest: %w", err)
		}
		return &mcp.ReadResourceResult{
			Contents: []*mcp.ResourceContents{{
				URI:      req.Params.URI,
				MIMEType: "application/yaml",
				Text:     string(data),
			}},
		}, nil
	}

	return nil, mcp.ResourceNotFoundError(req.Params.URI)
}

// extractPreparationID extracts the id from a URI like docprep://preparations/{id}/manifest.
func extractPreparationID(uri string) string {
	const prefix = uriScheme + "preparations/"
	const suffix = "/manifest"

	if !strings.HasPrefix(uri, prefix) {
		return ""
	}

	uri = strings.TrimPrefix(uri, prefix)
	if !strings.HasSuffix(uri, suffix) {
		return ""
	}

	return strings.TrimSuffix(uri, suffix)
}
