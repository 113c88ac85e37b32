package mcp

import (
	"context"
	"errors"

	"github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/custodia-labs/docprep/internal/connectors/confluence"
	"github.com/custodia-labs/docprep/internal/core/ports/driving"
)

// ClassifyInput is the input schema for the classify_url tool.
type ClassifyInput struct {
	URL string `json:"url" jsonschema:"the documentation URL to classify"`
}

// ClassifyOutput is the output schema for the classify_url tool.
type ClassifyOutput struct {
	Confluence bool   `json:"confluence"`
	Annotation string `json:"annotation,omitempty"`
	SpaceKey   string `json:"space_key,omitempty"`
	PageTitle  string `json:"page_title,omitempty"`
	PageID     string `json:"page_id,omitempty"`
	Error      string `json:"error,omitempty"`
}

// PrepareInput is the input schema for the prepare_docs tool.
type PrepareInput struct {
	Annotation string `json:"annotation" jsonschema:"techdocs reference, e.g. confluence-url:https://... or url:https://..."`
	OutputDir  string `json:"output_dir,omitempty" jsonschema:"directory that receives the prepared site; must be missing, empty or a previous docprep output (default: a temporary directory)"`
	Force      bool   `json:"force,omitempty" jsonschema:"rebuild even if the previous output is still current"`
}

// PrepareOutput is the output schema for the prepare_docs tool.
type PrepareOutput struct {
	OutputDir   string `json:"output_dir"`
	CacheToken  string `json:"cache_token"`
	SiteName    string `json:"site_name"`
	NotModified bool   `json:"not_modified"`
}

// registerTools registers all tool handlers with the MCP server.
func (s *Server) registerTools() {
	mcp.AddTool(s.server, &mcp.Tool{
		Name:        "classify_url",
		Description: "Check whether a URL points at a Confluence page and how it would be located",
	}, s.handleClassify)

	mcp.AddTool(s.server, &mcp.Tool{
		Name:        "prepare_docs",
		Description: "Fetch a Confluence page tree and write it as a markdown documentation site",
	}, s.handlePrepare)
}

// handleClassify handles the classify_url tool invocation.
func (s *Server) handleClassify(
	_ context.Context,
	_ *mcp.CallToolRequest,
	input ClassifyInput,
) (*mcp.CallToolResult, ClassifyOutput, error) {
	if input.URL == "" {
		return nil, ClassifyOutput{}, errors.New("url is required")
	}

	output := ClassifyOutput{Confluence: confluence.IsConfluenceURL(input.URL)}
	if !output.Confluence {
		return nil, output, nil
	}

	output.Annotation = confluence.PrefixConfluenceURL + input.URL
	locator, err := confluence.ResolveLocator(input.URL)
	if err != nil {
		output.Error = err.Error()
		return nil, output, nil
	}
	output.SpaceKey = locator.SpaceKey
	output.PageTitle = locator.PageTitle
	output.PageID = locator.PageID

	return nil, output, nil
}

// handlePrepare handles the prepare_docs tool invocation.
func (s *Server) handlePrepare(
	ctx context.Context,
	_ *mcp.CallToolRequest,
	input PrepareInput,
) (*mcp.CallToolResult, PrepareOutput, error) {
	if input.Annotation == "" {
		return nil, PrepareOutput{}, errors.New("annotation is required")
	}

	result, err := s.ports.Docs.Build(ctx, input.Annotation, driving.BuildOptions{
		Force:     input.Force,
		OutputDir: input.OutputDir,
	})
	if err != nil {
		return nil, PrepareOutput{}, err
	}

	return nil, PrepareOutput{
		OutputDir:   result.Record.OutputDir,
		CacheToken:  result.Record.CacheToken,
		SiteName:    result.Record.SiteName,
		NotModified: result.NotModified,
	}, nil
}
