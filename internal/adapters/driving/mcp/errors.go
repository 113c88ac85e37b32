// Package mcp provides an MCP (Model Context Protocol) server adapter for docprep.
// It lets AI assistants classify documentation URLs and prepare page trees.
package mcp

import "errors"

// ErrMissingDocsService is returned when the docs service is not provided.
var ErrMissingDocsService = errors.New("mcp: docs service is required")
