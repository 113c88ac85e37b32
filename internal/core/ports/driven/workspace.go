package driven

import "github.com/custodia-labs/docprep/internal/core/domain"

// Workspace is the scratch directory one preparation writes into.
// It is exclusively owned by that preparation.
type Workspace interface {
	// Root returns the workspace directory.
	Root() string

	// WriteDocument writes a markdown file below docs/, creating
	// intermediate directories.
	WriteDocument(relPath, content string) error

	// ImageDir returns the absolute and docs-relative image directory for a
	// page, creating it if needed.
	ImageDir(pageID string) (dir, link string, err error)

	// WriteManifest writes the navigation manifest at the workspace root.
	WriteManifest(siteName string, nav []domain.NavNode) error

	// Remove deletes the workspace and everything in it.
	Remove() error
}

// WorkspaceFactory creates fresh workspaces.
type WorkspaceFactory interface {
	Create() (Workspace, error)
}

// OutputPublisher moves a finished preparation to its final location.
type OutputPublisher interface {
	// Publish moves the directory at src to dest, replacing anything
	// already at dest.
	Publish(src, dest string) error
}
