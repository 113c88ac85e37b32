package workspace

import (
	"errors"
	"fmt"
	"os"
	"path"
	"path/filepath"

	"github.com/custodia-labs/docprep/internal/core/domain"
	"github.com/custodia-labs/docprep/internal/core/ports/driven"
)

const (
	// DocsDir is the directory below the root holding markdown files.
	DocsDir = "docs"

	// ImageDir is the directory below DocsDir holding downloaded attachments.
	ImageDir = "img"

	// ManifestFile is the navigation manifest written at the root.
	ManifestFile = "mkdocs.yml"

	dirPattern = "docprep-*"
)

// Factory creates workspaces below BaseDir.
// An empty BaseDir uses the system temporary directory.
type Factory struct {
	BaseDir string
}

var _ driven.WorkspaceFactory = (*Factory)(nil)

// NewFactory creates a workspace factory.
func NewFactory(baseDir string) *Factory {
	return &Factory{BaseDir: baseDir}
}

// Create makes a new, empty workspace.
func (f *Factory) Create() (driven.Workspace, error) {
	if f.BaseDir != "" {
		if err := os.MkdirAll(f.BaseDir, 0755); err != nil {
			return nil, fmt.Errorf("creating workspace base: %w", err)
		}
	}
	root, err := os.MkdirTemp(f.BaseDir, dirPattern)
	if err != nil {
		return nil, fmt.Errorf("creating workspace: %w", err)
	}
	if err := os.Mkdir(filepath.Join(root, DocsDir), 0755); err != nil {
		_ = os.RemoveAll(root)
		return nil, fmt.Errorf("creating docs directory: %w", err)
	}
	return &Workspace{root: root}, nil
}

// Workspace is a directory on the local filesystem.
type Workspace struct {
	root string
}

var _ driven.Workspace = (*Workspace)(nil)

// Root returns the workspace directory.
func (w *Workspace) Root() string {
	return w.root
}

// WriteDocument writes content to docs/<relPath>.
func (w *Workspace) WriteDocument(relPath, content string) error {
	target, err := w.docsPath(relPath)
	if err != nil {
		return err
	}
	if err := os.MkdirAll(filepath.Dir(target), 0755); err != nil {
		return fmt.Errorf("creating directory for %s: %w", relPath, err)
	}
	if err := os.WriteFile(target, []byte(content), 0644); err != nil {
		return fmt.Errorf("writing %s: %w", relPath, err)
	}
	return nil
}

// ImageDir returns docs/img/<pageID> and its link relative to docs/.
func (w *Workspace) ImageDir(pageID string) (dir, link string, err error) {
	link = path.Join(ImageDir, pageID)
	dir, err = w.docsPath(link)
	if err != nil {
		return "", "", err
	}
	if err := os.MkdirAll(dir, 0755); err != nil {
		return "", "", fmt.Errorf("creating image directory: %w", err)
	}
	return dir, link, nil
}

// WriteManifest writes mkdocs.yml at the workspace root.
func (w *Workspace) WriteManifest(siteName string, nav []domain.NavNode) error {
	data, err := EncodeManifest(siteName, nav)
	if err != nil {
		return err
	}
	if err := os.WriteFile(filepath.Join(w.root, ManifestFile), data, 0644); err != nil {
		return fmt.Errorf("writing manifest: %w", err)
	}
	return nil
}

// Remove deletes the workspace.
func (w *Workspace) Remove() error {
	if err := os.RemoveAll(w.root); err != nil {
		return fmt.Errorf("removing workspace: %w", err)
	}
	return nil
}

func (w *Workspace) docsPath(relPath string) (string, error) {
	rel := filepath.FromSlash(relPath)
	if !filepath.IsLocal(rel) {
		return "", &domain.InputError{Input: relPath, Reason: "path escapes the workspace"}
	}
	return filepath.Join(w.root, DocsDir, rel), nil
}

// Publisher moves finished workspaces to their destination.
type Publisher struct{}

var _ driven.OutputPublisher = Publisher{}

// Publish moves src to dest. A rename is tried first; across filesystems
// the tree is copied and src removed. An existing dest is replaced only
// when it is empty or holds nothing but a previous preparation.
func (Publisher) Publish(src, dest string) error {
	if err := checkReplaceable(dest); err != nil {
		return err
	}
	if err := os.RemoveAll(dest); err != nil {
		return fmt.Errorf("clearing %s: %w", dest, err)
	}
	if err := os.MkdirAll(filepath.Dir(dest), 0755); err != nil {
		return fmt.Errorf("creating parent of %s: %w", dest, err)
	}

	err := os.Rename(src, dest)
	if err == nil {
		return nil
	}
	var linkErr *os.LinkError
	if !errors.As(err, &linkErr) {
		return fmt.Errorf("moving output: %w", err)
	}

	if err := os.CopyFS(dest, os.DirFS(src)); err != nil {
		_ = os.RemoveAll(dest)
		return fmt.Errorf("copying output: %w", err)
	}
	return os.RemoveAll(src)
}

// checkReplaceable fails unless dest is missing, an empty directory, or a
// directory holding exactly a manifest file and a docs directory.
func checkReplaceable(dest string) error {
	info, err := os.Lstat(dest)
	if errors.Is(err, os.ErrNotExist) {
		return nil
	}
	if err != nil {
		return fmt.Errorf("inspecting %s: %w", dest, err)
	}
	if !info.IsDir() {
		return fmt.Errorf("%w: %s is not a directory", domain.ErrOutputDirInUse, dest)
	}

	entries, err := os.ReadDir(dest)
	if err != nil {
		return fmt.Errorf("inspecting %s: %w", dest, err)
	}
	if len(entries) == 0 {
		return nil
	}

	var manifest, docs bool
	for _, e := range entries {
		switch {
		case e.Name() == ManifestFile && e.Type().IsRegular():
			manifest = true
		case e.Name() == DocsDir && e.IsDir():
			docs = true
		default:
			return fmt.Errorf("%w: %s contains %q", domain.ErrOutputDirInUse, dest, e.Name())
		}
	}
	if !manifest || !docs {
		return fmt.Errorf("%w: %s is not a previous preparation", domain.ErrOutputDirInUse, dest)
	}
	return nil
}
