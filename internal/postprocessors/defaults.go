package postprocessors

import (
	"github.com/custodia-labs/docprep/internal/core/ports/driven"
	"github.com/custodia-labs/docprep/internal/postprocessors/anchors"
	"github.com/custodia-labs/docprep/internal/postprocessors/heading"
	"github.com/custodia-labs/docprep/internal/postprocessors/tidy"
)

// RegisterDefaults registers all built-in processors with the registry.
// Call this during application initialisation to enable standard processors.
func RegisterDefaults(r *Registry) {
	r.Register(anchors.Name, buildAnchors)
	r.Register(heading.Name, buildHeading)
	r.Register(tidy.Name, buildTidy)
}

// DefaultRegistry returns a registry with the built-in processors.
func DefaultRegistry() *Registry {
	r := NewRegistry()
	RegisterDefaults(r)
	return r
}

func buildAnchors(_ map[string]any) (driven.PostProcessor, error) {
	return anchors.New(), nil
}

func buildHeading(_ map[string]any) (driven.PostProcessor, error) {
	return heading.New(), nil
}

// buildTidy creates a whitespace tidier from generic config.
// Supported config keys:
//   - max_blank_lines (int): Consecutive blank lines kept (default: 1)
func buildTidy(cfg map[string]any) (driven.PostProcessor, error) {
	var opts []tidy.Option

	if cfg != nil {
		if n := getIntFromConfig(cfg, "max_blank_lines"); n > 0 {
			opts = append(opts, tidy.WithMaxBlankLines(n))
		}
	}

	return tidy.New(opts...), nil
}

// getIntFromConfig safely extracts an int from generic config map.
// Handles int, int64, and float64 types that may come from TOML/JSON parsing.
func getIntFromConfig(cfg map[string]any, key string) int {
	val, ok := cfg[key]
	if !ok {
		return 0
	}

	switch v := val.(type) {
	case int:
		return v
	case int64:
		return int(v)
	case float64:
		return int(v)
	default:
		return 0
	}
}
