package workspace

import (
	"bytes"
	"fmt"

	"gopkg.in/yaml.v3"

	"github.com/custodia-labs/docprep/internal/core/domain"
)

// ManifestPlugin is the single plugin listed in every manifest.
const ManifestPlugin = "techdocs-core"

// EncodeManifest renders the navigation manifest.
//
// Leaves become single-key mappings from title to path and groups become
// single-key mappings from title to a nested sequence.
func EncodeManifest(siteName string, nav []domain.NavNode) ([]byte, error) {
	navNode, err := encodeNav(nav)
	if err != nil {
		return nil, err
	}

	doc := mapping(
		scalar("site_name"), scalar(siteName),
		scalar("docs_dir"), scalar(DocsDir),
		scalar("plugins"), sequence(scalar(ManifestPlugin)),
		scalar("nav"), navNode,
	)

	var buf bytes.Buffer
	enc := yaml.NewEncoder(&buf)
	enc.SetIndent(2)
	if err := enc.Encode(doc); err != nil {
		return nil, fmt.Errorf("encoding manifest: %w", err)
	}
	if err := enc.Close(); err != nil {
		return nil, fmt.Errorf("encoding manifest: %w", err)
	}
	return buf.Bytes(), nil
}

func encodeNav(nav []domain.NavNode) (*yaml.Node, error) {
	seq := sequence()
	for _, n := range nav {
		var value *yaml.Node
		switch n := n.(type) {
		case domain.NavLeaf:
			value = scalar(n.Path)
		case domain.NavGroup:
			children, err := encodeNav(n.Children)
			if err != nil {
				return nil, err
			}
			value = children
		default:
			return nil, fmt.Errorf("unknown navigation node %T", n)
		}
		seq.Content = append(seq.Content, mapping(scalar(n.NavTitle()), value))
	}
	return seq, nil
}

func scalar(v string) *yaml.Node {
	return &yaml.Node{Kind: yaml.ScalarNode, Tag: "!!str", Value: v}
}

func sequence(items ...*yaml.Node) *yaml.Node {
	return &yaml.Node{Kind: yaml.SequenceNode, Tag: "!!seq", Content: items}
}

func mapping(pairs ...*yaml.Node) *yaml.Node {
	return &yaml.Node{Kind: yaml.MappingNode, Tag: "!!map", Content: pairs}
}
