package domain

// NavNode is one entry of the navigation tree.
// It is either a NavLeaf or a NavGroup; the interface is sealed so that
// type switches over it stay exhaustive.
type NavNode interface {
	// NavTitle returns the label shown in navigation.
	NavTitle() string

	navNode()
}

// NavLeaf points a navigation title at a markdown file.
type NavLeaf struct {
	Title string

	// Path is relative to the docs directory, using forward slashes.
	Path string
}

// NavTitle returns the leaf label.
func (l NavLeaf) NavTitle() string { return l.Title }

func (NavLeaf) navNode() {}

// NavGroup is a titled section holding further navigation entries.
type NavGroup struct {
	Title    string
	Children []NavNode
}

// NavTitle returns the group label.
func (g NavGroup) NavTitle() string { return g.Title }

func (NavGroup) navNode() {}

// OverviewTitle labels the leaf a page with content gets inside its own group.
const OverviewTitle = "Overview"
