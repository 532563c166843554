package tree

// Kind categorizes the two kinds of entries in a layout tree.
type Kind string

const (
	KindFolder Kind = "folder"
	KindFile   Kind = "file"
)

// Valid reports whether k is one of the known kinds.
func (k Kind) Valid() bool {
	return k == KindFolder || k == KindFile
}

// Node represents a single entry in the layout tree. It can be a folder or a file.
//
// Children is non-nil (possibly empty) for folders and nil for files. Nodes
// reachable from a committed snapshot are treated as immutable; every edit
// builds new nodes along the changed path instead of mutating in place.
type Node struct {
	Name     string
	Kind     Kind
	ID       string
	Children []*Node

	// Editing asks a front end to open the node in rename mode. It carries
	// no structural meaning and is cleared when an edit commits.
	Editing bool
}

// IsFolder reports whether n is a folder.
func (n *Node) IsFolder() bool {
	return n != nil && n.Kind == KindFolder
}

// NewFolder returns a folder node with an empty children slice.
func NewFolder(name string, children ...*Node) *Node {
	if children == nil {
		children = []*Node{}
	}
	return &Node{Name: name, Kind: KindFolder, Children: children}
}

// NewFile returns a file node.
func NewFile(name string) *Node {
	return &Node{Name: name, Kind: KindFile}
}
