package tree

import "strings"

// Line is one row of a flattened tree, ready for display.
type Line struct {
	Node   *Node
	Depth  int
	Prefix string // box-drawing connector, e.g. "│  ├─ "
}

// Flatten lists every node of root in pre-order with its tree connector.
// The root line has an empty prefix.
func Flatten(root *Node) []Line {
	return FlattenFolded(root, nil)
}

// FlattenFolded is Flatten but leaves out the descendants of every folder
// for which folded reports true. The folded folder itself is listed. A nil
// folded hides nothing.
func FlattenFolded(root *Node, folded func(*Node) bool) []Line {
	if root == nil {
		return nil
	}
	lines := []Line{{Node: root}}
	if folded == nil || !folded(root) {
		flatten(root, "", 1, folded, &lines)
	}
	return lines
}

func flatten(n *Node, indent string, depth int, folded func(*Node) bool, lines *[]Line) {
	for i, child := range n.Children {
		last := i == len(n.Children)-1
		connector := "├─ "
		if last {
			connector = "└─ "
		}
		*lines = append(*lines, Line{Node: child, Depth: depth, Prefix: indent + connector})

		if folded != nil && folded(child) {
			continue
		}
		childIndent := indent + "│  "
		if last {
			childIndent = indent + "   "
		}
		flatten(child, childIndent, depth+1, folded, lines)
	}
}

// Outline renders root as an indented text tree. Folders get a trailing
// slash.
func Outline(root *Node) string {
	var b strings.Builder
	for _, line := range Flatten(root) {
		b.WriteString(line.Prefix)
		b.WriteString(line.Node.Name)
		if line.Node.Kind == KindFolder {
			b.WriteString("/")
		}
		b.WriteString("\n")
	}
	return b.String()
}
