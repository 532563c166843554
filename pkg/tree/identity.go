package tree

import "github.com/google/uuid"

// NewID returns a fresh node identifier.
func NewID() string {
	return uuid.NewString()
}

// AssignIDs returns a deep copy of root where every node without an id gets a
// fresh one and every Editing flag is cleared. Ids already present are kept,
// so stamping an already stamped tree only copies it.
func AssignIDs(root *Node) *Node {
	if root == nil {
		return nil
	}

	out := &Node{
		Name: root.Name,
		Kind: root.Kind,
		ID:   root.ID,
	}
	if out.ID == "" {
		out.ID = NewID()
	}

	if root.Kind == KindFolder {
		out.Children = make([]*Node, 0, len(root.Children))
		for _, child := range root.Children {
			out.Children = append(out.Children, AssignIDs(child))
		}
	}

	return out
}
