package tree

import "strings"

// FindByID returns the first node in pre-order whose id matches, or nil.
func FindByID(root *Node, id string) *Node {
	if root == nil || id == "" {
		return nil
	}
	if root.ID == id {
		return root
	}
	for _, child := range root.Children {
		if found := FindByID(child, id); found != nil {
			return found
		}
	}
	return nil
}

// ParentOf returns the folder holding the node with the given id and the
// node's index among its siblings. It returns (nil, -1) for the root or an
// unknown id.
func ParentOf(root *Node, id string) (*Node, int) {
	if root == nil || id == "" {
		return nil, -1
	}
	for i, child := range root.Children {
		if child.ID == id {
			return root, i
		}
		if parent, idx := ParentOf(child, id); parent != nil {
			return parent, idx
		}
	}
	return nil, -1
}

// PathTo returns the chain of nodes from root down to the node with the given
// id, inclusive, or nil when the id is not in the tree.
func PathTo(root *Node, id string) []*Node {
	if root == nil || id == "" {
		return nil
	}
	if root.ID == id {
		return []*Node{root}
	}
	for _, child := range root.Children {
		if rest := PathTo(child, id); rest != nil {
			return append([]*Node{root}, rest...)
		}
	}
	return nil
}

// ReplaceByID returns a tree equal to root except that the node with the
// given id is replaced by updater's result. The updater receives a shallow
// copy whose Children slice it may freely modify. Ancestors of the node are
// copied, other subtrees are shared with root.
//
// When no node matches, root itself is returned.
func ReplaceByID(root *Node, id string, updater func(*Node) *Node) *Node {
	out, _ := replace(root, id, updater)
	return out
}

func replace(n *Node, id string, updater func(*Node) *Node) (*Node, bool) {
	if n == nil {
		return nil, false
	}
	if n.ID == id {
		return updater(shallowCopy(n)), true
	}
	for i, child := range n.Children {
		updated, ok := replace(child, id, updater)
		if !ok {
			continue
		}
		cp := shallowCopy(n)
		cp.Children[i] = updated
		return cp, true
	}
	return n, false
}

// RemoveByID returns a tree without the node that has the given id. The root
// is never removed; asking for it, or for an unknown id, returns root.
func RemoveByID(root *Node, id string) *Node {
	parent, idx := ParentOf(root, id)
	if parent == nil {
		return root
	}
	return ReplaceByID(root, parent.ID, func(p *Node) *Node {
		p.Children = append(p.Children[:idx:idx], p.Children[idx+1:]...)
		return p
	})
}

// Clone returns a deep copy of root that shares nothing with it.
func Clone(root *Node) *Node {
	if root == nil {
		return nil
	}
	out := &Node{
		Name:    root.Name,
		Kind:    root.Kind,
		ID:      root.ID,
		Editing: root.Editing,
	}
	if root.Children != nil {
		out.Children = make([]*Node, len(root.Children))
		for i, child := range root.Children {
			out.Children[i] = Clone(child)
		}
	}
	return out
}

// ClearEditing returns a tree in which no node has its Editing flag set.
// Subtrees without a flagged node are shared with root.
func ClearEditing(root *Node) *Node {
	if root == nil {
		return nil
	}
	var out *Node
	if root.Editing {
		out = shallowCopy(root)
		out.Editing = false
	}
	for i, child := range root.Children {
		cleared := ClearEditing(child)
		if cleared == child {
			continue
		}
		if out == nil {
			out = shallowCopy(root)
		}
		out.Children[i] = cleared
	}
	if out == nil {
		return root
	}
	return out
}

// Walk calls fn for every node in pre-order with its depth below root.
// Returning false from fn skips that node's children.
func Walk(root *Node, fn func(n *Node, depth int) bool) {
	walk(root, 0, fn)
}

func walk(n *Node, depth int, fn func(*Node, int) bool) {
	if n == nil {
		return
	}
	if !fn(n, depth) {
		return
	}
	for _, child := range n.Children {
		walk(child, depth+1, fn)
	}
}

// Count returns the number of folders and files under root, root included.
func Count(root *Node) (folders, files int) {
	Walk(root, func(n *Node, _ int) bool {
		if n.Kind == KindFolder {
			folders++
		} else {
			files++
		}
		return true
	})
	return folders, files
}

// Equal reports whether a and b hold the same names, kinds, ids and
// child order. Editing flags are ignored.
func Equal(a, b *Node) bool {
	return equal(a, b, true)
}

// SameShape is Equal without comparing ids.
func SameShape(a, b *Node) bool {
	return equal(a, b, false)
}

func equal(a, b *Node, withIDs bool) bool {
	if a == nil || b == nil {
		return a == b
	}
	if a.Name != b.Name || a.Kind != b.Kind {
		return false
	}
	if withIDs && a.ID != b.ID {
		return false
	}
	if (a.Children == nil) != (b.Children == nil) || len(a.Children) != len(b.Children) {
		return false
	}
	for i := range a.Children {
		if !equal(a.Children[i], b.Children[i], withIDs) {
			return false
		}
	}
	return true
}

func shallowCopy(n *Node) *Node {
	cp := *n
	if n.Children != nil {
		cp.Children = make([]*Node, len(n.Children))
		copy(cp.Children, n.Children)
	}
	return &cp
}

// FindByPath resolves a slash separated path of names below root, e.g.
// "src/main.go". An empty path, "." or "/" is the root itself.
func FindByPath(root *Node, path string) *Node {
	if root == nil {
		return nil
	}
	cur := root
	for _, seg := range strings.Split(strings.Trim(path, "/"), "/") {
		if seg == "" || seg == "." {
			continue
		}
		var next *Node
		for _, child := range cur.Children {
			if child.Name == seg {
				next = child
				break
			}
		}
		if next == nil {
			return nil
		}
		cur = next
	}
	return cur
}
