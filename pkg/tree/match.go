package tree

import (
	"fmt"
	"strings"

	"github.com/bmatcuk/doublestar/v4"
)

// Hit is a node found by Match together with its path below the root.
type Hit struct {
	Path string
	Node *Node
}

// IsPattern reports whether s contains glob metacharacters.
func IsPattern(s string) bool {
	return strings.ContainsAny(s, "*?[{")
}

// Match returns the nodes whose slash path below root matches a doublestar
// pattern such as "src/**/*.ts", in pre-order. The root itself has no path
// and is never matched.
func Match(root *Node, pattern string) ([]Hit, error) {
	pattern = strings.Trim(pattern, "/")
	if !doublestar.ValidatePattern(pattern) {
		return nil, fmt.Errorf("bad pattern %q", pattern)
	}

	var hits []Hit
	var visit func(n *Node, parent string)
	visit = func(n *Node, parent string) {
		for _, child := range n.Children {
			path := child.Name
			if parent != "" {
				path = parent + "/" + child.Name
			}
			if ok, _ := doublestar.Match(pattern, path); ok {
				hits = append(hits, Hit{Path: path, Node: child})
			}
			visit(child, path)
		}
	}
	if root != nil {
		visit(root, "")
	}
	return hits, nil
}
