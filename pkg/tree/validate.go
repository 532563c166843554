package tree

import (
	"encoding/hex"
	"errors"
	"fmt"
	"strings"
	"unicode"

	"lukechampine.com/blake3"
)

// ErrInvalidTree is returned when a tree breaks a structural rule.
var ErrInvalidTree = errors.New("invalid tree")

// ValidName reports whether name can be used as a single path segment and
// placed inside a double quoted script argument. It rejects the relative
// names "." and "..", path separators, double quotes (including the curly
// ones PowerShell also treats as quotes) and control characters.
func ValidName(name string) bool {
	trimmed := strings.TrimSpace(name)
	if trimmed == "" || trimmed == "." || trimmed == ".." {
		return false
	}
	if strings.ContainsAny(name, "/\\\"\u201c\u201d\u201e") {
		return false
	}
	for _, r := range name {
		if unicode.IsControl(r) {
			return false
		}
	}
	return true
}

// Validate checks the structural rules of a tree: the root is a folder,
// names are usable path segments, files have no children, folders have a
// children slice and ids are unique. Missing ids are allowed.
func Validate(root *Node) error {
	if root == nil {
		return fmt.Errorf("%w: empty tree", ErrInvalidTree)
	}
	if root.Kind != KindFolder {
		return fmt.Errorf("%w: root %q must be a folder", ErrInvalidTree, root.Name)
	}

	seen := make(map[string]bool)
	var err error
	Walk(root, func(n *Node, _ int) bool {
		if err != nil {
			return false
		}
		switch {
		case !n.Kind.Valid():
			err = fmt.Errorf("%w: node %q has unknown kind %q", ErrInvalidTree, n.Name, n.Kind)
		case !ValidName(n.Name):
			err = fmt.Errorf("%w: bad name %q", ErrInvalidTree, n.Name)
		case n.Kind == KindFile && n.Children != nil:
			err = fmt.Errorf("%w: file %q has children", ErrInvalidTree, n.Name)
		case n.Kind == KindFolder && n.Children == nil:
			err = fmt.Errorf("%w: folder %q has no children list", ErrInvalidTree, n.Name)
		case n.ID != "" && seen[n.ID]:
			err = fmt.Errorf("%w: duplicate id %s", ErrInvalidTree, n.ID)
		}
		if n.ID != "" {
			seen[n.ID] = true
		}
		return err == nil
	})
	return err
}

// Fingerprint returns a hex BLAKE3 digest of the tree's shape: names, kinds
// and child order. Ids and editing flags do not contribute, so a tree and its
// restamped copy share a fingerprint.
func Fingerprint(root *Node) string {
	h := blake3.New(32, nil)
	Walk(root, func(n *Node, depth int) bool {
		fmt.Fprintf(h, "%d\x00%s\x00%s\n", depth, n.Kind, n.Name)
		return true
	})
	return hex.EncodeToString(h.Sum(nil))
}
