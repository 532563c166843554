// Package editor applies user edits to the present snapshot of a history.
//
// Each operation validates its input, builds a new snapshot and commits it.
// Rejected edits are not errors: the state comes back untouched and the
// Outcome says why.
package editor

import (
	"strings"

	"github.com/DevHugoP/sightToScript/pkg/history"
	"github.com/DevHugoP/sightToScript/pkg/tree"
)

// Default names given to freshly added nodes.
const (
	DefaultFolderName = "New folder"
	DefaultFileName   = "new_file.txt"
)

// Reason explains why an edit was not applied.
type Reason string

const (
	ReasonNone          Reason = ""
	ReasonNoTree        Reason = "no tree loaded"
	ReasonNotFound      Reason = "node not found"
	ReasonEmptyName     Reason = "name cannot be empty"
	ReasonBadName       Reason = "name cannot be . or .., or contain a slash, backslash, quote or control character"
	ReasonRootProtected Reason = "cannot delete the root node"
	ReasonNotFolder     Reason = "children can only be added to folders"
	ReasonBadKind       Reason = "unknown node kind"
)

// Outcome reports what an edit did.
type Outcome struct {
	Applied bool
	Reason  Reason
	// NodeID is the node the edit touched; for AddChild it is the new node.
	NodeID string
}

func rejected(r Reason, id string) Outcome {
	return Outcome{Reason: r, NodeID: id}
}

// Rename sets the name of the node with the given id.
func Rename(s history.State, id, newName string) (history.State, Outcome) {
	name := strings.TrimSpace(newName)
	switch {
	case s.Present == nil:
		return s, rejected(ReasonNoTree, id)
	case name == "":
		return s, rejected(ReasonEmptyName, id)
	case !tree.ValidName(name):
		return s, rejected(ReasonBadName, id)
	case tree.FindByID(s.Present, id) == nil:
		return s, rejected(ReasonNotFound, id)
	}

	next := tree.ReplaceByID(tree.ClearEditing(s.Present), id, func(n *tree.Node) *tree.Node {
		n.Name = name
		n.Editing = false
		return n
	})
	return history.Commit(s, next), Outcome{Applied: true, NodeID: id}
}

// Delete removes the node with the given id together with its subtree.
// The root can not be deleted.
func Delete(s history.State, id string) (history.State, Outcome) {
	switch {
	case s.Present == nil:
		return s, rejected(ReasonNoTree, id)
	case s.Present.ID == id:
		return s, rejected(ReasonRootProtected, id)
	case tree.FindByID(s.Present, id) == nil:
		return s, rejected(ReasonNotFound, id)
	}

	next := tree.RemoveByID(tree.ClearEditing(s.Present), id)
	return history.Commit(s, next), Outcome{Applied: true, NodeID: id}
}

// AddChild appends a new node of the given kind to the folder with parentID.
// The new node has a default name and is flagged for editing so a front end
// can open it in rename mode straight away.
func AddChild(s history.State, parentID string, kind tree.Kind) (history.State, Outcome) {
	if s.Present == nil {
		return s, rejected(ReasonNoTree, parentID)
	}
	if !kind.Valid() {
		return s, rejected(ReasonBadKind, parentID)
	}
	parent := tree.FindByID(s.Present, parentID)
	if parent == nil {
		return s, rejected(ReasonNotFound, parentID)
	}
	if !parent.IsFolder() {
		return s, rejected(ReasonNotFolder, parentID)
	}

	child := newChild(kind)
	next := tree.ReplaceByID(tree.ClearEditing(s.Present), parentID, func(n *tree.Node) *tree.Node {
		n.Children = append(n.Children, child)
		return n
	})
	return history.Commit(s, next), Outcome{Applied: true, NodeID: child.ID}
}

func newChild(kind tree.Kind) *tree.Node {
	var n *tree.Node
	if kind == tree.KindFolder {
		n = tree.NewFolder(DefaultFolderName)
	} else {
		n = tree.NewFile(DefaultFileName)
	}
	n.ID = tree.NewID()
	n.Editing = true
	return n
}
