package service

import (
	"github.com/DevHugoP/sightToScript/pkg/editor"
	"github.com/DevHugoP/sightToScript/pkg/history"
	"github.com/DevHugoP/sightToScript/pkg/models"
	"github.com/DevHugoP/sightToScript/pkg/script"
	"github.com/DevHugoP/sightToScript/pkg/tree"
)

// Session is one editing session over a tree: its history plus where it
// came from. The zero value holds no tree.
type Session struct {
	State history.State

	// StoreID and Name are set when the tree was opened from or saved to
	// the store.
	StoreID string
	Name    string
	// SourcePath is set when the tree was read from a file.
	SourcePath string

	// saved is the snapshot at the last load or save.
	saved *tree.Node
}

// NewSession stamps root with ids and starts an empty history.
func NewSession(root *tree.Node) *Session {
	stamped := tree.AssignIDs(root)
	return &Session{
		State: history.Init(stamped),
		saved: stamped,
	}
}

// Present returns the current snapshot.
func (s *Session) Present() *tree.Node {
	return s.State.Present
}

// Rename renames a node. See editor.Rename.
func (s *Session) Rename(id, name string) editor.Outcome {
	var out editor.Outcome
	s.State, out = editor.Rename(s.State, id, name)
	return out
}

// Delete removes a node. See editor.Delete.
func (s *Session) Delete(id string) editor.Outcome {
	var out editor.Outcome
	s.State, out = editor.Delete(s.State, id)
	return out
}

// AddChild adds a folder or file under a folder. See editor.AddChild.
func (s *Session) AddChild(parentID string, kind tree.Kind) editor.Outcome {
	var out editor.Outcome
	s.State, out = editor.AddChild(s.State, parentID, kind)
	return out
}

// Undo steps back; it reports false when there is nothing to undo.
func (s *Session) Undo() bool {
	var ok bool
	s.State, ok = history.Undo(s.State)
	return ok
}

// Redo steps forward; it reports false when there is nothing to redo.
func (s *Session) Redo() bool {
	var ok bool
	s.State, ok = history.Redo(s.State)
	return ok
}

// Script renders the present snapshot.
func (s *Session) Script(d script.Dialect) (string, error) {
	return script.Generate(s.State.Present, d)
}

// Modified reports whether the present tree's shape differs from the one
// last loaded or saved.
func (s *Session) Modified() bool {
	return !tree.SameShape(s.State.Present, s.saved)
}

// MarkSaved records that rec holds the session's tree.
func (s *Session) MarkSaved(rec *models.SavedStructure) {
	s.StoreID = rec.ID
	s.Name = rec.Name
	s.saved = rec.Structure
}
