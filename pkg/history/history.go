// Package history keeps a bounded undo/redo record of tree snapshots.
//
// A State is a plain value. Every transition returns a new State and leaves
// the old one intact, so hosts can hold on to earlier states safely.
package history

import "github.com/DevHugoP/sightToScript/pkg/tree"

// MaxHistory bounds the number of undoable snapshots kept in Past.
const MaxHistory = 20

// State holds the snapshots behind, at and ahead of the current tree.
// Past is ordered oldest first; Future is ordered next-to-redo first.
type State struct {
	Past    []*tree.Node
	Present *tree.Node
	Future  []*tree.Node
}

// Init starts a fresh history at root.
func Init(root *tree.Node) State {
	return State{Present: root}
}

// Commit records next as the present snapshot. The previous present moves to
// the end of Past, dropping the oldest entries beyond MaxHistory, and Future
// is cleared.
func Commit(s State, next *tree.Node) State {
	if s.Present == nil {
		return State{Past: clone(s.Past), Present: next}
	}

	past := append(clone(s.Past), s.Present)
	if len(past) > MaxHistory {
		past = past[len(past)-MaxHistory:]
	}
	return State{Past: past, Present: next}
}

// Undo steps back one snapshot. It reports false, leaving s unchanged, when
// there is nothing to undo.
func Undo(s State) (State, bool) {
	if len(s.Past) == 0 {
		return s, false
	}

	last := len(s.Past) - 1
	future := make([]*tree.Node, 0, len(s.Future)+1)
	if s.Present != nil {
		future = append(future, s.Present)
	}
	future = append(future, s.Future...)

	return State{
		Past:    clone(s.Past[:last]),
		Present: s.Past[last],
		Future:  future,
	}, true
}

// Redo steps forward one snapshot. It reports false, leaving s unchanged,
// when there is nothing to redo.
func Redo(s State) (State, bool) {
	if len(s.Future) == 0 {
		return s, false
	}

	past := clone(s.Past)
	if s.Present != nil {
		past = append(past, s.Present)
	}

	return State{
		Past:    past,
		Present: s.Future[0],
		Future:  clone(s.Future[1:]),
	}, true
}

// CanUndo reports whether Undo would move.
func (s State) CanUndo() bool { return len(s.Past) > 0 }

// CanRedo reports whether Redo would move.
func (s State) CanRedo() bool { return len(s.Future) > 0 }

func clone(nodes []*tree.Node) []*tree.Node {
	if len(nodes) == 0 {
		return nil
	}
	out := make([]*tree.Node, len(nodes))
	copy(out, nodes)
	return out
}
