package service

import (
	"fmt"
	"strings"

	"github.com/google/shlex"

	"github.com/DevHugoP/sightToScript/pkg/editor"
	"github.com/DevHugoP/sightToScript/pkg/tree"
)

// OpKind names a scripted edit.
type OpKind string

const (
	OpRename    OpKind = "rename"
	OpAddFolder OpKind = "add-folder"
	OpAddFile   OpKind = "add-file"
	OpDelete    OpKind = "rm"
	OpUndo      OpKind = "undo"
	OpRedo      OpKind = "redo"
)

// Op is one scripted edit, e.g. "rename src/app.ts main.ts".
type Op struct {
	Kind   OpKind
	Target string // node id or slash separated path below the root
	Name   string // new name for rename, optional name for add-*
}

// String renders the op so that ParseOp reads it back, quoting any
// argument with spaces or shell-special characters.
func (o Op) String() string {
	parts := []string{string(o.Kind)}
	for _, arg := range []string{o.Target, o.Name} {
		if arg != "" {
			parts = append(parts, quoteArg(arg))
		}
	}
	return strings.Join(parts, " ")
}

func quoteArg(arg string) string {
	if !strings.ContainsAny(arg, " \t\"'\\#") {
		return arg
	}
	return `"` + strings.NewReplacer(`\`, `\\`, `"`, `\"`).Replace(arg) + `"`
}

// ParseOp parses the text form of an edit:
//
//	rename <target> <new name>
//	add-folder <target> [name]
//	add-file <target> [name]
//	rm <target|pattern>
//	undo
//	redo
//
// Arguments are split the way a shell would: single or double quotes keep
// spaces inside one argument, so "rm 'my docs/old notes.md'" targets a path
// with spaces and "rename a 'b  c'" keeps the double space. A '#' at the
// start of an argument begins a comment, so quote names starting with '#'.
// Unquoted words after the target are joined with single spaces into the
// name. Targets can also be node ids, which never need quoting.
func ParseOp(s string) (Op, error) {
	fields, err := shlex.Split(s)
	if err != nil {
		return Op{}, fmt.Errorf("parsing %q: %w", s, err)
	}
	if len(fields) == 0 {
		return Op{}, fmt.Errorf("empty operation")
	}

	op := Op{Kind: OpKind(strings.ToLower(fields[0]))}
	switch op.Kind {
	case OpUndo, OpRedo:
		if len(fields) != 1 {
			return Op{}, fmt.Errorf("%s takes no arguments", op.Kind)
		}
		return op, nil
	case "delete", "del":
		op.Kind = OpDelete
	case "mkdir":
		op.Kind = OpAddFolder
	case "touch":
		op.Kind = OpAddFile
	case OpRename, OpDelete, OpAddFolder, OpAddFile:
	default:
		return Op{}, fmt.Errorf("unknown operation %q", fields[0])
	}

	if len(fields) < 2 {
		return Op{}, fmt.Errorf("%s needs a target", op.Kind)
	}
	op.Target = fields[1]
	op.Name = strings.Join(fields[2:], " ")

	switch op.Kind {
	case OpRename:
		if op.Name == "" {
			return Op{}, fmt.Errorf("rename needs a new name")
		}
	case OpDelete:
		if op.Name != "" {
			return Op{}, fmt.Errorf("rm takes a single target")
		}
	}
	return op, nil
}

// Resolve finds the node a target refers to: an id first, then a path.
func (s *Session) Resolve(target string) *tree.Node {
	if n := tree.FindByID(s.Present(), target); n != nil {
		return n
	}
	return tree.FindByPath(s.Present(), target)
}

// Apply runs one scripted edit. Rejected edits are reported through the
// outcome, like the editor does. For add-* with a name, the node is added
// and then renamed, which records two history entries.
func (s *Session) Apply(op Op) editor.Outcome {
	switch op.Kind {
	case OpUndo:
		if !s.Undo() {
			return editor.Outcome{Reason: "nothing to undo"}
		}
		return editor.Outcome{Applied: true}
	case OpRedo:
		if !s.Redo() {
			return editor.Outcome{Reason: "nothing to redo"}
		}
		return editor.Outcome{Applied: true}
	}

	if op.Kind == OpDelete && tree.IsPattern(op.Target) && s.Resolve(op.Target) == nil {
		return s.deleteMatching(op.Target)
	}

	target := s.Resolve(op.Target)
	if target == nil {
		return editor.Outcome{Reason: editor.ReasonNotFound, NodeID: op.Target}
	}

	switch op.Kind {
	case OpRename:
		return s.Rename(target.ID, op.Name)
	case OpDelete:
		return s.Delete(target.ID)
	case OpAddFolder, OpAddFile:
		if op.Name != "" && !tree.ValidName(op.Name) {
			return editor.Outcome{Reason: editor.ReasonBadName, NodeID: target.ID}
		}
		kind := tree.KindFile
		if op.Kind == OpAddFolder {
			kind = tree.KindFolder
		}
		out := s.AddChild(target.ID, kind)
		if !out.Applied || op.Name == "" {
			return out
		}
		renamed := s.Rename(out.NodeID, op.Name)
		if !renamed.Applied {
			return renamed
		}
		return out
	default:
		return editor.Outcome{Reason: editor.Reason(fmt.Sprintf("unknown operation %q", op.Kind))}
	}
}

// deleteMatching removes every node whose path matches pattern, one history
// entry per node. Nodes already gone with a deleted ancestor are skipped.
func (s *Session) deleteMatching(pattern string) editor.Outcome {
	hits, err := tree.Match(s.Present(), pattern)
	if err != nil {
		return editor.Outcome{Reason: editor.Reason(err.Error()), NodeID: pattern}
	}

	out := editor.Outcome{Reason: editor.ReasonNotFound, NodeID: pattern}
	for _, hit := range hits {
		if tree.FindByID(s.Present(), hit.Node.ID) == nil {
			continue
		}
		if res := s.Delete(hit.Node.ID); res.Applied && !out.Applied {
			out = res
		}
	}
	return out
}
