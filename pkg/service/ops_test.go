package service

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/DevHugoP/sightToScript/pkg/editor"
	"github.com/DevHugoP/sightToScript/pkg/tree"
)

func TestParseOp(t *testing.T) {
	tests := []struct {
		input string
		want  Op
	}{
		{"rename src lib", Op{Kind: OpRename, Target: "src", Name: "lib"}},
		{"rename src/a.txt my notes.txt", Op{Kind: OpRename, Target: "src/a.txt", Name: "my notes.txt"}},
		{"add-folder . docs", Op{Kind: OpAddFolder, Target: ".", Name: "docs"}},
		{"mkdir src", Op{Kind: OpAddFolder, Target: "src"}},
		{"touch src index.ts", Op{Kind: OpAddFile, Target: "src", Name: "index.ts"}},
		{"add-file src", Op{Kind: OpAddFile, Target: "src"}},
		{"rm src/old", Op{Kind: OpDelete, Target: "src/old"}},
		{"DELETE x", Op{Kind: OpDelete, Target: "x"}},
		{"del x", Op{Kind: OpDelete, Target: "x"}},
		{`rm "my docs/read me.md"`, Op{Kind: OpDelete, Target: "my docs/read me.md"}},
		{`rename 'my docs' 'team  docs'`, Op{Kind: OpRename, Target: "my docs", Name: "team  docs"}},
		{`touch "my docs" "#notes.md"`, Op{Kind: OpAddFile, Target: "my docs", Name: "#notes.md"}},
		{`rename x "it's.txt"`, Op{Kind: OpRename, Target: "x", Name: "it's.txt"}},
		{`rename x a#b`, Op{Kind: OpRename, Target: "x", Name: "a#b"}},
		{"rename x a   b", Op{Kind: OpRename, Target: "x", Name: "a b"}},
		{"rm src/old # stale", Op{Kind: OpDelete, Target: "src/old"}},
		{"  undo ", Op{Kind: OpUndo}},
		{"redo", Op{Kind: OpRedo}},
	}
	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got, err := ParseOp(tt.input)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestParseOpErrors(t *testing.T) {
	for _, input := range []string{
		"",
		"   ",
		"move a b",
		"rename",
		"rename src",
		"rm",
		"rm a b",
		"undo now",
		`rm "unclosed`,
		"rename x don't.txt",
		`rename x ""`,
		"# just a comment",
	} {
		_, err := ParseOp(input)
		assert.Error(t, err, "input %q", input)
	}
}

func TestOpString(t *testing.T) {
	assert.Equal(t, "rename src lib", Op{Kind: OpRename, Target: "src", Name: "lib"}.String())
	assert.Equal(t, "undo", Op{Kind: OpUndo}.String())
	assert.Equal(t, "rm a", Op{Kind: OpDelete, Target: "a"}.String())
	assert.Equal(t, `rename "my docs" "team  docs"`, Op{Kind: OpRename, Target: "my docs", Name: "team  docs"}.String())

	for _, op := range []Op{
		{Kind: OpRename, Target: "my docs/read me.md", Name: "it's  here.md"},
		{Kind: OpAddFile, Target: "src", Name: "#tag.md"},
		{Kind: OpDelete, Target: "**/*.log"},
	} {
		back, err := ParseOp(op.String())
		require.NoError(t, err, op.String())
		assert.Equal(t, op, back)
	}
}

func TestApplyQuotedTargets(t *testing.T) {
	s := NewSession(tree.NewFolder("app",
		tree.NewFolder("my docs", tree.NewFile("read me.md")),
	))

	out := apply(t, s, `rename "my docs/read me.md" "READ  ME.md"`)
	require.True(t, out.Applied, out.Reason)
	assert.NotNil(t, tree.FindByPath(s.Present(), "my docs/READ  ME.md"))

	out = apply(t, s, `touch 'my docs' "notes for later.txt"`)
	require.True(t, out.Applied, out.Reason)
	assert.NotNil(t, tree.FindByPath(s.Present(), "my docs/notes for later.txt"))

	out = apply(t, s, `rm "my docs"`)
	require.True(t, out.Applied, out.Reason)
	assert.Nil(t, tree.FindByPath(s.Present(), "my docs"))
}

func newTestSession() *Session {
	return NewSession(tree.NewFolder("app",
		tree.NewFolder("src", tree.NewFile("main.ts")),
		tree.NewFile("README.md"),
	))
}

func apply(t *testing.T, s *Session, line string) editor.Outcome {
	t.Helper()
	op, err := ParseOp(line)
	require.NoError(t, err)
	return s.Apply(op)
}

func TestApply(t *testing.T) {
	s := newTestSession()

	out := apply(t, s, "rename src/main.ts index.ts")
	require.True(t, out.Applied)
	assert.NotNil(t, tree.FindByPath(s.Present(), "src/index.ts"))

	out = apply(t, s, "add-folder src components")
	require.True(t, out.Applied)
	added := tree.FindByID(s.Present(), out.NodeID)
	require.NotNil(t, added)
	assert.Equal(t, "components", added.Name)
	assert.False(t, added.Editing)

	out = apply(t, s, "touch / LICENSE")
	require.True(t, out.Applied)
	assert.Equal(t, "LICENSE", s.Present().Children[2].Name)

	out = apply(t, s, "rm README.md")
	require.True(t, out.Applied)
	assert.Nil(t, tree.FindByPath(s.Present(), "README.md"))

	want := "app/\n" +
		"├─ src/\n" +
		"│  ├─ index.ts\n" +
		"│  └─ components/\n" +
		"└─ LICENSE\n"
	assert.Equal(t, want, tree.Outline(s.Present()))
}

func TestApplyByID(t *testing.T) {
	s := newTestSession()
	src := tree.FindByPath(s.Present(), "src")

	out := s.Apply(Op{Kind: OpRename, Target: src.ID, Name: "lib"})
	require.True(t, out.Applied)
	assert.Equal(t, src.ID, tree.FindByPath(s.Present(), "lib").ID)
}

func TestApplyRejections(t *testing.T) {
	s := newTestSession()
	before := s.Present()

	tests := []struct {
		line   string
		reason editor.Reason
	}{
		{"rename missing x", editor.ReasonNotFound},
		{"rm .", editor.ReasonRootProtected},
		{"add-file README.md", editor.ReasonNotFolder},
		{`touch src a\b`, editor.ReasonBadName},
		{"undo", "nothing to undo"},
		{"redo", "nothing to redo"},
	}
	for _, tt := range tests {
		t.Run(tt.line, func(t *testing.T) {
			out := apply(t, s, tt.line)
			assert.False(t, out.Applied)
			assert.Equal(t, tt.reason, out.Reason)
		})
	}

	assert.Same(t, before, s.Present())
	assert.False(t, s.State.CanUndo())
}

func TestApplyUndoRedo(t *testing.T) {
	s := newTestSession()
	start := s.Present()

	require.True(t, apply(t, s, "add-file src util.ts").Applied)
	assert.Len(t, s.State.Past, 2, "add then rename")

	require.True(t, apply(t, s, "undo").Applied)
	require.True(t, apply(t, s, "undo").Applied)
	assert.True(t, tree.Equal(start, s.Present()))

	require.True(t, apply(t, s, "redo").Applied)
	assert.NotNil(t, tree.FindByPath(s.Present(), "src/"+editor.DefaultFileName))
}

func TestApplyDeletePattern(t *testing.T) {
	s := NewSession(tree.NewFolder("logs",
		tree.NewFile("a.log"),
		tree.NewFolder("old", tree.NewFile("b.log"), tree.NewFile("keep.txt")),
		tree.NewFile("c.txt"),
	))

	out := apply(t, s, "rm **/*.log")
	require.True(t, out.Applied)
	assert.Equal(t, "logs/\n├─ old/\n│  └─ keep.txt\n└─ c.txt\n", tree.Outline(s.Present()))
	assert.Len(t, s.State.Past, 2, "one entry per deleted node")

	out = apply(t, s, "rm **/*.log")
	assert.False(t, out.Applied)
	assert.Equal(t, editor.ReasonNotFound, out.Reason)

	out = apply(t, s, "rm old/[")
	assert.False(t, out.Applied)
}
