package tree

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValidName(t *testing.T) {
	tests := []struct {
		name string
		want bool
	}{
		{"src", true},
		{"my file.txt", true},
		{".env", true},
		{"", false},
		{"   ", false},
		{"a/b", false},
		{`a\b`, false},
		{".", false},
		{"..", false},
		{" .. ", false},
		{"...", true},
		{"..hidden", true},
		{`say "hi"`, false},
		{"\u201cquoted\u201d", false},
		{"\u201elow", false},
		{"line\nbreak", false},
		{"tab\there", false},
		{"nul\x00byte", false},
		{"del\x7f", false},
		{"$(touch injected)", true},
		{"100%.txt", true},
		{"caf\u00e9.md", true},
	}
	for _, tt := range tests {
		if got := ValidName(tt.name); got != tt.want {
			t.Errorf("ValidName(%q) = %v, want %v", tt.name, got, tt.want)
		}
	}
}

func TestValidate(t *testing.T) {
	require.NoError(t, Validate(sample()))
	require.NoError(t, Validate(NewFolder("fresh", NewFile("no-id"))))

	bad := map[string]*Node{
		"nil root":         nil,
		"file root":        NewFile("x"),
		"unknown kind":     {Name: "r", Kind: KindFolder, Children: []*Node{{Name: "x", Kind: "link"}}},
		"folder nil slice": {Name: "r", Kind: KindFolder, Children: []*Node{{Name: "x", Kind: KindFolder}}},
		"file children":    {Name: "r", Kind: KindFolder, Children: []*Node{{Name: "x", Kind: KindFile, Children: []*Node{}}}},
		"duplicate ids":    {Name: "r", Kind: KindFolder, ID: "a", Children: []*Node{{Name: "x", Kind: KindFile, ID: "a"}}},
		"blank name":       NewFolder(" "),
	}
	for name, root := range bad {
		t.Run(name, func(t *testing.T) {
			err := Validate(root)
			require.Error(t, err)
			assert.True(t, errors.Is(err, ErrInvalidTree))
		})
	}
}

func TestAssignIDs(t *testing.T) {
	in := NewFolder("root", NewFolder("a", NewFile("b")), NewFile("c"))
	in.Children[1].ID = "keep"
	in.Children[0].Editing = true

	out := AssignIDs(in)

	ids := map[string]bool{}
	Walk(out, func(n *Node, _ int) bool {
		require.NotEmpty(t, n.ID)
		assert.False(t, n.Editing)
		assert.False(t, ids[n.ID], "duplicate id %s", n.ID)
		ids[n.ID] = true
		return true
	})
	assert.Equal(t, "keep", out.Children[1].ID)
	assert.True(t, SameShape(in, out))

	// The input is not stamped.
	assert.Empty(t, in.ID)
	assert.True(t, in.Children[0].Editing)

	again := AssignIDs(out)
	assert.True(t, Equal(out, again))
	assert.NotSame(t, out, again)
}

func TestNewIDUnique(t *testing.T) {
	seen := make(map[string]bool)
	for i := 0; i < 1000; i++ {
		id := NewID()
		require.False(t, seen[id])
		seen[id] = true
	}
}

func TestFingerprint(t *testing.T) {
	a := sample()
	b := AssignIDs(NewFolder("root",
		NewFolder("src", NewFile("main.ts"), NewFolder("lib")),
		NewFile("README.md"),
	))

	assert.Len(t, Fingerprint(a), 64)
	assert.Equal(t, Fingerprint(a), Fingerprint(b), "ids do not contribute")

	renamed := ReplaceByID(a, "main", func(n *Node) *Node { n.Name = "app.ts"; return n })
	assert.NotEqual(t, Fingerprint(a), Fingerprint(renamed))

	// Moving a file one level up changes the depth line even with equal names.
	flat := NewFolder("root", NewFolder("src"), NewFile("main.ts"))
	nested := NewFolder("root", NewFolder("src", NewFile("main.ts")))
	assert.NotEqual(t, Fingerprint(flat), Fingerprint(nested))
}
