package tree

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDecodeJSON(t *testing.T) {
	input := `{
  "name": "my-app",
  "type": "folder",
  "children": [
    {"name": "src", "type": "folder", "children": [
      {"name": "index.ts", "type": "file"}
    ]},
    {"name": "README.md", "type": "file"},
    {"name": "assets", "type": "folder"}
  ]
}`

	root, err := Decode([]byte(input), FormatJSON)
	require.NoError(t, err)

	assert.Equal(t, "my-app", root.Name)
	assert.Equal(t, KindFolder, root.Kind)
	require.Len(t, root.Children, 3)
	assert.Equal(t, "index.ts", root.Children[0].Children[0].Name)
	assert.Nil(t, root.Children[1].Children)
	assert.NotNil(t, root.Children[2].Children, "folders always get a children slice")

	Walk(root, func(n *Node, _ int) bool {
		assert.NotEmpty(t, n.ID, "node %q has no id", n.Name)
		return true
	})
	require.NoError(t, Validate(root))
}

func TestDecodeYAMLWithKindAlias(t *testing.T) {
	input := `
name: site
kind: Folder
children:
  - name: index.html
    kind: file
  - name: css
    type: folder
    children:
      - name: main.css
        type: file
`
	root, err := Decode([]byte(input), FormatYAML)
	require.NoError(t, err)

	assert.Equal(t, KindFolder, root.Kind)
	assert.Equal(t, KindFile, root.Children[0].Kind)
	assert.Equal(t, "main.css", FindByPath(root, "css/main.css").Name)
}

func TestDecodeKeepsIDs(t *testing.T) {
	input := `{"name":"r","type":"folder","id":"root-id","children":[{"name":"a","type":"file","id":"a-id"},{"name":"b","type":"file"}]}`

	root, err := Decode([]byte(input), FormatJSON)
	require.NoError(t, err)

	assert.Equal(t, "root-id", root.ID)
	assert.Equal(t, "a-id", root.Children[0].ID)
	assert.NotEmpty(t, root.Children[1].ID)
}

func TestDecodeRejects(t *testing.T) {
	tests := []struct {
		name  string
		input string
	}{
		{"missing name", `{"type":"folder"}`},
		{"missing type", `{"name":"r"}`},
		{"unknown type", `{"name":"r","type":"symlink"}`},
		{"file root", `{"name":"r","type":"file"}`},
		{"file with children", `{"name":"r","type":"folder","children":[{"name":"f","type":"file","children":[{"name":"x","type":"file"}]}]}`},
		{"bad child", `{"name":"r","type":"folder","children":[{"name":"","type":"file"}]}`},
		{"slash in name", `{"name":"r","type":"folder","children":[{"name":"a/b","type":"file"}]}`},
		{"parent dir name", `{"name":"r","type":"folder","children":[{"name":"..","type":"folder","children":[{"name":"x.txt","type":"file"}]}]}`},
		{"quote in name", `{"name":"r","type":"folder","children":[{"name":"a\"b","type":"file"}]}`},
		{"control char in name", `{"name":"r","type":"folder","children":[{"name":"a\u0007b","type":"file"}]}`},
		{"duplicate ids", `{"name":"r","type":"folder","children":[{"name":"a","type":"file","id":"x"},{"name":"b","type":"file","id":"x"}]}`},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Decode([]byte(tt.input), FormatJSON)
			require.Error(t, err)
			assert.True(t, errors.Is(err, ErrInvalidTree), "got %v", err)
		})
	}

	t.Run("malformed json", func(t *testing.T) {
		_, err := Decode([]byte(`{"name":`), FormatJSON)
		require.Error(t, err)
		assert.False(t, errors.Is(err, ErrInvalidTree))
	})

	t.Run("unknown format", func(t *testing.T) {
		_, err := Decode([]byte(`{}`), Format("toml"))
		assert.Error(t, err)
	})
}

func TestEncodeRoundTrip(t *testing.T) {
	root := AssignIDs(NewFolder("proj",
		NewFolder("src", NewFile("main.go")),
		NewFolder("empty"),
		NewFile("go.mod"),
	))

	for _, f := range []Format{FormatJSON, FormatYAML} {
		t.Run(string(f), func(t *testing.T) {
			data, err := Encode(root, f)
			require.NoError(t, err)

			back, err := Decode(data, f)
			require.NoError(t, err)
			assert.True(t, Equal(root, back))
		})
	}
}

func TestEncodeJSONShape(t *testing.T) {
	root := &Node{Name: "r", Kind: KindFolder, ID: "1", Children: []*Node{
		{Name: "f", Kind: KindFile, ID: "2"},
	}}

	data, err := Encode(root, FormatJSON)
	require.NoError(t, err)

	want := `{
  "name": "r",
  "type": "folder",
  "id": "1",
  "children": [
    {
      "name": "f",
      "type": "file",
      "id": "2"
    }
  ]
}`
	assert.Equal(t, want, string(data))

	_, err = Encode(nil, FormatJSON)
	assert.ErrorIs(t, err, ErrInvalidTree)
}

func TestDetectAndParseFormat(t *testing.T) {
	assert.Equal(t, FormatYAML, DetectFormat("tree.yaml"))
	assert.Equal(t, FormatYAML, DetectFormat("dir/TREE.YML"))
	assert.Equal(t, FormatJSON, DetectFormat("tree.json"))
	assert.Equal(t, FormatJSON, DetectFormat("tree"))

	f, err := ParseFormat(" YML ")
	require.NoError(t, err)
	assert.Equal(t, FormatYAML, f)

	_, err = ParseFormat("xml")
	assert.Error(t, err)
}
