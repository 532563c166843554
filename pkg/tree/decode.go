package tree

import (
	"bytes"
	"encoding/json"
	"fmt"
	"path/filepath"
	"strings"

	"github.com/go-playground/validator/v10"
	"gopkg.in/yaml.v3"
)

// Format selects the text encoding of a tree document.
type Format string

const (
	FormatJSON Format = "json"
	FormatYAML Format = "yaml"
)

// DetectFormat picks a format from a file extension, defaulting to JSON.
func DetectFormat(path string) Format {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		return FormatYAML
	default:
		return FormatJSON
	}
}

// ParseFormat parses a user supplied format name.
func ParseFormat(s string) (Format, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "json":
		return FormatJSON, nil
	case "yaml", "yml":
		return FormatYAML, nil
	default:
		return "", fmt.Errorf("unknown format %q (want json or yaml)", s)
	}
}

// document is the wire shape of a node. "type" is the canonical key for the
// kind; "kind" is read as an alias.
type document struct {
	Name     string      `json:"name" yaml:"name" validate:"required"`
	Type     string      `json:"type,omitempty" yaml:"type,omitempty" validate:"required,oneof=folder file"`
	Kind     string      `json:"kind,omitempty" yaml:"kind,omitempty"`
	ID       string      `json:"id,omitempty" yaml:"id,omitempty"`
	Children []*document `json:"children,omitempty" yaml:"children,omitempty" validate:"dive,required"`
}

var validate = validator.New()

// Decode parses a tree document, checks it against the node schema and the
// structural rules, and returns it with every node stamped with an id.
func Decode(data []byte, format Format) (*Node, error) {
	doc := &document{}
	switch format {
	case FormatYAML:
		if err := yaml.Unmarshal(data, doc); err != nil {
			return nil, fmt.Errorf("parse yaml: %w", err)
		}
	case FormatJSON, "":
		if err := json.Unmarshal(data, doc); err != nil {
			return nil, fmt.Errorf("parse json: %w", err)
		}
	default:
		return nil, fmt.Errorf("unknown format %q", format)
	}

	normalize(doc)
	if err := validate.Struct(doc); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidTree, err)
	}

	root, err := fromDocument(doc)
	if err != nil {
		return nil, err
	}
	if err := Validate(root); err != nil {
		return nil, err
	}
	return AssignIDs(root), nil
}

func normalize(doc *document) {
	if doc == nil {
		return
	}
	if doc.Type == "" {
		doc.Type = doc.Kind
	}
	doc.Type = strings.ToLower(strings.TrimSpace(doc.Type))
	doc.Kind = ""
	for _, child := range doc.Children {
		normalize(child)
	}
}

func fromDocument(doc *document) (*Node, error) {
	n := &Node{Name: doc.Name, Kind: Kind(doc.Type), ID: doc.ID}
	if n.Kind == KindFile {
		if len(doc.Children) > 0 {
			return nil, fmt.Errorf("%w: file %q has children", ErrInvalidTree, doc.Name)
		}
		return n, nil
	}

	n.Children = make([]*Node, 0, len(doc.Children))
	for _, childDoc := range doc.Children {
		child, err := fromDocument(childDoc)
		if err != nil {
			return nil, err
		}
		n.Children = append(n.Children, child)
	}
	return n, nil
}

func toDocument(n *Node) *document {
	doc := &document{Name: n.Name, Type: string(n.Kind), ID: n.ID}
	for _, child := range n.Children {
		doc.Children = append(doc.Children, toDocument(child))
	}
	return doc
}

// Encode writes root in the given format. Ids are included so that a
// document read back keeps node identity.
func Encode(root *Node, format Format) ([]byte, error) {
	if root == nil {
		return nil, fmt.Errorf("%w: empty tree", ErrInvalidTree)
	}
	doc := toDocument(root)

	switch format {
	case FormatYAML:
		var buf bytes.Buffer
		enc := yaml.NewEncoder(&buf)
		enc.SetIndent(2)
		if err := enc.Encode(doc); err != nil {
			return nil, fmt.Errorf("encode yaml: %w", err)
		}
		if err := enc.Close(); err != nil {
			return nil, fmt.Errorf("encode yaml: %w", err)
		}
		return buf.Bytes(), nil
	case FormatJSON, "":
		data, err := json.MarshalIndent(doc, "", "  ")
		if err != nil {
			return nil, fmt.Errorf("encode json: %w", err)
		}
		return data, nil
	default:
		return nil, fmt.Errorf("unknown format %q", format)
	}
}
