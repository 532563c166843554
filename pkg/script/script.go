// Package script turns a layout tree into a shell script that recreates it.
package script

import (
	"errors"
	"fmt"
	"strings"

	"github.com/DevHugoP/sightToScript/pkg/tree"
)

// Dialect is a target command-line syntax.
type Dialect string

const (
	Bash       Dialect = "bash"
	PowerShell Dialect = "powershell"
	Cmd        Dialect = "cmd"
)

// Dialects lists the supported dialects in display order.
var Dialects = []Dialect{Bash, PowerShell, Cmd}

// ErrUnsupportedDialect is returned for a dialect outside Dialects.
var ErrUnsupportedDialect = errors.New("unsupported dialect")

// ParseDialect maps a user supplied name to a Dialect.
func ParseDialect(s string) (Dialect, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "bash", "sh":
		return Bash, nil
	case "powershell", "pwsh", "ps":
		return PowerShell, nil
	case "cmd", "bat":
		return Cmd, nil
	default:
		return "", fmt.Errorf("%w: %q", ErrUnsupportedDialect, s)
	}
}

// Extension is the conventional script file suffix for d.
func (d Dialect) Extension() string {
	switch d {
	case Bash:
		return ".sh"
	case PowerShell:
		return ".ps1"
	case Cmd:
		return ".cmd"
	default:
		return ".txt"
	}
}

// syntax is what differs between dialects.
type syntax struct {
	header    string
	separator string

	// quote escapes what the dialect still expands inside double quotes.
	quote  *strings.Replacer
	folder func(path string) string
	file   func(path string) string
}

var syntaxes = map[Dialect]syntax{
	Bash: {
		header:    "#!/bin/bash",
		separator: "/",
		quote:     strings.NewReplacer("$", `\$`, "`", "\\`"),
		folder:    func(p string) string { return fmt.Sprintf(`mkdir -p "%s"`, p) },
		file:      func(p string) string { return fmt.Sprintf(`touch "%s"`, p) },
	},
	PowerShell: {
		header:    "# PowerShell script to create the folder structure",
		separator: `\`,
		quote:     strings.NewReplacer("`", "``", "$", "`$"),
		folder:    func(p string) string { return fmt.Sprintf(`New-Item -ItemType Directory -Force -Path "%s"`, p) },
		file:      func(p string) string { return fmt.Sprintf(`New-Item -ItemType File -Force -Path "%s"`, p) },
	},
	Cmd: {
		header:    "@echo off",
		separator: `\`,
		quote:     strings.NewReplacer("%", "%%"),
		folder:    func(p string) string { return fmt.Sprintf(`if not exist "%s" mkdir "%s"`, p, p) },
		file:      func(p string) string { return fmt.Sprintf(`type nul > "%s"`, p) },
	},
}

// Generate renders root in the requested dialect. Trees whose names could
// escape their double quotes or the target folder are refused with
// tree.ErrInvalidTree.
func Generate(root *tree.Node, d Dialect) (string, error) {
	sx, ok := syntaxes[d]
	if !ok {
		return "", fmt.Errorf("%w: %q", ErrUnsupportedDialect, d)
	}
	if err := checkNames(root); err != nil {
		return "", err
	}
	return render(root, sx), nil
}

// ToBash renders root as a POSIX shell script.
func ToBash(root *tree.Node) (string, error) { return Generate(root, Bash) }

// ToPowerShell renders root as a PowerShell script.
func ToPowerShell(root *tree.Node) (string, error) { return Generate(root, PowerShell) }

// ToCmd renders root as a Windows command interpreter script.
func ToCmd(root *tree.Node) (string, error) { return Generate(root, Cmd) }

// checkNames rejects names below the root that are not safe path segments.
// The root's own name never reaches the script.
func checkNames(root *tree.Node) error {
	if root == nil {
		return nil
	}
	var err error
	for _, child := range root.Children {
		tree.Walk(child, func(n *tree.Node, _ int) bool {
			if err == nil && !tree.ValidName(n.Name) {
				err = fmt.Errorf("%w: unsafe name %q", tree.ErrInvalidTree, n.Name)
			}
			return err == nil
		})
	}
	return err
}

// render walks the tree in stored order. The root is the working directory,
// so its own name never appears in a path.
func render(root *tree.Node, sx syntax) string {
	lines := []string{sx.header}
	if root != nil {
		for _, child := range root.Children {
			lines = emit(child, "", sx, lines)
		}
	}
	return strings.Join(lines, "\n")
}

func emit(n *tree.Node, parent string, sx syntax, lines []string) []string {
	path := sx.quote.Replace(n.Name)
	if parent != "" {
		path = parent + sx.separator + path
	}

	if n.Kind != tree.KindFolder {
		return append(lines, sx.file(path))
	}

	lines = append(lines, sx.folder(path))
	for _, child := range n.Children {
		lines = emit(child, path, sx, lines)
	}
	return lines
}
