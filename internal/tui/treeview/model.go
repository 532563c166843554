package treeview

import (
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/DevHugoP/sightToScript/internal/tui/treeview/components/confirm"
	"github.com/DevHugoP/sightToScript/pkg/script"
	"github.com/DevHugoP/sightToScript/pkg/service"
	"github.com/DevHugoP/sightToScript/pkg/tree"
)

type inputMode int

const (
	modeBrowse inputMode = iota
	modeRename
	modeSaveName
)

// Model is the bubbletea model for the interactive structure editor.
type Model struct {
	service *service.Service
	session *service.Session

	lines      []tree.Line
	cursor     int
	selectedID string // survives rebuilds of lines
	folded     map[string]bool

	keys    KeyMap
	help    help.Model
	input   textinput.Model
	mode    inputMode
	editID  string // node being renamed
	confirm confirm.Model

	showScript bool
	dialect    int // index into script.Dialects

	width         int
	height        int
	scrollOffset  int
	statusMessage string
	quitting      bool
}

// New creates the editor over sess. svc may be nil, in which case saving is
// disabled.
func New(svc *service.Service, sess *service.Session) Model {
	ti := textinput.New()
	ti.CharLimit = 255
	ti.Prompt = "› "

	m := Model{
		service: svc,
		session: sess,
		keys:    keys,
		help:    help.New(),
		input:   ti,
		confirm: confirm.New(),
		folded:  make(map[string]bool),
	}
	if svc != nil {
		for i, d := range script.Dialects {
			if d == svc.Config.DefaultDialect {
				m.dialect = i
			}
		}
	}
	m.rebuild()
	return m
}

func (m Model) Init() tea.Cmd {
	return textinput.Blink
}

// Session returns the session being edited.
func (m Model) Session() *service.Session {
	return m.session
}

// rebuild refreshes the flattened lines from the present snapshot and keeps
// the cursor on the selected node when it still exists.
func (m *Model) rebuild() {
	m.lines = tree.FlattenFolded(m.session.Present(), m.isFolded)
	if len(m.lines) == 0 {
		m.cursor = 0
		m.selectedID = ""
		return
	}

	for i, line := range m.lines {
		if line.Node.ID == m.selectedID {
			m.cursor = i
			return
		}
	}
	if m.cursor >= len(m.lines) {
		m.cursor = len(m.lines) - 1
	}
	m.selectedID = m.lines[m.cursor].Node.ID
}

func (m Model) isFolded(n *tree.Node) bool {
	return n.IsFolder() && m.folded[n.ID]
}

// toggleFold folds or unfolds the folder under the cursor. On a file it
// folds the enclosing folder and moves the cursor there.
func (m *Model) toggleFold() {
	n := m.current()
	if n == nil {
		return
	}
	if !n.IsFolder() {
		parent, _ := tree.ParentOf(m.session.Present(), n.ID)
		if parent == nil {
			return
		}
		n = parent
		m.selectedID = parent.ID
	}
	if m.folded[n.ID] {
		delete(m.folded, n.ID)
	} else {
		m.folded[n.ID] = true
	}
	m.rebuild()
}

// breadcrumb is the slash separated path from the root to the selected node.
func (m Model) breadcrumb() string {
	path := tree.PathTo(m.session.Present(), m.selectedID)
	if len(path) == 0 {
		return ""
	}
	names := make([]string, len(path))
	for i, n := range path {
		names[i] = n.Name
	}
	crumb := strings.Join(names, "/")
	if path[len(path)-1].IsFolder() {
		crumb += "/"
	}
	return crumb
}

func (m *Model) moveTo(i int) {
	if len(m.lines) == 0 {
		return
	}
	if i < 0 {
		i = 0
	}
	if i >= len(m.lines) {
		i = len(m.lines) - 1
	}
	m.cursor = i
	m.selectedID = m.lines[i].Node.ID
}

func (m Model) current() *tree.Node {
	if m.cursor < 0 || m.cursor >= len(m.lines) {
		return nil
	}
	return m.lines[m.cursor].Node
}

func (m Model) currentDialect() script.Dialect {
	return script.Dialects[m.dialect%len(script.Dialects)]
}

// editingNode returns the node flagged for editing in the present snapshot.
func (m Model) editingNode() *tree.Node {
	var found *tree.Node
	tree.Walk(m.session.Present(), func(n *tree.Node, _ int) bool {
		if found == nil && n.Editing {
			found = n
		}
		return found == nil
	})
	return found
}

func (m Model) getViewportHeight() int {
	// Header, breadcrumb, blank lines, status line and help take roughly
	// nine rows.
	h := m.height - 9
	if m.showScript {
		h = h / 2
	}
	if h < 3 {
		h = 3
	}
	return h
}
