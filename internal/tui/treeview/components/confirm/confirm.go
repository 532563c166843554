package confirm

import (
	"strings"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

// --- Messages ---

// ConfirmedMsg is sent when the user confirms the action.
type ConfirmedMsg struct {
	Tag string
}

// CancelledMsg is sent when the user cancels the action.
type CancelledMsg struct {
	Tag string
}

// --- Model ---

// Model represents a yes/no dialog. Tag travels back in the result message
// so the parent knows what was confirmed.
type Model struct {
	Active bool
	Prompt string
	Tag    string
	keys   keyMap
}

// New creates a new confirmation dialog model.
func New() Model {
	return Model{
		keys: defaultKeyMap,
	}
}

// Activate prepares the dialog for display with a given prompt.
func (m *Model) Activate(prompt, tag string) {
	m.Prompt = prompt
	m.Tag = tag
	m.Active = true
}

// --- Update ---

func (m Model) Update(msg tea.Msg) (Model, tea.Cmd) {
	if !m.Active {
		return m, nil
	}

	switch msg := msg.(type) {
	case tea.KeyMsg:
		tag := m.Tag
		switch {
		case key.Matches(msg, m.keys.Confirm):
			m.Active = false
			return m, func() tea.Msg { return ConfirmedMsg{Tag: tag} }
		case key.Matches(msg, m.keys.Cancel):
			m.Active = false
			return m, func() tea.Msg { return CancelledMsg{Tag: tag} }
		}
	}

	return m, nil
}

// --- View ---

var (
	dialogStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("208")).
			Padding(1, 2)
	hintStyle = lipgloss.NewStyle().Faint(true)
)

func (m Model) View() string {
	if !m.Active {
		return ""
	}

	prompt := m.Prompt
	if prompt == "" {
		prompt = "Apply this change?"
	}
	box := dialogStyle.Render(prompt)

	return lipgloss.JoinVertical(lipgloss.Left, box, hintStyle.Render(m.hint()))
}

// hint lists the dialog keys from their bindings, e.g. "y yes · n/esc keep as is".
func (m Model) hint() string {
	parts := make([]string, 0, 2)
	for _, b := range []key.Binding{m.keys.Confirm, m.keys.Cancel} {
		h := b.Help()
		parts = append(parts, h.Key+" "+h.Desc)
	}
	return strings.Join(parts, " · ")
}

// --- KeyMap ---

type keyMap struct {
	Confirm key.Binding
	Cancel  key.Binding
}

var defaultKeyMap = keyMap{
	Confirm: key.NewBinding(
		key.WithKeys("y"),
		key.WithHelp("y", "yes"),
	),
	Cancel: key.NewBinding(
		key.WithKeys("n", "esc"),
		key.WithHelp("n/esc", "keep as is"),
	),
}
