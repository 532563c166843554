package treeview

import (
	"fmt"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/DevHugoP/sightToScript/internal/tui/treeview/components/confirm"
	"github.com/DevHugoP/sightToScript/pkg/editor"
	"github.com/DevHugoP/sightToScript/pkg/history"
	"github.com/DevHugoP/sightToScript/pkg/script"
	"github.com/DevHugoP/sightToScript/pkg/tree"
)

const deleteTag = "delete"

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width, m.height = msg.Width, msg.Height
		m.help.Width = msg.Width
		m.input.Width = msg.Width - 10
		return m, nil

	case savedMsg:
		m.session.MarkSaved(msg.record)
		m.statusMessage = fmt.Sprintf("Saved %q", msg.record.Name)
		return m, nil

	case errMsg:
		m.statusMessage = fmt.Sprintf("Error: %v", msg.err)
		return m, nil

	case confirm.ConfirmedMsg:
		if msg.Tag == deleteTag {
			m.apply(editor.Delete(m.session.State, m.selectedID))
		}
		return m, nil

	case confirm.CancelledMsg:
		m.statusMessage = ""
		return m, nil

	case tea.KeyMsg:
		if m.confirm.Active {
			var cmd tea.Cmd
			m.confirm, cmd = m.confirm.Update(msg)
			return m, cmd
		}
		switch m.mode {
		case modeRename, modeSaveName:
			return m.updateInput(msg)
		}
		return m.updateBrowse(msg)
	}

	return m, nil
}

func (m Model) updateBrowse(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if m.help.ShowAll && !key.Matches(msg, m.keys.Help, m.keys.Quit) {
		m.help.ShowAll = false
		return m, nil
	}

	switch {
	case key.Matches(msg, m.keys.Quit):
		m.quitting = true
		return m, tea.Quit

	case key.Matches(msg, m.keys.Help):
		m.help.ShowAll = !m.help.ShowAll

	case key.Matches(msg, m.keys.Up):
		m.moveTo(m.cursor - 1)
	case key.Matches(msg, m.keys.Down):
		m.moveTo(m.cursor + 1)
	case key.Matches(msg, m.keys.Top):
		m.moveTo(0)
	case key.Matches(msg, m.keys.Bottom):
		m.moveTo(len(m.lines) - 1)

	case key.Matches(msg, m.keys.Fold):
		m.toggleFold()

	case key.Matches(msg, m.keys.Rename):
		if n := m.current(); n != nil {
			return m, m.startRename(n)
		}

	case key.Matches(msg, m.keys.AddFolder), key.Matches(msg, m.keys.AddFile):
		n := m.current()
		if n == nil {
			return m, nil
		}
		kind := tree.KindFile
		if key.Matches(msg, m.keys.AddFolder) {
			kind = tree.KindFolder
		}
		// Adding on a file adds a sibling, which is what users expect from
		// a cursor sitting inside a folder listing.
		parentID := n.ID
		if !n.IsFolder() {
			if parent, _ := tree.ParentOf(m.session.Present(), n.ID); parent != nil {
				parentID = parent.ID
			}
		}
		state, out := editor.AddChild(m.session.State, parentID, kind)
		if out.Applied {
			delete(m.folded, parentID)
		}
		m.apply(state, out)
		if out.Applied {
			m.selectedID = out.NodeID
			m.rebuild()
			if en := m.editingNode(); en != nil {
				return m, m.startRename(en)
			}
		}

	case key.Matches(msg, m.keys.Delete):
		n := m.current()
		if n == nil {
			return m, nil
		}
		if n.ID == m.session.Present().ID {
			m.statusMessage = string(editor.ReasonRootProtected)
			return m, nil
		}
		prompt := fmt.Sprintf("Delete %q?", n.Name)
		if n.IsFolder() && len(n.Children) > 0 {
			folders, files := tree.Count(n)
			prompt = fmt.Sprintf("Delete %q and everything in it (%d folders, %d files)?", n.Name, folders-1, files)
		}
		m.confirm.Activate(prompt, deleteTag)

	case key.Matches(msg, m.keys.Undo):
		if m.session.Undo() {
			m.statusMessage = "Action undone"
		} else {
			m.statusMessage = "Nothing to undo"
		}
		m.rebuild()

	case key.Matches(msg, m.keys.Redo):
		if m.session.Redo() {
			m.statusMessage = "Action redone"
		} else {
			m.statusMessage = "Nothing to redo"
		}
		m.rebuild()

	case key.Matches(msg, m.keys.Script):
		m.showScript = !m.showScript

	case key.Matches(msg, m.keys.NextScript):
		m.showScript = true
		m.dialect = (m.dialect + 1) % len(script.Dialects)

	case key.Matches(msg, m.keys.Copy):
		d := m.currentDialect()
		body, err := script.Generate(m.session.Present(), d)
		if err == nil {
			err = copyToClipboard(body)
		}
		if err != nil {
			m.statusMessage = fmt.Sprintf("Error: %v", err)
		} else {
			m.statusMessage = fmt.Sprintf("Copied %s script to clipboard", titleCaser.String(string(d)))
		}

	case key.Matches(msg, m.keys.Save):
		if m.service == nil {
			m.statusMessage = "Saving is not available"
			return m, nil
		}
		if m.session.StoreID != "" {
			return m, saveCmd(m.service, m.session, "")
		}
		m.mode = modeSaveName
		m.input.SetValue(m.session.Present().Name)
		m.input.CursorEnd()
		m.input.Placeholder = "structure name"
		return m, m.input.Focus()
	}

	m.ensureVisible()
	return m, nil
}

func (m Model) updateInput(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.Type {
	case tea.KeyEsc:
		m.mode = modeBrowse
		m.input.Blur()
		m.statusMessage = ""
		return m, nil

	case tea.KeyEnter:
		value := m.input.Value()
		if m.mode == modeSaveName {
			m.mode = modeBrowse
			m.input.Blur()
			return m, saveCmd(m.service, m.session, value)
		}

		state, out := editor.Rename(m.session.State, m.editID, value)
		if !out.Applied {
			// Stay in rename mode so the user can fix the name.
			m.statusMessage = capitalize(string(out.Reason))
			return m, nil
		}
		m.apply(state, out)
		m.mode = modeBrowse
		m.input.Blur()
		return m, nil
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

func (m *Model) startRename(n *tree.Node) tea.Cmd {
	m.mode = modeRename
	m.editID = n.ID
	m.selectedID = n.ID
	m.input.Placeholder = "name"
	m.input.SetValue(n.Name)
	m.input.CursorEnd()
	m.statusMessage = ""
	return tea.Batch(m.input.Focus(), textinput.Blink)
}

// apply installs the result of an editor operation and reports rejections.
func (m *Model) apply(state history.State, out editor.Outcome) {
	if !out.Applied {
		m.statusMessage = capitalize(string(out.Reason))
		return
	}
	m.session.State = state
	m.statusMessage = ""
	m.rebuild()
}

func (m *Model) ensureVisible() {
	h := m.getViewportHeight()
	if m.cursor < m.scrollOffset {
		m.scrollOffset = m.cursor
	}
	if m.cursor >= m.scrollOffset+h {
		m.scrollOffset = m.cursor - h + 1
	}
}
