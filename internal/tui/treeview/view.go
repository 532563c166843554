package treeview

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"github.com/DevHugoP/sightToScript/pkg/script"
	"github.com/DevHugoP/sightToScript/pkg/tree"
)

var (
	headerStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("39"))
	folderStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("75")).Bold(true)
	fileStyle   = lipgloss.NewStyle()
	cursorStyle = lipgloss.NewStyle().Background(lipgloss.Color("237"))
	connStyle   = lipgloss.NewStyle().Faint(true)
	statusStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("214"))
	mutedStyle  = lipgloss.NewStyle().Faint(true)
	activeTab   = lipgloss.NewStyle().Bold(true).Underline(true)
	scriptBox   = lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).BorderForeground(lipgloss.Color("240")).Padding(0, 1)
	titleCaser  = cases.Title(language.English)
)

func (m Model) View() string {
	if m.quitting {
		return ""
	}
	if m.session.Present() == nil {
		return "No structure to display"
	}

	if m.confirm.Active {
		return "\n" + m.confirm.View()
	}
	if m.help.ShowAll {
		return "\n" + m.help.View(m.keys)
	}

	parts := []string{m.renderHeader(), "", m.renderTree()}
	if m.showScript {
		parts = append(parts, "", m.renderScript())
	}

	switch m.mode {
	case modeRename:
		parts = append(parts, "", "Rename: "+m.input.View())
	case modeSaveName:
		parts = append(parts, "", "Save as: "+m.input.View())
	default:
		parts = append(parts, "", statusStyle.Render(m.statusMessage))
	}
	parts = append(parts, m.help.View(m.keys))

	return "\n" + lipgloss.JoinVertical(lipgloss.Left, parts...)
}

func (m Model) renderHeader() string {
	title := "Structure Editor"
	if m.session.Name != "" {
		title += ": " + m.session.Name
	} else if m.session.SourcePath != "" {
		title += ": " + m.session.SourcePath
	}
	if m.session.Modified() {
		title += " *"
	}

	st := m.session.State
	hist := mutedStyle.Render(fmt.Sprintf("undo %d · redo %d", len(st.Past), len(st.Future)))
	return headerStyle.Render(title) + "  " + hist + "\n" + mutedStyle.Render(m.breadcrumb())
}

func (m Model) renderTree() string {
	var b strings.Builder

	h := m.getViewportHeight()
	end := m.scrollOffset + h
	if end > len(m.lines) {
		end = len(m.lines)
	}

	for i := m.scrollOffset; i < end; i++ {
		line := m.lines[i]
		name := line.Node.Name
		if line.Node.IsFolder() {
			name = folderStyle.Render(name + "/")
		} else {
			name = fileStyle.Render(name)
		}

		row := connStyle.Render(line.Prefix) + name
		if i == m.cursor {
			row = cursorStyle.Render(line.Prefix + plainName(line.Node))
		}
		if m.isFolded(line.Node) && len(line.Node.Children) > 0 {
			folders, files := tree.Count(line.Node)
			row += mutedStyle.Render(fmt.Sprintf(" ▸ %d hidden", folders-1+files))
		}
		b.WriteString(row)
		if i < end-1 {
			b.WriteString("\n")
		}
	}

	if len(m.lines) > h {
		b.WriteString("\n" + mutedStyle.Render(fmt.Sprintf("%d/%d", m.cursor+1, len(m.lines))))
	}
	return b.String()
}

func (m Model) renderScript() string {
	var tabs []string
	for i, d := range script.Dialects {
		label := titleCaser.String(string(d))
		if i == m.dialect {
			label = activeTab.Render(label)
		} else {
			label = mutedStyle.Render(label)
		}
		tabs = append(tabs, label)
	}

	body, err := script.Generate(m.session.Present(), m.currentDialect())
	if err != nil {
		body = err.Error()
	}
	return strings.Join(tabs, "  ") + "\n" + scriptBox.Render(body)
}

func plainName(n *tree.Node) string {
	if n.IsFolder() {
		return n.Name + "/"
	}
	return n.Name
}

func capitalize(s string) string {
	if s == "" {
		return s
	}
	return strings.ToUpper(s[:1]) + s[1:]
}
