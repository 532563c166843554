package treeview

import "github.com/charmbracelet/bubbles/key"

// KeyMap defines the keybindings for the structure editor
type KeyMap struct {
	Up         key.Binding
	Down       key.Binding
	Top        key.Binding
	Bottom     key.Binding
	Rename     key.Binding
	AddFolder  key.Binding
	AddFile    key.Binding
	Delete     key.Binding
	Fold       key.Binding
	Copy       key.Binding
	Undo       key.Binding
	Redo       key.Binding
	Script     key.Binding
	NextScript key.Binding
	Save       key.Binding
	Help       key.Binding
	Quit       key.Binding
}

func (k KeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Rename, k.AddFolder, k.AddFile, k.Delete, k.Undo, k.Redo, k.Help, k.Quit}
}

func (k KeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Up, k.Down, k.Top, k.Bottom, k.Fold},
		{k.Rename, k.AddFolder, k.AddFile, k.Delete},
		{k.Undo, k.Redo, k.Save},
		{k.Script, k.NextScript, k.Copy, k.Help, k.Quit},
	}
}

var keys = KeyMap{
	Up: key.NewBinding(
		key.WithKeys("up", "k"),
		key.WithHelp("↑/k", "up"),
	),
	Down: key.NewBinding(
		key.WithKeys("down", "j"),
		key.WithHelp("↓/j", "down"),
	),
	Top: key.NewBinding(
		key.WithKeys("home", "g"),
		key.WithHelp("g", "top"),
	),
	Bottom: key.NewBinding(
		key.WithKeys("end", "G"),
		key.WithHelp("G", "bottom"),
	),
	Rename: key.NewBinding(
		key.WithKeys("r", "enter"),
		key.WithHelp("r", "rename"),
	),
	AddFolder: key.NewBinding(
		key.WithKeys("f"),
		key.WithHelp("f", "add folder"),
	),
	AddFile: key.NewBinding(
		key.WithKeys("n"),
		key.WithHelp("n", "add file"),
	),
	Delete: key.NewBinding(
		key.WithKeys("d", "delete"),
		key.WithHelp("d", "delete"),
	),
	Fold: key.NewBinding(
		key.WithKeys("o", " "),
		key.WithHelp("o/space", "fold/unfold"),
	),
	Copy: key.NewBinding(
		key.WithKeys("y"),
		key.WithHelp("y", "copy script"),
	),
	Undo: key.NewBinding(
		key.WithKeys("u", "ctrl+z"),
		key.WithHelp("u", "undo"),
	),
	Redo: key.NewBinding(
		key.WithKeys("U", "ctrl+y", "ctrl+r"),
		key.WithHelp("U", "redo"),
	),
	Script: key.NewBinding(
		key.WithKeys("p"),
		key.WithHelp("p", "toggle script"),
	),
	NextScript: key.NewBinding(
		key.WithKeys("tab"),
		key.WithHelp("tab", "next dialect"),
	),
	Save: key.NewBinding(
		key.WithKeys("s", "ctrl+s"),
		key.WithHelp("s", "save"),
	),
	Help: key.NewBinding(
		key.WithKeys("?"),
		key.WithHelp("?", "help"),
	),
	Quit: key.NewBinding(
		key.WithKeys("q", "ctrl+c"),
		key.WithHelp("q", "quit"),
	),
}
