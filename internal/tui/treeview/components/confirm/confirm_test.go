package confirm

import (
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
)

func runes(s string) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

func TestConfirmCarriesTag(t *testing.T) {
	m := New()
	m.Activate("Delete it?", "delete")

	m, cmd := m.Update(runes("y"))
	if m.Active {
		t.Error("dialog should close after confirming")
	}
	if cmd == nil {
		t.Fatal("expected a command")
	}
	msg, ok := cmd().(ConfirmedMsg)
	if !ok {
		t.Fatalf("expected ConfirmedMsg, got %T", cmd())
	}
	if msg.Tag != "delete" {
		t.Errorf("tag = %q, want delete", msg.Tag)
	}
}

func TestCancel(t *testing.T) {
	m := New()
	m.Activate("Delete it?", "delete")

	m, cmd := m.Update(tea.KeyMsg{Type: tea.KeyEsc})
	if m.Active || cmd == nil {
		t.Fatal("esc should close the dialog with a result")
	}
	if _, ok := cmd().(CancelledMsg); !ok {
		t.Errorf("expected CancelledMsg, got %T", cmd())
	}
}

func TestInactiveIgnoresKeys(t *testing.T) {
	m := New()
	m, cmd := m.Update(runes("y"))
	if cmd != nil || m.Active {
		t.Error("inactive dialog should ignore input")
	}
	if m.View() != "" {
		t.Error("inactive dialog should render nothing")
	}
}

func TestViewShowsPromptAndKeys(t *testing.T) {
	m := New()
	m.Activate(`Delete "src"?`, "delete")

	view := m.View()
	if !strings.Contains(view, `Delete "src"?`) {
		t.Errorf("view should show the prompt, got:\n%s", view)
	}
	if !strings.Contains(view, "y yes · n/esc keep as is") {
		t.Errorf("view should list the dialog keys, got:\n%s", view)
	}
}
