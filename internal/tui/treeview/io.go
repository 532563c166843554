package treeview

import (
	"context"

	"github.com/atotto/clipboard"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/DevHugoP/sightToScript/pkg/models"
	"github.com/DevHugoP/sightToScript/pkg/service"
)

// copyToClipboard is swapped out in tests.
var copyToClipboard = clipboard.WriteAll

type savedMsg struct {
	record *models.SavedStructure
}

type errMsg struct {
	err error
}

// saveCmd stores the session's present tree off the update loop. It works on
// a copy so the running session is only touched back in Update.
func saveCmd(svc *service.Service, sess *service.Session, name string) tea.Cmd {
	snapshot := *sess
	return func() tea.Msg {
		rec, err := svc.Save(context.Background(), &snapshot, name)
		if err != nil {
			return errMsg{err: err}
		}
		return savedMsg{record: rec}
	}
}
