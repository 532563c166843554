package cmd

import (
	"context"
	"fmt"
	"io"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"github.com/DevHugoP/sightToScript/internal/tui/treeview"
	"github.com/DevHugoP/sightToScript/pkg/service"
	"github.com/DevHugoP/sightToScript/pkg/tree"
)

func NewEditCmd(svc **service.Service) *cobra.Command {
	var writeBack bool

	cmd := &cobra.Command{
		Use:   "edit <file|id|name>",
		Short: "Edit a structure interactively",
		Long: `Open a structure in the interactive editor.

Rename, add and delete folders and files, undo and redo your changes, and
preview the generated script in each dialect. Press ? for all keys.

Examples:
  sts edit layout.json
  sts edit layout.yaml -w     # write changes back to the file on quit
  sts edit my-project         # a saved structure; 's' saves it in place`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			s := *svc

			sess, err := s.Open(context.Background(), args[0])
			if err != nil {
				return err
			}
			if writeBack && sess.SourcePath == "" {
				return fmt.Errorf("--write needs a file argument")
			}

			// Log lines would tear the alternate screen.
			logger := s.Logger.Logger
			prevOut := logger.Out
			logger.SetOutput(io.Discard)
			defer logger.SetOutput(prevOut)

			p := tea.NewProgram(treeview.New(s, sess), tea.WithAltScreen())
			final, err := p.Run()
			if err != nil {
				return fmt.Errorf("error running editor: %w", err)
			}
			sess = final.(treeview.Model).Session()

			if writeBack && sess.Modified() {
				f := tree.DetectFormat(sess.SourcePath)
				data, err := tree.Encode(sess.Present(), f)
				if err != nil {
					return err
				}
				if err := os.WriteFile(sess.SourcePath, data, 0644); err != nil {
					return fmt.Errorf("write %s: %w", sess.SourcePath, err)
				}
				fmt.Fprintf(cmd.ErrOrStderr(), "Wrote %s\n", sess.SourcePath)
				return nil
			}
			if sess.Modified() {
				fmt.Fprintln(cmd.ErrOrStderr(), "Warning: unsaved changes were discarded")
			}
			return nil
		},
	}

	cmd.Flags().BoolVarP(&writeBack, "write", "w", false, "Write the edited structure back to the input file on quit")

	return cmd
}
