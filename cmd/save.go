package cmd

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/DevHugoP/sightToScript/pkg/service"
)

func NewSaveCmd(svc **service.Service) *cobra.Command {
	var name string

	cmd := &cobra.Command{
		Use:   "save <file>",
		Short: "Save a structure file to the store",
		Long: `Import a JSON or YAML structure into the local store.

Examples:
  sts save layout.json --name my-project
  cat layout.json | sts save - --name from-stdin`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			s := *svc

			var (
				sess *service.Session
				err  error
			)
			if args[0] == "-" {
				sess, err = s.Open(ctx, "-")
			} else {
				sess, err = s.LoadFile(args[0])
			}
			if err != nil {
				return err
			}

			rec, err := s.Save(ctx, sess, name)
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Saved %q as %s (%d folders, %d files)\n",
				rec.Name, rec.ID, rec.Folders-1, rec.Files)
			return nil
		},
	}

	cmd.Flags().StringVarP(&name, "name", "n", "", "Name for the saved structure (default: the root folder name)")

	return cmd
}
