package cmd

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/DevHugoP/sightToScript/pkg/service"
	"github.com/DevHugoP/sightToScript/pkg/tree"
)

func NewShowCmd(svc **service.Service) *cobra.Command {
	var (
		showIDs bool
		format  string
	)

	cmd := &cobra.Command{
		Use:   "show <file|id|name>",
		Short: "Print a structure as a tree",
		Long: `Print a folder structure as an indented tree.

Examples:
  sts show layout.json
  sts show my-project --ids      # include node ids, for use with 'sts apply'
  sts show layout.yaml -f json   # convert to a JSON document`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			s := *svc

			sess, err := s.Open(context.Background(), args[0])
			if err != nil {
				return err
			}
			root := sess.Present()

			if format != "" {
				f, err := tree.ParseFormat(format)
				if err != nil {
					return err
				}
				data, err := tree.Encode(root, f)
				if err != nil {
					return err
				}
				fmt.Fprint(cmd.OutOrStdout(), string(data))
				if f == tree.FormatJSON {
					fmt.Fprintln(cmd.OutOrStdout())
				}
				return nil
			}

			if !showIDs {
				fmt.Fprint(cmd.OutOrStdout(), tree.Outline(root))
			} else {
				for _, line := range tree.Flatten(root) {
					name := line.Node.Name
					if line.Node.IsFolder() {
						name += "/"
					}
					fmt.Fprintf(cmd.OutOrStdout(), "%s%s  [%s]\n", line.Prefix, name, line.Node.ID)
				}
			}

			folders, files := tree.Count(root)
			fmt.Fprintf(cmd.ErrOrStderr(), "\n%d folders, %d files\n", folders-1, files)
			return nil
		},
	}

	cmd.Flags().BoolVar(&showIDs, "ids", false, "Show node ids")
	cmd.Flags().StringVarP(&format, "format", "f", "", "Print as a document instead: json or yaml")

	return cmd
}
