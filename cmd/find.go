package cmd

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/DevHugoP/sightToScript/pkg/service"
	"github.com/DevHugoP/sightToScript/pkg/tree"
)

func NewFindCmd(svc **service.Service) *cobra.Command {
	var showIDs bool

	cmd := &cobra.Command{
		Use:   "find <file|id|name> <pattern>",
		Short: "List the paths in a structure that match a glob",
		Long: `List the folders and files whose path below the root matches a glob.
Patterns use ** for any number of folders.

Examples:
  sts find layout.json '**/*.ts'
  sts find my-project 'src/*' --ids
  sts apply layout.json -e "rm **/*.log"   # delete every match`,
		Args: cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			s := *svc

			sess, err := s.Open(context.Background(), args[0])
			if err != nil {
				return err
			}

			hits, err := tree.Match(sess.Present(), args[1])
			if err != nil {
				return err
			}
			for _, hit := range hits {
				path := hit.Path
				if hit.Node.IsFolder() {
					path += "/"
				}
				if showIDs {
					fmt.Fprintf(cmd.OutOrStdout(), "%s  [%s]\n", path, hit.Node.ID)
				} else {
					fmt.Fprintln(cmd.OutOrStdout(), path)
				}
			}
			s.Logger.WithField("matches", len(hits)).Debug("find done")
			return nil
		},
	}

	cmd.Flags().BoolVar(&showIDs, "ids", false, "Show node ids")

	return cmd
}
