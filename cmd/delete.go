package cmd

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/DevHugoP/sightToScript/pkg/service"
)

func NewDeleteCmd(svc **service.Service) *cobra.Command {
	cmd := &cobra.Command{
		Use:     "delete <id|name>",
		Short:   "Delete a saved structure",
		Aliases: []string{"rm"},
		Args:    cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			s := *svc

			rec, err := s.Delete(context.Background(), args[0])
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Deleted %q (%s)\n", rec.Name, rec.ID)
			return nil
		},
	}

	return cmd
}
