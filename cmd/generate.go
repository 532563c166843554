package cmd

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/DevHugoP/sightToScript/pkg/script"
	"github.com/DevHugoP/sightToScript/pkg/service"
)

func NewGenerateCmd(svc **service.Service) *cobra.Command {
	var (
		dialectName string
		outPath     string
	)

	cmd := &cobra.Command{
		Use:     "generate <file|id|name>",
		Short:   "Print a script that recreates a structure",
		Aliases: []string{"gen"},
		Long: `Generate the commands that create a folder structure on disk.

The structure can be a JSON or YAML file, "-" for JSON on stdin, or the id
or name of a saved structure.

Examples:
  sts generate layout.json              # Bash to stdout
  sts generate layout.yaml -d powershell
  sts generate my-project -d cmd -o make-layout.cmd`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			s := *svc

			var dialect script.Dialect
			if dialectName != "" {
				d, err := script.ParseDialect(dialectName)
				if err != nil {
					return err
				}
				dialect = d
			}

			sess, err := s.Open(context.Background(), args[0])
			if err != nil {
				return err
			}

			if outPath != "" {
				if dialect == "" {
					dialect = s.Config.DefaultDialect
				}
				if err := script.WriteScript(outPath, sess.Present(), dialect); err != nil {
					return err
				}
				fmt.Fprintf(cmd.ErrOrStderr(), "Wrote %s script to %s\n", dialect, outPath)
				return nil
			}

			out, err := s.Generate(sess, dialect)
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), out)
			return nil
		},
	}

	cmd.Flags().StringVarP(&dialectName, "dialect", "d", "", "Script dialect: bash, powershell or cmd (default from config)")
	cmd.Flags().StringVarP(&outPath, "output", "o", "", "Write the script to a file instead of stdout")

	return cmd
}
