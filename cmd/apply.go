package cmd

import (
	"context"
	"fmt"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/DevHugoP/sightToScript/pkg/script"
	"github.com/DevHugoP/sightToScript/pkg/service"
	"github.com/DevHugoP/sightToScript/pkg/tree"
)

func NewApplyCmd(svc **service.Service) *cobra.Command {
	var (
		ops         []string
		strict      bool
		saveName    string
		save        bool
		format      string
		dialectName string
	)

	cmd := &cobra.Command{
		Use:   "apply <file|id|name>",
		Short: "Apply scripted edits to a structure",
		Long: `Apply a sequence of edits to a structure, in order, and print the result.

Targets are node ids (see 'sts show --ids') or paths below the root.
Arguments are split like a shell command line: quote targets or names that
contain spaces, e.g. rm "my docs/read me.md". A leading '#' starts a comment.

Operations:
  rename <target> <new name>
  add-folder <target> [name]     (alias: mkdir)
  add-file <target> [name]       (alias: touch)
  rm <target>                    (alias: delete)
  undo
  redo

Examples:
  sts apply layout.json -e "add-file src util.ts" -e "rm docs"
  sts apply my-project -e "rename src/app.ts main.ts" --save
  sts apply layout.yaml -e "mkdir . tests" --script bash
  sts apply layout.json -e "rename 'my docs' 'team  docs'"`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			s := *svc

			parsed := make([]service.Op, 0, len(ops))
			for _, raw := range ops {
				op, err := service.ParseOp(raw)
				if err != nil {
					return fmt.Errorf("parse operation %q: %w", raw, err)
				}
				parsed = append(parsed, op)
			}

			sess, err := s.Open(ctx, args[0])
			if err != nil {
				return err
			}

			for _, op := range parsed {
				out := sess.Apply(op)
				if out.Applied {
					s.Logger.WithField("op", op.String()).Debug("applied")
					continue
				}
				if strict {
					return fmt.Errorf("%s: %s", op, out.Reason)
				}
				s.Logger.WithFields(logrus.Fields{"op": op.String(), "reason": out.Reason}).Warn("edit skipped")
			}

			if save || saveName != "" {
				rec, err := s.Save(ctx, sess, saveName)
				if err != nil {
					return err
				}
				fmt.Fprintf(cmd.ErrOrStderr(), "Saved %q (%s)\n", rec.Name, rec.ID)
			}

			if dialectName != "" {
				d, err := script.ParseDialect(dialectName)
				if err != nil {
					return err
				}
				out, err := s.Generate(sess, d)
				if err != nil {
					return err
				}
				fmt.Fprintln(cmd.OutOrStdout(), out)
				return nil
			}

			f := tree.FormatJSON
			if format != "" {
				if f, err = tree.ParseFormat(format); err != nil {
					return err
				}
			} else if sess.SourcePath != "" {
				f = tree.DetectFormat(sess.SourcePath)
			}
			data, err := tree.Encode(sess.Present(), f)
			if err != nil {
				return err
			}
			fmt.Fprint(cmd.OutOrStdout(), string(data))
			if f == tree.FormatJSON {
				fmt.Fprintln(cmd.OutOrStdout())
			}
			return nil
		},
	}

	cmd.Flags().StringArrayVarP(&ops, "edit", "e", nil, "Edit operation to apply (repeatable, applied in order)")
	cmd.Flags().BoolVar(&strict, "strict", false, "Fail on the first rejected edit instead of skipping it")
	cmd.Flags().BoolVar(&save, "save", false, "Save the result to the store")
	cmd.Flags().StringVar(&saveName, "name", "", "Name to save under (implies --save)")
	cmd.Flags().StringVarP(&format, "format", "f", "", "Output document format: json or yaml")
	cmd.Flags().StringVar(&dialectName, "script", "", "Print a script in this dialect instead of the document")

	return cmd
}
