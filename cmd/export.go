package cmd

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/DevHugoP/sightToScript/pkg/service"
	"github.com/DevHugoP/sightToScript/pkg/tree"
)

func NewExportCmd(svc **service.Service) *cobra.Command {
	var (
		format  string
		outPath string
	)

	cmd := &cobra.Command{
		Use:   "export <id|name>",
		Short: "Write a saved structure as a JSON or YAML document",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			s := *svc

			rec, err := s.Store.Resolve(context.Background(), args[0])
			if err != nil {
				return err
			}

			f := tree.FormatJSON
			switch {
			case format != "":
				if f, err = tree.ParseFormat(format); err != nil {
					return err
				}
			case outPath != "":
				f = tree.DetectFormat(outPath)
			}

			data, err := tree.Encode(rec.Structure, f)
			if err != nil {
				return err
			}
			if f == tree.FormatJSON {
				data = append(data, '\n')
			}

			if outPath == "" {
				_, err = cmd.OutOrStdout().Write(data)
				return err
			}
			if err := os.WriteFile(outPath, data, 0644); err != nil {
				return fmt.Errorf("write export: %w", err)
			}
			fmt.Fprintf(cmd.ErrOrStderr(), "Exported %q to %s\n", rec.Name, outPath)
			return nil
		},
	}

	cmd.Flags().StringVarP(&format, "format", "f", "", "Document format: json or yaml (default from -o extension, else json)")
	cmd.Flags().StringVarP(&outPath, "output", "o", "", "Write to a file instead of stdout")

	return cmd
}
