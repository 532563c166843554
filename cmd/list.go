package cmd

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/DevHugoP/sightToScript/pkg/models"
	"github.com/DevHugoP/sightToScript/pkg/service"
)

func NewListCmd(svc **service.Service) *cobra.Command {
	var listJSON bool

	cmd := &cobra.Command{
		Use:     "list",
		Short:   "List saved structures",
		Aliases: []string{"ls"},
		RunE: func(cmd *cobra.Command, args []string) error {
			s := *svc

			records, err := s.List(context.Background())
			if err != nil {
				return err
			}

			if listJSON {
				return outputJSON(cmd.OutOrStdout(), records)
			}
			if len(records) == 0 {
				fmt.Fprintln(cmd.OutOrStdout(), "No saved structures")
				return nil
			}
			printStructuresTable(cmd.OutOrStdout(), records)
			return nil
		},
	}

	cmd.Flags().BoolVar(&listJSON, "json", false, "Output in JSON format")

	return cmd
}

func printStructuresTable(out io.Writer, records []*models.SavedStructure) {
	w := tabwriter.NewWriter(out, 0, 0, 2, ' ', 0)

	// Print header
	fmt.Fprintln(w, "ID\tNAME\tFOLDERS\tFILES\tUPDATED")
	fmt.Fprintln(w, "--------\t------------------------------\t-------\t-----\t----------------")

	for _, rec := range records {
		fmt.Fprintf(w, "%s\t%s\t%d\t%d\t%s\n",
			shortID(rec.ID),
			truncateString(rec.Name, 30),
			rec.Folders-1, // the root is the working directory
			rec.Files,
			rec.UpdatedAt.Local().Format("2006-01-02 15:04"),
		)
	}

	w.Flush()
}

func shortID(id string) string {
	if len(id) > 8 {
		return id[:8]
	}
	return id
}

// truncateString shortens s to maxLen runes, ending in "...".
func truncateString(s string, maxLen int) string {
	runes := []rune(s)
	if len(runes) <= maxLen {
		return s
	}
	if maxLen <= 3 {
		return string(runes[:maxLen])
	}
	return string(runes[:maxLen-3]) + "..."
}

func outputJSON(out io.Writer, v any) error {
	encoder := json.NewEncoder(out)
	encoder.SetIndent("", "  ")
	return encoder.Encode(v)
}
