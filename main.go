package main

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/DevHugoP/sightToScript/cmd"
	"github.com/DevHugoP/sightToScript/cmd/config"
	"github.com/DevHugoP/sightToScript/pkg/service"
)

var svc *service.Service

func main() {
	rootCmd := &cobra.Command{
		Use:           "sts",
		Short:         "Edit folder layouts and turn them into shell scripts",
		SilenceUsage:  true,
		SilenceErrors: false,
	}
	config.AddGlobalFlags(rootCmd)

	cobra.OnInitialize(config.InitConfig)

	rootCmd.PersistentPreRunE = func(c *cobra.Command, args []string) error {
		// This runs once before any subcommand
		if c.Name() == "version" {
			return nil
		}
		s, err := config.InitService()
		if err != nil {
			return err
		}
		svc = s
		return nil
	}
	rootCmd.PersistentPostRun = func(c *cobra.Command, args []string) {
		if svc != nil {
			_ = svc.Close()
		}
	}

	// Add subcommands
	rootCmd.AddCommand(cmd.NewGenerateCmd(&svc))
	rootCmd.AddCommand(cmd.NewShowCmd(&svc))
	rootCmd.AddCommand(cmd.NewEditCmd(&svc))
	rootCmd.AddCommand(cmd.NewApplyCmd(&svc))
	rootCmd.AddCommand(cmd.NewFindCmd(&svc))
	rootCmd.AddCommand(cmd.NewSaveCmd(&svc))
	rootCmd.AddCommand(cmd.NewListCmd(&svc))
	rootCmd.AddCommand(cmd.NewExportCmd(&svc))
	rootCmd.AddCommand(cmd.NewDeleteCmd(&svc))
	rootCmd.AddCommand(cmd.NewVersionCmd())

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
