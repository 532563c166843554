package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/DevHugoP/sightToScript/pkg/script"
	"github.com/DevHugoP/sightToScript/pkg/service"
)

var (
	cfgFile string
	verbose bool
)

func InitConfig() {
	if cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	} else {
		home, err := os.UserHomeDir()
		cobra.CheckErr(err)

		configDir := filepath.Join(home, ".config", "sts")
		viper.AddConfigPath(configDir)
		viper.SetConfigType("yaml")
		viper.SetConfigName("config")
	}

	viper.SetEnvPrefix("STS")
	viper.AutomaticEnv()

	// Set defaults
	home, _ := os.UserHomeDir()
	viper.SetDefault("data_dir", filepath.Join(home, ".local", "share", "sts"))
	viper.SetDefault("default_dialect", string(script.Bash))
	viper.SetDefault("log_level", "warn")

	// A missing config file is normal; defaults apply.
	_ = viper.ReadInConfig()
}

// NewLogger builds the process logger from the log_level setting.
func NewLogger() *logrus.Entry {
	logger := logrus.New()
	logger.SetOutput(os.Stderr)
	logger.SetLevel(logrus.WarnLevel)

	level, err := logrus.ParseLevel(viper.GetString("log_level"))
	if err == nil {
		logger.SetLevel(level)
	}
	if verbose {
		logger.SetLevel(logrus.DebugLevel)
	}
	return logrus.NewEntry(logger).WithField("app", "sts")
}

func InitService() (*service.Service, error) {
	logger := NewLogger()

	dialect, err := script.ParseDialect(viper.GetString("default_dialect"))
	if err != nil {
		logger.Warnf("ignoring default_dialect: %v", err)
		dialect = script.Bash
	}

	dataDir := viper.GetString("data_dir")
	if strings.HasPrefix(dataDir, "~/") {
		home, _ := os.UserHomeDir()
		dataDir = filepath.Join(home, dataDir[2:])
	}

	config := &service.Config{
		DataDir:        dataDir,
		DefaultDialect: dialect,
	}

	svc, err := service.New(config, logger)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize service: %w", err)
	}
	return svc, nil
}

func AddGlobalFlags(cmd *cobra.Command) {
	cmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default is $HOME/.config/sts/config.yaml)")
	cmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Enable debug logging")
	cmd.PersistentFlags().String("data-dir", "", "Directory holding the structure database")
	_ = viper.BindPFlag("data_dir", cmd.PersistentFlags().Lookup("data-dir"))
}
