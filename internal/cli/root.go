// Package cli wires the fitnesshub commands.
package cli

import (
	"fmt"

	"fitnesshub/fitness-app/internal/config"
	"fitnesshub/fitness-app/internal/logging"

	"github.com/spf13/cobra"
)

var configDir string

var rootCmd = &cobra.Command{
	Use:           "fitnesshub",
	Short:         "Fitness Hub backend: weekly workout tracker, programs and community feed",
	SilenceUsage:  true,
	SilenceErrors: true,
}

func init() {
	rootCmd.PersistentFlags().StringVarP(&configDir, "config", "c", ".", "directory holding config.yaml and .env")
}

func Execute() error {
	return rootCmd.Execute()
}

// loadConfig reads the configuration and sets up logging from it.
func loadConfig() (config.Config, error) {
	cfg, err := config.LoadConfig(configDir)
	if err != nil {
		return cfg, fmt.Errorf("load config: %w", err)
	}
	logging.Setup(logging.LoggerSetupParams{
		LogFileName:   cfg.Log.File,
		LogToStdout:   cfg.Log.ToStdout,
		LogLevel:      cfg.Log.Level,
		LogFormatJSON: cfg.Log.JSON,
	})
	return cfg, nil
}
