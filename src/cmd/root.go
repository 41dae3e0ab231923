package cmd

import (
	"os"

	"fingenius/src/config"

	"github.com/spf13/cobra"
)

var (
	settingsPath string
	environment  string
)

var rootCmd = &cobra.Command{
	Use:           "fingenius",
	Short:         "FinGenius wealth dashboard server",
	SilenceUsage:  true,
	SilenceErrors: true,
}

func init() {
	rootCmd.PersistentFlags().StringVar(&settingsPath, "settings", "./settings", "directory holding appsettings.yaml")
	rootCmd.PersistentFlags().StringVar(&environment, "env", os.Getenv("ENV"), "settings overlay to merge, e.g. TESTING")
	rootCmd.AddCommand(serveCmd, migrateCmd)
}

func Execute() error {
	return rootCmd.Execute()
}

func loadConfig() (*config.Config, error) {
	return config.LoadConfig(settingsPath, environment)
}
