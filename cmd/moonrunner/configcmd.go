package main

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/moonrunner/internal/config"
)

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Print the default configuration",
	Long: `Print the embedded default configuration as YAML. Save it to
~/.moonrunner/configs/moonrunner.yaml or pass it with --config to tune the
course.

Example:
  moonrunner config > ~/.moonrunner/configs/moonrunner.yaml`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		_, err := os.Stdout.Write(config.DefaultYAML())
		return err
	},
}
