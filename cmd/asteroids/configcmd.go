package main

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-asteroids/internal/config"
)

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Print the default configuration",
	Long: `Prints the embedded default YAML configuration. Save it to
~/.asteroids/configs/asteroids.yaml or ./configs/asteroids.yaml and edit
it to override any value.`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		_, err := os.Stdout.Write(config.DefaultYAML())
		return err
	},
}
