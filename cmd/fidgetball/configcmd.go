package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/APeffer/fidgetball/internal/config"
)

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Print the default configuration YAML",
	Long: `Print the built-in default configuration to stdout.

Redirect it to a file to start customizing:
  fidgetball config > ~/.fidgetball/configs/fidgetball.yaml`,
	Args: cobra.NoArgs,
	Run: func(_ *cobra.Command, _ []string) {
		fmt.Print(string(config.DefaultYAML()))
	},
}
