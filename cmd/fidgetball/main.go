// fidgetball is a tilt-driven ball toy for the terminal.
//
// Usage:
//
//	fidgetball play              - Play the toy
//	fidgetball serve             - Start SSH server for remote play
//	fidgetball sessions          - Show recent session history
//	fidgetball sources           - List available motion sources
//	fidgetball config            - Print the default configuration YAML
//
// Global flags:
//
//	--fps <rate>       - Set tick rate (default: 60)
//	--db <path>        - Set database path (default: ~/.fidgetball/sessions.db)
//	--config <path>    - Path to custom config YAML
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var (
	// Global flags
	flagFPS    int
	flagDBPath string
	flagConfig string
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "fidgetball",
	Short: "FidgetBall - Tilt a ball around your terminal",
	Long: `FidgetBall is a pocket physics toy: a ball rolls around the terminal,
driven by your phone's tilt sensor or a built-in demo wobble, blipping
when it drifts near a wall.

Available commands:
  play      - Run the toy in this terminal
  serve     - Start SSH server for remote play
  sessions  - View recent session history
  sources   - List available motion sources
  config    - Print the default configuration YAML

Examples:
  fidgetball play
  fidgetball play --source bridge
  fidgetball serve --ssh :2222
  fidgetball sessions`,
}

func init() {
	// Global persistent flags
	rootCmd.PersistentFlags().IntVar(&flagFPS, "fps", 60, "Tick rate (frames per second)")
	rootCmd.PersistentFlags().StringVar(&flagDBPath, "db", "~/.fidgetball/sessions.db", "Path to sessions database")
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Path to custom config YAML")

	// Add subcommands
	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(sessionsCmd)
	rootCmd.AddCommand(sourcesCmd)
	rootCmd.AddCommand(configCmd)
}
