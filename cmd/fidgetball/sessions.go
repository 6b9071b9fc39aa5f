package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/APeffer/fidgetball/internal/platform/tui"
	"github.com/APeffer/fidgetball/internal/storage"
)

var sessionsCmd = &cobra.Command{
	Use:   "sessions",
	Short: "Show recent session history",
	Long: `Display an interactive table of recent play sessions: wall hits,
zone triggers, top speed, and duration.

Examples:
  fidgetball sessions
  fidgetball sessions --db ./sessions.db`,
	Args: cobra.NoArgs,
	Run:  runSessions,
}

func runSessions(_ *cobra.Command, _ []string) {
	store, err := storage.Open(flagDBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error opening sessions database: %v\n", err)
		os.Exit(1)
	}
	defer store.Close()

	width, height := 80, 24
	if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
		width = w
		height = h
	}

	if err := tui.RunSessionBoard(store, width, height); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
