package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/APeffer/fidgetball/internal/motion"
)

var sourcesCmd = &cobra.Command{
	Use:   "sources",
	Short: "List available motion sources",
	Long: `List the registered motion sources the toy can read tilt from.

The demo source is a synthetic wobble and is also the automatic fallback
whenever a live source exists but has not been granted permission.`,
	Args: cobra.NoArgs,
	Run:  runSources,
}

func runSources(_ *cobra.Command, _ []string) {
	fmt.Println("Available motion sources:")
	fmt.Println()
	for _, info := range motion.List() {
		fmt.Printf("  %-8s - %s\n", info.ID, info.Description)
	}
	fmt.Println()
	fmt.Println("Select one with: fidgetball play --source <id>")
}
