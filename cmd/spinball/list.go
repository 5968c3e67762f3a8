package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/spinball/internal/games/spinball"
	"github.com/vovakirdan/spinball/internal/registry"
)

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List the game modes",
	Args:  cobra.NoArgs,
	Run: func(_ *cobra.Command, _ []string) {
		modes := registry.List()
		if len(modes) == 0 {
			fmt.Println("No modes registered.")
			return
		}

		fmt.Println("Modes:")
		for _, m := range modes {
			fmt.Printf("  %-10s %-20s (%s)\n", modeName(m.ID), m.Title, m.ID)
		}
		fmt.Println()
		fmt.Println("Start one with 'spinball play <mode>'.")
	},
}

// modeName is the short CLI name of a registered mode.
func modeName(id string) string {
	switch id {
	case spinball.IDClassic:
		return "classic"
	case spinball.IDSurvival:
		return "survival"
	}
	return strings.ToLower(id)
}
