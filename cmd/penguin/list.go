package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/penguin-flap/internal/registry"
)

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List all available games",
	Long:  `Shows every registered game and, where a game has them, its themes.`,
	Run:   runList,
}

func runList(_ *cobra.Command, _ []string) {
	games := registry.List()

	if len(games) == 0 {
		fmt.Println("No games available.")
		return
	}

	maxIDLen := 2
	for _, g := range games {
		maxIDLen = max(maxIDLen, len(g.ID))
	}

	fmt.Printf("  %-*s  %s\n", maxIDLen, "ID", "Title")
	fmt.Printf("  %-*s  %s\n", maxIDLen, "--", "-----")

	for _, g := range games {
		fmt.Printf("  %-*s  %s\n", maxIDLen, g.ID, g.Title)

		game, err := registry.Create(g.ID)
		if err != nil {
			continue
		}
		if themer, ok := game.(registry.Themer); ok {
			for _, t := range themer.Themes() {
				fmt.Printf("  %-*s    theme %-6s %s\n", maxIDLen, "", t.ID, t.Title)
			}
		}
	}

	fmt.Println()
	fmt.Println("Run 'penguin play' to start.")
}
