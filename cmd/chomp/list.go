package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/mkravets/chomp-arcade/internal/registry"
	"github.com/mkravets/chomp-arcade/internal/storage"
)

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List all available games",
	Long:  `Shows every registered game with its recorded best score.`,
	Run:   runList,
}

func runList(cmd *cobra.Command, args []string) {
	games := registry.List()
	if len(games) == 0 {
		fmt.Println("No games available.")
		return
	}

	// Best scores are optional; a missing or unreadable database just
	// leaves the column empty.
	best := make(map[string]int, len(games))
	if store, err := storage.Open(flagDBPath); err == nil {
		for _, g := range games {
			if high, err := store.HighScore(g.ID); err == nil {
				best[g.ID] = high
			}
		}
		store.Close()
	}

	idWidth := len("ID")
	for _, g := range games {
		idWidth = max(idWidth, len(g.ID))
	}

	fmt.Println("Available games:")
	fmt.Println()
	fmt.Printf("  %-*s  %-24s  %s\n", idWidth, "ID", "Title", "Best")
	for _, g := range games {
		bestStr := "-"
		if high, ok := best[g.ID]; ok && high > 0 {
			bestStr = fmt.Sprintf("%d", high)
		}
		fmt.Printf("  %-*s  %-24s  %s\n", idWidth, g.ID, g.Title, bestStr)
	}

	fmt.Println()
	fmt.Println("Run 'chomp play <id>' to play a game.")
}
