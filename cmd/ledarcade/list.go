package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/ledgrid/ledarcade/internal/registry"
)

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List all available programs",
	Long:  `Shows every program registered with the arcade: games, effects and the slideshow.`,
	Run:   runList,
}

func runList(cmd *cobra.Command, args []string) {
	programs := registry.List()

	if len(programs) == 0 {
		fmt.Println("No programs available.")
		return
	}

	maxIDLen := 2 // "ID" header
	for _, p := range programs {
		if len(p.ID) > maxIDLen {
			maxIDLen = len(p.ID)
		}
	}

	fmt.Println("Available programs:")
	fmt.Println()
	fmt.Printf("  %-*s  %s\n", maxIDLen, "ID", "Title")
	fmt.Printf("  %-*s  %s\n", maxIDLen, "--", "-----")
	for _, p := range programs {
		fmt.Printf("  %-*s  %s\n", maxIDLen, p.ID, p.Title)
	}

	fmt.Println()
	fmt.Println("Run 'ledarcade play <id>' to start a program.")
}
