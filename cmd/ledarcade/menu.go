package main

import (
	"github.com/spf13/cobra"

	"github.com/ledgrid/ledarcade/internal/platform/tui"
	"github.com/ledgrid/ledarcade/internal/registry"
)

var menuCmd = &cobra.Command{
	Use:   "menu",
	Short: "Pick a program interactively",
	Long: `Start the arcade with a program picker menu.

Use arrow keys or j/k to navigate, Enter to start. When a program exits
you return to the menu.

Examples:
  ledarcade menu
  ledarcade menu --brightness 0.5`,
	Run: runMenu,
}

func runMenu(_ *cobra.Command, _ []string) {
	checkTerminalSize()

	for {
		id, err := tui.RunMenu()
		if err != nil {
			logger.Fatal("running menu", "err", err)
		}
		if id == "" {
			return
		}

		program, err := registry.Create(id)
		if err != nil {
			logger.Error("creating program", "err", err)
			continue
		}

		if err := tui.Run(program, runtimeConfig(), flagAutoplay); err != nil {
			logger.Error("running program", "err", err)
		}
	}
}
