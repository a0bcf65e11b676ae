package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/ledgrid/ledarcade/internal/core"
	"github.com/ledgrid/ledarcade/internal/platform/tui"
	"github.com/ledgrid/ledarcade/internal/registry"
)

// The matrix renders as 2-column cells inside a border, plus a status
// line; smaller terminals clip the frame.
const (
	minTermWidth  = core.Width*2 + 2
	minTermHeight = core.Height + 4
)

var playCmd = &cobra.Command{
	Use:   "play <program>",
	Short: "Run a program",
	Long: `Run the specified program on the simulated matrix.

Controls:
  W/S          - Left paddle up/down
  Up/Down      - Right paddle up/down
  A/D or arrows - Move ship
  Space/F      - Fire
  N/Enter      - Next sprite (slideshow)
  P            - Pause
  R            - Restart
  Q/Esc/Ctrl+C - Quit

With no key pressed the games play themselves; --autoplay detaches the
keyboard entirely.

Examples:
  ledarcade play pong
  ledarcade play invaders --seed 7
  ledarcade play rain --brightness 0.6`,
	Args: cobra.ExactArgs(1),
	Run:  runPlay,
}

func runPlay(cmd *cobra.Command, args []string) {
	id := args[0]

	if !registry.Exists(id) {
		logger.Error("unknown program", "id", id)
		fmt.Fprintln(os.Stderr, "Run 'ledarcade list' to see available programs.")
		os.Exit(1)
	}

	checkTerminalSize()

	program, err := registry.Create(id)
	if err != nil {
		logger.Fatal("creating program", "err", err)
	}

	if err := tui.Run(program, runtimeConfig(), flagAutoplay); err != nil {
		logger.Fatal("running program", "err", err)
	}
}

// runtimeConfig builds the shared runtime configuration from the global
// flags.
func runtimeConfig() core.RuntimeConfig {
	cfg := core.DefaultConfig()
	cfg.Seed = flagSeed
	if flagFPS > 0 {
		cfg.TickRate = flagFPS
	}
	if flagBrightness >= 0 && flagBrightness <= 1 {
		cfg.Brightness = flagBrightness
	}
	return cfg
}

// checkTerminalSize warns when the terminal cannot fit the matrix.
func checkTerminalSize() {
	w, h, err := term.GetSize(int(os.Stdout.Fd()))
	if err != nil {
		return
	}
	if w < minTermWidth || h < minTermHeight {
		logger.Warn("terminal smaller than the matrix frame",
			"have", fmt.Sprintf("%dx%d", w, h),
			"need", fmt.Sprintf("%dx%d", minTermWidth, minTermHeight))
	}
}
