// ledarcade simulates a 16x16 addressable LED matrix arcade in the
// terminal: two button-driven games, ambient effects and a pixel-art
// slideshow, all running on a fixed 20 Hz tick.
//
// Usage:
//
//	ledarcade list              - List available programs
//	ledarcade play <program>    - Run a program
//	ledarcade menu              - Pick a program interactively
//
// Global flags:
//
//	--seed <value>       - RNG seed for reproducible runs (0 = time-based)
//	--brightness <f>     - Output brightness 0.0-1.0 (default 0.3)
//	--fps <rate>         - Tick rate (default 20)
//	--autoplay           - Detach the keyboard and let programs demo themselves
package main

import (
	"os"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	// Import programs to register them
	_ "github.com/ledgrid/ledarcade/internal/games/effects"
	_ "github.com/ledgrid/ledarcade/internal/games/invaders"
	_ "github.com/ledgrid/ledarcade/internal/games/pong"
	_ "github.com/ledgrid/ledarcade/internal/games/slideshow"
)

var (
	flagSeed       int64
	flagBrightness float64
	flagFPS        int
	flagAutoplay   bool
)

var logger = log.NewWithOptions(os.Stderr, log.Options{
	ReportTimestamp: false,
	Prefix:          "ledarcade",
})

func main() {
	if err := rootCmd.Execute(); err != nil {
		logger.Fatal(err)
	}
}

var rootCmd = &cobra.Command{
	Use:   "ledarcade",
	Short: "A 16x16 LED matrix arcade, simulated in your terminal",
	Long: `ledarcade runs the LED matrix arcade firmware against a terminal
simulator instead of the physical panel.

Available commands:
  list   - Show all available programs
  play   - Run a specific program
  menu   - Interactive program picker

Examples:
  ledarcade list
  ledarcade play pong
  ledarcade play invaders --autoplay
  ledarcade play slideshow --brightness 0.5
  ledarcade menu`,
}

func init() {
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.PersistentFlags().Float64Var(&flagBrightness, "brightness", 0.3, "Output brightness (0.0-1.0)")
	rootCmd.PersistentFlags().IntVar(&flagFPS, "fps", 20, "Tick rate (ticks per second)")
	rootCmd.PersistentFlags().BoolVar(&flagAutoplay, "autoplay", false, "Run without keyboard input")

	rootCmd.AddCommand(listCmd)
	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(menuCmd)
}
