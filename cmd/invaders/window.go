package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/invaders/internal/games/invaders"
	"github.com/vovakirdan/invaders/internal/platform/desktop"
)

var flagScale float64

var windowCmd = &cobra.Command{
	Use:   "window",
	Short: "Play in a desktop window",
	Long: `Open a desktop window showing the field at its pixel size times --scale.

Controls:
  Left/Right  - Move
  Space       - Fire (one shot per press)
  Enter/Space - Dismiss Game Over and start again
  Esc         - Close the window

Examples:
  invaders window
  invaders window --scale 2 --difficulty hard`,
	Args: cobra.NoArgs,
	Run:  runWindow,
}

func init() {
	windowCmd.Flags().Float64Var(&flagScale, "scale", 1.5, "Window scale factor")
}

func runWindow(_ *cobra.Command, _ []string) {
	logger := newLogger()

	gameCfg, err := loadGameConfig(logger)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	cfg := runtimeConfig(gameCfg.Field.Width, gameCfg.Field.Height)
	if err := desktop.Run(invaders.New(gameCfg), cfg, flagScale); err != nil {
		fmt.Fprintf(os.Stderr, "Error running game: %v\n", err)
		os.Exit(1)
	}
}
