package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/invaders/internal/core"
	"github.com/vovakirdan/invaders/internal/games/invaders"
	"github.com/vovakirdan/invaders/internal/platform/tui"
)

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Play in this terminal",
	Long: `Start a game in the current terminal.

Controls:
  Left/Right - Move
  Space      - Fire (one shot per press)
  Ctrl+S     - Save a screenshot to ~/.invaders/screenshots
  Q/Ctrl+C   - Quit

After Game Over, press any key to start again.

Difficulty options:
  easy   - Slower formation, half the enemy fire
  normal - Default speed and fire rate
  hard   - Faster formation, twice the enemy fire

Examples:
  invaders play
  invaders play --difficulty easy
  invaders play --seed 42 --fps 30`,
	Args: cobra.NoArgs,
	Run:  runPlay,
}

func runPlay(_ *cobra.Command, _ []string) {
	logger := newLogger()

	gameCfg, err := loadGameConfig(logger)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	defaults := core.DefaultConfig()
	cfg := runtimeConfig(defaults.ScreenW, defaults.ScreenH)
	if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
		cfg.ScreenW = w
		cfg.ScreenH = h
	}

	if err := tui.Run(invaders.New(gameCfg), cfg); err != nil {
		fmt.Fprintf(os.Stderr, "Error running game: %v\n", err)
		os.Exit(1)
	}
}
