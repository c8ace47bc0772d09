package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/castle-crawler/internal/crawler"
	"github.com/vovakirdan/castle-crawler/internal/platform/tui"
)

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Start a run",
	Long: `Start a run straight away, skipping the title menu.

Controls:
  Arrows/WASD/HJKL  - Move (walk into an enemy to attack)
  Y U B N           - Move diagonally
  .                 - Wait a turn
  I                 - Inventory
  ?                 - Help (configurable)
  Q                 - Quit, confirm with Y (configurable)
  R                 - Restart after defeat

Examples:
  castle play
  castle play --seed 1234
  castle play --difficulty easy
  castle play --tunables ./configs/dungeon.yaml`,
	Args: cobra.NoArgs,
	RunE: runPlay,
}

func runPlay(_ *cobra.Command, _ []string) error {
	s, err := openSession()
	if err != nil {
		return err
	}
	defer s.Close()

	game := crawler.New(s.settings, s.tunables, s.logger)
	state, err := tui.Run(game, s.store, s.logger, runtimeConfig())
	if err != nil {
		return fmt.Errorf("running game: %w", err)
	}

	fmt.Printf("You reached depth %d with %d kills in %d turns.\n", state.Depth, state.Kills, state.Turns)
	return nil
}
