package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/castle-crawler/internal/crawler"
	"github.com/vovakirdan/castle-crawler/internal/platform/tui"
)

// runMenu shows the title menu until the player quits. Each new game gets a
// fresh seed unless --seed was given.
func runMenu(_ *cobra.Command, _ []string) error {
	s, err := openSession()
	if err != nil {
		return err
	}
	defer s.Close()

	cfg := runtimeConfig()

	for {
		res, err := tui.RunMenu(s.store, cfg)
		if err != nil {
			return err
		}
		cfg = res.Config

		switch res.Choice {
		case tui.ChoiceNewGame:
			game := crawler.New(s.settings, s.tunables, s.logger)
			state, err := tui.Run(game, s.store, s.logger, cfg)
			if err != nil {
				fmt.Fprintf(os.Stderr, "Error running game: %v\n", err)
			}
			s.logger.Info("run finished", "depth", state.Depth, "kills", state.Kills, "turns", state.Turns)

		case tui.ChoiceHighScores:
			goBack, err := tui.RunScoreboard(s.store, cfg.ScreenW, cfg.ScreenH)
			if err != nil {
				fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			}
			if !goBack {
				return nil
			}

		default:
			return nil
		}
	}
}
