package main

import (
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/spinball/internal/platform/tui"
	"github.com/vovakirdan/spinball/internal/registry"
)

var menuCmd = &cobra.Command{
	Use:   "menu",
	Short: "Start SpinBall with the title menu",
	Long: `Start SpinBall in interactive menu mode.

The title menu starts a game, opens the settings or the ranking.
After a game, Esc returns to the menu.

Controls:
  Up/Down/j/k  - Navigate menu
  Left/Right   - Switch between classic and survival
  Enter/Space  - Select
  Tab          - Ranking
  Q            - Quit

Examples:
  spinball menu
  spinball menu --fps 30
  spinball menu --db ./scores.db`,
	Run: runMenu,
}

func runMenu(_ *cobra.Command, _ []string) {
	logger, closer := newLogger(flagLogPath)
	defer closer.Close()

	prefs := openSettings(logger)
	validateConfig()
	store := openStore(logger)

	cfg := runtimeConfig()

	for quit := false; !quit; {
		lang := language(prefs.Settings())

		menuResult, err := tui.RunMenu(cfg, lang)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			break
		}
		cfg = menuResult.Config

		switch menuResult.Choice {
		case tui.ChoiceSettings:
			goBack, setErr := tui.RunSettings(prefs, cfg, logger)
			if setErr != nil {
				fmt.Fprintf(os.Stderr, "Error: %v\n", setErr)
			}
			// A language picked in the menu replaces --lang.
			flagLang = ""
			quit = !goBack

		case tui.ChoiceScoreboard:
			goBack, sbErr := tui.RunScoreboard(store, cfg.ScreenW, cfg.ScreenH, lang)
			if sbErr != nil {
				fmt.Fprintf(os.Stderr, "Error: %v\n", sbErr)
			}
			quit = !goBack

		case tui.ChoicePlay:
			applySettings(prefs.Settings())
			game, gameErr := registry.Create(menuResult.GameID)
			if gameErr != nil {
				fmt.Fprintf(os.Stderr, "Error creating game: %v\n", gameErr)
				continue
			}

			cfg.Seed = flagSeed
			if cfg.Seed == 0 {
				cfg.Seed = time.Now().UnixNano()
			}

			goBack, runErr := tui.Run(game, cfg, gameOptions(store, logger, lang, true))
			if runErr != nil {
				logger.Error("game stopped", "err", runErr)
				fmt.Fprintf(os.Stderr, "Error running game: %v\n", runErr)
			}
			quit = !goBack

		default:
			quit = true
		}
	}

	if store != nil {
		store.Close()
	}
}
