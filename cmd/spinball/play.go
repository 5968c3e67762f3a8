package main

import (
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/spinball/internal/games/spinball"
	"github.com/vovakirdan/spinball/internal/platform/tui"
	"github.com/vovakirdan/spinball/internal/registry"
)

var playCmd = &cobra.Command{
	Use:   "play [classic|survival]",
	Short: "Play SpinBall",
	Long: `Start playing SpinBall in the given mode (classic by default).

Controls:
  Left/Right, A/D - Aim
  Mouse           - Aim, click to fire
  Space           - Fire the volley
  1-4             - Buy power-ups in the shop
  Enter           - Start / next round
  P               - Pause
  R               - Restart (after game over)
  Ctrl+S          - Screenshot
  Q/Ctrl+C        - Quit

Difficulty options:
  easy   - Slower balls, survival starts at the lowest level
  normal - Default speed, survival starts at 30%
  hard   - Faster balls, survival starts at 70%
  fixed  - No survival progression

Examples:
  spinball play
  spinball play survival
  spinball play --difficulty hard
  spinball play --config ./my-spinball.yaml`,
	Args: cobra.MaximumNArgs(1),
	Run:  runPlay,
}

// modeID maps a mode name or game ID to a registered game ID.
func modeID(arg string) (string, bool) {
	switch strings.ToLower(arg) {
	case "", "classic":
		return spinball.IDClassic, true
	case "survival":
		return spinball.IDSurvival, true
	}
	return arg, registry.Exists(arg)
}

func runPlay(_ *cobra.Command, args []string) {
	arg := ""
	if len(args) > 0 {
		arg = args[0]
	}
	gameID, ok := modeID(arg)
	if !ok {
		fmt.Fprintf(os.Stderr, "Error: unknown mode %q\n", arg)
		fmt.Fprintln(os.Stderr, "Run 'spinball list' to see available modes.")
		os.Exit(1)
	}

	logger, closer := newLogger(flagLogPath)
	defer closer.Close()

	prefs := openSettings(logger)
	validateConfig()
	applySettings(prefs.Settings())

	game, err := registry.Create(gameID)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error creating game: %v\n", err)
		os.Exit(1)
	}

	store := openStore(logger)

	_, runErr := tui.Run(game, runtimeConfig(), gameOptions(store, logger, language(prefs.Settings()), false))

	if store != nil {
		store.Close()
	}

	if runErr != nil {
		logger.Error("game stopped", "err", runErr)
		fmt.Fprintf(os.Stderr, "Error running game: %v\n", runErr)
		os.Exit(1)
	}
}
