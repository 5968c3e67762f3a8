// spinball is a terminal brick breaker: aim, fire a volley and clear the
// numbered blocks before they reach the floor.
//
// Usage:
//
//	spinball play [classic|survival]  - Play a mode directly
//	spinball menu                     - Title menu with settings and ranking
//	spinball scores [mode]            - Show the ranking of a mode
//	spinball settings [show|set k v]  - Show or change settings
//	spinball serve                    - Start SSH server for remote play
//	spinball list                     - List game modes
//
// Global flags:
//
//	--fps <rate>          - Set tick rate (default: 60)
//	--seed <value>        - Set RNG seed for reproducible gameplay
//	--db <path>           - Set database path (default: ~/.spinball/scores.db)
//	--config <path>       - Custom game config YAML
//	--difficulty <preset> - easy, normal, hard or fixed
//	--log <path>          - Log file (default: ~/.spinball/spinball.log)
package main

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/spinball/internal/config"
	"github.com/vovakirdan/spinball/internal/core"
	"github.com/vovakirdan/spinball/internal/games/spinball"
	"github.com/vovakirdan/spinball/internal/platform/tui"
	"github.com/vovakirdan/spinball/internal/settings"
	"github.com/vovakirdan/spinball/internal/storage"
)

var (
	// Global flags
	flagFPS        int
	flagSeed       int64
	flagDBPath     string
	flagConfig     string
	flagDifficulty string
	flagLogPath    string
	flagLang       string
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "spinball",
	Short: "SpinBall - a brick breaker for your terminal",
	Long: `SpinBall is a turn-based brick breaker played in the terminal.

Aim the launcher, fire a volley of balls and break the numbered blocks
before any of them reaches the floor. Every round adds a ball and a new
row of blocks; spend your score on power-ups between rounds.

Available commands:
  play      - Play a mode directly
  menu      - Title menu with settings and ranking
  scores    - View the ranking
  settings  - Show or change settings
  serve     - Start SSH server for remote play
  list      - Show the game modes

Examples:
  spinball play
  spinball play survival --difficulty hard
  spinball menu
  spinball scores classic
  spinball settings set language en
  spinball serve --ssh :2222`,
	SilenceUsage: true,
}

func init() {
	rootCmd.PersistentFlags().IntVar(&flagFPS, "fps", 60, "Tick rate (frames per second)")
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.PersistentFlags().StringVar(&flagDBPath, "db", "~/"+config.AppDir+"/scores.db", "Path to scores database")
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Path to custom game config YAML")
	rootCmd.PersistentFlags().StringVar(&flagDifficulty, "difficulty", "", "Difficulty preset: easy, normal, hard, fixed (default from settings)")
	rootCmd.PersistentFlags().StringVar(&flagLogPath, "log", "~/"+config.AppDir+"/spinball.log", "Log file path")
	rootCmd.PersistentFlags().StringVar(&flagLang, "lang", "", "UI language: ko, en (default from settings)")

	rootCmd.AddCommand(listCmd)
	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(menuCmd)
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(scoresCmd)
	rootCmd.AddCommand(settingsCmd)
}

// expandHome replaces a leading ~ with the home directory.
func expandHome(path string) string {
	if !strings.HasPrefix(path, "~") {
		return path
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return path
	}
	return filepath.Join(home, path[1:])
}

// newLogger opens the log file. If that fails, logging is discarded so the
// terminal UI is never disturbed.
func newLogger(path string) (*log.Logger, io.Closer) {
	var w io.Writer = io.Discard
	var closer io.Closer = io.NopCloser(nil)

	if path != "" {
		path = expandHome(path)
		if err := os.MkdirAll(filepath.Dir(path), 0o755); err == nil {
			if f, err := os.OpenFile(path, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0o600); err == nil {
				w = f
				closer = f
			}
		}
	}

	logger := log.NewWithOptions(w, log.Options{
		ReportTimestamp: true,
		Prefix:          "spinball",
	})
	return logger, closer
}

// openSettings loads player settings, falling back to memory only.
func openSettings(logger *log.Logger) *settings.Manager {
	data, err := settings.Open(settings.AppName)
	if err != nil {
		logger.Warn("settings will not be saved", "err", err)
		data = nil
	}
	return settings.NewManager(data, logger)
}

// applySettings pushes settings and flags into the game package.
// Flags win over saved settings.
func applySettings(s settings.Settings) {
	spinball.SetConfigPath(flagConfig)
	spinball.SetBallSpeed(s.BallSpeed)

	difficulty := s.Difficulty
	if flagDifficulty != "" {
		difficulty = flagDifficulty
	}
	spinball.SetDifficultyPreset(difficulty)
}

// language returns the UI language, --lang first.
func language(s settings.Settings) string {
	if flagLang != "" {
		return flagLang
	}
	return s.Language
}

// runtimeConfig builds the runtime config from the terminal size and flags.
func runtimeConfig() core.RuntimeConfig {
	cfg := core.DefaultConfig()
	if w, h, err := term.GetSize(int(os.Stdout.Fd())); err == nil {
		cfg.ScreenW, cfg.ScreenH = w, h
	}
	cfg.TickRate = flagFPS
	cfg.Seed = flagSeed
	return cfg
}

// openStore opens the score database; failures leave the game playable.
func openStore(logger *log.Logger) *storage.Store {
	store, err := storage.Open(flagDBPath)
	if err != nil {
		logger.Warn("could not open scores database", "err", err)
		fmt.Fprintf(os.Stderr, "Warning: could not open scores database: %v\n", err)
		return nil
	}
	return store
}

// gameOptions builds the TUI options, keeping a nil store untyped.
func gameOptions(store *storage.Store, logger *log.Logger, lang string, allowBack bool) tui.Options {
	opts := tui.Options{
		Logger:     logger,
		Language:   lang,
		PlayerName: os.Getenv("USER"),
		AllowBack:  allowBack,
	}
	if store != nil {
		opts.Store = store
	}
	return opts
}

// validateConfig reports a broken custom config before the UI starts.
func validateConfig() {
	if flagConfig == "" {
		return
	}
	if _, err := config.LoadSpinball(flagConfig); err != nil {
		fmt.Fprintf(os.Stderr, "Warning: %v (using defaults)\n", err)
		flagConfig = ""
	}
}
