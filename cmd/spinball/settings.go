package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/spinball/internal/config"
	"github.com/vovakirdan/spinball/internal/settings"
)

var settingsCmd = &cobra.Command{
	Use:   "settings [show | set <key> <value> | reset | config]",
	Short: "Show or change settings",
	Long: `Show or change the saved player settings.

Keys:
  ball_speed  - Ball speed in field pixels per tick (5-20)
  difficulty  - easy, normal, hard or fixed
  language    - ko or en
  sound       - true or false

The config action prints the default game tuning YAML, a starting point
for a custom --config file.

Examples:
  spinball settings
  spinball settings config > my-spinball.yaml
  spinball settings set language en
  spinball settings set ball_speed 14
  spinball settings reset`,
	Args: cobra.MaximumNArgs(3),
	Run:  runSettings,
}

func runSettings(_ *cobra.Command, args []string) {
	logger, closer := newLogger(flagLogPath)
	defer closer.Close()

	prefs := openSettings(logger)

	action := "show"
	if len(args) > 0 {
		action = args[0]
	}

	switch action {
	case "show":
		if !prefs.Persistent() {
			fmt.Println("(settings storage unavailable, showing defaults)")
		}
		for _, key := range settings.Keys() {
			value, _ := prefs.Get(key)
			fmt.Printf("  %-10s  %s\n", key, value)
		}
		return

	case "set":
		if len(args) != 3 {
			fmt.Fprintln(os.Stderr, "Error: usage: spinball settings set <key> <value>")
			os.Exit(1)
		}
		if err := prefs.Set(args[1], args[2]); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			if errors.Is(err, settings.ErrUnknownKey) {
				fmt.Fprintf(os.Stderr, "Known keys: %v\n", settings.Keys())
			}
			os.Exit(1)
		}

	case "reset":
		prefs.Reset()

	case "config":
		os.Stdout.Write(config.DefaultYAML()) //nolint:errcheck
		return

	default:
		fmt.Fprintf(os.Stderr, "Error: unknown action %q\n", action)
		os.Exit(1)
	}

	if err := prefs.Save(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	if !prefs.Persistent() {
		fmt.Fprintln(os.Stderr, "Warning: settings storage unavailable, change not saved")
		return
	}
	fmt.Println("Settings saved.")
}
