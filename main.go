// ninja is a small platformer built around a swept tile collision core.
//
// Usage:
//
//	ninja play               - Play a level in a window
//	ninja sim                - Replay an input script headless and print the trace
//	ninja levels             - List the bundled levels
//	ninja config             - Print the effective config as YAML
//
// Global flags:
//
//	--config <path>     - Config file (default: ~/.ninja/ninja.yaml, then ./configs/ninja.yaml)
//	--log-level <level> - debug, info, warn or error
package main

import (
	"fmt"
	"os"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/automoto/ninja/config"
)

var (
	// Global flags
	flagConfig   string
	flagLogLevel string

	// configPath is the file the config came from, "" for the defaults.
	configPath string
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "ninja",
	Short: "Ninja - a tile platformer with swept collisions",
	Long: `Ninja runs a side-scrolling platformer on Tiled levels. The same movement
core drives the window and the headless simulator.

Examples:
  ninja play
  ninja play --level level02 --debug
  ninja sim --script run.yaml
  ninja levels`,
	SilenceUsage:      true,
	PersistentPreRunE: setup,
}

func init() {
	// Global persistent flags
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Path to config YAML")
	rootCmd.PersistentFlags().StringVar(&flagLogLevel, "log-level", "info", "Log level: debug, info, warn, error")

	// Add subcommands
	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(simCmd)
	rootCmd.AddCommand(levelsCmd)
	rootCmd.AddCommand(configCmd)
}

// setup installs the logger and the config every command runs with.
func setup(cmd *cobra.Command, args []string) error {
	level, err := log.ParseLevel(flagLogLevel)
	if err != nil {
		return err
	}
	logger := log.NewWithOptions(os.Stderr, log.Options{
		ReportTimestamp: true,
		Prefix:          "ninja",
		Level:           level,
	})
	log.SetDefault(logger)

	f, path, err := config.Load(flagConfig)
	if err != nil {
		return err
	}
	config.Apply(f)
	configPath = path
	if path != "" {
		log.Debug("config loaded", "path", path)
	}
	return nil
}
