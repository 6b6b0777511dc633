// breakout is a Breakout clone for the terminal, the desktop and SSH.
//
// Usage:
//
//	breakout play            - Play in the terminal
//	breakout window          - Play in a desktop window
//	breakout serve           - Start SSH server for remote play
//	breakout scores [level]  - Show best runs for a level
//	breakout levels          - List and check level files
//
// Global flags:
//
//	--fps <rate>          - Set tick rate (default: 60)
//	--seed <value>        - Set RNG seed for reproducible particles
//	--db <path>           - Set database path (default: ~/.breakout/scores.db)
//	--config <path>       - Custom breakout.yaml
//	--difficulty <preset> - easy, normal, hard or fixed
//	--log-level <level>   - debug, info, warn or error
package main

import (
	"fmt"
	"io"
	"os"
	"time"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-breakout/internal/config"
	"github.com/vovakirdan/tui-breakout/internal/games/breakout"
	"github.com/vovakirdan/tui-breakout/internal/storage"
)

var (
	// Global flags
	flagFPS        int
	flagSeed       int64
	flagDBPath     string
	flagConfig     string
	flagDifficulty string
	flagLogLevel   string
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "breakout",
	Short: "Breakout - bounce a ball, clear the bricks",
	Long: `Breakout is a brick-breaking game that runs in your terminal, in a
desktop window, or over SSH.

Available commands:
  play     - Play in the terminal
  window   - Play in a desktop window
  serve    - Start SSH server for remote play
  scores   - View best runs
  levels   - List and check level files

Examples:
  breakout play
  breakout play --level 3 --difficulty hard
  breakout window
  breakout serve --ssh :2222
  breakout scores one`,
	SilenceUsage:  true,
	SilenceErrors: true,
}

func init() {
	rootCmd.PersistentFlags().IntVar(&flagFPS, "fps", 60, "Tick rate (frames per second)")
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.PersistentFlags().StringVar(&flagDBPath, "db", storage.DefaultPath, "Path to scores database")
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Path to custom breakout.yaml")
	rootCmd.PersistentFlags().StringVar(&flagDifficulty, "difficulty", "", "Difficulty preset: easy, normal, hard, fixed")
	rootCmd.PersistentFlags().StringVar(&flagLogLevel, "log-level", "info", "Log level: debug, info, warn, error")

	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(windowCmd)
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(scoresCmd)
	rootCmd.AddCommand(levelsCmd)
}

// loadConfig reads breakout.yaml and applies --difficulty.
func loadConfig() (config.BreakoutConfig, error) {
	cfg, err := config.LoadBreakout(flagConfig)
	if err != nil {
		return cfg, err
	}
	preset, err := config.ParsePreset(flagDifficulty)
	if err != nil {
		return cfg, err
	}
	config.ApplyBreakoutPreset(&cfg, preset)
	cfg.Window.TickRate = flagFPS
	return cfg, nil
}

// newLogger builds the logger every command shares.
func newLogger(w io.Writer, prefix string) (*log.Logger, error) {
	level, err := log.ParseLevel(flagLogLevel)
	if err != nil {
		return nil, fmt.Errorf("invalid --log-level: %w", err)
	}
	return log.NewWithOptions(w, log.Options{
		Level:           level,
		ReportTimestamp: true,
		Prefix:          prefix,
	}), nil
}

// openStore opens the run database, or returns nil with a warning so the
// game still works without history.
func openStore(logger *log.Logger) *storage.Store {
	store, err := storage.Open(flagDBPath)
	if err != nil {
		logger.Warn("could not open scores database", "path", flagDBPath, "err", err)
		return nil
	}
	return store
}

func seed() int64 {
	if flagSeed != 0 {
		return flagSeed
	}
	return time.Now().UnixNano()
}

// newGame builds a local game that hands finished runs to save.
// level is 1-based; 0 keeps the first level.
func newGame(cfg config.BreakoutConfig, level int, logger *log.Logger, save func(breakout.Run)) (*breakout.Game, error) {
	game, err := breakout.New(breakout.Options{
		Config:          cfg,
		Seed:            seed(),
		Logger:          logger,
		OnLevelComplete: save,
	})
	if err != nil {
		return nil, err
	}
	if level > 0 {
		if err := game.SelectLevel(level - 1); err != nil {
			return nil, err
		}
	}
	return game, nil
}
