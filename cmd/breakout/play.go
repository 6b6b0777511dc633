package main

import (
	"fmt"
	"os"
	"os/user"
	"path/filepath"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/tui-breakout/internal/config"
	"github.com/vovakirdan/tui-breakout/internal/platform/tui"
)

var flagLevel int

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Play in the terminal",
	Long: `Start breakout in the terminal.

Controls:
  A/D, Left/Right  - Move paddle
  Space            - Launch ball
  W/S, Up/Down     - Pick level in the menu
  Enter            - Start level / back to menu after a win
  Ctrl+S           - Save a text screenshot
  Q/Esc/Ctrl+C     - Quit

Difficulty options:
  easy   - Wider, faster paddle; launch speed grows slowly with score
  normal - Default paddle; launch speed grows with score
  hard   - Narrow paddle and faster ball
  fixed  - No progression

Logs go to ~/.breakout/breakout.log.

Examples:
  breakout play
  breakout play --level 2
  breakout play --difficulty hard
  breakout play --config ./my-breakout.yaml`,
	Args: cobra.NoArgs,
	RunE: runPlay,
}

func init() {
	playCmd.Flags().IntVar(&flagLevel, "level", 0, "Level to select (1-based)")
}

// localPlayer names the runs recorded from this machine.
func localPlayer() string {
	if u, err := user.Current(); err == nil && u.Username != "" {
		return u.Username
	}
	return "local"
}

func runPlay(_ *cobra.Command, _ []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	// stdout belongs to the TUI, so logs go to a file.
	logPath := filepath.Join(config.UserDir(), "breakout.log")
	if err := os.MkdirAll(filepath.Dir(logPath), 0o755); err != nil {
		return fmt.Errorf("cannot create %s: %w", filepath.Dir(logPath), err)
	}
	logFile, err := os.OpenFile(logPath, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o600)
	if err != nil {
		return fmt.Errorf("cannot open log file: %w", err)
	}
	defer logFile.Close()

	logger, err := newLogger(logFile, "breakout")
	if err != nil {
		return err
	}

	store := openStore(logger)
	if store != nil {
		defer store.Close()
	}

	game, err := newGame(cfg, flagLevel, logger, tui.RunSaver(store, localPlayer(), logger))
	if err != nil {
		return err
	}

	width, height := 80, 24 // Defaults
	if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
		width, height = w, h
	}

	logger.Info("starting terminal game", "cols", width, "rows", height, "levels", len(game.Levels))
	if err := tui.Run(game, width, height, flagFPS); err != nil {
		logger.Error("game exited with error", "err", err)
		return fmt.Errorf("running game: %w", err)
	}
	st := game.Status()
	logger.Info("terminal game closed", "score", st.Score, "lost", st.BallsLost, "won", st.Won)
	return nil
}
