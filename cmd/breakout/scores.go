package main

import (
	"fmt"
	"os"
	"slices"
	"time"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/tui-breakout/internal/games/breakout"
	"github.com/vovakirdan/tui-breakout/internal/platform/tui"
	"github.com/vovakirdan/tui-breakout/internal/storage"
)

var (
	flagScoresTUI     bool
	flagScoresHistory bool
	flagScoresClear   bool
)

var scoresCmd = &cobra.Command{
	Use:   "scores [level]",
	Short: "Show best runs for a level",
	Long: `Display the top 10 runs for a level, ranked by score, then balls lost,
then time. Without a level, prints a summary of every level played.

Examples:
  breakout scores
  breakout scores one
  breakout scores one --history
  breakout scores one --clear
  breakout scores --tui`,
	Args: cobra.MaximumNArgs(1),
	RunE: runScores,
}

func init() {
	scoresCmd.Flags().BoolVar(&flagScoresTUI, "tui", false, "Browse runs in an interactive table")
	scoresCmd.Flags().BoolVar(&flagScoresHistory, "history", false, "List every run of the level, newest first")
	scoresCmd.Flags().BoolVar(&flagScoresClear, "clear", false, "Delete every run of the level")
}

func runScores(_ *cobra.Command, args []string) error {
	store, err := storage.Open(flagDBPath)
	if err != nil {
		return fmt.Errorf("opening scores database: %w", err)
	}
	defer store.Close()

	level := ""
	if len(args) == 1 {
		level = args[0]
	}

	if (flagScoresHistory || flagScoresClear) && level == "" {
		return fmt.Errorf("--history and --clear need a level")
	}
	if flagScoresClear {
		if err := store.ClearRuns(level); err != nil {
			return err
		}
		fmt.Printf("Cleared runs for %s\n", level)
		return nil
	}
	if flagScoresHistory {
		return printHistory(store, level)
	}

	if flagScoresTUI {
		levels, err := levelNames()
		if err != nil {
			return err
		}
		if level != "" && !slices.Contains(levels, level) {
			levels = append(levels, level)
		}
		width, height := 80, 24
		if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
			width, height = w, h
		}
		return tui.RunScoreboard(store, levels, level, width, height)
	}

	if level == "" {
		return printSummary(store)
	}
	return printLevel(store, level)
}

// levelNames lists the configured levels in play order.
func levelNames() ([]string, error) {
	cfg, err := loadConfig()
	if err != nil {
		return nil, err
	}
	names := make([]string, len(cfg.Levels.Files))
	for i, f := range cfg.Levels.Files {
		names[i] = breakout.LevelName(f)
	}
	return names, nil
}

func printLevel(store *storage.Store, level string) error {
	runs, err := store.TopRuns(level, 10)
	if err != nil {
		return fmt.Errorf("retrieving runs: %w", err)
	}

	fmt.Printf("Best Runs - %s\n", level)
	fmt.Println()

	if len(runs) == 0 {
		fmt.Println("No runs recorded yet.")
		fmt.Println()
		fmt.Println("Clear the level in 'breakout play' to set the first score!")
		return nil
	}

	fmt.Printf("  %-4s  %-7s  %-4s  %-8s  %-12s  %s\n", "Rank", "Score", "Lost", "Time", "Player", "Date")
	fmt.Printf("  %-4s  %-7s  %-4s  %-8s  %-12s  %s\n", "----", "-----", "----", "----", "------", "----")
	for i, r := range runs {
		fmt.Printf("  %-4d  %-7d  %-4d  %-8s  %-12s  %s\n",
			i+1, r.Score, r.BallsLost, r.Duration.Round(100*time.Millisecond).String(), r.Player, r.CreatedAt.Format("2006-01-02 15:04"))
	}

	stats, err := store.Stats(level)
	if err == nil {
		fmt.Println()
		fmt.Printf("Runs: %d  Best: %d  Avg: %.1f  Fastest: %s\n",
			stats.Runs, stats.HighScore, stats.AvgScore, stats.BestTime)
	}
	return nil
}

func printHistory(store *storage.Store, level string) error {
	runs, err := store.AllRuns(level)
	if err != nil {
		return fmt.Errorf("retrieving runs: %w", err)
	}
	fmt.Printf("Runs - %s (%d)\n\n", level, len(runs))
	for _, r := range runs {
		fmt.Printf("  %s  %-12s  score %-6d lost %-3d %s\n",
			r.CreatedAt.Format("2006-01-02 15:04"), r.Player, r.Score, r.BallsLost, r.Duration.Round(100*time.Millisecond))
	}
	return nil
}

func printSummary(store *storage.Store) error {
	stats, err := store.AllStats()
	if err != nil {
		return fmt.Errorf("retrieving stats: %w", err)
	}
	if len(stats) == 0 {
		fmt.Println("No runs recorded yet.")
		return nil
	}

	levels := make([]string, 0, len(stats))
	for name := range stats {
		levels = append(levels, name)
	}
	slices.Sort(levels)

	fmt.Printf("  %-12s  %-4s  %-7s  %-9s  %-8s  %s\n", "Level", "Runs", "Best", "Min lost", "Fastest", "Last played")
	fmt.Printf("  %-12s  %-4s  %-7s  %-9s  %-8s  %s\n", "-----", "----", "----", "--------", "-------", "-----------")
	for _, name := range levels {
		st := stats[name]
		fmt.Printf("  %-12s  %-4d  %-7d  %-9d  %-8s  %s\n",
			name, st.Runs, st.HighScore, st.FewestLost, st.BestTime, st.LastPlayed.Format("2006-01-02 15:04"))
	}
	return nil
}
