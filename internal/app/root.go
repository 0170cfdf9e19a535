// Package app contains the Cobra command tree for habitflow.
package app

import (
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/scout6645/habitflow/internal/config"
	"github.com/scout6645/habitflow/internal/insight"
	"github.com/scout6645/habitflow/internal/output"
	"github.com/scout6645/habitflow/internal/stats"
	"github.com/scout6645/habitflow/internal/store"
)

var appVersion = "dev"

// SetVersion sets the application version (called from main with ldflags value).
func SetVersion(v string) {
	appVersion = v
	rootCmd.Version = v
}

var (
	flagNoColor bool
	flagJSON    bool
	flagConfig  string
)

var rootCmd = &cobra.Command{
	Use:   "habitflow",
	Short: "Gamified habit tracking from the terminal",
	Long: `habitflow tracks daily habits and turns consistency into progress:
completions earn XP, consecutive days build streaks, and the trailing month
folds into a single life score with rule-based insights.

Run 'habitflow' with no arguments for a dashboard summary.`,
	SilenceUsage:  true,
	SilenceErrors: true,
	RunE:          runDashboard,
}

// Execute is the entry point called from main.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "error:", err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Config file path (default: ~/.config/habitflow/config.yaml)")
	rootCmd.PersistentFlags().BoolVar(&flagNoColor, "no-color", false, "Disable colored output")
	rootCmd.PersistentFlags().BoolVar(&flagJSON, "json", false, "Output as JSON")
}

// setup loads configuration, applies output preferences, and opens the store.
// Callers own the returned DB and must close it.
func setup() (*config.Config, *store.DB, error) {
	cfg, err := config.Load(flagConfig)
	if err != nil {
		return nil, nil, fmt.Errorf("loading config: %w", err)
	}

	if flagNoColor {
		output.SetNoColor(true)
	} else {
		output.AutoColor(cfg.Output.Color)
	}
	output.SetWidth(cfg.Output.Width)

	db, err := store.Open(cfg.DBPath())
	if err != nil {
		return nil, nil, fmt.Errorf("opening database: %w", err)
	}
	return cfg, db, nil
}

func runDashboard(cmd *cobra.Command, args []string) error {
	cfg, db, err := setup()
	if err != nil {
		return err
	}
	defer db.Close()

	snap, err := db.LoadSnapshot(cmd.Context())
	if err != nil {
		return fmt.Errorf("loading snapshot: %w", err)
	}

	now := time.Now()
	progress := stats.TodayProgress(snap.Habits, snap.Completions, now)
	streak := stats.OverallStreak(snap.Habits, snap.Completions, now)
	level := stats.Level(snap.Profile.TotalXP)

	fmt.Println(output.Section(fmt.Sprintf("habitflow %s", appVersion)))
	fmt.Printf("  Today      %s  (%d/%d habits)\n",
		output.ScoreBar(progress.Percentage, 20), progress.Completed, progress.Total)
	fmt.Printf("  Streak     %s\n", output.StyleBold.Render(fmt.Sprintf("%d day(s)", streak)))
	fmt.Printf("  Level      %s  %s\n",
		output.StyleBold.Render(fmt.Sprintf("%d (%d XP)", level, snap.Profile.TotalXP)),
		output.ScoreBar(stats.LevelProgress(snap.Profile.TotalXP), 12))

	engine := insight.NewEngine()
	insights := engine.Evaluate(&insight.Context{
		Habits:      snap.Habits,
		Completions: snap.Completions,
		Now:         now,
		Streak:      streak,
		Level:       level,
		TotalXP:     snap.Profile.TotalXP,
		EveningHour: cfg.EveningHour,
	})
	if len(insights) > 2 {
		insights = insights[:2]
	}
	fmt.Println()
	for _, ins := range insights {
		fmt.Printf("  %s  %s\n", output.TypeBadge(ins.Type), ins.Message)
	}
	fmt.Println()
	return nil
}
