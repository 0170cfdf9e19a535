package app

import (
	"encoding/json"
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/scout6645/habitflow/internal/output"
	"github.com/scout6645/habitflow/internal/stats"
)

var statsCmd = &cobra.Command{
	Use:   "stats",
	Short: "Show the life score breakdown and level progression",
	Long: `Fold the trailing 30 days into a composite life score: completion rate,
consistency, streak strength, and perfect days, weighted into one number with
a month-over-month trend.`,
	RunE: runStats,
}

func init() {
	rootCmd.AddCommand(statsCmd)
}

func runStats(cmd *cobra.Command, args []string) error {
	_, db, err := setup()
	if err != nil {
		return err
	}
	defer db.Close()

	snap, err := db.LoadSnapshot(cmd.Context())
	if err != nil {
		return fmt.Errorf("loading snapshot: %w", err)
	}

	now := time.Now()
	score := stats.ComputeLifeScore(snap.Habits, snap.Completions, now)

	if flagJSON {
		return json.NewEncoder(os.Stdout).Encode(score)
	}

	fmt.Println(output.Section(fmt.Sprintf("Life score  %s %s", score.LevelIcon, score.Level)))
	fmt.Printf("  %s %s  %s\n",
		output.StyleLabel.Render("Overall"),
		output.ScoreBar(float64(score.Overall), 24),
		output.TrendArrowPercent(float64(score.Trend)))
	fmt.Printf("  %s %s\n", output.StyleLabel.Render("Completion rate"), output.ScoreBar(float64(score.Completion), 24))
	fmt.Printf("  %s %s\n", output.StyleLabel.Render("Consistency"), output.ScoreBar(float64(score.Consistency), 24))
	fmt.Printf("  %s %s\n", output.StyleLabel.Render("Streak strength"), output.ScoreBar(float64(score.StreakStrength), 24))
	fmt.Printf("  %s %s\n", output.StyleLabel.Render("Perfect days"), output.ScoreBar(float64(score.PerfectDays), 24))
	fmt.Printf("  %s %d in the last 30 days, %d this month\n",
		output.StyleLabel.Render("Perfect day count"), score.PerfectDaysCount, score.PerfectDaysThisMonth)

	level := stats.Level(snap.Profile.TotalXP)
	fmt.Println(output.Section("Experience"))
	fmt.Printf("  %s %d (%d XP, next at %d)\n",
		output.StyleLabel.Render("Level"), level, snap.Profile.TotalXP, stats.XPThreshold(level))
	fmt.Printf("  %s %s\n", output.StyleLabel.Render("Progress"), output.ScoreBar(stats.LevelProgress(snap.Profile.TotalXP), 24))
	fmt.Printf("  %s %d day(s), longest %d\n",
		output.StyleLabel.Render("Streak"),
		stats.OverallStreak(snap.Habits, snap.Completions, now), snap.Profile.LongestStreak)
	fmt.Println()
	return nil
}
