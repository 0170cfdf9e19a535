package app

import (
	"encoding/json"
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/scout6645/habitflow/internal/achievement"
	"github.com/scout6645/habitflow/internal/output"
	"github.com/scout6645/habitflow/internal/stats"
)

var achievementsCmd = &cobra.Command{
	Use:   "achievements",
	Short: "Show badge progress",
	RunE:  runAchievements,
}

func init() {
	rootCmd.AddCommand(achievementsCmd)
}

func runAchievements(cmd *cobra.Command, args []string) error {
	_, db, err := setup()
	if err != nil {
		return err
	}
	defer db.Close()

	snap, err := db.LoadSnapshot(cmd.Context())
	if err != nil {
		return fmt.Errorf("loading snapshot: %w", err)
	}
	unlocks, err := db.ListUnlocks()
	if err != nil {
		return err
	}

	now := time.Now()
	totals := achievement.Totals{
		Completions: len(snap.Completions),
		Streak:      stats.OverallStreak(snap.Habits, snap.Completions, now),
		PerfectDays: stats.PerfectDayCount(snap.Habits, snap.Completions),
		Level:       stats.Level(snap.Profile.TotalXP),
	}
	statuses := achievement.Evaluate(totals, unlocks)

	if flagJSON {
		return json.NewEncoder(os.Stdout).Encode(statuses)
	}

	unlocked := achievement.CountUnlocked(statuses)
	fmt.Println(output.Section(fmt.Sprintf("Achievements (%d/%d)", unlocked, len(statuses))))

	table := output.NewTable("", "NAME", "DESCRIPTION", "PROGRESS")
	for _, s := range statuses {
		progress := "unlocked"
		if !s.Unlocked {
			progress = fmt.Sprintf("%.0f%%", s.Progress)
		}
		table.AddRow(s.Icon, s.Name, s.Description, progress)
	}
	fmt.Print(table.Render())
	fmt.Println()
	return nil
}
