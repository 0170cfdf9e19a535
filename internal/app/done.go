package app

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/scout6645/habitflow/internal/achievement"
	"github.com/scout6645/habitflow/internal/habit"
	"github.com/scout6645/habitflow/internal/output"
	"github.com/scout6645/habitflow/internal/stats"
)

var (
	doneDate  string
	doneNote  string
	doneValue float64
)

var doneCmd = &cobra.Command{
	Use:   "done <habit>",
	Short: "Toggle a habit's completion for today (or --date)",
	Long: `Toggle a habit's completion. Completing earns XP; toggling the same day
again removes the record and takes the XP back, clamped at zero.`,
	Args: cobra.ExactArgs(1),
	RunE: runDone,
}

func init() {
	doneCmd.Flags().StringVar(&doneDate, "date", "", "Calendar day to toggle (yyyy-mm-dd, default today)")
	doneCmd.Flags().StringVar(&doneNote, "note", "", "Optional note on the completion")
	doneCmd.Flags().Float64Var(&doneValue, "value", 0, "Logged value for value-tracked habits")
	rootCmd.AddCommand(doneCmd)
}

func runDone(cmd *cobra.Command, args []string) error {
	_, db, err := setup()
	if err != nil {
		return err
	}
	defer db.Close()

	h, err := db.GetHabit(args[0])
	if err != nil {
		return err
	}
	if h == nil {
		return fmt.Errorf("habit not found: %s", args[0])
	}

	now := time.Now()
	dateKey := habit.DateKey(now)
	if doneDate != "" {
		day, err := habit.ParseDateKey(doneDate)
		if err != nil {
			return fmt.Errorf("invalid date %q (want yyyy-mm-dd)", doneDate)
		}
		dateKey = habit.DateKey(day)
	}

	completed, err := db.ToggleCompletion(h.ID, dateKey, doneNote, doneValue)
	if err != nil {
		return err
	}

	// Re-derive the profile counters from the new snapshot.
	snap, err := db.LoadSnapshot(cmd.Context())
	if err != nil {
		return fmt.Errorf("loading snapshot: %w", err)
	}

	profile := snap.Profile
	profile.TotalXP = stats.ApplyToggle(profile.TotalXP, completed)
	profile.CurrentStreak = stats.OverallStreak(snap.Habits, snap.Completions, now)
	if err := db.SaveProfile(profile); err != nil {
		return err
	}

	if completed {
		fmt.Printf("%s %q done for %s  %s\n", h.Icon, h.Name, dateKey,
			output.StyleSuccess.Render(fmt.Sprintf("+%d XP", stats.XPPerCompletion)))
	} else {
		fmt.Printf("%s %q unmarked for %s  %s\n", h.Icon, h.Name, dateKey,
			output.StyleMuted.Render(fmt.Sprintf("-%d XP", stats.XPPerCompletion)))
	}

	// Achievement unlocks are append-only: once recorded they stick even if
	// the counters later drop.
	unlocks, err := db.ListUnlocks()
	if err != nil {
		return err
	}
	totals := achievement.Totals{
		Completions: len(snap.Completions),
		Streak:      profile.CurrentStreak,
		PerfectDays: stats.PerfectDayCount(snap.Habits, snap.Completions),
		Level:       stats.Level(profile.TotalXP),
	}
	for _, a := range achievement.NewlyUnlocked(totals, unlocks) {
		if err := db.RecordUnlock(a.ID, now); err != nil {
			return err
		}
		fmt.Printf("%s Achievement unlocked: %s — %s\n",
			a.Icon, output.StyleBold.Render(a.Name), a.Description)
	}

	progress := stats.TodayProgress(snap.Habits, snap.Completions, now)
	fmt.Printf("Today: %s (%d/%d)\n",
		output.ScoreBar(progress.Percentage, 20), progress.Completed, progress.Total)
	return nil
}
