package app

import (
	"encoding/json"
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/scout6645/habitflow/internal/habit"
	"github.com/scout6645/habitflow/internal/output"
	"github.com/scout6645/habitflow/internal/stats"
)

var listCategory string

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List habits with today's status and streaks",
	RunE:  runList,
}

func init() {
	listCmd.Flags().StringVar(&listCategory, "category", "", "Filter by category")
	rootCmd.AddCommand(listCmd)
}

func runList(cmd *cobra.Command, args []string) error {
	_, db, err := setup()
	if err != nil {
		return err
	}
	defer db.Close()

	snap, err := db.LoadSnapshot(cmd.Context())
	if err != nil {
		return fmt.Errorf("loading snapshot: %w", err)
	}

	habits := snap.Habits
	if listCategory != "" {
		category, err := habit.ParseCategory(listCategory)
		if err != nil {
			return err
		}
		var filtered []habit.Habit
		for _, h := range habits {
			if h.Category == category {
				filtered = append(filtered, h)
			}
		}
		habits = filtered
	}

	if flagJSON {
		return json.NewEncoder(os.Stdout).Encode(habits)
	}

	if len(habits) == 0 {
		fmt.Println("No habits yet. Create one with: habitflow add <name>")
		return nil
	}

	now := time.Now()
	todayKey := habit.DateKey(now)
	done := habit.CompletionSet(snap.Completions)

	table := output.NewTable("", "HABIT", "CATEGORY", "FREQ", "STREAK", "TODAY")
	for _, h := range habits {
		status := " "
		if done[h.ID][todayKey] {
			status = "✓"
		} else if !h.DueOn(now) {
			status = "-"
		}
		streak := stats.HabitStreak(h, snap.Completions, now)
		table.AddRow(
			h.Icon,
			h.Name,
			h.Category.Info().Label,
			string(h.Frequency),
			fmt.Sprintf("%d", streak),
			status,
		)
	}
	fmt.Print(table.Render())
	return nil
}
