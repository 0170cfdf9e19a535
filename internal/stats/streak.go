// Package stats derives progress metrics from an immutable snapshot of
// habits and completions. Every function here is pure: no I/O, no mutation
// of inputs, safe to recompute on every snapshot change.
package stats

import (
	"time"

	"github.com/scout6645/habitflow/internal/habit"
)

// Streak returns the current consecutive-day run for a single habit, walking
// backward from today. If today has no completion the walk starts at
// yesterday, so an unfinished today never breaks an otherwise live streak.
func Streak(dates map[string]bool, today time.Time) int {
	cursor := today
	if !dates[habit.DateKey(cursor)] {
		cursor = cursor.AddDate(0, 0, -1)
	}

	streak := 0
	for dates[habit.DateKey(cursor)] {
		streak++
		cursor = cursor.AddDate(0, 0, -1)
	}
	return streak
}

// HabitStreak is Streak applied to one habit's completions out of the full
// completion list.
func HabitStreak(h habit.Habit, completions []habit.Completion, today time.Time) int {
	dates := make(map[string]bool)
	for _, c := range completions {
		if c.HabitID == h.ID {
			dates[c.Date] = true
		}
	}
	return Streak(dates, today)
}

// OverallStreak counts consecutive days on which every habit was completed.
// Today is special: if it is not (yet) fully complete the walk skips over it
// once instead of treating it as a break, so a streak "in progress" keeps
// yesterday's run intact.
func OverallStreak(habits []habit.Habit, completions []habit.Completion, today time.Time) int {
	if len(habits) == 0 {
		return 0
	}

	perDay := habit.CompletionsByDate(completions)
	todayKey := habit.DateKey(today)

	streak := 0
	cursor := today
	for {
		key := habit.DateKey(cursor)
		if perDay[key] == len(habits) {
			streak++
			cursor = cursor.AddDate(0, 0, -1)
		} else if key == todayKey {
			cursor = cursor.AddDate(0, 0, -1)
		} else {
			break
		}
	}
	return streak
}
