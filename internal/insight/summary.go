package insight

import (
	"math"
	"time"

	"github.com/scout6645/habitflow/internal/habit"
)

// WeeklySummary is the 7-day completion narrative.
type WeeklySummary struct {
	CompletionRate   int    `json:"completion_rate"`
	TotalCompletions int    `json:"total_completions"`
	Summary          string `json:"summary"`
}

// summaryBand maps a minimum completion rate to a fixed narrative.
type summaryBand struct {
	min     float64
	message string
}

var summaryBands = []summaryBand{
	{90, "Outstanding week! You've maintained exceptional consistency. 🏆"},
	{70, "Great week! You're building solid habits. Keep pushing! 💪"},
	{50, "Good effort this week! Focus on your top 3 habits to build momentum. 📈"},
	{0, "Room for growth! Try reducing your habit list and focusing on consistency. 🎯"},
}

// ComputeWeeklySummary folds the trailing seven days into a completion rate
// and one of four narrative bands. Zero habits yields a zero rate, never a
// division error.
func ComputeWeeklySummary(habits []habit.Habit, completions []habit.Completion, today time.Time) WeeklySummary {
	done := habit.CompletionSet(completions)

	total := 0
	for _, h := range habits {
		for i := 0; i < 7; i++ {
			if done[h.ID][habit.DateKey(today.AddDate(0, 0, -i))] {
				total++
			}
		}
	}

	possible := len(habits) * 7
	rate := 0.0
	if possible > 0 {
		rate = float64(total) / float64(possible) * 100
	}

	summary := summaryBands[len(summaryBands)-1].message
	for _, band := range summaryBands {
		if rate >= band.min {
			summary = band.message
			break
		}
	}

	return WeeklySummary{
		CompletionRate:   int(math.Round(rate)),
		TotalCompletions: total,
		Summary:          summary,
	}
}
