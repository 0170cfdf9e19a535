package stats

import (
	"time"

	"github.com/scout6645/habitflow/internal/habit"
)

// DayProgress summarizes completion for a single calendar day.
type DayProgress struct {
	Completed  int     `json:"completed"`
	Total      int     `json:"total"`
	Percentage float64 `json:"percentage"`
}

// DailyStat is one entry of the 7-day series.
type DailyStat struct {
	Date      string `json:"date"`
	Completed int    `json:"completed"`
	Total     int    `json:"total"`
	XPEarned  int    `json:"xp_earned"`
}

// TodayProgress counts habits due today against those completed today.
// With no applicable habits the percentage is 0, never NaN.
func TodayProgress(habits []habit.Habit, completions []habit.Completion, today time.Time) DayProgress {
	todayKey := habit.DateKey(today)
	done := habit.CompletionSet(completions)

	var p DayProgress
	for _, h := range habits {
		if !h.DueOn(today) {
			continue
		}
		p.Total++
		if done[h.ID][todayKey] {
			p.Completed++
		}
	}
	if p.Total > 0 {
		p.Percentage = float64(p.Completed) / float64(p.Total) * 100
	}
	return p
}

// WeeklySeries returns the last seven days of completion counts, oldest
// first, ending with today.
func WeeklySeries(habits []habit.Habit, completions []habit.Completion, today time.Time) []DailyStat {
	perDay := habit.CompletionsByDate(completions)

	series := make([]DailyStat, 0, 7)
	for i := 6; i >= 0; i-- {
		key := habit.DateKey(today.AddDate(0, 0, -i))
		completed := perDay[key]
		series = append(series, DailyStat{
			Date:      key,
			Completed: completed,
			Total:     len(habits),
			XPEarned:  completed * XPPerCompletion,
		})
	}
	return series
}

// Heatmap returns per-day completion counts across all habits. Days with no
// completions are absent from the map; consumers treat missing as zero.
func Heatmap(completions []habit.Completion) map[string]int {
	return habit.CompletionsByDate(completions)
}
