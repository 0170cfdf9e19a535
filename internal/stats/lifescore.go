package stats

import (
	"math"
	"time"

	"github.com/scout6645/habitflow/internal/habit"
)

// LifeScore is the weighted composite of the four 30-day sub-scores plus a
// qualitative label and the month-over-month trend.
type LifeScore struct {
	Overall              int    `json:"overall"`
	Completion           int    `json:"completion"`
	Consistency          int    `json:"consistency"`
	StreakStrength       int    `json:"streak_strength"`
	PerfectDays          int    `json:"perfect_days"`
	PerfectDaysCount     int    `json:"perfect_days_count"`
	PerfectDaysThisMonth int    `json:"perfect_days_this_month"`
	Trend                int    `json:"trend"`
	Level                string `json:"level"`
	LevelIcon            string `json:"level_icon"`
}

// scoreLevel maps an overall score floor to a qualitative label.
type scoreLevel struct {
	min   int
	label string
	icon  string
}

var scoreLevels = []scoreLevel{
	{0, "Beginner", "🌱"},
	{30, "Disciplined", "⚡"},
	{50, "Warrior", "🔥"},
	{75, "Elite", "💎"},
	{90, "Legend", "👑"},
}

const scoreWindow = 30

// ComputeLifeScore folds the trailing 30 days of completions into a single
// composite score. The trend compares against the 30 days before that.
func ComputeLifeScore(habits []habit.Habit, completions []habit.Completion, today time.Time) LifeScore {
	if len(habits) == 0 {
		return LifeScore{Level: "Beginner", LevelIcon: "🌱"}
	}

	current := windowKeys(today, 0, scoreWindow)
	previous := windowKeys(today, scoreWindow, scoreWindow)
	perDay := habit.CompletionsByDate(completions)

	totalPossible := len(habits) * scoreWindow

	// Completion rate over the current window.
	completedCurrent := 0
	daysActive := 0
	for _, key := range current {
		n := perDay[key]
		completedCurrent += n
		if n > 0 {
			daysActive++
		}
	}
	completion := clampScore(roundPct(completedCurrent, totalPossible))
	consistency := clampScore(roundPct(daysActive, scoreWindow))

	// Streak strength relative to a full 30-day run.
	streak := OverallStreak(habits, completions, today)
	streakStrength := clampScore(roundPct(streak, scoreWindow))

	// Perfect days within the window, with a this-calendar-month sub-count.
	thisMonth := today.Format("2006-01")
	perfectCount := 0
	perfectThisMonth := 0
	for _, key := range current {
		if perDay[key] >= len(habits) {
			perfectCount++
			if len(key) >= 7 && key[:7] == thisMonth {
				perfectThisMonth++
			}
		}
	}
	perfectScore := clampScore(roundPct(perfectCount, scoreWindow))

	overall := int(math.Round(
		float64(completion)*0.35 +
			float64(consistency)*0.25 +
			float64(streakStrength)*0.20 +
			float64(perfectScore)*0.20))

	// Trend: completion rate now vs the preceding 30-day window.
	completedPrevious := 0
	for _, key := range previous {
		completedPrevious += perDay[key]
	}
	prevRate := float64(completedPrevious) / float64(totalPossible) * 100
	trend := int(math.Round(float64(completion) - prevRate))

	label, icon := scoreLabel(overall)

	return LifeScore{
		Overall:              overall,
		Completion:           completion,
		Consistency:          consistency,
		StreakStrength:       streakStrength,
		PerfectDays:          perfectScore,
		PerfectDaysCount:     perfectCount,
		PerfectDaysThisMonth: perfectThisMonth,
		Trend:                trend,
		Level:                label,
		LevelIcon:            icon,
	}
}

// PerfectDayCount counts the days, across all history, on which every habit
// has a completion record. Zero habits means zero perfect days.
func PerfectDayCount(habits []habit.Habit, completions []habit.Completion) int {
	if len(habits) == 0 {
		return 0
	}
	count := 0
	for _, n := range habit.CompletionsByDate(completions) {
		if n >= len(habits) {
			count++
		}
	}
	return count
}

// windowKeys returns date keys for the n days ending offset days before
// today (offset 0 includes today).
func windowKeys(today time.Time, offset, n int) []string {
	keys := make([]string, 0, n)
	for i := offset; i < offset+n; i++ {
		keys = append(keys, habit.DateKey(today.AddDate(0, 0, -i)))
	}
	return keys
}

// roundPct returns round(100 * num / den), or 0 when den is zero.
func roundPct(num, den int) int {
	if den == 0 {
		return 0
	}
	return int(math.Round(float64(num) / float64(den) * 100))
}

func clampScore(v int) int {
	if v < 0 {
		return 0
	}
	if v > 100 {
		return 100
	}
	return v
}

func scoreLabel(overall int) (string, string) {
	best := scoreLevels[0]
	for _, l := range scoreLevels {
		if overall >= l.min {
			best = l
		}
	}
	return best.label, best.icon
}
