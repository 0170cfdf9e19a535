package insight

import (
	"fmt"

	"github.com/scout6645/habitflow/internal/habit"
)

// defaultEveningHour is the local hour from which the falling-behind warning
// may fire.
const defaultEveningHour = 18

// strugglingThreshold is the minimum completions in the trailing 7 days for a
// habit to count as healthy.
const strugglingThreshold = 3

// TodayCompletion emits one message tiered on today's completion rate:
// a random celebration at 100%, a count-down motivation at ≥75%, or a random
// warning below 50% once the evening has started.
func TodayCompletion(ctx *Context) []Insight {
	total := len(ctx.Habits)
	if total == 0 {
		return nil
	}

	todayKey := habit.DateKey(ctx.Now)
	done := habit.CompletionSet(ctx.Completions)
	completed := 0
	for _, h := range ctx.Habits {
		if done[h.ID][todayKey] {
			completed++
		}
	}
	rate := float64(completed) / float64(total) * 100

	switch {
	case rate == 100:
		return []Insight{newInsight("perfect_day", TypeCelebration, ctx.pick(celebrationMessages), ctx)}
	case rate >= 75:
		remaining := total - completed
		plural := ""
		if remaining > 1 {
			plural = "s"
		}
		msg := fmt.Sprintf("Almost there! Just %d more habit%s to complete today. You've got this! 💪", remaining, plural)
		return []Insight{newInsight("almost_there", TypeMotivation, msg, ctx)}
	case rate < 50 && ctx.Now.Hour() >= ctx.eveningHour():
		return []Insight{newInsight("evening_reminder", TypeWarning, ctx.pick(warningMessages), ctx)}
	}
	return nil
}

// StreakTier emits one message for the current overall streak: celebration
// from 7 days, motivation from 3. The tiers are mutually exclusive.
func StreakTier(ctx *Context) []Insight {
	switch {
	case ctx.Streak >= 7:
		msg := fmt.Sprintf("🔥 %d-day streak! You're building unstoppable momentum. Keep it going!", ctx.Streak)
		return []Insight{newInsight("streak_praise", TypeCelebration, msg, ctx)}
	case ctx.Streak >= 3:
		msg := fmt.Sprintf("Nice %d-day streak! You're creating a powerful habit loop. 🔄", ctx.Streak)
		return []Insight{newInsight("streak_motivation", TypeMotivation, msg, ctx)}
	}
	return nil
}

// StrugglingHabit names the first habit, in input order, with fewer than
// three completions over the trailing seven days. It stays silent for
// single-habit lists where the today rule already covers the situation.
func StrugglingHabit(ctx *Context) []Insight {
	if len(ctx.Habits) <= 1 {
		return nil
	}

	done := habit.CompletionSet(ctx.Completions)
	for _, h := range ctx.Habits {
		recent := 0
		for i := 0; i < 7; i++ {
			if done[h.ID][habit.DateKey(ctx.Now.AddDate(0, 0, -i))] {
				recent++
			}
		}
		if recent < strugglingThreshold {
			msg := fmt.Sprintf("💡 %q needs attention. Try pairing it with an existing habit or making it smaller to build consistency.", h.Name)
			return []Insight{newInsight("struggling_habit", TypeSuggestion, msg, ctx)}
		}
	}
	return nil
}

// LevelStatus reports the current level and XP once past level one.
func LevelStatus(ctx *Context) []Insight {
	if ctx.Level <= 1 {
		return nil
	}
	msg := fmt.Sprintf("🎮 Level %d achieved with %d XP! You're becoming a habit master.", ctx.Level, ctx.TotalXP)
	return []Insight{newInsight("level_status", TypeMotivation, msg, ctx)}
}

func newInsight(id, typ, message string, ctx *Context) Insight {
	return Insight{ID: id, Type: typ, Message: message, CreatedAt: ctx.Now}
}
