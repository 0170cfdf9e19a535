package insight

import (
	"math/rand"
	"time"
)

const (
	// maxInsights caps the list; the dashboard shows the top two.
	maxInsights = 3

	// minInsights is the floor below which the fallback quote is appended.
	minInsights = 2
)

// Engine runs the ordered rule list against a Context and collects the
// resulting insights.
type Engine struct {
	rules []Rule
}

// NewEngine creates an engine with all built-in rules registered in
// evaluation order.
func NewEngine() *Engine {
	return &Engine{
		rules: []Rule{
			TodayCompletion,
			StreakTier,
			StrugglingHabit,
			LevelStatus,
		},
	}
}

// Evaluate runs the rules in order and returns at most three insights.
// An empty habit list short-circuits to a single welcome suggestion; once
// habits exist a fallback quote guarantees at least one message.
func (e *Engine) Evaluate(ctx *Context) []Insight {
	if ctx.Rand == nil {
		ctx.Rand = rand.New(rand.NewSource(time.Now().UnixNano()))
	}

	if len(ctx.Habits) == 0 {
		return []Insight{newInsight("welcome", TypeSuggestion, welcomeMessage, ctx)}
	}

	var all []Insight
	for _, rule := range e.rules {
		all = append(all, rule(ctx)...)
	}

	if len(all) < minInsights {
		all = append(all, newInsight("quote", TypeMotivation, ctx.pick(motivationalQuotes), ctx))
	}

	if len(all) > maxInsights {
		all = all[:maxInsights]
	}
	return all
}
