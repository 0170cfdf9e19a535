// Package insight generates short rule-based messages from the current
// habit snapshot: celebrations, nudges, warnings, and a weekly narrative.
package insight

import (
	"math/rand"
	"time"

	"github.com/scout6645/habitflow/internal/habit"
)

// Insight types.
const (
	TypeMotivation  = "motivation"
	TypeSuggestion  = "suggestion"
	TypeWarning     = "warning"
	TypeCelebration = "celebration"
)

// Insight is a single generated message. Insights are ephemeral: they are
// rebuilt on every evaluation and never persisted.
type Insight struct {
	ID        string    `json:"id"`
	Type      string    `json:"type"`
	Message   string    `json:"message"`
	CreatedAt time.Time `json:"created_at"`
}

// Context provides everything the rules need to evaluate. The random source
// is injected so tests can pin pool draws while tier selection stays
// deterministic either way.
type Context struct {
	Habits      []habit.Habit
	Completions []habit.Completion

	// Now is the evaluation time; its calendar day drives today's
	// completion rate and its hour drives the evening warning rule.
	Now time.Time

	// Progression counters from the profile.
	Streak  int
	Level   int
	TotalXP int

	// EveningHour overrides the default warning-rule threshold; zero keeps
	// the default.
	EveningHour int

	Rand *rand.Rand
}

func (c *Context) eveningHour() int {
	if c.EveningHour > 0 {
		return c.EveningHour
	}
	return defaultEveningHour
}

// pick draws a uniform-random member of a message pool.
func (c *Context) pick(pool []string) string {
	return pool[c.Rand.Intn(len(pool))]
}

// Rule examines the context and produces zero or more insights.
type Rule func(ctx *Context) []Insight
