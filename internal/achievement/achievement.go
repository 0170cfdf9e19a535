// Package achievement defines the static badge catalog and derives each
// badge's unlocked state from current progression totals.
package achievement

import "time"

// Requirement types.
const (
	TypeStreak     = "streak"
	TypeCompletion = "completion"
	TypePerfectDay = "perfect_day"
	TypeLevel      = "level"
)

// Achievement is one static catalog entry.
type Achievement struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	Description string `json:"description"`
	Icon        string `json:"icon"`
	Requirement int    `json:"requirement"`
	Type        string `json:"type"`
}

// Catalog is the full badge list in display order.
var Catalog = []Achievement{
	{ID: "first_habit", Name: "First Step", Description: "Complete your first habit", Icon: "🌱", Requirement: 1, Type: TypeCompletion},
	{ID: "streak_3", Name: "On Fire", Description: "Maintain a 3-day streak", Icon: "🔥", Requirement: 3, Type: TypeStreak},
	{ID: "streak_7", Name: "Week Warrior", Description: "Maintain a 7-day streak", Icon: "⚔️", Requirement: 7, Type: TypeStreak},
	{ID: "streak_30", Name: "Monthly Master", Description: "Maintain a 30-day streak", Icon: "👑", Requirement: 30, Type: TypeStreak},
	{ID: "perfect_3", Name: "Triple Threat", Description: "3 perfect days", Icon: "⭐", Requirement: 3, Type: TypePerfectDay},
	{ID: "perfect_7", Name: "Perfect Week", Description: "7 perfect days", Icon: "🌟", Requirement: 7, Type: TypePerfectDay},
	{ID: "level_5", Name: "Rising Star", Description: "Reach level 5", Icon: "🚀", Requirement: 5, Type: TypeLevel},
	{ID: "level_10", Name: "Habit Hero", Description: "Reach level 10", Icon: "🦸", Requirement: 10, Type: TypeLevel},
	{ID: "completion_50", Name: "Fifty Strong", Description: "Complete 50 habits", Icon: "💯", Requirement: 50, Type: TypeCompletion},
	{ID: "completion_100", Name: "Centurion", Description: "Complete 100 habits", Icon: "🏆", Requirement: 100, Type: TypeCompletion},
}

// Totals are the progression counters achievements are judged against.
type Totals struct {
	Completions int
	Streak      int
	PerfectDays int
	Level       int
}

// Status is a catalog entry plus its derived unlock state. Unlocks are
// append-only: once an unlock timestamp has been recorded it is reported
// even if the live totals later drop below the requirement.
type Status struct {
	Achievement
	Unlocked   bool       `json:"unlocked"`
	UnlockedAt *time.Time `json:"unlocked_at,omitempty"`
	Progress   float64    `json:"progress"` // 0-100, for locked entries
}

// Evaluate derives unlock status and progress for every catalog entry.
// unlockedAt carries previously recorded unlock times keyed by achievement id.
func Evaluate(totals Totals, unlockedAt map[string]time.Time) []Status {
	statuses := make([]Status, 0, len(Catalog))
	for _, a := range Catalog {
		current := totals.value(a.Type)

		s := Status{Achievement: a}
		if at, ok := unlockedAt[a.ID]; ok {
			s.Unlocked = true
			t := at
			s.UnlockedAt = &t
			s.Progress = 100
		} else if current >= a.Requirement {
			s.Unlocked = true
			s.Progress = 100
		} else {
			s.Progress = float64(current) / float64(a.Requirement) * 100
			if s.Progress < 0 {
				s.Progress = 0
			}
		}
		statuses = append(statuses, s)
	}
	return statuses
}

// NewlyUnlocked returns the catalog entries satisfied by totals that have no
// recorded unlock time yet. Callers persist these to make the unlock stick.
func NewlyUnlocked(totals Totals, unlockedAt map[string]time.Time) []Achievement {
	var fresh []Achievement
	for _, a := range Catalog {
		if _, ok := unlockedAt[a.ID]; ok {
			continue
		}
		if totals.value(a.Type) >= a.Requirement {
			fresh = append(fresh, a)
		}
	}
	return fresh
}

// CountUnlocked returns how many statuses are unlocked.
func CountUnlocked(statuses []Status) int {
	n := 0
	for _, s := range statuses {
		if s.Unlocked {
			n++
		}
	}
	return n
}

func (t Totals) value(requirementType string) int {
	switch requirementType {
	case TypeStreak:
		return t.Streak
	case TypeCompletion:
		return t.Completions
	case TypePerfectDay:
		return t.PerfectDays
	case TypeLevel:
		return t.Level
	default:
		return 0
	}
}
