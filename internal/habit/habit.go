// Package habit defines the core domain types shared by the stats engine,
// the insight engine, and the store.
package habit

import (
	"fmt"
	"strings"
	"time"
)

// DateLayout is the calendar-day key format used everywhere a completion
// date is stored or compared.
const DateLayout = "2006-01-02"

// DateKey returns the calendar-day key for a point in time.
func DateKey(t time.Time) string {
	return t.Format(DateLayout)
}

// ParseDateKey parses a calendar-day key back into a time at midnight local.
func ParseDateKey(key string) (time.Time, error) {
	return time.ParseInLocation(DateLayout, key, time.Local)
}

// Frequency describes which days a habit is expected on.
type Frequency string

const (
	FrequencyDaily    Frequency = "daily"
	FrequencyWeekly   Frequency = "weekly"
	FrequencyWeekdays Frequency = "weekdays"
	FrequencyWeekends Frequency = "weekends"
)

func (f Frequency) IsValid() bool {
	switch f {
	case FrequencyDaily, FrequencyWeekly, FrequencyWeekdays, FrequencyWeekends:
		return true
	default:
		return false
	}
}

// ParseFrequency parses user input into a Frequency.
func ParseFrequency(input string) (Frequency, error) {
	f := Frequency(strings.TrimSpace(strings.ToLower(input)))
	if !f.IsValid() {
		return "", fmt.Errorf("invalid frequency: %q", input)
	}
	return f, nil
}

// Priority is the user-assigned importance of a habit.
type Priority string

const (
	PriorityLow    Priority = "low"
	PriorityMedium Priority = "medium"
	PriorityHigh   Priority = "high"
)

func (p Priority) IsValid() bool {
	switch p {
	case PriorityLow, PriorityMedium, PriorityHigh:
		return true
	default:
		return false
	}
}

// ParsePriority parses user input into a Priority.
func ParsePriority(input string) (Priority, error) {
	p := Priority(strings.TrimSpace(strings.ToLower(input)))
	if !p.IsValid() {
		return "", fmt.Errorf("invalid priority: %q", input)
	}
	return p, nil
}

// TrackingType describes how a habit's daily value is recorded.
type TrackingType string

const (
	TrackCheckbox   TrackingType = "checkbox"
	TrackNumber     TrackingType = "number"
	TrackDuration   TrackingType = "time_duration"
	TrackFixedTime  TrackingType = "fixed_time"
	TrackCustomUnit TrackingType = "custom_unit"
)

func (t TrackingType) IsValid() bool {
	switch t {
	case TrackCheckbox, TrackNumber, TrackDuration, TrackFixedTime, TrackCustomUnit:
		return true
	default:
		return false
	}
}

// ParseTrackingType parses user input into a TrackingType.
func ParseTrackingType(input string) (TrackingType, error) {
	t := TrackingType(strings.TrimSpace(strings.ToLower(input)))
	if !t.IsValid() {
		return "", fmt.Errorf("invalid tracking type: %q", input)
	}
	return t, nil
}

// Habit is a single tracked habit. Lifecycle (create/edit/delete) is owned by
// the store; the derivation functions only ever read these values.
type Habit struct {
	ID          string       `json:"id"`
	Name        string       `json:"name"`
	Description string       `json:"description,omitempty"`
	Category    Category     `json:"category"`
	Icon        string       `json:"icon"`
	Color       string       `json:"color"`
	Frequency   Frequency    `json:"frequency"`
	TargetDays  []int        `json:"target_days,omitempty"` // 0-6 Sun-Sat, weekly only
	Priority    Priority     `json:"priority"`
	Tracking    TrackingType `json:"tracking_type"`
	TargetValue float64      `json:"target_value,omitempty"`
	Unit        string       `json:"unit,omitempty"`
	SortOrder   int          `json:"sort_order"`
	CreatedAt   time.Time    `json:"created_at"`
}

// DueOn reports whether the habit is expected on the given day.
func (h Habit) DueOn(day time.Time) bool {
	switch h.Frequency {
	case FrequencyDaily:
		return true
	case FrequencyWeekdays:
		wd := day.Weekday()
		return wd != time.Saturday && wd != time.Sunday
	case FrequencyWeekends:
		wd := day.Weekday()
		return wd == time.Saturday || wd == time.Sunday
	case FrequencyWeekly:
		if len(h.TargetDays) == 0 {
			return true
		}
		wd := int(day.Weekday())
		for _, d := range h.TargetDays {
			if d == wd {
				return true
			}
		}
		return false
	default:
		return true
	}
}

// Completion records that a habit was done on a calendar day. At most one
// record exists per (habit, date) pair; absence means "not done".
type Completion struct {
	HabitID string  `json:"habit_id"`
	Date    string  `json:"date"` // yyyy-mm-dd
	Note    string  `json:"note,omitempty"`
	Value   float64 `json:"value,omitempty"`
}

// Profile holds the user's cumulative progression counters.
type Profile struct {
	TotalXP       int    `json:"total_xp"`
	Level         int    `json:"level"`
	CurrentStreak int    `json:"current_streak"`
	LongestStreak int    `json:"longest_streak"`
	Theme         string `json:"theme"`
}

// Snapshot is the immutable input every derivation function operates on.
type Snapshot struct {
	Habits      []Habit      `json:"habits"`
	Completions []Completion `json:"completions"`
	Profile     Profile      `json:"profile"`
}

// CompletionSet indexes completions by (habit, date) for O(1) membership tests.
func CompletionSet(completions []Completion) map[string]map[string]bool {
	byHabit := make(map[string]map[string]bool)
	for _, c := range completions {
		days := byHabit[c.HabitID]
		if days == nil {
			days = make(map[string]bool)
			byHabit[c.HabitID] = days
		}
		days[c.Date] = true
	}
	return byHabit
}

// CompletionsByDate counts completions across all habits per calendar day.
func CompletionsByDate(completions []Completion) map[string]int {
	counts := make(map[string]int)
	for _, c := range completions {
		counts[c.Date]++
	}
	return counts
}
