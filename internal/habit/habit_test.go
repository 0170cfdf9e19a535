package habit

import (
	"testing"
	"time"
)

func TestDueOn(t *testing.T) {
	sunday := time.Date(2025, 6, 15, 0, 0, 0, 0, time.UTC)
	monday := sunday.AddDate(0, 0, 1)
	saturday := sunday.AddDate(0, 0, 6)

	tests := []struct {
		name  string
		habit Habit
		day   time.Time
		want  bool
	}{
		{"daily on sunday", Habit{Frequency: FrequencyDaily}, sunday, true},
		{"weekdays on monday", Habit{Frequency: FrequencyWeekdays}, monday, true},
		{"weekdays on sunday", Habit{Frequency: FrequencyWeekdays}, sunday, false},
		{"weekends on saturday", Habit{Frequency: FrequencyWeekends}, saturday, true},
		{"weekends on monday", Habit{Frequency: FrequencyWeekends}, monday, false},
		{"weekly matching day", Habit{Frequency: FrequencyWeekly, TargetDays: []int{1}}, monday, true},
		{"weekly non-matching day", Habit{Frequency: FrequencyWeekly, TargetDays: []int{1}}, sunday, false},
		{"weekly without target days", Habit{Frequency: FrequencyWeekly}, sunday, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.habit.DueOn(tt.day); got != tt.want {
				t.Errorf("DueOn = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestParseFrequency(t *testing.T) {
	f, err := ParseFrequency("  Daily ")
	if err != nil || f != FrequencyDaily {
		t.Errorf("expected daily, got %q (%v)", f, err)
	}
	if _, err := ParseFrequency("fortnightly"); err == nil {
		t.Error("expected error for unknown frequency")
	}
}

func TestCategoryInfo_FallbackForUnknown(t *testing.T) {
	info := Category("astrology").Info()
	if info != (CategoryProductivity).Info() {
		t.Errorf("expected fallback to productivity metadata, got %+v", info)
	}
	if info.Label == "" || info.Icon == "" {
		t.Error("fallback metadata must be populated")
	}
}

func TestDateKeyRoundTrip(t *testing.T) {
	day := time.Date(2025, 6, 15, 23, 59, 0, 0, time.Local)
	key := DateKey(day)
	if key != "2025-06-15" {
		t.Errorf("unexpected key %q", key)
	}
	parsed, err := ParseDateKey(key)
	if err != nil {
		t.Fatal(err)
	}
	if DateKey(parsed) != key {
		t.Errorf("round trip changed key: %q", DateKey(parsed))
	}
}

func TestCompletionSetAndCounts(t *testing.T) {
	completions := []Completion{
		{HabitID: "a", Date: "2025-06-15"},
		{HabitID: "b", Date: "2025-06-15"},
		{HabitID: "a", Date: "2025-06-14"},
	}

	set := CompletionSet(completions)
	if !set["a"]["2025-06-15"] || !set["a"]["2025-06-14"] || !set["b"]["2025-06-15"] {
		t.Error("missing expected memberships")
	}
	if set["b"]["2025-06-14"] {
		t.Error("unexpected membership")
	}

	counts := CompletionsByDate(completions)
	if counts["2025-06-15"] != 2 || counts["2025-06-14"] != 1 {
		t.Errorf("unexpected counts: %v", counts)
	}
}
