package insight

import (
	"strings"
	"testing"

	"github.com/scout6645/habitflow/internal/habit"
)

func weekCompletions(habits []habit.Habit, daysPerHabit int) []habit.Completion {
	var completions []habit.Completion
	for _, h := range habits {
		for i := 0; i < daysPerHabit; i++ {
			completions = append(completions, habit.Completion{
				HabitID: h.ID, Date: habit.DateKey(noon.AddDate(0, 0, -i)),
			})
		}
	}
	return completions
}

func TestComputeWeeklySummary_NoHabits(t *testing.T) {
	summary := ComputeWeeklySummary(nil, nil, noon)
	if summary.CompletionRate != 0 || summary.TotalCompletions != 0 {
		t.Errorf("expected zero summary, got %+v", summary)
	}
	if summary.Summary == "" {
		t.Error("expected a narrative even with no habits")
	}
}

func TestComputeWeeklySummary_Bands(t *testing.T) {
	habits := dailyHabits("a", "b")

	tests := []struct {
		daysPerHabit int
		wantRate     int
		wantPhrase   string
	}{
		{7, 100, "Outstanding week"},
		{5, 71, "Great week"},
		{4, 57, "Good effort"},
		{2, 29, "Room for growth"},
	}
	for _, tt := range tests {
		completions := weekCompletions(habits, tt.daysPerHabit)
		summary := ComputeWeeklySummary(habits, completions, noon)
		if summary.CompletionRate != tt.wantRate {
			t.Errorf("daysPerHabit=%d: rate %d, want %d", tt.daysPerHabit, summary.CompletionRate, tt.wantRate)
		}
		if !strings.Contains(summary.Summary, tt.wantPhrase) {
			t.Errorf("daysPerHabit=%d: summary %q, want phrase %q", tt.daysPerHabit, summary.Summary, tt.wantPhrase)
		}
	}
}

func TestComputeWeeklySummary_CountsOnlyTrailingWeek(t *testing.T) {
	habits := dailyHabits("a")
	completions := []habit.Completion{
		{HabitID: "a", Date: habit.DateKey(noon)},
		{HabitID: "a", Date: habit.DateKey(noon.AddDate(0, 0, -6))},
		// Outside the window.
		{HabitID: "a", Date: habit.DateKey(noon.AddDate(0, 0, -7))},
	}
	summary := ComputeWeeklySummary(habits, completions, noon)
	if summary.TotalCompletions != 2 {
		t.Errorf("expected 2 completions in window, got %d", summary.TotalCompletions)
	}
	if summary.CompletionRate != 29 { // round(2/7*100)
		t.Errorf("expected rate 29, got %d", summary.CompletionRate)
	}
}
