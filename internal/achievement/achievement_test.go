package achievement

import (
	"testing"
	"time"
)

func statusByID(statuses []Status, id string) *Status {
	for i := range statuses {
		if statuses[i].ID == id {
			return &statuses[i]
		}
	}
	return nil
}

func TestEvaluate_FreshTotalsAllLocked(t *testing.T) {
	statuses := Evaluate(Totals{}, nil)
	if len(statuses) != len(Catalog) {
		t.Fatalf("expected %d statuses, got %d", len(Catalog), len(statuses))
	}
	if got := CountUnlocked(statuses); got != 0 {
		t.Errorf("expected 0 unlocked, got %d", got)
	}
}

func TestEvaluate_ThresholdsByType(t *testing.T) {
	totals := Totals{Completions: 50, Streak: 7, PerfectDays: 3, Level: 5}
	statuses := Evaluate(totals, nil)

	unlockedIDs := []string{"first_habit", "streak_3", "streak_7", "perfect_3", "level_5", "completion_50"}
	for _, id := range unlockedIDs {
		if s := statusByID(statuses, id); s == nil || !s.Unlocked {
			t.Errorf("expected %s unlocked", id)
		}
	}
	lockedIDs := []string{"streak_30", "perfect_7", "level_10", "completion_100"}
	for _, id := range lockedIDs {
		if s := statusByID(statuses, id); s == nil || s.Unlocked {
			t.Errorf("expected %s locked", id)
		}
	}
}

func TestEvaluate_LockedProgressPercentage(t *testing.T) {
	statuses := Evaluate(Totals{Streak: 15}, nil)
	s := statusByID(statuses, "streak_30")
	if s == nil || s.Unlocked {
		t.Fatal("expected streak_30 locked")
	}
	if s.Progress != 50 {
		t.Errorf("expected 50%% progress toward streak_30, got %f", s.Progress)
	}
}

func TestEvaluate_RecordedUnlockSticksWhenTotalsDrop(t *testing.T) {
	unlockedAt := map[string]time.Time{
		"streak_7": time.Date(2025, 6, 1, 0, 0, 0, 0, time.UTC),
	}
	// Streak has since fallen back to zero.
	statuses := Evaluate(Totals{}, unlockedAt)

	s := statusByID(statuses, "streak_7")
	if s == nil || !s.Unlocked {
		t.Fatal("expected streak_7 to stay unlocked")
	}
	if s.UnlockedAt == nil || !s.UnlockedAt.Equal(unlockedAt["streak_7"]) {
		t.Errorf("expected recorded unlock time, got %v", s.UnlockedAt)
	}
	if s.Progress != 100 {
		t.Errorf("expected 100%% progress, got %f", s.Progress)
	}
}

func TestNewlyUnlocked_SkipsAlreadyRecorded(t *testing.T) {
	totals := Totals{Streak: 7}
	unlockedAt := map[string]time.Time{"streak_3": time.Now()}

	fresh := NewlyUnlocked(totals, unlockedAt)
	if len(fresh) != 1 {
		t.Fatalf("expected 1 fresh unlock, got %d", len(fresh))
	}
	if fresh[0].ID != "streak_7" {
		t.Errorf("expected streak_7, got %s", fresh[0].ID)
	}
}

func TestNewlyUnlocked_NothingSatisfied(t *testing.T) {
	if fresh := NewlyUnlocked(Totals{}, nil); len(fresh) != 0 {
		t.Errorf("expected no fresh unlocks, got %d", len(fresh))
	}
}
