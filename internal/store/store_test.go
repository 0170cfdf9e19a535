package store

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/scout6645/habitflow/internal/habit"
)

func openTestDB(t *testing.T) *DB {
	t.Helper()
	db, err := OpenInMemory()
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })
	return db
}

func TestInsertAndListHabits(t *testing.T) {
	db := openTestDB(t)

	h := habit.Habit{
		Name:      "Read",
		Category:  habit.CategoryLearning,
		Icon:      "📚",
		Frequency: habit.FrequencyDaily,
		Priority:  habit.PriorityMedium,
		Tracking:  habit.TrackCheckbox,
	}
	require.NoError(t, db.InsertHabit(&h))
	assert.NotEmpty(t, h.ID, "insert should assign an id")

	habits, err := db.ListHabits()
	require.NoError(t, err)
	require.Len(t, habits, 1)
	assert.Equal(t, "Read", habits[0].Name)
	assert.Equal(t, habit.CategoryLearning, habits[0].Category)
}

func TestListHabits_SortOrder(t *testing.T) {
	db := openTestDB(t)

	for _, name := range []string{"first", "second", "third"} {
		h := habit.Habit{Name: name, Category: habit.CategoryHealth,
			Frequency: habit.FrequencyDaily, Priority: habit.PriorityLow, Tracking: habit.TrackCheckbox}
		require.NoError(t, db.InsertHabit(&h))
	}

	habits, err := db.ListHabits()
	require.NoError(t, err)
	require.Len(t, habits, 3)
	assert.Equal(t, "first", habits[0].Name)
	assert.Equal(t, "third", habits[2].Name)
	assert.Less(t, habits[0].SortOrder, habits[2].SortOrder)
}

func TestUpdateHabit(t *testing.T) {
	db := openTestDB(t)

	h := habit.Habit{Name: "Run", Category: habit.CategoryFitness,
		Frequency: habit.FrequencyDaily, Priority: habit.PriorityHigh, Tracking: habit.TrackCheckbox}
	require.NoError(t, db.InsertHabit(&h))

	h.Name = "Morning run"
	h.Frequency = habit.FrequencyWeekdays
	require.NoError(t, db.UpdateHabit(&h))

	got, err := db.GetHabit(h.ID)
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.Equal(t, "Morning run", got.Name)
	assert.Equal(t, habit.FrequencyWeekdays, got.Frequency)
}

func TestUpdateHabit_NotFound(t *testing.T) {
	db := openTestDB(t)
	err := db.UpdateHabit(&habit.Habit{ID: "missing", Name: "x"})
	assert.Error(t, err)
}

func TestDeleteHabit_CascadesCompletions(t *testing.T) {
	db := openTestDB(t)

	h := habit.Habit{Name: "Run", Category: habit.CategoryFitness,
		Frequency: habit.FrequencyDaily, Priority: habit.PriorityLow, Tracking: habit.TrackCheckbox}
	require.NoError(t, db.InsertHabit(&h))

	_, err := db.ToggleCompletion(h.ID, "2025-06-15", "", 0)
	require.NoError(t, err)

	require.NoError(t, db.DeleteHabit(h.ID))

	n, err := db.CountCompletions()
	require.NoError(t, err)
	assert.Equal(t, 0, n, "completions should cascade on habit delete")
}

func TestToggleCompletion_OnOffIdempotent(t *testing.T) {
	db := openTestDB(t)

	h := habit.Habit{Name: "Meditate", Category: habit.CategoryMindfulness,
		Frequency: habit.FrequencyDaily, Priority: habit.PriorityLow, Tracking: habit.TrackCheckbox}
	require.NoError(t, db.InsertHabit(&h))

	on, err := db.ToggleCompletion(h.ID, "2025-06-15", "felt good", 0)
	require.NoError(t, err)
	assert.True(t, on)

	completions, err := db.ListCompletions()
	require.NoError(t, err)
	require.Len(t, completions, 1)
	assert.Equal(t, "felt good", completions[0].Note)

	off, err := db.ToggleCompletion(h.ID, "2025-06-15", "", 0)
	require.NoError(t, err)
	assert.False(t, off)

	completions, err = db.ListCompletions()
	require.NoError(t, err)
	assert.Empty(t, completions, "toggle on then off ends with no record")
}

func TestGetHabit_ByNamePrefix(t *testing.T) {
	db := openTestDB(t)

	for _, name := range []string{"Read fiction", "Run"} {
		h := habit.Habit{Name: name, Category: habit.CategoryHealth,
			Frequency: habit.FrequencyDaily, Priority: habit.PriorityLow, Tracking: habit.TrackCheckbox}
		require.NoError(t, db.InsertHabit(&h))
	}

	got, err := db.GetHabit("run")
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.Equal(t, "Run", got.Name)

	// "r" matches both names.
	_, err = db.GetHabit("r")
	assert.Error(t, err)

	got, err = db.GetHabit("does-not-exist")
	require.NoError(t, err)
	assert.Nil(t, got)
}

func TestProfile_GetOrCreateAndHighWaterMark(t *testing.T) {
	db := openTestDB(t)

	p, err := db.GetProfile()
	require.NoError(t, err)
	assert.Equal(t, 0, p.TotalXP)
	assert.Equal(t, 1, p.Level)

	p.TotalXP = 120
	p.CurrentStreak = 5
	require.NoError(t, db.SaveProfile(p))

	p.CurrentStreak = 2
	require.NoError(t, db.SaveProfile(p))

	got, err := db.GetProfile()
	require.NoError(t, err)
	assert.Equal(t, 120, got.TotalXP)
	assert.Equal(t, 2, got.CurrentStreak)
	assert.Equal(t, 5, got.LongestStreak, "longest streak never decreases")
	assert.Equal(t, 2, got.Level)
}

func TestRecordUnlock_AppendOnly(t *testing.T) {
	db := openTestDB(t)

	first := time.Date(2025, 6, 1, 10, 0, 0, 0, time.UTC)
	require.NoError(t, db.RecordUnlock("streak_7", first))
	require.NoError(t, db.RecordUnlock("streak_7", first.AddDate(0, 0, 10)))

	unlocks, err := db.ListUnlocks()
	require.NoError(t, err)
	require.Contains(t, unlocks, "streak_7")
	assert.True(t, unlocks["streak_7"].Equal(first), "second record must not overwrite the first")
}

func TestLoadSnapshot(t *testing.T) {
	db := openTestDB(t)

	h := habit.Habit{Name: "Read", Category: habit.CategoryLearning,
		Frequency: habit.FrequencyDaily, Priority: habit.PriorityLow, Tracking: habit.TrackCheckbox}
	require.NoError(t, db.InsertHabit(&h))
	_, err := db.ToggleCompletion(h.ID, "2025-06-15", "", 0)
	require.NoError(t, err)

	snap, err := db.LoadSnapshot(context.Background())
	require.NoError(t, err)
	assert.Len(t, snap.Habits, 1)
	assert.Len(t, snap.Completions, 1)
	assert.Equal(t, 1, snap.Profile.Level)
}
