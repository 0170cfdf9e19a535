package store

import (
	"context"

	"golang.org/x/sync/errgroup"

	"github.com/scout6645/habitflow/internal/habit"
)

// LoadSnapshot fetches habits, completions, and the profile concurrently and
// returns the immutable snapshot the derivation functions consume.
func (db *DB) LoadSnapshot(ctx context.Context) (*habit.Snapshot, error) {
	var snap habit.Snapshot

	g, _ := errgroup.WithContext(ctx)
	g.Go(func() error {
		habits, err := db.ListHabits()
		if err != nil {
			return err
		}
		snap.Habits = habits
		return nil
	})
	g.Go(func() error {
		completions, err := db.ListCompletions()
		if err != nil {
			return err
		}
		snap.Completions = completions
		return nil
	})
	g.Go(func() error {
		profile, err := db.GetProfile()
		if err != nil {
			return err
		}
		snap.Profile = profile
		return nil
	})

	if err := g.Wait(); err != nil {
		return nil, err
	}
	return &snap, nil
}
