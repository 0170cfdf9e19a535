package store

import (
	"fmt"

	"github.com/scout6645/habitflow/internal/habit"
	"github.com/scout6645/habitflow/internal/stats"
)

// GetProfile returns the single profile row, creating it on first use.
func (db *DB) GetProfile() (habit.Profile, error) {
	var p habit.Profile
	row := db.conn.QueryRow(
		"SELECT total_xp, current_streak, longest_streak, theme FROM profile WHERE id = 1",
	)
	err := row.Scan(&p.TotalXP, &p.CurrentStreak, &p.LongestStreak, &p.Theme)
	if err != nil {
		if _, err := db.conn.Exec("INSERT OR IGNORE INTO profile (id) VALUES (1)"); err != nil {
			return p, fmt.Errorf("creating profile: %w", err)
		}
		p = habit.Profile{Theme: "dark"}
	}
	p.Level = stats.Level(p.TotalXP)
	return p, nil
}

// SaveProfile writes the profile counters back. The longest streak is a
// high-water mark and never decreases.
func (db *DB) SaveProfile(p habit.Profile) error {
	if p.TotalXP < 0 {
		p.TotalXP = 0
	}
	if p.CurrentStreak > p.LongestStreak {
		p.LongestStreak = p.CurrentStreak
	}
	_, err := db.conn.Exec(
		`INSERT INTO profile (id, total_xp, current_streak, longest_streak, theme)
		 VALUES (1, ?, ?, ?, ?)
		 ON CONFLICT(id) DO UPDATE SET
		   total_xp = excluded.total_xp,
		   current_streak = excluded.current_streak,
		   longest_streak = MAX(profile.longest_streak, excluded.longest_streak),
		   theme = excluded.theme`,
		p.TotalXP, p.CurrentStreak, p.LongestStreak, p.Theme,
	)
	if err != nil {
		return fmt.Errorf("saving profile: %w", err)
	}
	return nil
}
