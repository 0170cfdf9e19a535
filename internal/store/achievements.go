package store

import (
	"fmt"
	"time"
)

// RecordUnlock persists an achievement unlock. Unlocks are append-only: a
// second call for the same id keeps the original timestamp.
func (db *DB) RecordUnlock(achievementID string, at time.Time) error {
	_, err := db.conn.Exec(
		"INSERT OR IGNORE INTO achievement_unlocks (achievement_id, unlocked_at) VALUES (?, ?)",
		achievementID, at.UTC().Format(time.RFC3339),
	)
	if err != nil {
		return fmt.Errorf("recording unlock: %w", err)
	}
	return nil
}

// ListUnlocks returns recorded unlock times keyed by achievement id.
func (db *DB) ListUnlocks() (map[string]time.Time, error) {
	rows, err := db.conn.Query("SELECT achievement_id, unlocked_at FROM achievement_unlocks")
	if err != nil {
		return nil, fmt.Errorf("listing unlocks: %w", err)
	}
	defer rows.Close()

	unlocks := make(map[string]time.Time)
	for rows.Next() {
		var id, at string
		if err := rows.Scan(&id, &at); err != nil {
			return nil, fmt.Errorf("scanning unlock: %w", err)
		}
		t, err := time.Parse(time.RFC3339, at)
		if err != nil {
			continue
		}
		unlocks[id] = t
	}
	return unlocks, rows.Err()
}
