package store

import (
	"database/sql"
	"fmt"

	"github.com/scout6645/habitflow/internal/habit"
)

// ToggleCompletion flips the completion state for (habit, date) and reports
// the new state: true when a record was created, false when one was removed.
// The UNIQUE(habit_id, completed_date) constraint keeps at most one record
// per pair.
func (db *DB) ToggleCompletion(habitID, date, note string, value float64) (bool, error) {
	var exists int
	row := db.conn.QueryRow(
		"SELECT 1 FROM completions WHERE habit_id = ? AND completed_date = ?",
		habitID, date,
	)
	err := row.Scan(&exists)
	switch {
	case err == sql.ErrNoRows:
		_, err := db.conn.Exec(
			"INSERT INTO completions (habit_id, completed_date, note, value) VALUES (?, ?, ?, ?)",
			habitID, date, note, value,
		)
		if err != nil {
			return false, fmt.Errorf("recording completion: %w", err)
		}
		return true, nil
	case err != nil:
		return false, fmt.Errorf("checking completion: %w", err)
	default:
		_, err := db.conn.Exec(
			"DELETE FROM completions WHERE habit_id = ? AND completed_date = ?",
			habitID, date,
		)
		if err != nil {
			return false, fmt.Errorf("removing completion: %w", err)
		}
		return false, nil
	}
}

// SetCompletionNote updates the note on an existing completion record.
func (db *DB) SetCompletionNote(habitID, date, note string) error {
	res, err := db.conn.Exec(
		"UPDATE completions SET note = ? WHERE habit_id = ? AND completed_date = ?",
		note, habitID, date,
	)
	if err != nil {
		return fmt.Errorf("updating note: %w", err)
	}
	n, _ := res.RowsAffected()
	if n == 0 {
		return fmt.Errorf("no completion for habit %s on %s", habitID, date)
	}
	return nil
}

// ListCompletions returns every completion record.
func (db *DB) ListCompletions() ([]habit.Completion, error) {
	rows, err := db.conn.Query(
		`SELECT habit_id, completed_date, COALESCE(note, ''), value
		 FROM completions ORDER BY completed_date`,
	)
	if err != nil {
		return nil, fmt.Errorf("listing completions: %w", err)
	}
	defer rows.Close()

	var completions []habit.Completion
	for rows.Next() {
		var c habit.Completion
		if err := rows.Scan(&c.HabitID, &c.Date, &c.Note, &c.Value); err != nil {
			return nil, fmt.Errorf("scanning completion: %w", err)
		}
		completions = append(completions, c)
	}
	return completions, rows.Err()
}

// CountCompletions returns the total number of completion records.
func (db *DB) CountCompletions() (int, error) {
	var n int
	row := db.conn.QueryRow("SELECT COUNT(*) FROM completions")
	if err := row.Scan(&n); err != nil {
		return 0, fmt.Errorf("counting completions: %w", err)
	}
	return n, nil
}
