package store

import (
	"database/sql"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/scout6645/habitflow/internal/habit"
)

// InsertHabit persists a new habit. A missing ID is generated and the sort
// order defaults to the end of the list.
func (db *DB) InsertHabit(h *habit.Habit) error {
	if h.ID == "" {
		h.ID = uuid.NewString()
	}
	if h.CreatedAt.IsZero() {
		h.CreatedAt = time.Now()
	}
	if h.SortOrder == 0 {
		row := db.conn.QueryRow("SELECT COALESCE(MAX(sort_order)+1, 0) FROM habits")
		_ = row.Scan(&h.SortOrder)
	}

	_, err := db.conn.Exec(
		`INSERT INTO habits
		(id, name, description, category, icon, color, frequency, target_days,
		 priority, tracking_type, target_value, unit, sort_order, created_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		h.ID, h.Name, h.Description, string(h.Category), h.Icon, h.Color,
		string(h.Frequency), joinDays(h.TargetDays), string(h.Priority),
		string(h.Tracking), h.TargetValue, h.Unit, h.SortOrder,
		h.CreatedAt.UTC().Format(time.RFC3339),
	)
	if err != nil {
		return fmt.Errorf("inserting habit: %w", err)
	}
	return nil
}

// UpdateHabit rewrites all mutable fields of an existing habit.
func (db *DB) UpdateHabit(h *habit.Habit) error {
	res, err := db.conn.Exec(
		`UPDATE habits SET
		 name = ?, description = ?, category = ?, icon = ?, color = ?,
		 frequency = ?, target_days = ?, priority = ?, tracking_type = ?,
		 target_value = ?, unit = ?, sort_order = ?
		 WHERE id = ?`,
		h.Name, h.Description, string(h.Category), h.Icon, h.Color,
		string(h.Frequency), joinDays(h.TargetDays), string(h.Priority),
		string(h.Tracking), h.TargetValue, h.Unit, h.SortOrder, h.ID,
	)
	if err != nil {
		return fmt.Errorf("updating habit: %w", err)
	}
	n, _ := res.RowsAffected()
	if n == 0 {
		return fmt.Errorf("habit not found: %s", h.ID)
	}
	return nil
}

// DeleteHabit removes a habit; its completions cascade.
func (db *DB) DeleteHabit(id string) error {
	res, err := db.conn.Exec("DELETE FROM habits WHERE id = ?", id)
	if err != nil {
		return fmt.Errorf("deleting habit: %w", err)
	}
	n, _ := res.RowsAffected()
	if n == 0 {
		return fmt.Errorf("habit not found: %s", id)
	}
	return nil
}

// ListHabits returns all habits ordered by sort order, then creation time.
func (db *DB) ListHabits() ([]habit.Habit, error) {
	rows, err := db.conn.Query(
		`SELECT id, name, COALESCE(description, ''), category, COALESCE(icon, ''),
		        COALESCE(color, ''), frequency, COALESCE(target_days, ''),
		        priority, tracking_type, target_value, COALESCE(unit, ''),
		        sort_order, created_at
		 FROM habits ORDER BY sort_order, created_at`,
	)
	if err != nil {
		return nil, fmt.Errorf("listing habits: %w", err)
	}
	defer rows.Close()

	var habits []habit.Habit
	for rows.Next() {
		h, err := scanHabit(rows)
		if err != nil {
			return nil, err
		}
		habits = append(habits, h)
	}
	return habits, rows.Err()
}

// GetHabit returns a habit by exact ID, or by unique name prefix as a
// convenience for CLI use. Returns nil when nothing matches.
func (db *DB) GetHabit(idOrName string) (*habit.Habit, error) {
	habits, err := db.ListHabits()
	if err != nil {
		return nil, err
	}
	for i := range habits {
		if habits[i].ID == idOrName {
			return &habits[i], nil
		}
	}
	var match *habit.Habit
	needle := strings.ToLower(idOrName)
	for i := range habits {
		if strings.HasPrefix(strings.ToLower(habits[i].Name), needle) {
			if match != nil {
				return nil, fmt.Errorf("ambiguous habit %q", idOrName)
			}
			match = &habits[i]
		}
	}
	return match, nil
}

func scanHabit(rows *sql.Rows) (habit.Habit, error) {
	var h habit.Habit
	var category, frequency, targetDays, priority, tracking, createdAt string
	err := rows.Scan(&h.ID, &h.Name, &h.Description, &category, &h.Icon,
		&h.Color, &frequency, &targetDays, &priority, &tracking,
		&h.TargetValue, &h.Unit, &h.SortOrder, &createdAt)
	if err != nil {
		return h, fmt.Errorf("scanning habit: %w", err)
	}
	h.Category = habit.Category(category)
	h.Frequency = habit.Frequency(frequency)
	h.TargetDays = splitDays(targetDays)
	h.Priority = habit.Priority(priority)
	h.Tracking = habit.TrackingType(tracking)
	h.CreatedAt, _ = time.Parse(time.RFC3339, createdAt)
	return h, nil
}

// joinDays encodes target weekdays as a comma-separated string.
func joinDays(days []int) string {
	if len(days) == 0 {
		return ""
	}
	parts := make([]string, len(days))
	for i, d := range days {
		parts[i] = strconv.Itoa(d)
	}
	return strings.Join(parts, ",")
}

func splitDays(s string) []int {
	if s == "" {
		return nil
	}
	var days []int
	for _, part := range strings.Split(s, ",") {
		d, err := strconv.Atoi(strings.TrimSpace(part))
		if err == nil {
			days = append(days, d)
		}
	}
	return days
}
