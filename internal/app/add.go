package app

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/scout6645/habitflow/internal/habit"
)

var (
	addDescription string
	addCategory    string
	addIcon        string
	addColor       string
	addFrequency   string
	addDays        string
	addPriority    string
	addTracking    string
	addTarget      float64
	addUnit        string
)

var addCmd = &cobra.Command{
	Use:   "add <name>",
	Short: "Create a new habit",
	Long: `Create a new habit. Frequency controls which days count toward progress:
daily (every day), weekdays, weekends, or weekly with --days (0-6, Sun-Sat).`,
	Args: cobra.ExactArgs(1),
	RunE: runAdd,
}

func init() {
	addCmd.Flags().StringVar(&addDescription, "desc", "", "Optional description")
	addCmd.Flags().StringVar(&addCategory, "category", "productivity", "Category (health, fitness, mindfulness, productivity, learning, social, creativity, finance)")
	addCmd.Flags().StringVar(&addIcon, "icon", "", "Icon glyph (defaults to the category icon)")
	addCmd.Flags().StringVar(&addColor, "color", "", "Color token (defaults to the category color)")
	addCmd.Flags().StringVar(&addFrequency, "freq", "daily", "Frequency (daily, weekly, weekdays, weekends)")
	addCmd.Flags().StringVar(&addDays, "days", "", "Target weekdays for weekly habits, comma-separated 0-6 (Sun-Sat)")
	addCmd.Flags().StringVar(&addPriority, "priority", "medium", "Priority (low, medium, high)")
	addCmd.Flags().StringVar(&addTracking, "track", "checkbox", "Tracking type (checkbox, number, time_duration, fixed_time, custom_unit)")
	addCmd.Flags().Float64Var(&addTarget, "target", 0, "Numeric target for value-tracked habits")
	addCmd.Flags().StringVar(&addUnit, "unit", "", "Unit label for value-tracked habits")
	rootCmd.AddCommand(addCmd)
}

func runAdd(cmd *cobra.Command, args []string) error {
	_, db, err := setup()
	if err != nil {
		return err
	}
	defer db.Close()

	category, err := habit.ParseCategory(addCategory)
	if err != nil {
		return err
	}
	frequency, err := habit.ParseFrequency(addFrequency)
	if err != nil {
		return err
	}
	priority, err := habit.ParsePriority(addPriority)
	if err != nil {
		return err
	}
	tracking, err := habit.ParseTrackingType(addTracking)
	if err != nil {
		return err
	}
	targetDays, err := parseDays(addDays)
	if err != nil {
		return err
	}

	h := habit.Habit{
		Name:        args[0],
		Description: addDescription,
		Category:    category,
		Icon:        addIcon,
		Color:       addColor,
		Frequency:   frequency,
		TargetDays:  targetDays,
		Priority:    priority,
		Tracking:    tracking,
		TargetValue: addTarget,
		Unit:        addUnit,
	}
	if h.Icon == "" {
		h.Icon = category.Info().Icon
	}
	if h.Color == "" {
		h.Color = category.Info().Color
	}

	if err := db.InsertHabit(&h); err != nil {
		return err
	}

	fmt.Printf("%s Habit %q created. Track it with: habitflow done %q\n",
		h.Icon, h.Name, h.Name)
	return nil
}

// parseDays parses a comma-separated weekday list (0-6, Sun-Sat).
func parseDays(s string) ([]int, error) {
	if strings.TrimSpace(s) == "" {
		return nil, nil
	}
	var days []int
	for _, part := range strings.Split(s, ",") {
		d, err := strconv.Atoi(strings.TrimSpace(part))
		if err != nil || d < 0 || d > 6 {
			return nil, fmt.Errorf("invalid weekday %q (want 0-6)", part)
		}
		days = append(days, d)
	}
	return days, nil
}
