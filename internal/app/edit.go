package app

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/scout6645/habitflow/internal/habit"
)

var (
	editName        string
	editDescription string
	editCategory    string
	editIcon        string
	editColor       string
	editFrequency   string
	editDays        string
	editPriority    string
	editTracking    string
	editTarget      float64
	editUnit        string
	editOrder       int
)

var editCmd = &cobra.Command{
	Use:   "edit <habit>",
	Short: "Edit an existing habit",
	Long:  `Edit an existing habit by id or unique name prefix. Only flags you pass change.`,
	Args:  cobra.ExactArgs(1),
	RunE:  runEdit,
}

func init() {
	editCmd.Flags().StringVar(&editName, "name", "", "New display name")
	editCmd.Flags().StringVar(&editDescription, "desc", "", "New description")
	editCmd.Flags().StringVar(&editCategory, "category", "", "New category")
	editCmd.Flags().StringVar(&editIcon, "icon", "", "New icon glyph")
	editCmd.Flags().StringVar(&editColor, "color", "", "New color token")
	editCmd.Flags().StringVar(&editFrequency, "freq", "", "New frequency")
	editCmd.Flags().StringVar(&editDays, "days", "", "New target weekdays (comma-separated 0-6)")
	editCmd.Flags().StringVar(&editPriority, "priority", "", "New priority")
	editCmd.Flags().StringVar(&editTracking, "track", "", "New tracking type")
	editCmd.Flags().Float64Var(&editTarget, "target", -1, "New numeric target")
	editCmd.Flags().StringVar(&editUnit, "unit", "", "New unit label")
	editCmd.Flags().IntVar(&editOrder, "order", -1, "New sort order")
	rootCmd.AddCommand(editCmd)
}

func runEdit(cmd *cobra.Command, args []string) error {
	_, db, err := setup()
	if err != nil {
		return err
	}
	defer db.Close()

	h, err := db.GetHabit(args[0])
	if err != nil {
		return err
	}
	if h == nil {
		return fmt.Errorf("habit not found: %s", args[0])
	}

	if editName != "" {
		h.Name = editName
	}
	if cmd.Flags().Changed("desc") {
		h.Description = editDescription
	}
	if editCategory != "" {
		category, err := habit.ParseCategory(editCategory)
		if err != nil {
			return err
		}
		h.Category = category
	}
	if editIcon != "" {
		h.Icon = editIcon
	}
	if editColor != "" {
		h.Color = editColor
	}
	if editFrequency != "" {
		frequency, err := habit.ParseFrequency(editFrequency)
		if err != nil {
			return err
		}
		h.Frequency = frequency
	}
	if cmd.Flags().Changed("days") {
		days, err := parseDays(editDays)
		if err != nil {
			return err
		}
		h.TargetDays = days
	}
	if editPriority != "" {
		priority, err := habit.ParsePriority(editPriority)
		if err != nil {
			return err
		}
		h.Priority = priority
	}
	if editTracking != "" {
		tracking, err := habit.ParseTrackingType(editTracking)
		if err != nil {
			return err
		}
		h.Tracking = tracking
	}
	if editTarget >= 0 {
		h.TargetValue = editTarget
	}
	if cmd.Flags().Changed("unit") {
		h.Unit = editUnit
	}
	if editOrder >= 0 {
		h.SortOrder = editOrder
	}

	if err := db.UpdateHabit(h); err != nil {
		return err
	}
	fmt.Printf("Habit %q updated.\n", h.Name)
	return nil
}
