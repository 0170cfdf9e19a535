package app

import (
	"fmt"

	"github.com/spf13/cobra"
)

var rmCmd = &cobra.Command{
	Use:   "rm <habit>",
	Short: "Delete a habit and its completion history",
	Args:  cobra.ExactArgs(1),
	RunE:  runRm,
}

func init() {
	rootCmd.AddCommand(rmCmd)
}

func runRm(cmd *cobra.Command, args []string) error {
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

	if err := db.DeleteHabit(h.ID); err != nil {
		return err
	}
	fmt.Printf("Habit %q deleted.\n", h.Name)
	return nil
}
