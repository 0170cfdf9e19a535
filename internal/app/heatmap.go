package app

import (
	"encoding/json"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/scout6645/habitflow/internal/habit"
	"github.com/scout6645/habitflow/internal/output"
	"github.com/scout6645/habitflow/internal/stats"
)

var heatmapCmd = &cobra.Command{
	Use:   "heatmap",
	Short: "Show a rolling completion heatmap",
	Long:  `Render completion counts per day as a weekday-by-week grid, most recent week last.`,
	RunE:  runHeatmap,
}

func init() {
	rootCmd.AddCommand(heatmapCmd)
}

func runHeatmap(cmd *cobra.Command, args []string) error {
	cfg, db, err := setup()
	if err != nil {
		return err
	}
	defer db.Close()

	snap, err := db.LoadSnapshot(cmd.Context())
	if err != nil {
		return fmt.Errorf("loading snapshot: %w", err)
	}

	heat := stats.Heatmap(snap.Completions)
	if flagJSON {
		return json.NewEncoder(os.Stdout).Encode(heat)
	}

	weeks := cfg.HeatmapWeeks
	if weeks <= 0 {
		weeks = 13
	}

	now := time.Now()
	// Grid ends on the Saturday of the current week so columns are whole weeks.
	end := now.AddDate(0, 0, int(time.Saturday-now.Weekday()))
	start := end.AddDate(0, 0, -(weeks*7 - 1))
	total := len(snap.Habits)

	fmt.Println(output.Section(fmt.Sprintf("Heatmap (last %d weeks)", weeks)))
	labels := []string{"Sun", "Mon", "Tue", "Wed", "Thu", "Fri", "Sat"}
	for weekday := 0; weekday < 7; weekday++ {
		var row strings.Builder
		row.WriteString("  " + output.StyleMuted.Render(labels[weekday]) + " ")
		for week := 0; week < weeks; week++ {
			day := start.AddDate(0, 0, week*7+weekday)
			if day.After(now) {
				row.WriteString(" ")
				continue
			}
			row.WriteString(output.HeatCell(heat[habit.DateKey(day)], total))
		}
		fmt.Println(row.String())
	}
	fmt.Println()
	return nil
}
