package app

import (
	"encoding/json"
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/scout6645/habitflow/internal/insight"
	"github.com/scout6645/habitflow/internal/output"
	"github.com/scout6645/habitflow/internal/stats"
)

var weekCmd = &cobra.Command{
	Use:   "week",
	Short: "Show the 7-day series and weekly summary",
	RunE:  runWeek,
}

func init() {
	rootCmd.AddCommand(weekCmd)
}

func runWeek(cmd *cobra.Command, args []string) error {
	_, db, err := setup()
	if err != nil {
		return err
	}
	defer db.Close()

	snap, err := db.LoadSnapshot(cmd.Context())
	if err != nil {
		return fmt.Errorf("loading snapshot: %w", err)
	}

	now := time.Now()
	series := stats.WeeklySeries(snap.Habits, snap.Completions, now)
	summary := insight.ComputeWeeklySummary(snap.Habits, snap.Completions, now)

	if flagJSON {
		return json.NewEncoder(os.Stdout).Encode(struct {
			Series  []stats.DailyStat     `json:"series"`
			Summary insight.WeeklySummary `json:"summary"`
		}{series, summary})
	}

	fmt.Println(output.Section("Last 7 days"))
	for _, day := range series {
		pct := 0.0
		if day.Total > 0 {
			pct = float64(day.Completed) / float64(day.Total) * 100
		}
		fmt.Printf("  %s  %s  %d/%d (+%d XP)\n",
			output.StyleMuted.Render(day.Date),
			output.ScoreBar(pct, 16), day.Completed, day.Total, day.XPEarned)
	}

	fmt.Println(output.Section("Weekly summary"))
	fmt.Printf("  %d%% completion, %d completions\n", summary.CompletionRate, summary.TotalCompletions)
	fmt.Printf("  %s\n\n", summary.Summary)
	return nil
}
