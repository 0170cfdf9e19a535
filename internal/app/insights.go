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

var insightsCmd = &cobra.Command{
	Use:   "insights",
	Short: "Show rule-based insight messages",
	Long: `Evaluate the insight rules against the current snapshot and print up to
three messages: celebrations, motivation, suggestions, and evening warnings.`,
	RunE: runInsights,
}

func init() {
	rootCmd.AddCommand(insightsCmd)
}

func runInsights(cmd *cobra.Command, args []string) error {
	cfg, db, err := setup()
	if err != nil {
		return err
	}
	defer db.Close()

	snap, err := db.LoadSnapshot(cmd.Context())
	if err != nil {
		return fmt.Errorf("loading snapshot: %w", err)
	}

	now := time.Now()
	engine := insight.NewEngine()
	insights := engine.Evaluate(&insight.Context{
		Habits:      snap.Habits,
		Completions: snap.Completions,
		Now:         now,
		Streak:      stats.OverallStreak(snap.Habits, snap.Completions, now),
		Level:       stats.Level(snap.Profile.TotalXP),
		TotalXP:     snap.Profile.TotalXP,
		EveningHour: cfg.EveningHour,
	})

	if flagJSON {
		return json.NewEncoder(os.Stdout).Encode(insights)
	}

	fmt.Println(output.Section("Insights"))
	for _, ins := range insights {
		fmt.Printf("  %s  %s\n", output.TypeBadge(ins.Type), ins.Message)
	}
	fmt.Println()
	return nil
}
