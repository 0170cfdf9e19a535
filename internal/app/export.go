package app

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var exportOut string

var exportCmd = &cobra.Command{
	Use:   "export",
	Short: "Export habits, completions, and profile as JSON",
	Long:  `Serialize the full snapshot in the shared JSON shapes for backup or transfer.`,
	RunE:  runExport,
}

func init() {
	exportCmd.Flags().StringVar(&exportOut, "out", "", "Write to file instead of stdout")
	rootCmd.AddCommand(exportCmd)
}

func runExport(cmd *cobra.Command, args []string) error {
	_, db, err := setup()
	if err != nil {
		return err
	}
	defer db.Close()

	snap, err := db.LoadSnapshot(cmd.Context())
	if err != nil {
		return fmt.Errorf("loading snapshot: %w", err)
	}

	out := os.Stdout
	if exportOut != "" {
		f, err := os.Create(exportOut)
		if err != nil {
			return fmt.Errorf("creating export file: %w", err)
		}
		defer f.Close()
		out = f
	}

	enc := json.NewEncoder(out)
	enc.SetIndent("", "  ")
	if err := enc.Encode(snap); err != nil {
		return fmt.Errorf("encoding snapshot: %w", err)
	}
	if exportOut != "" {
		fmt.Printf("Exported %d habit(s) and %d completion(s) to %s\n",
			len(snap.Habits), len(snap.Completions), exportOut)
	}
	return nil
}
