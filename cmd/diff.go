package cmd

import (
	"fmt"
	"os"

	"schedule-sync/core/reconcile"
	"schedule-sync/feature/schedule"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

var (
	diffOutput string
	diffRecord bool
	diffSample int
)

// diffCmd represents the diff command
var diffCmd = &cobra.Command{
	Use:   "diff <source.csv> <distribution.xlsx>...",
	Short: "Compare distribution workbooks with the source feed",
	Long: `Loads the source feed and every distribution workbook, merges sessions that were
split at midnight and classifies each record as added, deleted, changed or matched.
Use --output to save the full report as JSON or YAML and --record to store the run
in the history database.`,
	Args: cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		if len(args) < 2 {
			return reconcile.ErrNoFiles
		}
		mode := historyOff
		if diffRecord {
			mode = historyRequired
		}
		rt, err := newRuntime(cmd.Context(), mode)
		if err != nil {
			return err
		}
		defer rt.close()

		out, err := rt.service.Diff(cmd.Context(), args[0], args[1:], diffRecord)
		if err != nil {
			return err
		}
		schedule.LogDiff(rt.logger, out.Report, diffSample)

		if diffOutput != "" {
			f, err := os.Create(diffOutput)
			if err != nil {
				return fmt.Errorf("failed to create report file: %w", err)
			}
			defer f.Close()
			if err := schedule.WriteReport(f, schedule.FormatFor(diffOutput), out); err != nil {
				return fmt.Errorf("failed to write report: %w", err)
			}
			rt.logger.Info("Report saved", zap.String("file", diffOutput))
		}

		s := out.Report.Summary
		fmt.Println("\n=== Schedule Diff ===")
		fmt.Printf("Source records: %d\n", s.SourceCount)
		fmt.Printf("Distribution records: %d\n", s.DistributionCount)
		fmt.Printf("Added: %d\n", s.Added)
		fmt.Printf("Deleted: %d\n", s.Deleted)
		fmt.Printf("Changed: %d\n", s.Changed)
		fmt.Printf("Matched: %d\n", s.Matched)
		if out.RunID != "" {
			fmt.Printf("Run: %s\n", out.RunID)
		}
		return nil
	},
}

func init() {
	diffCmd.Flags().StringVarP(&diffOutput, "output", "o", "", "Write the full report to this file (.json, .yaml or .yml)")
	diffCmd.Flags().BoolVar(&diffRecord, "record", false, "Store the run in the history database")
	diffCmd.Flags().IntVar(&diffSample, "sample", 20, "Records of each outcome listed in the console")
	RootCmd.AddCommand(diffCmd)
}
