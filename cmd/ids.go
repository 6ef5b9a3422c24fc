package cmd

import (
	"fmt"

	"schedule-sync/feature/schedule"

	"github.com/spf13/cobra"
)

// idsCmd groups the source id commands
var idsCmd = &cobra.Command{
	Use:   "ids",
	Short: "Inspect and backfill source ids in distribution workbooks",
}

// idsCheckCmd represents the ids check command
var idsCheckCmd = &cobra.Command{
	Use:   "check <distribution.xlsx>...",
	Short: "Count distribution records without a source id",
	Args:  cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		rt, err := newRuntime(cmd.Context(), historyOff)
		if err != nil {
			return err
		}
		defer rt.close()

		report, err := rt.service.CheckIDs(cmd.Context(), args...)
		if err != nil {
			return err
		}

		fmt.Println("\n=== Source ID Check ===")
		fmt.Printf("Records: %d\n", report.Total)
		fmt.Printf("Missing source id: %d\n", report.Missing)
		return nil
	},
}

// idsAddCmd represents the ids add command
var idsAddCmd = &cobra.Command{
	Use:   "add <source.csv> <distribution.xlsx>",
	Short: "Backfill source ids into a distribution workbook",
	Long: `Matches every distribution record lacking a source id against the source feed.
Exact matches win; otherwise a title shared by exactly one source record is used.
Matched records get an [afestid:<id>] tag appended to their description and the
workbook is saved next to the input with the configured output suffix.`,
	Args: cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		rt, err := newRuntime(cmd.Context(), historyOff)
		if err != nil {
			return err
		}
		defer rt.close()

		out, err := rt.service.BackfillIDs(cmd.Context(), args[0], args[1])
		if err != nil {
			return err
		}
		schedule.LogBackfill(rt.logger, out)

		r := out.Result
		fmt.Println("\n=== Source ID Backfill ===")
		fmt.Printf("Exact matches: %d\n", r.ExactMatches)
		fmt.Printf("Title matches: %d\n", r.TitleMatches)
		fmt.Printf("Already tagged: %d\n", r.Tagged)
		fmt.Printf("Unmatched: %d\n", r.Unmatched)
		fmt.Printf("Saved to: %s\n", out.Output)
		return nil
	},
}

func init() {
	idsCmd.AddCommand(idsCheckCmd)
	idsCmd.AddCommand(idsAddCmd)
	RootCmd.AddCommand(idsCmd)
}
