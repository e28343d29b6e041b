package main

import (
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/termfx/covreport/db"
	"github.com/termfx/covreport/internal/config"
)

var historyLimit int

var historyCmd = &cobra.Command{
	Use:   "history",
	Short: "List recent coverage runs",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg := config.Load()

		gdb, err := db.Connect(cfg.DatabaseDSN, debug)
		if err != nil {
			return fmt.Errorf("opening run history: %w", err)
		}

		runs, err := db.RecentRuns(gdb, historyLimit)
		if err != nil {
			return err
		}
		if len(runs) == 0 {
			fmt.Println("No recorded runs.")
			return nil
		}

		w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
		fmt.Fprintln(w, "WHEN\tTYPE\tFILES\tEXIT\tDURATION\tOUTPUT")
		for _, run := range runs {
			status := green(run.ExitCode)
			if run.ExitCode != 0 {
				status = red(run.ExitCode)
			}
			fmt.Fprintf(w, "%s\t%s\t%d\t%s\t%dms\t%s\n",
				run.CreatedAt.Format("2006-01-02 15:04:05"),
				run.ReportType,
				run.MatchedFiles,
				status,
				run.DurationMS,
				run.OutputDir,
			)
		}
		return w.Flush()
	},
}

func init() {
	historyCmd.Flags().IntVarP(&historyLimit, "limit", "n", 10, "Maximum number of runs to list")
}
