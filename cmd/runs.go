package cmd

import (
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/olekukonko/tablewriter"
	"github.com/spf13/cobra"
)

var runsLimit int

// runsCmd lists past optimization runs from the history store.
var runsCmd = &cobra.Command{
	Use:   "runs",
	Short: "List recent optimization runs",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		appInstance, err := GetAppFromContext(cmd.Context())
		if err != nil {
			return err
		}

		runs, err := appInstance.OptimizerService.ListRuns(cmd.Context(), runsLimit)
		if err != nil {
			return fmt.Errorf("error listing runs: %w", err)
		}

		if len(runs) == 0 {
			fmt.Println("No optimization runs recorded.")
			return nil
		}

		table := tablewriter.NewWriter(os.Stdout)
		table.SetHeader([]string{"ID", "Session", "Original", "Optimized", "Category", "Keywords Added", "When"})
		table.SetBorder(false)
		table.SetHeaderAlignment(tablewriter.ALIGN_LEFT)
		table.SetAlignment(tablewriter.ALIGN_LEFT)

		for _, r := range runs {
			table.Append([]string{
				strconv.FormatInt(r.ID, 10),
				r.SessionID.String()[:8],
				strconv.Itoa(r.OriginalScore),
				strconv.Itoa(r.OptimizedScore),
				r.Category,
				strings.Join(r.KeywordsAdded, ", "),
				r.CreatedAt.Format("2006-01-02 15:04:05"),
			})
		}
		table.Render()
		return nil
	},
}

func init() {
	runsCmd.Flags().IntVarP(&runsLimit, "limit", "n", 20, "Maximum number of runs to show")
	rootCmd.AddCommand(runsCmd)
}
