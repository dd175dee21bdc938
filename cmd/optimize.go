package cmd

import (
	"encoding/json"
	"fmt"
	"os"
	"strconv"
	"strings"

	"resumatic/internal/inputprocessor"
	"resumatic/internal/textstats"

	"github.com/fatih/color"
	"github.com/olekukonko/tablewriter"
	"github.com/spf13/cobra"
)

var (
	optimizeJSON   bool
	optimizeStats  bool
	optimizeOutput string
)

var optimizeCmd = &cobra.Command{
	Use:   "optimize [input...]",
	Short: "Score a resume and inject missing keywords into its skills section",
	Long: `Scores the resume against the built-in keyword table, injects the most
relevant keyword category into the skills section, and re-scores the result.
Input may be a file path, an http(s) URL, or the resume text itself.`,
	Args: cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		input := strings.Join(args, " ")

		appInstance, err := GetAppFromContext(cmd.Context())
		if err != nil {
			return err
		}

		processed, err := inputprocessor.New().Process(cmd.Context(), input)
		if err != nil {
			return fmt.Errorf("resolve input: %w", err)
		}

		result, err := appInstance.OptimizerService.Optimize(cmd.Context(), processed.Body)
		if err != nil {
			return fmt.Errorf("optimize failed: %w", err)
		}

		if optimizeJSON {
			enc := json.NewEncoder(os.Stdout)
			enc.SetIndent("", "  ")
			return enc.Encode(result)
		}

		table := tablewriter.NewWriter(os.Stdout)
		table.SetHeader([]string{"Metric", "Value"})
		table.SetBorder(false)
		table.SetHeaderAlignment(tablewriter.ALIGN_LEFT)
		table.SetAlignment(tablewriter.ALIGN_LEFT)
		table.Append([]string{"Original ATS score", strconv.Itoa(result.OriginalScore)})
		table.Append([]string{"Optimized ATS score", colorScore(result.OriginalScore, result.OptimizedScore)})
		table.Append([]string{"Keywords added", strings.Join(result.KeywordsAdded, ", ")})
		table.Append([]string{"Keyword density", fmt.Sprintf("%.1f", result.PerformanceMetrics.KeywordDensity)})
		table.Append([]string{"Readability index", strconv.Itoa(result.PerformanceMetrics.ReadabilityIndex)})
		table.Append([]string{"Section completeness", strconv.Itoa(result.PerformanceMetrics.SectionCompleteness) + "%"})
		if optimizeStats {
			stats := textstats.Stats(processed.Body)
			table.Append([]string{"Words", strconv.Itoa(stats.WordCount)})
			table.Append([]string{"Sentences", strconv.Itoa(stats.SentenceCount)})
		}
		table.Render()

		if optimizeOutput != "" {
			if err := os.WriteFile(optimizeOutput, []byte(result.OptimizedResume), 0o644); err != nil {
				return fmt.Errorf("write optimized resume: %w", err)
			}
			fmt.Printf("Optimized resume written to %s\n", optimizeOutput)
			return nil
		}

		fmt.Println("\n--- Optimized resume ---")
		fmt.Println(result.OptimizedResume)
		return nil
	},
}

func colorScore(before, after int) string {
	s := strconv.Itoa(after)
	if after > before {
		return color.GreenString(s)
	}
	return s
}

func init() {
	optimizeCmd.Flags().BoolVar(&optimizeJSON, "json", false, "Print the raw result payload as JSON")
	optimizeCmd.Flags().BoolVar(&optimizeStats, "stats", false, "Include word and sentence counts")
	optimizeCmd.Flags().StringVarP(&optimizeOutput, "output", "o", "", "Write the optimized resume to a file instead of stdout")

	rootCmd.AddCommand(optimizeCmd)
}
