package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
	"github.com/user/sentinel-aegis/pkg/assessment"
)

var compareCmd = &cobra.Command{
	Use:   "compare",
	Short: "Compare an assessment report against a baseline",
	Run: func(cmd *cobra.Command, args []string) {
		baselinePath, _ := cmd.Flags().GetString("baseline")
		reportPath, _ := cmd.Flags().GetString("report")

		if baselinePath == "" || reportPath == "" {
			fmt.Println("Error: --baseline and --report are required")
			return
		}

		baseline, err := assessment.LoadReport(baselinePath)
		if err != nil {
			fmt.Printf("Error loading baseline: %v\n", err)
			return
		}
		current, err := assessment.LoadReport(reportPath)
		if err != nil {
			fmt.Printf("Error loading report: %v\n", err)
			return
		}

		diff := assessment.CompareReports(current, baseline)

		fmt.Printf("Risk score: %.1f -> %.1f (%+.1f)\n", baseline.RiskScore, current.RiskScore, diff.ScoreDelta)
		if diff.LevelChanged() {
			fmt.Printf("Risk level changed: %s -> %s\n", diff.BaselineLevel, diff.CurrentLevel)
		} else {
			fmt.Printf("Risk level unchanged: %s\n", diff.CurrentLevel)
		}

		fmt.Printf("\nNEW RECOMMENDATIONS: %d\n", len(diff.New))
		for _, r := range diff.New {
			fmt.Printf("  [+] (%s) %s - %s\n", r.Priority, r.Finding, r.Action)
		}

		fmt.Printf("\nRESOLVED: %d\n", len(diff.Resolved))
		for _, r := range diff.Resolved {
			fmt.Printf("  [-] (%s) %s - %s\n", r.Priority, r.Finding, r.Action)
		}

		fmt.Printf("\nUNCHANGED: %d\n", len(diff.Unchanged))
		for _, r := range diff.Unchanged {
			fmt.Printf("  [=] (%s) %s - %s\n", r.Priority, r.Finding, r.Action)
		}
	},
}

func init() {
	compareCmd.Flags().StringP("baseline", "b", "", "Path to the baseline report")
	compareCmd.Flags().StringP("report", "r", "", "Path to the current report")
	rootCmd.AddCommand(compareCmd)
}
