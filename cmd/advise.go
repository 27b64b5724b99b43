package cmd

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"github.com/user/sentinel-aegis/pkg/advisor"
	"github.com/user/sentinel-aegis/pkg/assessment"
	"github.com/user/sentinel-aegis/pkg/config"
)

var adviseCmd = &cobra.Command{
	Use:   "advise",
	Short: "Generate an AI executive summary for a saved report",
	Run: func(cmd *cobra.Command, args []string) {
		reportPath, _ := cmd.Flags().GetString("report")
		if reportPath == "" {
			fmt.Println("Error: --report is required")
			return
		}

		report, err := assessment.LoadReport(reportPath)
		if err != nil {
			fmt.Printf("Error loading report: %v\n", err)
			return
		}

		cfg, err := config.LoadConfig("")
		if err != nil {
			fmt.Printf("Error loading config: %v\n", err)
			return
		}

		providerName := cfg.SelectedProvider
		if providerName == "" {
			providerName = "gemini" // Default
		}

		apiKey := cfg.GetAPIKey(providerName)
		if apiKey == "" {
			// Fallback to env var for Gemini if not in config
			if providerName == "gemini" {
				apiKey = os.Getenv("GOOGLE_API_KEY")
			}
		}
		if apiKey == "" {
			fmt.Println("Error: API Key not found.")
			fmt.Println("Please run 'sentinel-aegis config setup' to configure your keys.")
			return
		}

		ctx := context.Background()
		fmt.Printf("Connecting to %s (Model: %s)...\n", providerName, cfg.SelectedModel)

		provider, err := advisor.NewProvider(ctx, providerName, apiKey, cfg.SelectedModel)
		if err != nil {
			fmt.Printf("Error creating AI provider: %v\n", err)
			return
		}
		if closer, ok := provider.(interface{ Close() }); ok {
			defer closer.Close()
		}

		summary, err := advisor.NewAdvisor(provider).Summarize(ctx, report)
		if err != nil {
			fmt.Printf("Error generating summary: %v\n", err)
			return
		}

		fmt.Println("\n---------------------------------------------------------")
		fmt.Println(summary)
	},
}

func init() {
	adviseCmd.Flags().StringP("report", "r", "", "Path to the assessment report to summarize")
	rootCmd.AddCommand(adviseCmd)
}
