package cmd

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"
	"github.com/user/sentinel-aegis/pkg/assessment"
	"github.com/user/sentinel-aegis/pkg/config"
	"github.com/user/sentinel-aegis/pkg/logging"
	"github.com/user/sentinel-aegis/pkg/modules"
)

var assessCmd = &cobra.Command{
	Use:   "assess",
	Short: "Run a security assessment and save the report",
	Run: func(cmd *cobra.Command, args []string) {
		configPath, _ := cmd.Flags().GetString("config")
		moduleName, _ := cmd.Flags().GetString("module")
		reportPath, _ := cmd.Flags().GetString("report")

		cfg, err := config.LoadConfig(configPath)
		if err != nil {
			fmt.Printf("Error loading config: %v (using defaults)\n", err)
		}
		if reportPath != "" {
			cfg.ReportPath = reportPath
		}

		logging.SetLevel(logging.ParseLevel(cfg.LogLevel))
		if DebugMode {
			logging.SetLevel(logging.LevelDebug)
		}
		if err := logging.EnableFile("logs"); err != nil {
			fmt.Printf("Warning: could not open log file: %v\n", err)
		}
		logging.Infof("SENTINEL AEGIS initialized for %s", cfg.Organization)

		coordinator := assessment.NewCoordinator(cfg.Organization)
		for _, m := range modules.All() {
			coordinator.Register(m)
		}

		ctx := context.Background()
		var report *assessment.AssessmentReport

		// A valid --module runs restricted mode; anything else falls back
		// to a full assessment.
		if moduleName != "" && coordinator.HasModule(moduleName) {
			report, err = coordinator.RunModule(ctx, moduleName)
			if err != nil {
				fmt.Printf("Error running module %s: %v\n", moduleName, err)
				return
			}
		} else {
			if moduleName != "" {
				logging.Errorf("Unknown module %q, running full assessment", moduleName)
			}
			report = coordinator.RunAssessment(ctx)
		}

		path, err := assessment.SaveReport(report, cfg.ReportPath)
		if err != nil {
			fmt.Printf("Error saving report: %v\n", err)
			return
		}
		logging.Infof("Report saved to %s", path)

		fmt.Printf("Assessment completed. Risk level: %s\n", report.RiskLevel)
		fmt.Printf("Report saved to %s\n", path)
	},
}

func init() {
	assessCmd.Flags().StringP("config", "c", "", "Path to configuration file")
	assessCmd.Flags().StringP("module", "m", "", "Run a specific module only")
	assessCmd.Flags().StringP("report", "r", "", "Directory to save the report")
	rootCmd.AddCommand(assessCmd)
}
