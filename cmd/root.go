package cmd

import (
	"github.com/spf13/cobra"
	"github.com/user/sentinel-aegis/pkg/logging"
)

var rootCmd = &cobra.Command{
	Use:   "sentinel-aegis",
	Short: "Enterprise security assessment platform",
	Long: `Sentinel Aegis runs a suite of security assessment modules
(vulnerability scanning, policy analysis, attack simulation, compliance
auditing, threat monitoring, incident response readiness, training metrics),
aggregates them into a weighted overall risk score, and produces a
prioritized assessment report.`,
}

var DebugMode bool

// Execute adds all child commands to the root command and sets flags appropriately.
func Execute() {
	cobra.CheckErr(rootCmd.Execute())
}

func init() {
	rootCmd.PersistentFlags().BoolVar(&DebugMode, "debug", false, "Enable debug logging")
	cobra.OnInitialize(func() {
		if DebugMode {
			logging.SetLevel(logging.LevelDebug)
		}
	})
}
