package main

import (
	"os"

	"github.com/spf13/cobra"

	appLog "riascal/internal/log"
)

var (
	flagConfigPath string
	flagDebug      bool
)

var rootCmd = &cobra.Command{
	Use:   "riascal",
	Short: "Booking calendar service for a makeup-artist business",
	Long: `riascal keeps a calendar of makeup appointments (akad, resepsi,
wisuda) and serves it as month/week/day views over HTTP, plus an
iCalendar feed clients can subscribe to.`,
	PersistentPreRun: func(_ *cobra.Command, _ []string) {
		if flagDebug {
			appLog.SetLevel(appLog.LevelDebug)
		}
	},
}

func main() {
	rootCmd.PersistentFlags().StringVar(&flagConfigPath, "config", "/etc/riascal/config.yaml", "path to config file")
	rootCmd.PersistentFlags().BoolVar(&flagDebug, "debug", false, "enable debug logging")

	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(exportCmd)

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
