package main

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"

	"riascal/internal/config"
	"riascal/internal/ics"
	appLog "riascal/internal/log"
	"riascal/internal/store"
)

var flagExportOut string

var exportCmd = &cobra.Command{
	Use:   "export",
	Short: "Dump the booking calendar as an iCalendar (.ics) file",
	Long: `export writes the current booking collection as an iCalendar
document to stdout or, with -o, to a file. Without a live data source
this exports the demo fixtures when demo_seed is enabled.`,
	RunE: runExport,
}

func init() {
	exportCmd.Flags().StringVarP(&flagExportOut, "out", "o", "", "output path (default stdout)")
}

func runExport(_ *cobra.Command, _ []string) error {
	conf, err := config.Load(flagConfigPath)
	if err != nil {
		appLog.Error("failed to load config", err, "config_path", flagConfigPath)
		return err
	}

	loc, err := time.LoadLocation(conf.Timezone)
	if err != nil {
		loc = time.Local
	}

	st := store.New()
	if conf.DemoSeed {
		st.Seed(loc)
	}

	body := ics.Serialize(st.List(context.Background()), conf.CalendarName)

	if flagExportOut == "" {
		fmt.Print(body)
		return nil
	}
	if err := os.WriteFile(flagExportOut, []byte(body), 0o600); err != nil {
		appLog.Error("failed to write ICS file", err, "path", flagExportOut)
		return err
	}
	appLog.Info("ICS exported", "path", flagExportOut)
	return nil
}
