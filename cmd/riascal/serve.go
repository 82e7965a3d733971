package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/robfig/cron/v3"
	"github.com/spf13/cobra"

	"riascal/internal/calendar"
	"riascal/internal/config"
	appLog "riascal/internal/log"
	"riascal/internal/model"
	"riascal/internal/store"
	"riascal/internal/web"
)

var flagListen string

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the booking calendar HTTP server",
	RunE:  runServe,
}

func init() {
	serveCmd.Flags().StringVar(&flagListen, "listen", "", "HTTP listen address (overrides config if set)")
}

func runServe(_ *cobra.Command, _ []string) error {
	appLog.Info("riascal starting", "version", "0.1.0")

	conf, err := config.Load(flagConfigPath)
	if err != nil {
		appLog.Error("failed to load config", err, "config_path", flagConfigPath)
		return err
	}
	if !flagDebug {
		appLog.SetLevel(appLog.ParseLevel(conf.LogLevel))
	}

	// CLI --listen overrides config file listen if provided.
	if flagListen != "" {
		conf.Listen = flagListen
	}

	appLog.Info("effective config",
		"listen", conf.Listen,
		"timezone", conf.Timezone,
		"reminder_cron", conf.ReminderCron,
		"demo_seed", conf.DemoSeed,
		"calendar_name", conf.CalendarName,
	)

	loc, err := time.LoadLocation(conf.Timezone)
	if err != nil {
		appLog.Error("failed to load timezone; falling back to local", err, "name", conf.Timezone)
		loc = time.Local
	}

	st := store.New()
	if conf.DemoSeed {
		st.Seed(loc)
	}

	// Root context with cancellation on SIGINT/SIGTERM.
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
	go func() {
		sig := <-sigCh
		appLog.Info("signal received, shutting down", "signal", sig.String())
		cancel()
	}()

	// Reminder scan: log tomorrow's bookings on the configured schedule.
	sched := cron.New(cron.WithLocation(loc))
	if _, err := sched.AddFunc(conf.ReminderCron, func() {
		remindTomorrow(ctx, st, loc)
	}); err != nil {
		appLog.Error("invalid reminder_cron; reminders disabled", err, "spec", conf.ReminderCron)
	} else {
		sched.Start()
		defer sched.Stop()
	}

	srv := &http.Server{
		Addr:    conf.Listen,
		Handler: web.NewServer(conf, st).Handler(),
	}

	errCh := make(chan error, 1)
	go func() {
		appLog.Info("starting HTTP server", "listen", "http://"+conf.Listen)
		errCh <- srv.ListenAndServe()
	}()

	select {
	case <-ctx.Done():
		shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer shutdownCancel()
		if err := srv.Shutdown(shutdownCtx); err != nil {
			appLog.Error("HTTP shutdown failed", err)
		}
	case err := <-errCh:
		if err != nil && err != http.ErrServerClosed {
			appLog.Error("HTTP server failed", err)
			return err
		}
	}

	appLog.Info("riascal exiting")
	return nil
}

// remindTomorrow logs every booking scheduled for the following day so
// the artist gets a morning heads-up in the service journal.
func remindTomorrow(ctx context.Context, st *store.Store, loc *time.Location) {
	tomorrow := calendar.DateOf(time.Now().In(loc)).AddDate(0, 0, 1)
	bookings := calendar.EventsOnDate(st.List(ctx), tomorrow)
	if len(bookings) == 0 {
		appLog.Info("no bookings tomorrow", "date", tomorrow.Format(model.DateFormat))
		return
	}
	for _, ev := range bookings {
		appLog.Info("booking reminder",
			"date", tomorrow.Format(model.DateFormat),
			"time", ev.Time,
			"client", ev.ClientName,
			"service", ev.Service.Label(),
			"location", ev.Location,
		)
	}
}
