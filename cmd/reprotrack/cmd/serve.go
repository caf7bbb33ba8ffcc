package cmd

import (
	"context"
	"log/slog"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/dustin/go-humanize"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/talgya/reprotrack/internal/api"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Run the HTTP bridge and the day clock",
	Long: `Serve exposes the tracker to a chat host over HTTP and advances
wall-clock sessions once a day.

POST endpoints need REPRO_ADMIN_KEY; without it only the read-only
GET endpoints are available.`,
	RunE: runServe,
}

func init() {
	serveCmd.Flags().Int("port", 8484, "HTTP port")
	serveCmd.Flags().Duration("tick", time.Minute, "day clock check interval")
	serveCmd.Flags().Int("roll-limit", 60, "roll requests per minute per client IP")
	viper.BindPFlag("port", serveCmd.Flags().Lookup("port"))
	viper.BindPFlag("tick", serveCmd.Flags().Lookup("tick"))
	viper.BindPFlag("roll_limit", serveCmd.Flags().Lookup("roll-limit"))
	rootCmd.AddCommand(serveCmd)
}

func runServe(cmd *cobra.Command, args []string) error {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	a, err := openApp(ctx)
	if err != nil {
		return err
	}
	defer a.Close()

	if a.db != nil {
		if last, err := a.db.LastCatchup(); err == nil && !last.IsZero() {
			slog.Info("resuming day clock", "last_catchup", humanize.Time(last))
		}
	}

	srv := api.NewServer(a.tracker, a.store, viper.GetInt("port"), viper.GetString("admin_key"))
	if n := viper.GetInt("roll_limit"); n > 0 {
		srv.Limiter = api.NewRateLimiter(n, time.Minute)
	}
	httpSrv := srv.Start()

	done := make(chan struct{})
	go func() {
		defer close(done)
		a.tracker.Run(ctx, viper.GetDuration("tick"))
	}()

	<-ctx.Done()
	slog.Info("shutting down")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := httpSrv.Shutdown(shutdownCtx); err != nil {
		slog.Error("HTTP shutdown failed", "error", err)
	}
	<-done

	if a.db != nil {
		if err := a.db.SaveLastCatchup(time.Now()); err != nil {
			slog.Warn("saving day clock state failed", "error", err)
		}
	}
	return nil
}
