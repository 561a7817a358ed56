package main

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/go-pg/pg/v10"
	"github.com/namsral/flag"

	"github.com/phdsports/news-portal/config"
	"github.com/phdsports/news-portal/internal/app"
	"github.com/phdsports/news-portal/internal/db"
)

var (
	flConfig  = flag.String("config", "config.toml", "path to TOML configuration file")
	flDebug   = flag.Bool("debug", false, "enable debug mode")
	flMigrate = flag.Bool("migrate", false, "apply database migrations before serving")
	lg        *slog.Logger
)

func main() {
	// flags fall back to upper-case environment variables, so .env goes first
	config.LoadDotEnv(".env")
	flag.Parse()

	lg = newLogger(*flDebug)
	slog.SetDefault(lg)

	cfg, err := config.Load(*flConfig)
	exitOnError(err)

	ctx := context.Background()

	if *flMigrate {
		exitOnError(migrate(ctx, cfg.Database.URL))
	}

	opt, err := cfg.Database.Options()
	exitOnError(err)

	dbc := pg.Connect(opt)
	if err := dbc.Ping(ctx); err != nil {
		_ = dbc.Close()
		exitOnError(err)
	}

	service := app.New(cfg, dbc, lg)

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	go func() {
		err := service.Run(ctx)
		if err != nil && !errors.Is(err, http.ErrServerClosed) {
			lg.Error("service run failed", "error", err)
			quit <- syscall.SIGTERM
		}
	}()

	<-quit
	lg.Info("service stopping")

	shutdownCtx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	if err := service.GracefulShutdown(shutdownCtx); err != nil {
		lg.Error("service graceful shutdown failed", "error", err)
	}
}

func migrate(ctx context.Context, databaseURL string) error {
	sqldb, err := db.OpenSQL(ctx, databaseURL)
	if err != nil {
		return err
	}
	defer sqldb.Close()

	if err := db.Migrate(ctx, sqldb); err != nil {
		return err
	}

	lg.Info("migrations applied")
	return nil
}

func newLogger(debug bool) *slog.Logger {
	logLevel := slog.LevelInfo
	if debug {
		logLevel = slog.LevelDebug
	}

	return slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{
		Level: logLevel,
	}))
}

func exitOnError(err error) {
	if err != nil {
		lg.Error("app init failed", "error", err)
		os.Exit(1)
	}
}
