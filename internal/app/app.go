package app

import (
	"context"
	"errors"
	"log/slog"
	"net/http"

	"github.com/go-pg/pg/v10"
	"github.com/labstack/echo/v4"

	"github.com/phdsports/news-portal/config"
	"github.com/phdsports/news-portal/internal/db"
	"github.com/phdsports/news-portal/internal/newsportal"
	"github.com/phdsports/news-portal/internal/rest"
	"github.com/phdsports/news-portal/internal/rpc"
)

type App struct {
	DB      *db.Repository
	Manager *newsportal.Manager
	Logger  *slog.Logger
	Echo    *echo.Echo
	Config  config.Config
}

func New(cfg config.Config, dbConnect *pg.DB, logger *slog.Logger) *App {
	if cfg.Database.LogQueries {
		dbConnect.AddQueryHook(db.NewQueryHook(logger))
	}

	repo := db.New(dbConnect)
	manager := newsportal.NewManager(repo, cfg.Listing, logger)

	handler := rest.NewNewsHandler(manager, cfg.App, cfg.Listing, logger)
	rpcServer := rpc.New(logger, manager, cfg.Listing)

	return &App{
		DB:      repo,
		Manager: manager,
		Logger:  logger,
		Echo:    handler.RegisterRoutes(rpcServer),
		Config:  cfg,
	}
}

func (a *App) Run(ctx context.Context) error {
	if err := a.DB.Ping(ctx); err != nil {
		return err
	}

	a.Logger.Info("service started", "addr", a.Config.App.Addr())

	return a.Echo.Start(a.Config.App.Addr())
}

func (a *App) GracefulShutdown(ctx context.Context) error {
	err := a.Echo.Shutdown(ctx)
	if errors.Is(err, http.ErrServerClosed) {
		err = nil
	}

	if dbErr := a.DB.Close(); dbErr != nil {
		err = errors.Join(err, dbErr)
	}

	return err
}
