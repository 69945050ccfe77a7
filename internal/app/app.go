package app

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"net/http"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/JCaesar45/Cut-a-rectangle/internal/config"
	"github.com/JCaesar45/Cut-a-rectangle/internal/database"
	"github.com/JCaesar45/Cut-a-rectangle/internal/middleware"
	"github.com/JCaesar45/Cut-a-rectangle/internal/rectcut"
)

type App struct {
	logger     *slog.Logger
	router     *http.ServeMux
	db         *pgxpool.Pool
	ws         *config.WebSocket
	enum       rectcut.Enumerator
	migrations fs.FS
}

func New(logger *slog.Logger, migrations fs.FS) *App {
	return &App{
		logger:     logger,
		router:     http.NewServeMux(),
		migrations: migrations,
	}
}

func (a *App) Start(ctx context.Context) error {
	maxCells, err := config.MaxCells()
	if err != nil {
		return err
	}
	a.enum = rectcut.Enumerator{MaxCells: maxCells}

	// The database only stores computation telemetry; without one the
	// service still answers queries, it just keeps no records.
	if _, err := config.DbURL(); err != nil {
		a.logger.Warn("running without computation records", "reason", err)
	} else {
		db, err := database.ConnectAndMigrate(ctx, a.migrations)
		if err != nil {
			return fmt.Errorf("unable to connect to db: %w", err)
		}
		defer db.Close()
		a.db = db
	}

	ws, err := config.NewWebSocket()
	if err != nil {
		return err
	}
	a.ws = ws

	a.loadRoutes()

	addr := config.Port()
	server := &http.Server{
		Addr: addr,
		Handler: middleware.Wrap(
			a.router,
			middleware.Cors(),
			middleware.Logging(a.logger),
		),
	}

	done := make(chan struct{})
	go func() {
		err := server.ListenAndServe()
		if err != nil && !errors.Is(err, http.ErrServerClosed) {
			a.logger.Error("unable to listen and serve", slog.Any("error", err))
		}
		close(done)
	}()

	a.logger.Info(
		"server listening",
		slog.String("addr", addr),
		slog.String("basePath", config.BasePath()),
	)
	select {
	case <-done:
		break
	case <-ctx.Done():
		sCtx, cancel := context.WithTimeout(context.Background(), time.Second*30)
		server.Shutdown(sCtx)
		cancel()
	}

	return nil
}
