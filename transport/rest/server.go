package rest

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"

	"github.com/rocketscienceinc/tictactoe-timetravel/internal/config"
)

type Server struct {
	logger *slog.Logger
	conf   *config.HTTP

	handlers *handlers
}

func New(logger *slog.Logger, conf *config.HTTP, game gameManager) *Server {
	return &Server{
		logger:   logger.With("component", "rest"),
		conf:     conf,
		handlers: newHandlers(logger, game),
	}
}

// Handler - the routes of the web ui and its json api.
func (that *Server) Handler() http.Handler {
	mux := http.NewServeMux()

	mux.HandleFunc("GET /ping", pingHandler)

	mux.HandleFunc("GET /{$}", that.handlers.page)
	mux.HandleFunc("POST /play", that.handlers.playForm)
	mux.HandleFunc("POST /jump", that.handlers.jumpForm)
	mux.HandleFunc("POST /sort", that.handlers.sortForm)

	mux.HandleFunc("GET /api/game", that.handlers.getGame)
	mux.HandleFunc("POST /api/game/play", that.handlers.playJSON)
	mux.HandleFunc("POST /api/game/jump", that.handlers.jumpJSON)
	mux.HandleFunc("POST /api/game/sort", that.handlers.sortJSON)

	return mux
}

// Start - serves until ctx is cancelled, then shuts down gracefully.
func (that *Server) Start(ctx context.Context) error {
	srv := &http.Server{
		Addr:         that.conf.GetAddr(),
		Handler:      that.Handler(),
		ReadTimeout:  that.conf.ReadTimeout,
		WriteTimeout: that.conf.WriteTimeout,
		IdleTimeout:  that.conf.IdleTimeout,
	}

	errCh := make(chan error, 1)
	go func() {
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case err := <-errCh:
		if err != nil {
			return fmt.Errorf("failed to start server: %w", err)
		}
		return nil
	case <-ctx.Done():
		that.logger.Info("Shutting down HTTP server")
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), that.conf.ShutdownTimeout)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("failed to shutdown server: %w", err)
	}

	return nil
}
