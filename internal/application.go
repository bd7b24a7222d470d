package application

import (
	"context"
	"fmt"
	"log/slog"
	"os/signal"
	"syscall"

	"github.com/rocketscienceinc/tictactoe-timetravel/internal/config"
	"github.com/rocketscienceinc/tictactoe-timetravel/internal/usecase"
	"github.com/rocketscienceinc/tictactoe-timetravel/transport/rest"
	"github.com/rocketscienceinc/tictactoe-timetravel/transport/terminal"
)

// RunApp - runs the application.
func RunApp(logger *slog.Logger, conf *config.Config) error {
	log := logger.With("component", "app")

	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	game := usecase.NewGameManager(logger)
	log.Info("New game started", "gameID", game.ID(), "ui", conf.UI)

	switch conf.UI {
	case config.UITerminal:
		if err := terminal.New(logger, game).Run(ctx); err != nil {
			return fmt.Errorf("terminal ui error: %w", err)
		}
	default:
		log.Info("Starting HTTP server", "addr", conf.HTTP.GetAddr())

		server := rest.New(logger, &conf.HTTP, game)
		if err := server.Start(ctx); err != nil {
			return fmt.Errorf("HTTP server error: %w", err)
		}
	}

	log.Info("Application stopped")

	return nil
}
