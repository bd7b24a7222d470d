package suite

import (
	"context"
	"log/slog"
	"os"
	"testing"
	"time"

	"github.com/rocketscienceinc/tictactoe-timetravel/internal/usecase"
)

const maxWaitDuration = 10 * time.Second

type Suite struct {
	*testing.T
	Logger *slog.Logger

	Game *usecase.GameManager
}

// New - returns a context bounded by maxWaitDuration and a suite holding a fresh game.
func New(t *testing.T) (context.Context, *Suite) {
	t.Helper()

	ctx, cancel := context.WithTimeout(context.Background(), maxWaitDuration)
	t.Cleanup(func() {
		cancel()
	})

	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelDebug}))

	return ctx, &Suite{
		T:      t,
		Logger: logger,
		Game:   usecase.NewGameManager(logger),
	}
}

// Play - plays cells in order and fails the test on the first error.
func (that *Suite) Play(ctx context.Context, cells ...int) *usecase.View {
	that.Helper()

	view := that.Game.View(ctx)
	for _, cell := range cells {
		var err error
		if view, err = that.Game.PlayMove(ctx, cell); err != nil {
			that.Fatalf("could not play cell %d: %v", cell, err)
		}
	}

	return view
}
