package usecase

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"sync"

	"github.com/google/uuid"

	"github.com/rocketscienceinc/tictactoe-timetravel/internal/apperror"
	"github.com/rocketscienceinc/tictactoe-timetravel/internal/tictactoe"
)

// GameManager owns the single game of a running process and serialises every
// intent coming from the presentation adapters.
type GameManager struct {
	logger *slog.Logger

	mu      sync.Mutex
	id      string
	history *tictactoe.History
}

func NewGameManager(logger *slog.Logger) *GameManager {
	id := uuid.NewString()

	return &GameManager{
		logger:  logger.With("component", "game_manager", "gameID", id),
		id:      id,
		history: tictactoe.NewHistory(),
	}
}

func (that *GameManager) ID() string {
	return that.id
}

// PlayMove - plays the next marker on cell. Clicking an occupied cell is not an error:
// the current view is returned unchanged.
func (that *GameManager) PlayMove(ctx context.Context, cell int) (*View, error) {
	log := that.logger.With("method", "PlayMove", "cell", cell)

	that.mu.Lock()
	defer that.mu.Unlock()

	err := that.history.PlayMove(cell)
	if errors.Is(err, apperror.ErrCellOccupied) {
		log.DebugContext(ctx, "cell is occupied, move ignored")

		return that.view(), nil
	}

	if err != nil {
		return nil, fmt.Errorf("failed to play move: %w", err)
	}

	log.InfoContext(ctx, "move played", "move", that.history.CurrentMove(), "status", that.history.Status())

	return that.view(), nil
}

// JumpTo - returns to move, discarding every later move.
func (that *GameManager) JumpTo(ctx context.Context, move int) (*View, error) {
	log := that.logger.With("method", "JumpTo", "move", move)

	that.mu.Lock()
	defer that.mu.Unlock()

	discarded := that.history.Len() - 1 - move
	if err := that.history.JumpTo(move); err != nil {
		return nil, fmt.Errorf("failed to jump: %w", err)
	}

	log.InfoContext(ctx, "jumped to move", "discarded", discarded)

	return that.view(), nil
}

func (that *GameManager) ToggleSort(ctx context.Context) *View {
	that.mu.Lock()
	defer that.mu.Unlock()

	that.history.ToggleSort()
	that.logger.DebugContext(ctx, "move order toggled", "ascending", that.history.SortAscending())

	return that.view()
}

func (that *GameManager) View(_ context.Context) *View {
	that.mu.Lock()
	defer that.mu.Unlock()

	return that.view()
}
