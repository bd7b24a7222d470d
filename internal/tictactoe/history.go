package tictactoe

import (
	"fmt"

	"github.com/rocketscienceinc/tictactoe-timetravel/internal/apperror"
	"github.com/rocketscienceinc/tictactoe-timetravel/internal/entity"
)

// History holds every board of one game, the move currently shown and the
// order the move list is displayed in. It is not safe for concurrent use.
type History struct {
	boards        []entity.Board
	current       int
	sortAscending bool
}

func NewHistory() *History {
	return &History{
		boards:        []entity.Board{{}},
		current:       0,
		sortAscending: true,
	}
}

// PlayMove - places the next marker on cell of the current board.
// Boards after the current move are dropped before the new one is appended.
// An occupied cell returns apperror.ErrCellOccupied and leaves the history as is.
func (that *History) PlayMove(cell int) error {
	next, err := that.CurrentBoard().ApplyMove(cell, that.NextMarker())
	if err != nil {
		return fmt.Errorf("failed to apply move: %w", err)
	}

	that.boards = append(that.boards[:that.current+1], next)
	that.current = len(that.boards) - 1

	return nil
}

// JumpTo - makes move the current one and permanently drops every later board.
func (that *History) JumpTo(move int) error {
	if move < 0 || move >= len(that.boards) {
		return fmt.Errorf("%w: %d of %d", apperror.ErrInvalidMove, move, len(that.boards))
	}

	that.current = move
	that.boards = that.boards[:move+1]

	return nil
}

func (that *History) ToggleSort() {
	that.sortAscending = !that.sortAscending
}

func (that *History) SortAscending() bool {
	return that.sortAscending
}

func (that *History) CurrentBoard() entity.Board {
	return that.boards[that.current]
}

func (that *History) CurrentMove() int {
	return that.current
}

func (that *History) Len() int {
	return len(that.boards)
}

// Boards - returns a copy of the recorded boards, oldest first.
func (that *History) Boards() []entity.Board {
	return append([]entity.Board(nil), that.boards...)
}

// NextMarker - X moves on even move numbers, O on odd ones.
func (that *History) NextMarker() entity.Cell {
	if that.current%2 == 0 {
		return entity.MarkerX
	}

	return entity.MarkerO
}

func (that *History) Winner() entity.Cell {
	return that.CurrentBoard().Winner()
}

// Status - the line shown above the board.
func (that *History) Status() string {
	if winner := that.Winner(); winner != entity.Empty {
		return "Winner: " + winner.String()
	}

	return "Next player: " + that.NextMarker().String()
}
