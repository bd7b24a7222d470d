package entity

import (
	"fmt"

	"github.com/rocketscienceinc/tictactoe-timetravel/internal/apperror"
)

const (
	BoardSide = 3
	BoardSize = BoardSide * BoardSide
)

// WinCombos lists every winning line. The order decides which line wins
// when a board holds more than one.
var WinCombos = [8][3]int{
	{0, 1, 2},
	{3, 4, 5},
	{6, 7, 8},
	{0, 3, 6},
	{1, 4, 7},
	{2, 5, 8},
	{0, 4, 8},
	{2, 4, 6},
}

// Board is one snapshot of the grid in row-major order.
// It is a value: assigning or returning it copies every cell.
type Board [BoardSize]Cell

// ApplyMove - returns a copy of the board with marker placed at cell.
// The receiver is never modified.
func (that Board) ApplyMove(cell int, marker Cell) (Board, error) {
	if cell < 0 || cell >= BoardSize {
		return that, fmt.Errorf("%w: cell %d", apperror.ErrInvalidCell, cell)
	}

	if !marker.IsMarker() {
		return that, fmt.Errorf("%w: %d", apperror.ErrInvalidMarker, marker)
	}

	if that[cell] != Empty {
		return that, apperror.ErrCellOccupied
	}

	next := that
	next[cell] = marker

	return next, nil
}

// Winner - returns the marker owning the first complete line, or Empty.
func (that Board) Winner() Cell {
	line, ok := that.WinningLine()
	if !ok {
		return Empty
	}

	return that[line[0]]
}

// WinningLine - returns the first complete line in WinCombos order.
func (that Board) WinningLine() ([3]int, bool) {
	for _, combo := range WinCombos {
		a, b, c := that[combo[0]], that[combo[1]], that[combo[2]]
		if a != Empty && a == b && b == c {
			return combo, true
		}
	}

	return [3]int{}, false
}

func (that Board) IsEmpty(cell int) bool {
	return that[cell] == Empty
}

// Count - number of filled cells.
func (that Board) Count() int {
	filled := 0
	for _, cell := range that {
		if cell != Empty {
			filled++
		}
	}

	return filled
}

func (that Board) Rows() [BoardSide][BoardSide]Cell {
	var rows [BoardSide][BoardSide]Cell
	for i, cell := range that {
		rows[i/BoardSide][i%BoardSide] = cell
	}

	return rows
}
