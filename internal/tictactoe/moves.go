package tictactoe

import (
	"slices"
	"strconv"
)

type MoveKind int

const (
	MoveStart MoveKind = iota
	MoveCurrent
	MovePast
)

func (that MoveKind) String() string {
	switch that {
	case MoveStart:
		return "start"
	case MoveCurrent:
		return "current"
	default:
		return "past"
	}
}

// Move describes one entry of the move list.
type Move struct {
	Number int
	Label  string
	Kind   MoveKind
}

// Jumpable reports whether selecting the entry should call JumpTo.
func (that Move) Jumpable() bool {
	return that.Kind != MoveCurrent
}

// Moves - one entry per recorded board, in history order.
func (that *History) Moves() []Move {
	moves := make([]Move, 0, len(that.boards))
	for number := range that.boards {
		moves = append(moves, that.describe(number))
	}

	return moves
}

// DisplayMoves - the move list in the order it should be shown.
func (that *History) DisplayMoves() []Move {
	moves := that.Moves()
	if !that.sortAscending {
		slices.Reverse(moves)
	}

	return moves
}

// the game start entry is checked first, so move 0 stays jumpable even when current.
func (that *History) describe(number int) Move {
	switch {
	case number == 0:
		return Move{Number: number, Label: "Go to game start", Kind: MoveStart}
	case number == that.current:
		return Move{Number: number, Label: "You are at move #" + strconv.Itoa(number), Kind: MoveCurrent}
	default:
		return Move{Number: number, Label: "Go to move #" + strconv.Itoa(number), Kind: MovePast}
	}
}
