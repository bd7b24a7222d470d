package usecase

import "github.com/rocketscienceinc/tictactoe-timetravel/internal/entity"

// View is a read-only copy of the game taken under the manager lock.
// Adapters render from it without touching the history.
type View struct {
	GameID        string         `json:"game_id"`
	Board         entity.Board   `json:"board"`
	Status        string         `json:"status"`
	Winner        entity.Cell    `json:"winner"`
	NextPlayer    entity.Cell    `json:"next_player"`
	CurrentMove   int            `json:"current_move"`
	SortAscending bool           `json:"sort_ascending"`
	WinningLine   []int          `json:"winning_line,omitempty"`
	Moves         []MoveView     `json:"moves"`
	Rows          [3][3]CellView `json:"-"`
}

type CellView struct {
	Index   int
	Value   entity.Cell
	Winning bool
}

type MoveView struct {
	Number   int    `json:"number"`
	Label    string `json:"label"`
	Kind     string `json:"kind"`
	Jumpable bool   `json:"jumpable"`
}

func (that *GameManager) view() *View {
	board := that.history.CurrentBoard()

	view := &View{
		GameID:        that.id,
		Board:         board,
		Status:        that.history.Status(),
		Winner:        board.Winner(),
		NextPlayer:    that.history.NextMarker(),
		CurrentMove:   that.history.CurrentMove(),
		SortAscending: that.history.SortAscending(),
	}

	winning := map[int]bool{}
	if line, ok := board.WinningLine(); ok {
		view.WinningLine = line[:]
		for _, cell := range line {
			winning[cell] = true
		}
	}

	for i, cell := range board {
		view.Rows[i/entity.BoardSide][i%entity.BoardSide] = CellView{Index: i, Value: cell, Winning: winning[i]}
	}

	for _, move := range that.history.DisplayMoves() {
		view.Moves = append(view.Moves, MoveView{
			Number:   move.Number,
			Label:    move.Label,
			Kind:     move.Kind.String(),
			Jumpable: move.Jumpable(),
		})
	}

	return view
}
