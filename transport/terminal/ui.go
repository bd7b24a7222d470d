package terminal

import (
	"context"
	"fmt"
	"log/slog"
	"strconv"

	"github.com/gdamore/tcell/v2"

	"github.com/rocketscienceinc/tictactoe-timetravel/internal/usecase"
)

const (
	boardX = 2
	boardY = 3
	movesX = 20
	movesY = 3
)

var (
	styleDefault = tcell.StyleDefault
	styleTitle   = tcell.StyleDefault.Bold(true)
	styleHint    = tcell.StyleDefault.Dim(true)
	styleWinning = tcell.StyleDefault.Reverse(true).Bold(true)
	styleCursor  = tcell.StyleDefault.Reverse(true)
)

type gameManager interface {
	PlayMove(ctx context.Context, cell int) (*usecase.View, error)
	JumpTo(ctx context.Context, move int) (*usecase.View, error)
	ToggleSort(ctx context.Context) *usecase.View
	View(ctx context.Context) *usecase.View
}

// UI draws the game on a terminal and turns key presses into game intents.
type UI struct {
	logger *slog.Logger
	game   gameManager

	view   *usecase.View
	cursor int
}

func New(logger *slog.Logger, game gameManager) *UI {
	return &UI{
		logger: logger.With("component", "terminal"),
		game:   game,
	}
}

// Run - takes over the terminal until the user quits or ctx is cancelled.
func (that *UI) Run(ctx context.Context) error {
	screen, err := tcell.NewScreen()
	if err != nil {
		return fmt.Errorf("failed to create screen: %w", err)
	}

	if err = screen.Init(); err != nil {
		return fmt.Errorf("failed to init screen: %w", err)
	}
	defer screen.Fini()

	return that.loop(ctx, screen)
}

// loop - expects an initialised screen.
func (that *UI) loop(ctx context.Context, screen tcell.Screen) error {
	log := that.logger.With("method", "loop")

	stop := context.AfterFunc(ctx, func() {
		_ = screen.PostEvent(tcell.NewEventInterrupt(nil))
	})
	defer stop()

	that.refresh(that.game.View(ctx))
	that.draw(screen)

	for {
		switch ev := screen.PollEvent().(type) {
		case nil:
			return nil
		case *tcell.EventInterrupt:
			if ctx.Err() != nil {
				log.Info("context cancelled, leaving terminal ui")
				return nil
			}
		case *tcell.EventResize:
			screen.Sync()
		case *tcell.EventKey:
			if !that.handleKey(ctx, ev) {
				log.Info("user quit")
				return nil
			}
		}

		that.draw(screen)
	}
}

// handleKey - applies one key press and reports whether the ui keeps running.
func (that *UI) handleKey(ctx context.Context, ev *tcell.EventKey) bool {
	log := that.logger.With("method", "handleKey")

	switch ev.Key() {
	case tcell.KeyEscape, tcell.KeyCtrlC:
		return false
	case tcell.KeyUp:
		that.moveCursor(-1)
	case tcell.KeyDown:
		that.moveCursor(1)
	case tcell.KeyEnter:
		if len(that.view.Moves) == 0 {
			return true
		}

		move := that.view.Moves[that.cursor]
		if !move.Jumpable {
			return true
		}

		view, err := that.game.JumpTo(ctx, move.Number)
		if err != nil {
			log.Error("failed to jump", "move", move.Number, "error", err)
			return true
		}
		that.refresh(view)
	case tcell.KeyRune:
		switch r := ev.Rune(); {
		case r == 'q':
			return false
		case r == 's':
			that.refresh(that.game.ToggleSort(ctx))
		case r >= '1' && r <= '9':
			view, err := that.game.PlayMove(ctx, int(r-'1'))
			if err != nil {
				log.Error("failed to play", "key", string(r), "error", err)
				return true
			}
			that.refresh(view)
		}
	}

	return true
}

// refresh - stores view and puts the cursor on the current move.
func (that *UI) refresh(view *usecase.View) {
	that.view = view
	that.cursor = 0

	for i, move := range view.Moves {
		if move.Number == view.CurrentMove {
			that.cursor = i
			break
		}
	}
}

func (that *UI) moveCursor(delta int) {
	next := that.cursor + delta
	if next < 0 || next >= len(that.view.Moves) {
		return
	}

	that.cursor = next
}

func (that *UI) draw(screen tcell.Screen) {
	screen.Clear()

	drawText(screen, 0, 0, styleTitle, "Tic-tac-toe")
	drawText(screen, 0, 1, styleDefault, that.view.Status)

	for r, row := range that.view.Rows {
		y := boardY + r*2
		for c, cell := range row {
			x := boardX + c*4

			switch {
			case cell.Winning:
				drawText(screen, x, y, styleWinning, " "+cell.Value.String()+" ")
			case cell.Value.IsMarker():
				drawText(screen, x, y, styleDefault, " "+cell.Value.String()+" ")
			default:
				drawText(screen, x, y, styleHint, " "+strconv.Itoa(cell.Index+1)+" ")
			}

			if c < len(row)-1 {
				drawText(screen, x+3, y, styleDefault, "|")
			}
		}

		if r < len(that.view.Rows)-1 {
			drawText(screen, boardX, y+1, styleDefault, "---+---+---")
		}
	}

	order := "ascending"
	if !that.view.SortAscending {
		order = "descending"
	}
	drawText(screen, movesX, movesY-1, styleTitle, "Moves ("+order+")")

	for i, move := range that.view.Moves {
		style := styleDefault
		prefix := "  "
		if i == that.cursor {
			style = styleCursor
			prefix = "> "
		}
		if !move.Jumpable {
			style = style.Bold(true)
		}

		drawText(screen, movesX, movesY+i, style, prefix+move.Label)
	}

	help := movesY + max(len(that.view.Moves), 5) + 1
	drawText(screen, 0, help, styleHint, "1-9 play  up/down select  enter jump  s sort  q quit")

	screen.Show()
}

func drawText(screen tcell.Screen, x, y int, style tcell.Style, text string) {
	for _, r := range text {
		screen.SetContent(x, y, r, nil, style)
		x++
	}
}
