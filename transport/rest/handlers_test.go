package rest

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/rocketscienceinc/tictactoe-timetravel/internal/apperror"
	"github.com/rocketscienceinc/tictactoe-timetravel/internal/config"
	"github.com/rocketscienceinc/tictactoe-timetravel/internal/usecase"
	"github.com/rocketscienceinc/tictactoe-timetravel/testing/suite"
)

var errSomeError = errors.New("some error")

type mockGameManager struct {
	mock.Mock
}

func (that *mockGameManager) PlayMove(ctx context.Context, cell int) (*usecase.View, error) {
	args := that.Called(ctx, cell)
	return args.Get(0).(*usecase.View), args.Error(1)
}

func (that *mockGameManager) JumpTo(ctx context.Context, move int) (*usecase.View, error) {
	args := that.Called(ctx, move)
	return args.Get(0).(*usecase.View), args.Error(1)
}

func (that *mockGameManager) ToggleSort(ctx context.Context) *usecase.View {
	return that.Called(ctx).Get(0).(*usecase.View)
}

func (that *mockGameManager) View(ctx context.Context) *usecase.View {
	return that.Called(ctx).Get(0).(*usecase.View)
}

func newTestServer(t *testing.T, game gameManager) http.Handler {
	t.Helper()

	_, st := suite.New(t)
	return New(st.Logger, &config.HTTP{}, game).Handler()
}

func postForm(handler http.Handler, path string, values url.Values) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodPost, path, strings.NewReader(values.Encode()))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")

	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)

	return rec
}

func postJSON(handler http.Handler, path, body string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodPost, path, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")

	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)

	return rec
}

func get(handler http.Handler, path string) *httptest.ResponseRecorder {
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, path, nil))

	return rec
}

func TestPing(t *testing.T) {
	handler := newTestServer(t, &mockGameManager{})

	rec := get(handler, "/ping")

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "pong", rec.Body.String())
}

func TestPage(t *testing.T) {
	t.Run("Renders the board, status and move list", func(t *testing.T) {
		// Given: a game where X won in the left column
		ctx, st := suite.New(t)
		st.Play(ctx, 0, 1, 3, 4, 6)
		handler := New(st.Logger, &config.HTTP{}, st.Game).Handler()

		// When: the page is requested
		rec := get(handler, "/")

		// Then: the status, every square and the move list are rendered
		require.Equal(t, http.StatusOK, rec.Code)
		body := rec.Body.String()
		assert.Contains(t, body, "Winner: X")
		assert.Equal(t, 9, strings.Count(body, `name="cell"`))
		assert.Equal(t, 3, strings.Count(body, "square winning"))
		assert.Contains(t, body, "Go to game start")
		assert.Contains(t, body, "Go to move #4")
		assert.Contains(t, body, "<span>You are at move #5</span>")
		assert.Contains(t, body, "Sort Moves")
	})

	t.Run("Unknown path is not found", func(t *testing.T) {
		handler := newTestServer(t, &mockGameManager{})

		rec := get(handler, "/nope")

		assert.Equal(t, http.StatusNotFound, rec.Code)
	})
}

func TestForms(t *testing.T) {
	t.Run("Play, jump and sort redirect back to the page", func(t *testing.T) {
		// Given: a real game behind the handlers
		ctx, st := suite.New(t)
		handler := New(st.Logger, &config.HTTP{}, st.Game).Handler()

		// When: X and O play through the form
		for _, cell := range []string{"4", "0", "8"} {
			rec := postForm(handler, "/play", url.Values{"cell": {cell}})
			require.Equal(t, http.StatusSeeOther, rec.Code)
			assert.Equal(t, "/", rec.Header().Get("Location"))
		}

		// Then: the moves are recorded
		assert.Equal(t, 3, st.Game.View(ctx).CurrentMove)

		// When: jumping back to move 1
		rec := postForm(handler, "/jump", url.Values{"move": {"1"}})
		require.Equal(t, http.StatusSeeOther, rec.Code)

		// Then: later moves are gone
		view := st.Game.View(ctx)
		assert.Equal(t, 1, view.CurrentMove)
		assert.Len(t, view.Moves, 2)

		// When: toggling the order
		rec = postForm(handler, "/sort", nil)
		require.Equal(t, http.StatusSeeOther, rec.Code)

		// Then: the list is reversed
		assert.False(t, st.Game.View(ctx).SortAscending)
	})

	t.Run("Clicking a filled cell still redirects", func(t *testing.T) {
		ctx, st := suite.New(t)
		st.Play(ctx, 4)
		handler := New(st.Logger, &config.HTTP{}, st.Game).Handler()

		rec := postForm(handler, "/play", url.Values{"cell": {"4"}})

		assert.Equal(t, http.StatusSeeOther, rec.Code)
		assert.Equal(t, 1, st.Game.View(ctx).CurrentMove)
	})

	t.Run("Non numeric cell is a bad request", func(t *testing.T) {
		game := &mockGameManager{}
		handler := newTestServer(t, game)

		rec := postForm(handler, "/play", url.Values{"cell": {"middle"}})

		assert.Equal(t, http.StatusBadRequest, rec.Code)
		game.AssertNotCalled(t, "PlayMove", mock.Anything, mock.Anything)
	})

	t.Run("Out of range move is a bad request", func(t *testing.T) {
		game := &mockGameManager{}
		game.On("JumpTo", mock.Anything, 7).
			Return((*usecase.View)(nil), fmt.Errorf("failed to jump: %w", apperror.ErrInvalidMove)).
			Once()
		handler := newTestServer(t, game)

		rec := postForm(handler, "/jump", url.Values{"move": {"7"}})

		assert.Equal(t, http.StatusBadRequest, rec.Code)
		game.AssertExpectations(t)
	})

	t.Run("Unexpected error is an internal error", func(t *testing.T) {
		game := &mockGameManager{}
		game.On("PlayMove", mock.Anything, 2).
			Return((*usecase.View)(nil), errSomeError).
			Once()
		handler := newTestServer(t, game)

		rec := postForm(handler, "/play", url.Values{"cell": {"2"}})

		assert.Equal(t, http.StatusInternalServerError, rec.Code)
		game.AssertExpectations(t)
	})
}

func TestAPI(t *testing.T) {
	t.Run("Plays, jumps and sorts through json", func(t *testing.T) {
		_, st := suite.New(t)
		handler := New(st.Logger, &config.HTTP{}, st.Game).Handler()

		// When: X plays the center
		rec := postJSON(handler, "/api/game/play", `{"cell": 4}`)
		require.Equal(t, http.StatusOK, rec.Code)

		// Then: the view is returned
		var view usecase.View
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &view))
		assert.Equal(t, 1, view.CurrentMove)
		assert.Equal(t, "Next player: O", view.Status)

		// When: jumping to the start
		rec = postJSON(handler, "/api/game/jump", `{"move": 0}`)
		require.Equal(t, http.StatusOK, rec.Code)
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &view))

		// Then: the board is empty again
		assert.Equal(t, 0, view.CurrentMove)
		assert.Zero(t, view.Board.Count())

		// When: toggling the order
		rec = postJSON(handler, "/api/game/sort", "")
		require.Equal(t, http.StatusOK, rec.Code)
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &view))
		assert.False(t, view.SortAscending)

		// And: reading the game returns the same state
		rec = get(handler, "/api/game")
		require.Equal(t, http.StatusOK, rec.Code)
		assert.Equal(t, "application/json", rec.Header().Get("Content-Type"))
		assert.Contains(t, rec.Body.String(), `"sort_ascending":false`)
	})

	t.Run("Missing cell is a bad request", func(t *testing.T) {
		game := &mockGameManager{}
		handler := newTestServer(t, game)

		rec := postJSON(handler, "/api/game/play", `{}`)

		assert.Equal(t, http.StatusBadRequest, rec.Code)
		assert.JSONEq(t, `{"error":"bad request"}`, rec.Body.String())
	})

	t.Run("Invalid cell is a bad request", func(t *testing.T) {
		game := &mockGameManager{}
		game.On("PlayMove", mock.Anything, 9).
			Return((*usecase.View)(nil), fmt.Errorf("failed to play move: %w", apperror.ErrInvalidCell)).
			Once()
		handler := newTestServer(t, game)

		rec := postJSON(handler, "/api/game/play", `{"cell": 9}`)

		assert.Equal(t, http.StatusBadRequest, rec.Code)
		assert.Contains(t, rec.Body.String(), "invalid cell index")
		game.AssertExpectations(t)
	})

	t.Run("Broken json is a bad request", func(t *testing.T) {
		handler := newTestServer(t, &mockGameManager{})

		rec := postJSON(handler, "/api/game/jump", `{"move":`)

		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})
}
