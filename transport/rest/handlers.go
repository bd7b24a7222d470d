package rest

import (
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/rocketscienceinc/tictactoe-timetravel/internal/apperror"
	"github.com/rocketscienceinc/tictactoe-timetravel/internal/usecase"
)

var errBadRequest = errors.New("bad request")

type gameManager interface {
	PlayMove(ctx context.Context, cell int) (*usecase.View, error)
	JumpTo(ctx context.Context, move int) (*usecase.View, error)
	ToggleSort(ctx context.Context) *usecase.View
	View(ctx context.Context) *usecase.View
}

type handlers struct {
	logger *slog.Logger
	game   gameManager
}

type playRequest struct {
	Cell *int `json:"cell"`
}

type jumpRequest struct {
	Move *int `json:"move"`
}

type errorResponse struct {
	Error string `json:"error"`
}

func newHandlers(logger *slog.Logger, game gameManager) *handlers {
	return &handlers{
		logger: logger.With("component", "rest"),
		game:   game,
	}
}

func (that *handlers) page(w http.ResponseWriter, r *http.Request) {
	log := that.logger.With("method", "page")

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	if err := pageTemplate.Execute(w, that.game.View(r.Context())); err != nil {
		log.Error("failed to render page", "error", err)
	}
}

func (that *handlers) playForm(w http.ResponseWriter, r *http.Request) {
	cell, err := strconv.Atoi(r.FormValue("cell"))
	if err != nil {
		http.Error(w, "invalid cell", http.StatusBadRequest)
		return
	}

	if _, err = that.game.PlayMove(r.Context(), cell); err != nil {
		that.writeFormError(w, "playForm", err)
		return
	}

	http.Redirect(w, r, "/", http.StatusSeeOther)
}

func (that *handlers) jumpForm(w http.ResponseWriter, r *http.Request) {
	move, err := strconv.Atoi(r.FormValue("move"))
	if err != nil {
		http.Error(w, "invalid move", http.StatusBadRequest)
		return
	}

	if _, err = that.game.JumpTo(r.Context(), move); err != nil {
		that.writeFormError(w, "jumpForm", err)
		return
	}

	http.Redirect(w, r, "/", http.StatusSeeOther)
}

func (that *handlers) sortForm(w http.ResponseWriter, r *http.Request) {
	that.game.ToggleSort(r.Context())

	http.Redirect(w, r, "/", http.StatusSeeOther)
}

func (that *handlers) getGame(w http.ResponseWriter, r *http.Request) {
	that.writeJSON(w, http.StatusOK, that.game.View(r.Context()))
}

func (that *handlers) playJSON(w http.ResponseWriter, r *http.Request) {
	var req playRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil || req.Cell == nil {
		that.writeJSONError(w, "playJSON", errBadRequest)
		return
	}

	view, err := that.game.PlayMove(r.Context(), *req.Cell)
	if err != nil {
		that.writeJSONError(w, "playJSON", err)
		return
	}

	that.writeJSON(w, http.StatusOK, view)
}

func (that *handlers) jumpJSON(w http.ResponseWriter, r *http.Request) {
	var req jumpRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil || req.Move == nil {
		that.writeJSONError(w, "jumpJSON", errBadRequest)
		return
	}

	view, err := that.game.JumpTo(r.Context(), *req.Move)
	if err != nil {
		that.writeJSONError(w, "jumpJSON", err)
		return
	}

	that.writeJSON(w, http.StatusOK, view)
}

func (that *handlers) sortJSON(w http.ResponseWriter, r *http.Request) {
	that.writeJSON(w, http.StatusOK, that.game.ToggleSort(r.Context()))
}

func (that *handlers) writeFormError(w http.ResponseWriter, method string, err error) {
	status := statusFor(err)
	if status == http.StatusInternalServerError {
		that.logger.Error("failed to handle intent", "method", method, "error", err)
	}

	http.Error(w, err.Error(), status)
}

func (that *handlers) writeJSONError(w http.ResponseWriter, method string, err error) {
	status := statusFor(err)
	if status == http.StatusInternalServerError {
		that.logger.Error("failed to handle intent", "method", method, "error", err)
	}

	that.writeJSON(w, status, errorResponse{Error: err.Error()})
}

func (that *handlers) writeJSON(w http.ResponseWriter, status int, body any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)

	if err := json.NewEncoder(w).Encode(body); err != nil {
		that.logger.Error("failed to encode response", "error", err)
	}
}

func statusFor(err error) int {
	switch {
	case errors.Is(err, errBadRequest),
		errors.Is(err, apperror.ErrInvalidCell),
		errors.Is(err, apperror.ErrInvalidMove):
		return http.StatusBadRequest
	default:
		return http.StatusInternalServerError
	}
}
