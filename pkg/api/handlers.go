package api

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/ladoblanco/blackjack-api/internal/types"
	gamesvc "github.com/ladoblanco/blackjack-api/pkg/services/game"
)

func (s *Server) handleNewGame(w http.ResponseWriter, r *http.Request) {
	var req NewGameRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		s.writeError(w, r, types.NewGameError(types.ErrCodeInvalidArgument, "invalid request body"))
		return
	}

	g, err := s.games.Create(r.Context(), req.PlayerName)
	if err != nil {
		s.writeError(w, r, err)
		return
	}

	s.writeJSON(w, http.StatusCreated, toGameResponse(g))
}

func (s *Server) handleGetGame(w http.ResponseWriter, r *http.Request) {
	g, err := s.games.Get(r.Context(), r.PathValue("id"))
	if err != nil {
		s.writeError(w, r, err)
		return
	}

	s.writeJSON(w, http.StatusOK, toGameResponse(g))
}

func (s *Server) handlePlay(w http.ResponseWriter, r *http.Request) {
	var req PlayRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		s.writeError(w, r, types.NewGameError(types.ErrCodeInvalidArgument, "invalid request body"))
		return
	}

	action, err := gamesvc.ParseAction(req.Action)
	if err != nil {
		s.writeError(w, r, err)
		return
	}

	g, err := s.games.Play(r.Context(), r.PathValue("id"), action, req.Bet)
	if err != nil {
		s.writeError(w, r, err)
		return
	}

	s.writeJSON(w, http.StatusOK, toGameResponse(g))
}

func (s *Server) handleDeleteGame(w http.ResponseWriter, r *http.Request) {
	if err := s.games.Delete(r.Context(), r.PathValue("id")); err != nil {
		s.writeError(w, r, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

func (s *Server) handleRenamePlayer(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.ParseInt(r.PathValue("playerId"), 10, 64)
	if err != nil {
		s.writeError(w, r, types.NewGameError(types.ErrCodeInvalidArgument, "player id must be an integer"))
		return
	}

	var req PlayerRenameRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		s.writeError(w, r, types.NewGameError(types.ErrCodeInvalidArgument, "invalid request body"))
		return
	}

	p, err := s.players.Rename(r.Context(), id, req.NewName)
	if err != nil {
		s.writeError(w, r, err)
		return
	}

	s.writeJSON(w, http.StatusOK, toPlayerResponse(p))
}

func (s *Server) handleRanking(w http.ResponseWriter, r *http.Request) {
	players, err := s.players.Ranking(r.Context())
	if err != nil {
		s.writeError(w, r, err)
		return
	}

	s.writeJSON(w, http.StatusOK, toPlayerResponses(players))
}

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	s.writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

func (s *Server) writeJSON(w http.ResponseWriter, status int, body any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(body); err != nil {
		s.logger.Error("error encoding response", "error", err)
	}
}

// writeError maps the error code to an HTTP status and writes the
// standard error envelope.
func (s *Server) writeError(w http.ResponseWriter, r *http.Request, err error) {
	var status int
	switch types.CodeOf(err) {
	case types.ErrCodeNotFound:
		status = http.StatusNotFound
	case types.ErrCodeInvalidArgument, types.ErrCodeInvalidState:
		status = http.StatusBadRequest
	default:
		status = http.StatusInternalServerError
		s.logger.Error("internal error", "path", r.URL.Path, "error", err)
	}

	message := err.Error()
	var gameErr *types.GameError
	if errors.As(err, &gameErr) {
		message = gameErr.Message
	}

	s.writeJSON(w, status, &APIError{
		Timestamp: time.Now().UTC(),
		Status:    status,
		Error:     http.StatusText(status),
		Message:   message,
		Path:      r.URL.Path,
	})
}
