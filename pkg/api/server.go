package api

import (
	"context"
	"net/http"
	"time"

	"github.com/charmbracelet/log"
	gamesvc "github.com/ladoblanco/blackjack-api/pkg/services/game"
	playersvc "github.com/ladoblanco/blackjack-api/pkg/services/player"
)

// Server exposes the game and player services over HTTP
type Server struct {
	httpServer *http.Server
	games      *gamesvc.Service
	players    *playersvc.Service
	logger     *log.Logger
}

// NewServer creates a server listening on addr
func NewServer(addr string, games *gamesvc.Service, players *playersvc.Service, logger *log.Logger) *Server {
	s := &Server{
		games:   games,
		players: players,
		logger:  logger.WithPrefix("http"),
	}

	mux := http.NewServeMux()
	mux.HandleFunc("POST /game/new", s.handleNewGame)
	mux.HandleFunc("GET /game/{id}", s.handleGetGame)
	mux.HandleFunc("POST /game/{id}/play", s.handlePlay)
	mux.HandleFunc("DELETE /game/{id}/delete", s.handleDeleteGame)
	mux.HandleFunc("PUT /player/{playerId}", s.handleRenamePlayer)
	mux.HandleFunc("GET /player/ranking", s.handleRanking)
	mux.HandleFunc("GET /health", s.handleHealth)

	s.httpServer = &http.Server{
		Addr:         addr,
		Handler:      mux,
		ReadTimeout:  10 * time.Second,
		WriteTimeout: 10 * time.Second,
	}

	return s
}

// Start runs the server until it is shut down
func (s *Server) Start() error {
	s.logger.Info("listening", "addr", s.httpServer.Addr)
	return s.httpServer.ListenAndServe()
}

// Shutdown drains in-flight requests and stops the server
func (s *Server) Shutdown(ctx context.Context) error {
	return s.httpServer.Shutdown(ctx)
}

// Handler exposes the routing table for tests
func (s *Server) Handler() http.Handler {
	return s.httpServer.Handler
}
