package api

import (
	"time"

	"github.com/ladoblanco/blackjack-api/pkg/entities"
	"github.com/ladoblanco/blackjack-api/pkg/services/blackjack"
)

// NewGameRequest is the body for POST /game/new
type NewGameRequest struct {
	PlayerName string `json:"playerName"`
}

// PlayRequest is the body for POST /game/{id}/play
type PlayRequest struct {
	Action string `json:"action"`
	Bet    int64  `json:"bet"`
}

// PlayerRenameRequest is the body for PUT /player/{playerId}
type PlayerRenameRequest struct {
	NewName string `json:"newName"`
}

// CardResponse is the wire shape of a single card
type CardResponse struct {
	Suit string `json:"suit"`
	Rank string `json:"rank"`
}

// GameResponse is the wire shape of a game. The deck is never exposed:
// clients see only the dealt hands and their derived totals.
type GameResponse struct {
	ID          string         `json:"id"`
	PlayerID    int64          `json:"playerId"`
	PlayerHand  []CardResponse `json:"playerHand"`
	DealerHand  []CardResponse `json:"dealerHand"`
	PlayerTotal int            `json:"playerTotal"`
	DealerTotal int            `json:"dealerTotal"`
	Bet         int64          `json:"bet"`
	Status      string         `json:"status"`
	Outcome     string         `json:"outcome,omitempty"`
	CreatedAt   time.Time      `json:"createdAt"`
	UpdatedAt   time.Time      `json:"updatedAt"`
}

// PlayerResponse is the wire shape of a player
type PlayerResponse struct {
	ID          int64  `json:"id"`
	Name        string `json:"name"`
	GamesPlayed int    `json:"gamesPlayed"`
	Wins        int    `json:"wins"`
	Losses      int    `json:"losses"`
	Balance     int64  `json:"balance"`
}

// APIError is the wire shape of every error response
type APIError struct {
	Timestamp time.Time `json:"timestamp"`
	Status    int       `json:"status"`
	Error     string    `json:"error"`
	Message   string    `json:"message"`
	Path      string    `json:"path"`
}

func toGameResponse(g *entities.Game) *GameResponse {
	return &GameResponse{
		ID:          g.ID,
		PlayerID:    g.PlayerID,
		PlayerHand:  toCardResponses(g.PlayerHand),
		DealerHand:  toCardResponses(g.DealerHand),
		PlayerTotal: blackjack.BestScore(g.PlayerHand),
		DealerTotal: blackjack.BestScore(g.DealerHand),
		Bet:         g.Bet,
		Status:      string(g.Status),
		Outcome:     string(g.Outcome),
		CreatedAt:   g.CreatedAt,
		UpdatedAt:   g.UpdatedAt,
	}
}

func toCardResponses(cards []*entities.Card) []CardResponse {
	out := make([]CardResponse, 0, len(cards))
	for _, card := range cards {
		out = append(out, CardResponse{Suit: string(card.Suit), Rank: string(card.Rank)})
	}
	return out
}

func toPlayerResponse(p *entities.Player) *PlayerResponse {
	return &PlayerResponse{
		ID:          p.ID,
		Name:        p.Name,
		GamesPlayed: p.GamesPlayed,
		Wins:        p.Wins,
		Losses:      p.Losses,
		Balance:     p.Balance,
	}
}

func toPlayerResponses(players []*entities.Player) []*PlayerResponse {
	out := make([]*PlayerResponse, 0, len(players))
	for _, p := range players {
		out = append(out, toPlayerResponse(p))
	}
	return out
}
