package entities

import "time"

// GameStatus represents the current state of a game
type GameStatus string

const (
	StatusPlayerTurn GameStatus = "PLAYER_TURN"
	StatusFinished   GameStatus = "FINISHED"
)

// Outcome represents the final result of a finished game. It is set
// exactly when Status is FINISHED and empty otherwise.
type Outcome string

const (
	OutcomePlayerWin       Outcome = "PLAYER_WIN"
	OutcomeDealerWin       Outcome = "DEALER_WIN"
	OutcomePush            Outcome = "PUSH"
	OutcomePlayerBlackjack Outcome = "PLAYER_BLACKJACK"
)

// String returns the string representation of the outcome
func (o Outcome) String() string {
	return string(o)
}

// IsWin returns true if this outcome pays the player
func (o Outcome) IsWin() bool {
	return o == OutcomePlayerWin || o == OutcomePlayerBlackjack
}

// Game is the aggregate for one blackjack hand. The deck, the player
// hand and the dealer hand are three disjoint sequences owned by the
// game: a draw pops the top of the deck and appends to exactly one
// hand, so their union always partitions the 52 cards dealt at start.
type Game struct {
	ID         string
	PlayerID   int64
	Deck       *Deck
	PlayerHand []*Card
	DealerHand []*Card
	Bet        int64
	Status     GameStatus
	Outcome    Outcome
	CreatedAt  time.Time
	UpdatedAt  time.Time
}

// NewGame creates a game for the given player with a full deck and
// empty hands. No cards are dealt and no bet is placed yet.
func NewGame(playerID int64, deck *Deck) *Game {
	return &Game{
		PlayerID:   playerID,
		Deck:       deck,
		PlayerHand: make([]*Card, 0, 8),
		DealerHand: make([]*Card, 0, 8),
		Status:     StatusPlayerTurn,
	}
}

// DrawToPlayer moves the top card of the deck into the player hand
func (g *Game) DrawToPlayer() error {
	card, err := g.Deck.Draw()
	if err != nil {
		return err
	}
	g.PlayerHand = append(g.PlayerHand, card)
	return nil
}

// DrawToDealer moves the top card of the deck into the dealer hand
func (g *Game) DrawToDealer() error {
	card, err := g.Deck.Draw()
	if err != nil {
		return err
	}
	g.DealerHand = append(g.DealerHand, card)
	return nil
}

// IsFinished returns true once the game has reached its terminal state
func (g *Game) IsFinished() bool {
	return g.Status == StatusFinished
}

// Clone returns a copy of the game with its own card sequences, so a
// stored game cannot be mutated through a previously returned pointer.
// Cards themselves are immutable and safe to share.
func (g *Game) Clone() *Game {
	clone := *g
	if g.Deck != nil {
		clone.Deck = &Deck{Cards: append([]*Card(nil), g.Deck.Cards...)}
	}
	clone.PlayerHand = append([]*Card(nil), g.PlayerHand...)
	clone.DealerHand = append([]*Card(nil), g.DealerHand...)
	return &clone
}
