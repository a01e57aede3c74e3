package game

import (
	"time"

	"github.com/ladoblanco/blackjack-api/pkg/entities"
)

// GameDocument is the Elasticsearch document shape for a game
type GameDocument struct {
	ID         string         `json:"id"`
	PlayerID   int64          `json:"player_id"`
	Deck       []CardDocument `json:"deck"`
	PlayerHand []CardDocument `json:"player_hand"`
	DealerHand []CardDocument `json:"dealer_hand"`
	Bet        int64          `json:"bet"`
	Status     string         `json:"status"`
	Outcome    string         `json:"outcome,omitempty"`
	CreatedAt  time.Time      `json:"created_at"`
	UpdatedAt  time.Time      `json:"updated_at"`
}

// CardDocument is the stored shape of a single card
type CardDocument struct {
	Suit string `json:"suit"`
	Rank string `json:"rank"`
}

func toDocument(g *entities.Game) *GameDocument {
	doc := &GameDocument{
		ID:         g.ID,
		PlayerID:   g.PlayerID,
		PlayerHand: toCardDocuments(g.PlayerHand),
		DealerHand: toCardDocuments(g.DealerHand),
		Bet:        g.Bet,
		Status:     string(g.Status),
		Outcome:    string(g.Outcome),
		CreatedAt:  g.CreatedAt,
		UpdatedAt:  g.UpdatedAt,
	}
	if g.Deck != nil {
		doc.Deck = toCardDocuments(g.Deck.Cards)
	}
	return doc
}

func (d *GameDocument) toEntity() *entities.Game {
	return &entities.Game{
		ID:         d.ID,
		PlayerID:   d.PlayerID,
		Deck:       &entities.Deck{Cards: toCards(d.Deck)},
		PlayerHand: toCards(d.PlayerHand),
		DealerHand: toCards(d.DealerHand),
		Bet:        d.Bet,
		Status:     entities.GameStatus(d.Status),
		Outcome:    entities.Outcome(d.Outcome),
		CreatedAt:  d.CreatedAt,
		UpdatedAt:  d.UpdatedAt,
	}
}

func toCardDocuments(cards []*entities.Card) []CardDocument {
	docs := make([]CardDocument, 0, len(cards))
	for _, card := range cards {
		docs = append(docs, CardDocument{Suit: string(card.Suit), Rank: string(card.Rank)})
	}
	return docs
}

func toCards(docs []CardDocument) []*entities.Card {
	cards := make([]*entities.Card, 0, len(docs))
	for _, doc := range docs {
		cards = append(cards, entities.NewCard(entities.Suit(doc.Suit), entities.Rank(doc.Rank)))
	}
	return cards
}
