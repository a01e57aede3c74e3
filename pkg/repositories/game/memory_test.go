package game

import (
	"context"
	"testing"

	"github.com/ladoblanco/blackjack-api/pkg/entities"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMemorySaveAssignsID(t *testing.T) {
	repo := NewMemoryRepository()

	g, err := repo.Save(context.Background(), entities.NewGame(1, entities.NewDeck()))
	require.NoError(t, err)
	assert.NotEmpty(t, g.ID)

	other, err := repo.Save(context.Background(), entities.NewGame(1, entities.NewDeck()))
	require.NoError(t, err)
	assert.NotEqual(t, g.ID, other.ID)
}

func TestMemoryFindByID(t *testing.T) {
	repo := NewMemoryRepository()

	g, err := repo.Save(context.Background(), entities.NewGame(1, entities.NewDeck()))
	require.NoError(t, err)

	found, err := repo.FindByID(context.Background(), g.ID)
	require.NoError(t, err)
	assert.Equal(t, g.ID, found.ID)
	assert.Equal(t, 52, found.Deck.Size())

	_, err = repo.FindByID(context.Background(), "missing")
	assert.ErrorIs(t, err, ErrGameNotFound)
}

func TestMemoryStoresCopies(t *testing.T) {
	repo := NewMemoryRepository()

	g, err := repo.Save(context.Background(), entities.NewGame(1, entities.NewDeck()))
	require.NoError(t, err)

	// Mutating a returned game must not leak into the store
	require.NoError(t, g.DrawToPlayer())

	stored, err := repo.FindByID(context.Background(), g.ID)
	require.NoError(t, err)
	assert.Empty(t, stored.PlayerHand)
	assert.Equal(t, 52, stored.Deck.Size())
}

func TestMemoryDeleteByID(t *testing.T) {
	repo := NewMemoryRepository()

	g, err := repo.Save(context.Background(), entities.NewGame(1, entities.NewDeck()))
	require.NoError(t, err)

	require.NoError(t, repo.DeleteByID(context.Background(), g.ID))

	_, err = repo.FindByID(context.Background(), g.ID)
	assert.ErrorIs(t, err, ErrGameNotFound)

	assert.ErrorIs(t, repo.DeleteByID(context.Background(), g.ID), ErrGameNotFound)
}

func TestGameDocumentRoundTrip(t *testing.T) {
	g := entities.NewGame(7, entities.NewShuffledDeck())
	require.NoError(t, g.DrawToPlayer())
	require.NoError(t, g.DrawToDealer())
	g.ID = "abc"
	g.Bet = 10
	g.Status = entities.StatusFinished
	g.Outcome = entities.OutcomePush

	got := toDocument(g).toEntity()

	assert.Equal(t, g.ID, got.ID)
	assert.Equal(t, g.PlayerID, got.PlayerID)
	assert.Equal(t, g.Bet, got.Bet)
	assert.Equal(t, g.Status, got.Status)
	assert.Equal(t, g.Outcome, got.Outcome)
	assert.Equal(t, g.Deck.Size(), got.Deck.Size())
	require.Len(t, got.PlayerHand, 1)
	assert.True(t, got.PlayerHand[0].Equals(g.PlayerHand[0]))
	require.Len(t, got.DealerHand, 1)
	assert.True(t, got.DealerHand[0].Equals(g.DealerHand[0]))
}
