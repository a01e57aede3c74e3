package player

import (
	"context"
	"testing"

	"github.com/ladoblanco/blackjack-api/pkg/entities"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMemorySaveAssignsID(t *testing.T) {
	repo := NewMemoryRepository()

	alice, err := repo.Save(context.Background(), entities.NewPlayer("alice"))
	require.NoError(t, err)
	assert.Equal(t, int64(1), alice.ID)

	bob, err := repo.Save(context.Background(), entities.NewPlayer("bob"))
	require.NoError(t, err)
	assert.Equal(t, int64(2), bob.ID)
}

func TestMemoryFind(t *testing.T) {
	repo := NewMemoryRepository()

	alice, err := repo.Save(context.Background(), entities.NewPlayer("alice"))
	require.NoError(t, err)

	byName, err := repo.FindByName(context.Background(), "alice")
	require.NoError(t, err)
	assert.Equal(t, alice.ID, byName.ID)

	byID, err := repo.FindByID(context.Background(), alice.ID)
	require.NoError(t, err)
	assert.Equal(t, "alice", byID.Name)

	_, err = repo.FindByName(context.Background(), "bob")
	assert.ErrorIs(t, err, ErrPlayerNotFound)
	_, err = repo.FindByID(context.Background(), 42)
	assert.ErrorIs(t, err, ErrPlayerNotFound)
}

func TestMemoryRenameUpdatesNameIndex(t *testing.T) {
	repo := NewMemoryRepository()

	alice, err := repo.Save(context.Background(), entities.NewPlayer("alice"))
	require.NoError(t, err)

	alice.Name = "bob"
	_, err = repo.Save(context.Background(), alice)
	require.NoError(t, err)

	_, err = repo.FindByName(context.Background(), "alice")
	assert.ErrorIs(t, err, ErrPlayerNotFound)

	found, err := repo.FindByName(context.Background(), "bob")
	require.NoError(t, err)
	assert.Equal(t, alice.ID, found.ID)
}

func TestMemoryTopByWins(t *testing.T) {
	repo := NewMemoryRepository()

	for _, p := range []struct {
		name string
		wins int
	}{{"alice", 2}, {"bob", 5}, {"carol", 2}} {
		player := entities.NewPlayer(p.name)
		player.Wins = p.wins
		_, err := repo.Save(context.Background(), player)
		require.NoError(t, err)
	}

	top, err := repo.TopByWins(context.Background(), 2)
	require.NoError(t, err)
	require.Len(t, top, 2)
	assert.Equal(t, "bob", top[0].Name)
	// Ties break by id, so alice was inserted first
	assert.Equal(t, "alice", top[1].Name)
}
