package player

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/ladoblanco/blackjack-api/pkg/entities"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestSQLiteRepository(t *testing.T) *SQLiteRepository {
	t.Helper()

	repo, err := NewSQLiteRepository(filepath.Join(t.TempDir(), "players.db"))
	require.NoError(t, err)
	t.Cleanup(func() { _ = repo.Close() })
	return repo
}

func TestSQLiteSaveAndFind(t *testing.T) {
	repo := newTestSQLiteRepository(t)

	alice, err := repo.Save(context.Background(), entities.NewPlayer("alice"))
	require.NoError(t, err)
	assert.NotZero(t, alice.ID)

	byName, err := repo.FindByName(context.Background(), "alice")
	require.NoError(t, err)
	assert.Equal(t, alice.ID, byName.ID)
	assert.Equal(t, "alice", byName.Name)

	byID, err := repo.FindByID(context.Background(), alice.ID)
	require.NoError(t, err)
	assert.Equal(t, "alice", byID.Name)

	_, err = repo.FindByName(context.Background(), "bob")
	assert.ErrorIs(t, err, ErrPlayerNotFound)
}

func TestSQLiteUpdate(t *testing.T) {
	repo := newTestSQLiteRepository(t)

	alice, err := repo.Save(context.Background(), entities.NewPlayer("alice"))
	require.NoError(t, err)

	alice.RecordWin(10)
	alice.Name = "bob"
	_, err = repo.Save(context.Background(), alice)
	require.NoError(t, err)

	found, err := repo.FindByID(context.Background(), alice.ID)
	require.NoError(t, err)
	assert.Equal(t, "bob", found.Name)
	assert.Equal(t, 1, found.Wins)
	assert.Equal(t, int64(10), found.Balance)
}

func TestSQLiteUpdateUnknownPlayer(t *testing.T) {
	repo := newTestSQLiteRepository(t)

	ghost := entities.NewPlayer("ghost")
	ghost.ID = 42
	_, err := repo.Save(context.Background(), ghost)
	assert.ErrorIs(t, err, ErrPlayerNotFound)
}

func TestSQLiteTopByWins(t *testing.T) {
	repo := newTestSQLiteRepository(t)

	for _, p := range []struct {
		name string
		wins int
	}{{"alice", 2}, {"bob", 5}, {"carol", 3}} {
		player := entities.NewPlayer(p.name)
		player.Wins = p.wins
		_, err := repo.Save(context.Background(), player)
		require.NoError(t, err)
	}

	top, err := repo.TopByWins(context.Background(), 2)
	require.NoError(t, err)
	require.Len(t, top, 2)
	assert.Equal(t, "bob", top[0].Name)
	assert.Equal(t, "carol", top[1].Name)
}

func TestSQLiteSurvivesReopen(t *testing.T) {
	dbPath := filepath.Join(t.TempDir(), "players.db")

	repo, err := NewSQLiteRepository(dbPath)
	require.NoError(t, err)
	alice, err := repo.Save(context.Background(), entities.NewPlayer("alice"))
	require.NoError(t, err)
	require.NoError(t, repo.Close())

	reopened, err := NewSQLiteRepository(dbPath)
	require.NoError(t, err)
	defer reopened.Close()

	found, err := reopened.FindByID(context.Background(), alice.ID)
	require.NoError(t, err)
	assert.Equal(t, "alice", found.Name)
}
