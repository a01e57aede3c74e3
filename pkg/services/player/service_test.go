package player

import (
	"context"
	"errors"
	"io"
	"testing"

	"github.com/charmbracelet/log"
	"github.com/ladoblanco/blackjack-api/internal/types"
	"github.com/ladoblanco/blackjack-api/pkg/entities"
	playerrepo "github.com/ladoblanco/blackjack-api/pkg/repositories/player"
	mock_player "github.com/ladoblanco/blackjack-api/pkg/repositories/player/mock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func newTestService() *Service {
	return NewService(playerrepo.NewMemoryRepository(), log.New(io.Discard))
}

func TestFindOrCreate(t *testing.T) {
	s := newTestService()

	p, err := s.FindOrCreate(context.Background(), "alice")
	require.NoError(t, err)
	assert.NotZero(t, p.ID)
	assert.Equal(t, "alice", p.Name)
	assert.Zero(t, p.GamesPlayed)

	// Finding again returns the same player
	again, err := s.FindOrCreate(context.Background(), "alice")
	require.NoError(t, err)
	assert.Equal(t, p.ID, again.ID)
}

func TestFindOrCreateEmptyName(t *testing.T) {
	s := newTestService()

	for _, name := range []string{"", "   "} {
		_, err := s.FindOrCreate(context.Background(), name)
		require.Error(t, err)
		assert.True(t, types.IsGameError(err, types.ErrCodeInvalidArgument))
	}
}

func TestRename(t *testing.T) {
	s := newTestService()

	p, err := s.FindOrCreate(context.Background(), "alice")
	require.NoError(t, err)

	renamed, err := s.Rename(context.Background(), p.ID, "bob")
	require.NoError(t, err)
	assert.Equal(t, p.ID, renamed.ID)
	assert.Equal(t, "bob", renamed.Name)

	// The new name resolves to the same player, the old one is free
	same, err := s.FindOrCreate(context.Background(), "bob")
	require.NoError(t, err)
	assert.Equal(t, p.ID, same.ID)
	fresh, err := s.FindOrCreate(context.Background(), "alice")
	require.NoError(t, err)
	assert.NotEqual(t, p.ID, fresh.ID)
}

func TestRenameUnknownPlayer(t *testing.T) {
	s := newTestService()

	_, err := s.Rename(context.Background(), 42, "bob")
	require.Error(t, err)
	assert.True(t, types.IsGameError(err, types.ErrCodeNotFound))
}

func TestRenameEmptyName(t *testing.T) {
	s := newTestService()

	p, err := s.FindOrCreate(context.Background(), "alice")
	require.NoError(t, err)

	_, err = s.Rename(context.Background(), p.ID, " ")
	require.Error(t, err)
	assert.True(t, types.IsGameError(err, types.ErrCodeInvalidArgument))
}

func TestRecordWinAndLoss(t *testing.T) {
	s := newTestService()

	p, err := s.FindOrCreate(context.Background(), "alice")
	require.NoError(t, err)

	require.NoError(t, s.RecordWin(context.Background(), p.ID, 10))
	require.NoError(t, s.RecordWin(context.Background(), p.ID, 5))
	require.NoError(t, s.RecordLoss(context.Background(), p.ID, 3))

	p, err = s.Get(context.Background(), p.ID)
	require.NoError(t, err)
	assert.Equal(t, 2, p.Wins)
	assert.Equal(t, 1, p.Losses)
	assert.Equal(t, 3, p.GamesPlayed)
	assert.Equal(t, int64(12), p.Balance)
}

func TestRecordWinUnknownPlayer(t *testing.T) {
	s := newTestService()

	err := s.RecordWin(context.Background(), 42, 10)
	require.Error(t, err)
	assert.True(t, types.IsGameError(err, types.ErrCodeNotFound))
}

func TestRanking(t *testing.T) {
	s := newTestService()

	names := []string{"alice", "bob", "carol"}
	wins := map[string]int{"alice": 2, "bob": 5, "carol": 3}
	for _, name := range names {
		p, err := s.FindOrCreate(context.Background(), name)
		require.NoError(t, err)
		for i := 0; i < wins[name]; i++ {
			require.NoError(t, s.RecordWin(context.Background(), p.ID, 1))
		}
	}

	ranked, err := s.Ranking(context.Background())
	require.NoError(t, err)
	require.Len(t, ranked, 3)
	assert.Equal(t, "bob", ranked[0].Name)
	assert.Equal(t, "carol", ranked[1].Name)
	assert.Equal(t, "alice", ranked[2].Name)
}

func TestRankingCapped(t *testing.T) {
	ctrl := gomock.NewController(t)
	repo := mock_player.NewMockRepository(ctrl)
	repo.EXPECT().TopByWins(gomock.Any(), rankingSize).Return([]*entities.Player{}, nil)

	s := NewService(repo, log.New(io.Discard))
	_, err := s.Ranking(context.Background())
	require.NoError(t, err)
}

func TestRepositoryFailuresAreInternal(t *testing.T) {
	ctrl := gomock.NewController(t)
	repo := mock_player.NewMockRepository(ctrl)
	boom := errors.New("boom")

	repo.EXPECT().FindByName(gomock.Any(), "alice").Return(nil, boom)
	repo.EXPECT().TopByWins(gomock.Any(), gomock.Any()).Return(nil, boom)

	s := NewService(repo, log.New(io.Discard))

	_, err := s.FindOrCreate(context.Background(), "alice")
	require.Error(t, err)
	assert.True(t, types.IsGameError(err, types.ErrCodeInternal))

	_, err = s.Ranking(context.Background())
	require.Error(t, err)
	assert.True(t, types.IsGameError(err, types.ErrCodeInternal))
}
