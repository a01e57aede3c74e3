package player

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/charmbracelet/log"
	"github.com/ladoblanco/blackjack-api/internal/types"
	"github.com/ladoblanco/blackjack-api/pkg/entities"
	playerrepo "github.com/ladoblanco/blackjack-api/pkg/repositories/player"
)

// rankingSize caps the number of players returned by Ranking
const rankingSize = 20

// Service manages player accounts and their lifetime tallies
type Service struct {
	repo   playerrepo.Repository
	logger *log.Logger
}

// NewService creates a new player service
func NewService(repo playerrepo.Repository, logger *log.Logger) *Service {
	return &Service{
		repo:   repo,
		logger: logger.WithPrefix("player"),
	}
}

// FindOrCreate returns the player with the given name, creating one
// with zero stats when none exists yet.
func (s *Service) FindOrCreate(ctx context.Context, name string) (*entities.Player, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, types.NewGameError(types.ErrCodeInvalidArgument, "player name must not be empty")
	}

	p, err := s.repo.FindByName(ctx, name)
	if err == nil {
		return p, nil
	}
	if !errors.Is(err, playerrepo.ErrPlayerNotFound) {
		return nil, types.WrapError(types.ErrCodeInternal, "error looking up player", err)
	}

	p, err = s.repo.Save(ctx, entities.NewPlayer(name))
	if err != nil {
		return nil, types.WrapError(types.ErrCodeInternal, "error creating player", err)
	}

	s.logger.Info("created player", "id", p.ID, "name", p.Name)
	return p, nil
}

// Get returns the player with the given id
func (s *Service) Get(ctx context.Context, id int64) (*entities.Player, error) {
	p, err := s.repo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, playerrepo.ErrPlayerNotFound) {
			return nil, types.NewGameError(types.ErrCodeNotFound, fmt.Sprintf("player %d not found", id))
		}
		return nil, types.WrapError(types.ErrCodeInternal, "error looking up player", err)
	}
	return p, nil
}

// Rename changes a player's name, keeping their stats
func (s *Service) Rename(ctx context.Context, id int64, newName string) (*entities.Player, error) {
	newName = strings.TrimSpace(newName)
	if newName == "" {
		return nil, types.NewGameError(types.ErrCodeInvalidArgument, "player name must not be empty")
	}

	p, err := s.Get(ctx, id)
	if err != nil {
		return nil, err
	}

	p.Name = newName
	p, err = s.repo.Save(ctx, p)
	if err != nil {
		return nil, types.WrapError(types.ErrCodeInternal, "error renaming player", err)
	}

	s.logger.Info("renamed player", "id", p.ID, "name", p.Name)
	return p, nil
}

// RecordWin credits a settled win of the given amount to the player
func (s *Service) RecordWin(ctx context.Context, id int64, amount int64) error {
	p, err := s.Get(ctx, id)
	if err != nil {
		return err
	}

	p.RecordWin(amount)
	if _, err := s.repo.Save(ctx, p); err != nil {
		return types.WrapError(types.ErrCodeInternal, "error recording win", err)
	}

	s.logger.Debug("recorded win", "id", id, "amount", amount, "balance", p.Balance)
	return nil
}

// RecordLoss debits a settled loss of the given amount from the player
func (s *Service) RecordLoss(ctx context.Context, id int64, amount int64) error {
	p, err := s.Get(ctx, id)
	if err != nil {
		return err
	}

	p.RecordLoss(amount)
	if _, err := s.repo.Save(ctx, p); err != nil {
		return types.WrapError(types.ErrCodeInternal, "error recording loss", err)
	}

	s.logger.Debug("recorded loss", "id", id, "amount", amount, "balance", p.Balance)
	return nil
}

// Ranking returns the top players ordered by wins
func (s *Service) Ranking(ctx context.Context) ([]*entities.Player, error) {
	players, err := s.repo.TopByWins(ctx, rankingSize)
	if err != nil {
		return nil, types.WrapError(types.ErrCodeInternal, "error loading ranking", err)
	}
	return players, nil
}
