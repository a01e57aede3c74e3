package game

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/charmbracelet/log"
	"github.com/coder/quartz"
	"github.com/ladoblanco/blackjack-api/internal/types"
	"github.com/ladoblanco/blackjack-api/pkg/entities"
	gamerepo "github.com/ladoblanco/blackjack-api/pkg/repositories/game"
	"github.com/ladoblanco/blackjack-api/pkg/services/blackjack"
)

// minimumBet is the stake used to settle a game whose bet was never
// placed, such as a blackjack dealt on creation.
const minimumBet = 1

// Action is a player move in an open game
type Action string

const (
	ActionHit    Action = "HIT"
	ActionStand  Action = "STAND"
	ActionDouble Action = "DOUBLE"
)

// ParseAction converts a wire string into an Action
func ParseAction(s string) (Action, error) {
	switch Action(strings.ToUpper(strings.TrimSpace(s))) {
	case ActionHit:
		return ActionHit, nil
	case ActionStand:
		return ActionStand, nil
	case ActionDouble:
		return ActionDouble, nil
	default:
		return "", types.NewGameError(types.ErrCodeInvalidArgument, fmt.Sprintf("unsupported action %q", s))
	}
}

// PlayerService is the slice of the player service the game service
// needs for identity and settlement.
type PlayerService interface {
	FindOrCreate(ctx context.Context, name string) (*entities.Player, error)
	RecordWin(ctx context.Context, id int64, amount int64) error
	RecordLoss(ctx context.Context, id int64, amount int64) error
}

// Service drives the blackjack game lifecycle: creating games, playing
// moves, settling finished games against the player's balance and
// deleting games.
type Service struct {
	games   gamerepo.Repository
	players PlayerService
	logger  *log.Logger
	locks   *keyedLocks

	// overridable in tests
	clock   quartz.Clock
	newDeck func() *entities.Deck
}

// NewService creates a new game service
func NewService(games gamerepo.Repository, players PlayerService, logger *log.Logger) *Service {
	return &Service{
		games:   games,
		players: players,
		logger:  logger.WithPrefix("game"),
		locks:   newKeyedLocks(),
		clock:   quartz.NewReal(),
		newDeck: entities.NewShuffledDeck,
	}
}

// Create starts a game for the named player: a fresh shuffled deck,
// two cards each dealt alternately starting with the player. A dealt
// natural finishes the game immediately with PLAYER_BLACKJACK and pays
// three to two on the minimum stake, since no bet is placed yet.
func (s *Service) Create(ctx context.Context, playerName string) (*entities.Game, error) {
	p, err := s.players.FindOrCreate(ctx, playerName)
	if err != nil {
		return nil, err
	}

	g := entities.NewGame(p.ID, s.newDeck())
	now := s.clock.Now().UTC()
	g.CreatedAt = now
	g.UpdatedAt = now

	// Deal order: player, dealer, player, dealer
	for i := 0; i < 2; i++ {
		if err := g.DrawToPlayer(); err != nil {
			return nil, types.WrapError(types.ErrCodeInternal, "error dealing cards", err)
		}
		if err := g.DrawToDealer(); err != nil {
			return nil, types.WrapError(types.ErrCodeInternal, "error dealing cards", err)
		}
	}

	if blackjack.IsBlackjack(g.PlayerHand) {
		return s.endAndPersist(ctx, g, entities.OutcomePlayerBlackjack)
	}

	g, err = s.games.Save(ctx, g)
	if err != nil {
		return nil, types.WrapError(types.ErrCodeInternal, "error saving game", err)
	}

	s.logger.Info("created game", "id", g.ID, "player", p.Name)
	return g, nil
}

// Get returns the game with the given id
func (s *Service) Get(ctx context.Context, id string) (*entities.Game, error) {
	g, err := s.games.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, gamerepo.ErrGameNotFound) {
			return nil, types.NewGameError(types.ErrCodeNotFound, fmt.Sprintf("game %s not found", id))
		}
		return nil, types.WrapError(types.ErrCodeInternal, "error loading game", err)
	}
	return g, nil
}

// Play applies one action to an open game. The first play must carry a
// positive bet, which is locked in for the rest of the game; the bet on
// later plays is ignored. Plays against the same game are serialized.
func (s *Service) Play(ctx context.Context, id string, action Action, bet int64) (*entities.Game, error) {
	unlock := s.locks.Lock(id)
	defer unlock()

	g, err := s.Get(ctx, id)
	if err != nil {
		return nil, err
	}

	if g.IsFinished() {
		return nil, types.NewGameError(types.ErrCodeInvalidState, "game already finished")
	}

	// The bet is resolved before the action is applied, so an invalid
	// first bet rejects the whole move.
	if g.Bet == 0 {
		if bet <= 0 {
			return nil, types.NewGameError(types.ErrCodeInvalidArgument, "bet must be positive on first move")
		}
		g.Bet = bet
	}

	switch action {
	case ActionHit:
		return s.hit(ctx, g)
	case ActionStand:
		return s.stand(ctx, g)
	case ActionDouble:
		return s.double(ctx, g)
	default:
		return nil, types.NewGameError(types.ErrCodeInvalidArgument, fmt.Sprintf("unsupported action %q", action))
	}
}

// Delete removes a game regardless of its status
func (s *Service) Delete(ctx context.Context, id string) error {
	unlock := s.locks.Lock(id)
	defer unlock()

	if err := s.games.DeleteByID(ctx, id); err != nil {
		if errors.Is(err, gamerepo.ErrGameNotFound) {
			return types.NewGameError(types.ErrCodeNotFound, fmt.Sprintf("game %s not found", id))
		}
		return types.WrapError(types.ErrCodeInternal, "error deleting game", err)
	}

	s.locks.Forget(id)
	s.logger.Info("deleted game", "id", id)
	return nil
}

func (s *Service) hit(ctx context.Context, g *entities.Game) (*entities.Game, error) {
	if err := s.drawToPlayer(g); err != nil {
		return nil, err
	}

	if blackjack.IsBust(g.PlayerHand) {
		return s.endAndPersist(ctx, g, entities.OutcomeDealerWin)
	}

	g.UpdatedAt = s.clock.Now().UTC()
	g, err := s.games.Save(ctx, g)
	if err != nil {
		return nil, types.WrapError(types.ErrCodeInternal, "error saving game", err)
	}
	return g, nil
}

func (s *Service) stand(ctx context.Context, g *entities.Game) (*entities.Game, error) {
	if err := s.dealerPlay(g); err != nil {
		return nil, err
	}
	return s.endAndPersist(ctx, g, blackjack.DecideOutcome(g.PlayerHand, g.DealerHand))
}

// double doubles the bet, draws exactly one card for the player and
// ends the game. Only allowed while the player still holds the two
// dealt cards.
func (s *Service) double(ctx context.Context, g *entities.Game) (*entities.Game, error) {
	if len(g.PlayerHand) != 2 {
		return nil, types.NewGameError(types.ErrCodeInvalidState, "double only allowed on the first turn")
	}

	g.Bet *= 2
	if err := s.drawToPlayer(g); err != nil {
		return nil, err
	}

	if blackjack.IsBust(g.PlayerHand) {
		return s.endAndPersist(ctx, g, entities.OutcomeDealerWin)
	}

	if err := s.dealerPlay(g); err != nil {
		return nil, err
	}
	return s.endAndPersist(ctx, g, blackjack.DecideOutcome(g.PlayerHand, g.DealerHand))
}

func (s *Service) drawToPlayer(g *entities.Game) error {
	if err := g.DrawToPlayer(); err != nil {
		return types.WrapError(types.ErrCodeInvalidState, "cannot draw", err)
	}
	return nil
}

// dealerPlay draws dealer cards until the dealer stands on 17 or more
func (s *Service) dealerPlay(g *entities.Game) error {
	for blackjack.DealerShouldHit(g.DealerHand) {
		if err := g.DrawToDealer(); err != nil {
			return types.WrapError(types.ErrCodeInvalidState, "cannot draw", err)
		}
	}
	return nil
}

// endAndPersist finishes the game and settles it against the player's
// balance. The game is saved before the settlement so a settlement
// failure never loses the finished game state.
func (s *Service) endAndPersist(ctx context.Context, g *entities.Game, outcome entities.Outcome) (*entities.Game, error) {
	g.Status = entities.StatusFinished
	g.Outcome = outcome
	g.UpdatedAt = s.clock.Now().UTC()

	g, err := s.games.Save(ctx, g)
	if err != nil {
		return nil, types.WrapError(types.ErrCodeInternal, "error saving game", err)
	}

	bet := g.Bet
	if bet == 0 {
		bet = minimumBet
	}

	switch outcome {
	case entities.OutcomePlayerBlackjack:
		err = s.players.RecordWin(ctx, g.PlayerID, bet*3/2)
	case entities.OutcomePlayerWin:
		err = s.players.RecordWin(ctx, g.PlayerID, bet)
	case entities.OutcomeDealerWin:
		err = s.players.RecordLoss(ctx, g.PlayerID, bet)
	case entities.OutcomePush:
		// A push settles neither a win nor a loss
	}
	if err != nil {
		return nil, types.WrapError(types.ErrCodeInternal, "error settling game", err)
	}

	s.logger.Info("finished game", "id", g.ID, "outcome", outcome, "bet", g.Bet)
	return g, nil
}
