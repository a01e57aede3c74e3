package player

import (
	"context"
	"errors"

	"github.com/ladoblanco/blackjack-api/pkg/entities"
)

//go:generate mockgen -source=$GOFILE -destination=mock/mock.go -package=mock_player

// ErrPlayerNotFound is returned when no player matches the lookup
var ErrPlayerNotFound = errors.New("player not found")

// Repository defines the interface for player data operations
type Repository interface {
	// FindByName retrieves a player by their unique name
	FindByName(ctx context.Context, name string) (*entities.Player, error)

	// FindByID retrieves a player by id
	FindByID(ctx context.Context, id int64) (*entities.Player, error)

	// Save creates or updates a player, assigning an id on insert
	Save(ctx context.Context, p *entities.Player) (*entities.Player, error)

	// TopByWins returns up to limit players ordered by wins descending
	TopByWins(ctx context.Context, limit int) ([]*entities.Player, error)

	// Close closes any resources used by the repository
	Close() error
}
