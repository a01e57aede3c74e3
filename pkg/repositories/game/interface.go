package game

import (
	"context"
	"errors"

	"github.com/ladoblanco/blackjack-api/pkg/entities"
)

// ErrGameNotFound is returned when no game exists for the given id
var ErrGameNotFound = errors.New("game not found")

// Repository defines storage operations for game aggregates
type Repository interface {
	// Save inserts or overwrites a game by id. A game saved without an
	// id is assigned one, and the stored game is returned.
	Save(ctx context.Context, g *entities.Game) (*entities.Game, error)

	// FindByID retrieves a game by id, or ErrGameNotFound
	FindByID(ctx context.Context, id string) (*entities.Game, error)

	// DeleteByID removes a game by id, or ErrGameNotFound if absent
	DeleteByID(ctx context.Context, id string) error

	// Close closes any resources used by the repository
	Close() error
}
