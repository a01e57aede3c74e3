package game

import (
	"context"
	"sync"

	"github.com/google/uuid"
	"github.com/ladoblanco/blackjack-api/pkg/entities"
)

// MemoryRepository implements Repository with in-memory storage
type MemoryRepository struct {
	mu sync.RWMutex
	// Map of game ID to game
	games map[string]*entities.Game
}

// NewMemoryRepository creates a new in-memory repository
func NewMemoryRepository() *MemoryRepository {
	return &MemoryRepository{
		games: make(map[string]*entities.Game),
	}
}

// Save stores a snapshot of the game, assigning an id on first save
func (r *MemoryRepository) Save(ctx context.Context, g *entities.Game) (*entities.Game, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if g.ID == "" {
		g.ID = uuid.New().String()
	}

	// Store a copy so later mutations of the caller's game do not leak
	// into the repository.
	r.games[g.ID] = g.Clone()
	return g, nil
}

// FindByID retrieves a copy of the stored game
func (r *MemoryRepository) FindByID(ctx context.Context, id string) (*entities.Game, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	g, exists := r.games[id]
	if !exists {
		return nil, ErrGameNotFound
	}
	return g.Clone(), nil
}

// DeleteByID removes a stored game
func (r *MemoryRepository) DeleteByID(ctx context.Context, id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.games[id]; !exists {
		return ErrGameNotFound
	}
	delete(r.games, id)
	return nil
}

// Close is a no-op for memory repository since there are no resources to close
func (r *MemoryRepository) Close() error {
	return nil
}
