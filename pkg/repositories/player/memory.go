package player

import (
	"context"
	"sort"
	"sync"

	"github.com/ladoblanco/blackjack-api/pkg/entities"
)

// MemoryRepository implements Repository with in-memory storage
type MemoryRepository struct {
	mu sync.RWMutex
	// Map of player ID to player
	players map[int64]*entities.Player
	// Map of name to player ID
	byName map[string]int64
	nextID int64
}

// NewMemoryRepository creates a new in-memory repository
func NewMemoryRepository() *MemoryRepository {
	return &MemoryRepository{
		players: make(map[int64]*entities.Player),
		byName:  make(map[string]int64),
	}
}

// FindByName retrieves a player by name
func (r *MemoryRepository) FindByName(ctx context.Context, name string) (*entities.Player, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	id, exists := r.byName[name]
	if !exists {
		return nil, ErrPlayerNotFound
	}
	return clonePlayer(r.players[id]), nil
}

// FindByID retrieves a player by id
func (r *MemoryRepository) FindByID(ctx context.Context, id int64) (*entities.Player, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	p, exists := r.players[id]
	if !exists {
		return nil, ErrPlayerNotFound
	}
	return clonePlayer(p), nil
}

// Save creates or updates a player, assigning the next id on insert
func (r *MemoryRepository) Save(ctx context.Context, p *entities.Player) (*entities.Player, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if p.ID == 0 {
		r.nextID++
		p.ID = r.nextID
	} else if old, exists := r.players[p.ID]; exists && old.Name != p.Name {
		// Keep the name index consistent on rename
		delete(r.byName, old.Name)
	}

	r.players[p.ID] = clonePlayer(p)
	r.byName[p.Name] = p.ID
	return p, nil
}

// TopByWins returns up to limit players ordered by wins descending
func (r *MemoryRepository) TopByWins(ctx context.Context, limit int) ([]*entities.Player, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	ranked := make([]*entities.Player, 0, len(r.players))
	for _, p := range r.players {
		ranked = append(ranked, clonePlayer(p))
	}

	sort.Slice(ranked, func(i, j int) bool {
		if ranked[i].Wins != ranked[j].Wins {
			return ranked[i].Wins > ranked[j].Wins
		}
		return ranked[i].ID < ranked[j].ID
	})

	if len(ranked) > limit {
		ranked = ranked[:limit]
	}
	return ranked, nil
}

// Close is a no-op for memory repository since there are no resources to close
func (r *MemoryRepository) Close() error {
	return nil
}

func clonePlayer(p *entities.Player) *entities.Player {
	clone := *p
	return &clone
}
