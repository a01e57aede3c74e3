package entities

import "time"

// Player holds a player's identity, lifetime tallies and balance.
// Players are referenced by games but their lifecycle is owned by the
// player repository.
type Player struct {
	ID          int64
	Name        string
	GamesPlayed int
	Wins        int
	Losses      int
	Balance     int64
	CreatedAt   time.Time
}

// NewPlayer creates a player with zero stats and balance
func NewPlayer(name string) *Player {
	return &Player{
		Name:      name,
		CreatedAt: time.Now(),
	}
}

// RecordWin credits a settled win against the player's balance
func (p *Player) RecordWin(amount int64) {
	p.Wins++
	p.GamesPlayed++
	p.Balance += amount
}

// RecordLoss debits a settled loss from the player's balance
func (p *Player) RecordLoss(amount int64) {
	p.Losses++
	p.GamesPlayed++
	p.Balance -= amount
}
