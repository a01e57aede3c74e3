package player

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/ladoblanco/blackjack-api/pkg/entities"
	_ "github.com/mattn/go-sqlite3"
)

// SQLite table schema
const (
	createPlayersTableSQL = `
	CREATE TABLE IF NOT EXISTS players (
		id INTEGER PRIMARY KEY AUTOINCREMENT,
		name TEXT NOT NULL UNIQUE,
		games_played INTEGER NOT NULL DEFAULT 0,
		wins INTEGER NOT NULL DEFAULT 0,
		losses INTEGER NOT NULL DEFAULT 0,
		balance INTEGER NOT NULL DEFAULT 0,
		created_at TIMESTAMP NOT NULL DEFAULT CURRENT_TIMESTAMP
	)`

	createPlayerIndexesSQL = `
	CREATE INDEX IF NOT EXISTS idx_players_wins ON players(wins DESC)
	`

	timestampFormat = "2006-01-02 15:04:05"
)

// SQLiteRepository implements Repository using SQLite
type SQLiteRepository struct {
	db *sql.DB
}

// NewSQLiteRepository creates a new SQLite repository
func NewSQLiteRepository(dbPath string) (*SQLiteRepository, error) {
	// Ensure directory exists
	dbDir := filepath.Dir(dbPath)
	if err := os.MkdirAll(dbDir, 0755); err != nil {
		return nil, fmt.Errorf("error creating database directory: %w", err)
	}

	db, err := sql.Open("sqlite3", dbPath)
	if err != nil {
		return nil, fmt.Errorf("error opening database: %w", err)
	}

	// Create tables if they don't exist
	if _, err := db.Exec(createPlayersTableSQL); err != nil {
		db.Close()
		return nil, fmt.Errorf("error creating players table: %w", err)
	}

	if _, err := db.Exec(createPlayerIndexesSQL); err != nil {
		db.Close()
		return nil, fmt.Errorf("error creating player indexes: %w", err)
	}

	return &SQLiteRepository{db: db}, nil
}

// FindByName retrieves a player by their unique name
func (r *SQLiteRepository) FindByName(ctx context.Context, name string) (*entities.Player, error) {
	query := `SELECT id, name, games_played, wins, losses, balance, created_at FROM players WHERE name = ?`
	return r.scanPlayer(r.db.QueryRowContext(ctx, query, name))
}

// FindByID retrieves a player by id
func (r *SQLiteRepository) FindByID(ctx context.Context, id int64) (*entities.Player, error) {
	query := `SELECT id, name, games_played, wins, losses, balance, created_at FROM players WHERE id = ?`
	return r.scanPlayer(r.db.QueryRowContext(ctx, query, id))
}

// Save creates or updates a player, assigning an id on insert
func (r *SQLiteRepository) Save(ctx context.Context, p *entities.Player) (*entities.Player, error) {
	if p.ID == 0 {
		query := `
			INSERT INTO players (name, games_played, wins, losses, balance, created_at)
			VALUES (?, ?, ?, ?, ?, ?)
		`
		result, err := r.db.ExecContext(ctx, query,
			p.Name, p.GamesPlayed, p.Wins, p.Losses, p.Balance,
			p.CreatedAt.Format(timestampFormat),
		)
		if err != nil {
			return nil, fmt.Errorf("error inserting player: %w", err)
		}

		id, err := result.LastInsertId()
		if err != nil {
			return nil, fmt.Errorf("error getting inserted player id: %w", err)
		}
		p.ID = id
		return p, nil
	}

	query := `
		UPDATE players
		SET name = ?, games_played = ?, wins = ?, losses = ?, balance = ?
		WHERE id = ?
	`
	result, err := r.db.ExecContext(ctx, query,
		p.Name, p.GamesPlayed, p.Wins, p.Losses, p.Balance, p.ID,
	)
	if err != nil {
		return nil, fmt.Errorf("error updating player: %w", err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return nil, fmt.Errorf("error getting rows affected: %w", err)
	}
	if rowsAffected == 0 {
		return nil, ErrPlayerNotFound
	}

	return p, nil
}

// TopByWins returns up to limit players ordered by wins descending
func (r *SQLiteRepository) TopByWins(ctx context.Context, limit int) ([]*entities.Player, error) {
	query := `
		SELECT id, name, games_played, wins, losses, balance, created_at
		FROM players
		ORDER BY wins DESC, id ASC
		LIMIT ?
	`

	rows, err := r.db.QueryContext(ctx, query, limit)
	if err != nil {
		return nil, fmt.Errorf("error querying players by wins: %w", err)
	}
	defer rows.Close()

	var players []*entities.Player
	for rows.Next() {
		p, err := scanPlayerRow(rows)
		if err != nil {
			return nil, err
		}
		players = append(players, p)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating player rows: %w", err)
	}

	return players, nil
}

// Close closes the database connection
func (r *SQLiteRepository) Close() error {
	return r.db.Close()
}

type rowScanner interface {
	Scan(dest ...any) error
}

func (r *SQLiteRepository) scanPlayer(row *sql.Row) (*entities.Player, error) {
	p, err := scanPlayerRow(row)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrPlayerNotFound
	}
	return p, err
}

func scanPlayerRow(row rowScanner) (*entities.Player, error) {
	var p entities.Player
	var createdAt string

	err := row.Scan(&p.ID, &p.Name, &p.GamesPlayed, &p.Wins, &p.Losses, &p.Balance, &createdAt)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, err
		}
		return nil, fmt.Errorf("error scanning player row: %w", err)
	}

	// SQLite may return either the stored format or RFC 3339 depending
	// on how the column was written.
	for _, format := range []string{timestampFormat, time.RFC3339} {
		if p.CreatedAt, err = time.Parse(format, createdAt); err == nil {
			break
		}
	}
	if err != nil {
		return nil, fmt.Errorf("error parsing timestamp %q: %w", createdAt, err)
	}

	return &p, nil
}
