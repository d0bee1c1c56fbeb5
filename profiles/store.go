package profiles

import (
	"context"
	"fmt"
	"log"
	"os"
	"sync"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

// Defaults applied to new or storeless profiles
const (
	DefaultBankroll    = 1000
	FreeDailyRounds    = 20
	PremiumDailyRounds = 200
)

// Player is one stored player profile. Bankroll is the preferred starting
// bankroll for new training sessions, not a wallet; nothing in the engine
// settles real bets.
type Player struct {
	UserID        int64
	Bankroll      int64
	Premium       bool
	RoundsUsed    int
	RoundsResetAt time.Time
	CreatedAt     time.Time
}

// DailyLimit returns the player's daily training-round allowance
func (p *Player) DailyLimit() int {
	if p.Premium {
		return PremiumDailyRounds
	}
	return FreeDailyRounds
}

// Store is the pgx-backed profile store. A nil pool (no DATABASE_URL) makes
// every lookup fall back to in-memory defaults so the trainer keeps working
// without a database, the same degradation the rest of the process uses.
type Store struct {
	pool  *pgxpool.Pool
	cache map[int64]*cacheEntry
	ttl   time.Duration
	mu    sync.RWMutex
}

type cacheEntry struct {
	player    *Player
	expiresAt time.Time
}

// Setup connects to DATABASE_URL and ensures the players table exists.
// A missing DATABASE_URL is not an error; the store runs memory-only.
func Setup(ctx context.Context) (*Store, error) {
	store := &Store{
		cache: make(map[int64]*cacheEntry),
		ttl:   5 * time.Minute,
	}

	databaseURL := os.Getenv("DATABASE_URL")
	if databaseURL == "" {
		log.Println("DATABASE_URL not set - profiles run memory-only")
		return store, nil
	}

	config, err := pgxpool.ParseConfig(databaseURL)
	if err != nil {
		return nil, fmt.Errorf("failed to parse database URL: %w", err)
	}
	config.MaxConns = 10
	config.MinConns = 2
	config.MaxConnLifetime = 45 * time.Minute
	config.MaxConnIdleTime = 5 * time.Minute
	config.ConnConfig.RuntimeParams = map[string]string{
		"application_name": "tablecoach",
		"timezone":         "UTC",
	}

	pool, err := pgxpool.NewWithConfig(ctx, config)
	if err != nil {
		return nil, fmt.Errorf("failed to create connection pool: %w", err)
	}

	if _, err := pool.Exec(ctx, `
		CREATE TABLE IF NOT EXISTS players (
			user_id BIGINT PRIMARY KEY,
			bankroll BIGINT NOT NULL DEFAULT 1000,
			premium BOOLEAN NOT NULL DEFAULT FALSE,
			rounds_used INT NOT NULL DEFAULT 0,
			rounds_reset_at TIMESTAMPTZ NOT NULL DEFAULT NOW(),
			created_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
		)`); err != nil {
		pool.Close()
		return nil, fmt.Errorf("failed to ensure players table: %w", err)
	}

	store.pool = pool
	return store, nil
}

// Close releases the connection pool
func (s *Store) Close() {
	if s.pool != nil {
		s.pool.Close()
		s.pool = nil
	}
}

// GetPlayer loads a profile, creating a default row for unknown players.
// Results are cached with a short TTL.
func (s *Store) GetPlayer(ctx context.Context, userID int64) (*Player, error) {
	s.mu.RLock()
	entry, ok := s.cache[userID]
	s.mu.RUnlock()
	if ok && time.Now().Before(entry.expiresAt) {
		return entry.player, nil
	}

	if s.pool == nil {
		player := defaultPlayer(userID)
		s.put(player)
		return player, nil
	}

	player := &Player{}
	err := s.pool.QueryRow(ctx, `
		SELECT user_id, bankroll, premium, rounds_used, rounds_reset_at, created_at
		FROM players WHERE user_id = $1`, userID).
		Scan(&player.UserID, &player.Bankroll, &player.Premium,
			&player.RoundsUsed, &player.RoundsResetAt, &player.CreatedAt)
	if err == pgx.ErrNoRows {
		player = defaultPlayer(userID)
		if _, err := s.pool.Exec(ctx, `
			INSERT INTO players (user_id, bankroll) VALUES ($1, $2)
			ON CONFLICT (user_id) DO NOTHING`, userID, player.Bankroll); err != nil {
			return nil, fmt.Errorf("failed to create player %d: %w", userID, err)
		}
	} else if err != nil {
		return nil, fmt.Errorf("failed to load player %d: %w", userID, err)
	}

	s.put(player)
	return player, nil
}

// SetBankroll stores the player's preferred starting bankroll
func (s *Store) SetBankroll(ctx context.Context, userID, bankroll int64) error {
	player, err := s.GetPlayer(ctx, userID)
	if err != nil {
		return err
	}
	player.Bankroll = bankroll
	s.put(player)

	if s.pool == nil {
		return nil
	}
	_, err = s.pool.Exec(ctx, `UPDATE players SET bankroll = $2 WHERE user_id = $1`, userID, bankroll)
	if err != nil {
		return fmt.Errorf("failed to update bankroll for %d: %w", userID, err)
	}
	return nil
}

// ConsumeTrainingRound spends one of the player's daily training rounds,
// resetting the counter when a new UTC day has started. It reports whether
// a round was available.
func (s *Store) ConsumeTrainingRound(ctx context.Context, userID int64) (bool, error) {
	player, err := s.GetPlayer(ctx, userID)
	if err != nil {
		return false, err
	}

	now := time.Now().UTC()
	if now.Sub(player.RoundsResetAt) >= 24*time.Hour {
		player.RoundsUsed = 0
		player.RoundsResetAt = now
	}
	if player.RoundsUsed >= player.DailyLimit() {
		return false, nil
	}
	player.RoundsUsed++
	s.put(player)

	if s.pool != nil {
		_, err = s.pool.Exec(ctx, `
			UPDATE players SET rounds_used = $2, rounds_reset_at = $3 WHERE user_id = $1`,
			userID, player.RoundsUsed, player.RoundsResetAt)
		if err != nil {
			return false, fmt.Errorf("failed to record training round for %d: %w", userID, err)
		}
	}
	return true, nil
}

func (s *Store) put(player *Player) {
	s.mu.Lock()
	s.cache[player.UserID] = &cacheEntry{player: player, expiresAt: time.Now().Add(s.ttl)}
	s.mu.Unlock()
}

func defaultPlayer(userID int64) *Player {
	return &Player{
		UserID:        userID,
		Bankroll:      DefaultBankroll,
		RoundsResetAt: time.Now().UTC(),
		CreatedAt:     time.Now().UTC(),
	}
}
