package session

import (
	"fmt"
	"log"
	"sync"
	"time"

	"github.com/google/uuid"

	"tablecoach-go/engine"
)

// TrainingSession owns one count tracker for one player. The engine never
// serializes access itself: a session is driven by one user action at a
// time, so the caller awaits each action before issuing the next.
type TrainingSession struct {
	ID        string
	UserID    int64
	Tracker   *engine.CountTracker
	Bankroll  int64
	BaseBet   int64
	Game      engine.Game
	BetLog    []int64
	CreatedAt time.Time
	LastUsed  time.Time
}

// New creates a session with a fresh shoe
func New(userID int64, game engine.Game, numDecks int, bankroll, baseBet int64) *TrainingSession {
	includeJoker := game == engine.PaiGow
	now := time.Now()
	return &TrainingSession{
		ID:        uuid.NewString(),
		UserID:    userID,
		Tracker:   engine.NewCountTracker(numDecks, includeJoker),
		Bankroll:  bankroll,
		BaseBet:   baseBet,
		Game:      game,
		CreatedAt: now,
		LastUsed:  now,
	}
}

// Deal deals n cards from the session's shoe
func (ts *TrainingSession) Deal(n int) []engine.Card {
	cards := make([]engine.Card, n)
	for i := range cards {
		cards[i] = ts.Tracker.DealCard()
	}
	ts.LastUsed = time.Now()
	return cards
}

// RecordBet appends to the bet history used for heat scoring
func (ts *TrainingSession) RecordBet(bet int64) {
	ts.BetLog = append(ts.BetLog, bet)
	if len(ts.BetLog) > engine.HeatWindow {
		ts.BetLog = ts.BetLog[len(ts.BetLog)-engine.HeatWindow:]
	}
	ts.LastUsed = time.Now()
}

// Manager tracks the active sessions, one per user
type Manager struct {
	sessions map[int64]*TrainingSession
	mu       sync.RWMutex
}

// NewManager creates an empty session manager
func NewManager() *Manager {
	return &Manager{sessions: make(map[int64]*TrainingSession)}
}

// Start replaces any existing session for the user with a new one
func (m *Manager) Start(userID int64, game engine.Game, numDecks int, bankroll, baseBet int64) *TrainingSession {
	session := New(userID, game, numDecks, bankroll, baseBet)
	m.mu.Lock()
	m.sessions[userID] = session
	m.mu.Unlock()
	log.Printf("Started %s session %s for user %d (%d decks)", game, session.ID, userID, numDecks)
	return session
}

// Get returns the user's active session, if any
func (m *Manager) Get(userID int64) (*TrainingSession, bool) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	session, ok := m.sessions[userID]
	return session, ok
}

// End removes the user's session
func (m *Manager) End(userID int64) {
	m.mu.Lock()
	delete(m.sessions, userID)
	m.mu.Unlock()
}

// CleanupExpired removes sessions idle longer than maxAge
func (m *Manager) CleanupExpired(maxAge time.Duration) {
	m.mu.Lock()
	defer m.mu.Unlock()

	now := time.Now()
	expired := 0
	for userID, session := range m.sessions {
		if now.Sub(session.LastUsed) > maxAge {
			delete(m.sessions, userID)
			expired++
		}
	}
	if expired > 0 {
		log.Printf("Cleaned up %d expired training sessions", expired)
	}
}

// Describe summarizes the session for logs and embeds
func (ts *TrainingSession) Describe() string {
	return fmt.Sprintf("%s shoe, %d/%d cards dealt, running count %+d",
		ts.Game, ts.Tracker.Shoe().CardsDealt(), ts.Tracker.Shoe().TotalCards(), ts.Tracker.RunningCount())
}
