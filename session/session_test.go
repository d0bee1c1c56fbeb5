package session

import (
	"encoding/json"
	"testing"
	"time"

	"tablecoach-go/engine"
)

func TestNewSessionShoeMatchesGame(t *testing.T) {
	bj := New(1, engine.Blackjack, 6, 1000, 10)
	if bj.Tracker.Shoe().IncludesJoker() {
		t.Error("blackjack shoe should not carry a joker")
	}
	if bj.Tracker.Shoe().TotalCards() != 312 {
		t.Errorf("6-deck shoe has %d cards, want 312", bj.Tracker.Shoe().TotalCards())
	}

	pg := New(1, engine.PaiGow, 1, 1000, 10)
	if !pg.Tracker.Shoe().IncludesJoker() {
		t.Error("pai gow shoe should carry the joker")
	}
}

func TestDealUpdatesCount(t *testing.T) {
	ts := New(1, engine.Blackjack, 6, 1000, 10)
	cards := ts.Deal(10)
	if len(cards) != 10 {
		t.Fatalf("dealt %d cards, want 10", len(cards))
	}
	expected := 0
	for _, c := range cards {
		expected += c.HiLoTag()
	}
	if ts.Tracker.RunningCount() != expected {
		t.Errorf("running count %d, want %d", ts.Tracker.RunningCount(), expected)
	}
}

func TestRecordBetTrimsToHeatWindow(t *testing.T) {
	ts := New(1, engine.Blackjack, 6, 1000, 10)
	for i := 0; i < engine.HeatWindow+15; i++ {
		ts.RecordBet(int64(10 + i))
	}
	if len(ts.BetLog) != engine.HeatWindow {
		t.Errorf("bet log length %d, want %d", len(ts.BetLog), engine.HeatWindow)
	}
	if ts.BetLog[len(ts.BetLog)-1] != int64(10+engine.HeatWindow+14) {
		t.Error("bet log should keep the most recent bets")
	}
}

func TestManagerLifecycle(t *testing.T) {
	m := NewManager()
	if _, ok := m.Get(7); ok {
		t.Error("empty manager should have no sessions")
	}

	first := m.Start(7, engine.Blackjack, 6, 1000, 10)
	second := m.Start(7, engine.Baccarat, 8, 500, 25)
	if got, _ := m.Get(7); got.ID != second.ID {
		t.Error("starting again should replace the session")
	}
	if first.ID == second.ID {
		t.Error("sessions should have distinct IDs")
	}

	m.End(7)
	if _, ok := m.Get(7); ok {
		t.Error("ended session still retrievable")
	}
}

func TestCleanupExpired(t *testing.T) {
	m := NewManager()
	stale := m.Start(1, engine.Blackjack, 6, 1000, 10)
	stale.LastUsed = time.Now().Add(-3 * time.Hour)
	m.Start(2, engine.Blackjack, 6, 1000, 10)

	m.CleanupExpired(2 * time.Hour)
	if _, ok := m.Get(1); ok {
		t.Error("stale session survived cleanup")
	}
	if _, ok := m.Get(2); !ok {
		t.Error("fresh session removed by cleanup")
	}
}

func TestSnapshotRoundTrip(t *testing.T) {
	ts := New(42, engine.Blackjack, 6, 1000, 25)
	hand := ts.Deal(2)
	ts.RecordBet(25)

	snapshot := ts.BuildSnapshot([][]engine.Card{hand}, ts.BetLog)
	payload, err := snapshot.Marshal()
	if err != nil {
		t.Fatalf("marshal failed: %v", err)
	}

	var decoded map[string]any
	if err := json.Unmarshal(payload, &decoded); err != nil {
		t.Fatalf("snapshot is not valid JSON: %v", err)
	}
	if decoded["session_id"] != ts.ID {
		t.Errorf("session_id = %v, want %s", decoded["session_id"], ts.ID)
	}
	if decoded["game"] != "blackjack" {
		t.Errorf("game = %v, want blackjack", decoded["game"])
	}
	hands, ok := decoded["hands"].([]any)
	if !ok || len(hands) != 1 {
		t.Fatalf("hands = %v, want one hand", decoded["hands"])
	}
	if snapshot.RunningCount != ts.Tracker.RunningCount() {
		t.Error("snapshot running count out of sync with tracker")
	}
}
