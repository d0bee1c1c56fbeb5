package session

import (
	"encoding/json"
	"fmt"

	"tablecoach-go/engine"
)

// Snapshot is the serialized game-state blob handed to the external
// coaching service. The engine only produces it; sending it anywhere is
// the caller's business.
type Snapshot struct {
	SessionID       string     `json:"session_id"`
	Game            string     `json:"game"`
	Hands           [][]string `json:"hands"`
	Bets            []int64    `json:"bets"`
	Bankroll        int64      `json:"bankroll"`
	RunningCount    int        `json:"running_count"`
	TrueCount       float64    `json:"true_count"`
	Penetration     float64    `json:"penetration"`
	PlayerAdvantage float64    `json:"player_advantage"`
	RecommendedBet  int64      `json:"recommended_bet"`
}

// BuildSnapshot captures the session state around the given in-flight hands
func (ts *TrainingSession) BuildSnapshot(hands [][]engine.Card, bets []int64) Snapshot {
	handStrings := make([][]string, len(hands))
	for i, hand := range hands {
		handStrings[i] = make([]string, len(hand))
		for j, c := range hand {
			handStrings[i][j] = c.String()
		}
	}
	return Snapshot{
		SessionID:       ts.ID,
		Game:            ts.Game.String(),
		Hands:           handStrings,
		Bets:            bets,
		Bankroll:        ts.Bankroll,
		RunningCount:    ts.Tracker.RunningCount(),
		TrueCount:       ts.Tracker.TrueCount(),
		Penetration:     ts.Tracker.Penetration(),
		PlayerAdvantage: ts.Tracker.PlayerAdvantage(),
		RecommendedBet:  ts.Tracker.RecommendedBet(ts.BaseBet),
	}
}

// Marshal renders the snapshot as the JSON payload the coach consumes
func (s Snapshot) Marshal() ([]byte, error) {
	data, err := json.Marshal(s)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal snapshot: %w", err)
	}
	return data, nil
}
