package paigow

import (
	"sort"

	"tablecoach-go/engine"
)

// HandSplit is a setting of seven cards into the 5-card high hand and the
// 2-card low hand. The two hands always partition the original seven.
type HandSplit struct {
	High5 [5]engine.Card
	Low2  [2]engine.Card
}

// OptimalSplit is the result of the exhaustive player-facing search
type OptimalSplit struct {
	HandSplit
	Score      float64
	IsHouseWay bool
}

// IsFoul reports whether the 2-card hand outranks the 5-card hand. A
// player-confirmed foul split is an automatic loss, which callers report as
// a normal game result rather than an error.
func IsFoul(split HandSplit) bool {
	high := engine.EvaluateFive(split.High5)
	low := engine.EvaluateTwo(split.Low2)
	return engine.Compare(low, high) > 0
}

// splits enumerates all C(7,5)=21 settings of seven cards, choosing the two
// front cards by index pair. The bound is fixed and small, so the whole set
// is generated eagerly.
func splits(seven [7]engine.Card) []HandSplit {
	out := make([]HandSplit, 0, 21)
	for i := 0; i < 7; i++ {
		for j := i + 1; j < 7; j++ {
			var split HandSplit
			split.Low2 = [2]engine.Card{seven[i], seven[j]}
			k := 0
			for idx, c := range seven {
				if idx != i && idx != j {
					split.High5[k] = c
					k++
				}
			}
			out = append(out, split)
		}
	}
	return out
}

// splitScore is the fixed weighted heuristic over a legal split: the 5-card
// rank dominates, the 2-card hand breaks ties.
func splitScore(split HandSplit) float64 {
	high := engine.EvaluateFive(split.High5)
	low := engine.EvaluateTwo(split.Low2)
	score := float64(high.RankClass) * 100
	for _, t := range high.Tiebreak {
		score += float64(t)
	}
	score += float64(low.RankClass) * 10
	for _, t := range low.Tiebreak {
		score += 0.5 * float64(t)
	}
	return score
}

// FindOptimalSet exhaustively searches the 21 possible settings, discards
// foul splits, and returns the maximum-scoring legal one. When at least one
// legal split exists a foul is never returned. The result notes whether it
// matches the house way setting.
func FindOptimalSet(seven [7]engine.Card) OptimalSplit {
	best, ok := bestLegalSplit(seven)
	if !ok {
		// No legal split at all; return the first enumeration so the caller
		// can report the forced foul.
		best = splits(seven)[0]
	}

	house := SetHouseWay(seven)
	return OptimalSplit{
		HandSplit:  best,
		Score:      splitScore(best),
		IsHouseWay: sameSplit(best, house),
	}
}

// sameSplit compares two splits as unordered card sets. The low hands
// determine the high hands, so comparing fronts is enough.
func sameSplit(a, b HandSplit) bool {
	return frontKey(a.Low2) == frontKey(b.Low2)
}

func frontKey(cards [2]engine.Card) string {
	keys := []string{cards[0].Rank + cards[0].Suit, cards[1].Rank + cards[1].Suit}
	sort.Strings(keys)
	return keys[0] + "/" + keys[1]
}
