package engine

import "math"

// Count tracking constants
const (
	// ShufflePenetration is the fraction of the shoe dealt before the next
	// DealCard triggers a reshuffle.
	ShufflePenetration = 0.75
	// MinBetPenetration is the penetration below which the bet ladder is
	// suppressed to the base bet.
	MinBetPenetration = 0.25
	// HeatWindow is how many recent bets the heat score looks at.
	HeatWindow = 20
)

// CountTracker wraps a shoe and maintains Hi-Lo card counting state for one
// training session. A tracker is exclusively owned by its session; callers
// serialize DealCard calls themselves.
type CountTracker struct {
	shoe         *Shoe
	runningCount int
	cardsDealt   int
}

// NewCountTracker creates a tracker over a fresh shoe
func NewCountTracker(numDecks int, includeJoker bool) *CountTracker {
	return &CountTracker{shoe: NewShoe(numDecks, includeJoker)}
}

// Shoe returns the underlying shoe
func (ct *CountTracker) Shoe() *Shoe {
	return ct.shoe
}

// DealCard deals the next card and updates the running count. If the
// reshuffle threshold was already crossed (or the shoe is empty) the shoe is
// reinitialized first and the count starts over; exhaustion is never an error.
func (ct *CountTracker) DealCard() Card {
	if ct.shoe.CardsRemaining() == 0 || ct.Penetration() >= ShufflePenetration {
		ct.Reinitialize()
	}
	card := ct.shoe.Deal()
	ct.runningCount += card.HiLoTag()
	ct.cardsDealt++
	return card
}

// Reinitialize reshuffles the shoe and resets all counting state
func (ct *CountTracker) Reinitialize() {
	ct.shoe.Reinitialize()
	ct.runningCount = 0
	ct.cardsDealt = 0
}

// RunningCount returns the signed Hi-Lo sum over all cards dealt this generation
func (ct *CountTracker) RunningCount() int {
	return ct.runningCount
}

// DecksRemaining returns the undealt shoe size in decks
func (ct *CountTracker) DecksRemaining() float64 {
	perDeck := float64(ct.shoe.TotalCards()) / float64(ct.shoe.NumDecks())
	return float64(ct.shoe.CardsRemaining()) / perDeck
}

// TrueCount returns the running count normalized by decks remaining,
// rounded to one decimal. Zero decks remaining yields 0 rather than a
// division fault.
func (ct *CountTracker) TrueCount() float64 {
	decks := ct.DecksRemaining()
	if decks <= 0 {
		return 0
	}
	return math.Round(float64(ct.runningCount)/decks*10) / 10
}

// Penetration returns the fraction of the shoe already dealt
func (ct *CountTracker) Penetration() float64 {
	return float64(ct.cardsDealt) / float64(ct.shoe.TotalCards())
}

// PlayerAdvantage estimates the player edge in percent from the true count
func (ct *CountTracker) PlayerAdvantage() float64 {
	return -0.5 + ct.TrueCount()*0.5
}

// RecommendedBet sizes the bet from the true count using a fixed spread
// ladder. Early in the shoe (below 25% penetration) the count carries too
// little information, so the base bet is recommended regardless.
func (ct *CountTracker) RecommendedBet(base int64) int64 {
	if ct.Penetration() < MinBetPenetration {
		return base
	}
	tc := ct.TrueCount()
	switch {
	case tc <= 0:
		return base
	case tc < 2:
		return base * 2
	case tc < 3:
		return base * 4
	case tc < 4:
		return base * 6
	case tc < 5:
		return base * 8
	default:
		return base * 12
	}
}

// HeatLevel scores 0-10 how much pit attention a betting pattern draws.
// It combines the bet spread ratio and the average relative bet-to-bet
// change over the last HeatWindow bets, each mapped into capped buckets.
func (ct *CountTracker) HeatLevel(recentBets []int64) int {
	if len(recentBets) < 2 {
		return 0
	}
	if len(recentBets) > HeatWindow {
		recentBets = recentBets[len(recentBets)-HeatWindow:]
	}

	minBet, maxBet := recentBets[0], recentBets[0]
	for _, b := range recentBets[1:] {
		if b < minBet {
			minBet = b
		}
		if b > maxBet {
			maxBet = b
		}
	}

	heat := 0

	if minBet > 0 {
		ratio := float64(maxBet) / float64(minBet)
		switch {
		case ratio >= 12:
			heat += 6
		case ratio >= 8:
			heat += 5
		case ratio >= 6:
			heat += 4
		case ratio >= 4:
			heat += 3
		case ratio >= 2:
			heat += 2
		case ratio > 1:
			heat += 1
		}
	}

	changeSum := 0.0
	changes := 0
	for i := 1; i < len(recentBets); i++ {
		prev := float64(recentBets[i-1])
		if prev <= 0 {
			continue
		}
		changeSum += math.Abs(float64(recentBets[i])-prev) / prev
		changes++
	}
	if changes > 0 {
		avgChange := changeSum / float64(changes)
		switch {
		case avgChange >= 1.0:
			heat += 4
		case avgChange >= 0.5:
			heat += 3
		case avgChange >= 0.25:
			heat += 2
		case avgChange > 0.1:
			heat += 1
		}
	}

	if heat > 10 {
		heat = 10
	}
	return heat
}
