package videopoker

import (
	"math"
	"sort"

	"tablecoach-go/engine"
)

// HoldDecision is the optimizer's answer for one dealt hand
type HoldDecision struct {
	HeldIndices   []int
	ExpectedValue float64
	Reasoning     string
	Alternatives  []HoldOption
}

// HoldOption is one ranked candidate hold
type HoldOption struct {
	HeldIndices   []int
	ExpectedValue float64
	Reasoning     string
}

// drawPenalty is the geometric penalty applied per card drawn. The partial
// hold values are a bounded heuristic, not a remaining-deck enumeration;
// the constants below were tuned so the resulting ordering matches standard
// draw strategy, not to be exact EVs.
const drawPenalty = 0.7

// Nominal EV constants per recognized partial pattern.
const (
	evFourToRoyal    = 18.0
	evHighPair       = 4.5
	evThreeOfAKind   = 6.5
	evFourToStrFlush = 3.2
	evTwoPair        = 3.0
	evThreeToRoyal   = 3.0
	evLowPair        = 2.6
	evFourToFlush    = 1.6
	evOpenStraight   = 1.25
	evTwoSuitedHigh  = 1.1
	evTwoHigh        = 1.0
	evThreeToFlush   = 0.75
	evInsideStraight = 0.5
	evOneHigh        = 0.45
	evDrawFive       = 0.33
	evOneLow         = 0.2
	evUnrecognized   = 0.05
)

// GetOptimalHold enumerates all 32 hold subsets of the dealt hand and
// returns the one with the best estimated value. Five-card holds score
// their exact paytable value; partial holds score a fixed nominal pattern
// value discounted by drawPenalty per card drawn. EV ties go to the
// earliest-enumerated subset.
func GetOptimalHold(hand [5]engine.Card, variant Variant, coins int64) HoldDecision {
	if coins < 1 {
		coins = 1
	}

	options := make([]HoldOption, 0, 32)
	best := -1
	for mask := 0; mask < 32; mask++ {
		indices := make([]int, 0, 5)
		held := make([]engine.Card, 0, 5)
		for i := 0; i < 5; i++ {
			if mask&(1<<i) != 0 {
				indices = append(indices, i)
				held = append(held, hand[i])
			}
		}

		var ev float64
		var reason string
		if len(held) == 5 {
			eval := engine.EvaluateFive(hand)
			ev = float64(PayoutPerCoin(eval, variant, coins))
			reason = "Pat hand: " + eval.Label
		} else {
			nominal, patternReason := classifyPartial(held)
			ev = nominal * math.Pow(drawPenalty, float64(5-len(held)))
			reason = patternReason
		}

		options = append(options, HoldOption{HeldIndices: indices, ExpectedValue: ev, Reasoning: reason})
		if best < 0 || ev > options[best].ExpectedValue {
			best = len(options) - 1
		}
	}

	winner := options[best]
	ranked := make([]HoldOption, len(options))
	copy(ranked, options)
	sort.SliceStable(ranked, func(i, j int) bool {
		return ranked[i].ExpectedValue > ranked[j].ExpectedValue
	})

	return HoldDecision{
		HeldIndices:   winner.HeldIndices,
		ExpectedValue: winner.ExpectedValue,
		Reasoning:     winner.Reasoning,
		Alternatives:  ranked[1:6],
	}
}

// classifyPartial matches a held subset against the recognized draw
// patterns in fixed precedence order and returns the nominal EV constant
// with its justification. Holds with cards outside the pattern (a pair plus
// a kicker, say) deliberately fall through to the unrecognized floor.
func classifyPartial(held []engine.Card) (float64, string) {
	switch len(held) {
	case 0:
		return evDrawFive, "Nothing worth keeping; draw five new cards."
	case 1:
		if isHighCard(held[0]) {
			return evOneHigh, "Single high card; anything that pairs it pays."
		}
		return evOneLow, "Single low card."
	case 2:
		return classifyTwo(held)
	case 3:
		return classifyThree(held)
	default:
		return classifyFour(held)
	}
}

func classifyTwo(held []engine.Card) (float64, string) {
	a, b := held[0], held[1]
	if a.PokerValue() == b.PokerValue() {
		if isHighCard(a) {
			return evHighPair, "High pair: a guaranteed payer with three draws at trips."
		}
		return evLowPair, "Low pair: no payout yet, but live for two pair or trips."
	}
	if isHighCard(a) && isHighCard(b) {
		if a.Suit == b.Suit {
			return evTwoSuitedHigh, "Two suited high cards: pair and royal potential."
		}
		return evTwoHigh, "Two high cards."
	}
	return evUnrecognized, "Unmatched cards."
}

func classifyThree(held []engine.Card) (float64, string) {
	v0 := held[0].PokerValue()
	if v0 == held[1].PokerValue() && v0 == held[2].PokerValue() {
		return evThreeOfAKind, "Three of a kind: drawing two at the full house or quads."
	}
	if sameSuit(held) {
		if allRoyalRanks(held) && distinctValues(held) {
			return evThreeToRoyal, "Three to a royal flush."
		}
		if distinctValues(held) && straightWindow(held) {
			return evThreeToFlush, "Three to a straight flush."
		}
		return evThreeToFlush, "Three suited cards."
	}
	return evUnrecognized, "Unmatched cards."
}

func classifyFour(held []engine.Card) (float64, string) {
	pairCount := map[int]int{}
	for _, c := range held {
		pairCount[c.PokerValue()]++
	}
	pairs := 0
	for _, n := range pairCount {
		if n == 2 {
			pairs++
		}
	}

	if sameSuit(held) && distinctValues(held) {
		if allRoyalRanks(held) {
			return evFourToRoyal, "Four to a royal flush: the premium draw."
		}
		if straightWindow(held) {
			return evFourToStrFlush, "Four to a straight flush."
		}
		return evFourToFlush, "Flush draw: one card from a flush."
	}
	if pairs == 2 {
		return evTwoPair, "Two pair: drawing one at the full house."
	}
	if distinctValues(held) {
		if openEnded(held) {
			return evOpenStraight, "Open-ended straight draw."
		}
		if straightWindow(held) {
			return evInsideStraight, "Inside straight draw."
		}
	}
	return evUnrecognized, "Unmatched cards."
}

// isHighCard reports a jack or better
func isHighCard(c engine.Card) bool {
	return c.PokerValue() >= 11
}

func sameSuit(cards []engine.Card) bool {
	for _, c := range cards[1:] {
		if c.Suit != cards[0].Suit {
			return false
		}
	}
	return true
}

func distinctValues(cards []engine.Card) bool {
	seen := map[int]bool{}
	for _, c := range cards {
		v := c.PokerValue()
		if seen[v] {
			return false
		}
		seen[v] = true
	}
	return true
}

func allRoyalRanks(cards []engine.Card) bool {
	for _, c := range cards {
		if c.PokerValue() < 10 {
			return false
		}
	}
	return true
}

// straightWindow reports whether all values fit inside one five-rank
// straight window (ace playing high or low).
func straightWindow(cards []engine.Card) bool {
	values := sortedValues(cards)
	if fitsWindow(values) {
		return true
	}
	// Retry with aces low for wheel draws.
	hasAce := false
	low := make([]int, 0, len(values))
	for _, v := range values {
		if v == 14 {
			hasAce = true
			low = append(low, 1)
		} else {
			low = append(low, v)
		}
	}
	if !hasAce {
		return false
	}
	sort.Ints(low)
	return fitsWindow(low)
}

func fitsWindow(sorted []int) bool {
	return sorted[len(sorted)-1]-sorted[0] <= 4
}

// openEnded reports four consecutive values that can extend on either end
func openEnded(cards []engine.Card) bool {
	values := sortedValues(cards)
	if len(values) != 4 {
		return false
	}
	for i := 1; i < 4; i++ {
		if values[i] != values[i-1]+1 {
			return false
		}
	}
	return values[0] > 2 && values[3] < 14
}

func sortedValues(cards []engine.Card) []int {
	values := make([]int, len(cards))
	for i, c := range cards {
		values[i] = c.PokerValue()
	}
	sort.Ints(values)
	return values
}
