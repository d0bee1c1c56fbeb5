package paigow

import (
	"sort"

	"tablecoach-go/engine"
)

// SetHouseWay sets seven cards the way the dealer must: one fixed,
// deterministic rule per rank class of the best five-card hand. No search
// beyond classifying the hand is involved, so equal inputs always produce
// equal settings.
func SetHouseWay(seven [7]engine.Card) HandSplit {
	cards := sortedDesc(seven)
	bestSplit, bestEval := bestFive(seven)

	var split HandSplit
	switch bestEval.RankClass {
	case engine.HighCard:
		// Top card stays back; the next two highest play in front.
		split = makeSplit(cards, 1, 2)

	case engine.OnePair:
		split = setOnePair(cards)

	case engine.TwoPair:
		split = setTwoPair(cards)

	case engine.ThreeOfAKind:
		split = setTrips(cards)

	case engine.Straight, engine.Flush, engine.StraightFlush:
		split = setStraightOrFlush(seven, bestSplit, bestEval)

	case engine.FullHouse:
		split = setFullHouse(cards)

	case engine.FourOfAKind:
		split = setQuads(cards)

	case engine.RoyalFlush:
		split = setRoyal(seven, bestSplit)

	case engine.FiveAces:
		split = setFiveAces(cards, bestSplit)

	default:
		split = bestSplit
	}

	if IsFoul(split) {
		if legal, ok := bestLegalSplit(seven); ok {
			return legal
		}
	}
	return split
}

func setOnePair(cards []engine.Card) HandSplit {
	pairValue := repeatedValues(cards, 2)[0]
	front := highestExcluding(cards, map[int]bool{pairValue: true}, 2)
	return makeSplit(cards, front[0], front[1])
}

func setTwoPair(cards []engine.Card) HandSplit {
	pairs := repeatedValues(cards, 2)

	// Three pairs: the highest pair always plays in front.
	if len(pairs) >= 3 {
		front := indicesWithValue(cards, pairs[0])
		return makeSplit(cards, front[0], front[1])
	}

	hi, lo := pairs[0], pairs[1]
	keepTogether := hi < 7 || (hi == 14 && lo <= 6)
	if keepTogether {
		front := highestExcluding(cards, map[int]bool{hi: true, lo: true}, 2)
		return makeSplit(cards, front[0], front[1])
	}
	front := indicesWithValue(cards, lo)
	return makeSplit(cards, front[0], front[1])
}

func setTrips(cards []engine.Card) HandSplit {
	tripValue := repeatedValues(cards, 3)[0]

	// Three aces play an ace in front with the best single beside it.
	if tripValue == 14 {
		aces := indicesWithValue(cards, 14)
		single := highestExcluding(cards, map[int]bool{14: true}, 1)
		return makeSplit(cards, aces[0], single[0])
	}
	front := highestExcluding(cards, map[int]bool{tripValue: true}, 2)
	return makeSplit(cards, front[0], front[1])
}

// setStraightOrFlush plays the best straight or flush in back and the best
// remaining cards in front.
func setStraightOrFlush(seven [7]engine.Card, bestSplit HandSplit, bestEval engine.HandEvaluation) HandSplit {
	chosen := bestSplit
	chosenHigh := bestEval
	var chosenLow *engine.HandEvaluation

	for _, split := range splits(seven) {
		high := engine.EvaluateFive(split.High5)
		if high.RankClass != bestEval.RankClass {
			continue
		}
		low := engine.EvaluateTwo(split.Low2)
		if engine.Compare(low, high) > 0 {
			continue
		}
		switch cmp := engine.Compare(high, chosenHigh); {
		case cmp > 0:
			chosen, chosenHigh, chosenLow = split, high, &low
		case cmp == 0:
			if chosenLow == nil {
				l := engine.EvaluateTwo(chosen.Low2)
				chosenLow = &l
			}
			if engine.Compare(low, *chosenLow) > 0 {
				chosen, chosenHigh, chosenLow = split, high, &low
			}
		}
	}
	return chosen
}

func setFullHouse(cards []engine.Card) HandSplit {
	trips := repeatedValues(cards, 3)
	pairs := repeatedValues(cards, 2)

	// Two sets of trips: the lower set donates the front pair.
	if len(trips) >= 2 {
		front := indicesWithValue(cards, trips[1])
		return makeSplit(cards, front[0], front[1])
	}

	pairValue := pairs[0]
	if pairValue == 2 {
		// A pair of deuces stays in the full house; the leftovers front.
		front := highestExcluding(cards, map[int]bool{trips[0]: true, 2: true}, 2)
		return makeSplit(cards, front[0], front[1])
	}
	front := indicesWithValue(cards, pairValue)
	return makeSplit(cards, front[0], front[1])
}

func setQuads(cards []engine.Card) HandSplit {
	quadValue := repeatedValues(cards, 4)[0]
	others := highestExcluding(cards, map[int]bool{quadValue: true}, 3)

	// A natural pair among the leftovers always fronts ahead of the quads.
	if len(others) >= 2 && cards[others[0]].PokerValue() == cards[others[1]].PokerValue() {
		return makeSplit(cards, others[0], others[1])
	}
	if len(others) == 3 && cards[others[1]].PokerValue() == cards[others[2]].PokerValue() {
		return makeSplit(cards, others[1], others[2])
	}

	keep := false
	switch {
	case quadValue <= 6:
		keep = true
	case quadValue <= 10:
		keep = len(others) > 0 && cards[others[0]].PokerValue() >= 13
	}
	if keep {
		return makeSplit(cards, others[0], others[1])
	}
	quad := indicesWithValue(cards, quadValue)
	return makeSplit(cards, quad[0], quad[1])
}

// setRoyal keeps the royal in back unless the leftovers cannot make a front
// pair of sevens or better and breaking it down to a lesser straight or
// flush can.
func setRoyal(seven [7]engine.Card, bestSplit HandSplit) HandSplit {
	leftover := engine.EvaluateTwo(bestSplit.Low2)
	if frontSevensOrBetter(leftover) {
		return bestSplit
	}

	var alt *HandSplit
	var altLow engine.HandEvaluation
	for _, split := range splits(seven) {
		high := engine.EvaluateFive(split.High5)
		if high.RankClass < engine.Straight {
			continue
		}
		low := engine.EvaluateTwo(split.Low2)
		if !frontSevensOrBetter(low) || engine.Compare(low, high) > 0 {
			continue
		}
		if alt == nil || engine.Compare(low, altLow) > 0 {
			s := split
			alt, altLow = &s, low
		}
	}
	if alt != nil {
		return *alt
	}
	return bestSplit
}

func setFiveAces(cards []engine.Card, bestSplit HandSplit) HandSplit {
	leftover := engine.EvaluateTwo(bestSplit.Low2)
	if frontSevensOrBetter(leftover) {
		return bestSplit
	}
	// Split the aces: a pair of aces in front is unbeatable there.
	aces := indicesWithValue(cards, 14)
	naturals := make([]int, 0, 4)
	for _, i := range aces {
		if !cards[i].IsJoker() {
			naturals = append(naturals, i)
		}
	}
	return makeSplit(cards, naturals[0], naturals[1])
}

func frontSevensOrBetter(low engine.HandEvaluation) bool {
	return low.RankClass == engine.OnePair && low.Tiebreak[0] >= 7
}

// bestFive returns the split whose 5-card hand ranks highest, ignoring
// legality; it only classifies what the seven cards can make.
func bestFive(seven [7]engine.Card) (HandSplit, engine.HandEvaluation) {
	var best HandSplit
	var bestEval engine.HandEvaluation
	first := true
	for _, split := range splits(seven) {
		eval := engine.EvaluateFive(split.High5)
		if first || engine.Compare(eval, bestEval) > 0 {
			best, bestEval, first = split, eval, false
		}
	}
	return best, bestEval
}

// bestLegalSplit returns the maximum-scoring non-foul split, if any
func bestLegalSplit(seven [7]engine.Card) (HandSplit, bool) {
	var best *HandSplit
	bestScore := 0.0
	for _, split := range splits(seven) {
		if IsFoul(split) {
			continue
		}
		score := splitScore(split)
		if best == nil || score > bestScore {
			s := split
			best, bestScore = &s, score
		}
	}
	if best == nil {
		return HandSplit{}, false
	}
	return *best, true
}

// sortedDesc orders the seven cards by poker value, highest first, with the
// joker sorting among the aces.
func sortedDesc(seven [7]engine.Card) []engine.Card {
	cards := make([]engine.Card, 7)
	copy(cards, seven[:])
	sort.SliceStable(cards, func(i, j int) bool {
		return cards[i].PokerValue() > cards[j].PokerValue()
	})
	return cards
}

// makeSplit builds a split from the indices of the two front cards
func makeSplit(cards []engine.Card, i, j int) HandSplit {
	var split HandSplit
	split.Low2 = [2]engine.Card{cards[i], cards[j]}
	k := 0
	for idx, c := range cards {
		if idx != i && idx != j {
			split.High5[k] = c
			k++
		}
	}
	return split
}

// repeatedValues returns the distinct values that appear exactly n times,
// highest first. The joker counts as an ace.
func repeatedValues(cards []engine.Card, n int) []int {
	counts := map[int]int{}
	for _, c := range cards {
		counts[c.PokerValue()]++
	}
	out := []int{}
	for v, c := range counts {
		if c == n {
			out = append(out, v)
		}
	}
	sort.Sort(sort.Reverse(sort.IntSlice(out)))
	return out
}

// indicesWithValue returns the indices of cards with the given poker value
func indicesWithValue(cards []engine.Card, value int) []int {
	out := []int{}
	for i, c := range cards {
		if c.PokerValue() == value {
			out = append(out, i)
		}
	}
	return out
}

// highestExcluding returns up to n indices of the highest cards whose
// values are not excluded
func highestExcluding(cards []engine.Card, exclude map[int]bool, n int) []int {
	out := []int{}
	for i, c := range cards {
		if exclude[c.PokerValue()] {
			continue
		}
		out = append(out, i)
		if len(out) == n {
			break
		}
	}
	return out
}
