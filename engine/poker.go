package engine

import (
	"fmt"
	"sort"
)

// EvaluateFive classifies a 5-card poker hand. The joker (Pai Gow) is
// semi-wild: it completes, in priority order, five aces, a royal flush, a
// straight flush, a full house from two natural pairs, a flush, or a
// straight; four of a kind must already exist without it. When nothing
// completes, the joker is simply an ace.
func EvaluateFive(cards [5]Card) HandEvaluation {
	naturals := make([]Card, 0, 5)
	jokers := 0
	for _, c := range cards {
		if c.IsJoker() {
			jokers++
		} else {
			naturals = append(naturals, c)
		}
	}
	if jokers == 0 {
		return evaluateNaturalFive(cards[:])
	}
	if jokers > 1 {
		panic("at most one joker per hand")
	}
	return evaluateJokerFive(naturals)
}

// EvaluateTwo classifies a 2-card hand (Pai Gow front). Only pair and high
// card are possible; the joker counts as an ace.
func EvaluateTwo(cards [2]Card) HandEvaluation {
	a, b := cards[0].PokerValue(), cards[1].PokerValue()
	if a < b {
		a, b = b, a
	}
	if a == b {
		return HandEvaluation{
			RankClass: OnePair,
			Label:     fmt.Sprintf("Pair of %ss", rankName(a)),
			Tiebreak:  []int{a},
		}
	}
	return HandEvaluation{
		RankClass: HighCard,
		Label:     fmt.Sprintf("%s High", rankName(a)),
		Tiebreak:  []int{a, b},
	}
}

// evaluateNaturalFive classifies five joker-free cards.
func evaluateNaturalFive(cards []Card) HandEvaluation {
	values := make([]int, 5)
	for i, c := range cards {
		values[i] = c.PokerValue()
	}
	sort.Sort(sort.Reverse(sort.IntSlice(values)))

	flush := cards[0].Suit != "" &&
		cards[1].Suit == cards[0].Suit && cards[2].Suit == cards[0].Suit &&
		cards[3].Suit == cards[0].Suit && cards[4].Suit == cards[0].Suit
	straightHigh := straightHighFrom(values)

	counts := map[int]int{}
	for _, v := range values {
		counts[v]++
	}

	switch {
	case flush && straightHigh == 14:
		return madeHand(RoyalFlush, []int{14})
	case flush && straightHigh > 0:
		return madeHand(StraightFlush, []int{straightHigh})
	}

	// Group values by multiplicity, higher counts first, then higher ranks.
	type group struct{ value, count int }
	groups := make([]group, 0, 5)
	for v, n := range counts {
		groups = append(groups, group{v, n})
	}
	sort.Slice(groups, func(i, j int) bool {
		if groups[i].count != groups[j].count {
			return groups[i].count > groups[j].count
		}
		return groups[i].value > groups[j].value
	})

	tiebreak := make([]int, 0, 5)
	for _, g := range groups {
		tiebreak = append(tiebreak, g.value)
	}

	switch {
	case groups[0].count == 4:
		return madeHand(FourOfAKind, tiebreak)
	case groups[0].count == 3 && groups[1].count == 2:
		return madeHand(FullHouse, tiebreak)
	case flush:
		return madeHand(Flush, values)
	case straightHigh > 0:
		return madeHand(Straight, []int{straightHigh})
	case groups[0].count == 3:
		return madeHand(ThreeOfAKind, tiebreak)
	case groups[0].count == 2 && groups[1].count == 2:
		return madeHand(TwoPair, tiebreak)
	case groups[0].count == 2:
		return madeHand(OnePair, tiebreak)
	default:
		return madeHand(HighCard, values)
	}
}

// evaluateJokerFive classifies four natural cards plus the joker.
func evaluateJokerFive(naturals []Card) HandEvaluation {
	values := make([]int, 4)
	aces := 0
	for i, c := range naturals {
		values[i] = c.PokerValue()
		if c.IsAce() {
			aces++
		}
	}
	sort.Sort(sort.Reverse(sort.IntSlice(values)))

	sameSuit := naturals[0].Suit != "" &&
		naturals[1].Suit == naturals[0].Suit &&
		naturals[2].Suit == naturals[0].Suit &&
		naturals[3].Suit == naturals[0].Suit
	distinct := values[0] > values[1] && values[1] > values[2] && values[2] > values[3]
	completion := jokerStraightHigh(values)

	// Five aces: the one class above a royal.
	if aces == 4 {
		return madeHand(FiveAces, []int{14})
	}

	if sameSuit && distinct {
		if completion == 14 && values[3] >= 10 {
			return madeHand(RoyalFlush, []int{14})
		}
		if completion > 0 {
			return madeHand(StraightFlush, []int{completion})
		}
	}

	counts := map[int]int{}
	for _, v := range values {
		counts[v]++
	}

	// Natural four of a kind stands on its own; the joker is the ace kicker.
	for v, n := range counts {
		if n == 4 {
			return madeHand(FourOfAKind, []int{v, 14})
		}
	}

	// Two natural pairs let the joker fill the higher pair to a full house.
	pairs := make([]int, 0, 2)
	for v, n := range counts {
		if n == 2 {
			pairs = append(pairs, v)
		}
	}
	if len(pairs) == 2 {
		sort.Sort(sort.Reverse(sort.IntSlice(pairs)))
		return madeHand(FullHouse, []int{pairs[0], pairs[1]})
	}

	if sameSuit {
		tiebreak := append([]int{14}, values...)
		return madeHand(Flush, tiebreak[:5])
	}
	if completion > 0 {
		return madeHand(Straight, []int{completion})
	}

	// Nothing completes: the joker is an ace and the hand is re-evaluated
	// normally (high card or a pair arrangement involving the ace).
	five := [5]Card{naturals[0], naturals[1], naturals[2], naturals[3], {Rank: "A"}}
	return evaluateNaturalFive(five[:])
}

// evaluateBestOfSeven classifies seven cards as the strongest 5-card hand
// among the C(7,5)=21 subsets.
func evaluateBestOfSeven(cards []Card) HandEvaluation {
	var best HandEvaluation
	first := true
	for i := 0; i < 7; i++ {
		for j := i + 1; j < 7; j++ {
			var five [5]Card
			k := 0
			for idx, c := range cards {
				if idx != i && idx != j {
					five[k] = c
					k++
				}
			}
			eval := EvaluateFive(five)
			if first || Compare(eval, best) > 0 {
				best, first = eval, false
			}
		}
	}
	return best
}

func madeHand(class HandClass, tiebreak []int) HandEvaluation {
	return HandEvaluation{
		RankClass: class,
		Label:     HandClassNames[class],
		Tiebreak:  tiebreak,
	}
}

// straightHighFrom returns the high card of the straight formed by five
// values sorted descending, or 0. The wheel A-2-3-4-5 is the 5-high straight.
func straightHighFrom(values []int) int {
	run := values[0]-1 == values[1] && values[1]-1 == values[2] &&
		values[2]-1 == values[3] && values[3]-1 == values[4]
	if run {
		return values[0]
	}
	if values[0] == 14 && values[1] == 5 && values[2] == 4 && values[3] == 3 && values[4] == 2 {
		return 5
	}
	return 0
}

// jokerStraightHigh returns the highest straight the joker can complete with
// four natural values (descending order), or 0. Candidate windows are tried
// from ace-high down to the wheel.
func jokerStraightHigh(values []int) int {
	for high := 14; high >= 5; high-- {
		window := map[int]bool{}
		if high == 5 {
			for _, v := range []int{14, 2, 3, 4, 5} {
				window[v] = true
			}
		} else {
			for v := high - 4; v <= high; v++ {
				window[v] = true
			}
		}
		seen := map[int]bool{}
		fits := true
		for _, v := range values {
			if !window[v] || seen[v] {
				fits = false
				break
			}
			seen[v] = true
		}
		if fits {
			return high
		}
	}
	return 0
}

func rankName(value int) string {
	switch value {
	case 14:
		return "Ace"
	case 13:
		return "King"
	case 12:
		return "Queen"
	case 11:
		return "Jack"
	default:
		return fmt.Sprintf("%d", value)
	}
}
