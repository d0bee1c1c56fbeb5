package engine

import "fmt"

// Game identifies the rule system a hand is evaluated under. Keeping this a
// closed enum means new variants are exhaustively checked at compile time
// instead of dispatching on strings.
type Game int

const (
	Blackjack Game = iota
	Baccarat
	VideoPoker
	PaiGow
)

// String returns the game name
func (g Game) String() string {
	switch g {
	case Blackjack:
		return "blackjack"
	case Baccarat:
		return "baccarat"
	case VideoPoker:
		return "video_poker"
	case PaiGow:
		return "pai_gow"
	default:
		return "unknown"
	}
}

// HandClass is the coarse strength class of a poker hand. Classes are
// comparable within one game variant only. FiveAces outranks everything and
// exists only in joker (Pai Gow) contexts.
type HandClass int

const (
	HighCard HandClass = iota
	OnePair
	TwoPair
	ThreeOfAKind
	Straight
	Flush
	FullHouse
	FourOfAKind
	StraightFlush
	RoyalFlush
	FiveAces
)

// HandClassNames maps hand classes to display names
var HandClassNames = map[HandClass]string{
	HighCard:      "High Card",
	OnePair:       "Pair",
	TwoPair:       "Two Pair",
	ThreeOfAKind:  "Three of a Kind",
	Straight:      "Straight",
	Flush:         "Flush",
	FullHouse:     "Full House",
	FourOfAKind:   "Four of a Kind",
	StraightFlush: "Straight Flush",
	RoyalFlush:    "Royal Flush",
	FiveAces:      "Five Aces",
}

// HandEvaluation is the ranked classification of a hand. Two evaluations of
// the same game compare by RankClass first, then lexicographically by
// Tiebreak.
type HandEvaluation struct {
	RankClass HandClass
	Label     string
	Tiebreak  []int

	// Blackjack / baccarat extras
	Total   int
	Soft    bool
	Natural bool
}

// Compare orders two evaluations of the same game: -1 if a is weaker,
// 0 on an exact tie, 1 if a is stronger.
func Compare(a, b HandEvaluation) int {
	if a.RankClass != b.RankClass {
		if a.RankClass < b.RankClass {
			return -1
		}
		return 1
	}
	for i := 0; i < len(a.Tiebreak) && i < len(b.Tiebreak); i++ {
		if a.Tiebreak[i] != b.Tiebreak[i] {
			if a.Tiebreak[i] < b.Tiebreak[i] {
				return -1
			}
			return 1
		}
	}
	return 0
}

// Evaluate classifies cards under the given game's rules. Blackjack and
// baccarat accept two or more cards; poker games accept 2, 5, or 7 cards,
// where a 7-card hand classifies as the best 5-card hand it contains.
// A malformed card count is a caller contract violation and panics.
func Evaluate(cards []Card, game Game) HandEvaluation {
	switch game {
	case Blackjack:
		if len(cards) < 2 {
			panic(fmt.Sprintf("blackjack evaluation needs at least 2 cards, got %d", len(cards)))
		}
		return EvaluateBlackjack(cards)
	case Baccarat:
		if len(cards) < 2 {
			panic(fmt.Sprintf("baccarat evaluation needs at least 2 cards, got %d", len(cards)))
		}
		return EvaluateBaccarat(cards)
	case VideoPoker, PaiGow:
		switch len(cards) {
		case 2:
			return EvaluateTwo([2]Card{cards[0], cards[1]})
		case 5:
			return EvaluateFive([5]Card{cards[0], cards[1], cards[2], cards[3], cards[4]})
		case 7:
			return evaluateBestOfSeven(cards)
		default:
			panic(fmt.Sprintf("poker evaluation needs 2, 5 or 7 cards, got %d", len(cards)))
		}
	default:
		panic(fmt.Sprintf("unknown game %d", game))
	}
}

// EvaluateBlackjack totals a blackjack hand. Aces start at 11 and are
// demoted to 1 one at a time while the total is over 21. The hand is soft
// if an ace still counts as 11 in the final total.
func EvaluateBlackjack(cards []Card) HandEvaluation {
	total := 0
	aces := 0
	for _, c := range cards {
		total += c.BlackjackValue()
		if c.IsAce() {
			aces++
		}
	}
	softAces := aces
	for softAces > 0 && total > 21 {
		total -= 10
		softAces--
	}

	ev := HandEvaluation{
		Total:    total,
		Soft:     softAces > 0,
		Natural:  len(cards) == 2 && total == 21,
		Tiebreak: []int{total},
	}
	switch {
	case ev.Natural:
		ev.Label = "Blackjack"
	case total > 21:
		ev.Label = fmt.Sprintf("Bust (%d)", total)
	case ev.Soft:
		ev.Label = fmt.Sprintf("Soft %d", total)
	default:
		ev.Label = fmt.Sprintf("Hard %d", total)
	}
	return ev
}

// EvaluateBaccarat totals a baccarat hand modulo 10. A natural is a
// two-card total of 8 or 9.
func EvaluateBaccarat(cards []Card) HandEvaluation {
	total := 0
	for _, c := range cards {
		total += c.BaccaratValue()
	}
	total %= 10

	return HandEvaluation{
		Total:    total,
		Natural:  len(cards) == 2 && total >= 8,
		Tiebreak: []int{total},
		Label:    fmt.Sprintf("Total %d", total),
	}
}
