package videopoker

import "tablecoach-go/engine"

// Variant selects a video poker paytable
type Variant int

const (
	JacksOrBetter Variant = iota
	BonusPoker
	DoubleBonus
)

// String returns the variant display name
func (v Variant) String() string {
	switch v {
	case JacksOrBetter:
		return "Jacks or Better"
	case BonusPoker:
		return "Bonus Poker"
	case DoubleBonus:
		return "Double Bonus"
	default:
		return "Unknown"
	}
}

// MaxCoins is the coin count that unlocks the royal flush bonus
const MaxCoins = 5

// payoutRow is a per-coin paytable for one variant. Four-of-a-kind payouts
// are split by quad rank for the bonus variants.
type payoutRow struct {
	royalFlush    int64
	royalFlushMax int64 // per-coin payout at MaxCoins
	straightFlush int64
	fourAces      int64
	fourLow       int64 // four 2s, 3s or 4s
	fourHigh      int64 // four 5s through kings
	fullHouse     int64
	flush         int64
	straight      int64
	threeOfAKind  int64
	twoPair       int64
	jacksOrBetter int64
}

var paytables = map[Variant]payoutRow{
	JacksOrBetter: {250, 800, 50, 25, 25, 25, 9, 6, 4, 3, 2, 1},
	BonusPoker:    {250, 800, 50, 80, 40, 25, 8, 5, 4, 3, 2, 1},
	DoubleBonus:   {250, 800, 50, 160, 80, 50, 10, 7, 5, 3, 1, 1},
}

// PayoutPerCoin returns the per-coin payout for an evaluated 5-card hand.
// coins only matters for the royal flush bonus at max coins.
func PayoutPerCoin(ev engine.HandEvaluation, variant Variant, coins int64) int64 {
	row := paytables[variant]
	switch ev.RankClass {
	case engine.RoyalFlush:
		if coins >= MaxCoins {
			return row.royalFlushMax
		}
		return row.royalFlush
	case engine.StraightFlush:
		return row.straightFlush
	case engine.FourOfAKind:
		quad := ev.Tiebreak[0]
		switch {
		case quad == 14:
			return row.fourAces
		case quad <= 4:
			return row.fourLow
		default:
			return row.fourHigh
		}
	case engine.FullHouse:
		return row.fullHouse
	case engine.Flush:
		return row.flush
	case engine.Straight:
		return row.straight
	case engine.ThreeOfAKind:
		return row.threeOfAKind
	case engine.TwoPair:
		return row.twoPair
	case engine.OnePair:
		if ev.Tiebreak[0] >= 11 {
			return row.jacksOrBetter
		}
		return 0
	default:
		return 0
	}
}

// Payout returns the total payout for a final hand at the given coin count
func Payout(ev engine.HandEvaluation, variant Variant, coins int64) int64 {
	return PayoutPerCoin(ev, variant, coins) * coins
}
