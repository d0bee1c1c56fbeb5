package blackjack

import (
	"fmt"

	"tablecoach-go/engine"
)

// Action is a basic strategy decision
type Action int

const (
	Hit Action = iota
	Stand
	Double
	Split
	Surrender
)

// String returns the action name
func (a Action) String() string {
	switch a {
	case Hit:
		return "HIT"
	case Stand:
		return "STAND"
	case Double:
		return "DOUBLE"
	case Split:
		return "SPLIT"
	case Surrender:
		return "SURRENDER"
	default:
		return "UNKNOWN"
	}
}

// Rules parameterizes the basic strategy table
type Rules struct {
	DealerHitsSoft17 bool
	DoubleAfterSplit bool
	SurrenderAllowed bool
	BlackjackPayout  float64
}

// DefaultRules is the common six-deck shoe rule set
var DefaultRules = Rules{
	DealerHitsSoft17: false,
	DoubleAfterSplit: true,
	SurrenderAllowed: true,
	BlackjackPayout:  1.5,
}

// Advice is a strategy recommendation with its reason
type Advice struct {
	Action Action
	Reason string
}

// GetOptimalPlay returns the basic strategy play for the player's cards
// against the dealer up-card. The decision comes from a static table over
// hand shape (pair / soft / hard) and dealer up-card; the running count is
// deliberately never consulted.
func GetOptimalPlay(playerCards []engine.Card, dealerUp engine.Card, canDouble, canSplit bool, handCount int, rules Rules) Advice {
	if len(playerCards) < 2 {
		panic(fmt.Sprintf("basic strategy needs at least 2 player cards, got %d", len(playerCards)))
	}

	up := dealerUpValue(dealerUp)
	eval := engine.EvaluateBlackjack(playerCards)
	firstTwo := len(playerCards) == 2

	// Pair decisions only apply to an unsplit two-card hand.
	if firstTwo && canSplit && playerCards[0].Rank == playerCards[1].Rank {
		if advice, ok := pairPlay(playerCards[0], up, rules); ok {
			return advice
		}
	}

	// Surrender is only available on the first two cards of the first hand.
	if rules.SurrenderAllowed && firstTwo && handCount == 1 && !eval.Soft {
		if advice, ok := surrenderPlay(eval.Total, up, rules); ok {
			return advice
		}
	}

	if eval.Soft {
		return softPlay(eval.Total, up, canDouble && firstTwo, rules)
	}
	return hardPlay(eval.Total, up, canDouble && firstTwo, rules)
}

// dealerUpValue maps the up-card to 2-10 or 11 for an ace
func dealerUpValue(card engine.Card) int {
	return card.BlackjackValue()
}

func pairPlay(card engine.Card, up int, rules Rules) (Advice, bool) {
	v := card.BlackjackValue()
	switch {
	case card.IsAce():
		return Advice{Split, "Always split aces."}, true
	case v == 8:
		return Advice{Split, "Always split eights."}, true
	case v == 10:
		return Advice{Stand, "Never split tens; twenty is a standing hand."}, true
	case v == 9:
		if up == 7 || up >= 10 {
			return Advice{Stand, "Eighteen beats a dealer seven; stand against strong up-cards."}, true
		}
		return Advice{Split, "Split nines against a weak or medium dealer card."}, true
	case v == 7:
		if up <= 7 {
			return Advice{Split, "Split sevens against seven or lower."}, true
		}
		return Advice{Hit, "Fourteen plays as a hit against a strong up-card."}, true
	case v == 6:
		if up >= 3 && up <= 6 {
			return Advice{Split, "Split sixes against a dealer bust card."}, true
		}
		if up == 2 && rules.DoubleAfterSplit {
			return Advice{Split, "Split sixes against a deuce when double after split is allowed."}, true
		}
		return Advice{Hit, "Twelve plays as a hit here."}, true
	case v == 5:
		// A pair of fives is a ten: never split, play the hard total.
		return Advice{}, false
	case v == 4:
		if rules.DoubleAfterSplit && (up == 5 || up == 6) {
			return Advice{Split, "Split fours against five or six with double after split."}, true
		}
		return Advice{Hit, "Eight plays as a hit."}, true
	default: // twos and threes
		if up >= 4 && up <= 7 {
			return Advice{Split, "Split low pairs against four through seven."}, true
		}
		if rules.DoubleAfterSplit && (up == 2 || up == 3) {
			return Advice{Split, "Split low pairs against two or three with double after split."}, true
		}
		return Advice{Hit, "Low pair plays as a hit against this up-card."}, true
	}
}

func surrenderPlay(total, up int, rules Rules) (Advice, bool) {
	if total == 16 && (up == 9 || up == 10 || up == 11) {
		return Advice{Surrender, "Sixteen against nine, ten, or ace loses more than half a bet; surrender."}, true
	}
	if total == 15 && up == 10 {
		return Advice{Surrender, "Fifteen against a ten is a surrender."}, true
	}
	if total == 15 && up == 11 && rules.DealerHitsSoft17 {
		return Advice{Surrender, "Fifteen against an ace is a surrender when the dealer hits soft seventeen."}, true
	}
	return Advice{}, false
}

func softPlay(total, up int, canDouble bool, rules Rules) Advice {
	switch {
	case total >= 20:
		return Advice{Stand, "Soft twenty or better always stands."}
	case total == 19:
		if up == 6 && rules.DealerHitsSoft17 && canDouble {
			return Advice{Double, "Soft nineteen doubles against six when the dealer hits soft seventeen."}
		}
		return Advice{Stand, "Soft nineteen stands."}
	case total == 18:
		switch {
		case up >= 3 && up <= 6:
			if canDouble {
				return Advice{Double, "Soft eighteen doubles against a dealer bust card."}
			}
			return Advice{Stand, "Soft eighteen stands when doubling is unavailable."}
		case up == 2:
			if rules.DealerHitsSoft17 && canDouble {
				return Advice{Double, "Soft eighteen doubles against a deuce when the dealer hits soft seventeen."}
			}
			return Advice{Stand, "Soft eighteen stands against a deuce."}
		case up == 7 || up == 8:
			return Advice{Stand, "Soft eighteen stands against seven or eight."}
		default:
			return Advice{Hit, "Soft eighteen hits against nine, ten, or ace."}
		}
	case total == 17:
		if up >= 3 && up <= 6 && canDouble {
			return Advice{Double, "Soft seventeen doubles against a dealer bust card."}
		}
		return Advice{Hit, "Soft seventeen never stands."}
	case total >= 15: // soft 15-16
		if up >= 4 && up <= 6 && canDouble {
			return Advice{Double, "Soft fifteen or sixteen doubles against four through six."}
		}
		return Advice{Hit, "Soft fifteen or sixteen hits."}
	default: // soft 13-14
		if (up == 5 || up == 6) && canDouble {
			return Advice{Double, "Soft thirteen or fourteen doubles against five or six."}
		}
		return Advice{Hit, "Soft thirteen or fourteen hits."}
	}
}

func hardPlay(total, up int, canDouble bool, rules Rules) Advice {
	switch {
	case total >= 17:
		return Advice{Stand, "Hard seventeen or better always stands."}
	case total >= 13:
		if up <= 6 {
			return Advice{Stand, "Stand on a stiff hand against a dealer bust card."}
		}
		return Advice{Hit, "Hit a stiff hand against a strong up-card."}
	case total == 12:
		if up >= 4 && up <= 6 {
			return Advice{Stand, "Twelve stands only against four through six."}
		}
		return Advice{Hit, "Twelve hits against everything else."}
	case total == 11:
		if up == 11 && !rules.DealerHitsSoft17 {
			return Advice{Hit, "Eleven hits against an ace when the dealer stands on soft seventeen."}
		}
		if canDouble {
			return Advice{Double, "Eleven is the strongest double."}
		}
		return Advice{Hit, "Eleven hits when doubling is unavailable."}
	case total == 10:
		if up <= 9 && canDouble {
			return Advice{Double, "Ten doubles against nine or lower."}
		}
		return Advice{Hit, "Ten hits against a ten or ace."}
	case total == 9:
		if up >= 3 && up <= 6 && canDouble {
			return Advice{Double, "Nine doubles against three through six."}
		}
		return Advice{Hit, "Nine hits."}
	default:
		return Advice{Hit, "Eight or less always hits."}
	}
}
