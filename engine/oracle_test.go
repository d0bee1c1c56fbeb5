package engine

import (
	"testing"

	poker "github.com/paulhankin/poker"
)

// The library's score direction is an implementation detail, so the test
// calibrates it against two hands whose order is beyond dispute.

func toOracle(t *testing.T, c Card) poker.Card {
	t.Helper()
	var s poker.Suit
	switch c.Suit {
	case "♣️":
		s = poker.Club
	case "♦️":
		s = poker.Diamond
	case "♥️":
		s = poker.Heart
	default:
		s = poker.Spade
	}
	// Our values run 2..14 ace high; the library runs 1..13 ace low.
	v := c.PokerValue()
	r := poker.Rank(v)
	if v == 14 {
		r = poker.Rank(1)
	}
	card, err := poker.MakeCard(s, r)
	if err != nil {
		t.Fatalf("oracle rejected %v: %v", c, err)
	}
	return card
}

func oracleScore(t *testing.T, cards [5]Card) int16 {
	t.Helper()
	var a [5]poker.Card
	for i, c := range cards {
		a[i] = toOracle(t, c)
	}
	return poker.Eval5(&a)
}

func TestEvaluatorAgreesWithOracle(t *testing.T) {
	royal := hand5("As", "Ks", "Qs", "Js", "10s")
	junk := hand5("2s", "3h", "4d", "5c", "7s")
	biggerIsBetter := oracleScore(t, royal) > oracleScore(t, junk)

	oracleCompare := func(a, b [5]Card) int {
		sa, sb := oracleScore(t, a), oracleScore(t, b)
		if sa == sb {
			return 0
		}
		stronger := sa > sb
		if !biggerIsBetter {
			stronger = !stronger
		}
		if stronger {
			return 1
		}
		return -1
	}

	// Disjoint 5-card hands from single-deck generations, all pairs compared.
	shoe := NewShoe(1, false)
	for round := 0; round < 25; round++ {
		shoe.Reinitialize()
		hands := make([][5]Card, 10)
		for i := range hands {
			for j := 0; j < 5; j++ {
				hands[i][j] = shoe.Deal()
			}
		}
		for i := 0; i < len(hands); i++ {
			for j := i + 1; j < len(hands); j++ {
				got := Compare(EvaluateFive(hands[i]), EvaluateFive(hands[j]))
				want := oracleCompare(hands[i], hands[j])
				if got != want {
					t.Fatalf("disagreement on %v vs %v: got %d, oracle %d",
						hands[i], hands[j], got, want)
				}
			}
		}
	}
}
