package engine

import "testing"

func bj(ranks ...string) []Card {
	cards := make([]Card, len(ranks))
	for i, r := range ranks {
		cards[i] = Card{Rank: r, Suit: CardSuits[i%len(CardSuits)]}
	}
	return cards
}

func TestEvaluateBlackjack(t *testing.T) {
	cases := []struct {
		ranks   []string
		total   int
		soft    bool
		natural bool
		label   string
	}{
		{[]string{"10", "7"}, 17, false, false, "Hard 17"},
		{[]string{"A", "K"}, 21, true, true, "Blackjack"},
		{[]string{"A", "9"}, 20, true, false, "Soft 20"},
		{[]string{"A", "A"}, 12, true, false, "Soft 12"},
		{[]string{"A", "A", "9"}, 21, true, false, "Soft 21"},
		{[]string{"A", "6", "10"}, 17, false, false, "Hard 17"},
		{[]string{"10", "9", "5"}, 24, false, false, "Bust (24)"},
		{[]string{"A", "A", "A", "8"}, 21, true, false, "Soft 21"},
	}
	for _, c := range cases {
		ev := EvaluateBlackjack(bj(c.ranks...))
		if ev.Total != c.total || ev.Soft != c.soft || ev.Natural != c.natural || ev.Label != c.label {
			t.Errorf("EvaluateBlackjack(%v) = total %d soft %v natural %v %q, want %d %v %v %q",
				c.ranks, ev.Total, ev.Soft, ev.Natural, ev.Label, c.total, c.soft, c.natural, c.label)
		}
	}
}

func TestEvaluateBaccarat(t *testing.T) {
	cases := []struct {
		ranks   []string
		total   int
		natural bool
	}{
		{[]string{"9", "4"}, 3, false},
		{[]string{"5", "3"}, 8, true},
		{[]string{"K", "9"}, 9, true},
		{[]string{"K", "10"}, 0, false},
		{[]string{"9", "4", "5"}, 8, false},
		{[]string{"A", "A"}, 2, false},
	}
	for _, c := range cases {
		ev := EvaluateBaccarat(bj(c.ranks...))
		if ev.Total != c.total || ev.Natural != c.natural {
			t.Errorf("EvaluateBaccarat(%v) = total %d natural %v, want %d %v",
				c.ranks, ev.Total, ev.Natural, c.total, c.natural)
		}
	}
}

func TestCompare(t *testing.T) {
	pairKings := HandEvaluation{RankClass: OnePair, Tiebreak: []int{13, 10, 7, 2}}
	pairNines := HandEvaluation{RankClass: OnePair, Tiebreak: []int{9, 14, 12, 5}}
	flush := HandEvaluation{RankClass: Flush, Tiebreak: []int{12, 10, 8, 6, 3}}

	if Compare(pairKings, pairNines) != 1 {
		t.Error("pair of kings should beat pair of nines")
	}
	if Compare(pairNines, flush) != -1 {
		t.Error("a pair should lose to a flush")
	}
	if Compare(pairKings, pairKings) != 0 {
		t.Error("identical evaluations should tie")
	}
}

func TestEvaluateDispatchPanicsOnBadCount(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Error("expected panic for a 3-card poker evaluation")
		}
	}()
	Evaluate(bj("A", "K", "Q"), VideoPoker)
}
