package videopoker

import (
	"testing"

	"tablecoach-go/engine"
)

func TestRoyalFlushBonusAtMaxCoins(t *testing.T) {
	royal := engine.EvaluateFive(vp("As", "Ks", "Qs", "Js", "10s"))
	if got := Payout(royal, JacksOrBetter, 4); got != 1000 {
		t.Errorf("royal at 4 coins pays %d, want 1000", got)
	}
	if got := Payout(royal, JacksOrBetter, 5); got != 4000 {
		t.Errorf("royal at max coins pays %d, want 4000", got)
	}
}

func TestQuadRankSplitsByVariant(t *testing.T) {
	aces := engine.EvaluateFive(vp("As", "Ah", "Ad", "Ac", "9s"))
	treys := engine.EvaluateFive(vp("3s", "3h", "3d", "3c", "9s"))
	sevens := engine.EvaluateFive(vp("7s", "7h", "7d", "7c", "9s"))

	cases := []struct {
		ev      engine.HandEvaluation
		variant Variant
		want    int64
	}{
		{aces, JacksOrBetter, 25},
		{aces, BonusPoker, 80},
		{aces, DoubleBonus, 160},
		{treys, BonusPoker, 40},
		{treys, DoubleBonus, 80},
		{sevens, BonusPoker, 25},
		{sevens, DoubleBonus, 50},
	}
	for _, c := range cases {
		if got := PayoutPerCoin(c.ev, c.variant, 1); got != c.want {
			t.Errorf("%s quad payout on %s = %d, want %d", c.ev.Label, c.variant, got, c.want)
		}
	}
}

func TestJacksOrBetterThreshold(t *testing.T) {
	jacks := engine.EvaluateFive(vp("Js", "Jh", "8d", "5c", "2s"))
	tens := engine.EvaluateFive(vp("10s", "10h", "8d", "5c", "2s"))

	if got := PayoutPerCoin(jacks, JacksOrBetter, 1); got != 1 {
		t.Errorf("pair of jacks pays %d, want 1", got)
	}
	if got := PayoutPerCoin(tens, JacksOrBetter, 1); got != 0 {
		t.Errorf("pair of tens pays %d, want 0", got)
	}
}

func TestDoubleBonusTwoPairPaysEven(t *testing.T) {
	twoPair := engine.EvaluateFive(vp("Js", "Jh", "8d", "8c", "2s"))
	if got := PayoutPerCoin(twoPair, JacksOrBetter, 1); got != 2 {
		t.Errorf("two pair on Jacks or Better pays %d, want 2", got)
	}
	if got := PayoutPerCoin(twoPair, DoubleBonus, 1); got != 1 {
		t.Errorf("two pair on Double Bonus pays %d, want 1", got)
	}
}
