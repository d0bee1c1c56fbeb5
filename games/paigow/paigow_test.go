package paigow

import (
	"testing"

	"tablecoach-go/engine"
)

var pgSuits = map[byte]string{'s': "♠️", 'h': "♥️", 'd': "♦️", 'c': "♣️"}

func seven(codes ...string) [7]engine.Card {
	var out [7]engine.Card
	for i, code := range codes {
		if code == "Jk" {
			out[i] = engine.Card{Rank: engine.JokerRank}
			continue
		}
		out[i] = engine.Card{
			Rank: code[:len(code)-1],
			Suit: pgSuits[code[len(code)-1]],
		}
	}
	return out
}

func frontValues(split HandSplit) (int, int) {
	a, b := split.Low2[0].PokerValue(), split.Low2[1].PokerValue()
	if a < b {
		a, b = b, a
	}
	return a, b
}

func TestIsFoul(t *testing.T) {
	// Pair in front, ace high in back.
	foul := HandSplit{
		High5: [5]engine.Card{
			{Rank: "A", Suit: "♠️"}, {Rank: "J", Suit: "♥️"}, {Rank: "9", Suit: "♦️"},
			{Rank: "6", Suit: "♣️"}, {Rank: "3", Suit: "♠️"},
		},
		Low2: [2]engine.Card{{Rank: "K", Suit: "♠️"}, {Rank: "K", Suit: "♥️"}},
	}
	if !IsFoul(foul) {
		t.Error("pair front over ace-high back should foul")
	}

	legal := HandSplit{
		High5: [5]engine.Card{
			{Rank: "K", Suit: "♠️"}, {Rank: "K", Suit: "♥️"}, {Rank: "9", Suit: "♦️"},
			{Rank: "6", Suit: "♣️"}, {Rank: "3", Suit: "♠️"},
		},
		Low2: [2]engine.Card{{Rank: "A", Suit: "♠️"}, {Rank: "J", Suit: "♥️"}},
	}
	if IsFoul(legal) {
		t.Error("pair back over ace-high front should not foul")
	}
}

func TestHouseWayTwoPairSplits(t *testing.T) {
	split := SetHouseWay(seven("Ks", "Kh", "3d", "3c", "9s", "7h", "5d"))
	hi, lo := frontValues(split)
	if hi != 3 || lo != 3 {
		t.Errorf("kings and threes should front the threes, got front %d/%d", hi, lo)
	}
	back := engine.EvaluateFive(split.High5)
	if back.RankClass != engine.OnePair || back.Tiebreak[0] != 13 {
		t.Errorf("back hand = %s, want pair of kings", back.Label)
	}
}

func TestHouseWayAcesUpStayTogether(t *testing.T) {
	// Aces with a small second pair keep both pairs in back.
	split := SetHouseWay(seven("As", "Ah", "5d", "5c", "Qs", "9h", "7d"))
	hi, lo := frontValues(split)
	if hi != 12 || lo != 9 {
		t.Errorf("aces up should front queen-nine, got %d/%d", hi, lo)
	}
	back := engine.EvaluateFive(split.High5)
	if back.RankClass != engine.TwoPair {
		t.Errorf("back hand = %s, want two pair", back.Label)
	}
}

func TestHouseWayThreePairs(t *testing.T) {
	split := SetHouseWay(seven("Ks", "Kh", "9s", "9h", "5s", "5h", "2d"))
	hi, lo := frontValues(split)
	if hi != 13 || lo != 13 {
		t.Errorf("three pairs should front the kings, got %d/%d", hi, lo)
	}
}

func TestHouseWayThreeAces(t *testing.T) {
	split := SetHouseWay(seven("As", "Ah", "Ad", "Kc", "9s", "7h", "4d"))
	hi, lo := frontValues(split)
	if hi != 14 || lo != 13 {
		t.Errorf("three aces should front ace-king, got %d/%d", hi, lo)
	}
}

func TestHouseWayFullHouse(t *testing.T) {
	split := SetHouseWay(seven("Qs", "Qh", "Qd", "5c", "5s", "9h", "7d"))
	hi, lo := frontValues(split)
	if hi != 5 || lo != 5 {
		t.Errorf("full house should front the pair, got %d/%d", hi, lo)
	}

	// A pair of deuces stays in the full house.
	deuces := SetHouseWay(seven("Qs", "Qh", "Qd", "2c", "2s", "9h", "7d"))
	back := engine.EvaluateFive(deuces.High5)
	if back.RankClass != engine.FullHouse {
		t.Errorf("back hand = %s, want the full house kept", back.Label)
	}
}

func TestHouseWayQuads(t *testing.T) {
	// Low quads stay together.
	low := SetHouseWay(seven("4s", "4h", "4d", "4c", "As", "Kh", "9d"))
	if engine.EvaluateFive(low.High5).RankClass != engine.FourOfAKind {
		t.Error("quad fours should stay in back")
	}

	// Jacks or better split into two pairs.
	high := SetHouseWay(seven("Js", "Jh", "Jd", "Jc", "9s", "7h", "3d"))
	hi, lo := frontValues(high)
	if hi != 11 || lo != 11 {
		t.Errorf("quad jacks should split, got front %d/%d", hi, lo)
	}

	// Medium quads keep only with a king or better in front.
	medium := SetHouseWay(seven("9s", "9h", "9d", "9c", "Ks", "7h", "3d"))
	if engine.EvaluateFive(medium.High5).RankClass != engine.FourOfAKind {
		t.Error("quad nines with a king available should stay in back")
	}
}

func TestHouseWayFiveAces(t *testing.T) {
	split := SetHouseWay(seven("As", "Ah", "Ad", "Ac", "Jk", "Ks", "Kh"))
	back := engine.EvaluateFive(split.High5)
	low := engine.EvaluateTwo(split.Low2)
	if back.RankClass != engine.FiveAces {
		t.Errorf("back hand = %s, want five aces", back.Label)
	}
	if low.RankClass != engine.OnePair || low.Tiebreak[0] != 13 {
		t.Errorf("front hand = %s, want pair of kings", low.Label)
	}

	// Without a decent front the aces break up.
	broken := SetHouseWay(seven("As", "Ah", "Ad", "Ac", "Jk", "9s", "5h"))
	brokenLow := engine.EvaluateTwo(broken.Low2)
	if brokenLow.RankClass != engine.OnePair || brokenLow.Tiebreak[0] != 14 {
		t.Errorf("front hand = %s, want pair of aces", brokenLow.Label)
	}
}

func TestHouseWayNeverFouls(t *testing.T) {
	shoe := engine.NewShoe(1, true)
	for round := 0; round < 100; round++ {
		var hand [7]engine.Card
		jokers := 0
		for i := 0; i < 7; i++ {
			hand[i] = shoe.Deal()
			if hand[i].IsJoker() {
				jokers++
			}
		}
		if jokers > 1 {
			continue
		}
		if split := SetHouseWay(hand); IsFoul(split) {
			t.Fatalf("house way fouled on %v: %+v", hand, split)
		}
	}
}

func TestFindOptimalSetNeverFoulsAndDominatesHouseWay(t *testing.T) {
	shoe := engine.NewShoe(1, true)
	for round := 0; round < 100; round++ {
		var hand [7]engine.Card
		jokers := 0
		for i := 0; i < 7; i++ {
			hand[i] = shoe.Deal()
			if hand[i].IsJoker() {
				jokers++
			}
		}
		if jokers > 1 {
			continue
		}

		opt := FindOptimalSet(hand)
		if IsFoul(opt.HandSplit) {
			t.Fatalf("optimal set fouled on %v", hand)
		}
		house := SetHouseWay(hand)
		if !IsFoul(house) && opt.Score < splitScore(house) {
			t.Fatalf("optimal score %.1f below house way %.1f on %v", opt.Score, splitScore(house), hand)
		}
		if opt.IsHouseWay != sameSplit(opt.HandSplit, house) {
			t.Fatalf("IsHouseWay flag inconsistent on %v", hand)
		}
	}
}
