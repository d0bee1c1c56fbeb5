package trainer

import (
	"testing"

	"tablecoach-go/engine"
)

func TestParseCards(t *testing.T) {
	cards, err := ParseCards("AS kh 10d tC joker")
	if err != nil {
		t.Fatalf("parse failed: %v", err)
	}
	if len(cards) != 5 {
		t.Fatalf("parsed %d cards, want 5", len(cards))
	}

	want := []engine.Card{
		{Rank: "A", Suit: "♠️"},
		{Rank: "K", Suit: "♥️"},
		{Rank: "10", Suit: "♦️"},
		{Rank: "10", Suit: "♣️"},
		{Rank: engine.JokerRank},
	}
	for i, c := range cards {
		if c.Rank != want[i].Rank || c.Suit != want[i].Suit {
			t.Errorf("card %d = %+v, want %+v", i, c, want[i])
		}
	}
}

func TestParseCardsCommaSeparated(t *testing.T) {
	cards, err := ParseCards("9s, 8h, 7d")
	if err != nil || len(cards) != 3 {
		t.Fatalf("parse = %v cards, err %v; want 3, nil", len(cards), err)
	}
}

func TestParseCardsRejectsGarbage(t *testing.T) {
	for _, input := range []string{"", "ZZ", "1S", "AX", "A"} {
		if _, err := ParseCards(input); err == nil {
			t.Errorf("ParseCards(%q) accepted bad input", input)
		}
	}
}

func TestParseCardsExact(t *testing.T) {
	if _, err := ParseCardsExact("AS KH", 5); err == nil {
		t.Error("two cards should not satisfy an exact count of five")
	}
	if _, err := ParseCardsExact("AS KH QD JC 10S", 5); err != nil {
		t.Errorf("five valid cards rejected: %v", err)
	}
}

func TestParseResults(t *testing.T) {
	results, err := parseResults("bbp t, p")
	if err != nil {
		t.Fatalf("parse failed: %v", err)
	}
	if len(results) != 5 {
		t.Fatalf("parsed %d results, want 5", len(results))
	}
	if _, err := parseResults("BXP"); err == nil {
		t.Error("bad result letter accepted")
	}
	if _, err := parseResults(""); err == nil {
		t.Error("empty result string accepted")
	}
}
