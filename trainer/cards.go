package trainer

import (
	"fmt"
	"strings"

	"tablecoach-go/engine"
)

var suitNames = map[byte]string{
	'S': "♠️",
	'H': "♥️",
	'D': "♦️",
	'C': "♣️",
}

// ParseCards reads a user-typed card list like "AS KH 10D 7C 2H". Ranks are
// A 2-10 J Q K (T also works for ten), suits are S H D C, and JOKER (or JK)
// names the Pai Gow joker.
func ParseCards(input string) ([]engine.Card, error) {
	fields := strings.FieldsFunc(strings.ToUpper(input), func(r rune) bool {
		return r == ' ' || r == ',' || r == '\t'
	})
	if len(fields) == 0 {
		return nil, fmt.Errorf("no cards given")
	}

	cards := make([]engine.Card, 0, len(fields))
	for _, token := range fields {
		card, err := parseCard(token)
		if err != nil {
			return nil, err
		}
		cards = append(cards, card)
	}
	return cards, nil
}

// ParseCardsExact parses and enforces an exact card count
func ParseCardsExact(input string, count int) ([]engine.Card, error) {
	cards, err := ParseCards(input)
	if err != nil {
		return nil, err
	}
	if len(cards) != count {
		return nil, fmt.Errorf("expected %d cards, got %d", count, len(cards))
	}
	return cards, nil
}

func parseCard(token string) (engine.Card, error) {
	if token == "JOKER" || token == "JK" {
		return engine.Card{Rank: engine.JokerRank}, nil
	}
	if len(token) < 2 {
		return engine.Card{}, fmt.Errorf("unrecognized card %q", token)
	}

	suit, ok := suitNames[token[len(token)-1]]
	if !ok {
		return engine.Card{}, fmt.Errorf("unrecognized suit in %q (use S, H, D or C)", token)
	}

	rank := token[:len(token)-1]
	if rank == "T" {
		rank = "10"
	}
	for _, r := range engine.CardRanks {
		if rank == r {
			return engine.Card{Rank: rank, Suit: suit}, nil
		}
	}
	return engine.Card{}, fmt.Errorf("unrecognized rank in %q", token)
}

// FormatCards joins cards for display
func FormatCards(cards []engine.Card) string {
	parts := make([]string, len(cards))
	for i, c := range cards {
		parts[i] = c.String()
	}
	return strings.Join(parts, " ")
}
