package engine

// Rank of the joker card used in Pai Gow shoes. The joker has no suit.
const JokerRank = "Joker"

// CardSuits defines the available card suits
var CardSuits = []string{"♠️", "♥️", "♦️", "♣️"}

// CardRanks lists the thirteen standard ranks in ascending order
var CardRanks = []string{"2", "3", "4", "5", "6", "7", "8", "9", "10", "J", "Q", "K", "A"}

// pokerValues maps ranks to poker ordering values (deuce low, ace high)
var pokerValues = map[string]int{
	"2": 2, "3": 3, "4": 4, "5": 5, "6": 6, "7": 7, "8": 8, "9": 9, "10": 10,
	"J": 11, "Q": 12, "K": 13, "A": 14,
}

// Card represents a playing card. ID is unique within one shoe generation.
// Cards are immutable once dealt.
type Card struct {
	Rank string `json:"rank"`
	Suit string `json:"suit"`
	ID   int    `json:"id"`
}

// NewCard creates a new card
func NewCard(rank, suit string, id int) Card {
	return Card{Rank: rank, Suit: suit, ID: id}
}

// String returns the string representation of a card
func (c Card) String() string {
	if c.IsJoker() {
		return "🃏"
	}
	return c.Rank + c.Suit
}

// IsJoker checks if the card is the joker
func (c Card) IsJoker() bool {
	return c.Rank == JokerRank
}

// IsAce checks if the card is an Ace
func (c Card) IsAce() bool {
	return c.Rank == "A"
}

// IsTen checks if the card has a value of 10 (10, J, Q, K)
func (c Card) IsTen() bool {
	return c.Rank == "10" || c.Rank == "J" || c.Rank == "Q" || c.Rank == "K"
}

// BlackjackValue returns the blackjack value of the card (ace counted as 11)
func (c Card) BlackjackValue() int {
	switch {
	case c.IsAce():
		return 11
	case c.IsTen():
		return 10
	default:
		return pokerValues[c.Rank]
	}
}

// BaccaratValue returns the baccarat value of the card (0-9)
func (c Card) BaccaratValue() int {
	switch {
	case c.IsAce():
		return 1
	case c.IsTen():
		return 0
	default:
		return pokerValues[c.Rank]
	}
}

// PokerValue returns the poker ordering value (2-14, ace high).
// The joker is valued as an ace; joker-specific handling happens
// in the evaluator before this is consulted.
func (c Card) PokerValue() int {
	if c.IsJoker() {
		return 14
	}
	return pokerValues[c.Rank]
}

// HiLoTag returns the Hi-Lo count tag for the card:
// +1 for 2-6, 0 for 7-9 (and the joker), -1 for tens, faces and aces.
func (c Card) HiLoTag() int {
	if c.IsJoker() {
		return 0
	}
	v := pokerValues[c.Rank]
	switch {
	case v >= 2 && v <= 6:
		return 1
	case v >= 7 && v <= 9:
		return 0
	default:
		return -1
	}
}
