package engine

import (
	"math/rand"
	"time"
)

// Shoe holds the undealt portion of one or more shuffled decks plus the
// discards dealt from it. len(undealt) + len(discards) == TotalCards at
// all times within one generation.
type Shoe struct {
	undealt      []Card
	discards     []Card
	numDecks     int
	includeJoker bool
	totalCards   int
	generation   int
	rng          *rand.Rand
}

// NewShoe creates a shuffled shoe of numDecks decks. When includeJoker is
// set each deck carries one joker (Pai Gow shoes), 53 cards per deck.
func NewShoe(numDecks int, includeJoker bool) *Shoe {
	if numDecks < 1 {
		numDecks = 1
	}
	perDeck := 52
	if includeJoker {
		perDeck = 53
	}
	s := &Shoe{
		numDecks:     numDecks,
		includeJoker: includeJoker,
		totalCards:   numDecks * perDeck,
		rng:          rand.New(rand.NewSource(time.Now().UnixNano())),
	}
	s.Reinitialize()
	return s
}

// Reinitialize rebuilds and reshuffles the full shoe, starting a new
// generation. All previously dealt cards return to the undealt pile.
func (s *Shoe) Reinitialize() {
	s.generation++
	s.undealt = make([]Card, 0, s.totalCards)
	s.discards = s.discards[:0]

	id := 0
	for d := 0; d < s.numDecks; d++ {
		for _, suit := range CardSuits {
			for _, rank := range CardRanks {
				s.undealt = append(s.undealt, NewCard(rank, suit, id))
				id++
			}
		}
		if s.includeJoker {
			s.undealt = append(s.undealt, NewCard(JokerRank, "", id))
			id++
		}
	}

	s.rng.Shuffle(len(s.undealt), func(i, j int) {
		s.undealt[i], s.undealt[j] = s.undealt[j], s.undealt[i]
	})
}

// Deal deals one card from the shoe. Dealing from an exhausted shoe
// reinitializes it first rather than failing.
func (s *Shoe) Deal() Card {
	if len(s.undealt) == 0 {
		s.Reinitialize()
	}
	card := s.undealt[0]
	s.undealt = s.undealt[1:]
	s.discards = append(s.discards, card)
	return card
}

// CardsRemaining returns the number of undealt cards
func (s *Shoe) CardsRemaining() int {
	return len(s.undealt)
}

// CardsDealt returns the number of cards dealt this generation
func (s *Shoe) CardsDealt() int {
	return len(s.discards)
}

// TotalCards returns the full shoe size
func (s *Shoe) TotalCards() int {
	return s.totalCards
}

// NumDecks returns the number of decks in the shoe
func (s *Shoe) NumDecks() int {
	return s.numDecks
}

// IncludesJoker reports whether the shoe carries jokers
func (s *Shoe) IncludesJoker() bool {
	return s.includeJoker
}

// Generation returns the shoe generation, incremented on every reinitialization
func (s *Shoe) Generation() int {
	return s.generation
}

// Discards returns the cards dealt so far this generation, in deal order
func (s *Shoe) Discards() []Card {
	out := make([]Card, len(s.discards))
	copy(out, s.discards)
	return out
}
