package engine

import (
	"fmt"
	"math/rand"
)

// BuildDeck returns all 54 cards in ascending order.
func BuildDeck() []Card {
	deck := make([]Card, DeckSize)
	for i := range deck {
		deck[i] = Card{num: int8(i)}
	}
	return deck
}

// Shuffle returns a shuffled copy of deck using rng.
func Shuffle(deck []Card, rng *rand.Rand) []Card {
	shuffled := make([]Card, len(deck))
	copy(shuffled, deck)
	rng.Shuffle(len(shuffled), func(i, j int) {
		shuffled[i], shuffled[j] = shuffled[j], shuffled[i]
	})
	return shuffled
}

// New deals a fresh game for players seats from a deck shuffled with rng.
func New(players int, rng *rand.Rand) (*GameState, error) {
	return NewFromDeck(players, Shuffle(BuildDeck(), rng))
}

// NewFromDeck deals a game from deck as given, without shuffling. Each
// player draws HandSize cards in a row before the next player draws.
func NewFromDeck(players int, deck []Card) (*GameState, error) {
	if players < 1 {
		return nil, fmt.Errorf("%w: %d players", ErrInvalidPlayer, players)
	}
	if players*HandSize > len(deck) {
		return nil, fmt.Errorf("%w: %d players need %d cards, deck has %d",
			ErrTooManyPlayers, players, players*HandSize, len(deck))
	}

	gs := &GameState{
		Hands: make([][]Card, players),
		Deck:  append([]Card(nil), deck...),
	}
	for p := 0; p < players; p++ {
		gs.Hands[p] = make([]Card, 0, HandSize)
		for i := 0; i < HandSize; i++ {
			if err := gs.Draw(p); err != nil {
				return nil, err
			}
		}
	}
	return gs, nil
}
