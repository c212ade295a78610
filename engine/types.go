package engine

import (
	"errors"
	"fmt"

	"golang.org/x/exp/slices"
)

const (
	DeckSize     = 54
	NumLines     = 3
	CardsPerLine = DeckSize / NumLines
	HandSize     = 13
	MaxPlayers   = DeckSize / HandSize
)

var (
	ErrCardRange      = errors.New("card out of range")
	ErrInvalidPlayer  = errors.New("invalid player")
	ErrEmptyDeck      = errors.New("deck is empty")
	ErrTooManyPlayers = errors.New("not enough cards to deal")
	ErrConservation   = errors.New("card conservation violated")
)

// Card is one of the 54 cards, identified by its number in [0, 54).
type Card struct {
	num int8
}

// NewCard returns the card with the given number.
func NewCard(num int) (Card, error) {
	if num < 0 || num >= DeckSize {
		return Card{}, fmt.Errorf("%w: %d", ErrCardRange, num)
	}
	return Card{num: int8(num)}, nil
}

// MustCard is NewCard for numbers known to be valid. It panics otherwise.
func MustCard(num int) Card {
	c, err := NewCard(num)
	if err != nil {
		panic(err)
	}
	return c
}

// Num returns the card number.
func (c Card) Num() int { return int(c.num) }

// Line returns the index of the board line this card is played onto.
func (c Card) Line() int { return int(c.num) / CardsPerLine }

// Value returns the points the card is worth to whoever owns it on the board.
func (c Card) Value() int { return (int(c.num) + 5) / 6 }

func (c Card) String() string { return fmt.Sprintf("%d", c.num) }

// PlayedCard is a card on the board together with the player currently
// credited with it. Owner changes on capture, the card never does.
type PlayedCard struct {
	Card  Card
	Owner int
}

func (pc PlayedCard) String() string {
	return fmt.Sprintf("(%d:%d)", pc.Card.num, pc.Owner)
}

// Line holds played cards in play order, not sorted order.
type Line []PlayedCard

// Last returns the most recently played card of the line.
func (l Line) Last() (PlayedCard, bool) {
	if len(l) == 0 {
		return PlayedCard{}, false
	}
	return l[len(l)-1], true
}

// GameState is the whole position: board, hands, deck and turn counter.
// Successor states are always built from a Clone, so a state handed to a
// search is never mutated afterwards.
type GameState struct {
	Board [NumLines]Line
	Hands [][]Card
	// Deck is in draw order; Draw takes Deck[0].
	Deck []Card
	// Discards holds folded cards so every card stays accounted for.
	Discards []Card
	Turn     int
}

// NumPlayers returns the number of seats, fixed at construction.
func (s *GameState) NumPlayers() int { return len(s.Hands) }

// CurrentPlayer returns the seat to move.
func (s *GameState) CurrentPlayer() int {
	if len(s.Hands) == 0 {
		return 0
	}
	return s.Turn % len(s.Hands)
}

func (s *GameState) checkPlayer(player int) error {
	if player < 0 || player >= len(s.Hands) {
		return fmt.Errorf("%w: %d of %d", ErrInvalidPlayer, player, len(s.Hands))
	}
	return nil
}

// Clone creates a deep copy for tree search
func (s *GameState) Clone() *GameState {
	clone := &GameState{
		Hands:    make([][]Card, len(s.Hands)),
		Deck:     slices.Clone(s.Deck),
		Discards: slices.Clone(s.Discards),
		Turn:     s.Turn,
	}
	for i, line := range s.Board {
		clone.Board[i] = slices.Clone(line)
	}
	for i, hand := range s.Hands {
		clone.Hands[i] = slices.Clone(hand)
		if clone.Hands[i] == nil {
			clone.Hands[i] = []Card{}
		}
	}
	return clone
}

// CheckConservation verifies that each of the 54 cards sits in exactly one
// of deck, hands, board or discards.
func (s *GameState) CheckConservation() error {
	var seen [DeckSize]int
	count := func(c Card) { seen[c.num]++ }

	for _, c := range s.Deck {
		count(c)
	}
	for _, hand := range s.Hands {
		for _, c := range hand {
			count(c)
		}
	}
	for _, line := range s.Board {
		for _, pc := range line {
			count(pc.Card)
		}
	}
	for _, c := range s.Discards {
		count(c)
	}

	for num, n := range seen {
		if n != 1 {
			return fmt.Errorf("%w: card %d seen %d times", ErrConservation, num, n)
		}
	}
	return nil
}
