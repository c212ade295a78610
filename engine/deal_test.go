package engine

import (
	"errors"
	"math/rand"
	"testing"
)

func TestNewFromDeckOrderedDeal(t *testing.T) {
	s, err := NewFromDeck(2, BuildDeck())
	if err != nil {
		t.Fatalf("NewFromDeck failed: %v", err)
	}

	for p, start := range []int{0, 13} {
		hand := s.Hands[p]
		if len(hand) != HandSize {
			t.Fatalf("player %d has %d cards, want %d", p, len(hand), HandSize)
		}
		for i, c := range hand {
			if c.Num() != start+i {
				t.Errorf("player %d card %d = %d, want %d", p, i, c.Num(), start+i)
			}
		}
	}

	if len(s.Deck) != 28 {
		t.Fatalf("deck has %d cards, want 28", len(s.Deck))
	}
	if s.Deck[0].Num() != 26 {
		t.Errorf("deck starts at %d, want 26", s.Deck[0].Num())
	}
	if s.Turn != 0 {
		t.Errorf("Turn = %d, want 0", s.Turn)
	}
	for i, line := range s.Board {
		if len(line) != 0 {
			t.Errorf("line %d not empty", i)
		}
	}
}

func TestNewDeterministic(t *testing.T) {
	s1, err := New(3, rand.New(rand.NewSource(42)))
	if err != nil {
		t.Fatalf("New failed: %v", err)
	}
	s2, err := New(3, rand.New(rand.NewSource(42)))
	if err != nil {
		t.Fatalf("New failed: %v", err)
	}

	for p := range s1.Hands {
		for i := range s1.Hands[p] {
			if s1.Hands[p][i] != s2.Hands[p][i] {
				t.Fatalf("determinism mismatch at player %d card %d", p, i)
			}
		}
	}
	if err := s1.CheckConservation(); err != nil {
		t.Error(err)
	}
}

func TestNewMaxPlayers(t *testing.T) {
	s, err := New(MaxPlayers, rand.New(rand.NewSource(1)))
	if err != nil {
		t.Fatalf("New(%d) failed: %v", MaxPlayers, err)
	}
	if len(s.Deck) != DeckSize-MaxPlayers*HandSize {
		t.Errorf("deck has %d cards, want %d", len(s.Deck), DeckSize-MaxPlayers*HandSize)
	}
}

func TestNewRejectsBadPlayerCounts(t *testing.T) {
	if _, err := NewFromDeck(MaxPlayers+1, BuildDeck()); !errors.Is(err, ErrTooManyPlayers) {
		t.Errorf("%d players: error = %v, want ErrTooManyPlayers", MaxPlayers+1, err)
	}
	if _, err := NewFromDeck(0, BuildDeck()); !errors.Is(err, ErrInvalidPlayer) {
		t.Errorf("0 players: error = %v, want ErrInvalidPlayer", err)
	}
}
