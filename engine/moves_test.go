package engine

import (
	"errors"
	"testing"
)

func cards(nums ...int) []Card {
	out := make([]Card, len(nums))
	for i, n := range nums {
		out[i] = MustCard(n)
	}
	return out
}

func line(pairs ...int) Line {
	l := make(Line, 0, len(pairs)/2)
	for i := 0; i+1 < len(pairs); i += 2 {
		l = append(l, PlayedCard{Card: MustCard(pairs[i]), Owner: pairs[i+1]})
	}
	return l
}

func assertLine(t *testing.T, got Line, want Line) {
	t.Helper()
	if len(got) != len(want) {
		t.Fatalf("line = %v, want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("line[%d] = %v, want %v", i, got[i], want[i])
		}
	}
}

func TestDrawTakesFront(t *testing.T) {
	s := &GameState{Hands: [][]Card{{}}, Deck: cards(7, 3)}

	if err := s.Draw(0); err != nil {
		t.Fatalf("Draw failed: %v", err)
	}
	if len(s.Hands[0]) != 1 || s.Hands[0][0].Num() != 7 {
		t.Errorf("hand = %v, want [7]", s.Hands[0])
	}
	if len(s.Deck) != 1 || s.Deck[0].Num() != 3 {
		t.Errorf("deck = %v, want [3]", s.Deck)
	}
}

func TestDrawErrors(t *testing.T) {
	s := &GameState{Hands: [][]Card{{}}}

	if err := s.Draw(0); !errors.Is(err, ErrEmptyDeck) {
		t.Errorf("empty deck: error = %v, want ErrEmptyDeck", err)
	}
	s.Deck = cards(1)
	if err := s.Draw(1); !errors.Is(err, ErrInvalidPlayer) {
		t.Errorf("bad player: error = %v, want ErrInvalidPlayer", err)
	}
	if len(s.Deck) != 1 {
		t.Error("failed draw changed the deck")
	}
}

func TestDiscard(t *testing.T) {
	s := &GameState{Hands: [][]Card{cards(1, 2, 3)}}

	if err := s.Discard(0, MustCard(2)); err != nil {
		t.Fatalf("Discard failed: %v", err)
	}
	if len(s.Hands[0]) != 2 || s.Hands[0][0].Num() != 1 || s.Hands[0][1].Num() != 3 {
		t.Errorf("hand = %v, want [1 3]", s.Hands[0])
	}
	if len(s.Discards) != 1 || s.Discards[0].Num() != 2 {
		t.Errorf("discards = %v, want [2]", s.Discards)
	}

	// Not held: no-op
	if err := s.Discard(0, MustCard(9)); err != nil {
		t.Errorf("Discard of unheld card failed: %v", err)
	}
	if len(s.Hands[0]) != 2 || len(s.Discards) != 1 {
		t.Error("Discard of unheld card changed state")
	}

	if err := s.Discard(3, MustCard(1)); !errors.Is(err, ErrInvalidPlayer) {
		t.Errorf("bad player: error = %v, want ErrInvalidPlayer", err)
	}
}

func TestPlayOntoEmptyLine(t *testing.T) {
	s, err := NewFromDeck(2, BuildDeck())
	if err != nil {
		t.Fatalf("NewFromDeck failed: %v", err)
	}

	if err := s.Play(0, MustCard(0)); err != nil {
		t.Fatalf("Play failed: %v", err)
	}
	assertLine(t, s.Board[0], line(0, 0))

	if len(s.Hands[0]) != HandSize-1 {
		t.Errorf("hand has %d cards, want %d", len(s.Hands[0]), HandSize-1)
	}
	if !s.CanPlay(0, MustCard(1)) {
		t.Error("CanPlay(0, 1) = false, want true (extends upward)")
	}
	if len(s.Discards) != 0 {
		t.Error("played card went to discards")
	}
	if err := s.CheckConservation(); err != nil {
		t.Error(err)
	}
}

func TestPlayCapturesLoneCard(t *testing.T) {
	s := &GameState{Hands: [][]Card{cards(0), {}}}
	s.Board[0] = line(5, 1)

	if err := s.Play(0, MustCard(0)); err != nil {
		t.Fatalf("Play failed: %v", err)
	}
	assertLine(t, s.Board[0], line(5, 0, 0, 0))
}

func TestPlayCaptureStopsAtLowerCard(t *testing.T) {
	s := &GameState{Hands: [][]Card{cards(7), {}}}
	s.Board[0] = line(3, 0, 10, 1, 2, 1, 8, 1, 9, 1)

	if got := s.Captures(MustCard(7)); got != 2 {
		t.Errorf("Captures(7) = %d, want 2", got)
	}
	if err := s.Play(0, MustCard(7)); err != nil {
		t.Fatalf("Play failed: %v", err)
	}
	// 10 sits behind 2 and keeps its owner
	assertLine(t, s.Board[0], line(3, 0, 10, 1, 2, 1, 8, 0, 9, 0, 7, 0))
}

func TestPlayTargetsCardLine(t *testing.T) {
	s := &GameState{Hands: [][]Card{cards(40)}}

	if err := s.Play(0, MustCard(40)); err != nil {
		t.Fatalf("Play failed: %v", err)
	}
	if len(s.Board[0]) != 0 || len(s.Board[1]) != 0 {
		t.Error("card landed on the wrong line")
	}
	assertLine(t, s.Board[2], line(40, 0))
}
