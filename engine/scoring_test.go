package engine

import "testing"

func TestValueAndScores(t *testing.T) {
	s := &GameState{Hands: make([][]Card, 2)}
	s.Board[0] = line(7, 0, 13, 1, 0, 1)
	s.Board[2] = line(53, 0)

	if got := s.Value(0); got != 11 {
		t.Errorf("Value(0) = %d, want 11", got)
	}
	if got := s.Value(1); got != 3 {
		t.Errorf("Value(1) = %d, want 3", got)
	}
	scores := s.Scores()
	if len(scores) != 2 || scores[0] != 11 || scores[1] != 3 {
		t.Errorf("Scores() = %v, want [11 3]", scores)
	}
}

func TestEvalTwoPlayerSymmetry(t *testing.T) {
	s := &GameState{Hands: make([][]Card, 2)}
	s.Board[0] = line(7, 0, 13, 1)

	if got := s.Eval(); got != -1 {
		t.Errorf("Eval() on turn 0 = %d, want -1", got)
	}
	s.Turn = 1
	if got := s.Eval(); got != 1 {
		t.Errorf("Eval() on turn 1 = %d, want 1", got)
	}
}

func TestEvalUsesBestRival(t *testing.T) {
	s := &GameState{Hands: make([][]Card, 3)}
	// scores: 5, 3, 4
	s.Board[0] = line(12, 0, 17, 0, 13, 1)
	s.Board[1] = line(19, 2)

	if got := s.Eval(); got != 1 {
		t.Errorf("Eval() = %d, want 1", got)
	}
	s.Turn = 1
	if got := s.Eval(); got != -2 {
		t.Errorf("Eval() for player 1 = %d, want -2", got)
	}
}

func TestEvalSinglePlayer(t *testing.T) {
	s := &GameState{Hands: make([][]Card, 1)}
	s.Board[1] = line(20, 0)

	if got := s.Eval(); got != 4 {
		t.Errorf("Eval() = %d, want 4", got)
	}
}

func TestLeader(t *testing.T) {
	s := &GameState{Hands: make([][]Card, 3)}
	if got := s.Leader(); got != -1 {
		t.Errorf("Leader() with no cards = %d, want -1", got)
	}
	s.Board[1] = line(19, 2)
	if got := s.Leader(); got != 2 {
		t.Errorf("Leader() = %d, want 2", got)
	}
}
