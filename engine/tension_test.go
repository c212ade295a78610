package engine

import "testing"

func TestNewTensionMetrics(t *testing.T) {
	tm := NewTensionMetrics()

	if tm.currentLeader != -1 {
		t.Errorf("expected currentLeader=-1, got %d", tm.currentLeader)
	}
	if tm.ClosestMargin != 1.0 {
		t.Errorf("expected ClosestMargin=1.0, got %f", tm.ClosestMargin)
	}
	if len(tm.leaderHistory) != 0 {
		t.Errorf("expected empty leaderHistory, got len=%d", len(tm.leaderHistory))
	}
}

func TestTensionMetricsLeadChange(t *testing.T) {
	tm := NewTensionMetrics()
	s := &GameState{Hands: make([][]Card, 2)}

	s.Board[0] = line(7, 0) // 2 - 0
	tm.Update(s)
	s.Board[0] = line(7, 0, 13, 1) // 2 - 3
	tm.Update(s)
	s.Board[1] = line(18, 1) // 2 - 6
	tm.Update(s)

	if tm.LeadChanges != 1 {
		t.Errorf("expected 1 lead change, got %d", tm.LeadChanges)
	}
	if tm.ClosestMargin < 0.33 || tm.ClosestMargin > 0.34 {
		t.Errorf("expected ClosestMargin ~0.333, got %f", tm.ClosestMargin)
	}

	tm.Finalize(1)
	if tm.DecisiveTurn != 1 {
		t.Errorf("expected DecisiveTurn=1, got %d", tm.DecisiveTurn)
	}
	if !tm.WinnerWasTrailing {
		t.Error("expected WinnerWasTrailing")
	}
	if pct := tm.DecisiveTurnPct(); pct < 0.33 || pct > 0.34 {
		t.Errorf("expected DecisiveTurnPct ~0.333, got %f", pct)
	}
}

func TestTensionMetricsNoWinner(t *testing.T) {
	tm := NewTensionMetrics()
	s := &GameState{Hands: make([][]Card, 2)}
	tm.Update(s)
	tm.Update(s)
	tm.Finalize(-1)

	if tm.DecisiveTurn != 2 {
		t.Errorf("expected DecisiveTurn=2, got %d", tm.DecisiveTurn)
	}
	if tm.ClosestMargin != 1.0 {
		t.Errorf("expected untouched ClosestMargin, got %f", tm.ClosestMargin)
	}
}
