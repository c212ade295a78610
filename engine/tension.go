package engine

// TensionMetrics tracks how the lead moves during a game
type TensionMetrics struct {
	LeadChanges       int     // Number of times the leader switched
	DecisiveTurn      int     // Turn from which the winner led for good
	ClosestMargin     float32 // Smallest normalized gap between 1st and 2nd (0 = tied)
	TotalTurns        int
	WinnerWasTrailing bool // Another seat held the lead at some point

	currentLeader int   // -1 while tied
	leaderHistory []int // Leader after each turn
}

// NewTensionMetrics creates initialized tension tracker
func NewTensionMetrics() *TensionMetrics {
	return &TensionMetrics{
		currentLeader: -1,
		ClosestMargin: 1.0,
		leaderHistory: make([]int, 0, DeckSize),
	}
}

// Update records the position after a move.
func (tm *TensionMetrics) Update(state *GameState) {
	tm.TotalTurns++

	leader := state.Leader()
	if leader >= 0 && tm.currentLeader >= 0 && leader != tm.currentLeader {
		tm.LeadChanges++
	}
	if leader >= 0 {
		tm.currentLeader = leader
	}
	tm.leaderHistory = append(tm.leaderHistory, leader)

	if margin, ok := scoreMargin(state.Scores()); ok && margin < tm.ClosestMargin {
		tm.ClosestMargin = margin
	}
}

// Finalize computes the decisive turn once the winner is known (-1 = none).
func (tm *TensionMetrics) Finalize(winner int) {
	if winner < 0 {
		tm.DecisiveTurn = tm.TotalTurns
		return
	}

	tm.DecisiveTurn = 0
	for i, leader := range tm.leaderHistory {
		if leader != winner {
			tm.DecisiveTurn = i + 1
		}
		if leader >= 0 && leader != winner {
			tm.WinnerWasTrailing = true
		}
	}
}

// DecisiveTurnPct is DecisiveTurn as a fraction of the game length.
func (tm *TensionMetrics) DecisiveTurnPct() float32 {
	if tm.TotalTurns == 0 {
		return 0
	}
	return float32(tm.DecisiveTurn) / float32(tm.TotalTurns)
}

// scoreMargin returns (first-second)/first, false while nobody has scored.
func scoreMargin(scores []int) (float32, bool) {
	if len(scores) < 2 {
		return 0, false
	}
	first, second := 0, 0
	for _, s := range scores {
		if s > first {
			second = first
			first = s
		} else if s > second {
			second = s
		}
	}
	if first == 0 {
		return 0, false
	}
	return float32(first-second) / float32(first), true
}
