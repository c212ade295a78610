package engine

// Value returns the total worth of the board cards owned by player.
func (s *GameState) Value(player int) int {
	total := 0
	for _, line := range s.Board {
		for _, pc := range line {
			if pc.Owner == player {
				total += pc.Card.Value()
			}
		}
	}
	return total
}

// Scores returns Value for every seat.
func (s *GameState) Scores() []int {
	scores := make([]int, len(s.Hands))
	for p := range scores {
		scores[p] = s.Value(p)
	}
	return scores
}

// Eval scores the position for the player to move: their total minus the
// best rival total. With a single seat there is no rival and the rival
// total is 0.
func (s *GameState) Eval() int {
	if len(s.Hands) == 0 {
		return 0
	}
	scores := s.Scores()
	cur := s.CurrentPlayer()

	best, found := 0, false
	for p, score := range scores {
		if p == cur {
			continue
		}
		if !found || score > best {
			best, found = score, true
		}
	}
	return scores[cur] - best
}

// Leader returns the seat with the strictly highest score, or -1 on a tie.
func (s *GameState) Leader() int {
	scores := s.Scores()
	leader, tied := -1, false
	for p, score := range scores {
		switch {
		case leader < 0 || score > scores[leader]:
			leader, tied = p, false
		case score == scores[leader]:
			tied = true
		}
	}
	if tied {
		return -1
	}
	return leader
}
