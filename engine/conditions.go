package engine

// LoHi returns the contested band of a line. hi is the number of the last
// card (0 for an empty line) and lo is the number of the nearest card from
// the tail that is lower than hi, or -1 when there is none.
func (s *GameState) LoHi(line int) (lo, hi int) {
	lo = -1
	cards := s.Board[line]
	last, ok := cards.Last()
	if !ok {
		return lo, 0
	}
	hi = last.Card.Num()
	for i := len(cards) - 1; i >= 0; i-- {
		if n := cards[i].Card.Num(); n < hi {
			lo = n
			break
		}
	}
	return lo, hi
}

// CanPlay reports whether player may play card onto its line.
//
// An empty line accepts anything. A card above the last one extends the
// line for anyone. A card in (lo, hi] captures, which is only allowed when
// the last card belongs to someone else. Anything at or below lo is refused.
func (s *GameState) CanPlay(player int, card Card) bool {
	last, ok := s.Board[card.Line()].Last()
	if !ok {
		return true
	}
	lo, hi := s.LoHi(card.Line())
	switch num := card.Num(); {
	case num > hi:
		return true
	case num > lo:
		return last.Owner != player
	default:
		return false
	}
}

// CanDraw reports whether the deck still has cards.
func (s *GameState) CanDraw() bool {
	return len(s.Deck) > 0
}
