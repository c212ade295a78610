package engine

import "fmt"

// MoveKind is the action taken with a card.
type MoveKind uint8

const (
	MovePlay    MoveKind = iota // play
	MoveDiscard                 // discard
	MoveDraw                    // discard and draw
)

func (k MoveKind) String() string {
	switch k {
	case MovePlay:
		return "play"
	case MoveDiscard:
		return "discard"
	case MoveDraw:
		return "discard+draw"
	default:
		return "?"
	}
}

// Move is one atomic action of the player to move.
type Move struct {
	Kind   MoveKind
	Player int
	Card   Card
}

func (m Move) String() string {
	return fmt.Sprintf("player %d %s %d", m.Player, m.Kind, m.Card.num)
}

// LegalMoves returns every move of the current player. For each card in
// hand order: play (if legal), discard, then discard+draw (if the deck is
// not empty). Search consumers break ties on the first move, so the order
// is part of the contract.
func (s *GameState) LegalMoves() []Move {
	if len(s.Hands) == 0 {
		return nil
	}
	player := s.CurrentPlayer()
	hand := s.Hands[player]
	moves := make([]Move, 0, 3*len(hand))

	for _, card := range hand {
		if s.CanPlay(player, card) {
			moves = append(moves, Move{Kind: MovePlay, Player: player, Card: card})
		}
		moves = append(moves, Move{Kind: MoveDiscard, Player: player, Card: card})
		if s.CanDraw() {
			moves = append(moves, Move{Kind: MoveDraw, Player: player, Card: card})
		}
	}
	return moves
}

// Apply returns the state after move. The receiver is left untouched.
func (s *GameState) Apply(move Move) (*GameState, error) {
	next := s.Clone()

	var err error
	switch move.Kind {
	case MovePlay:
		err = next.Play(move.Player, move.Card)
	case MoveDiscard:
		err = next.Discard(move.Player, move.Card)
	case MoveDraw:
		if err = next.Discard(move.Player, move.Card); err == nil {
			err = next.Draw(move.Player)
		}
	default:
		err = fmt.Errorf("unknown move kind %d", move.Kind)
	}
	if err != nil {
		return nil, fmt.Errorf("apply %s: %w", move, err)
	}

	next.Turn++
	return next, nil
}

// Next returns the successor of every legal move, in LegalMoves order.
func (s *GameState) Next() []*GameState {
	moves := s.LegalMoves()
	nexts := make([]*GameState, 0, len(moves))
	for _, move := range moves {
		next, err := s.Apply(move)
		if err != nil {
			// LegalMoves only yields moves Apply accepts.
			panic(err)
		}
		nexts = append(nexts, next)
	}
	return nexts
}
