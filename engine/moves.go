package engine

import (
	"fmt"

	"golang.org/x/exp/slices"
)

// Draw moves the front card of the deck into player's hand.
func (s *GameState) Draw(player int) error {
	if err := s.checkPlayer(player); err != nil {
		return err
	}
	if len(s.Deck) == 0 {
		return fmt.Errorf("player %d: %w", player, ErrEmptyDeck)
	}

	card := s.Deck[0]
	s.Deck = s.Deck[1:]
	s.Hands[player] = append(s.Hands[player], card)
	return nil
}

// Discard folds card out of player's hand. It is a no-op when the player
// does not hold the card.
func (s *GameState) Discard(player int, card Card) error {
	if !s.removeFromHand(player, card) {
		return s.checkPlayer(player)
	}
	s.Discards = append(s.Discards, card)
	return nil
}

// Play puts card from player's hand onto its line. Every trailing card of
// the line that is higher than card is captured by player; the scan stops
// at the first card that is not.
func (s *GameState) Play(player int, card Card) error {
	if err := s.checkPlayer(player); err != nil {
		return err
	}
	s.removeFromHand(player, card)

	line := s.Board[card.Line()]
	for i := len(line) - 1; i >= 0 && line[i].Card.num > card.num; i-- {
		line[i].Owner = player
	}
	s.Board[card.Line()] = append(line, PlayedCard{Card: card, Owner: player})
	return nil
}

// Captures returns how many cards playing card would take over.
func (s *GameState) Captures(card Card) int {
	line := s.Board[card.Line()]
	n := 0
	for i := len(line) - 1; i >= 0 && line[i].Card.num > card.num; i-- {
		n++
	}
	return n
}

func (s *GameState) removeFromHand(player int, card Card) bool {
	if player < 0 || player >= len(s.Hands) {
		return false
	}
	hand := s.Hands[player]
	n := len(hand)
	s.Hands[player] = slices.DeleteFunc(hand, func(c Card) bool { return c == card })
	return len(s.Hands[player]) < n
}
