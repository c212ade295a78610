package main

import (
	"fmt"
	"strings"

	"github.com/signalnine/threelines/gosim/engine"
)

// renderState lays out the deck, discards, lines and hands, one per row.
// Played cards show as (num:owner).
func renderState(state *engine.GameState) string {
	var b strings.Builder

	fmt.Fprintf(&b, "deck (%d):     %s\n", len(state.Deck), joinCards(state.Deck))
	fmt.Fprintf(&b, "discards (%d): %s\n", len(state.Discards), joinCards(state.Discards))
	for i, line := range state.Board {
		parts := make([]string, len(line))
		for j, pc := range line {
			parts[j] = pc.String()
		}
		fmt.Fprintf(&b, "line %d:       %s\n", i, strings.Join(parts, " "))
	}
	for p, hand := range state.Hands {
		marker := " "
		if p == state.CurrentPlayer() {
			marker = "*"
		}
		fmt.Fprintf(&b, "%splayer %d:    %s\n", marker, p, joinCards(hand))
	}
	return b.String()
}

func joinCards(cards []engine.Card) string {
	parts := make([]string, len(cards))
	for i, c := range cards {
		parts[i] = c.String()
	}
	return strings.Join(parts, " ")
}

func renderScores(state *engine.GameState) string {
	scores := state.Scores()
	parts := make([]string, len(scores))
	for p, s := range scores {
		parts[p] = fmt.Sprintf("p%d=%d", p, s)
	}
	return strings.Join(parts, " ")
}
