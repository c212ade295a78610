// Package snapshot converts game states to and from FlatBuffers bytes so a
// position can be handed to the search outside the process that dealt it.
package snapshot

import (
	"encoding/base64"
	"errors"
	"fmt"

	flatbuffers "github.com/google/flatbuffers/go"

	"github.com/signalnine/threelines/gosim/bindings/position"
	"github.com/signalnine/threelines/gosim/engine"
)

// ErrCorrupt is returned for bytes that do not decode to a valid position.
var ErrCorrupt = errors.New("corrupt position snapshot")

// Encode serializes state.
func Encode(state *engine.GameState) []byte {
	builder := flatbuffers.NewBuilder(256)

	// Children first: FlatBuffers objects cannot nest while being built
	lineOffsets := make([]flatbuffers.UOffsetT, engine.NumLines)
	for i, line := range state.Board {
		nums := make([]byte, len(line))
		owners := make([]byte, len(line))
		for j, pc := range line {
			nums[j] = byte(pc.Card.Num())
			owners[j] = byte(pc.Owner)
		}
		numsVec := builder.CreateByteVector(nums)
		ownersVec := builder.CreateByteVector(owners)

		position.LineStart(builder)
		position.LineAddCards(builder, numsVec)
		position.LineAddOwners(builder, ownersVec)
		lineOffsets[i] = position.LineEnd(builder)
	}

	handOffsets := make([]flatbuffers.UOffsetT, len(state.Hands))
	for i, hand := range state.Hands {
		cardsVec := builder.CreateByteVector(cardBytes(hand))
		position.HandStart(builder)
		position.HandAddCards(builder, cardsVec)
		handOffsets[i] = position.HandEnd(builder)
	}

	deckVec := builder.CreateByteVector(cardBytes(state.Deck))
	discardsVec := builder.CreateByteVector(cardBytes(state.Discards))
	linesVec := offsetVector(builder, position.StateStartLinesVector, lineOffsets)
	handsVec := offsetVector(builder, position.StateStartHandsVector, handOffsets)

	position.StateStart(builder)
	position.StateAddTurn(builder, uint32(state.Turn))
	position.StateAddDeck(builder, deckVec)
	position.StateAddDiscards(builder, discardsVec)
	position.StateAddLines(builder, linesVec)
	position.StateAddHands(builder, handsVec)
	root := position.StateEnd(builder)

	builder.Finish(root)
	return builder.FinishedBytes()
}

// EncodeString is Encode as URL-safe base64, for command lines.
func EncodeString(state *engine.GameState) string {
	return base64.RawURLEncoding.EncodeToString(Encode(state))
}

// DecodeString reverses EncodeString.
func DecodeString(s string) (*engine.GameState, error) {
	buf, err := base64.RawURLEncoding.DecodeString(s)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrCorrupt, err)
	}
	return Decode(buf)
}

// Decode parses and validates a snapshot. Every card must be in range, sit
// on its own line, belong to a seated owner, and appear exactly once.
func Decode(buf []byte) (state *engine.GameState, err error) {
	if len(buf) < flatbuffers.SizeUOffsetT {
		return nil, fmt.Errorf("%w: %d bytes", ErrCorrupt, len(buf))
	}
	// Accessors index buf directly and panic on bad offsets
	defer func() {
		if r := recover(); r != nil {
			state, err = nil, fmt.Errorf("%w: %v", ErrCorrupt, r)
		}
	}()

	root := position.GetRootAsState(buf, 0)

	players := root.HandsLength()
	if players < 1 || players > engine.MaxPlayers {
		return nil, fmt.Errorf("%w: %d hands", ErrCorrupt, players)
	}
	if n := root.LinesLength(); n != engine.NumLines {
		return nil, fmt.Errorf("%w: %d lines", ErrCorrupt, n)
	}

	state = &engine.GameState{
		Hands: make([][]engine.Card, players),
		Turn:  int(root.Turn()),
	}
	if state.Deck, err = decodeCards(root.DeckBytes()); err != nil {
		return nil, err
	}
	if state.Discards, err = decodeCards(root.DiscardsBytes()); err != nil {
		return nil, err
	}

	hand := new(position.Hand)
	for i := 0; i < players; i++ {
		root.Hands(hand, i)
		if state.Hands[i], err = decodeCards(hand.CardsBytes()); err != nil {
			return nil, err
		}
		if state.Hands[i] == nil {
			state.Hands[i] = []engine.Card{}
		}
	}

	line := new(position.Line)
	for i := 0; i < engine.NumLines; i++ {
		root.Lines(line, i)
		if state.Board[i], err = decodeLine(line, i, players); err != nil {
			return nil, err
		}
	}

	if err := state.CheckConservation(); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrCorrupt, err)
	}
	return state, nil
}

func decodeLine(line *position.Line, index, players int) (engine.Line, error) {
	nums, owners := line.CardsBytes(), line.OwnersBytes()
	if len(nums) != len(owners) {
		return nil, fmt.Errorf("%w: line %d has %d cards and %d owners", ErrCorrupt, index, len(nums), len(owners))
	}
	if len(nums) == 0 {
		return nil, nil
	}

	out := make(engine.Line, len(nums))
	for j := range nums {
		card, err := engine.NewCard(int(nums[j]))
		if err != nil {
			return nil, fmt.Errorf("%w: %w", ErrCorrupt, err)
		}
		if card.Line() != index {
			return nil, fmt.Errorf("%w: card %d on line %d", ErrCorrupt, card.Num(), index)
		}
		if int(owners[j]) >= players {
			return nil, fmt.Errorf("%w: owner %d with %d players", ErrCorrupt, owners[j], players)
		}
		out[j] = engine.PlayedCard{Card: card, Owner: int(owners[j])}
	}
	return out, nil
}

func decodeCards(nums []byte) ([]engine.Card, error) {
	if len(nums) == 0 {
		return nil, nil
	}
	out := make([]engine.Card, len(nums))
	for i, n := range nums {
		card, err := engine.NewCard(int(n))
		if err != nil {
			return nil, fmt.Errorf("%w: %w", ErrCorrupt, err)
		}
		out[i] = card
	}
	return out, nil
}

func cardBytes(cards []engine.Card) []byte {
	out := make([]byte, len(cards))
	for i, c := range cards {
		out[i] = byte(c.Num())
	}
	return out
}

func offsetVector(builder *flatbuffers.Builder, start func(*flatbuffers.Builder, int) flatbuffers.UOffsetT, offsets []flatbuffers.UOffsetT) flatbuffers.UOffsetT {
	start(builder, len(offsets))
	for i := len(offsets) - 1; i >= 0; i-- {
		builder.PrependUOffsetT(offsets[i])
	}
	return builder.EndVector(len(offsets))
}
