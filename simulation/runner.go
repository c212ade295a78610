package simulation

import (
	"errors"
	"fmt"
	"math/rand"
	"sort"
	"strconv"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/signalnine/threelines/gosim/engine"
	"github.com/signalnine/threelines/gosim/search"
)

// AIPlayerType specifies which AI controls a seat
type AIPlayerType uint8

const (
	RandomAI  AIPlayerType = iota // random
	GreedyAI                      // greedy
	MinimaxAI                     // minimax
)

var aiNames = map[AIPlayerType]string{
	RandomAI:  "random",
	GreedyAI:  "greedy",
	MinimaxAI: "minimax",
}

func (t AIPlayerType) String() string {
	if name, ok := aiNames[t]; ok {
		return name
	}
	return "unknown"
}

// ParseAIPlayerType maps a name such as "minimax" to its AIPlayerType.
func ParseAIPlayerType(name string) (AIPlayerType, error) {
	for t, n := range aiNames {
		if strings.EqualFold(n, name) {
			return t, nil
		}
	}
	return 0, fmt.Errorf("unknown AI type %q", name)
}

// Config describes the seats of a simulated game.
type Config struct {
	Players int
	// Seats assigns an AI per seat. Seats beyond the slice use the last
	// entry, or RandomAI when it is empty.
	Seats     []AIPlayerType
	Depth     int // MinimaxAI search depth
	NodeLimit int // per-move search budget (0 = unlimited)
}

// Validate checks the configuration before any game is dealt.
func (c Config) Validate() error {
	if c.Players < 1 || c.Players > engine.MaxPlayers {
		return fmt.Errorf("players must be between 1 and %d, got %d", engine.MaxPlayers, c.Players)
	}
	if len(c.Seats) > c.Players {
		return fmt.Errorf("%d seats configured for %d players", len(c.Seats), c.Players)
	}
	for _, ai := range c.Seats {
		if _, ok := aiNames[ai]; !ok {
			return fmt.Errorf("unknown AI type %d", ai)
		}
		if ai == MinimaxAI && c.Depth < 1 {
			return fmt.Errorf("minimax seats need depth >= 1, got %d", c.Depth)
		}
	}
	if c.NodeLimit < 0 {
		return fmt.Errorf("node limit must not be negative, got %d", c.NodeLimit)
	}
	return nil
}

// Seat returns the AI controlling player.
func (c Config) Seat(player int) AIPlayerType {
	if len(c.Seats) == 0 {
		return RandomAI
	}
	if player < len(c.Seats) {
		return c.Seats[player]
	}
	return c.Seats[len(c.Seats)-1]
}

// GameMetrics holds per-game instrumentation counters
type GameMetrics struct {
	TotalDecisions  uint64 // Decision points (when player chooses move)
	TotalValidMoves uint64 // Sum of valid moves at each decision
	ForcedDecisions uint64 // Decisions with only 1 valid move
	Plays           uint64
	Discards        uint64
	Draws           uint64
	Captures        uint64 // Board cards that changed owner
	NodesSearched   uint64
	SearchFallbacks uint64 // Minimax moves that hit the node limit

	// Tension
	LeadChanges       uint32
	DecisiveTurnPct   float32
	ClosestMargin     float32
	WinnerWasTrailing bool
}

// GameResult holds the outcome of a single game
type GameResult struct {
	GameID     uuid.UUID
	Seed       uint64
	WinnerID   int8 // -1 on a tie
	Scores     []int
	Margin     int // first minus second score
	TurnCount  uint32
	DurationNs uint64
	Error      string
	Metrics    GameMetrics
}

// AggregatedStats summarizes multiple game results
type AggregatedStats struct {
	TotalGames    uint32
	Wins          []uint32 // index = player
	Draws         uint32
	AvgTurns      float32
	MedianTurns   uint32
	AvgMargin     float32
	AvgDurationNs uint64
	Errors        uint32

	TotalDecisions  uint64
	TotalValidMoves uint64
	ForcedDecisions uint64
	TotalCaptures   uint64
	TotalNodes      uint64
	SearchFallbacks uint64
	LeadChanges     uint32
}

// GameID derives a stable identifier from a game seed.
func GameID(seed uint64) uuid.UUID {
	return uuid.NewSHA1(uuid.NameSpaceOID, []byte("threelines/"+strconv.FormatUint(seed, 10)))
}

// RunBatch simulates numGames games, deriving each game seed from seed.
// A non-positive numGames yields an empty batch.
func RunBatch(cfg Config, numGames int, seed uint64) AggregatedStats {
	numGames = max(numGames, 0)
	results := make([]GameResult, numGames)

	// Use seed for determinism
	rng := rand.New(rand.NewSource(int64(seed)))

	for i := 0; i < numGames; i++ {
		gameSeed := rng.Uint64()
		results[i] = RunSingleGame(cfg, gameSeed)
	}

	return aggregateResults(cfg.Players, results)
}

// RunSingleGame deals from seed and plays until the player to move has no
// legal move left.
func RunSingleGame(cfg Config, seed uint64) GameResult {
	start := time.Now()
	result := GameResult{GameID: GameID(seed), Seed: seed, WinnerID: -1}

	fail := func(err error) GameResult {
		result.Error = err.Error()
		result.DurationNs = uint64(time.Since(start).Nanoseconds())
		return result
	}

	if err := cfg.Validate(); err != nil {
		return fail(err)
	}

	rng := rand.New(rand.NewSource(int64(seed)))
	state, err := engine.New(cfg.Players, rng)
	if err != nil {
		return fail(err)
	}

	var metrics GameMetrics
	tension := engine.NewTensionMetrics()

	for {
		moves := state.LegalMoves()
		if len(moves) == 0 {
			break
		}

		metrics.TotalDecisions++
		metrics.TotalValidMoves += uint64(len(moves))
		if len(moves) == 1 {
			metrics.ForcedDecisions++
		}

		idx, err := chooseMove(state, moves, cfg, rng, &metrics)
		if err != nil {
			result.Metrics = metrics
			result.TurnCount = uint32(state.Turn)
			return fail(err)
		}

		move := moves[idx]
		switch move.Kind {
		case engine.MovePlay:
			metrics.Plays++
			metrics.Captures += uint64(state.Captures(move.Card))
		case engine.MoveDiscard:
			metrics.Discards++
		case engine.MoveDraw:
			metrics.Draws++
		}

		next, err := state.Apply(move)
		if err != nil {
			result.Metrics = metrics
			result.TurnCount = uint32(state.Turn)
			return fail(err)
		}
		state = next
		tension.Update(state)
	}

	winner := state.Leader()
	tension.Finalize(winner)
	metrics.LeadChanges = uint32(tension.LeadChanges)
	metrics.DecisiveTurnPct = tension.DecisiveTurnPct()
	metrics.ClosestMargin = tension.ClosestMargin
	metrics.WinnerWasTrailing = tension.WinnerWasTrailing

	result.WinnerID = int8(winner)
	result.Scores = state.Scores()
	result.Margin = margin(result.Scores)
	result.TurnCount = uint32(state.Turn)
	result.DurationNs = uint64(time.Since(start).Nanoseconds())
	result.Metrics = metrics
	return result
}

// chooseMove returns the index into moves picked by the current seat's AI.
func chooseMove(state *engine.GameState, moves []engine.Move, cfg Config, rng *rand.Rand, metrics *GameMetrics) (int, error) {
	switch cfg.Seat(state.CurrentPlayer()) {
	case RandomAI:
		return rng.Intn(len(moves)), nil
	case GreedyAI:
		return searchMove(state, 1, 0, metrics)
	case MinimaxAI:
		idx, err := searchMove(state, cfg.Depth, cfg.NodeLimit, metrics)
		if errors.Is(err, search.ErrNodeLimit) && cfg.Depth > 1 {
			metrics.SearchFallbacks++
			return searchMove(state, 1, 0, metrics)
		}
		return idx, err
	default:
		return 0, nil
	}
}

// searchMove runs a root search. Leaf scores are from the point of view of
// the player to move at the leaf, which is the root player after an even
// number of plies in a two-player game.
func searchMove(state *engine.GameState, depth, nodeLimit int, metrics *GameMetrics) (int, error) {
	res, err := search.Search(state, search.Params{
		Depth:      depth,
		Maximizing: depth%2 == 0,
		NodeLimit:  nodeLimit,
	})
	metrics.NodesSearched += uint64(res.Nodes)
	if err != nil {
		return 0, err
	}
	if res.Index < 0 {
		return 0, fmt.Errorf("search found no move at turn %d", state.Turn)
	}
	return res.Index, nil
}

// margin is the gap between the two best scores.
func margin(scores []int) int {
	if len(scores) < 2 {
		if len(scores) == 1 {
			return scores[0]
		}
		return 0
	}
	sorted := append([]int(nil), scores...)
	sort.Sort(sort.Reverse(sort.IntSlice(sorted)))
	return sorted[0] - sorted[1]
}

// aggregateResults computes summary statistics
func aggregateResults(players int, results []GameResult) AggregatedStats {
	stats := AggregatedStats{
		TotalGames: uint32(len(results)),
		Wins:       make([]uint32, players),
	}

	turnCounts := make([]uint32, 0, len(results))
	totalDuration := uint64(0)
	totalMargin := 0

	for _, result := range results {
		if result.Error != "" {
			stats.Errors++
			continue
		}

		if w := int(result.WinnerID); w >= 0 && w < len(stats.Wins) {
			stats.Wins[w]++
		} else {
			stats.Draws++
		}

		turnCounts = append(turnCounts, result.TurnCount)
		totalDuration += result.DurationNs
		totalMargin += result.Margin

		stats.TotalDecisions += result.Metrics.TotalDecisions
		stats.TotalValidMoves += result.Metrics.TotalValidMoves
		stats.ForcedDecisions += result.Metrics.ForcedDecisions
		stats.TotalCaptures += result.Metrics.Captures
		stats.TotalNodes += result.Metrics.NodesSearched
		stats.SearchFallbacks += result.Metrics.SearchFallbacks
		stats.LeadChanges += result.Metrics.LeadChanges
	}

	if len(turnCounts) > 0 {
		sum := uint64(0)
		for _, tc := range turnCounts {
			sum += uint64(tc)
		}
		stats.AvgTurns = float32(sum) / float32(len(turnCounts))
		stats.AvgMargin = float32(totalMargin) / float32(len(turnCounts))
		stats.MedianTurns = median(turnCounts)
	}

	if stats.TotalGames > 0 {
		stats.AvgDurationNs = totalDuration / uint64(stats.TotalGames)
	}

	return stats
}

// median calculates the median of a slice
func median(values []uint32) uint32 {
	if len(values) == 0 {
		return 0
	}

	sorted := make([]uint32, len(values))
	copy(sorted, values)
	sort.Slice(sorted, func(i, j int) bool { return sorted[i] < sorted[j] })

	mid := len(sorted) / 2
	if len(sorted)%2 == 0 {
		return (sorted[mid-1] + sorted[mid]) / 2
	}
	return sorted[mid]
}
