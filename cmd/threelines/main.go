// Package main provides the threelines CLI: deal or load a position, search
// it, and optionally simulate a batch of games.
package main

import (
	"flag"
	"fmt"
	"math/rand"
	"os"
	"strings"
	"time"

	"github.com/signalnine/threelines/gosim/config"
	"github.com/signalnine/threelines/gosim/engine"
	"github.com/signalnine/threelines/gosim/search"
	"github.com/signalnine/threelines/gosim/simulation"
	"github.com/signalnine/threelines/gosim/snapshot"
)

// Version information (set by build flags)
var (
	Version   = "dev"
	BuildTime = "unknown"
)

// CLI flags
var (
	configPath  string
	players     int
	seed        int64
	depth       int
	maximize    bool
	nodeLimit   int
	games       int
	workers     int
	seats       string
	positionArg string
	verbose     bool
	showVersion bool
)

func init() {
	flag.StringVar(&configPath, "config", "", "JSON config file (flags given explicitly override it)")
	flag.IntVar(&players, "players", 2, "Number of players (1-4)")
	flag.Int64Var(&seed, "seed", 0, "Random seed (0 = use current time)")
	flag.IntVar(&depth, "depth", 3, "Minimax search depth in plies")
	flag.BoolVar(&maximize, "maximize", true, "Search the root as the maximizing side")
	flag.IntVar(&nodeLimit, "node-limit", 0, "Maximum positions per search (0 = unlimited)")
	flag.IntVar(&games, "games", 0, "Number of games to simulate after the search")
	flag.IntVar(&workers, "workers", 0, "Number of worker goroutines (0 = auto-detect CPU count)")
	flag.StringVar(&seats, "ai", "minimax,random", "Comma-separated AI per seat (random, greedy, minimax)")
	flag.StringVar(&positionArg, "position", "", "Start from an encoded position instead of dealing")
	flag.BoolVar(&verbose, "verbose", false, "Enable verbose output")
	flag.BoolVar(&showVersion, "version", false, "Show version information")
}

func main() {
	flag.Parse()

	if showVersion {
		fmt.Printf("threelines %s (built %s)\n", Version, BuildTime)
		os.Exit(0)
	}

	cfg, err := loadConfig()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	if cfg.Seed == 0 {
		cfg.Seed = time.Now().UnixNano()
	}

	state, err := startingPosition(cfg)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	printBanner(cfg)
	fmt.Print(renderState(state))
	fmt.Println()
	fmt.Printf("Scores: %s\n", renderScores(state))
	fmt.Printf("Eval:   %d\n", state.Eval())
	if verbose {
		fmt.Printf("Position: %s\n", snapshot.EncodeString(state))
	}
	fmt.Println()

	if err := runSearch(state, cfg); err != nil {
		fmt.Fprintf(os.Stderr, "Search failed: %v\n", err)
		os.Exit(1)
	}

	if cfg.Games > 0 {
		if err := runSimulation(cfg); err != nil {
			fmt.Fprintf(os.Stderr, "Simulation failed: %v\n", err)
			os.Exit(1)
		}
	}
}

// loadConfig starts from the config file (or defaults) and applies every
// flag the user set explicitly.
func loadConfig() (*config.Config, error) {
	cfg := config.Default()
	if configPath != "" {
		loaded, err := config.Load(configPath)
		if err != nil {
			return nil, err
		}
		cfg = loaded
	}

	flag.Visit(func(f *flag.Flag) {
		switch f.Name {
		case "players":
			cfg.Players = players
		case "seed":
			cfg.Seed = seed
		case "depth":
			cfg.Depth = depth
		case "maximize":
			cfg.Maximizing = maximize
		case "node-limit":
			cfg.NodeLimit = nodeLimit
		case "games":
			cfg.Games = games
		case "workers":
			cfg.Workers = workers
		case "ai":
			cfg.Seats = splitSeats(seats)
		}
	})

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func splitSeats(s string) []string {
	var out []string
	for _, name := range strings.Split(s, ",") {
		if name = strings.TrimSpace(name); name != "" {
			out = append(out, name)
		}
	}
	return out
}

func startingPosition(cfg *config.Config) (*engine.GameState, error) {
	if positionArg != "" {
		state, err := snapshot.DecodeString(positionArg)
		if err != nil {
			return nil, fmt.Errorf("loading position: %w", err)
		}
		cfg.Players = state.NumPlayers()
		return state, nil
	}
	return engine.New(cfg.Players, rand.New(rand.NewSource(cfg.Seed)))
}

func runSearch(state *engine.GameState, cfg *config.Config) error {
	start := time.Now()
	res, err := search.Search(state, search.Params{
		Depth:      cfg.Depth,
		Maximizing: cfg.Maximizing,
		NodeLimit:  cfg.NodeLimit,
	})
	if err != nil {
		return err
	}

	fmt.Printf("Minimax (depth %d, %s):\n", cfg.Depth, side(cfg.Maximizing))
	if res.Index < 0 {
		fmt.Printf("  No move available, value %d\n", res.Value)
	} else {
		move := state.LegalMoves()[res.Index]
		fmt.Printf("  Best move: %s\n", move)
		fmt.Printf("  Value:     %d\n", res.Value)
	}
	fmt.Printf("  Nodes:     %d in %s\n", res.Nodes, formatDuration(time.Since(start)))

	if verbose && res.Index >= 0 {
		fmt.Println()
		fmt.Print(renderState(res.Best))
	}
	fmt.Println()
	return nil
}

func runSimulation(cfg *config.Config) error {
	simCfg, err := cfg.Simulation()
	if err != nil {
		return err
	}

	fmt.Printf("Simulating %d games (%s)...\n", cfg.Games, seatNames(simCfg))
	start := time.Now()
	stats := simulation.RunBatchParallelN(simCfg, cfg.Games, uint64(cfg.Seed), cfg.Workers)
	printSummary(stats, time.Since(start))
	return nil
}

func side(maximizing bool) string {
	if maximizing {
		return "maximizing"
	}
	return "minimizing"
}

func seatNames(cfg simulation.Config) string {
	names := make([]string, cfg.Players)
	for p := range names {
		names[p] = cfg.Seat(p).String()
	}
	return strings.Join(names, " vs ")
}

func printBanner(cfg *config.Config) {
	fmt.Println()
	fmt.Println("╔════════════════════════════════════════════════════════════╗")
	fmt.Println("║                 Three Lines Search Engine                  ║")
	fmt.Println("╚════════════════════════════════════════════════════════════╝")
	fmt.Println()
	fmt.Printf("Configuration:\n")
	fmt.Printf("  Players:        %d\n", cfg.Players)
	fmt.Printf("  Seed:           %d\n", cfg.Seed)
	fmt.Printf("  Depth:          %d\n", cfg.Depth)
	if cfg.NodeLimit > 0 {
		fmt.Printf("  Node Limit:     %d\n", cfg.NodeLimit)
	}
	if cfg.Games > 0 {
		fmt.Printf("  Games:          %d\n", cfg.Games)
		fmt.Printf("  Workers:        %d (0=auto)\n", cfg.Workers)
	}
	fmt.Println()
}

func printSummary(stats simulation.AggregatedStats, total time.Duration) {
	fmt.Println()
	fmt.Println("════════════════════════════════════════════════════════════")
	fmt.Println("                      SIMULATION SUMMARY")
	fmt.Println("════════════════════════════════════════════════════════════")
	fmt.Printf("  Total Time:      %s\n", formatDuration(total))
	fmt.Printf("  Games:           %d (%d errors)\n", stats.TotalGames, stats.Errors)
	for p, w := range stats.Wins {
		fmt.Printf("  Player %d Wins:   %d\n", p, w)
	}
	fmt.Printf("  Draws:           %d\n", stats.Draws)
	fmt.Printf("  Turns:           avg %.1f, median %d\n", stats.AvgTurns, stats.MedianTurns)
	fmt.Printf("  Avg Margin:      %.2f\n", stats.AvgMargin)

	if verbose {
		fmt.Printf("  Metrics:\n")
		fmt.Printf("    Decisions:        %d (%d forced)\n", stats.TotalDecisions, stats.ForcedDecisions)
		fmt.Printf("    Valid Moves:      %d\n", stats.TotalValidMoves)
		fmt.Printf("    Captures:         %d\n", stats.TotalCaptures)
		fmt.Printf("    Nodes Searched:   %d\n", stats.TotalNodes)
		fmt.Printf("    Search Fallbacks: %d\n", stats.SearchFallbacks)
		fmt.Printf("    Lead Changes:     %d\n", stats.LeadChanges)
	}
	fmt.Println("════════════════════════════════════════════════════════════")
	fmt.Println()
}

func formatDuration(d time.Duration) string {
	if d < time.Second {
		return fmt.Sprintf("%.1fms", float64(d.Microseconds())/1000)
	}
	if d < time.Minute {
		return fmt.Sprintf("%.1fs", d.Seconds())
	}
	m := int(d.Minutes())
	s := int(d.Seconds()) % 60
	return fmt.Sprintf("%dm%ds", m, s)
}
