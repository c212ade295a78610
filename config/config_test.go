package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/signalnine/threelines/gosim/simulation"
)

func writeConfig(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "threelines.json")
	if err := os.WriteFile(path, []byte(body), 0644); err != nil {
		t.Fatalf("failed to write config: %v", err)
	}
	return path
}

func TestDefaultIsValid(t *testing.T) {
	if err := Default().Validate(); err != nil {
		t.Errorf("Default().Validate() = %v", err)
	}
}

func TestLoadOverridesDefaults(t *testing.T) {
	path := writeConfig(t, `{"players": 3, "depth": 2, "games": 10, "seats": ["greedy", "minimax"]}`)

	c, err := Load(path)
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if c.Players != 3 || c.Depth != 2 || c.Games != 10 {
		t.Errorf("got players=%d depth=%d games=%d, want 3, 2, 10", c.Players, c.Depth, c.Games)
	}
	if !c.Maximizing {
		t.Error("Maximizing default was lost")
	}

	sc, err := c.Simulation()
	if err != nil {
		t.Fatalf("Simulation failed: %v", err)
	}
	if sc.Seat(0) != simulation.GreedyAI || sc.Seat(2) != simulation.MinimaxAI {
		t.Errorf("seats = %v, want greedy, minimax, minimax", sc.Seats)
	}
}

func TestLoadErrors(t *testing.T) {
	if _, err := Load(filepath.Join(t.TempDir(), "missing.json")); err == nil {
		t.Error("expected error for missing file")
	}
	if _, err := Load(writeConfig(t, `{"players": `)); err == nil {
		t.Error("expected error for malformed JSON")
	}
	if _, err := Load(writeConfig(t, `{"players": 5}`)); err == nil {
		t.Error("expected error for 5 players")
	}
	if _, err := Load(writeConfig(t, `{"games": 3, "seats": ["mcts"]}`)); err == nil {
		t.Error("expected error for unknown seat AI")
	}
}

func TestSimulationTrimsExtraSeats(t *testing.T) {
	c := Default()
	c.Players = 1
	sc, err := c.Simulation()
	if err != nil {
		t.Fatalf("Simulation failed: %v", err)
	}
	if len(sc.Seats) != 1 || sc.Seats[0] != simulation.MinimaxAI {
		t.Errorf("seats = %v, want [minimax]", sc.Seats)
	}
}
