// Package config holds the driver settings: how to deal, how deep to
// search and which AI sits at each seat for simulated games.
package config

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/signalnine/threelines/gosim/engine"
	"github.com/signalnine/threelines/gosim/simulation"
)

type Config struct {
	Players int `json:"players"`
	// Seed for dealing and simulations (0 = use current time).
	Seed       int64 `json:"seed"`
	Depth      int   `json:"depth"`
	Maximizing bool  `json:"maximizing"`
	// NodeLimit caps positions visited per search (0 = unlimited).
	NodeLimit int `json:"node_limit"`
	// Games is the number of simulated games to run after the search.
	Games   int      `json:"games"`
	Workers int      `json:"workers"`
	Seats   []string `json:"seats"`
}

// Default returns the settings used when no file is given.
func Default() *Config {
	return &Config{
		Players:    2,
		Depth:      3,
		Maximizing: true,
		Seats:      []string{"minimax", "random"},
	}
}

// Load reads a JSON config file over the defaults.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config: %w", err)
	}

	c := Default()
	if err := json.Unmarshal(data, c); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}
	if err := c.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config %s: %w", path, err)
	}
	return c, nil
}

// Validate checks ranges that would otherwise fail deep inside a run.
func (c *Config) Validate() error {
	if c.Players < 1 || c.Players > engine.MaxPlayers {
		return fmt.Errorf("players must be between 1 and %d, got %d", engine.MaxPlayers, c.Players)
	}
	if c.Depth < 0 {
		return fmt.Errorf("depth must not be negative, got %d", c.Depth)
	}
	if c.NodeLimit < 0 {
		return fmt.Errorf("node_limit must not be negative, got %d", c.NodeLimit)
	}
	if c.Games < 0 {
		return fmt.Errorf("games must not be negative, got %d", c.Games)
	}
	if c.Workers < 0 {
		return fmt.Errorf("workers must not be negative, got %d", c.Workers)
	}
	if c.Games > 0 {
		if _, err := c.Simulation(); err != nil {
			return err
		}
	}
	return nil
}

// Simulation builds the simulation seats from the config.
func (c *Config) Simulation() (simulation.Config, error) {
	seats := c.Seats
	if len(seats) > c.Players {
		seats = seats[:c.Players]
	}

	sc := simulation.Config{
		Players:   c.Players,
		Seats:     make([]simulation.AIPlayerType, len(seats)),
		Depth:     c.Depth,
		NodeLimit: c.NodeLimit,
	}
	for i, name := range seats {
		ai, err := simulation.ParseAIPlayerType(name)
		if err != nil {
			return simulation.Config{}, fmt.Errorf("seat %d: %w", i, err)
		}
		sc.Seats[i] = ai
	}
	if err := sc.Validate(); err != nil {
		return simulation.Config{}, err
	}
	return sc, nil
}
