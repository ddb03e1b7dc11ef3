package experiments

import (
	"errors"
	"fmt"
	"os"
	"threechess/experiments/metrics"
	"threechess/game"
	"threechess/meta"

	"gopkg.in/yaml.v3"
)

const (
	KindMCTS   = "mcts"
	KindRandom = "random"
)

var ErrInvalidConfig = errors.New("invalid experiment config")

type Config struct {
	Name     string                `yaml:"name"`
	Games    int                   `yaml:"games"`
	Parallel int                   `yaml:"parallel"`
	MaxMoves int                   `yaml:"max_moves"`
	Out      string                `yaml:"out"` // Results are not written when empty
	Agents   []metrics.AgentConfig `yaml:"agents"`
}

// DefaultConfig pits one Monte Carlo agent against two random agents
func DefaultConfig() Config {
	return Config{
		Name:     "monte_vs_random",
		Games:    meta.NUM_GAMES,
		Parallel: meta.PARALLEL,
		MaxMoves: meta.MAX_MOVES,
		Out:      "results",
		Agents: []metrics.AgentConfig{
			{ID: 1, Name: "Monte", Kind: KindMCTS, Duration: meta.TURN_TIME, Seed: 1},
			{ID: 2, Name: "Random1", Kind: KindRandom, Seed: 2},
			{ID: 3, Name: "Random2", Kind: KindRandom, Seed: 3},
		},
	}
}

// LoadConfig reads a YAML file on top of DefaultConfig
func LoadConfig(path string) (Config, error) {
	cfg := DefaultConfig()

	f, err := os.Open(path)
	if err != nil {
		return cfg, fmt.Errorf("failed to open config: %w", err)
	}
	defer f.Close()

	decoder := yaml.NewDecoder(f)
	decoder.KnownFields(true)
	if err := decoder.Decode(&cfg); err != nil {
		return cfg, fmt.Errorf("failed to parse config %s: %w", path, err)
	}
	if err := cfg.Validate(); err != nil {
		return cfg, err
	}
	return cfg, nil
}

// Validate numbers the agents and checks that the config describes a runnable experiment
func (c *Config) Validate() error {
	if c.Name == "" {
		return fmt.Errorf("%w: missing name", ErrInvalidConfig)
	}
	if c.Games <= 0 {
		return fmt.Errorf("%w: games must be positive, got %d", ErrInvalidConfig, c.Games)
	}
	if c.Parallel <= 0 {
		return fmt.Errorf("%w: parallel must be positive, got %d", ErrInvalidConfig, c.Parallel)
	}
	if c.MaxMoves <= 0 {
		return fmt.Errorf("%w: max_moves must be positive, got %d", ErrInvalidConfig, c.MaxMoves)
	}
	if len(c.Agents) != game.NumColours {
		return fmt.Errorf("%w: need %d agents, got %d", ErrInvalidConfig, game.NumColours, len(c.Agents))
	}

	names := make(map[string]bool)
	for i := range c.Agents {
		agent := &c.Agents[i]
		agent.ID = i + 1
		if agent.Name == "" || names[agent.Name] {
			return fmt.Errorf("%w: agent %d needs a unique name", ErrInvalidConfig, agent.ID)
		}
		names[agent.Name] = true

		switch agent.Kind {
		case KindMCTS, KindRandom:
		default:
			return fmt.Errorf("%w: agent %s has unknown kind %q", ErrInvalidConfig, agent.Name, agent.Kind)
		}
	}
	return nil
}
