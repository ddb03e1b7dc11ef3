package experiments

import (
	"context"
	"fmt"
	"threechess/agent"
	"threechess/engine"
	"threechess/experiments/metrics"
	"threechess/game"
	"threechess/searcher"

	"github.com/rs/zerolog/log"
	"golang.org/x/sync/errgroup"
)

type Result struct {
	Dir    string // Where results were written, empty if they were not
	Games  []metrics.GameRecord
	Moves  []metrics.MoveRecord
	Agents []AgentSummary
}

type gameResult struct {
	game  metrics.GameMetric
	moves []metrics.MoveMetric
}

// Run plays cfg.Games independent games, at most cfg.Parallel at a time. Seats rotate so
// every agent plays every colour.
func Run(ctx context.Context, cfg Config) (*Result, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	log.Info().Msgf("starting %s experiment with %d games...", cfg.Name, cfg.Games)

	results := make([]gameResult, cfg.Games)
	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(cfg.Parallel)
	for i := 0; i < cfg.Games; i++ {
		i := i
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			log.Info().Msgf("starting game %d of %d...", i+1, cfg.Games)
			gameMetric, moveMetrics := runGame(cfg, i)
			results[i] = gameResult{game: gameMetric, moves: moveMetrics}
			log.Info().Msgf("completed game %d of %d with winner: %q", i+1, cfg.Games, gameMetric.Winner)
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, fmt.Errorf("experiment %s interrupted: %w", cfg.Name, err)
	}
	log.Info().Msgf("completed %s experiment", cfg.Name)

	result := &Result{}
	for i, r := range results {
		result.Games = append(result.Games, metrics.GameRecord{ID: i + 1, GameMetric: r.game})
		for _, mm := range r.moves {
			result.Moves = append(result.Moves, metrics.MoveRecord{Game: i + 1, MoveMetric: mm})
		}
	}
	result.Agents = summarize(cfg.Agents, result.Games, result.Moves)
	for _, s := range result.Agents {
		s.log()
	}

	if cfg.Out == "" {
		return result, nil
	}
	dir, err := store(cfg, result)
	if err != nil {
		return nil, err
	}
	result.Dir = dir
	return result, nil
}

// seating rotates the configured agents by one colour per game
func seating(configs []metrics.AgentConfig, gameIndex int) [game.NumColours]metrics.AgentConfig {
	var seats [game.NumColours]metrics.AgentConfig
	for c := range seats {
		seats[c] = configs[(c+gameIndex)%len(configs)]
	}
	return seats
}

func runGame(cfg Config, gameIndex int) (metrics.GameMetric, []metrics.MoveMetric) {
	var agents [game.NumColours]agent.Agent
	for c, config := range seating(cfg.Agents, gameIndex) {
		agents[c] = newAgent(config, uint64(gameIndex))
	}
	var e engine.Engine = engine.NewLocalEngine(agents, engine.WithMaxMoves(cfg.MaxMoves), engine.WithSeed(uint64(gameIndex)))
	return e.Run()
}

// newAgent builds a fresh agent for one game. The game index shifts the seed so games differ
// but stay reproducible.
func newAgent(config metrics.AgentConfig, offset uint64) agent.Agent {
	seed := config.Seed + offset
	switch config.Kind {
	case KindRandom:
		return agent.NewRandom(config.Name, seed)
	case KindMCTS:
		options := []searcher.Option{searcher.WithSeed(seed), searcher.WithMetrics()}
		if config.Episodes > 0 {
			options = append(options, searcher.WithEpisodes(config.Episodes))
		}
		if config.Duration > 0 {
			options = append(options, searcher.WithDuration(config.Duration))
		}
		return agent.NewMonteCarlo(config.Name, options...)
	default:
		panic(fmt.Sprintf("unknown agent kind %q", config.Kind))
	}
}

func store(cfg Config, result *Result) (string, error) {
	writer, err := metrics.NewWriter(cfg.Out, cfg.Name)
	if err != nil {
		return "", fmt.Errorf("failed to create experiment writer: %w", err)
	}

	if err := writer.WriteAgentConfigs(cfg.Agents); err != nil {
		return "", fmt.Errorf("failed to store agent configs: %w", err)
	}
	log.Info().Msg("stored agent configs")

	if err := writer.WriteGameRecords(result.Games); err != nil {
		return "", fmt.Errorf("failed to store game records: %w", err)
	}
	log.Info().Msg("stored game records")

	if err := writer.WriteMoveRecords(result.Moves); err != nil {
		return "", fmt.Errorf("failed to store move records: %w", err)
	}
	log.Info().Msgf("stored move records in %s", writer.Dir())
	return writer.Dir(), nil
}
