package main

import (
	"context"
	"flag"
	"os"
	"os/signal"
	"threechess/experiments"
	"time"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

func main() {
	configPath := flag.String("config", "", "YAML experiment config, defaults to Monte against two random agents")
	games := flag.Int("games", 0, "Number of games to play")
	parallel := flag.Int("parallel", 0, "Number of games played at the same time")
	duration := flag.Duration("duration", 0, "Thinking time per move of every MCTS agent")
	maxMoves := flag.Int("max-moves", 0, "Moves after which a game ends without a winner")
	out := flag.String("out", "", "Directory for experiment results")
	seed := flag.Uint64("seed", 0, "Base seed added to every agent's seed")
	debug := flag.Bool("debug", false, "Log every decision")
	flag.Parse()

	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.TimeOnly})
	zerolog.SetGlobalLevel(zerolog.InfoLevel)
	if *debug {
		zerolog.SetGlobalLevel(zerolog.DebugLevel)
	}

	cfg := experiments.DefaultConfig()
	if *configPath != "" {
		var err error
		cfg, err = experiments.LoadConfig(*configPath)
		if err != nil {
			log.Fatal().Err(err).Msg("failed to load config")
		}
	}

	// Flags given on the command line override the config file
	flag.Visit(func(f *flag.Flag) {
		switch f.Name {
		case "games":
			cfg.Games = *games
		case "parallel":
			cfg.Parallel = *parallel
		case "max-moves":
			cfg.MaxMoves = *maxMoves
		case "out":
			cfg.Out = *out
		case "duration":
			for i := range cfg.Agents {
				if cfg.Agents[i].Kind == experiments.KindMCTS {
					cfg.Agents[i].Duration = *duration
				}
			}
		case "seed":
			for i := range cfg.Agents {
				cfg.Agents[i].Seed += *seed
			}
		}
	})

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	result, err := experiments.Run(ctx, cfg)
	if err != nil {
		log.Fatal().Err(err).Msg("experiment failed")
	}
	if result.Dir != "" {
		log.Info().Msgf("results written to %s", result.Dir)
	}
}
