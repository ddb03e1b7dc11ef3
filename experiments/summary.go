package experiments

import (
	"threechess/experiments/metrics"
	"threechess/game"

	"github.com/rs/zerolog/log"
	"gonum.org/v1/gonum/stat"
)

type AgentSummary struct {
	Name           string
	Games          int
	Wins           int
	Losses         int
	Decisions      int
	EpisodesMean   float64 // Per decision
	EpisodesStdDev float64
	DurationMean   float64 // Milliseconds per decision
	DurationStdDev float64
}

func (s AgentSummary) log() {
	log.Info().
		Str("agent", s.Name).
		Int("games", s.Games).
		Int("wins", s.Wins).
		Int("losses", s.Losses).
		Int("decisions", s.Decisions).
		Float64("episodes_mean", s.EpisodesMean).
		Float64("episodes_std", s.EpisodesStdDev).
		Float64("duration_ms_mean", s.DurationMean).
		Float64("duration_ms_std", s.DurationStdDev).
		Msg("agent summary")
}

func summarize(configs []metrics.AgentConfig, games []metrics.GameRecord, moves []metrics.MoveRecord) []AgentSummary {
	summaries := make([]AgentSummary, len(configs))
	index := make(map[string]int, len(configs))
	for i, config := range configs {
		summaries[i].Name = config.Name
		index[config.Name] = i
	}

	for _, record := range games {
		for _, name := range record.Seats {
			if i, ok := index[name]; ok {
				summaries[i].Games++
			}
		}
		if i, ok := index[seatOf(record.Seats, record.Winner)]; ok {
			summaries[i].Wins++
		}
		if i, ok := index[seatOf(record.Seats, record.Loser)]; ok {
			summaries[i].Losses++
		}
	}

	episodes := make([][]float64, len(configs))
	durations := make([][]float64, len(configs))
	for _, record := range moves {
		i, ok := index[record.Agent]
		if !ok {
			continue
		}
		episodes[i] = append(episodes[i], float64(record.Episodes))
		durations[i] = append(durations[i], float64(record.Duration.Microseconds())/1000)
	}
	for i := range summaries {
		summaries[i].Decisions = len(episodes[i])
		summaries[i].EpisodesMean, summaries[i].EpisodesStdDev = meanStdDev(episodes[i])
		summaries[i].DurationMean, summaries[i].DurationStdDev = meanStdDev(durations[i])
	}
	return summaries
}

// seatOf returns the agent that played colour, "" if colour is empty
func seatOf(seats [game.NumColours]string, colour string) string {
	for _, c := range game.Colours {
		if c.String() == colour {
			return seats[c]
		}
	}
	return ""
}

func meanStdDev(x []float64) (float64, float64) {
	switch len(x) {
	case 0:
		return 0, 0
	case 1:
		return x[0], 0
	default:
		return stat.MeanStdDev(x, nil)
	}
}
