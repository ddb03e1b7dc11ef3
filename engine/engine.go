package engine

import "threechess/experiments/metrics"

type Engine interface {
	// Run plays a game till there's a winner, no legal move is left or the move limit is reached
	Run() (gameMetric metrics.GameMetric, moveMetrics []metrics.MoveMetric)
}
