package engine

import "isolation/experiments/metrics"

type Engine interface {
	// Run plays a game till there's a winner or a max number of moves is reached
	Run() (winner int, gameMetric metrics.GameMetric, moveMetrics []metrics.MoveMetric)
}
