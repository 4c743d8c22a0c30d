package engine

import "othello/experiments/metrics"

type Engine interface {
	// Run plays a game until the board is full or both sides pass in a row
	Run() (gameMetric metrics.GameMetric, moveMetrics []metrics.MoveMetric)
}
