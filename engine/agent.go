package engine

import (
	"othello/experiments/metrics"
	"othello/game"
	"othello/searcher"
)

type Agent interface {
	// FindMove returns the move to play for who, or false to pass, with the metrics of
	// the search (if collected)
	FindMove(s *game.Session, who game.Player) (game.Move, bool, metrics.SearchMetric)
}

// ComputerAgent plays the searcher's suggestion at a fixed depth.
type ComputerAgent struct {
	Searcher *searcher.Searcher
	Depth    int
}

func NewComputerAgent(depth int, options ...searcher.Option) *ComputerAgent {
	return &ComputerAgent{
		Searcher: searcher.NewSearcher(options...),
		Depth:    depth,
	}
}

func (a *ComputerAgent) FindMove(s *game.Session, who game.Player) (game.Move, bool, metrics.SearchMetric) {
	return a.Searcher.FindMove(s, who, a.Depth)
}
