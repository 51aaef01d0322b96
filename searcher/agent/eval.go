package agent

import (
	"halma/experiments/metrics"
	"halma/game"
	"halma/searcher"
)

type minimaxAgent struct {
	search *searcher.AlphaBeta
}

// NewMinimaxAgent returns an agent playing the move found by an alpha-beta search.
func NewMinimaxAgent(search *searcher.AlphaBeta) Agent {
	return minimaxAgent{search: search}
}

func (a minimaxAgent) FindMove(state *game.GameState) (*game.GameState, metrics.SearchMetric) {
	result, metric := a.search.Search(state)
	if result.Kind == searcher.NoLegalMoves {
		return nil, metric
	}
	return result.State, metric
}
