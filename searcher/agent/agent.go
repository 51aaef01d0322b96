package agent

import (
	"halma/experiments/metrics"
	"halma/game"
)

type Agent interface {
	// FindMove returns the state reached by the move the agent picks (the mover
	// still current) and the metrics collected while picking it. A nil state
	// means the agent found no move.
	FindMove(state *game.GameState) (*game.GameState, metrics.SearchMetric)
}
