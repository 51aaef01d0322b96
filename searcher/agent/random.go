package agent

import (
	"halma/experiments/metrics"
	"halma/game"

	"golang.org/x/exp/rand"
)

type randomAgent struct {
	rng *rand.Rand
}

// NewRandomAgent returns a baseline agent playing uniformly random legal moves.
func NewRandomAgent(seed uint64) Agent {
	return &randomAgent{rng: rand.New(rand.NewSource(seed))}
}

func (a *randomAgent) FindMove(state *game.GameState) (*game.GameState, metrics.SearchMetric) {
	moves := state.LegalMoves()
	if len(moves) == 0 {
		return nil, metrics.SearchMetric{}
	}
	next, err := state.Apply(moves[a.rng.Intn(len(moves))])
	if err != nil {
		panic(err) // LegalMoves only lists applicable moves
	}
	return next, metrics.SearchMetric{}
}
