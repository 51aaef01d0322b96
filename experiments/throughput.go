package experiments

import (
	"fmt"
	"halma/experiments/metrics"
	"halma/game"
	"halma/searcher"

	"github.com/rs/zerolog/log"
)

// RunThroughputExperiment searches the opening position at every depth up to
// maxDepth, with and without local search, and reports what each search cost.
// Searches are not time-bounded.
func RunThroughputExperiment(size, maxDepth int) ([]metrics.SearchMetric, error) {
	state, err := game.NewGame(size)
	if err != nil {
		return nil, fmt.Errorf("failed to set up board: %w", err)
	}

	var results []metrics.SearchMetric
	for depth := 1; depth <= maxDepth; depth++ {
		for _, local := range []bool{false, true} {
			options := []searcher.Option{searcher.WithDepth(depth), searcher.WithDuration(0), searcher.WithMetrics()}
			if local {
				options = append(options, searcher.WithLocalSearch())
			}

			_, metric := searcher.NewAlphaBeta(options...).Search(state)
			results = append(results, metric)

			log.Info().Msgf("depth=%d local=%t nodes=%d cutoffs=%d max_branching=%d took=%s",
				depth, local, metric.Nodes, metric.Cutoffs, metric.MaxBranching, metric.Duration)
		}
	}
	return results, nil
}
