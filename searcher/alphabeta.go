package searcher

import (
	"halma/experiments/metrics"
	"halma/game"
	"halma/meta"
	"math"
	"time"

	"github.com/rs/zerolog/log"
)

type Option func(a *AlphaBeta)

// AlphaBeta runs one bounded search per move on behalf of the player to move.
type AlphaBeta struct {
	depth       int
	duration    time.Duration
	localSearch bool
	evaluate    game.Evaluate
	metrics     metrics.Collector
}

func WithDepth(depth int) Option {
	return func(a *AlphaBeta) {
		if depth >= 0 {
			a.depth = depth
		}
	}
}

// WithDuration sets the time budget of a move; 0 removes the deadline.
func WithDuration(duration time.Duration) Option {
	return func(a *AlphaBeta) {
		if duration >= 0 {
			a.duration = duration
		}
	}
}

func WithLocalSearch() Option {
	return func(a *AlphaBeta) {
		a.localSearch = true
	}
}

func WithEvaluationFn(evaluate game.Evaluate) Option {
	return func(a *AlphaBeta) {
		if evaluate != nil {
			a.evaluate = evaluate
		}
	}
}

func WithMetrics() Option {
	return func(a *AlphaBeta) {
		a.metrics = metrics.NewCollector()
	}
}

func NewAlphaBeta(options ...Option) *AlphaBeta {
	a := &AlphaBeta{ // Default values
		depth:    meta.SEARCH_DEPTH,
		duration: meta.TURN_DURATION,
		evaluate: game.EvaluateUtility,
		metrics:  metrics.NewDummyCollector(),
	}
	for _, option := range options {
		option(a)
	}
	return a
}

// FindNextState searches from the current player's point of view.
func (a *AlphaBeta) FindNextState(state *game.GameState) Result {
	result, _ := a.Search(state)
	return result
}

// Search is FindNextState plus the metrics collected while searching.
func (a *AlphaBeta) Search(state *game.GameState) (Result, metrics.SearchMetric) {
	var deadline time.Time
	if a.duration > 0 {
		deadline = time.Now().Add(a.duration)
	}

	branch := allMoves
	if a.localSearch {
		branch = localMove
	}

	s := newSearch(deadline, state.Current.No, branch, a.metrics)
	s.evaluate = a.evaluate

	a.metrics.Start(a.depth, a.localSearch)
	result := s.root(state, a.depth, math.Inf(-1), math.Inf(1))
	metric := a.metrics.Complete()

	log.Debug().
		Int("player", state.Current.No).
		Bool("local", a.localSearch).
		Str("outcome", result.Kind.String()).
		Float64("score", result.Score).
		Int("nodes", metric.Nodes).
		Int("cutoffs", metric.Cutoffs).
		Dur("took", metric.Duration).
		Msg("search complete")

	return result, metric
}
