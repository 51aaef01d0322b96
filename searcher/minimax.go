package searcher

import (
	"halma/experiments/metrics"
	"halma/game"
	"math"
	"time"

	"github.com/rs/zerolog/log"
)

// Minimax searches every legal move of every piece with alpha-beta pruning.
// It stops descending at depth 0, past deadline (a zero deadline never
// expires), or once the player to move has finished. The returned state is
// the root's chosen successor with the mover still current; state itself is
// never modified.
func Minimax(state *game.GameState, depth int, deadline time.Time, alpha, beta float64, maxEntity int) Result {
	s := newSearch(deadline, maxEntity, allMoves, metrics.NewDummyCollector())
	return s.root(state, depth, alpha, beta)
}

// MinimaxLocalSearch is Minimax with each piece limited to the one move BestMove picks.
func MinimaxLocalSearch(state *game.GameState, depth int, deadline time.Time, alpha, beta float64, maxEntity int) Result {
	s := newSearch(deadline, maxEntity, localMove, metrics.NewDummyCollector())
	return s.root(state, depth, alpha, beta)
}

type search struct {
	deadline  time.Time
	maxEntity int
	branch    brancher
	evaluate  game.Evaluate
	metrics   metrics.Collector
	now       func() time.Time
}

func newSearch(deadline time.Time, maxEntity int, branch brancher, collector metrics.Collector) *search {
	return &search{
		deadline:  deadline,
		maxEntity: maxEntity,
		branch:    branch,
		evaluate:  game.EvaluateUtility,
		metrics:   collector,
		now:       time.Now,
	}
}

func (s *search) root(state *game.GameState, depth int, alpha, beta float64) Result {
	if depth > MaxDepth {
		log.Warn().Msgf("search depth %d clamped to %d", depth, MaxDepth)
		depth = MaxDepth
	}
	depth = max(depth, 0)

	result := s.node(state, depth, alpha, beta)
	if result.State == state { // Leaf or stuck root: hand back a copy, never the caller's state
		result.State = state.Copy()
	}
	return result
}

func (s *search) node(state *game.GameState, depth int, alpha, beta float64) Result {
	s.metrics.AddNode()

	terminal := state.Board.IsTerminal(state.Current.No)
	if depth == 0 || terminal || s.expired() {
		s.metrics.AddLeaf()
		return Result{State: state, Outcome: evaluated(s.score(state))}
	}

	maximizing := state.Current.No == s.maxEntity
	best := Result{State: state, Outcome: noLegalMoves(maximizing)}
	children := 0
	defer func() { s.metrics.ObserveBranching(children) }()

	for idx := range state.Current.Pieces {
		for _, dest := range s.branch(state, idx) {
			children++
			child := state.Copy()
			if err := child.Current.MovePiece(idx, dest, child.Board); err != nil {
				panic(err)
			}

			// The turned view shares board and players with child; descendants copy before moving
			next := *child
			next.NextTurn()
			value := s.value(s.node(&next, depth-1, alpha, beta))

			if maximizing {
				if value > best.Score {
					best = Result{State: child, Outcome: evaluated(value)}
				}
				alpha = math.Max(alpha, best.Score)
			} else {
				if value < best.Score {
					best = Result{State: child, Outcome: evaluated(value)}
				}
				beta = math.Min(beta, best.Score)
			}
			if beta <= alpha {
				s.metrics.AddCutoff()
				return best
			}
		}
	}

	if best.Kind == NoLegalMoves {
		s.metrics.AddNoLegalMoves()
	}
	return best
}

// value folds a child's outcome into its parent. A child that could not move
// is scored as a leaf instead of leaking its infinite sentinel.
func (s *search) value(child Result) float64 {
	if child.Kind == NoLegalMoves {
		return s.score(child.State)
	}
	return child.Score
}

// score is the evaluation plus the terminal bonus for the player to move.
func (s *search) score(state *game.GameState) float64 {
	score := s.evaluate(state, s.maxEntity)
	if state.Board.IsTerminal(state.Current.No) {
		if state.Current.No == s.maxEntity {
			score += TerminalBonus
		} else {
			score -= TerminalBonus
		}
	}
	return score
}

func (s *search) expired() bool {
	if s.deadline.IsZero() || !s.now().After(s.deadline) {
		return false
	}
	s.metrics.AddTimeout()
	return true
}
