package searcher

import (
	"halma/experiments/metrics"
	"halma/game"
	"math"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

/**
Alpha-beta search over Halma states
- cutoffs:
	- depth 0, expired deadline, terminal state -> evaluated leaf, bonus only when terminal
- recursion:
	- picks the best successor for the maximizing player, the worst for the minimizing one
	- pruning never changes the value compared to plain minimax
	- stuck players are tagged, folded as leaves by their parent
- purity:
	- caller's state is untouched, repeated searches agree
*/

func pos(row, col int) game.Position {
	return game.Position{Row: row, Col: col}
}

func newState(t *testing.T, size int, player1, player2 []game.Position) *game.GameState {
	t.Helper()
	gs, err := game.NewGameFromPositions(size, player1, player2)
	require.NoError(t, err)
	return gs
}

var noDeadline time.Time

func TestMinimaxCutoffs(t *testing.T) {
	t.Run("depth 0 evaluates the root immediately", func(t *testing.T) {
		state := newState(t, 4, []game.Position{pos(1, 1)}, []game.Position{pos(3, 3)})

		got := Minimax(state, 0, noDeadline, math.Inf(-1), math.Inf(1), game.Player1)

		require.Equal(t, Evaluated, got.Kind)
		require.InDelta(t, math.Sqrt2, got.Score, 1e-9, "Score should be the bare utility")
		require.NotSame(t, state, got.State, "Caller's state should not be returned")
		require.Equal(t, state.Hash(), got.State.Hash())
	})

	t.Run("expired deadline evaluates the root immediately", func(t *testing.T) {
		state := newState(t, 4, []game.Position{pos(1, 1)}, []game.Position{pos(3, 3)})

		got := Minimax(state, 3, time.Now().Add(-time.Second), math.Inf(-1), math.Inf(1), game.Player1)

		require.Equal(t, Evaluated, got.Kind)
		require.InDelta(t, math.Sqrt2, got.Score, 1e-9)
		require.Equal(t, state.Hash(), got.State.Hash(), "No move should be made")
	})

	t.Run("terminal state for the maximizing player adds the bonus", func(t *testing.T) {
		state := newState(t, 4, []game.Position{pos(3, 3)}, []game.Position{pos(0, 3)})

		for _, search := range []func(*game.GameState, int, time.Time, float64, float64, int) Result{Minimax, MinimaxLocalSearch} {
			got := search(state, 2, noDeadline, math.Inf(-1), math.Inf(1), game.Player1)

			require.Equal(t, Evaluated, got.Kind)
			require.InDelta(t, 3+TerminalBonus, got.Score, 1e-9, "Utility 3 plus terminal bonus")
			require.Equal(t, state.Hash(), got.State.Hash(), "Terminal root should not move")
		}
	})

	t.Run("terminal state for the minimizing player subtracts the bonus", func(t *testing.T) {
		state := newState(t, 4, []game.Position{pos(3, 3)}, []game.Position{pos(0, 3)})

		got := Minimax(state, 2, noDeadline, math.Inf(-1), math.Inf(1), game.Player2)

		require.InDelta(t, -3-TerminalBonus, got.Score, 1e-9)
	})
}

func TestMinimaxChoosesMove(t *testing.T) {
	t.Run("depth 1 takes the step closest to the goal", func(t *testing.T) {
		state := newState(t, 4, []game.Position{pos(0, 0)}, []game.Position{pos(3, 3)})

		got := Minimax(state, 1, noDeadline, math.Inf(-1), math.Inf(1), game.Player1)

		require.Equal(t, Evaluated, got.Kind)
		require.Equal(t, pos(1, 1), got.State.Current.Pieces[0].Position)
		require.Equal(t, game.Player1, got.State.Current.No, "Mover should still be current in the successor")
		require.InDelta(t, math.Sqrt2, got.Score, 1e-9)
	})

	t.Run("minimizing root picks the move worst for the maximizer", func(t *testing.T) {
		state := newState(t, 4, []game.Position{pos(0, 0)}, []game.Position{pos(3, 3)})
		state.NextTurn()

		got := Minimax(state, 1, noDeadline, math.Inf(-1), math.Inf(1), game.Player1)

		require.Equal(t, game.Player2, got.State.Current.No)
		require.Equal(t, pos(2, 2), got.State.Current.Pieces[0].Position)
		require.InDelta(t, -math.Sqrt2, got.Score, 1e-9)
	})

	t.Run("returned successor is one legal move away", func(t *testing.T) {
		state, err := game.NewGame(6)
		require.NoError(t, err)

		for _, search := range []func(*game.GameState, int, time.Time, float64, float64, int) Result{Minimax, MinimaxLocalSearch} {
			got := search(state, 2, noDeadline, math.Inf(-1), math.Inf(1), game.Player1)

			_, err := game.Diff(state, got.State)
			require.NoError(t, err, "Siblings must not leak moves into the chosen successor")
		}
	})
}

func TestMinimaxNoLegalMoves(t *testing.T) {
	t.Run("stuck root is tagged and passed through", func(t *testing.T) {
		state := newState(t, 4,
			[]game.Position{pos(0, 0)},
			[]game.Position{pos(0, 1), pos(1, 0), pos(1, 1), pos(0, 2), pos(2, 0), pos(2, 2)})

		got := Minimax(state, 2, noDeadline, math.Inf(-1), math.Inf(1), game.Player1)

		require.Equal(t, NoLegalMoves, got.Kind)
		require.True(t, math.IsInf(got.Score, -1), "Sentinel should be the never-updated maximum")
		require.Equal(t, state.Hash(), got.State.Hash())
		require.NotSame(t, state, got.State)
	})

	t.Run("stuck child is folded as a leaf", func(t *testing.T) {
		// Player 1 can step (3,0)->(3,1) and leave player 2's only piece at (3,3) without a move
		state := newState(t, 4,
			[]game.Position{pos(3, 0), pos(2, 2), pos(2, 3), pos(3, 2), pos(1, 1), pos(1, 3)},
			[]game.Position{pos(3, 3)})
		collector := metrics.NewCollector()
		collector.Start(2, false)
		s := newSearch(noDeadline, game.Player1, allMoves, collector)

		got := s.root(state, 2, math.Inf(-1), math.Inf(1))

		require.Equal(t, Evaluated, got.Kind)
		require.False(t, math.IsInf(got.Score, 0), "Infinite sentinels must not reach the root")
		require.GreaterOrEqual(t, collector.Complete().NoLegalMoves, 1)
	})
}

func TestAlphaBetaMatchesPlainMinimax(t *testing.T) {
	start4, err := game.NewGame(4)
	require.NoError(t, err)
	states := map[string]*game.GameState{
		"opening":      start4,
		"single piece": newState(t, 4, []game.Position{pos(0, 0)}, []game.Position{pos(3, 3)}),
		"crowded":      newState(t, 4, []game.Position{pos(1, 1), pos(2, 0), pos(0, 3)}, []game.Position{pos(2, 2), pos(1, 2), pos(3, 0)}),
		"near the end": newState(t, 4, []game.Position{pos(3, 3), pos(2, 2)}, []game.Position{pos(0, 0), pos(1, 2)}),
	}

	for name, state := range states {
		for depth := 1; depth <= 3; depth++ {
			for _, maxEntity := range []int{game.Player1, game.Player2} {
				want, ok := plainMinimax(state, depth, maxEntity)
				got := Minimax(state, depth, noDeadline, math.Inf(-1), math.Inf(1), maxEntity)

				require.True(t, ok, name)
				require.InDelta(t, want, got.Score, 1e-9,
					"%s at depth %d for player %d: pruning should not change the value", name, depth, maxEntity)
			}
		}
	}
}

// plainMinimax explores the full tree without pruning, folding stuck children the same way.
func plainMinimax(state *game.GameState, depth int, maxEntity int) (float64, bool) {
	s := newSearch(noDeadline, maxEntity, allMoves, metrics.NewDummyCollector())

	var visit func(state *game.GameState, depth int) (float64, bool)
	visit = func(state *game.GameState, depth int) (float64, bool) {
		if depth == 0 || state.Board.IsTerminal(state.Current.No) {
			return s.score(state), true
		}
		maximizing := state.Current.No == maxEntity
		best := math.Inf(1)
		if maximizing {
			best = math.Inf(-1)
		}
		moved := false
		for idx := range state.Current.Pieces {
			for _, dest := range allMoves(state, idx) {
				child := state.Copy()
				if err := child.Current.MovePiece(idx, dest, child.Board); err != nil {
					panic(err)
				}
				child.NextTurn()
				value, ok := visit(child, depth-1)
				if !ok {
					value = s.score(child)
				}
				moved = true
				if maximizing {
					best = math.Max(best, value)
				} else {
					best = math.Min(best, value)
				}
			}
		}
		return best, moved
	}
	return visit(state, depth)
}

func TestMinimaxPurity(t *testing.T) {
	state, err := game.NewGame(6)
	require.NoError(t, err)
	before, board := state.Hash(), state.Board.String()
	deadline := time.Now().Add(time.Hour)

	first := Minimax(state, 2, deadline, math.Inf(-1), math.Inf(1), game.Player1)
	second := Minimax(state, 2, deadline, math.Inf(-1), math.Inf(1), game.Player1)

	require.Equal(t, before, state.Hash(), "Caller's state should not be mutated")
	require.Equal(t, board, state.Board.String(), "Caller's board should not be mutated")
	require.Equal(t, first.Outcome, second.Outcome)
	require.Equal(t, first.State.Hash(), second.State.Hash())

	firstLocal := MinimaxLocalSearch(state, 3, deadline, math.Inf(-1), math.Inf(1), game.Player1)
	secondLocal := MinimaxLocalSearch(state, 3, deadline, math.Inf(-1), math.Inf(1), game.Player1)
	require.Equal(t, firstLocal.Outcome, secondLocal.Outcome)
	require.Equal(t, firstLocal.State.Hash(), secondLocal.State.Hash())
}
