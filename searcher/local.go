package searcher

import (
	"halma/game"
	"math"
)

// BestMove is the local-search heuristic: among moves it returns the
// destination closest to the mover's goal corner. The first of equally close
// destinations wins. With no moves it returns (game.InvalidPosition, -Inf),
// which callers must treat as "this piece cannot move".
func BestMove(moves []game.Position, state *game.GameState) (game.Position, float64) {
	best := game.InvalidPosition
	maxValue := math.Inf(-1)
	if len(moves) == 0 {
		return best, maxValue
	}

	goal := game.Goal(state.Current.No, state.Board.Size)
	for _, move := range moves {
		if value := -move.Euclidean(goal); value > maxValue {
			best = move
			maxValue = value
		}
	}
	return best, maxValue
}

type brancher func(state *game.GameState, idx int) []game.Position

// allMoves branches on every legal destination of a piece.
func allMoves(state *game.GameState, idx int) []game.Position {
	return state.Current.LegalMoves(idx, state.Board)
}

// localMove branches on the single destination picked by BestMove.
func localMove(state *game.GameState, idx int) []game.Position {
	moves := state.Current.LegalMoves(idx, state.Board)
	if len(moves) == 0 {
		return nil
	}
	best, _ := BestMove(moves, state)
	return []game.Position{best}
}
