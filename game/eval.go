package game

// Evaluate scores a state from maxEntity's point of view.
type Evaluate func(state *GameState, maxEntity int) float64

// Utility is the progress differential between the two players: each side's
// summed piece distance to its own goal corner, player 1 to (N-1, N-1) and
// player 2 to (0, 0). Players are identified by number, not by whose turn it is.
// The result grows as maxEntity's pieces approach their goal and shrinks as the
// opponent's do.
func Utility(current, opposite *Player, size int, maxEntity int) float64 {
	sums := map[int]float64{Player1: 0, Player2: 0}
	for _, player := range []*Player{current, opposite} {
		sums[player.No] += player.DistanceToGoal(size)
	}

	if maxEntity == Player1 {
		return sums[Player2] - sums[Player1]
	}
	return sums[Player1] - sums[Player2]
}

// EvaluateUtility adapts Utility to a whole state.
func EvaluateUtility(state *GameState, maxEntity int) float64 {
	return Utility(state.Current, state.Opposite, state.Board.Size, maxEntity)
}
