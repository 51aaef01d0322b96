package game

import "errors"

// Player numbers. Player 1 starts in the top-left camp and races to the
// bottom-right one, player 2 does the opposite.
const (
	NoPlayer = 0
	Player1  = 1
	Player2  = 2
)

const (
	MinBoardSize = 4
	MaxBoardSize = 16
	MaxCampDepth = 5
)

var (
	ErrBoardSize   = errors.New("board size out of range")
	ErrOutOfBounds = errors.New("position out of bounds")
	ErrOccupied    = errors.New("destination is occupied")
	ErrEmptyCell   = errors.New("no piece on source cell")
	ErrIllegalMove = errors.New("illegal move")
	ErrPieceIndex  = errors.New("piece index out of range")
)

type StateHash uint64

// Opponent returns the other player's number.
func Opponent(no int) int {
	if no == Player1 {
		return Player2
	}
	return Player1
}

// Goal returns the corner a player's pieces race towards.
func Goal(no int, size int) Position {
	if no == Player1 {
		return Position{Row: size - 1, Col: size - 1}
	}
	return Position{Row: 0, Col: 0}
}
