package game

import (
	"fmt"
	"math"
)

// InvalidPosition marks "no position"; it is never on the board.
var InvalidPosition = Position{Row: -999, Col: -999}

// Position is a (row, column) cell coordinate.
type Position struct {
	Row int
	Col int
}

func (p Position) Euclidean(other Position) float64 {
	return math.Hypot(float64(p.Row-other.Row), float64(p.Col-other.Col))
}

func (p Position) Add(dRow, dCol int) Position {
	return Position{Row: p.Row + dRow, Col: p.Col + dCol}
}

func (p Position) String() string {
	return fmt.Sprintf("(%d,%d)", p.Row, p.Col)
}
