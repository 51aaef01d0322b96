package game

import (
	"fmt"
	"strings"
)

// directions in scan order: the row above, the same row, the row below.
var directions = [8][2]int{
	{-1, -1}, {-1, 0}, {-1, 1},
	{0, -1}, {0, 1},
	{1, -1}, {1, 0}, {1, 1},
}

// Board tracks which player occupies each cell of an N x N grid.
type Board struct {
	Size  int
	cells []int // Player number per cell, row-major (NoPlayer when empty)
}

// NewBoard returns an empty board.
func NewBoard(size int) (*Board, error) {
	if size < MinBoardSize || size > MaxBoardSize {
		return nil, fmt.Errorf("%w: %d not in [%d, %d]", ErrBoardSize, size, MinBoardSize, MaxBoardSize)
	}
	return &Board{
		Size:  size,
		cells: make([]int, size*size),
	}, nil
}

// Copy returns a board that shares no state with b.
func (b *Board) Copy() *Board {
	cells := make([]int, len(b.cells))
	copy(cells, b.cells)
	return &Board{Size: b.Size, cells: cells}
}

// CampDepth is the number of anti-diagonals a home camp spans on a board of the given size.
func CampDepth(size int) int {
	return max(1, min(size/2, MaxCampDepth))
}

func (b *Board) InBounds(p Position) bool {
	return p.Row >= 0 && p.Row < b.Size && p.Col >= 0 && p.Col < b.Size
}

// At returns the player occupying p, or NoPlayer.
func (b *Board) At(p Position) int {
	if !b.InBounds(p) {
		return NoPlayer
	}
	return b.cells[p.Row*b.Size+p.Col]
}

func (b *Board) set(p Position, no int) {
	b.cells[p.Row*b.Size+p.Col] = no
}

// InHomeCamp reports whether p lies in the starting camp of player no.
func (b *Board) InHomeCamp(p Position, no int) bool {
	depth := CampDepth(b.Size)
	if no == Player1 {
		return p.Row+p.Col < depth
	}
	return (b.Size-1-p.Row)+(b.Size-1-p.Col) < depth
}

// InTargetCamp reports whether p lies in the camp player no must fill to win.
func (b *Board) InTargetCamp(p Position, no int) bool {
	return b.InHomeCamp(p, Opponent(no))
}

// HomeCamp lists the cells of a player's starting camp in row-major order.
func (b *Board) HomeCamp(no int) []Position {
	camp := []Position{}
	for row := 0; row < b.Size; row++ {
		for col := 0; col < b.Size; col++ {
			p := Position{Row: row, Col: col}
			if b.InHomeCamp(p, no) {
				camp = append(camp, p)
			}
		}
	}
	return camp
}

// IsTerminal reports whether every piece of player no sits in its target camp.
func (b *Board) IsTerminal(no int) bool {
	pieces := 0
	for i, owner := range b.cells {
		if owner != no {
			continue
		}
		pieces++
		if !b.InTargetCamp(Position{Row: i / b.Size, Col: i % b.Size}, no) {
			return false
		}
	}
	return pieces > 0
}

// Destinations lists the cells the piece on from can reach this turn: single
// steps to empty neighbours first, then every landing cell of a jump chain in
// breadth-first order. A piece already in its target camp stays inside it.
func (b *Board) Destinations(from Position) []Position {
	no := b.At(from)
	if no == NoPlayer {
		return nil
	}

	seen := map[Position]bool{from: true}
	moves := []Position{}
	for _, d := range directions {
		to := from.Add(d[0], d[1])
		if b.InBounds(to) && b.At(to) == NoPlayer {
			seen[to] = true
			moves = append(moves, to)
		}
	}

	// The moving piece has left its origin, so the origin counts as empty while jumping
	occupied := func(p Position) bool {
		return p != from && b.At(p) != NoPlayer
	}
	queue := []Position{from}
	visited := map[Position]bool{from: true}
	for len(queue) > 0 {
		current := queue[0]
		queue = queue[1:]
		for _, d := range directions {
			over := current.Add(d[0], d[1])
			to := current.Add(2*d[0], 2*d[1])
			if !b.InBounds(to) || !occupied(over) || occupied(to) || visited[to] {
				continue
			}
			visited[to] = true
			queue = append(queue, to)
			if !seen[to] {
				seen[to] = true
				moves = append(moves, to)
			}
		}
	}

	if b.InTargetCamp(from, no) {
		kept := moves[:0]
		for _, to := range moves {
			if b.InTargetCamp(to, no) {
				kept = append(kept, to)
			}
		}
		moves = kept
	}
	return moves
}

// move relocates whatever occupies from onto the empty cell to.
func (b *Board) move(from, to Position) error {
	if !b.InBounds(from) || !b.InBounds(to) {
		return fmt.Errorf("%w: %v -> %v", ErrOutOfBounds, from, to)
	}
	no := b.At(from)
	if no == NoPlayer {
		return fmt.Errorf("%w: %v", ErrEmptyCell, from)
	}
	if b.At(to) != NoPlayer {
		return fmt.Errorf("%w: %v", ErrOccupied, to)
	}
	b.set(from, NoPlayer)
	b.set(to, no)
	return nil
}

func (b *Board) String() string {
	var sb strings.Builder
	for row := 0; row < b.Size; row++ {
		for col := 0; col < b.Size; col++ {
			switch b.At(Position{Row: row, Col: col}) {
			case Player1:
				sb.WriteByte('1')
			case Player2:
				sb.WriteByte('2')
			default:
				sb.WriteByte('.')
			}
		}
		sb.WriteByte('\n')
	}
	return sb.String()
}
