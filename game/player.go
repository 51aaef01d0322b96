package game

import "fmt"

// Piece is a single pion. Pieces are relocated, never captured.
type Piece struct {
	Position Position
}

// Player owns an ordered set of pieces; pieces are addressed by their index in Pieces.
type Player struct {
	No     int
	Pieces []Piece
}

func NewPlayer(no int, positions []Position) *Player {
	pieces := make([]Piece, len(positions))
	for i, p := range positions {
		pieces[i] = Piece{Position: p}
	}
	return &Player{No: no, Pieces: pieces}
}

func (p *Player) Copy() *Player {
	pieces := make([]Piece, len(p.Pieces))
	copy(pieces, p.Pieces)
	return &Player{No: p.No, Pieces: pieces}
}

// LegalMoves lists the destinations of the piece at idx under the board's current occupancy.
func (p *Player) LegalMoves(idx int, board *Board) []Position {
	if idx < 0 || idx >= len(p.Pieces) {
		return nil
	}
	return board.Destinations(p.Pieces[idx].Position)
}

// MovePiece relocates the piece at idx to dest, updating both the piece and the board.
// Only occupancy is checked here; legality is the caller's concern.
func (p *Player) MovePiece(idx int, dest Position, board *Board) error {
	if idx < 0 || idx >= len(p.Pieces) {
		return fmt.Errorf("%w: player %d has no piece %d", ErrPieceIndex, p.No, idx)
	}
	if err := board.move(p.Pieces[idx].Position, dest); err != nil {
		return fmt.Errorf("cannot move piece %d of player %d: %w", idx, p.No, err)
	}
	p.Pieces[idx].Position = dest
	return nil
}

// DistanceToGoal sums every piece's Euclidean distance to the player's goal corner.
func (p *Player) DistanceToGoal(size int) float64 {
	goal := Goal(p.No, size)
	sum := 0.0
	for _, piece := range p.Pieces {
		sum += piece.Position.Euclidean(goal)
	}
	return sum
}
