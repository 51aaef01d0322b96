package game

import "fmt"

// Move relocates one piece of a player.
type Move struct {
	Player int
	Piece  int // Index into the player's Pieces
	From   Position
	To     Position
}

func (m Move) String() string {
	return fmt.Sprintf("player %d piece %d %v->%v", m.Player, m.Piece, m.From, m.To)
}

// Diff recovers the move that turns before into after, where after is the
// position reached by before's current player (still to move in after).
// It fails unless exactly one of the mover's pieces changed, legally.
func Diff(before, after *GameState) (Move, error) {
	if after == nil || after.Current == nil || after.Opposite == nil {
		return Move{}, fmt.Errorf("%w: missing state", ErrIllegalMove)
	}
	if after.Current.No != before.Current.No || after.Board.Size != before.Board.Size {
		return Move{}, fmt.Errorf("%w: state does not belong to player %d's turn", ErrIllegalMove, before.Current.No)
	}
	if !samePieces(before.Opposite, after.Opposite) {
		return Move{}, fmt.Errorf("%w: opponent pieces changed", ErrIllegalMove)
	}
	if len(before.Current.Pieces) != len(after.Current.Pieces) {
		return Move{}, fmt.Errorf("%w: piece count changed", ErrIllegalMove)
	}

	move := Move{Player: before.Current.No, Piece: -1}
	for idx, piece := range before.Current.Pieces {
		to := after.Current.Pieces[idx].Position
		if to == piece.Position {
			continue
		}
		if move.Piece >= 0 {
			return Move{}, fmt.Errorf("%w: more than one piece moved", ErrIllegalMove)
		}
		move.Piece, move.From, move.To = idx, piece.Position, to
	}
	if move.Piece < 0 {
		return Move{}, fmt.Errorf("%w: no piece moved", ErrIllegalMove)
	}

	if _, err := before.Apply(move); err != nil {
		return Move{}, err
	}
	return move, nil
}

func samePieces(a, b *Player) bool {
	if a.No != b.No || len(a.Pieces) != len(b.Pieces) {
		return false
	}
	for i := range a.Pieces {
		if a.Pieces[i] != b.Pieces[i] {
			return false
		}
	}
	return true
}
