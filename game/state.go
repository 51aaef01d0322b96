package game

import (
	"encoding/binary"
	"fmt"
	"halma/utils"
	"hash/fnv"
)

// GameState binds a board to the player whose turn it is (Current) and the other one (Opposite).
type GameState struct {
	Board    *Board  // Occupancy of every cell
	Current  *Player // The player to move
	Opposite *Player // The player waiting
}

// NewGame returns the opening position: each player's home camp filled, player 1 to move.
func NewGame(size int) (*GameState, error) {
	board, err := NewBoard(size)
	if err != nil {
		return nil, err
	}
	return NewGameFromPositions(size, board.HomeCamp(Player1), board.HomeCamp(Player2))
}

// NewGameFromPositions places the given pieces for each player, player 1 to move.
func NewGameFromPositions(size int, player1, player2 []Position) (*GameState, error) {
	board, err := NewBoard(size)
	if err != nil {
		return nil, err
	}
	for i, positions := range [][]Position{player1, player2} {
		no := i + 1
		for _, p := range positions {
			if !board.InBounds(p) {
				return nil, fmt.Errorf("cannot place piece of player %d: %w: %v", no, ErrOutOfBounds, p)
			}
			if board.At(p) != NoPlayer {
				return nil, fmt.Errorf("cannot place piece of player %d: %w: %v", no, ErrOccupied, p)
			}
			board.set(p, no)
		}
	}
	return &GameState{
		Board:    board,
		Current:  NewPlayer(Player1, player1),
		Opposite: NewPlayer(Player2, player2),
	}, nil
}

// Copy returns a deep copy; mutating it never affects gs.
func (gs *GameState) Copy() *GameState {
	return &GameState{
		Board:    gs.Board.Copy(),
		Current:  gs.Current.Copy(),
		Opposite: gs.Opposite.Copy(),
	}
}

// NextTurn swaps the current and opposite players. Piece positions are untouched.
func (gs *GameState) NextTurn() {
	gs.Current, gs.Opposite = gs.Opposite, gs.Current
}

// PlayerByNo returns the player with the given number, or nil.
func (gs *GameState) PlayerByNo(no int) *Player {
	switch no {
	case gs.Current.No:
		return gs.Current
	case gs.Opposite.No:
		return gs.Opposite
	}
	return nil
}

// LegalMoves lists every move of the current player, piece by piece.
func (gs *GameState) LegalMoves() []Move {
	moves := []Move{}
	for idx, piece := range gs.Current.Pieces {
		for _, to := range gs.Current.LegalMoves(idx, gs.Board) {
			moves = append(moves, Move{Player: gs.Current.No, Piece: idx, From: piece.Position, To: to})
		}
	}
	return moves
}

// Apply returns a copy of gs with the move played. The mover stays Current;
// callers advance the turn with NextTurn.
func (gs *GameState) Apply(move Move) (*GameState, error) {
	if move.Player != gs.Current.No {
		return nil, fmt.Errorf("%w: player %d moved on player %d's turn", ErrIllegalMove, move.Player, gs.Current.No)
	}
	if move.Piece < 0 || move.Piece >= len(gs.Current.Pieces) {
		return nil, fmt.Errorf("%w: piece %d", ErrPieceIndex, move.Piece)
	}
	if gs.Current.Pieces[move.Piece].Position != move.From {
		return nil, fmt.Errorf("%w: piece %d is not on %v", ErrIllegalMove, move.Piece, move.From)
	}
	if !utils.Contains(gs.Current.LegalMoves(move.Piece, gs.Board), move.To) {
		return nil, fmt.Errorf("%w: %v cannot reach %v", ErrIllegalMove, move.From, move.To)
	}

	next := gs.Copy()
	if err := next.Current.MovePiece(move.Piece, move.To, next.Board); err != nil {
		return nil, err
	}
	return next, nil
}

// Winner returns the number of the player whose pieces fill the target camp, or NoPlayer.
func (gs *GameState) Winner() int {
	for _, no := range []int{Player1, Player2} {
		if gs.Board.IsTerminal(no) {
			return no
		}
	}
	return NoPlayer
}

func (gs *GameState) Hash() StateHash {
	hasher := fnv.New64a()

	// Hash player to move
	binary.Write(hasher, binary.LittleEndian, int64(gs.Current.No))

	// Hash pieces of both players in index order
	for _, player := range []*Player{gs.Current, gs.Opposite} {
		for _, piece := range player.Pieces {
			binary.Write(hasher, binary.LittleEndian, int64(piece.Position.Row))
			binary.Write(hasher, binary.LittleEndian, int64(piece.Position.Col))
		}
	}

	return StateHash(hasher.Sum64())
}

func (gs *GameState) String() string {
	return fmt.Sprintf("player %d to move\n%s", gs.Current.No, gs.Board)
}
