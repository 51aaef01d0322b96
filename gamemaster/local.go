package gamemaster

import (
	"errors"
	"fmt"
	"halma/game"
	"halma/utils"
)

var ErrGameOver = errors.New("game is over - no moves allowed")

// Update is published after every accepted move or pass.
type Update struct {
	Move  game.Move // Zero when Pass is set
	Pass  bool
	State *game.GameState // Position after the turn, next player to move
}

type UpdateGetter func() (Update, bool)

// Engine referees a single game: it owns the authoritative state and only
// accepts legal moves.
type Engine interface {
	Init() (*game.GameState, UpdateGetter)
	Play(game.Move) error
	Pass() error
}

type localEngine struct {
	initial  *game.GameState
	state    *game.GameState
	updateCh chan Update
	gameOver bool
}

// NewLocalEngine referees a game starting from the standard opening.
func NewLocalEngine(size int) (*localEngine, error) {
	state, err := game.NewGame(size)
	if err != nil {
		return nil, fmt.Errorf("failed to set up board: %w", err)
	}
	return NewLocalEngineFromState(state), nil
}

// NewLocalEngineFromState referees a game starting from a copy of state.
func NewLocalEngineFromState(state *game.GameState) *localEngine {
	return &localEngine{initial: state.Copy()}
}

func (e *localEngine) Init() (*game.GameState, UpdateGetter) {
	e.state = e.initial.Copy()
	e.gameOver = e.state.Winner() != game.NoPlayer
	e.updateCh = make(chan Update, 1)

	// return a copy of the state
	return e.state.Copy(), func() (Update, bool) {
		select {
		case u, ok := <-e.updateCh:
			if !ok { // Game over
				return Update{}, false
			}
			u.State = u.State.Copy()
			return u, true
		default:
			// No updates yet
			return Update{}, false
		}
	}
}

func (e *localEngine) Play(move game.Move) error {
	if e.gameOver {
		return ErrGameOver
	}

	legalMoves := e.state.LegalMoves()
	if len(legalMoves) == 0 {
		return fmt.Errorf("%w: no legal moves available", game.ErrIllegalMove)
	}
	if utils.FindIndex(legalMoves, move) < 0 {
		return fmt.Errorf("%w: %v", game.ErrIllegalMove, move)
	}

	newState, err := e.state.Apply(move)
	if err != nil {
		return err
	}
	newState.NextTurn()
	e.advance(Update{Move: move, State: newState})
	return nil
}

// Pass hands the turn over; it is only allowed when the player to move is stuck.
func (e *localEngine) Pass() error {
	if e.gameOver {
		return ErrGameOver
	}
	if len(e.state.LegalMoves()) > 0 {
		return fmt.Errorf("%w: player %d cannot pass with legal moves available", game.ErrIllegalMove, e.state.Current.No)
	}

	newState := e.state.Copy()
	newState.NextTurn()
	e.advance(Update{Pass: true, State: newState})
	return nil
}

func (e *localEngine) advance(u Update) {
	e.state = u.State
	e.publish(u)
	if e.state.Winner() != game.NoPlayer {
		e.gameOver = true
		close(e.updateCh)
	}
}

// publish keeps only the newest update when the previous one was never read.
func (e *localEngine) publish(u Update) {
	select {
	case <-e.updateCh:
	default:
	}
	e.updateCh <- u
}
