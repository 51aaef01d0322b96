package gamemaster

import (
	"errors"
	"halma/game"
	"reflect"
	"testing"
)

func TestLocalEngineInit(t *testing.T) {
	engine, err := NewLocalEngine(8)
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	gs, getUpdate := engine.Init()

	if gs == nil {
		t.Fatal("expected a GameState, got nil")
	}
	if gs.Current.No != game.Player1 {
		t.Errorf("expected player 1 to start, got player %d", gs.Current.No)
	}
	if len(gs.Current.Pieces) != 10 || len(gs.Opposite.Pieces) != 10 {
		t.Errorf("expected 10 pieces per player, got %d and %d", len(gs.Current.Pieces), len(gs.Opposite.Pieces))
	}

	// Check that getUpdate returns nothing if no moves have been played
	if u, ok := getUpdate(); ok {
		t.Errorf("expected no update yet, got %+v", u)
	}
}

func TestLocalEngineInitRejectsBoardSize(t *testing.T) {
	if _, err := NewLocalEngine(2); !errors.Is(err, game.ErrBoardSize) {
		t.Errorf("expected ErrBoardSize, got %v", err)
	}
}

func TestLocalEnginePlay_ValidMove(t *testing.T) {
	engine, err := NewLocalEngine(8)
	if err != nil {
		t.Fatal(err)
	}
	gs, getUpdate := engine.Init()
	move := gs.LegalMoves()[0]

	if err := engine.Play(move); err != nil {
		t.Errorf("expected no error for a valid move, got %v", err)
	}

	u, ok := getUpdate()
	if !ok {
		t.Fatal("expected an update after playing a move, got none")
	}
	if u.Move != move || u.Pass {
		t.Errorf("expected update for %v, got %+v", move, u)
	}
	if u.State.Current.No != game.Player2 {
		t.Errorf("expected player 2 to move next, got player %d", u.State.Current.No)
	}
	if got := u.State.PlayerByNo(game.Player1).Pieces[move.Piece].Position; got != move.To {
		t.Errorf("expected piece %d on %v, got %v", move.Piece, move.To, got)
	}
	if gs.Current.Pieces[move.Piece].Position != move.From {
		t.Error("expected the initial state copy to stay untouched")
	}
}

func TestLocalEnginePlay_IllegalMove(t *testing.T) {
	engine, err := NewLocalEngine(8)
	if err != nil {
		t.Fatal(err)
	}
	gs, _ := engine.Init()

	// Player 2's piece on player 1's turn
	illegalMove := game.Move{
		Player: game.Player2,
		Piece:  0,
		From:   gs.Opposite.Pieces[0].Position,
		To:     game.Position{Row: 4, Col: 4},
	}

	if err := engine.Play(illegalMove); !errors.Is(err, game.ErrIllegalMove) {
		t.Errorf("expected ErrIllegalMove, got %v", err)
	}
}

func TestLocalEnginePass(t *testing.T) {
	stuck, err := game.NewGameFromPositions(4,
		[]game.Position{{Row: 0, Col: 0}},
		[]game.Position{{Row: 0, Col: 1}, {Row: 1, Col: 0}, {Row: 1, Col: 1}, {Row: 0, Col: 2}, {Row: 2, Col: 0}, {Row: 2, Col: 2}})
	if err != nil {
		t.Fatal(err)
	}
	engine := NewLocalEngineFromState(stuck)
	_, getUpdate := engine.Init()

	if err := engine.Pass(); err != nil {
		t.Fatalf("expected stuck player to pass, got %v", err)
	}
	u, ok := getUpdate()
	if !ok || !u.Pass || u.State.Current.No != game.Player2 {
		t.Errorf("expected a pass update handing over to player 2, got %+v", u)
	}

	// Player 2 can move, so it cannot pass
	if err := engine.Pass(); !errors.Is(err, game.ErrIllegalMove) {
		t.Errorf("expected ErrIllegalMove, got %v", err)
	}
}

func TestLocalEnginePlay_GameOver(t *testing.T) {
	// Player 1 finishes by stepping (2,2) -> (3,2)
	almost, err := game.NewGameFromPositions(4,
		[]game.Position{{Row: 3, Col: 3}, {Row: 2, Col: 3}, {Row: 2, Col: 2}},
		[]game.Position{{Row: 0, Col: 3}})
	if err != nil {
		t.Fatal(err)
	}
	engine := NewLocalEngineFromState(almost)
	_, getUpdate := engine.Init()

	finishing := game.Move{Player: game.Player1, Piece: 2, From: game.Position{Row: 2, Col: 2}, To: game.Position{Row: 3, Col: 2}}
	if err := engine.Play(finishing); err != nil {
		t.Fatalf("did not expect error on finishing move, got %v", err)
	}

	// The final update arrives, then the channel is closed
	u, ok := getUpdate()
	if !ok || u.State.Winner() != game.Player1 {
		t.Errorf("expected a final update won by player 1, got %+v", u)
	}
	if u2, ok := getUpdate(); ok {
		t.Errorf("expected no updates after game over, got %+v", u2)
	}

	if err := engine.Play(finishing); !errors.Is(err, ErrGameOver) {
		t.Errorf("expected ErrGameOver, got %v", err)
	}
}

func TestLocalEngineKeepsNewestUpdate(t *testing.T) {
	engine, err := NewLocalEngine(8)
	if err != nil {
		t.Fatal(err)
	}
	gs, getUpdate := engine.Init()

	if err := engine.Play(gs.LegalMoves()[0]); err != nil {
		t.Fatal(err)
	}
	if err := engine.Play(engine.state.LegalMoves()[0]); err != nil {
		t.Fatal(err)
	}

	u, ok := getUpdate()
	if !ok || u.Move.Player != game.Player2 {
		t.Errorf("expected player 2's move as the newest update, got %+v", u)
	}
}

func TestLocalEngine_IdenticalInitStates(t *testing.T) {
	// Test that Init returns a copy of the state each time.
	engine, _ := NewLocalEngine(8)
	state1, _ := engine.Init()

	engine2, _ := NewLocalEngine(8)
	state2, _ := engine2.Init()

	// They should not be the same pointer, but have the same initial data.
	if state1 == state2 {
		t.Error("expected distinct state copies")
	}
	if !reflect.DeepEqual(state1, state2) {
		t.Error("expected the same initial state configuration, got differences")
	}
}
