package searcher

import (
	"halma/game"
	"math"
)

// TerminalBonus is added to (or subtracted from) the utility of a finished game.
const TerminalBonus = 10.0

// MaxDepth bounds recursion; deeper requests are clamped.
const MaxDepth = 64

type Kind int

const (
	Evaluated    Kind = iota // Score is a real utility
	NoLegalMoves             // The player to move had no move anywhere; Score is a ±Inf sentinel
)

func (k Kind) String() string {
	if k == NoLegalMoves {
		return "no-legal-moves"
	}
	return "evaluated"
}

// Outcome tags a search score with how it was obtained.
type Outcome struct {
	Kind  Kind
	Score float64
}

// Result is the state chosen at the root of a search and its outcome.
type Result struct {
	State *game.GameState
	Outcome
}

// Searcher finds the state to play next from the current player's point of view.
type Searcher interface {
	FindNextState(state *game.GameState) Result
}

func evaluated(score float64) Outcome {
	return Outcome{Kind: Evaluated, Score: score}
}

func noLegalMoves(maximizing bool) Outcome {
	if maximizing {
		return Outcome{Kind: NoLegalMoves, Score: math.Inf(-1)}
	}
	return Outcome{Kind: NoLegalMoves, Score: math.Inf(1)}
}
