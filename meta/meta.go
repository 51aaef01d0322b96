// meta/meta.go
package meta

import "time"

// BOARD_SIZE defines the default board size.
const BOARD_SIZE = 8

// SEARCH_DEPTH defines the default number of plies searched per move.
const SEARCH_DEPTH = 3

// LOCAL_SEARCH_DEPTH defines the default depth when branching is pruned to one move per piece.
const LOCAL_SEARCH_DEPTH = 5

// TURN_DURATION defines the default time budget of a single move.
const TURN_DURATION = 2 * time.Second

// MAX_TURNS defines the number of moves after which a game is abandoned.
const MAX_TURNS = 300
