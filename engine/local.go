package engine

import (
	"fmt"
	"halma/experiments/metrics"
	"halma/game"
	"halma/gamemaster"
	"halma/meta"
	"halma/searcher/agent"
	"time"

	"github.com/rs/zerolog/log"
)

type LocalGame struct {
	Agents   []agent.Agent // Indexed by player number - 1
	MaxTurns int
	master   gamemaster.Engine
}

// LocalEngine pits two agents against each other on a fresh board.
func LocalEngine(agents []agent.Agent, size int) (*LocalGame, error) {
	master, err := gamemaster.NewLocalEngine(size)
	if err != nil {
		return nil, err
	}
	return LocalEngineFrom(agents, master)
}

// LocalEngineFrom pits two agents against each other under the given referee.
func LocalEngineFrom(agents []agent.Agent, master gamemaster.Engine) (*LocalGame, error) {
	if len(agents) != 2 {
		return nil, fmt.Errorf("need exactly two agents, got %d", len(agents))
	}
	return &LocalGame{
		Agents:   agents,
		MaxTurns: meta.MAX_TURNS,
		master:   master,
	}, nil
}

// Run executes the entire game loop until a winner is found.
func (e *LocalGame) Run() (int, metrics.GameMetric, []metrics.MoveMetric) {
	state, getUpdate := e.master.Init()
	gameMetric := metrics.GameMetric{
		StartingPlayer: state.Current.No,
		StartTime:      time.Now(),
	}
	var moveMetrics []metrics.MoveMetric

	log.Info().Msgf("player %d is starting", state.Current.No)

	passes := 0
	turn := 1
	for ; state.Winner() == game.NoPlayer && turn <= e.MaxTurns; turn++ {
		player := state.Current.No

		next, searchMetric := e.Agents[player-1].FindMove(state.Copy())
		moveMetrics = append(moveMetrics, metrics.MoveMetric{
			Step:         turn,
			Player:       player,
			SearchMetric: searchMetric,
		})

		move, ok := e.resolve(state, next)
		var err error
		if ok {
			passes = 0
			err = e.master.Play(move)
		} else {
			passes++
			log.Info().Msgf("player %d has no legal moves, passing", player)
			err = e.master.Pass()
		}
		if err != nil {
			panic(fmt.Sprintf("referee rejected a validated turn: %v", err))
		}

		update, ok := getUpdate()
		if !ok {
			panic("referee published no update")
		}
		state = update.State

		if passes >= 2 {
			log.Warn().Msgf("both players are stuck after turn %d", turn)
			break
		}
	}

	winner := state.Winner()
	if winner != game.NoPlayer {
		log.Info().Msgf("player %d wins after %d turns", winner, len(moveMetrics))
	} else {
		log.Info().Msgf("stopped after %d turns without a winner", len(moveMetrics))
	}

	gameMetric.Winner = winner
	gameMetric.EndTime = time.Now()
	gameMetric.Duration = gameMetric.EndTime.Sub(gameMetric.StartTime)
	gameMetric.TotalMoves = len(moveMetrics)
	return winner, gameMetric, moveMetrics
}

// resolve turns an agent's answer into a move, falling back to the first
// legal move when the answer is missing or not one legal move away.
// It reports false when the player has to pass.
func (e *LocalGame) resolve(state, next *game.GameState) (game.Move, bool) {
	if next != nil {
		move, err := game.Diff(state, next)
		if err == nil {
			return move, true
		}
		log.Warn().Err(err).Msgf("player %d returned an invalid state, forcing first legal move", state.Current.No)
	}

	fallbackMoves := state.LegalMoves()
	if len(fallbackMoves) == 0 {
		return game.Move{}, false
	}
	return fallbackMoves[0], true
}
