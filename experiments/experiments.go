package experiments

import (
	"fmt"
	"halma/config"
	"halma/engine"
	"halma/experiments/metrics"
	"halma/searcher"
	"halma/searcher/agent"

	"github.com/rs/zerolog/log"
)

// Result is everything an experiment run produced, as written to disk.
type Result struct {
	Games []metrics.GameRecord
	Moves []metrics.MoveRecord
	Dir   string // Where the records were written, empty if not written
}

// RunMatchups plays cfg.Games games for each configured match up and stores
// agent configs, game records and move records under cfg.OutDir.
func RunMatchups(name string, cfg config.Config) (Result, error) {
	result, err := playMatchups(cfg)
	if err != nil {
		return result, err
	}

	writer, err := metrics.NewWriter(cfg.OutDir, name)
	if err != nil {
		return result, fmt.Errorf("failed to create experiment writer: %w", err)
	}
	if err := writer.WriteAgentConfigs(cfg.Agents); err != nil {
		return result, fmt.Errorf("failed to store agent configs: %w", err)
	}
	log.Info().Msg("stored agent configs")

	if err := writer.WriteGameRecords(result.Games); err != nil {
		return result, fmt.Errorf("failed to store game records: %w", err)
	}
	log.Info().Msg("stored game records")

	if err := writer.WriteMoveRecords(result.Moves); err != nil {
		return result, fmt.Errorf("failed to store move records: %w", err)
	}
	log.Info().Msg("stored move records")

	result.Dir = writer.Dir()
	return result, nil
}

func playMatchups(cfg config.Config) (Result, error) {
	var result Result
	count := 0

	for mi, matchUp := range cfg.MatchUps {
		config1, ok1 := cfg.Agent(matchUp[0])
		config2, ok2 := cfg.Agent(matchUp[1])
		if !ok1 || !ok2 {
			return result, fmt.Errorf("matchup %v references an unknown agent", matchUp)
		}

		log.Info().Msgf("starting matchup %d of %d between agent1=%+v and agent2=%+v...", mi+1, len(cfg.MatchUps), config1, config2)

		for i := 0; i < cfg.Games; i++ {
			e, err := engine.LocalEngine([]agent.Agent{createAgent(config1, i), createAgent(config2, i)}, cfg.BoardSize)
			if err != nil {
				return result, fmt.Errorf("failed to set up game: %w", err)
			}
			e.MaxTurns = cfg.MaxTurns

			winner, gameMetric, moveMetrics := e.Run()
			count++
			result.Games = append(result.Games, metrics.GameRecord{
				ID:         count,
				Agent1:     config1.ID,
				Agent2:     config2.ID,
				GameMetric: gameMetric,
			})
			for _, mm := range moveMetrics {
				result.Moves = append(result.Moves, metrics.MoveRecord{
					Game:       count,
					MoveMetric: mm,
				})
			}

			log.Info().Msgf("completed matchup %d of %d game %d with winner: %d", mi+1, len(cfg.MatchUps), i+1, winner)
		}
	}

	return result, nil
}

// createAgent builds the agent for one game; random agents get a fresh seed per game.
func createAgent(config metrics.AgentConfig, game int) agent.Agent {
	switch config.Kind {
	case metrics.RandomAgent:
		return agent.NewRandomAgent(config.Seed + uint64(game))
	case metrics.LocalSearchAgent:
		return agent.NewMinimaxAgent(createSearch(config, searcher.WithLocalSearch()))
	case metrics.MinimaxAgent:
		return agent.NewMinimaxAgent(createSearch(config))
	}
	panic(fmt.Sprintf("unexpected agent kind %q", config.Kind))
}

func createSearch(config metrics.AgentConfig, options ...searcher.Option) *searcher.AlphaBeta {
	options = append(options,
		searcher.WithDepth(config.Depth),
		searcher.WithDuration(config.Duration),
		searcher.WithMetrics(),
	)
	return searcher.NewAlphaBeta(options...)
}
