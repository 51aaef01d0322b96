package config

import (
	"fmt"
	"halma/experiments/metrics"
	"halma/game"
	"halma/meta"
	"os"

	"github.com/hashicorp/go-multierror"
	"github.com/rs/zerolog"
	"gopkg.in/yaml.v3"
)

// Config describes one experiment: which agents exist and which pairs play each other.
type Config struct {
	BoardSize int                   `yaml:"board_size"`
	Games     int                   `yaml:"games"` // Per match up
	MaxTurns  int                   `yaml:"max_turns"`
	OutDir    string                `yaml:"out_dir"`
	LogLevel  string                `yaml:"log_level"`
	Agents    []metrics.AgentConfig `yaml:"agents"`
	MatchUps  [][2]int              `yaml:"matchups"` // Agent IDs, first one plays player 1
}

func Default() Config {
	return Config{
		BoardSize: meta.BOARD_SIZE,
		Games:     1,
		MaxTurns:  meta.MAX_TURNS,
		OutDir:    "experiments",
		LogLevel:  "info",
		Agents: []metrics.AgentConfig{
			{ID: 1, Kind: metrics.MinimaxAgent, Depth: meta.SEARCH_DEPTH, Duration: meta.TURN_DURATION},
			{ID: 2, Kind: metrics.LocalSearchAgent, Depth: meta.LOCAL_SEARCH_DEPTH, Duration: meta.TURN_DURATION},
			{ID: 3, Kind: metrics.RandomAgent, Seed: 1},
		},
		MatchUps: [][2]int{{1, 3}, {2, 3}, {1, 2}},
	}
}

// Load reads a YAML file over the defaults and validates the result.
func Load(path string) (Config, error) {
	cfg := Default()
	data, err := os.ReadFile(path)
	if err != nil {
		return cfg, fmt.Errorf("failed to read config: %w", err)
	}
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("failed to parse config %s: %w", path, err)
	}
	if err := cfg.Validate(); err != nil {
		return cfg, fmt.Errorf("invalid config %s: %w", path, err)
	}
	return cfg, nil
}

// Validate reports every problem at once.
func (c Config) Validate() error {
	var result *multierror.Error

	if c.BoardSize < game.MinBoardSize || c.BoardSize > game.MaxBoardSize {
		result = multierror.Append(result, fmt.Errorf("board_size %d not in [%d, %d]", c.BoardSize, game.MinBoardSize, game.MaxBoardSize))
	}
	if c.Games <= 0 {
		result = multierror.Append(result, fmt.Errorf("games must be positive, got %d", c.Games))
	}
	if c.MaxTurns <= 0 {
		result = multierror.Append(result, fmt.Errorf("max_turns must be positive, got %d", c.MaxTurns))
	}
	if _, err := zerolog.ParseLevel(c.LogLevel); err != nil {
		result = multierror.Append(result, fmt.Errorf("log_level: %w", err))
	}

	ids := make(map[int]bool, len(c.Agents))
	for _, agent := range c.Agents {
		if ids[agent.ID] {
			result = multierror.Append(result, fmt.Errorf("agent %d is defined twice", agent.ID))
		}
		ids[agent.ID] = true

		switch agent.Kind {
		case metrics.MinimaxAgent, metrics.LocalSearchAgent:
			if agent.Depth <= 0 {
				result = multierror.Append(result, fmt.Errorf("agent %d: depth must be positive, got %d", agent.ID, agent.Depth))
			}
			if agent.Duration < 0 {
				result = multierror.Append(result, fmt.Errorf("agent %d: duration must not be negative", agent.ID))
			}
		case metrics.RandomAgent:
		default:
			result = multierror.Append(result, fmt.Errorf("agent %d: unknown kind %q", agent.ID, agent.Kind))
		}
	}

	if len(c.MatchUps) == 0 {
		result = multierror.Append(result, fmt.Errorf("no matchups configured"))
	}
	for _, matchUp := range c.MatchUps {
		for _, id := range matchUp {
			if !ids[id] {
				result = multierror.Append(result, fmt.Errorf("matchup %v references unknown agent %d", matchUp, id))
			}
		}
	}

	return result.ErrorOrNil()
}

// Agent returns the agent config with the given ID.
func (c Config) Agent(id int) (metrics.AgentConfig, bool) {
	for _, agent := range c.Agents {
		if agent.ID == id {
			return agent, true
		}
	}
	return metrics.AgentConfig{}, false
}
