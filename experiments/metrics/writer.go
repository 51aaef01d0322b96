package metrics

import (
	"encoding/csv"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"time"
)

type AgentKind string

const (
	MinimaxAgent     AgentKind = "minimax" // Full-width alpha-beta
	LocalSearchAgent AgentKind = "local"   // Alpha-beta, one move per piece
	RandomAgent      AgentKind = "random"
)

type AgentConfig struct {
	ID       int           `yaml:"id"`
	Kind     AgentKind     `yaml:"kind"`
	Depth    int           `yaml:"depth"`
	Duration time.Duration `yaml:"duration"`
	Seed     uint64        `yaml:"seed"`
}

type GameRecord struct {
	ID     int
	Agent1 int // AgentConfig.ID
	Agent2 int // AgentConfig.ID
	GameMetric
}

type MoveRecord struct {
	Game int // GameRecord.ID
	MoveMetric
}

type Writer struct {
	baseDir string
}

// NewWriter creates root/name/<timestamp> to hold the CSV files of one experiment.
func NewWriter(root, name string) (*Writer, error) {
	// Create a subfolder named by current timestamp
	timestamp := time.Now().UTC().Format("20060102T150405Z")
	baseDir := filepath.Join(root, name, timestamp)
	err := os.MkdirAll(baseDir, 0755)
	if err != nil {
		return nil, fmt.Errorf("failed to create directory: %w", err)
	}

	return &Writer{
		baseDir: baseDir,
	}, nil
}

func (w *Writer) Dir() string {
	return w.baseDir
}

func (w *Writer) WriteAgentConfigs(configs []AgentConfig) error {
	header := []string{"id", "kind", "depth", "duration", "seed"}
	rows := make([][]string, 0, len(configs))
	for _, config := range configs {
		rows = append(rows, []string{
			strconv.Itoa(config.ID),
			string(config.Kind),
			strconv.Itoa(config.Depth),
			config.Duration.String(),
			strconv.FormatUint(config.Seed, 10),
		})
	}
	if err := w.write("agent_configs.csv", header, rows); err != nil {
		return fmt.Errorf("failed to write agent configs: %w", err)
	}
	return nil
}

func (w *Writer) WriteGameRecords(records []GameRecord) error {
	header := []string{"id", "agent1", "agent2", "starting_player", "winner", "start_time", "end_time", "duration", "total_moves"}
	rows := make([][]string, 0, len(records))
	for _, record := range records {
		rows = append(rows, []string{
			strconv.Itoa(record.ID),
			strconv.Itoa(record.Agent1),
			strconv.Itoa(record.Agent2),
			strconv.Itoa(record.StartingPlayer),
			strconv.Itoa(record.Winner),
			record.StartTime.Format(time.RFC3339),
			record.EndTime.Format(time.RFC3339),
			record.Duration.String(),
			strconv.Itoa(record.TotalMoves),
		})
	}
	if err := w.write("game_records.csv", header, rows); err != nil {
		return fmt.Errorf("failed to write game records: %w", err)
	}
	return nil
}

func (w *Writer) WriteMoveRecords(records []MoveRecord) error {
	header := []string{"game", "step", "player", "depth", "local_search", "duration", "nodes", "leaves", "cutoffs", "timeouts", "no_legal_moves", "max_branching"}
	rows := make([][]string, 0, len(records))
	for _, record := range records {
		rows = append(rows, []string{
			strconv.Itoa(record.Game),
			strconv.Itoa(record.Step),
			strconv.Itoa(record.Player),
			strconv.Itoa(record.Depth),
			strconv.FormatBool(record.LocalSearch),
			record.Duration.String(),
			strconv.Itoa(record.Nodes),
			strconv.Itoa(record.Leaves),
			strconv.Itoa(record.Cutoffs),
			strconv.Itoa(record.Timeouts),
			strconv.Itoa(record.NoLegalMoves),
			strconv.Itoa(record.MaxBranching),
		})
	}
	if err := w.write("move_records.csv", header, rows); err != nil {
		return fmt.Errorf("failed to write move records: %w", err)
	}
	return nil
}

func (w *Writer) write(name string, header []string, rows [][]string) error {
	f, err := os.Create(filepath.Join(w.baseDir, name))
	if err != nil {
		return fmt.Errorf("failed to create %s: %w", name, err)
	}
	defer f.Close()

	writer := csv.NewWriter(f)
	if err := writer.Write(header); err != nil {
		return fmt.Errorf("failed to write header: %w", err)
	}
	if err := writer.WriteAll(rows); err != nil {
		return fmt.Errorf("failed to write rows: %w", err)
	}
	return nil
}
