package metrics

import (
	"encoding/csv"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"time"

	"github.com/parquet-go/parquet-go"
	"github.com/parquet-go/parquet-go/compress/zstd"
)

type AgentConfig struct {
	ID       int           `yaml:"-"`
	Name     string        `yaml:"name"`
	Kind     string        `yaml:"kind"` // "mcts" or "random"
	Duration time.Duration `yaml:"duration"`
	Episodes int           `yaml:"episodes"`
	Seed     uint64        `yaml:"seed"`
}

type GameRecord struct {
	ID int
	GameMetric
}

type MoveRecord struct {
	Game int // GameRecord.ID
	MoveMetric
}

// MoveRow is the on-disk layout of a MoveRecord.
type MoveRow struct {
	Game         int32   `parquet:"game"`
	Step         int32   `parquet:"step"`
	Player       string  `parquet:"player,dict"`
	Agent        string  `parquet:"agent,dict"`
	Move         string  `parquet:"move"`
	DurationNs   int64   `parquet:"duration_ns"`
	Episodes     int32   `parquet:"episodes"`
	FullPlayouts int32   `parquet:"full_playouts"`
	Nodes        int32   `parquet:"nodes"`
	MaxDepth     int32   `parquet:"max_depth"`
	BestAverage  float64 `parquet:"best_average"`
}

type Writer struct {
	baseDir string
}

// NewWriter creates root/name/<timestamp> to hold the files of one experiment.
func NewWriter(root, name string) (*Writer, error) {
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
	rows := [][]string{{"id", "name", "kind", "duration", "episodes", "seed"}}
	for _, config := range configs {
		rows = append(rows, []string{
			strconv.Itoa(config.ID),
			config.Name,
			config.Kind,
			config.Duration.String(),
			strconv.Itoa(config.Episodes),
			strconv.FormatUint(config.Seed, 10),
		})
	}
	return w.writeCSV("agent_configs.csv", rows)
}

func (w *Writer) WriteGameRecords(records []GameRecord) error {
	rows := [][]string{{"id", "blue", "green", "red", "winner", "loser", "start_time", "end_time", "duration", "total_moves"}}
	for _, record := range records {
		rows = append(rows, []string{
			strconv.Itoa(record.ID),
			record.Seats[0],
			record.Seats[1],
			record.Seats[2],
			record.Winner,
			record.Loser,
			record.StartTime.Format(time.RFC3339),
			record.EndTime.Format(time.RFC3339),
			record.Duration.String(),
			strconv.Itoa(record.TotalMoves),
		})
	}
	return w.writeCSV("game_records.csv", rows)
}

func (w *Writer) writeCSV(name string, rows [][]string) error {
	path := filepath.Join(w.baseDir, name)
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create %s: %w", name, err)
	}
	defer f.Close()

	writer := csv.NewWriter(f)
	err = writer.WriteAll(rows)
	if err != nil {
		return fmt.Errorf("failed to write %s: %w", name, err)
	}
	return nil
}

// WriteMoveRecords stores the per-decision search metrics as a zstd compressed parquet file.
func (w *Writer) WriteMoveRecords(records []MoveRecord) error {
	rows := make([]MoveRow, len(records))
	for i, record := range records {
		rows[i] = MoveRow{
			Game:         int32(record.Game),
			Step:         int32(record.Step),
			Player:       record.Player,
			Agent:        record.Agent,
			Move:         record.Move,
			DurationNs:   record.Duration.Nanoseconds(),
			Episodes:     int32(record.Episodes),
			FullPlayouts: int32(record.FullPlayouts),
			Nodes:        int32(record.Nodes),
			MaxDepth:     int32(record.MaxDepth),
			BestAverage:  record.BestAverage,
		}
	}

	path := filepath.Join(w.baseDir, "move_records.parquet")
	err := parquet.WriteFile(path, rows,
		parquet.Compression(&zstd.Codec{Level: zstd.SpeedBetterCompression}),
		parquet.KeyValueMetadata("schema", "move_record_v1"),
	)
	if err != nil {
		return fmt.Errorf("failed to write move records: %w", err)
	}
	return nil
}

// ReadMoveRows loads a file written by WriteMoveRecords.
func ReadMoveRows(path string) ([]MoveRow, error) {
	rows, err := parquet.ReadFile[MoveRow](path)
	if err != nil {
		return nil, fmt.Errorf("failed to read move records: %w", err)
	}
	return rows, nil
}
