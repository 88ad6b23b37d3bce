package metrics

import (
	"encoding/csv"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"time"
)

type ScenarioRecord struct {
	ID          int
	Name        string
	Kind        string
	Attackers   int
	Defenders   int // Total defenders along the path for path scenarios
	Territories int
	Trials      int
	Estimate    float64 // Win rate, path success probability or loss ratio
}

type Writer struct {
	baseDir string
}

func NewWriter(root, name string) (*Writer, error) {
	// Create a subfolder named by current timestamp
	timestamp := time.Now().UTC().Format(time.RFC3339)
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

func (w *Writer) WriteScenarioRecords(records []ScenarioRecord) error {
	header := []string{"id", "name", "kind", "attackers", "defenders", "territories", "trials", "estimate"}
	rows := make([][]string, 0, len(records))
	for _, record := range records {
		rows = append(rows, []string{
			strconv.Itoa(record.ID),
			record.Name,
			record.Kind,
			strconv.Itoa(record.Attackers),
			strconv.Itoa(record.Defenders),
			strconv.Itoa(record.Territories),
			strconv.Itoa(record.Trials),
			strconv.FormatFloat(record.Estimate, 'f', 6, 64),
		})
	}
	return w.write("scenario_records.csv", header, rows)
}

func (w *Writer) WriteSimulationRecords(records []SimulationMetric) error {
	header := []string{"kind", "goroutines", "seed", "trials", "rounds", "start_time", "duration"}
	rows := make([][]string, 0, len(records))
	for _, record := range records {
		rows = append(rows, []string{
			record.Kind,
			strconv.Itoa(record.Goroutines),
			strconv.FormatUint(record.Seed, 10),
			strconv.Itoa(record.Trials),
			strconv.Itoa(record.Rounds),
			record.StartTime.Format(time.RFC3339),
			record.Duration.String(),
		})
	}
	return w.write("simulation_records.csv", header, rows)
}

func (w *Writer) write(file string, header []string, rows [][]string) error {
	path := filepath.Join(w.baseDir, file)
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create %s: %w", file, err)
	}
	defer f.Close()

	writer := csv.NewWriter(f)

	err = writer.Write(header)
	if err != nil {
		return fmt.Errorf("failed to write %s header: %w", file, err)
	}
	err = writer.WriteAll(rows)
	if err != nil {
		return fmt.Errorf("failed to write %s rows: %w", file, err)
	}

	return nil
}
