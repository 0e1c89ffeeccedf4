// Package storage persists sampled stream evaluations to disk: one
// metadata.json plus one samples.csv per run, with each sample row
// carrying (t, Re(y), Im(y)) for a queried special function.
package storage

import (
	"encoding/csv"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"time"

	"github.com/san-kum/odeflow/internal/vecalg"
)

type Store struct {
	baseDir string
}

func New(baseDir string) *Store {
	return &Store{baseDir: baseDir}
}

func (s *Store) Init() error {
	return os.MkdirAll(s.baseDir, 0755)
}

// RunMetadata records the query that produced a set of samples.
type RunMetadata struct {
	ID         string    `json:"id"`
	Function   string    `json:"function"`
	Integrator string    `json:"integrator"`
	Timestamp  time.Time `json:"timestamp"`
	Atol       float64   `json:"atol"`
	Rtol       float64   `json:"rtol"`
	T0         float64   `json:"t0"`
	T1         float64   `json:"t1"`
	Samples    int       `json:"samples"`
}

// Save writes one run's metadata and its (t, y) samples, returning
// the generated run ID.
func (s *Store) Save(function, integrator string, atol, rtol, t0, t1 float64, ts []float64, ys []vecalg.Vector) (string, error) {
	runID := fmt.Sprintf("%s_%d", function, time.Now().Unix())
	runDir := filepath.Join(s.baseDir, runID)

	if err := os.MkdirAll(runDir, 0755); err != nil {
		return "", err
	}

	meta := RunMetadata{
		ID:         runID,
		Function:   function,
		Integrator: integrator,
		Timestamp:  time.Now(),
		Atol:       atol,
		Rtol:       rtol,
		T0:         t0,
		T1:         t1,
		Samples:    len(ts),
	}

	metaPath := filepath.Join(runDir, "metadata.json")
	metaFile, err := os.Create(metaPath)
	if err != nil {
		return "", err
	}
	defer metaFile.Close()

	enc := json.NewEncoder(metaFile)
	enc.SetIndent("", "  ")
	if err := enc.Encode(meta); err != nil {
		return "", err
	}

	csvPath := filepath.Join(runDir, "samples.csv")
	csvFile, err := os.Create(csvPath)
	if err != nil {
		return "", err
	}
	defer csvFile.Close()

	w := csv.NewWriter(csvFile)
	defer w.Flush()

	dim := 0
	if len(ys) > 0 {
		dim = ys[0].Dim()
	}

	header := []string{"t"}
	for i := 0; i < dim; i++ {
		header = append(header, fmt.Sprintf("re%d", i), fmt.Sprintf("im%d", i))
	}
	if err := w.Write(header); err != nil {
		return "", err
	}

	for i, t := range ts {
		row := []string{strconv.FormatFloat(t, 'g', -1, 64)}
		if i < len(ys) {
			for _, c := range ys[i] {
				row = append(row, strconv.FormatFloat(real(c), 'g', -1, 64), strconv.FormatFloat(imag(c), 'g', -1, 64))
			}
		}
		if err := w.Write(row); err != nil {
			return "", err
		}
	}

	return runID, nil
}

func (s *Store) List() ([]RunMetadata, error) {
	entries, err := os.ReadDir(s.baseDir)
	if err != nil {
		if os.IsNotExist(err) {
			return []RunMetadata{}, nil
		}
		return nil, err
	}

	runs := make([]RunMetadata, 0)
	for _, entry := range entries {
		if !entry.IsDir() {
			continue
		}

		metaPath := filepath.Join(s.baseDir, entry.Name(), "metadata.json")
		data, err := os.ReadFile(metaPath)
		if err != nil {
			continue
		}

		var meta RunMetadata
		if err := json.Unmarshal(data, &meta); err != nil {
			continue
		}

		runs = append(runs, meta)
	}

	return runs, nil
}

func (s *Store) Load(runID string) (*RunMetadata, error) {
	metaPath := filepath.Join(s.baseDir, runID, "metadata.json")
	data, err := os.ReadFile(metaPath)
	if err != nil {
		return nil, err
	}

	var meta RunMetadata
	if err := json.Unmarshal(data, &meta); err != nil {
		return nil, err
	}

	return &meta, nil
}

// LoadSamples reads back a run's (t, y) samples, reconstructing each
// y as a complex-component vecalg.Vector.
func (s *Store) LoadSamples(runID string) ([]float64, []vecalg.Vector, error) {
	csvPath := filepath.Join(s.baseDir, runID, "samples.csv")
	file, err := os.Open(csvPath)
	if err != nil {
		return nil, nil, err
	}
	defer file.Close()

	r := csv.NewReader(file)
	r.FieldsPerRecord = -1

	records, err := r.ReadAll()
	if err != nil {
		return nil, nil, err
	}

	if len(records) < 2 {
		return []float64{}, []vecalg.Vector{}, nil
	}

	ts := make([]float64, 0, len(records)-1)
	ys := make([]vecalg.Vector, 0, len(records)-1)

	for i := 1; i < len(records); i++ {
		record := records[i]
		if len(record) == 0 {
			continue
		}

		t, err := strconv.ParseFloat(record[0], 64)
		if err != nil {
			continue
		}
		ts = append(ts, t)

		dim := (len(record) - 1) / 2
		v := make(vecalg.Vector, dim)
		for j := 0; j < dim; j++ {
			re, _ := strconv.ParseFloat(record[1+2*j], 64)
			im, _ := strconv.ParseFloat(record[2+2*j], 64)
			v[j] = complex(re, im)
		}
		ys = append(ys, v)
	}

	return ts, ys, nil
}
