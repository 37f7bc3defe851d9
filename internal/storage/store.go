package storage

import (
	"encoding/csv"
	"encoding/json"
	"errors"
	"fmt"
	"math"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"github.com/san-kum/sketchphys/internal/config"
	"github.com/san-kum/sketchphys/internal/physics"
	"github.com/san-kum/sketchphys/internal/scene"
	"github.com/san-kum/sketchphys/internal/vec"
)

const (
	metadataFile   = "metadata.json"
	trajectoryFile = "trajectory.csv"
)

var ErrMalformedRow = errors.New("storage: malformed trajectory row")

var trajectoryHeader = []string{"frame", "particle", "x", "y", "z", "vx", "vy", "vz"}

type Store struct {
	baseDir string
}

func New(baseDir string) *Store {
	return &Store{baseDir: baseDir}
}

func (s *Store) Init() error {
	return os.MkdirAll(s.baseDir, 0755)
}

type RunMetadata struct {
	ID        string             `json:"id"`
	Scene     string             `json:"scene"`
	Timestamp time.Time          `json:"timestamp"`
	Seed      int64              `json:"seed"`
	Frames    int                `json:"frames"`
	Gravity   float64            `json:"gravity"`
	Charge    float64            `json:"charge"`
	Field     []float64          `json:"field,omitempty"`
	Particles int                `json:"particles"`
	Metrics   map[string]float64 `json:"metrics"`
}

// Save writes a run under a new directory. Non-finite metrics are dropped,
// and on any error the partial directory is removed.
func (s *Store) Save(cfg *config.Config, result *scene.Result) (runID string, err error) {
	now := time.Now()
	runID = fmt.Sprintf("%s_%d", runName(cfg.Name), now.UnixNano())
	runDir := filepath.Join(s.baseDir, runID)

	if err := os.MkdirAll(runDir, 0755); err != nil {
		return "", err
	}
	defer func() {
		if err != nil {
			os.RemoveAll(runDir)
			runID = ""
		}
	}()

	meta := RunMetadata{
		ID:        runID,
		Scene:     cfg.Name,
		Timestamp: now,
		Seed:      cfg.Seed,
		Frames:    result.FramesRun,
		Gravity:   cfg.Physics.Gravity,
		Charge:    cfg.Physics.Charge,
		Field:     cfg.Field,
		Particles: len(result.Trajectories),
		Metrics:   finiteMetrics(result.Metrics),
	}

	if err := writeJSON(filepath.Join(runDir, metadataFile), meta); err != nil {
		return "", err
	}

	if err := writeTrajectories(filepath.Join(runDir, trajectoryFile), result.Trajectories); err != nil {
		return "", err
	}

	return runID, nil
}

// runName keeps a scene name usable as a single path element.
func runName(name string) string {
	name = strings.NewReplacer("/", "_", "\\", "_").Replace(name)
	if name == "" || name == "." || name == ".." {
		return "run"
	}
	return name
}

func finiteMetrics(metrics map[string]float64) map[string]float64 {
	out := make(map[string]float64, len(metrics))
	for k, v := range metrics {
		if !math.IsNaN(v) && !math.IsInf(v, 0) {
			out[k] = v
		}
	}
	return out
}

func writeJSON(path string, v interface{}) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()

	enc := json.NewEncoder(f)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}

func writeTrajectories(path string, trajectories [][]physics.State) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()

	w := csv.NewWriter(f)
	if err := w.Write(trajectoryHeader); err != nil {
		return err
	}

	format := func(v float64) string { return strconv.FormatFloat(v, 'f', 6, 64) }

	for pi, traj := range trajectories {
		for frame, st := range traj {
			row := []string{
				strconv.Itoa(frame),
				strconv.Itoa(pi),
				format(st.Position.X()), format(st.Position.Y()), format(st.Position.Z()),
				format(st.Velocity.X()), format(st.Velocity.Y()), format(st.Velocity.Z()),
			}
			if err := w.Write(row); err != nil {
				return err
			}
		}
	}

	w.Flush()
	return w.Error()
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

		meta, err := s.Load(entry.Name())
		if err != nil {
			continue
		}

		runs = append(runs, *meta)
	}

	return runs, nil
}

func (s *Store) Load(runID string) (*RunMetadata, error) {
	data, err := os.ReadFile(filepath.Join(s.baseDir, runID, metadataFile))
	if err != nil {
		return nil, err
	}

	var meta RunMetadata
	if err := json.Unmarshal(data, &meta); err != nil {
		return nil, err
	}

	return &meta, nil
}

// LoadResult reads a run's trajectories back into a scene.Result.
func (s *Store) LoadResult(runID string) (*scene.Result, error) {
	meta, err := s.Load(runID)
	if err != nil {
		return nil, err
	}

	file, err := os.Open(filepath.Join(s.baseDir, runID, trajectoryFile))
	if err != nil {
		return nil, err
	}
	defer file.Close()

	records, err := csv.NewReader(file).ReadAll()
	if err != nil {
		return nil, err
	}

	result := &scene.Result{
		Trajectories: make([][]physics.State, meta.Particles),
		Metrics:      meta.Metrics,
		FramesRun:    meta.Frames,
	}

	for i := 1; i < len(records); i++ {
		pi, st, err := parseRow(records[i])
		if err != nil {
			return nil, fmt.Errorf("%s line %d: %w", trajectoryFile, i+1, err)
		}
		if pi >= len(result.Trajectories) {
			return nil, fmt.Errorf("%s line %d: %w", trajectoryFile, i+1, ErrMalformedRow)
		}
		result.Trajectories[pi] = append(result.Trajectories[pi], st)
	}

	return result, nil
}

func parseRow(record []string) (int, physics.State, error) {
	if len(record) != len(trajectoryHeader) {
		return 0, physics.State{}, ErrMalformedRow
	}

	pi, err := strconv.Atoi(record[1])
	if err != nil || pi < 0 {
		return 0, physics.State{}, ErrMalformedRow
	}

	vals := make([]float64, 6)
	for j := range vals {
		vals[j], err = strconv.ParseFloat(record[j+2], 64)
		if err != nil {
			return 0, physics.State{}, ErrMalformedRow
		}
	}

	return pi, physics.State{
		Position: vec.New3(vals[0], vals[1], vals[2]),
		Velocity: vec.New3(vals[3], vals[4], vals[5]),
	}, nil
}
