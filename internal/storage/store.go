// Package storage persists run artifacts: metadata, per-frame summaries,
// and the final particle snapshot.
package storage

import (
	"encoding/csv"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"time"

	"github.com/san-kum/collider/internal/engine"
	"github.com/san-kum/collider/internal/particle"
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

type RunMetadata struct {
	ID         string             `json:"id"`
	Timestamp  time.Time          `json:"timestamp"`
	Seed       int64              `json:"seed"`
	Dt         float64            `json:"dt"`
	Frames     int                `json:"frames"`
	Particles  int                `json:"particles"`
	Collisions int                `json:"collisions"`
	GravityOn  bool               `json:"gravity_on"`
	FrictionOn bool               `json:"friction_on"`
	Metrics    map[string]float64 `json:"metrics"`
}

// FrameRow is one line of frames.csv.
type FrameRow struct {
	Time   float64
	Energy float64
}

// Save writes a run directory containing metadata.json, frames.csv (time and
// total kinetic energy per frame) and particles.csv (final snapshot).
func (s *Store) Save(seed int64, dt float64, gravityOn, frictionOn bool, result *engine.Result, final []*particle.Particle) (string, error) {
	runID := fmt.Sprintf("run_%d", time.Now().Unix())
	runDir := filepath.Join(s.baseDir, runID)

	if err := os.MkdirAll(runDir, 0755); err != nil {
		return "", err
	}

	meta := RunMetadata{
		ID:         runID,
		Timestamp:  time.Now(),
		Seed:       seed,
		Dt:         dt,
		Frames:     result.Frames,
		Particles:  len(final),
		Collisions: result.Collisions,
		GravityOn:  gravityOn,
		FrictionOn: frictionOn,
		Metrics:    result.Metrics,
	}

	metaFile, err := os.Create(filepath.Join(runDir, "metadata.json"))
	if err != nil {
		return "", err
	}
	defer metaFile.Close()

	enc := json.NewEncoder(metaFile)
	enc.SetIndent("", "  ")
	if err := enc.Encode(meta); err != nil {
		return "", err
	}

	if err := s.writeFrames(runDir, dt, result.EnergyHistory); err != nil {
		return "", err
	}
	if err := s.writeParticles(runDir, final); err != nil {
		return "", err
	}

	return runID, nil
}

func (s *Store) writeFrames(runDir string, dt float64, energy []float64) error {
	f, err := os.Create(filepath.Join(runDir, "frames.csv"))
	if err != nil {
		return err
	}
	defer f.Close()

	w := csv.NewWriter(f)
	defer w.Flush()

	if err := w.Write([]string{"time", "kinetic_energy"}); err != nil {
		return err
	}
	for i, e := range energy {
		row := []string{
			strconv.FormatFloat(float64(i+1)*dt, 'f', 6, 64),
			strconv.FormatFloat(e, 'f', 6, 64),
		}
		if err := w.Write(row); err != nil {
			return err
		}
	}
	return nil
}

func (s *Store) writeParticles(runDir string, ps []*particle.Particle) error {
	f, err := os.Create(filepath.Join(runDir, "particles.csv"))
	if err != nil {
		return err
	}
	defer f.Close()

	w := csv.NewWriter(f)
	defer w.Flush()

	if err := w.Write([]string{"x", "y", "vx", "vy", "mass", "elasticity", "radius"}); err != nil {
		return err
	}
	for _, p := range ps {
		row := []string{
			strconv.FormatFloat(p.X, 'f', 6, 64),
			strconv.FormatFloat(p.Y, 'f', 6, 64),
			strconv.FormatFloat(p.Vx, 'f', 6, 64),
			strconv.FormatFloat(p.Vy, 'f', 6, 64),
			strconv.FormatFloat(p.Mass, 'f', 6, 64),
			strconv.FormatFloat(p.Elasticity, 'f', 6, 64),
			strconv.FormatFloat(p.Radius, 'f', 6, 64),
		}
		if err := w.Write(row); err != nil {
			return err
		}
	}
	return nil
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

		data, err := os.ReadFile(filepath.Join(s.baseDir, entry.Name(), "metadata.json"))
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
	data, err := os.ReadFile(filepath.Join(s.baseDir, runID, "metadata.json"))
	if err != nil {
		return nil, err
	}

	var meta RunMetadata
	if err := json.Unmarshal(data, &meta); err != nil {
		return nil, err
	}

	return &meta, nil
}

// LoadFrames reads frames.csv back as parallel time/energy slices.
func (s *Store) LoadFrames(runID string) ([]float64, []float64, error) {
	f, err := os.Open(filepath.Join(s.baseDir, runID, "frames.csv"))
	if err != nil {
		return nil, nil, err
	}
	defer f.Close()

	r := csv.NewReader(f)
	records, err := r.ReadAll()
	if err != nil {
		return nil, nil, err
	}

	if len(records) < 2 {
		return []float64{}, []float64{}, nil
	}

	times := make([]float64, 0, len(records)-1)
	energy := make([]float64, 0, len(records)-1)

	for _, record := range records[1:] {
		if len(record) < 2 {
			continue
		}
		t, err := strconv.ParseFloat(record[0], 64)
		if err != nil {
			continue
		}
		e, err := strconv.ParseFloat(record[1], 64)
		if err != nil {
			continue
		}
		times = append(times, t)
		energy = append(energy, e)
	}

	return times, energy, nil
}
