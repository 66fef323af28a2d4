package storage

import (
	"math"
	"testing"

	"github.com/san-kum/collider/internal/engine"
	"github.com/san-kum/collider/internal/particle"
)

func testResult() *engine.Result {
	return &engine.Result{
		Frames:     3,
		Collisions: 7,
		Metrics:    map[string]float64{"kinetic_energy": 123.5},
		EnergyHistory: []float64{
			100.0, 110.0, 120.0,
		},
	}
}

func TestSaveLoadRoundTrip(t *testing.T) {
	store := New(t.TempDir())
	if err := store.Init(); err != nil {
		t.Fatal(err)
	}

	final := []*particle.Particle{
		{X: 100, Y: 200, Vx: 10, Vy: -5, Mass: 2, Elasticity: 0.9, Radius: 12},
	}

	runID, err := store.Save(42, 1.0/60.0, true, false, testResult(), final)
	if err != nil {
		t.Fatal(err)
	}

	meta, err := store.Load(runID)
	if err != nil {
		t.Fatal(err)
	}

	if meta.ID != runID {
		t.Errorf("id = %s, want %s", meta.ID, runID)
	}
	if meta.Seed != 42 {
		t.Errorf("seed = %d, want 42", meta.Seed)
	}
	if meta.Frames != 3 || meta.Collisions != 7 {
		t.Errorf("frames/collisions = %d/%d, want 3/7", meta.Frames, meta.Collisions)
	}
	if !meta.GravityOn || meta.FrictionOn {
		t.Error("toggle flags lost in round trip")
	}
	if meta.Particles != 1 {
		t.Errorf("particles = %d, want 1", meta.Particles)
	}
	if got := meta.Metrics["kinetic_energy"]; got != 123.5 {
		t.Errorf("metric = %f, want 123.5", got)
	}
}

func TestLoadFrames(t *testing.T) {
	store := New(t.TempDir())
	if err := store.Init(); err != nil {
		t.Fatal(err)
	}

	dt := 1.0 / 60.0
	runID, err := store.Save(1, dt, false, false, testResult(), nil)
	if err != nil {
		t.Fatal(err)
	}

	times, energy, err := store.LoadFrames(runID)
	if err != nil {
		t.Fatal(err)
	}

	if len(times) != 3 || len(energy) != 3 {
		t.Fatalf("got %d times and %d energies, want 3 each", len(times), len(energy))
	}
	if math.Abs(times[0]-dt) > 1e-6 {
		t.Errorf("first time = %f, want %f", times[0], dt)
	}
	if math.Abs(energy[2]-120.0) > 1e-6 {
		t.Errorf("last energy = %f, want 120", energy[2])
	}
}

func TestList(t *testing.T) {
	store := New(t.TempDir())
	if err := store.Init(); err != nil {
		t.Fatal(err)
	}

	if _, err := store.Save(1, 1.0/60.0, false, false, testResult(), nil); err != nil {
		t.Fatal(err)
	}

	runs, err := store.List()
	if err != nil {
		t.Fatal(err)
	}
	if len(runs) != 1 {
		t.Fatalf("listed %d runs, want 1", len(runs))
	}
	if runs[0].Collisions != 7 {
		t.Errorf("collisions = %d, want 7", runs[0].Collisions)
	}
}

func TestListMissingBaseDir(t *testing.T) {
	store := New(t.TempDir() + "/never-created")

	runs, err := store.List()
	if err != nil {
		t.Fatal(err)
	}
	if len(runs) != 0 {
		t.Errorf("listed %d runs from a missing dir, want 0", len(runs))
	}
}

func TestLoadUnknownRun(t *testing.T) {
	store := New(t.TempDir())
	if _, err := store.Load("run_0"); err == nil {
		t.Error("expected error for unknown run id")
	}
}
