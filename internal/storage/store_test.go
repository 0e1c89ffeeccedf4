package storage

import (
	"math"
	"testing"

	"github.com/san-kum/odeflow/internal/vecalg"
)

func TestSaveAndLoad(t *testing.T) {
	s := New(t.TempDir())
	ts := []float64{0, 1, 2}
	ys := []vecalg.Vector{vecalg.Real(1), vecalg.Real(math.E), vecalg.Real(math.E * math.E)}

	runID, err := s.Save("exp", "dopri5", 1e-8, 1e-8, 0, 2, ts, ys)
	if err != nil {
		t.Fatalf("Save: %v", err)
	}
	if runID == "" {
		t.Fatal("expected a non-empty run ID")
	}

	meta, err := s.Load(runID)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if meta.Function != "exp" || meta.Integrator != "dopri5" {
		t.Errorf("unexpected metadata: %+v", meta)
	}
	if meta.Samples != 3 {
		t.Errorf("expected 3 samples recorded, got %d", meta.Samples)
	}

	gotTs, gotYs, err := s.LoadSamples(runID)
	if err != nil {
		t.Fatalf("LoadSamples: %v", err)
	}
	if len(gotTs) != 3 || len(gotYs) != 3 {
		t.Fatalf("expected 3 samples back, got %d ts and %d ys", len(gotTs), len(gotYs))
	}
	for i, want := range ts {
		if math.Abs(gotTs[i]-want) > 1e-9 {
			t.Errorf("ts[%d]: got %g, want %g", i, gotTs[i], want)
		}
	}
	if math.Abs(real(gotYs[1][0])-math.E) > 1e-6 {
		t.Errorf("ys[1]: got %v, want ~e", gotYs[1][0])
	}
}

func TestListEmptyDirReturnsEmptySlice(t *testing.T) {
	s := New(t.TempDir())
	runs, err := s.List()
	if err != nil {
		t.Fatalf("List on an empty dir should not error, got %v", err)
	}
	if len(runs) != 0 {
		t.Errorf("expected no runs, got %d", len(runs))
	}
}

func TestListMissingBaseDirReturnsEmptySlice(t *testing.T) {
	s := New(t.TempDir() + "/does-not-exist")
	runs, err := s.List()
	if err != nil {
		t.Fatalf("List on a missing dir should not error, got %v", err)
	}
	if len(runs) != 0 {
		t.Errorf("expected no runs, got %d", len(runs))
	}
}

func TestListIncludesSavedRuns(t *testing.T) {
	s := New(t.TempDir())
	if _, err := s.Save("sin", "rk4", 1e-6, 1e-6, 0, 1, []float64{0}, []vecalg.Vector{vecalg.Real(0)}); err != nil {
		t.Fatalf("Save: %v", err)
	}
	runs, err := s.List()
	if err != nil {
		t.Fatalf("List: %v", err)
	}
	if len(runs) != 1 {
		t.Fatalf("expected 1 run, got %d", len(runs))
	}
	if runs[0].Function != "sin" {
		t.Errorf("expected function 'sin', got %q", runs[0].Function)
	}
}

func TestLoadMissingRunErrors(t *testing.T) {
	s := New(t.TempDir())
	if _, err := s.Load("no-such-run"); err == nil {
		t.Error("expected an error loading a nonexistent run")
	}
}
