package storage

import (
	"context"
	"math"
	"testing"

	"github.com/san-kum/shaderlab/internal/analysis"
	"github.com/san-kum/shaderlab/internal/automation"
	"github.com/san-kum/shaderlab/internal/effect"
)

func TestStoreSaveSession(t *testing.T) {
	st := New(t.TempDir())
	if err := st.Init(); err != nil {
		t.Fatalf("init failed: %v", err)
	}

	reg := effect.Default()
	sc := &automation.Scenario{
		Name:     "Hover Tour",
		FPS:      10,
		Duration: 1,
		Steps:    []automation.Step{{At: 0.5, Action: automation.ActionHover, Effect: "fractal"}},
	}
	res, err := automation.RunScenario(context.Background(), sc, reg, 8, 6)
	if err != nil {
		t.Fatalf("run failed: %v", err)
	}

	runID, err := st.SaveSession(sc, res)
	if err != nil {
		t.Fatalf("save failed: %v", err)
	}

	meta, err := st.Load(runID)
	if err != nil {
		t.Fatalf("load failed: %v", err)
	}
	if meta.Kind != KindSession || meta.Name != "Hover Tour" {
		t.Errorf("unexpected metadata %+v", meta)
	}
	if meta.Selected != 3 {
		t.Errorf("expected selected 3, got %d", meta.Selected)
	}
	if meta.Metrics["elapsed_1"] != res.Elapsed[1] {
		t.Errorf("elapsed not stored: %v", meta.Metrics)
	}
}

func TestStoreSaveProbe(t *testing.T) {
	st := New(t.TempDir())
	e, _ := effect.Default().ByName("fractal")
	spec := analysis.ProbeSpec{X: 0, Y: 0, Duration: 1, Rate: 8, Channel: analysis.Red}
	samples := analysis.Probe(e, 4, 4, spec)

	runID, err := st.SaveProbe(e, spec, samples)
	if err != nil {
		t.Fatalf("save failed: %v", err)
	}

	times, values, err := st.LoadSamples(runID)
	if err != nil {
		t.Fatalf("load samples failed: %v", err)
	}
	if len(values) != len(samples) {
		t.Fatalf("expected %d samples, got %d", len(samples), len(values))
	}
	for i := range values {
		if math.Abs(values[i]-samples[i]) > 1e-6 {
			t.Errorf("sample %d = %f, want %f", i, values[i], samples[i])
		}
	}
	if times[1] != 0.125 {
		t.Errorf("expected second sample at 0.125s, got %f", times[1])
	}
}

func TestStoreList(t *testing.T) {
	st := New(t.TempDir())
	e, _ := effect.Default().First()
	spec := analysis.ProbeSpec{Duration: 1, Rate: 4, Channel: analysis.Lightness}

	first, err := st.SaveProbe(e, spec, []float64{1, 2, 3, 4})
	if err != nil {
		t.Fatal(err)
	}
	second, err := st.SaveProbe(e, spec, []float64{4, 3, 2, 1})
	if err != nil {
		t.Fatal(err)
	}

	runs, err := st.List()
	if err != nil {
		t.Fatalf("list failed: %v", err)
	}
	if len(runs) != 2 {
		t.Fatalf("expected 2 runs, got %d", len(runs))
	}
	if runs[0].ID != first || runs[1].ID != second {
		t.Errorf("runs not ordered by time: %s, %s", runs[0].ID, runs[1].ID)
	}
}

func TestStoreList_MissingDir(t *testing.T) {
	st := New(t.TempDir() + "/missing")
	runs, err := st.List()
	if err != nil {
		t.Fatalf("list failed: %v", err)
	}
	if len(runs) != 0 {
		t.Errorf("expected no runs, got %d", len(runs))
	}
}
