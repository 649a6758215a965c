package storage

import (
	"bytes"
	"encoding/json"
	"math"
	"strings"
	"testing"

	"github.com/san-kum/heatgrid/internal/sim"
)

func sampleResult() *sim.Result {
	return &sim.Result{
		Frames: [][]float64{
			{400, 300},
			{395, 310},
			{390, 320},
		},
		Times:   []float64{0, 0.1, 0.2},
		Metrics: map[string]float64{"spread": 70},
	}
}

func TestSaveAndLoad(t *testing.T) {
	st := New(t.TempDir())
	if err := st.Init(); err != nil {
		t.Fatal(err)
	}

	runID, err := st.Save("junction", 0.1, 0.2, 7, 0, sampleResult())
	if err != nil {
		t.Fatalf("save failed: %v", err)
	}
	if !strings.HasPrefix(runID, "junction_") {
		t.Errorf("unexpected run id: %s", runID)
	}

	meta, err := st.Load(runID)
	if err != nil {
		t.Fatalf("load failed: %v", err)
	}
	if meta.Scenario != "junction" || meta.Seed != 7 || meta.Bodies != 2 {
		t.Errorf("metadata mismatch: %+v", meta)
	}
	if meta.Metrics["spread"] != 70 {
		t.Errorf("metrics not persisted: %v", meta.Metrics)
	}
}

func TestLoadFrames(t *testing.T) {
	st := New(t.TempDir())
	if err := st.Init(); err != nil {
		t.Fatal(err)
	}

	runID, err := st.Save("junction", 0.1, 0.2, 0, 0, sampleResult())
	if err != nil {
		t.Fatal(err)
	}

	frames, times, err := st.LoadFrames(runID)
	if err != nil {
		t.Fatalf("load frames failed: %v", err)
	}

	if len(frames) != 3 || len(times) != 3 {
		t.Fatalf("expected 3 frames, got %d/%d", len(frames), len(times))
	}
	if math.Abs(frames[1][1]-310) > 1e-6 {
		t.Errorf("frame value mismatch: %f", frames[1][1])
	}
	if math.Abs(times[2]-0.2) > 1e-6 {
		t.Errorf("time mismatch: %f", times[2])
	}
}

func TestList(t *testing.T) {
	st := New(t.TempDir())
	if err := st.Init(); err != nil {
		t.Fatal(err)
	}

	runs, err := st.List()
	if err != nil {
		t.Fatal(err)
	}
	if len(runs) != 0 {
		t.Errorf("expected empty store, got %d runs", len(runs))
	}

	if _, err := st.Save("bar", 0.05, 1, 0, 2, sampleResult()); err != nil {
		t.Fatal(err)
	}

	runs, err = st.List()
	if err != nil {
		t.Fatal(err)
	}
	if len(runs) != 1 {
		t.Fatalf("expected 1 run, got %d", len(runs))
	}
	if runs[0].Scenario != "bar" || runs[0].Workers != 2 {
		t.Errorf("listed metadata mismatch: %+v", runs[0])
	}
}

func TestListMissingBaseDir(t *testing.T) {
	st := New("/nonexistent/heatgrid-test")
	runs, err := st.List()
	if err != nil {
		t.Fatalf("missing base dir should list empty, got %v", err)
	}
	if len(runs) != 0 {
		t.Errorf("expected no runs, got %d", len(runs))
	}
}

func TestExportJSON(t *testing.T) {
	meta := &RunMetadata{ID: "junction_1", Scenario: "junction", Dt: 0.1, Duration: 0.2,
		Metrics: map[string]float64{"spread": 70}}

	var buf bytes.Buffer
	err := ExportJSON(&buf, meta, [][]float64{{400, 300}}, []float64{0})
	if err != nil {
		t.Fatalf("export failed: %v", err)
	}

	var out RunExport
	if err := json.Unmarshal(buf.Bytes(), &out); err != nil {
		t.Fatalf("export is not valid JSON: %v", err)
	}
	if out.ID != "junction_1" || len(out.Frames) != 1 || out.Metrics["spread"] != 70 {
		t.Errorf("export mismatch: %+v", out)
	}
}
