package storage

import (
	"encoding/json"
	"io"
	"os"
)

// RunExport is the flat JSON shape for downstream tooling.
type RunExport struct {
	ID       string             `json:"id"`
	Scenario string             `json:"scenario"`
	Dt       float64            `json:"dt"`
	Duration float64            `json:"duration"`
	Times    []float64          `json:"times"`
	Frames   [][]float64        `json:"frames"`
	Metrics  map[string]float64 `json:"metrics"`
}

// ExportJSON writes a full run (metadata plus frames) as indented JSON.
func ExportJSON(w io.Writer, meta *RunMetadata, frames [][]float64, times []float64) error {
	out := RunExport{
		ID:       meta.ID,
		Scenario: meta.Scenario,
		Dt:       meta.Dt,
		Duration: meta.Duration,
		Times:    times,
		Frames:   frames,
		Metrics:  meta.Metrics,
	}

	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(out)
}

// ExportJSONStdout is ExportJSON to standard output.
func ExportJSONStdout(meta *RunMetadata, frames [][]float64, times []float64) error {
	return ExportJSON(os.Stdout, meta, frames, times)
}
