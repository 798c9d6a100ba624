package storage

import (
	"encoding/json"
	"io"

	"github.com/san-kum/folio/internal/bench"
)

type ExportData struct {
	Preset  string             `json:"preset"`
	Width   float64            `json:"width"`
	Height  float64            `json:"height"`
	Seed    uint64             `json:"seed"`
	Pointer string             `json:"pointer"`
	Frames  []ExportFrame      `json:"frames"`
	Metrics map[string]float64 `json:"metrics"`
}

type ExportFrame struct {
	Time   float64 `json:"t"`
	Links  int     `json:"links"`
	Micros float64 `json:"us"`
}

// ExportJSON writes a bench result as indented JSON.
func ExportJSON(w io.Writer, result *bench.Result) error {
	cfg := result.Config
	data := ExportData{
		Preset:  cfg.Preset,
		Width:   cfg.Width,
		Height:  cfg.Height,
		Seed:    cfg.Seed,
		Pointer: string(cfg.Pointer),
		Frames:  make([]ExportFrame, len(result.Frames)),
		Metrics: result.Metrics,
	}
	for i, f := range result.Frames {
		data.Frames[i] = ExportFrame{Time: f.Time, Links: f.Links, Micros: f.Micros}
	}

	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(data)
}
