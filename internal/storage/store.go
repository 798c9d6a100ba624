package storage

import (
	"encoding/csv"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strconv"
	"time"

	"github.com/san-kum/folio/internal/bench"
	"github.com/san-kum/folio/internal/particles"
)

var frameHeader = []string{"frame", "time", "nodes", "links", "lines", "circles", "us"}

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
	Preset     string             `json:"preset"`
	Timestamp  time.Time          `json:"timestamp"`
	Seed       uint64             `json:"seed"`
	Width      float64            `json:"width"`
	Height     float64            `json:"height"`
	PixelRatio float64            `json:"pixel_ratio"`
	Frames     int                `json:"frames"`
	IntervalMS float64            `json:"interval_ms"`
	Pointer    string             `json:"pointer"`
	Options    particles.Options  `json:"options"`
	Metrics    map[string]float64 `json:"metrics"`
}

func (s *Store) Save(result *bench.Result) (string, error) {
	cfg := result.Config
	preset := cfg.Preset
	if preset == "" {
		preset = "custom"
	}
	now := time.Now()
	runID := fmt.Sprintf("%s_%d", preset, now.Unix())
	runDir := filepath.Join(s.baseDir, runID)
	for i := 1; exists(runDir); i++ {
		runID = fmt.Sprintf("%s_%d_%d", preset, now.Unix(), i)
		runDir = filepath.Join(s.baseDir, runID)
	}

	if err := os.MkdirAll(runDir, 0755); err != nil {
		return "", err
	}

	meta := RunMetadata{
		ID:         runID,
		Preset:     preset,
		Timestamp:  now,
		Seed:       cfg.Seed,
		Width:      cfg.Width,
		Height:     cfg.Height,
		PixelRatio: cfg.PixelRatio,
		Frames:     len(result.Frames),
		IntervalMS: float64(cfg.Interval) / float64(time.Millisecond),
		Pointer:    string(cfg.Pointer),
		Options:    cfg.Options,
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

	csvFile, err := os.Create(filepath.Join(runDir, "frames.csv"))
	if err != nil {
		return "", err
	}
	defer csvFile.Close()

	w := csv.NewWriter(csvFile)
	if err := w.Write(frameHeader); err != nil {
		return "", err
	}
	for _, f := range result.Frames {
		row := []string{
			strconv.Itoa(f.Index),
			strconv.FormatFloat(f.Time, 'f', 6, 64),
			strconv.Itoa(f.Nodes),
			strconv.Itoa(f.Links),
			strconv.Itoa(f.Lines),
			strconv.Itoa(f.Circles),
			strconv.FormatFloat(f.Micros, 'f', 3, 64),
		}
		if err := w.Write(row); err != nil {
			return "", err
		}
	}
	w.Flush()
	if err := w.Error(); err != nil {
		return "", err
	}

	return runID, nil
}

// List returns every readable run, newest first.
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
	sort.SliceStable(runs, func(i, j int) bool {
		return runs[i].Timestamp.After(runs[j].Timestamp)
	})

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

func (s *Store) LoadFrames(runID string) ([]bench.Frame, error) {
	file, err := os.Open(filepath.Join(s.baseDir, runID, "frames.csv"))
	if err != nil {
		return nil, err
	}
	defer file.Close()

	r := csv.NewReader(file)
	r.FieldsPerRecord = -1

	records, err := r.ReadAll()
	if err != nil {
		return nil, err
	}
	if len(records) < 2 {
		return []bench.Frame{}, nil
	}

	frames := make([]bench.Frame, 0, len(records)-1)
	for _, record := range records[1:] {
		if len(record) < len(frameHeader) {
			continue
		}
		var f bench.Frame
		var perr error
		atoi := func(s string) int {
			v, err := strconv.Atoi(s)
			if err != nil && perr == nil {
				perr = err
			}
			return v
		}
		atof := func(s string) float64 {
			v, err := strconv.ParseFloat(s, 64)
			if err != nil && perr == nil {
				perr = err
			}
			return v
		}
		f.Index = atoi(record[0])
		f.Time = atof(record[1])
		f.Nodes = atoi(record[2])
		f.Links = atoi(record[3])
		f.Lines = atoi(record[4])
		f.Circles = atoi(record[5])
		f.Micros = atof(record[6])
		if perr != nil {
			continue
		}
		frames = append(frames, f)
	}

	return frames, nil
}

func exists(path string) bool {
	_, err := os.Stat(path)
	return err == nil
}
