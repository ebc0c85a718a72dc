// Package storage keeps reports of scripted sessions and pixel probes on
// disk, one directory per run.
package storage

import (
	"encoding/csv"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"regexp"
	"sort"
	"strconv"
	"strings"
	"time"

	"github.com/san-kum/shaderlab/internal/analysis"
	"github.com/san-kum/shaderlab/internal/automation"
	"github.com/san-kum/shaderlab/internal/effect"
)

const (
	KindSession = "session"
	KindProbe   = "probe"
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
	Kind       string             `json:"kind"`
	Name       string             `json:"name"`
	Timestamp  time.Time          `json:"timestamp"`
	Frames     int                `json:"frames,omitempty"`
	Selected   int                `json:"selected,omitempty"`
	Held       bool               `json:"held,omitempty"`
	Violations int                `json:"violations,omitempty"`
	Metrics    map[string]float64 `json:"metrics"`
}

var unsafeChars = regexp.MustCompile(`[^a-z0-9]+`)

func (s *Store) newRun(kind, name string) (RunMetadata, string, error) {
	now := time.Now()
	slug := strings.Trim(unsafeChars.ReplaceAllString(strings.ToLower(name), "-"), "-")
	if slug == "" {
		slug = kind
	}
	meta := RunMetadata{
		ID:        fmt.Sprintf("%s_%d", slug, now.UnixNano()),
		Kind:      kind,
		Name:      name,
		Timestamp: now,
		Metrics:   make(map[string]float64),
	}
	runDir := filepath.Join(s.baseDir, meta.ID)
	if err := os.MkdirAll(runDir, 0755); err != nil {
		return meta, "", err
	}
	return meta, runDir, nil
}

// SaveSession stores a scenario result: metadata plus events.csv.
func (s *Store) SaveSession(sc *automation.Scenario, res *automation.Result) (string, error) {
	meta, runDir, err := s.newRun(KindSession, sc.Name)
	if err != nil {
		return "", err
	}
	meta.Frames = res.Frames
	meta.Selected = res.Selected
	meta.Held = res.Held
	meta.Violations = res.Violations
	for id, v := range res.Elapsed {
		meta.Metrics["elapsed_"+strconv.Itoa(id)] = v
	}

	if err := writeMeta(runDir, meta); err != nil {
		return "", err
	}

	rows := [][]string{{"at", "action", "effect", "selected"}}
	for _, ev := range res.Events {
		rows = append(rows, []string{
			strconv.FormatFloat(ev.At, 'f', 6, 64),
			ev.Action,
			strconv.Itoa(ev.Effect),
			strconv.Itoa(ev.Selected),
		})
	}
	if err := writeCSV(filepath.Join(runDir, "events.csv"), rows); err != nil {
		return "", err
	}
	return meta.ID, nil
}

// SaveProbe stores probe samples in samples.csv with their sample times.
func (s *Store) SaveProbe(e effect.Effect, spec analysis.ProbeSpec, samples []float64) (string, error) {
	meta, runDir, err := s.newRun(KindProbe, e.Slug)
	if err != nil {
		return "", err
	}
	meta.Metrics["x"] = float64(spec.X)
	meta.Metrics["y"] = float64(spec.Y)
	meta.Metrics["rate"] = spec.Rate
	meta.Metrics["dominant_hz"] = analysis.DominantFrequency(samples, spec.Rate)

	if err := writeMeta(runDir, meta); err != nil {
		return "", err
	}

	rows := [][]string{{"time", string(spec.Channel)}}
	for i, v := range samples {
		t := spec.Start + float64(i)/spec.Rate
		rows = append(rows, []string{
			strconv.FormatFloat(t, 'f', 6, 64),
			strconv.FormatFloat(v, 'f', 6, 64),
		})
	}
	if err := writeCSV(filepath.Join(runDir, "samples.csv"), rows); err != nil {
		return "", err
	}
	return meta.ID, nil
}

func writeMeta(runDir string, meta RunMetadata) error {
	metaFile, err := os.Create(filepath.Join(runDir, "metadata.json"))
	if err != nil {
		return err
	}
	defer metaFile.Close()

	enc := json.NewEncoder(metaFile)
	enc.SetIndent("", "  ")
	return enc.Encode(meta)
}

func writeCSV(path string, rows [][]string) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()

	w := csv.NewWriter(f)
	if err := w.WriteAll(rows); err != nil {
		return err
	}
	return f.Close()
}

// List returns every stored run, oldest first.
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

	sort.Slice(runs, func(i, j int) bool { return runs[i].Timestamp.Before(runs[j].Timestamp) })
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

// LoadSamples reads a probe run back as sample times and values.
func (s *Store) LoadSamples(runID string) ([]float64, []float64, error) {
	file, err := os.Open(filepath.Join(s.baseDir, runID, "samples.csv"))
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
		return []float64{}, []float64{}, nil
	}

	times := make([]float64, 0, len(records)-1)
	values := make([]float64, 0, len(records)-1)
	for _, record := range records[1:] {
		if len(record) < 2 {
			continue
		}
		t, err := strconv.ParseFloat(record[0], 64)
		if err != nil {
			continue
		}
		v, err := strconv.ParseFloat(record[1], 64)
		if err != nil {
			continue
		}
		times = append(times, t)
		values = append(values, v)
	}
	return times, values, nil
}
