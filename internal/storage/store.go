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

	"github.com/san-kum/trailviz/internal/dynamo"
)

const (
	metaFile  = "metadata.json"
	trailFile = "trail.csv"
)

// Store keeps recorded trails, one directory per run.
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
	Model      string             `json:"model"`
	Integrator string             `json:"integrator"`
	Preset     string             `json:"preset,omitempty"`
	Timestamp  time.Time          `json:"timestamp"`
	Step       float64            `json:"step"`
	Frames     int                `json:"frames"`
	FrameDt    float64            `json:"frame_dt"`
	SimTime    float64            `json:"sim_time"`
	Points     int                `json:"points"`
	Params     map[string]float64 `json:"params,omitempty"`
}

// Save writes meta and the trail points under a new run directory and
// returns the run ID. Points are written oldest first.
func (s *Store) Save(meta RunMetadata, points []dynamo.Vec3) (string, error) {
	if meta.Timestamp.IsZero() {
		meta.Timestamp = time.Now()
	}
	if meta.ID == "" {
		meta.ID = fmt.Sprintf("%s_%d", meta.Model, meta.Timestamp.Unix())
	}
	meta.Points = len(points)

	runDir := filepath.Join(s.baseDir, meta.ID)
	if err := os.MkdirAll(runDir, 0755); err != nil {
		return "", err
	}

	f, err := os.Create(filepath.Join(runDir, metaFile))
	if err != nil {
		return "", err
	}
	defer f.Close()

	enc := json.NewEncoder(f)
	enc.SetIndent("", "  ")
	if err := enc.Encode(meta); err != nil {
		return "", err
	}

	if err := writeTrail(filepath.Join(runDir, trailFile), points); err != nil {
		return "", err
	}
	return meta.ID, nil
}

func writeTrail(path string, points []dynamo.Vec3) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()

	w := csv.NewWriter(f)
	if err := w.Write([]string{"x", "y", "z"}); err != nil {
		return err
	}
	for _, p := range points {
		row := []string{
			strconv.FormatFloat(p.X, 'f', 6, 64),
			strconv.FormatFloat(p.Y, 'f', 6, 64),
			strconv.FormatFloat(p.Z, 'f', 6, 64),
		}
		if err := w.Write(row); err != nil {
			return err
		}
	}
	w.Flush()
	return w.Error()
}

// List returns the metadata of every readable run, oldest first.
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
	data, err := os.ReadFile(filepath.Join(s.baseDir, runID, metaFile))
	if err != nil {
		return nil, err
	}

	var meta RunMetadata
	if err := json.Unmarshal(data, &meta); err != nil {
		return nil, err
	}
	return &meta, nil
}

// LoadTrail reads back the points of a run. Malformed rows are skipped.
func (s *Store) LoadTrail(runID string) ([]dynamo.Vec3, error) {
	f, err := os.Open(filepath.Join(s.baseDir, runID, trailFile))
	if err != nil {
		return nil, err
	}
	defer f.Close()

	r := csv.NewReader(f)
	r.FieldsPerRecord = -1

	records, err := r.ReadAll()
	if err != nil {
		return nil, err
	}
	if len(records) < 2 {
		return []dynamo.Vec3{}, nil
	}

	points := make([]dynamo.Vec3, 0, len(records)-1)
	for _, rec := range records[1:] {
		if len(rec) != 3 {
			continue
		}
		var v [3]float64
		ok := true
		for i := range v {
			if v[i], err = strconv.ParseFloat(rec[i], 64); err != nil {
				ok = false
				break
			}
		}
		if ok {
			points = append(points, dynamo.Vec3{X: v[0], Y: v[1], Z: v[2]})
		}
	}
	return points, nil
}
