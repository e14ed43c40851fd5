package snapshots

import (
	"bytes"
	"encoding/json"
	"errors"
	"os"
	"path/filepath"
	"sort"
	"time"

	"sports-data-service/internal/domain"
	"sports-data-service/internal/timeutil"
)

// DefaultRetentionDays applies when the writer is built with a non-positive retention.
const DefaultRetentionDays = 14

// Writer persists dataset snapshots and the manifest with pruning.
type Writer struct {
	basePath      string
	retentionDays int
	now           func() time.Time
}

// NewWriter constructs a writer rooted at basePath with a rolling window retention.
func NewWriter(basePath string, retentionDays int) *Writer {
	if retentionDays <= 0 {
		retentionDays = DefaultRetentionDays
	}
	return &Writer{
		basePath:      basePath,
		retentionDays: retentionDays,
		now:           time.Now,
	}
}

// BasePath exposes the writer root path (primarily for testing).
func (w *Writer) BasePath() string {
	if w == nil {
		return ""
	}
	return w.basePath
}

// WriteDatasetSnapshot writes the dataset for the given date (YYYY-MM-DD) and prunes old
// snapshots. Game order is kept as generated.
func (w *Writer) WriteDatasetSnapshot(date string, ds domain.Dataset) error {
	if w == nil {
		return errors.New("snapshot writer not configured")
	}
	if date == "" {
		return errors.New("date required")
	}
	if _, err := timeutil.ParseDate(date, time.UTC); err != nil {
		return err
	}

	target := DatasetSnapshotPath(w.basePath, date)
	if err := os.MkdirAll(filepath.Dir(target), 0o755); err != nil {
		return err
	}

	data, err := json.MarshalIndent(ds, "", "  ")
	if err != nil {
		return err
	}

	if existing, err := os.ReadFile(target); err == nil && bytes.Equal(existing, data) {
		return w.updateManifest(date, ds.Seed)
	}

	tmp := target + ".tmp"
	if err := os.WriteFile(tmp, data, 0o644); err != nil {
		return err
	}
	if err := os.Rename(tmp, target); err != nil {
		return err
	}

	return w.updateManifest(date, ds.Seed)
}

func (w *Writer) updateManifest(date string, seed uint64) error {
	m, _ := readManifest(ManifestPath(w.basePath), w.retentionDays)

	dates, err := listDates(w.basePath)
	if err != nil {
		return err
	}
	if !containsDate(dates, date) {
		dates = append(dates, date)
	}

	m.Dataset.Dates = w.pruneOldSnapshots(dates)
	m.Dataset.LastWritten = w.now().UTC()
	m.Dataset.LastSeed = seed
	m.Retention.DatasetDays = w.retentionDays

	return writeManifest(w.basePath, m)
}

func containsDate(dates []string, date string) bool {
	for _, d := range dates {
		if d == date {
			return true
		}
	}
	return false
}

func listDates(basePath string) ([]string, error) {
	entries, err := os.ReadDir(filepath.Join(basePath, datasetDir))
	if err != nil {
		if os.IsNotExist(err) {
			return []string{}, nil
		}
		return nil, err
	}
	dates := []string{}
	for _, e := range entries {
		if e.IsDir() {
			continue
		}
		name := e.Name()
		if filepath.Ext(name) != ".json" {
			continue
		}
		dates = append(dates, name[:len(name)-len(".json")])
	}
	sort.Strings(dates)
	return dates, nil
}

func (w *Writer) pruneOldSnapshots(dates []string) []string {
	cutoff := timeutil.StartOfDay(w.now().UTC()).AddDate(0, 0, -w.retentionDays)
	keep := []string{}
	for _, d := range dates {
		parsed, err := timeutil.ParseDate(d, time.UTC)
		if err != nil {
			keep = append(keep, d)
			continue
		}
		if parsed.Before(cutoff) {
			_ = os.Remove(DatasetSnapshotPath(w.basePath, d))
			continue
		}
		keep = append(keep, d)
	}
	sort.Strings(keep)
	return keep
}
