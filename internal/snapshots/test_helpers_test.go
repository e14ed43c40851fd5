package snapshots

import (
	"os"
	"path/filepath"
	"testing"

	"sports-data-service/internal/domain"
	"sports-data-service/internal/domain/games"
)

func simpleDataset(ids ...int) domain.Dataset {
	ds := domain.Dataset{Seed: 11}
	for _, id := range ids {
		ds.Games = append(ds.Games, games.Game{ID: id, Status: games.StatusScheduled})
	}
	return ds
}

func writeSnapshot(t *testing.T, w *Writer, date string, ds domain.Dataset) {
	t.Helper()
	if w == nil {
		t.Fatalf("writer is nil for date %s", date)
	}
	if err := w.WriteDatasetSnapshot(date, ds); err != nil {
		t.Fatalf("failed to write snapshot %s: %v", date, err)
	}
}

func writeSimpleSnapshot(t *testing.T, w *Writer, date string) {
	t.Helper()
	writeSnapshot(t, w, date, simpleDataset(1))
}

func requireSnapshotExists(t *testing.T, w *Writer, date string) {
	t.Helper()
	if _, err := os.Stat(filepath.Join(w.BasePath(), "dataset", date+".json")); err != nil {
		t.Fatalf("expected snapshot for %s to be written: %v", date, err)
	}
}

func assertDatesEqual(t *testing.T, got, want []string) {
	t.Helper()
	if len(got) != len(want) {
		t.Fatalf("dates length mismatch: got %v, want %v", got, want)
	}
	for i := range got {
		if got[i] != want[i] {
			t.Fatalf("dates mismatch at %d: got %v, want %v", i, got, want)
		}
	}
}
