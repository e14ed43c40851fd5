package snapshots

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"

	"sports-data-service/internal/domain"
)

// ErrNoSnapshot is returned when no snapshot exists for the requested date.
var ErrNoSnapshot = errors.New("no snapshot")

// FSStore loads dataset snapshots from the filesystem.
type FSStore struct {
	basePath string
}

// NewFSStore constructs an FS-backed snapshot store rooted at basePath.
func NewFSStore(basePath string) *FSStore {
	return &FSStore{basePath: basePath}
}

// LoadDataset reads the snapshot for the given date (YYYY-MM-DD) from
// {basePath}/dataset/{date}.json.
func (s *FSStore) LoadDataset(date string) (domain.Dataset, error) {
	if s == nil {
		return domain.Dataset{}, errors.New("snapshot store not configured")
	}
	if date == "" {
		return domain.Dataset{}, errors.New("snapshot date required")
	}
	var ds domain.Dataset
	if err := s.decodeFile(DatasetSnapshotPath(s.basePath, date), &ds); err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return domain.Dataset{}, fmt.Errorf("dataset %s: %w", date, ErrNoSnapshot)
		}
		return domain.Dataset{}, fmt.Errorf("dataset %s: %w", date, err)
	}
	return ds, nil
}

func (s *FSStore) decodeFile(path string, payload any) error {
	f, err := os.Open(path)
	if err != nil {
		return err
	}
	defer f.Close()
	return json.NewDecoder(f).Decode(payload)
}
