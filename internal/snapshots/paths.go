package snapshots

import (
	"fmt"
	"path/filepath"
)

const (
	datasetDir   = "dataset"
	manifestFile = "manifest.json"
)

// DatasetSnapshotPath builds the path to a dataset snapshot for a given date.
func DatasetSnapshotPath(basePath, date string) string {
	return filepath.Join(basePath, datasetDir, fmt.Sprintf("%s.json", date))
}

// ManifestPath returns the manifest location under basePath.
func ManifestPath(basePath string) string {
	return filepath.Join(basePath, manifestFile)
}
