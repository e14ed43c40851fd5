package server

import (
	"sports-data-service/internal/config"
	"sports-data-service/internal/snapshots"
)

// snapshotComponents holds the optional snapshot collaborators. A nil field means the
// corresponding feature is disabled.
type snapshotComponents struct {
	store  *snapshots.FSStore
	writer *snapshots.Writer
}

func buildSnapshots(cfg config.Config) snapshotComponents {
	var comps snapshotComponents
	if cfg.Snapshots.Load {
		comps.store = snapshots.NewFSStore(cfg.Snapshots.Dir)
	}
	if cfg.Snapshots.Enabled {
		comps.writer = snapshots.NewWriter(cfg.Snapshots.Dir, cfg.Snapshots.RetentionDays)
	}
	return comps
}
