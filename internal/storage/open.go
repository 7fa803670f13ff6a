package storage

import (
	"fmt"

	"portfolioapi/internal/config"
)

// Backends holds the storages for blog partitions and CV documents.
// With MinIO both share one bucket.
type Backends struct {
	Posts Storage
	CV    Storage
}

// Open builds the backends selected by cfg.Backend.
func Open(cfg config.StorageConfig, mcfg config.MinIOConfig) (Backends, error) {
	switch cfg.Backend {
	case config.StorageBackendFile, "":
		posts, err := NewFile(cfg.DataDir)
		if err != nil {
			return Backends{}, fmt.Errorf("open data dir: %w", err)
		}
		cv, err := NewFile(cfg.CVDir)
		if err != nil {
			return Backends{}, fmt.Errorf("open cv dir: %w", err)
		}
		return Backends{Posts: posts, CV: cv}, nil
	case config.StorageBackendMinIO:
		s, err := NewMinIO(mcfg)
		if err != nil {
			return Backends{}, err
		}
		return Backends{Posts: s, CV: s}, nil
	default:
		return Backends{}, fmt.Errorf("unknown storage backend %q", cfg.Backend)
	}
}
