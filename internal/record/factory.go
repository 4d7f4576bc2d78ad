package record

import (
	"fmt"

	"packlist/internal/config"
)

// NewStoreFromConfig creates a Store implementation based on the storage config type.
func NewStoreFromConfig(cfg config.StorageConfig) (Store, error) {
	switch cfg.Type {
	case "memory":
		return NewMemoryStore(), nil
	case "filesystem":
		if cfg.DataDir == "" {
			return nil, fmt.Errorf("filesystem storage requires data_dir to be set")
		}
		return NewFileStore(cfg.DataDir)
	case "sqlite":
		if cfg.DBPath == "" {
			return nil, fmt.Errorf("sqlite storage requires db_path to be set")
		}
		return NewSQLiteStore(cfg.DBPath)
	default:
		return nil, fmt.Errorf("unknown storage type: %s", cfg.Type)
	}
}
