package storagebuilder

import (
	"context"
	"fmt"
	"time"

	"github.com/mfalcone/calendario/internal/storage"
	memorystorage "github.com/mfalcone/calendario/internal/storage/memory"
	sqlitestorage "github.com/mfalcone/calendario/internal/storage/sqlite"
)

type Config struct {
	StorageType string
	Database    sqlitestorage.Config
}

// New builds and connects the configured backend. Connect also runs the
// first-open seeding, so even the memory backend goes through it.
func New(config Config) (storage.Store, error) {
	var s storage.Store
	switch config.StorageType {
	case "memory":
		s = memorystorage.New()
	case "sqlite":
		s = sqlitestorage.New(config.Database)
	default:
		return nil, fmt.Errorf("unknown storage type %s", config.StorageType)
	}

	ctx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer cancel()
	if err := s.Connect(ctx); err != nil {
		return nil, fmt.Errorf("failed to open storage %q: %w", config.Database.Path, err)
	}
	return s, nil
}
