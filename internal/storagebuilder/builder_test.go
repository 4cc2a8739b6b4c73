package storagebuilder_test

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	sqlitestorage "github.com/mfalcone/calendario/internal/storage/sqlite"
	"github.com/mfalcone/calendario/internal/storagebuilder"
)

func TestNew(t *testing.T) {
	t.Run("memory", func(t *testing.T) {
		s, err := storagebuilder.New(storagebuilder.Config{StorageType: "memory"})
		require.NoError(t, err)

		// Connect ran, so the defaults are seeded.
		entities, err := s.ListEntities(context.Background())
		require.NoError(t, err)
		require.Len(t, entities, 6)
	})

	t.Run("sqlite", func(t *testing.T) {
		s, err := storagebuilder.New(storagebuilder.Config{
			StorageType: "sqlite",
			Database:    sqlitestorage.Config{Path: filepath.Join(t.TempDir(), "calendario.db")},
		})
		require.NoError(t, err)
		defer s.Close(context.Background())

		entities, err := s.ListEntities(context.Background())
		require.NoError(t, err)
		require.Len(t, entities, 6)
	})

	t.Run("unknown type", func(t *testing.T) {
		_, err := storagebuilder.New(storagebuilder.Config{StorageType: "redis"})
		require.Error(t, err)
	})
}
