package store

import (
	"context"
	"fmt"

	"github.com/MKhiriev/go-bookmarks/internal/config"
	"github.com/MKhiriev/go-bookmarks/internal/logger"
)

// Storages groups the repositories of the server.
type Storages struct {
	BookmarkRepository BookmarkRepository

	db *DB
}

// NewStorages connects to the configured database, applies migrations and
// loads the seed file, if one is configured, into an empty table.
func NewStorages(ctx context.Context, cfg config.Storage, logger *logger.Logger) (*Storages, error) {
	logger.Info().Msg("creating new storages...")

	db, err := NewDB(ctx, cfg.DB, logger)
	if err != nil {
		return nil, fmt.Errorf("database connection error: %w", err)
	}

	if err = db.Migrate(); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("migration failed: %w", err)
	}

	storages := &Storages{
		BookmarkRepository: NewBookmarkRepository(db, logger),
		db:                 db,
	}

	if cfg.SeedFile != "" {
		bookmarks, err := LoadSeed(cfg.SeedFile)
		if err != nil {
			_ = db.Close()
			return nil, err
		}
		if _, err = Seed(logger.WithContext(ctx), storages.BookmarkRepository, bookmarks); err != nil {
			_ = db.Close()
			return nil, err
		}
	}

	return storages, nil
}

// Close releases the database connection pool.
func (s *Storages) Close() error {
	if s.db == nil {
		return nil
	}

	return s.db.Close()
}
