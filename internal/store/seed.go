// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/MKhiriev/go-bookmarks/internal/logger"
	"github.com/MKhiriev/go-bookmarks/models"
)

// seedFile is the YAML layout of a fixture file:
//
//	bookmarks:
//	  - title: Google
//	    url: https://www.google.com
//	    rating: 3
type seedFile struct {
	Bookmarks []models.Bookmark `yaml:"bookmarks"`
}

// LoadSeed reads bookmarks from a YAML fixture file.
func LoadSeed(path string) ([]models.Bookmark, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrLoadingSeed, err)
	}

	var seed seedFile
	if err = yaml.Unmarshal(data, &seed); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrLoadingSeed, err)
	}

	return seed.Bookmarks, nil
}

// Seed inserts bookmarks into an empty table and returns how many were
// inserted. A table that already has rows is left untouched. Fixture ids are
// ignored; the store assigns new ones.
func Seed(ctx context.Context, repo BookmarkRepository, bookmarks []models.Bookmark) (int, error) {
	log := logger.FromContext(ctx)

	existing, err := repo.ListBookmarks(ctx)
	if err != nil {
		return 0, fmt.Errorf("error checking existing bookmarks: %w", err)
	}
	if len(existing) > 0 {
		log.Info().Str("func", "Seed").Int("existing", len(existing)).Msg("bookmarks table is not empty, skipping seed")
		return 0, nil
	}

	for i, b := range bookmarks {
		if _, err = repo.InsertBookmark(ctx, b); err != nil {
			return i, fmt.Errorf("error seeding bookmark %q: %w", b.Title, err)
		}
	}
	log.Info().Str("func", "Seed").Int("inserted", len(bookmarks)).Msg("bookmarks table seeded")

	return len(bookmarks), nil
}
