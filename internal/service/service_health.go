package service

import (
	"context"
	"fmt"

	"github.com/MKhiriev/go-bookmarks/internal/logger"
	"github.com/MKhiriev/go-bookmarks/internal/store"
)

type healthService struct {
	bookmarkRepository store.BookmarkRepository

	logger *logger.Logger
}

// NewHealthService reports storage health through repository pings.
func NewHealthService(repository store.BookmarkRepository, logger *logger.Logger) HealthService {
	return &healthService{
		bookmarkRepository: repository,
		logger:             logger,
	}
}

func (s *healthService) Check(ctx context.Context) error {
	if err := s.bookmarkRepository.Ping(ctx); err != nil {
		s.logger.Warn().Err(err).Str("func", "healthService.Check").Msg("storage ping failed")
		return fmt.Errorf("%w: %w", ErrStorageUnavailable, err)
	}

	return nil
}
