package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/MKhiriev/go-bookmarks/internal/logger"
	"github.com/MKhiriev/go-bookmarks/models"
)

// bookmarkRepository is the SQL implementation of [BookmarkRepository].
// It works with both PostgreSQL and SQLite; the dialect only changes the
// placeholder format of the generated queries.
//
// Every method logs through the context-scoped logger so database failures
// carry the request's trace id.
type bookmarkRepository struct {
	*DB
	logger *logger.Logger
}

// NewBookmarkRepository constructs a [BookmarkRepository] backed by db.
func NewBookmarkRepository(db *DB, logger *logger.Logger) BookmarkRepository {
	logger.Debug().Msg("creating bookmark repository")
	return &bookmarkRepository{
		DB:     db,
		logger: logger,
	}
}

func (r *bookmarkRepository) ListBookmarks(ctx context.Context) ([]models.Bookmark, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildListBookmarksQuery(r.placeholder)
	if err != nil {
		log.Err(err).Str("func", "bookmarkRepository.ListBookmarks").Msg("failed to create query")
		return nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	rows, err := r.DB.QueryContext(ctx, query, args...)
	if err != nil {
		log.Err(err).
			Str("func", "bookmarkRepository.ListBookmarks").
			Stringer("classification", r.classify(err)).
			Str("pg_code", postgresError(err)).
			Msg("failed to execute query for listing bookmarks")
		return nil, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	defer rows.Close()

	bookmarks := make([]models.Bookmark, 0, 16)
	for rows.Next() {
		var b models.Bookmark
		if scanErr := rows.Scan(&b.ID, &b.Title, &b.URL, &b.Description, &b.Rating); scanErr != nil {
			log.Err(scanErr).Str("func", "bookmarkRepository.ListBookmarks").Msg("failed to scan bookmark row")
			return nil, fmt.Errorf("%w: %w", ErrScanningRow, scanErr)
		}
		bookmarks = append(bookmarks, b)
	}

	if rowsErr := rows.Err(); rowsErr != nil {
		log.Err(rowsErr).Str("func", "bookmarkRepository.ListBookmarks").Msg("error occurred during rows iteration")
		return nil, fmt.Errorf("%w: %w", ErrScanningRows, rowsErr)
	}

	return bookmarks, nil
}

func (r *bookmarkRepository) GetBookmarkByID(ctx context.Context, id int64) (*models.Bookmark, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildGetBookmarkByIDQuery(r.placeholder, id)
	if err != nil {
		log.Err(err).Str("func", "bookmarkRepository.GetBookmarkByID").Int64("id", id).Msg("failed to create query")
		return nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	var b models.Bookmark
	err = r.DB.QueryRowContext(ctx, query, args...).Scan(&b.ID, &b.Title, &b.URL, &b.Description, &b.Rating)
	switch {
	case errors.Is(err, sql.ErrNoRows):
		return nil, nil
	case err != nil:
		log.Err(err).
			Str("func", "bookmarkRepository.GetBookmarkByID").
			Int64("id", id).
			Stringer("classification", r.classify(err)).
			Str("pg_code", postgresError(err)).
			Msg("failed to get bookmark")
		return nil, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}

	return &b, nil
}

func (r *bookmarkRepository) InsertBookmark(ctx context.Context, b models.Bookmark) (models.Bookmark, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildInsertBookmarkQuery(r.placeholder, b)
	if err != nil {
		log.Err(err).Str("func", "bookmarkRepository.InsertBookmark").Msg("failed to create query")
		return models.Bookmark{}, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	row := r.DB.QueryRowContext(ctx, query, args...)
	if err = row.Err(); err != nil {
		log.Err(err).
			Str("func", "bookmarkRepository.InsertBookmark").
			Stringer("classification", r.classify(err)).
			Str("pg_code", postgresError(err)).
			Msg("failed to insert bookmark")
		return models.Bookmark{}, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}

	var stored models.Bookmark
	if err = row.Scan(&stored.ID, &stored.Title, &stored.URL, &stored.Description, &stored.Rating); err != nil {
		log.Err(err).Str("func", "bookmarkRepository.InsertBookmark").Msg("failed to scan inserted bookmark")
		return models.Bookmark{}, fmt.Errorf("%w: %w", ErrScanningRow, err)
	}

	return stored, nil
}

func (r *bookmarkRepository) UpdateBookmarkByID(ctx context.Context, id int64, update models.BookmarkUpdate) (int64, error) {
	if update.IsEmpty() {
		return 0, nil
	}

	log := logger.FromContext(ctx)

	query, args, err := buildUpdateBookmarkQuery(r.placeholder, id, update)
	if err != nil {
		log.Err(err).Str("func", "bookmarkRepository.UpdateBookmarkByID").Int64("id", id).Msg("failed to create query")
		return 0, err
	}

	result, err := r.DB.ExecContext(ctx, query, args...)
	if err != nil {
		log.Err(err).
			Str("func", "bookmarkRepository.UpdateBookmarkByID").
			Int64("id", id).
			Stringer("classification", r.classify(err)).
			Str("pg_code", postgresError(err)).
			Msg("failed to update bookmark")
		return 0, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		log.Err(err).Str("func", "bookmarkRepository.UpdateBookmarkByID").Int64("id", id).Msg("failed to read rows affected")
		return 0, fmt.Errorf("%w: %w", ErrReadingRowsAffected, err)
	}

	return affected, nil
}

func (r *bookmarkRepository) DeleteBookmarkByID(ctx context.Context, id int64) error {
	log := logger.FromContext(ctx)

	query, args, err := buildDeleteBookmarkQuery(r.placeholder, id)
	if err != nil {
		log.Err(err).Str("func", "bookmarkRepository.DeleteBookmarkByID").Int64("id", id).Msg("failed to create query")
		return fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	result, err := r.DB.ExecContext(ctx, query, args...)
	if err != nil {
		log.Err(err).
			Str("func", "bookmarkRepository.DeleteBookmarkByID").
			Int64("id", id).
			Stringer("classification", r.classify(err)).
			Str("pg_code", postgresError(err)).
			Msg("failed to delete bookmark")
		return fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		log.Err(err).Str("func", "bookmarkRepository.DeleteBookmarkByID").Int64("id", id).Msg("failed to read rows affected")
		return fmt.Errorf("%w: %w", ErrReadingRowsAffected, err)
	}
	if affected == 0 {
		return ErrBookmarkNotFound
	}

	return nil
}

func (r *bookmarkRepository) Ping(ctx context.Context) error {
	return r.DB.PingContext(ctx)
}
