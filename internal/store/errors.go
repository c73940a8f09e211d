package store

import "errors"

// Sentinel errors returned by repository methods to signal well-known failure
// conditions. Callers should use [errors.Is] to match against these values.
var (
	// ErrBookmarkNotFound is returned when a write targets an id that has no
	// row. Reads report absence as a nil result instead.
	ErrBookmarkNotFound = errors.New("bookmark not found")

	// ErrUnsupportedDSN is returned by [NewDB] when the DSN prefix does not
	// name a supported database.
	ErrUnsupportedDSN = errors.New("unsupported database DSN")

	// ErrEmptyUpdate is returned by the UPDATE builder when no column is set.
	ErrEmptyUpdate = errors.New("no columns to update")
)

// Low-level database operation errors. These are returned (or wrapped) by
// repository methods when a SQL-level operation fails before any domain logic
// can be applied.
var (
	// ErrBuildingSQLQuery is returned when constructing a parameterised SQL
	// query fails.
	ErrBuildingSQLQuery = errors.New("error building sql query")

	// ErrExecutingQuery is returned when executing a query against the
	// database fails.
	ErrExecutingQuery = errors.New("error executing sql query")

	// ErrScanningRow is returned when scanning column values from a single
	// result row fails.
	ErrScanningRow = errors.New("failed to scan bookmark row")

	// ErrScanningRows is returned when iterating a multi-row result fails
	// mid-result-set.
	ErrScanningRows = errors.New("failed to scan bookmark rows")

	// ErrReadingRowsAffected is returned when the driver cannot report how
	// many rows a statement changed.
	ErrReadingRowsAffected = errors.New("failed to read rows affected")

	// ErrLoadingSeed is returned when the seed file cannot be read or parsed.
	ErrLoadingSeed = errors.New("failed to load seed file")
)
