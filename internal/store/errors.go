package store

import "errors"

// Sentinel errors returned by repository methods to signal well-known failure
// conditions. Callers should use [errors.Is] to match against these values.
var (
	// ErrNoStudentWasFound is returned when no roster row matches the exact
	// (prn, name, course, year) combination supplied at signup.
	ErrNoStudentWasFound = errors.New("no matching student in roster")

	// ErrPRNAlreadyRegistered is returned when an attempt to register a new
	// user fails because a user with the same PRN already exists. The
	// database enforces this via a unique constraint on users.prn, so two
	// concurrent signups for the same PRN cannot both succeed.
	ErrPRNAlreadyRegistered = errors.New("prn already registered")

	// ErrNoUserWasFound is returned when a query expected to match at least
	// one user record produces an empty result set.
	ErrNoUserWasFound = errors.New("no user was found")

	// ErrItemNotFound is returned when a marketplace item lookup by ID
	// matches no row.
	ErrItemNotFound = errors.New("marketplace item not found")

	// ErrNotItemOwner is returned when a conditional delete affects zero rows
	// because the item exists but belongs to a different user. The ownership
	// predicate is evaluated atomically by the database inside the DELETE.
	ErrNotItemOwner = errors.New("caller does not own the marketplace item")
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
	// result row into a destination struct fails.
	ErrScanningRow = errors.New("failed to scan row")

	// ErrScanningRows is returned when scanning column values during
	// multi-row iteration fails, typically mid-result-set.
	ErrScanningRows = errors.New("failed to scan rows")
)
