package store

import "errors"

// Sentinel errors returned by repository methods to signal well-known failure
// conditions. Callers should use [errors.Is] to match against these values.
var (
	// ErrEmailAlreadyExists is returned when an attempt to register a new user
	// fails because a user with the same email already exists in the database.
	ErrEmailAlreadyExists = errors.New("email already exists")

	// ErrNoUserWasFound is returned when a query expected to match at least one
	// user record produces an empty result set.
	ErrNoUserWasFound = errors.New("no user was found")

	// ErrPostNotFound is returned when a query or mutation targets a post that
	// does not exist in the database. Vote operations referencing a missing
	// post surface the same error.
	ErrPostNotFound = errors.New("post was not found")

	// ErrVoteAlreadyCast is returned when a user attempts to vote on a post
	// they have already voted on. The votes table enforces this with its
	// composite (user_id, post_id) primary key.
	ErrVoteAlreadyCast = errors.New("vote has already been cast")

	// ErrVoteNotFound is returned when a vote retraction targets a
	// (user, post) pair with no recorded vote.
	ErrVoteNotFound = errors.New("vote was not found")

	// ErrSessionNotFound is returned by the client session repository when no
	// login session has been stored yet.
	ErrSessionNotFound = errors.New("local session not found")
)

// Low-level database operation errors. These are returned (or wrapped) by
// repository methods when a SQL-level operation fails before any domain logic
// can be applied.
var (
	// ErrBuildingSQLQuery is returned when constructing a parameterised SQL
	// query fails (e.g. invalid argument count or unsupported type).
	ErrBuildingSQLQuery = errors.New("error building sql query")

	// ErrExecutingQuery is returned when executing a SELECT or similar
	// read-only query against the database fails.
	ErrExecutingQuery = errors.New("error executing sql query")

	// ErrScanningRow is returned when scanning column values from a single
	// result row into a destination struct fails.
	ErrScanningRow = errors.New("failed to scan row")

	// ErrScanningRows is returned when scanning column values during
	// multi-row iteration fails, typically mid-result-set.
	ErrScanningRows = errors.New("failed to scan rows")
)
