package store

import "errors"

// Sentinel errors returned by repository methods to signal well-known failure
// conditions. Callers should use [errors.Is] to match against these values.
var (
	// ErrVaultNotFound is returned when no vault record exists for the
	// requested user.
	ErrVaultNotFound = errors.New("vault record was not found")

	// ErrVaultNotSaved is returned when an INSERT or UPDATE of a vault record
	// completes without error but affects zero rows.
	ErrVaultNotSaved = errors.New("vault record was not saved")

	// ErrGrantAlreadyExists is returned when inserting a share token fails
	// because a token with the same ID already exists.
	ErrGrantAlreadyExists = errors.New("share token already exists")
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

	// ErrScanningRow is returned when scanning a result row into a model fails.
	ErrScanningRow = errors.New("error scanning result row")

	// ErrBeginningTransaction is returned when the database driver cannot
	// start a new transaction.
	ErrBeginningTransaction = errors.New("failed to begin transaction")

	// ErrCommitingTransaction is returned when committing an open transaction
	// fails. The transaction is considered rolled back at this point.
	ErrCommitingTransaction = errors.New("failed to commit transaction")
)
