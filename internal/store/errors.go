// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 The artspace authors

package store

import "errors"

// Sentinel errors returned by repository methods to signal well-known failure
// conditions. Callers should use [errors.Is] to match against these values.
var (
	// ErrEmailAlreadyExists is returned when an attempt to register a new
	// user fails because an account with the same email (compared
	// case-insensitively) already exists in the database.
	ErrEmailAlreadyExists = errors.New("email already exists")

	// ErrNoUserWasFound is returned when a query expected to match at least
	// one user record produces an empty result set.
	ErrNoUserWasFound = errors.New("no user was found")

	// ErrArtworkNotFound is returned when a query or update targets an
	// artwork that does not exist in the database.
	ErrArtworkNotFound = errors.New("artwork was not found")

	// ErrSaleStateConflict is returned when a conditional sale-state update
	// matches no rows: the artwork was not in the state the transition
	// requires (already listed, already sold, or raced by a concurrent
	// buyer). The conditional UPDATE is what guarantees at-most-one
	// successful buy per artwork.
	ErrSaleStateConflict = errors.New("artwork sale state conflict")
)

// Low-level database operation errors. These are returned (or wrapped) by
// repository methods when a SQL-level operation fails before any domain logic
// can be applied.
var (
	// ErrBuildingSQLQuery is returned when constructing a parameterised SQL
	// query fails (e.g. invalid argument count or unsupported type).
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
