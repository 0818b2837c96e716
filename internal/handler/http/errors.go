// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 The artspace authors

package http

import "errors"

// Sentinel errors used by the authentication middleware when parsing the
// "Authorization" HTTP header. Callers can match against them with [errors.Is].
var (
	// ErrEmptyAuthorizationHeader is returned by the auth middleware when the
	// incoming request does not include an "Authorization" header at all.
	ErrEmptyAuthorizationHeader = errors.New("empty `Authorization` header")

	// ErrInvalidArtworkID is returned when the {id} URL parameter is missing
	// or does not parse as a positive integer.
	ErrInvalidArtworkID = errors.New("invalid artwork id")

	// ErrInvalidArtworkFilter is returned when a listing query parameter
	// (artist_id, for_sale, limit) cannot be parsed.
	ErrInvalidArtworkFilter = errors.New("invalid artwork listing filter")
)
