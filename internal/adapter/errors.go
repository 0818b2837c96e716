// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 The artspace authors

package adapter

import "errors"

// Sentinel errors mapped from notification-service HTTP status codes so that
// callers can use [errors.Is] for transport-agnostic error handling.
var (
	ErrBadRequest          = errors.New("mailer rejected request")
	ErrUnauthorized        = errors.New("mailer unauthorized")
	ErrNotFound            = errors.New("mailer endpoint not found")
	ErrInternalServerError = errors.New("mailer internal error")
)
