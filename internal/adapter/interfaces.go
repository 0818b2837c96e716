// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 The artspace authors

// Package adapter provides outbound transport abstractions for side effects
// the marketplace delegates to external collaborators.
//
// The primary abstraction is [Mailer], which decouples the auth service from
// the mail delivery mechanism. The package ships an HTTP implementation
// ([NewHTTPMailer]) that posts reset notifications to a notification service,
// and a no-op implementation ([NewNopMailer]) used when no mailer address is
// configured.
package adapter

import "context"

//go:generate mockgen -source=interfaces.go -destination=../mock/mailer_mock.go -package=mock

// Mailer delivers out-of-band notifications to users. Implementations are
// responsible for serialisation and for mapping transport-level errors to
// the sentinel values defined in this package.
type Mailer interface {
	// SendPasswordReset dispatches a password-reset notification carrying
	// the reset token to the given email address. Returns an error if the
	// request fails or the notification service responds with a non-2xx
	// status.
	SendPasswordReset(ctx context.Context, email, resetToken string) error
}
