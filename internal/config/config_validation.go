// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 The artspace authors

package config

import (
	"errors"
	"time"
)

const (
	defaultHTTPAddress        = ":8080"
	defaultTokenIssuer        = "artspace"
	defaultTokenDuration      = 24 * time.Hour
	defaultResetTokenDuration = time.Hour
)

// validate checks that the final merged [StructuredConfig] satisfies all
// application invariants before it is used at startup and fills in defaults
// for optional fields.
//
// Hard requirements:
//   - App.TokenSignKey must be non-empty (tokens could not be verified
//     safely otherwise);
//   - Storage.DB.DSN must be non-empty.
//
// Returns nil if the configuration is valid, or a descriptive error otherwise.
func (cfg *StructuredConfig) validate() error {
	if cfg.App.TokenSignKey == "" {
		return errNoTokenSignKey
	}
	if cfg.Storage.DB.DSN == "" {
		return errNoDatabaseDSN
	}

	if cfg.Server.HTTPAddress == "" {
		cfg.Server.HTTPAddress = defaultHTTPAddress
	}
	if cfg.App.TokenIssuer == "" {
		cfg.App.TokenIssuer = defaultTokenIssuer
	}
	if cfg.App.TokenDuration == 0 {
		cfg.App.TokenDuration = defaultTokenDuration
	}
	if cfg.App.ResetTokenDuration == 0 {
		cfg.App.ResetTokenDuration = defaultResetTokenDuration
	}

	return nil
}

var (
	errNoTokenSignKey = errors.New("token sign key is required")
	errNoDatabaseDSN  = errors.New("database DSN is required")
)
