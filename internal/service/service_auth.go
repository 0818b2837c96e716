// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 The artspace authors

package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/art-space/artspace/internal/adapter"
	"github.com/art-space/artspace/internal/config"
	"github.com/art-space/artspace/internal/logger"
	"github.com/art-space/artspace/internal/store"
	"github.com/art-space/artspace/internal/utils"
	"github.com/art-space/artspace/internal/validators"
	"github.com/art-space/artspace/models"
)

// authService is the concrete implementation of AuthService.
// It handles registration, credential verification, JWT issuance and the
// password-reset flow, using a UserRepository for persistence and bcrypt for
// password hashing.
type authService struct {
	// userRepository is the data-access layer used to create and look up accounts.
	userRepository store.UserRepository

	// mailer delivers password-reset messages. Failures are logged but never
	// surfaced to the caller, so that the forgot-password endpoint does not
	// reveal whether an account exists.
	mailer adapter.Mailer

	// validator checks incoming registration payloads before any hashing or
	// persistence work happens.
	validator validators.Validator

	// tokenSignKey is the HMAC secret used to sign and verify JWT tokens.
	tokenSignKey string

	// tokenIssuer is the "iss" claim embedded in every issued JWT.
	// Tokens whose issuer does not match this value are rejected during parsing.
	tokenIssuer string

	// tokenDuration controls how long a newly issued session JWT remains valid.
	tokenDuration time.Duration

	// resetTokenDuration controls how long a password-reset JWT remains valid.
	resetTokenDuration time.Duration

	// logger is the structured logger used for diagnostic and error output.
	logger *logger.Logger
}

// NewAuthService constructs a new AuthService wired to the given UserRepository
// and Mailer, populated with security parameters from cfg.
//
// The returned service is safe for concurrent use; all state is read-only after
// construction.
func NewAuthService(userRepository store.UserRepository, mailer adapter.Mailer, cfg config.App, logger *logger.Logger) AuthService {
	return &authService{
		userRepository:     userRepository,
		mailer:             mailer,
		validator:          validators.NewMarketplaceValidator(),
		tokenSignKey:       cfg.TokenSignKey,
		tokenIssuer:        cfg.TokenIssuer,
		tokenDuration:      cfg.TokenDuration,
		resetTokenDuration: cfg.ResetTokenDuration,
		logger:             logger,
	}
}

// Register creates a new marketplace account.
//
// It validates the registration payload, hashes the password with bcrypt, and
// delegates persistence to the UserRepository. The returned user carries a
// server-assigned UserID and never carries the plain-text password.
//
// Returns:
//   - ErrInvalidDataProvided if the email is malformed, the password is too
//     short, or the username is empty.
//   - A wrapped storage error if the repository call fails (e.g. email already
//     taken — see store.ErrEmailAlreadyExists).
func (a *authService) Register(ctx context.Context, request models.RegisterRequest) (models.User, error) {
	log := logger.FromContext(ctx)

	if err := a.validator.Validate(ctx, request); err != nil {
		log.Err(err).Str("email", request.Email).Msg("invalid registration data provided")
		return models.User{}, fmt.Errorf("%w: %w", ErrInvalidDataProvided, err)
	}

	passwordHash, err := utils.HashPassword(request.Password)
	if err != nil {
		log.Err(err).Msg("password hashing failed")
		return models.User{}, fmt.Errorf("password hashing failed: %w", err)
	}

	registeredUser, err := a.userRepository.CreateUser(ctx, models.User{
		Email:        request.Email,
		Username:     request.Username,
		PasswordHash: passwordHash,
	})
	if err != nil {
		log.Err(err).Str("email", request.Email).Msg("user creation ended with error")
		return models.User{}, fmt.Errorf("user creation ended with error: %w", err)
	}

	return registeredUser, nil
}

// Login authenticates an existing account by email and password.
//
// Unknown emails and wrong passwords both collapse into ErrInvalidCredentials
// so that the login endpoint cannot be used to probe which emails are
// registered.
func (a *authService) Login(ctx context.Context, request models.LoginRequest) (models.User, error) {
	log := logger.FromContext(ctx)

	if request.Email == "" || request.Password == "" {
		log.Error().Str("email", request.Email).Msg("invalid login data provided")
		return models.User{}, ErrInvalidDataProvided
	}

	foundUser, err := a.userRepository.FindUserByEmail(ctx, request.Email)
	if err != nil {
		if errors.Is(err, store.ErrNoUserWasFound) {
			log.Warn().Str("email", request.Email).Msg("login attempt for unknown email")
			return models.User{}, ErrInvalidCredentials
		}
		log.Err(err).Str("email", request.Email).Msg("user search by email failed")
		return models.User{}, fmt.Errorf("user search by email failed: %w", err)
	}

	if err := utils.VerifyPassword(foundUser.PasswordHash, request.Password); err != nil {
		log.Warn().
			Int64("id", foundUser.UserID).
			Str("email", foundUser.Email).
			Msg("wrong password")
		return models.User{}, ErrInvalidCredentials
	}

	return foundUser, nil
}

// CreateToken issues a signed session JWT for the given user.
//
// The token is signed with the configured tokenSignKey, carries the configured
// tokenIssuer as the "iss" claim, and expires after tokenDuration.
func (a *authService) CreateToken(ctx context.Context, user models.User) (models.Token, error) {
	token, err := utils.GenerateJWTToken(a.tokenIssuer, user.UserID, a.tokenDuration, a.tokenSignKey)
	if err != nil {
		return models.Token{}, fmt.Errorf("%w: %w", ErrTokenCreationFailed, err)
	}

	return token, nil
}

// ParseToken validates and parses a raw session JWT string.
//
// It delegates to utils.ValidateAndParseJWTToken, verifying the signature and
// the issuer claim and rejecting password-reset tokens. Any validation failure
// (expired, wrong issuer, malformed) is normalised to
// ErrTokenIsExpiredOrInvalid so that callers do not need to inspect low-level
// JWT errors.
func (a *authService) ParseToken(ctx context.Context, tokenString string) (models.Token, error) {
	token, err := utils.ValidateAndParseJWTToken(tokenString, a.tokenSignKey, a.tokenIssuer)
	if err != nil {
		return models.Token{}, ErrTokenIsExpiredOrInvalid
	}

	return token, nil
}

// ForgotPassword starts the password-reset flow for the given email.
//
// It always returns nil for unknown emails and for mail delivery failures;
// only infrastructure errors during the account lookup are surfaced. This
// keeps the endpoint's observable behaviour identical whether or not the
// email is registered.
func (a *authService) ForgotPassword(ctx context.Context, email string) error {
	log := logger.FromContext(ctx)

	if email == "" {
		return ErrInvalidDataProvided
	}

	foundUser, err := a.userRepository.FindUserByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, store.ErrNoUserWasFound) {
			log.Info().Str("email", email).Msg("password reset requested for unknown email")
			return nil
		}
		log.Err(err).Str("email", email).Msg("user search by email failed")
		return fmt.Errorf("user search by email failed: %w", err)
	}

	resetToken, err := utils.GenerateResetJWTToken(a.tokenIssuer, foundUser.UserID, a.resetTokenDuration, a.tokenSignKey)
	if err != nil {
		log.Err(err).Int64("id", foundUser.UserID).Msg("reset token creation failed")
		return fmt.Errorf("%w: %w", ErrTokenCreationFailed, err)
	}

	if err := a.mailer.SendPasswordReset(ctx, foundUser.Email, resetToken.String()); err != nil {
		log.Err(err).Int64("id", foundUser.UserID).Msg("password reset mail delivery failed")
	}

	return nil
}

// ResetPassword completes the password-reset flow.
//
// The reset token must be a valid, unexpired JWT carrying the password-reset
// audience; session tokens are rejected. On success the stored credential
// hash is replaced with the bcrypt hash of newPassword.
func (a *authService) ResetPassword(ctx context.Context, resetToken, newPassword string) error {
	log := logger.FromContext(ctx)

	if len(newPassword) < validators.MinPasswordLength {
		return fmt.Errorf("%w: %w", ErrInvalidDataProvided, validators.ErrPasswordTooShort)
	}

	token, err := utils.ValidateAndParseResetJWTToken(resetToken, a.tokenSignKey, a.tokenIssuer)
	if err != nil {
		log.Warn().Err(err).Msg("invalid password reset token")
		return ErrTokenIsExpiredOrInvalid
	}

	passwordHash, err := utils.HashPassword(newPassword)
	if err != nil {
		log.Err(err).Msg("password hashing failed")
		return fmt.Errorf("password hashing failed: %w", err)
	}

	userID, err := token.GetUserID()
	if err != nil {
		log.Warn().Err(err).Msg("reset token carries no user id")
		return ErrTokenIsExpiredOrInvalid
	}

	if err := a.userRepository.UpdatePasswordHash(ctx, userID, passwordHash); err != nil {
		if errors.Is(err, store.ErrNoUserWasFound) {
			// the account was deleted after the token was issued
			return ErrTokenIsExpiredOrInvalid
		}
		log.Err(err).Int64("id", userID).Msg("password hash update failed")
		return fmt.Errorf("password hash update failed: %w", err)
	}

	return nil
}
