// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 The artspace authors

package http

import (
	"context"
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/art-space/artspace/internal/logger"
	"github.com/art-space/artspace/internal/service"
	"github.com/art-space/artspace/models"
)

// ─────────────────────────────────────────────
// Mock services
// ─────────────────────────────────────────────

// mockAuthService implements service.AuthService for unit tests.
// Each method field can be overridden per test case.
type mockAuthService struct {
	registerFn       func(ctx context.Context, request models.RegisterRequest) (models.User, error)
	loginFn          func(ctx context.Context, request models.LoginRequest) (models.User, error)
	createTokenFn    func(ctx context.Context, user models.User) (models.Token, error)
	parseTokenFn     func(ctx context.Context, tokenString string) (models.Token, error)
	forgotPasswordFn func(ctx context.Context, email string) error
	resetPasswordFn  func(ctx context.Context, resetToken, newPassword string) error
}

func (m *mockAuthService) Register(ctx context.Context, request models.RegisterRequest) (models.User, error) {
	return m.registerFn(ctx, request)
}

func (m *mockAuthService) Login(ctx context.Context, request models.LoginRequest) (models.User, error) {
	return m.loginFn(ctx, request)
}

func (m *mockAuthService) CreateToken(ctx context.Context, user models.User) (models.Token, error) {
	if m.createTokenFn != nil {
		return m.createTokenFn(ctx, user)
	}
	return models.Token{SignedString: "signed.jwt.token"}, nil
}

func (m *mockAuthService) ParseToken(ctx context.Context, tokenString string) (models.Token, error) {
	if m.parseTokenFn != nil {
		return m.parseTokenFn(ctx, tokenString)
	}
	return models.Token{UserID: 5}, nil
}

func (m *mockAuthService) ForgotPassword(ctx context.Context, email string) error {
	return m.forgotPasswordFn(ctx, email)
}

func (m *mockAuthService) ResetPassword(ctx context.Context, resetToken, newPassword string) error {
	return m.resetPasswordFn(ctx, resetToken, newPassword)
}

type mockUserService struct {
	profileFn       func(ctx context.Context, userID int64) (models.User, error)
	updateProfileFn func(ctx context.Context, userID int64, update models.ProfileUpdate) (models.User, error)
}

func (m *mockUserService) Profile(ctx context.Context, userID int64) (models.User, error) {
	return m.profileFn(ctx, userID)
}

func (m *mockUserService) UpdateProfile(ctx context.Context, userID int64, update models.ProfileUpdate) (models.User, error) {
	return m.updateProfileFn(ctx, userID, update)
}

type mockArtworkService struct {
	createFn  func(ctx context.Context, artistID int64, request models.CreateArtworkRequest) (models.Artwork, error)
	getFn     func(ctx context.Context, artworkID int64) (models.Artwork, error)
	listFn    func(ctx context.Context, filter models.ArtworkFilter) ([]models.Artwork, error)
	sellFn    func(ctx context.Context, artworkID, actorID int64, price float64) (models.Artwork, error)
	buyFn     func(ctx context.Context, artworkID, buyerID int64) (models.Artwork, error)
	likeFn    func(ctx context.Context, artworkID, userID int64) (models.Artwork, error)
	commentFn func(ctx context.Context, artworkID, userID int64, text string) (models.Artwork, error)
}

func (m *mockArtworkService) Create(ctx context.Context, artistID int64, request models.CreateArtworkRequest) (models.Artwork, error) {
	return m.createFn(ctx, artistID, request)
}

func (m *mockArtworkService) Get(ctx context.Context, artworkID int64) (models.Artwork, error) {
	return m.getFn(ctx, artworkID)
}

func (m *mockArtworkService) List(ctx context.Context, filter models.ArtworkFilter) ([]models.Artwork, error) {
	return m.listFn(ctx, filter)
}

func (m *mockArtworkService) Sell(ctx context.Context, artworkID, actorID int64, price float64) (models.Artwork, error) {
	return m.sellFn(ctx, artworkID, actorID, price)
}

func (m *mockArtworkService) Buy(ctx context.Context, artworkID, buyerID int64) (models.Artwork, error) {
	return m.buyFn(ctx, artworkID, buyerID)
}

func (m *mockArtworkService) Like(ctx context.Context, artworkID, userID int64) (models.Artwork, error) {
	return m.likeFn(ctx, artworkID, userID)
}

func (m *mockArtworkService) Comment(ctx context.Context, artworkID, userID int64, text string) (models.Artwork, error) {
	return m.commentFn(ctx, artworkID, userID, text)
}

type mockAppInfoService struct {
	version string
}

func (m *mockAppInfoService) GetAppVersion(ctx context.Context) string {
	return m.version
}

// ─────────────────────────────────────────────
// Helpers
// ─────────────────────────────────────────────

// newTestHandler builds a Handler whose nil service fields are replaced with
// permissive defaults, so each test only has to stub what it exercises.
func newTestHandler(t *testing.T, svcs *service.Services) *Handler {
	t.Helper()
	if svcs.AuthService == nil {
		svcs.AuthService = &mockAuthService{}
	}
	if svcs.AppInfoService == nil {
		svcs.AppInfoService = &mockAppInfoService{version: "test"}
	}
	return NewHandler(svcs, logger.Nop())
}

// jsonBody serialises v to a JSON request body string.
func jsonBody(t *testing.T, v any) string {
	t.Helper()
	b, err := json.Marshal(v)
	require.NoError(t, err)
	return string(b)
}
