package service

import (
	"context"

	"github.com/art-space/artspace/models"
)

// AuthService manages account registration, credential verification, and the
// JWT token lifecycle, including the password-reset flow.
type AuthService interface {
	Register(ctx context.Context, request models.RegisterRequest) (models.User, error)
	Login(ctx context.Context, request models.LoginRequest) (models.User, error)

	CreateToken(ctx context.Context, user models.User) (models.Token, error)
	ParseToken(ctx context.Context, tokenString string) (models.Token, error)

	ForgotPassword(ctx context.Context, email string) error
	ResetPassword(ctx context.Context, resetToken, newPassword string) error
}

// UserService exposes profile reads and partial profile updates for
// authenticated accounts.
type UserService interface {
	Profile(ctx context.Context, userID int64) (models.User, error)
	UpdateProfile(ctx context.Context, userID int64, update models.ProfileUpdate) (models.User, error)
}

// ArtworkService manages the artwork lifecycle: creation, the
// draft → for-sale → sold transitions, likes, and comments.
type ArtworkService interface {
	Create(ctx context.Context, artistID int64, request models.CreateArtworkRequest) (models.Artwork, error)
	Get(ctx context.Context, artworkID int64) (models.Artwork, error)
	List(ctx context.Context, filter models.ArtworkFilter) ([]models.Artwork, error)

	Sell(ctx context.Context, artworkID, actorID int64, price float64) (models.Artwork, error)
	Buy(ctx context.Context, artworkID, buyerID int64) (models.Artwork, error)

	Like(ctx context.Context, artworkID, userID int64) (models.Artwork, error)
	Comment(ctx context.Context, artworkID, userID int64, text string) (models.Artwork, error)
}

type AppInfoService interface {
	GetAppVersion(ctx context.Context) string
}
