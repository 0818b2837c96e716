package store

import (
	"context"

	"github.com/art-space/artspace/models"
)

// UserRepository is the persistence contract for marketplace accounts.
type UserRepository interface {
	// CreateUser persists a new account and returns it with server-assigned
	// fields populated. Fails with [ErrEmailAlreadyExists] when the email is
	// already taken (case-insensitive).
	CreateUser(ctx context.Context, user models.User) (models.User, error)

	// FindUserByEmail looks an account up by email, case-insensitively.
	// Fails with [ErrNoUserWasFound] when no account matches.
	FindUserByEmail(ctx context.Context, email string) (models.User, error)

	// FindUserByID looks an account up by its internal identifier.
	// Fails with [ErrNoUserWasFound] when no account matches.
	FindUserByID(ctx context.Context, userID int64) (models.User, error)

	// UpdateProfile applies a partial profile mutation and returns the
	// updated account. Nil fields of update are left untouched.
	UpdateProfile(ctx context.Context, userID int64, update models.ProfileUpdate) (models.User, error)

	// UpdatePasswordHash replaces the stored credential hash.
	UpdatePasswordHash(ctx context.Context, userID int64, passwordHash string) error
}

// ArtworkRepository is the persistence contract for artworks and their
// sale/like/comment state.
type ArtworkRepository interface {
	// CreateArtwork persists a new draft artwork.
	CreateArtwork(ctx context.Context, artwork models.Artwork) (models.Artwork, error)

	// GetArtworkByID returns a fully hydrated artwork (likes and comments
	// included). Fails with [ErrArtworkNotFound].
	GetArtworkByID(ctx context.Context, artworkID int64) (models.Artwork, error)

	// ListArtworks returns hydrated artworks matching the filter,
	// newest first.
	ListArtworks(ctx context.Context, filter models.ArtworkFilter) ([]models.Artwork, error)

	// MarkForSale atomically transitions a draft artwork to the listed
	// state with the given price. The update is conditional on the artwork
	// still being an unsold draft; [ErrSaleStateConflict] is returned when
	// the condition does not hold.
	MarkForSale(ctx context.Context, artworkID int64, price float64) error

	// MarkSold atomically transitions a listed artwork to sold and stamps
	// the buyer. The conditional UPDATE guarantees at most one successful
	// buyer per artwork; losers receive [ErrSaleStateConflict].
	MarkSold(ctx context.Context, artworkID, buyerID int64) error

	// ToggleLike flips the (artwork, user) like membership and reports
	// whether the user likes the artwork after the call.
	ToggleLike(ctx context.Context, artworkID, userID int64) (liked bool, err error)

	// AddComment appends an immutable comment and returns it with
	// server-assigned fields populated.
	AddComment(ctx context.Context, comment models.Comment) (models.Comment, error)
}

// ErrorClassificator decides whether a failed database operation is worth
// retrying.
type ErrorClassificator interface {
	Classify(err error) ErrorClassification
}
