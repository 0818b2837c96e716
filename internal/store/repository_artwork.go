package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/jackc/pgerrcode"

	"github.com/art-space/artspace/internal/logger"
	"github.com/art-space/artspace/models"
)

// artworkRepository is the PostgreSQL-backed implementation of
// [ArtworkRepository]. Artworks live in the "artworks" table; like
// membership and comments live in the "artwork_likes" and
// "artwork_comments" side tables and are folded into [models.Artwork]
// on read.
//
// Sale-state transitions are single conditional UPDATEs, so the database is
// the arbiter of the Draft → Listed → Sold state machine under concurrent
// callers.
type artworkRepository struct {
	logger *logger.Logger
	db     *DB
}

// NewArtworkRepository constructs an [ArtworkRepository] backed by the
// provided database connection and logger.
func NewArtworkRepository(db *DB, logger *logger.Logger) ArtworkRepository {
	logger.Debug().Msg("creating artwork repository")
	return &artworkRepository{
		db:     db,
		logger: logger,
	}
}

// CreateArtwork persists a new draft artwork and returns it with
// server-assigned fields (ArtworkID, CreatedAt) populated. LikedBy and
// Comments start empty.
func (r *artworkRepository) CreateArtwork(ctx context.Context, artwork models.Artwork) (models.Artwork, error) {
	log := logger.FromContext(ctx)

	row := r.db.QueryRowContext(ctx, createArtwork, artwork.ArtistID, artwork.Title, artwork.Description, artwork.ImageURL)

	var created models.Artwork
	if err := scanArtwork(row, &created); err != nil {
		log.Err(err).Str("func", "*artworkRepository.CreateArtwork").Msg("error: creating artwork failed")
		return models.Artwork{}, fmt.Errorf("unexpected DB error: %w", err)
	}

	created.LikedBy = []int64{}
	created.Comments = []models.Comment{}

	return created, nil
}

// GetArtworkByID returns the artwork with its like membership and comment
// thread hydrated. Fails with [ErrArtworkNotFound] when no row matches.
func (r *artworkRepository) GetArtworkByID(ctx context.Context, artworkID int64) (models.Artwork, error) {
	log := logger.FromContext(ctx)

	row := r.db.QueryRowContext(ctx, getArtworkByID, artworkID)

	var artwork models.Artwork
	if err := scanArtwork(row, &artwork); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return models.Artwork{}, ErrArtworkNotFound
		}

		log.Err(err).Str("func", "*artworkRepository.GetArtworkByID").Msg("error: artwork lookup failed")
		return models.Artwork{}, fmt.Errorf("unexpected DB error: %w", err)
	}

	if err := r.hydrate(ctx, []*models.Artwork{&artwork}); err != nil {
		return models.Artwork{}, err
	}

	return artwork, nil
}

// ListArtworks returns hydrated artworks matching the filter, newest first.
func (r *artworkRepository) ListArtworks(ctx context.Context, filter models.ArtworkFilter) ([]models.Artwork, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildListArtworksQuery(filter)
	if err != nil {
		log.Err(err).Str("func", "*artworkRepository.ListArtworks").Msg("error: building list query failed")
		return nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		log.Err(err).Str("func", "*artworkRepository.ListArtworks").Msg("error: listing artworks failed")
		return nil, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	defer rows.Close()

	artworks := make([]models.Artwork, 0)
	for rows.Next() {
		var artwork models.Artwork
		if err := scanArtwork(rows, &artwork); err != nil {
			return nil, fmt.Errorf("%w: %w", ErrScanningRows, err)
		}
		artworks = append(artworks, artwork)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrScanningRows, err)
	}

	refs := make([]*models.Artwork, len(artworks))
	for i := range artworks {
		refs[i] = &artworks[i]
	}
	if err := r.hydrate(ctx, refs); err != nil {
		return nil, err
	}

	return artworks, nil
}

// MarkForSale transitions a draft artwork to the listed state. The UPDATE is
// conditional on the artwork still being an unsold draft; zero affected rows
// yield [ErrSaleStateConflict].
func (r *artworkRepository) MarkForSale(ctx context.Context, artworkID int64, price float64) error {
	return r.conditionalUpdate(ctx, markArtworkForSale, artworkID, price)
}

// MarkSold transitions a listed artwork to sold and stamps the buyer. The
// WHERE clause admits only the listed-and-unsold state, so of any number of
// concurrent buyers exactly one UPDATE matches; everyone else gets
// [ErrSaleStateConflict].
func (r *artworkRepository) MarkSold(ctx context.Context, artworkID, buyerID int64) error {
	return r.conditionalUpdate(ctx, markArtworkSold, artworkID, buyerID)
}

func (r *artworkRepository) conditionalUpdate(ctx context.Context, query string, artworkID int64, arg any) error {
	log := logger.FromContext(ctx)

	result, err := r.db.ExecRetryable(ctx, query, artworkID, arg)
	if err != nil {
		log.Err(err).Str("func", "*artworkRepository.conditionalUpdate").Msg("error: sale-state update failed")
		return fmt.Errorf("unexpected DB error: %w", err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("unexpected DB error: %w", err)
	}
	if affected == 0 {
		return ErrSaleStateConflict
	}

	return nil
}

// ToggleLike flips the (artwork, user) like membership. The insert relies on
// the primary key and ON CONFLICT DO NOTHING, so two racing likes from
// different users never lose each other's update; a repeated like by the
// same user falls through to the DELETE branch and removes the membership.
//
// Returns whether the user likes the artwork after the call.
func (r *artworkRepository) ToggleLike(ctx context.Context, artworkID, userID int64) (bool, error) {
	log := logger.FromContext(ctx)

	result, err := r.db.ExecContext(ctx, insertArtworkLike, artworkID, userID)
	if err != nil {
		if postgresError(err) == pgerrcode.ForeignKeyViolation {
			return false, ErrArtworkNotFound
		}

		log.Err(err).Str("func", "*artworkRepository.ToggleLike").Msg("error: inserting like failed")
		return false, fmt.Errorf("unexpected DB error: %w", err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return false, fmt.Errorf("unexpected DB error: %w", err)
	}
	if affected > 0 {
		return true, nil
	}

	// membership already existed — toggle off
	if _, err := r.db.ExecContext(ctx, deleteArtworkLike, artworkID, userID); err != nil {
		log.Err(err).Str("func", "*artworkRepository.ToggleLike").Msg("error: deleting like failed")
		return false, fmt.Errorf("unexpected DB error: %w", err)
	}

	return false, nil
}

// AddComment appends an immutable comment and returns it with CommentID and
// CreatedAt populated. Fails with [ErrArtworkNotFound] when the referenced
// artwork does not exist.
func (r *artworkRepository) AddComment(ctx context.Context, comment models.Comment) (models.Comment, error) {
	log := logger.FromContext(ctx)

	row := r.db.QueryRowContext(ctx, insertArtworkComment, comment.ArtworkID, comment.UserID, comment.Text)

	if err := row.Scan(&comment.CommentID, &comment.CreatedAt); err != nil {
		if postgresError(err) == pgerrcode.ForeignKeyViolation {
			return models.Comment{}, ErrArtworkNotFound
		}

		log.Err(err).Str("func", "*artworkRepository.AddComment").Msg("error: inserting comment failed")
		return models.Comment{}, fmt.Errorf("unexpected DB error: %w", err)
	}

	return comment, nil
}

// hydrate loads like membership and comment threads for the given artworks
// in two batched queries keyed by artwork id.
func (r *artworkRepository) hydrate(ctx context.Context, artworks []*models.Artwork) error {
	if len(artworks) == 0 {
		return nil
	}

	ids := make([]int64, 0, len(artworks))
	byID := make(map[int64]*models.Artwork, len(artworks))
	for _, artwork := range artworks {
		artwork.LikedBy = []int64{}
		artwork.Comments = []models.Comment{}
		ids = append(ids, artwork.ArtworkID)
		byID[artwork.ArtworkID] = artwork
	}

	rows, err := r.db.QueryContext(ctx, getArtworkLikes, ids)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	defer rows.Close()

	for rows.Next() {
		var artworkID, userID int64
		if err := rows.Scan(&artworkID, &userID); err != nil {
			return fmt.Errorf("%w: %w", ErrScanningRows, err)
		}
		if artwork, ok := byID[artworkID]; ok {
			artwork.LikedBy = append(artwork.LikedBy, userID)
		}
	}
	if err := rows.Err(); err != nil {
		return fmt.Errorf("%w: %w", ErrScanningRows, err)
	}

	commentRows, err := r.db.QueryContext(ctx, getArtworkComments, ids)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	defer commentRows.Close()

	for commentRows.Next() {
		var comment models.Comment
		if err := commentRows.Scan(&comment.CommentID, &comment.ArtworkID, &comment.UserID, &comment.Username, &comment.Text, &comment.CreatedAt); err != nil {
			return fmt.Errorf("%w: %w", ErrScanningRows, err)
		}
		if artwork, ok := byID[comment.ArtworkID]; ok {
			artwork.Comments = append(artwork.Comments, comment)
		}
	}
	if err := commentRows.Err(); err != nil {
		return fmt.Errorf("%w: %w", ErrScanningRows, err)
	}

	for _, artwork := range artworks {
		artwork.Likes = len(artwork.LikedBy)
	}

	return nil
}

// scanArtwork reads one artworks row (as produced by the shared column list)
// into dst.
func scanArtwork(row interface{ Scan(...any) error }, dst *models.Artwork) error {
	return row.Scan(&dst.ArtworkID, &dst.ArtistID, &dst.Title, &dst.Description, &dst.ImageURL,
		&dst.Price, &dst.ForSale, &dst.Sold, &dst.BuyerID, &dst.CreatedAt)
}
