package store

import (
	sq "github.com/Masterminds/squirrel"

	"github.com/art-space/artspace/models"
)

const (
	createUser = `INSERT INTO users (email, username, password_hash, profile_picture)
    VALUES ($1, $2, $3, $4)
    RETURNING user_id, email, username, password_hash, profile_picture, created_at;`

	findUserByEmail = `SELECT user_id, email, username, password_hash, profile_picture, created_at
    FROM users
    WHERE lower(email) = lower($1);`

	findUserByID = `SELECT user_id, email, username, password_hash, profile_picture, created_at
    FROM users
    WHERE user_id = $1;`

	updateUserPasswordHash = `UPDATE users
    SET password_hash = $2
    WHERE user_id = $1;`

	createArtwork = `INSERT INTO artworks (artist_id, title, description, image_url)
    VALUES ($1, $2, $3, $4)
    RETURNING artwork_id, artist_id, title, description, image_url, price, for_sale, sold, COALESCE(buyer_id, 0), created_at;`

	getArtworkByID = `SELECT artwork_id, artist_id, title, description, image_url, price, for_sale, sold, COALESCE(buyer_id, 0), created_at
    FROM artworks
    WHERE artwork_id = $1;`

	// Sale-state transitions are single conditional writes: the WHERE clause
	// carries the legal source state, so a transition either happens exactly
	// once or touches nothing.
	markArtworkForSale = `UPDATE artworks
    SET for_sale = TRUE, price = $2
    WHERE artwork_id = $1 AND for_sale = FALSE AND sold = FALSE;`

	markArtworkSold = `UPDATE artworks
    SET sold = TRUE, buyer_id = $2
    WHERE artwork_id = $1 AND for_sale = TRUE AND sold = FALSE;`

	insertArtworkLike = `INSERT INTO artwork_likes (artwork_id, user_id)
    VALUES ($1, $2)
    ON CONFLICT (artwork_id, user_id) DO NOTHING;`

	deleteArtworkLike = `DELETE FROM artwork_likes
    WHERE artwork_id = $1 AND user_id = $2;`

	getArtworkLikes = `SELECT artwork_id, user_id
    FROM artwork_likes
    WHERE artwork_id = ANY($1)
    ORDER BY created_at;`

	insertArtworkComment = `INSERT INTO artwork_comments (artwork_id, user_id, body)
    VALUES ($1, $2, $3)
    RETURNING comment_id, created_at;`

	getArtworkComments = `SELECT c.comment_id, c.artwork_id, c.user_id, u.username, c.body, c.created_at
    FROM artwork_comments c
    JOIN users u ON u.user_id = c.user_id
    WHERE c.artwork_id = ANY($1)
    ORDER BY c.created_at, c.comment_id;`
)

// psql is the shared squirrel statement builder configured for PostgreSQL
// dollar placeholders.
var psql = sq.StatementBuilder.PlaceholderFormat(sq.Dollar)

// buildListArtworksQuery assembles the artwork listing SELECT for the given
// filter. Zero-valued filter fields add no predicate.
func buildListArtworksQuery(filter models.ArtworkFilter) (string, []any, error) {
	query := psql.
		Select("artwork_id", "artist_id", "title", "description", "image_url",
			"price", "for_sale", "sold", "COALESCE(buyer_id, 0)", "created_at").
		From("artworks").
		OrderBy("created_at DESC", "artwork_id DESC")

	if filter.ArtistID != 0 {
		query = query.Where(sq.Eq{"artist_id": filter.ArtistID})
	}
	if filter.ForSale != nil {
		query = query.Where(sq.Eq{"for_sale": *filter.ForSale})
		// listings never include already sold works
		if *filter.ForSale {
			query = query.Where(sq.Eq{"sold": false})
		}
	}
	if filter.Limit > 0 {
		query = query.Limit(filter.Limit)
	}

	return query.ToSql()
}

// buildUpdateProfileQuery assembles a partial users UPDATE from the non-nil
// fields of update. Returns ok=false when update carries nothing to change.
func buildUpdateProfileQuery(userID int64, update models.ProfileUpdate) (sql string, args []any, ok bool, err error) {
	query := psql.Update("users")

	set := false
	if update.Username != nil {
		query = query.Set("username", *update.Username)
		set = true
	}
	if update.ProfilePicture != nil {
		query = query.Set("profile_picture", *update.ProfilePicture)
		set = true
	}
	if !set {
		return "", nil, false, nil
	}

	query = query.
		Where(sq.Eq{"user_id": userID}).
		Suffix("RETURNING user_id, email, username, password_hash, profile_picture, created_at")

	sql, args, err = query.ToSql()
	return sql, args, true, err
}
