package models

import "time"

// Artwork is the core business object of the marketplace. Its sale state
// follows a strict lifecycle: a freshly created artwork is a draft, the artist
// may list it for sale with a positive price, and a listed artwork may be
// bought exactly once, after which it is sold and immutable.
type Artwork struct {
	// ArtworkID is the internal unique identifier of the artwork.
	ArtworkID int64 `json:"id"`

	// ArtistID references the creating user. Immutable after creation;
	// a purchase never transfers authorship.
	ArtistID int64 `json:"artist_id"`

	// Title is the display title of the artwork.
	Title string `json:"title"`

	// Description is the free-form artwork description.
	Description string `json:"description"`

	// ImageURL points at the hosted image. Treated as an opaque string;
	// image storage is outside this service.
	ImageURL string `json:"image_url"`

	// Price is the asking price in whole currency units. Zero while the
	// artwork is a draft; positive once listed for sale.
	Price float64 `json:"price"`

	// ForSale reports whether the artwork is currently listed.
	ForSale bool `json:"for_sale"`

	// Sold reports whether the artwork has been bought. Terminal: a sold
	// artwork can not be re-listed, re-priced, or bought again.
	Sold bool `json:"sold"`

	// BuyerID references the purchasing user once Sold is true.
	// Zero while unsold.
	BuyerID int64 `json:"buyer_id,omitempty"`

	// LikedBy holds the ids of users that currently like the artwork.
	// Membership is unique per user; liking is an idempotent toggle.
	LikedBy []int64 `json:"liked_by"`

	// Likes is the derived like counter, always equal to len(LikedBy).
	Likes int `json:"likes"`

	// Comments is the append-only, chronologically ordered comment thread.
	Comments []Comment `json:"comments"`

	// CreatedAt is the timestamp when the artwork was created.
	CreatedAt time.Time `json:"created_at"`
}

// TableName returns the name of the database table
// associated with the Artwork model.
func (a Artwork) TableName() string {
	return "artworks"
}

// Comment is a single immutable entry in an artwork's comment thread.
type Comment struct {
	CommentID int64     `json:"id"`
	ArtworkID int64     `json:"-"`
	UserID    int64     `json:"user_id"`
	Username  string    `json:"username"`
	Text      string    `json:"text"`
	CreatedAt time.Time `json:"created_at"`
}

// ArtworkFilter narrows artwork listings. Zero-valued fields are ignored.
type ArtworkFilter struct {
	// ArtistID limits results to works of a single artist.
	ArtistID int64

	// ForSale, when non-nil, limits results by listing state.
	ForSale *bool

	// Limit caps the number of returned rows; zero means no cap.
	Limit uint64
}
