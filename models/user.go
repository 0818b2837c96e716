package models

import "time"

// User represents a marketplace account used for authentication and as the
// artist/buyer reference on artworks. Sensitive fields must never be exposed
// outside trusted boundaries.
type User struct {
	// UserID is the internal unique identifier of the user.
	UserID int64 `json:"id"`

	// Email is the unique login identifier. Uniqueness is case-insensitive
	// and enforced at the persistence layer.
	Email string `json:"email"`

	// Username is the display name shown next to artworks and comments.
	Username string `json:"username"`

	// Password carries the plaintext password only between the HTTP layer
	// and the auth service. It is never persisted and never serialized back
	// to clients.
	Password string `json:"password,omitempty"`

	// PasswordHash is the bcrypt hash of the password (salt embedded).
	// Never exposed via JSON.
	PasswordHash string `json:"-"`

	// ProfilePicture is an optional URL to the user's avatar.
	ProfilePicture string `json:"profile_picture,omitempty"`

	// CreatedAt is the timestamp when the account was created.
	CreatedAt time.Time `json:"created_at"`
}

// Public returns a copy of the user safe to serialize in API responses:
// credential material is stripped.
func (u User) Public() User {
	u.Password = ""
	u.PasswordHash = ""
	return u
}

// TableName returns the name of the database table
// associated with the User model.
func (u User) TableName() string {
	return "users"
}

// ProfileUpdate describes a partial profile mutation. Nil fields are left
// untouched by the update.
type ProfileUpdate struct {
	Username       *string `json:"username,omitempty"`
	ProfilePicture *string `json:"profile_picture,omitempty"`
}
