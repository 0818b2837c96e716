package models

// RegisterRequest carries the credentials and profile fields presented at
// account registration. Password is plaintext only across this boundary and
// is hashed before anything is persisted.
type RegisterRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
	Username string `json:"username"`
}

// LoginRequest carries the credentials presented at login.
type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// ForgotPasswordRequest carries the email for which a reset notification
// should be dispatched. The endpoint answers identically whether or not an
// account with this email exists.
type ForgotPasswordRequest struct {
	Email string `json:"email"`
}

// ResetPasswordRequest completes a password reset started by forgot-password.
// Token is the reset-scoped JWT delivered out-of-band.
type ResetPasswordRequest struct {
	Token       string `json:"token"`
	NewPassword string `json:"new_password"`
}

// TokenResponse is the login/registration success body: the bearer token and
// its lifetime in seconds.
type TokenResponse struct {
	AccessToken string `json:"access_token"`
	TokenType   string `json:"token_type"`
	ExpiresIn   int64  `json:"expires_in"`
}

// CreateArtworkRequest carries the fields of a new draft artwork.
// The artist is taken from the authenticated request context, never from
// the body.
type CreateArtworkRequest struct {
	Title       string `json:"title"`
	Description string `json:"description"`
	ImageURL    string `json:"image_url"`
}

// SellRequest lists an artwork for sale at the given price.
type SellRequest struct {
	// Price is the asking price; must be positive.
	Price float64 `json:"price"`
}

// CommentRequest appends a comment to an artwork's thread.
type CommentRequest struct {
	Text string `json:"text"`
}
