package validators

import "errors"

var (
	ErrUnsupportedType = errors.New("unsupported type for validation")

	ErrInvalidEmail     = errors.New("invalid email")
	ErrPasswordTooShort = errors.New("password is too short")
	ErrEmptyUsername    = errors.New("username is required")
	ErrEmptyTitle       = errors.New("artwork title is required")
	ErrEmptyImageURL    = errors.New("artwork image url is required")
	ErrNonPositivePrice = errors.New("price must be positive")
	ErrEmptyCommentText = errors.New("comment text is required")
)
