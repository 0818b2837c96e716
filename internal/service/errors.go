package service

import "errors"

var (
	ErrInvalidDataProvided = errors.New("invalid data provided")
	ErrInvalidCredentials  = errors.New("invalid email or password")

	ErrTokenIsExpiredOrInvalid = errors.New("token is expired or invalid")
	ErrTokenCreationFailed     = errors.New("token creation failed")

	ErrNotArtworkArtist   = errors.New("only the artist can sell this artwork")
	ErrOwnArtworkPurchase = errors.New("artists cannot buy their own artwork")

	ErrArtworkNotForSale    = errors.New("artwork is not for sale")
	ErrArtworkAlreadyListed = errors.New("artwork is already for sale")
	ErrArtworkAlreadySold   = errors.New("artwork is already sold")

	ErrVersionIsNotSpecified = errors.New("app version is not specified")
)
