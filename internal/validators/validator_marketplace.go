package validators

import (
	"context"
	"net/mail"
	"strings"

	"github.com/art-space/artspace/models"
)

// MinPasswordLength is the minimum accepted password length at registration
// and password reset.
const MinPasswordLength = 8

// MarketplaceValidator validates the request payloads of the marketplace
// API: registration, artwork creation, sale listing, and commenting.
type MarketplaceValidator struct {
}

func NewMarketplaceValidator() Validator {
	return &MarketplaceValidator{}
}

func (v *MarketplaceValidator) Validate(ctx context.Context, obj any, fields ...string) error {
	switch value := obj.(type) {
	case models.RegisterRequest:
		return v.validateRegisterRequest(ctx, value)
	case *models.RegisterRequest:
		return v.validateRegisterRequest(ctx, *value)

	case models.CreateArtworkRequest:
		return v.validateCreateArtworkRequest(ctx, value)
	case *models.CreateArtworkRequest:
		return v.validateCreateArtworkRequest(ctx, *value)

	case models.SellRequest:
		return v.validateSellRequest(ctx, value)
	case *models.SellRequest:
		return v.validateSellRequest(ctx, *value)

	case models.CommentRequest:
		return v.validateCommentRequest(ctx, value)
	case *models.CommentRequest:
		return v.validateCommentRequest(ctx, *value)

	default:
		return ErrUnsupportedType
	}
}

func (v *MarketplaceValidator) validateRegisterRequest(_ context.Context, req models.RegisterRequest) error {
	if _, err := mail.ParseAddress(req.Email); err != nil {
		return ErrInvalidEmail
	}
	if len(req.Password) < MinPasswordLength {
		return ErrPasswordTooShort
	}
	if strings.TrimSpace(req.Username) == "" {
		return ErrEmptyUsername
	}

	return nil
}

func (v *MarketplaceValidator) validateCreateArtworkRequest(_ context.Context, req models.CreateArtworkRequest) error {
	if strings.TrimSpace(req.Title) == "" {
		return ErrEmptyTitle
	}
	if strings.TrimSpace(req.ImageURL) == "" {
		return ErrEmptyImageURL
	}

	return nil
}

func (v *MarketplaceValidator) validateSellRequest(_ context.Context, req models.SellRequest) error {
	if req.Price <= 0 {
		return ErrNonPositivePrice
	}

	return nil
}

func (v *MarketplaceValidator) validateCommentRequest(_ context.Context, req models.CommentRequest) error {
	if strings.TrimSpace(req.Text) == "" {
		return ErrEmptyCommentText
	}

	return nil
}
