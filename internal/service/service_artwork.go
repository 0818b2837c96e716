// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 The artspace authors

package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/art-space/artspace/internal/logger"
	"github.com/art-space/artspace/internal/store"
	"github.com/art-space/artspace/internal/validators"
	"github.com/art-space/artspace/models"
)

// artworkService is the concrete implementation of ArtworkService.
//
// Sale-state transitions follow a read-then-conditional-update pattern: the
// service reads the artwork to produce a precise error for the caller, then
// the repository applies a conditional UPDATE that re-checks the state. The
// conditional UPDATE is the source of truth under concurrency; the read only
// improves error messages for the common sequential case.
type artworkService struct {
	artworkRepository store.ArtworkRepository

	validator validators.Validator

	logger *logger.Logger
}

func NewArtworkService(artworkRepository store.ArtworkRepository, logger *logger.Logger) ArtworkService {
	return &artworkService{
		artworkRepository: artworkRepository,
		validator:         validators.NewMarketplaceValidator(),
		logger:            logger,
	}
}

// Create persists a new draft artwork owned by artistID.
//
// Drafts are visible in listings but cannot be bought until the artist puts
// them up for sale.
func (s *artworkService) Create(ctx context.Context, artistID int64, request models.CreateArtworkRequest) (models.Artwork, error) {
	log := logger.FromContext(ctx)

	if err := s.validator.Validate(ctx, request); err != nil {
		log.Err(err).Int64("artist_id", artistID).Msg("invalid artwork data provided")
		return models.Artwork{}, fmt.Errorf("%w: %w", ErrInvalidDataProvided, err)
	}

	created, err := s.artworkRepository.CreateArtwork(ctx, models.Artwork{
		ArtistID:    artistID,
		Title:       request.Title,
		Description: request.Description,
		ImageURL:    request.ImageURL,
	})
	if err != nil {
		log.Err(err).Int64("artist_id", artistID).Msg("artwork creation ended with error")
		return models.Artwork{}, fmt.Errorf("artwork creation ended with error: %w", err)
	}

	return created, nil
}

// Get returns a fully hydrated artwork.
// Fails with store.ErrArtworkNotFound when no artwork matches.
func (s *artworkService) Get(ctx context.Context, artworkID int64) (models.Artwork, error) {
	artwork, err := s.artworkRepository.GetArtworkByID(ctx, artworkID)
	if err != nil {
		return models.Artwork{}, fmt.Errorf("artwork search by id failed: %w", err)
	}

	return artwork, nil
}

// List returns hydrated artworks matching the filter, newest first.
func (s *artworkService) List(ctx context.Context, filter models.ArtworkFilter) ([]models.Artwork, error) {
	artworks, err := s.artworkRepository.ListArtworks(ctx, filter)
	if err != nil {
		return nil, fmt.Errorf("artwork listing failed: %w", err)
	}

	return artworks, nil
}

// Sell puts a draft artwork up for sale at the given price.
//
// Only the artist may list their artwork, the price must be positive, and the
// artwork must still be an unsold draft. The repository's conditional UPDATE
// enforces the state check atomically; a lost race surfaces as
// ErrArtworkAlreadyListed or ErrArtworkAlreadySold depending on the state the
// winner left behind.
func (s *artworkService) Sell(ctx context.Context, artworkID, actorID int64, price float64) (models.Artwork, error) {
	log := logger.FromContext(ctx)

	if err := s.validator.Validate(ctx, models.SellRequest{Price: price}); err != nil {
		return models.Artwork{}, fmt.Errorf("%w: %w", ErrInvalidDataProvided, err)
	}

	artwork, err := s.Get(ctx, artworkID)
	if err != nil {
		return models.Artwork{}, err
	}

	if artwork.ArtistID != actorID {
		log.Warn().
			Int64("artwork_id", artworkID).
			Int64("artist_id", artwork.ArtistID).
			Int64("actor_id", actorID).
			Msg("sell attempt by non-artist")
		return models.Artwork{}, ErrNotArtworkArtist
	}
	if artwork.Sold {
		return models.Artwork{}, ErrArtworkAlreadySold
	}
	if artwork.ForSale {
		return models.Artwork{}, ErrArtworkAlreadyListed
	}

	if err := s.artworkRepository.MarkForSale(ctx, artworkID, price); err != nil {
		if errors.Is(err, store.ErrSaleStateConflict) {
			return s.saleStateError(ctx, artworkID, ErrArtworkAlreadyListed)
		}
		log.Err(err).Int64("artwork_id", artworkID).Msg("marking artwork for sale failed")
		return models.Artwork{}, fmt.Errorf("marking artwork for sale failed: %w", err)
	}

	return s.Get(ctx, artworkID)
}

// Buy purchases a listed artwork on behalf of buyerID.
//
// Artists cannot buy their own artwork, and the repository's conditional
// UPDATE guarantees at most one buyer ever succeeds; every loser of a
// concurrent purchase race receives ErrArtworkAlreadySold.
func (s *artworkService) Buy(ctx context.Context, artworkID, buyerID int64) (models.Artwork, error) {
	log := logger.FromContext(ctx)

	artwork, err := s.Get(ctx, artworkID)
	if err != nil {
		return models.Artwork{}, err
	}

	if artwork.ArtistID == buyerID {
		return models.Artwork{}, ErrOwnArtworkPurchase
	}
	if artwork.Sold {
		return models.Artwork{}, ErrArtworkAlreadySold
	}
	if !artwork.ForSale {
		return models.Artwork{}, ErrArtworkNotForSale
	}

	if err := s.artworkRepository.MarkSold(ctx, artworkID, buyerID); err != nil {
		if errors.Is(err, store.ErrSaleStateConflict) {
			return s.saleStateError(ctx, artworkID, ErrArtworkAlreadySold)
		}
		log.Err(err).Int64("artwork_id", artworkID).Int64("buyer_id", buyerID).Msg("marking artwork sold failed")
		return models.Artwork{}, fmt.Errorf("marking artwork sold failed: %w", err)
	}

	return s.Get(ctx, artworkID)
}

// Like toggles userID's like on the artwork and returns the refreshed record.
// Liking twice is a no-op pair: the second call removes the like.
func (s *artworkService) Like(ctx context.Context, artworkID, userID int64) (models.Artwork, error) {
	log := logger.FromContext(ctx)

	liked, err := s.artworkRepository.ToggleLike(ctx, artworkID, userID)
	if err != nil {
		log.Err(err).Int64("artwork_id", artworkID).Int64("user_id", userID).Msg("toggling like failed")
		return models.Artwork{}, fmt.Errorf("toggling like failed: %w", err)
	}

	log.Debug().
		Int64("artwork_id", artworkID).
		Int64("user_id", userID).
		Bool("liked", liked).
		Msg("like toggled")

	return s.Get(ctx, artworkID)
}

// Comment appends an immutable comment to the artwork and returns the
// refreshed record. Comments are allowed in every sale state.
func (s *artworkService) Comment(ctx context.Context, artworkID, userID int64, text string) (models.Artwork, error) {
	log := logger.FromContext(ctx)

	if err := s.validator.Validate(ctx, models.CommentRequest{Text: text}); err != nil {
		return models.Artwork{}, fmt.Errorf("%w: %w", ErrInvalidDataProvided, err)
	}

	if _, err := s.artworkRepository.AddComment(ctx, models.Comment{
		ArtworkID: artworkID,
		UserID:    userID,
		Text:      text,
	}); err != nil {
		log.Err(err).Int64("artwork_id", artworkID).Int64("user_id", userID).Msg("adding comment failed")
		return models.Artwork{}, fmt.Errorf("adding comment failed: %w", err)
	}

	return s.Get(ctx, artworkID)
}

// saleStateError re-reads the artwork after a lost conditional update so the
// caller learns which terminal state won the race. fallback covers the rare
// case where the re-read itself fails.
func (s *artworkService) saleStateError(ctx context.Context, artworkID int64, fallback error) (models.Artwork, error) {
	artwork, err := s.artworkRepository.GetArtworkByID(ctx, artworkID)
	if err != nil {
		return models.Artwork{}, fallback
	}

	if artwork.Sold {
		return models.Artwork{}, ErrArtworkAlreadySold
	}
	if artwork.ForSale {
		return models.Artwork{}, ErrArtworkAlreadyListed
	}

	return models.Artwork{}, fallback
}
