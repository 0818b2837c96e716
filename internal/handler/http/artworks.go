// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 The artspace authors

package http

import (
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/art-space/artspace/internal/logger"
	"github.com/art-space/artspace/internal/utils"
	"github.com/art-space/artspace/models"
)

func (h *Handler) createArtwork(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	artistID, ok := utils.GetUserIDFromContext(ctx)
	if !ok {
		log.Error().Msg("no user id in request context")
		http.Error(w, http.StatusText(http.StatusUnauthorized), http.StatusUnauthorized)
		return
	}

	var request models.CreateArtworkRequest
	if err := json.NewDecoder(r.Body).Decode(&request); err != nil {
		log.Err(err).Msg("Invalid JSON was passed")
		http.Error(w, "Invalid JSON was passed", http.StatusBadRequest)
		return
	}

	created, err := h.services.ArtworkService.Create(ctx, artistID, request)
	if err != nil {
		log.Err(err).Int64("artist_id", artistID).Msg("artwork creation failed")
		http.Error(w, err.Error(), statusFromError(err))
		return
	}

	utils.WriteJSON(w, created, http.StatusCreated)
}

func (h *Handler) listArtworks(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	filter, err := artworkFilterFromQuery(r)
	if err != nil {
		log.Err(err).Msg("invalid artwork listing filter")
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	artworks, err := h.services.ArtworkService.List(ctx, filter)
	if err != nil {
		log.Err(err).Msg("artwork listing failed")
		http.Error(w, err.Error(), statusFromError(err))
		return
	}

	if artworks == nil {
		artworks = []models.Artwork{}
	}
	utils.WriteJSON(w, artworks, http.StatusOK)
}

func (h *Handler) getArtwork(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	artworkID, err := artworkIDFromRequest(r)
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	artwork, err := h.services.ArtworkService.Get(ctx, artworkID)
	if err != nil {
		log.Err(err).Int64("artwork_id", artworkID).Msg("artwork lookup failed")
		http.Error(w, err.Error(), statusFromError(err))
		return
	}

	utils.WriteJSON(w, artwork, http.StatusOK)
}

func (h *Handler) sellArtwork(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	actorID, ok := utils.GetUserIDFromContext(ctx)
	if !ok {
		log.Error().Msg("no user id in request context")
		http.Error(w, http.StatusText(http.StatusUnauthorized), http.StatusUnauthorized)
		return
	}

	artworkID, err := artworkIDFromRequest(r)
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	var request models.SellRequest
	if err := json.NewDecoder(r.Body).Decode(&request); err != nil {
		log.Err(err).Msg("Invalid JSON was passed")
		http.Error(w, "Invalid JSON was passed", http.StatusBadRequest)
		return
	}

	artwork, err := h.services.ArtworkService.Sell(ctx, artworkID, actorID, request.Price)
	if err != nil {
		log.Err(err).Int64("artwork_id", artworkID).Int64("actor_id", actorID).Msg("listing artwork for sale failed")
		http.Error(w, err.Error(), statusFromError(err))
		return
	}

	utils.WriteJSON(w, artwork, http.StatusOK)
}

func (h *Handler) buyArtwork(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	buyerID, ok := utils.GetUserIDFromContext(ctx)
	if !ok {
		log.Error().Msg("no user id in request context")
		http.Error(w, http.StatusText(http.StatusUnauthorized), http.StatusUnauthorized)
		return
	}

	artworkID, err := artworkIDFromRequest(r)
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	artwork, err := h.services.ArtworkService.Buy(ctx, artworkID, buyerID)
	if err != nil {
		log.Err(err).Int64("artwork_id", artworkID).Int64("buyer_id", buyerID).Msg("artwork purchase failed")
		http.Error(w, err.Error(), statusFromError(err))
		return
	}

	utils.WriteJSON(w, artwork, http.StatusOK)
}

func (h *Handler) likeArtwork(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	userID, ok := utils.GetUserIDFromContext(ctx)
	if !ok {
		log.Error().Msg("no user id in request context")
		http.Error(w, http.StatusText(http.StatusUnauthorized), http.StatusUnauthorized)
		return
	}

	artworkID, err := artworkIDFromRequest(r)
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	artwork, err := h.services.ArtworkService.Like(ctx, artworkID, userID)
	if err != nil {
		log.Err(err).Int64("artwork_id", artworkID).Int64("user_id", userID).Msg("toggling like failed")
		http.Error(w, err.Error(), statusFromError(err))
		return
	}

	utils.WriteJSON(w, artwork, http.StatusOK)
}

func (h *Handler) commentArtwork(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	userID, ok := utils.GetUserIDFromContext(ctx)
	if !ok {
		log.Error().Msg("no user id in request context")
		http.Error(w, http.StatusText(http.StatusUnauthorized), http.StatusUnauthorized)
		return
	}

	artworkID, err := artworkIDFromRequest(r)
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	var request models.CommentRequest
	if err := json.NewDecoder(r.Body).Decode(&request); err != nil {
		log.Err(err).Msg("Invalid JSON was passed")
		http.Error(w, "Invalid JSON was passed", http.StatusBadRequest)
		return
	}

	artwork, err := h.services.ArtworkService.Comment(ctx, artworkID, userID, request.Text)
	if err != nil {
		log.Err(err).Int64("artwork_id", artworkID).Int64("user_id", userID).Msg("adding comment failed")
		http.Error(w, err.Error(), statusFromError(err))
		return
	}

	utils.WriteJSON(w, artwork, http.StatusOK)
}

// artworkIDFromRequest parses the {id} URL parameter.
func artworkIDFromRequest(r *http.Request) (int64, error) {
	artworkID, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
	if err != nil || artworkID <= 0 {
		return 0, ErrInvalidArtworkID
	}

	return artworkID, nil
}

// artworkFilterFromQuery reads the optional artist_id, for_sale and limit
// query parameters into a listing filter.
func artworkFilterFromQuery(r *http.Request) (models.ArtworkFilter, error) {
	var filter models.ArtworkFilter
	query := r.URL.Query()

	if raw := query.Get("artist_id"); raw != "" {
		artistID, err := strconv.ParseInt(raw, 10, 64)
		if err != nil || artistID <= 0 {
			return models.ArtworkFilter{}, ErrInvalidArtworkFilter
		}
		filter.ArtistID = artistID
	}

	if raw := query.Get("for_sale"); raw != "" {
		forSale, err := strconv.ParseBool(raw)
		if err != nil {
			return models.ArtworkFilter{}, ErrInvalidArtworkFilter
		}
		filter.ForSale = &forSale
	}

	if raw := query.Get("limit"); raw != "" {
		limit, err := strconv.ParseUint(raw, 10, 32)
		if err != nil {
			return models.ArtworkFilter{}, ErrInvalidArtworkFilter
		}
		filter.Limit = limit
	}

	return filter, nil
}
