package http

import (
	"errors"
	"net/http"

	"github.com/art-space/artspace/internal/service"
	"github.com/art-space/artspace/internal/store"
)

var errorStatusMap = map[error]int{
	service.ErrInvalidDataProvided:     http.StatusBadRequest,
	service.ErrInvalidCredentials:      http.StatusUnauthorized,
	service.ErrTokenIsExpiredOrInvalid: http.StatusUnauthorized,
	service.ErrTokenCreationFailed:     http.StatusInternalServerError,

	service.ErrNotArtworkArtist:   http.StatusForbidden,
	service.ErrOwnArtworkPurchase: http.StatusForbidden,

	service.ErrArtworkNotForSale:    http.StatusConflict,
	service.ErrArtworkAlreadyListed: http.StatusConflict,
	service.ErrArtworkAlreadySold:   http.StatusConflict,

	store.ErrEmailAlreadyExists: http.StatusConflict,
	store.ErrNoUserWasFound:     http.StatusNotFound,
	store.ErrArtworkNotFound:    http.StatusNotFound,
	store.ErrSaleStateConflict:  http.StatusConflict,

	store.ErrBuildingSQLQuery: http.StatusInternalServerError,
	store.ErrExecutingQuery:   http.StatusInternalServerError,
	store.ErrScanningRow:      http.StatusInternalServerError,
	store.ErrScanningRows:     http.StatusInternalServerError,
}

func statusFromError(err error) int {
	for target, status := range errorStatusMap {
		if errors.Is(err, target) {
			return status
		}
	}
	return http.StatusInternalServerError
}
