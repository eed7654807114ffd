package http

import (
	"errors"
	"net/http"

	"github.com/mzhurov/postboard/internal/service"
	"github.com/mzhurov/postboard/internal/store"
	"github.com/mzhurov/postboard/internal/utils"
	"github.com/mzhurov/postboard/models"
)

var errorStatusMap = map[error]int{
	service.ErrInvalidDataProvided:     http.StatusUnprocessableEntity,
	service.ErrWrongCredentials:        http.StatusUnauthorized,
	service.ErrTokenIsExpiredOrInvalid: http.StatusUnauthorized,
	service.ErrTokenCreationFailed:     http.StatusInternalServerError,

	store.ErrEmailAlreadyExists: http.StatusConflict,
	store.ErrNoUserWasFound:     http.StatusNotFound,
	store.ErrPostNotFound:       http.StatusNotFound,
	store.ErrVoteAlreadyCast:    http.StatusConflict,
	store.ErrVoteNotFound:       http.StatusNotFound,

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

// apiError writes the uniform JSON error body ({"detail": ...}) with the
// given status code. Every failing endpoint responds through this helper so
// that clients can always rely on the same error shape.
func apiError(w http.ResponseWriter, detail string, statusCode int) {
	utils.WriteJSON(w, models.ErrorResponse{Detail: detail}, statusCode)
}

// mappedError resolves err to a status code via errorStatusMap and writes the
// uniform error body. Internal errors are masked with the generic status text
// so that database details never leak to clients.
func mappedError(w http.ResponseWriter, err error) {
	statusCode := statusFromError(err)

	detail := http.StatusText(statusCode)
	if statusCode < http.StatusInternalServerError {
		detail = err.Error()
	}

	apiError(w, detail, statusCode)
}
