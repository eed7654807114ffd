package http

import (
	"errors"
	"fmt"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"github.com/mzhurov/postboard/internal/app"
	"github.com/mzhurov/postboard/internal/logger"
	"github.com/mzhurov/postboard/internal/store"
	"github.com/mzhurov/postboard/internal/utils"
)

func (h *Handler) getUser(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	userID, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
	if err != nil {
		log.Err(err).Msg("invalid user id was passed")
		apiError(w, app.MsgInvalidUserID, http.StatusUnprocessableEntity)
		return
	}

	foundUser, err := h.services.AuthService.GetUser(ctx, userID)
	if err != nil {
		switch {
		case errors.Is(err, store.ErrNoUserWasFound):
			log.Err(err).Int64("id", userID).Msg("user was not found")
			apiError(w, fmt.Sprintf(app.MsgUserNotFoundFmt, userID), http.StatusNotFound)
			return
		default:
			log.Err(err).Msg("unexpected error occurred during user lookup")
			mappedError(w, err)
			return
		}
	}

	utils.WriteJSON(w, foundUser, http.StatusOK)
}
