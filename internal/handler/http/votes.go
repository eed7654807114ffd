package http

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/mzhurov/postboard/internal/app"
	"github.com/mzhurov/postboard/internal/logger"
	"github.com/mzhurov/postboard/internal/store"
	"github.com/mzhurov/postboard/internal/utils"
	"github.com/mzhurov/postboard/models"
)

func (h *Handler) castVote(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	postID, err := postIDFromURL(r)
	if err != nil {
		log.Err(err).Msg("invalid post id was passed")
		apiError(w, app.MsgInvalidPostID, http.StatusUnprocessableEntity)
		return
	}

	userID, ok := utils.GetUserIDFromContext(ctx)
	if !ok {
		log.Error().Msg("no user id found in request context")
		apiError(w, app.MsgCouldNotValidateCredentials, http.StatusUnauthorized)
		return
	}

	err = h.services.VoteService.CastVote(ctx, models.Vote{UserID: userID, PostID: postID})
	if err != nil {
		switch {
		case errors.Is(err, store.ErrVoteAlreadyCast):
			log.Err(err).Int64("post_id", postID).Int64("user_id", userID).Msg("vote has already been cast")
			apiError(w, fmt.Sprintf(app.MsgVoteAlreadyCastFmt, userID, postID), http.StatusConflict)
			return
		case errors.Is(err, store.ErrPostNotFound):
			log.Err(err).Int64("post_id", postID).Msg("post was not found")
			apiError(w, fmt.Sprintf(app.MsgPostNotFoundFmt, postID), http.StatusNotFound)
			return
		default:
			log.Err(err).Msg("unexpected error occurred during vote casting")
			mappedError(w, err)
			return
		}
	}

	log.Debug().Int64("post_id", postID).Int64("user_id", userID).Msg("vote successfully cast")

	w.WriteHeader(http.StatusCreated)
}

func (h *Handler) retractVote(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	postID, err := postIDFromURL(r)
	if err != nil {
		log.Err(err).Msg("invalid post id was passed")
		apiError(w, app.MsgInvalidPostID, http.StatusUnprocessableEntity)
		return
	}

	userID, ok := utils.GetUserIDFromContext(ctx)
	if !ok {
		log.Error().Msg("no user id found in request context")
		apiError(w, app.MsgCouldNotValidateCredentials, http.StatusUnauthorized)
		return
	}

	err = h.services.VoteService.RetractVote(ctx, models.Vote{UserID: userID, PostID: postID})
	if err != nil {
		switch {
		case errors.Is(err, store.ErrVoteNotFound):
			log.Err(err).Int64("post_id", postID).Int64("user_id", userID).Msg("vote was not found")
			apiError(w, app.MsgVoteDoesNotExist, http.StatusNotFound)
			return
		default:
			log.Err(err).Msg("unexpected error occurred during vote retraction")
			mappedError(w, err)
			return
		}
	}

	log.Debug().Int64("post_id", postID).Int64("user_id", userID).Msg("vote successfully retracted")

	w.WriteHeader(http.StatusNoContent)
}
