package http

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"github.com/mzhurov/postboard/internal/app"
	"github.com/mzhurov/postboard/internal/logger"
	"github.com/mzhurov/postboard/internal/service"
	"github.com/mzhurov/postboard/internal/store"
	"github.com/mzhurov/postboard/internal/utils"
	"github.com/mzhurov/postboard/models"
)

// defaultPageLimit is the page size applied when the limit query parameter
// is absent.
const defaultPageLimit = 10

func (h *Handler) listPosts(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	filter, err := listFilterFromQuery(r)
	if err != nil {
		log.Err(err).Msg("invalid pagination parameters were passed")
		apiError(w, app.MsgInvalidPaginationParameters, http.StatusUnprocessableEntity)
		return
	}

	posts, err := h.services.PostService.ListPosts(ctx, filter)
	if err != nil {
		log.Err(err).Msg("unexpected error occurred during posts listing")
		mappedError(w, err)
		return
	}

	utils.WriteJSON(w, posts, http.StatusOK)
}

func (h *Handler) getPost(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	postID, err := postIDFromURL(r)
	if err != nil {
		log.Err(err).Msg("invalid post id was passed")
		apiError(w, app.MsgInvalidPostID, http.StatusUnprocessableEntity)
		return
	}

	post, err := h.services.PostService.GetPost(ctx, postID)
	if err != nil {
		switch {
		case errors.Is(err, store.ErrPostNotFound):
			log.Err(err).Int64("id", postID).Msg("post was not found")
			apiError(w, fmt.Sprintf(app.MsgPostNotFoundFmt, postID), http.StatusNotFound)
			return
		default:
			log.Err(err).Msg("unexpected error occurred during post lookup")
			mappedError(w, err)
			return
		}
	}

	utils.WriteJSON(w, post, http.StatusOK)
}

func (h *Handler) createPost(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	userID, ok := utils.GetUserIDFromContext(ctx)
	if !ok {
		log.Error().Msg("no user id found in request context")
		apiError(w, app.MsgCouldNotValidateCredentials, http.StatusUnauthorized)
		return
	}

	var draft models.PostDraft
	if err := json.NewDecoder(r.Body).Decode(&draft); err != nil {
		log.Err(err).Msg("Invalid JSON was passed")
		apiError(w, app.MsgInvalidRequestBody, http.StatusUnprocessableEntity)
		return
	}

	createdPost, err := h.services.PostService.CreatePost(ctx, userID, draft)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrInvalidDataProvided):
			log.Err(err).Msg("invalid data provided")
			apiError(w, app.MsgTitleAndContentRequired, http.StatusUnprocessableEntity)
			return
		default:
			log.Err(err).Msg("unexpected error occurred during post creation")
			mappedError(w, err)
			return
		}
	}

	log.Debug().Int64("id", createdPost.ID).Int64("owner_id", userID).Msg("post successfully created")

	utils.WriteJSON(w, createdPost, http.StatusCreated)
}

func (h *Handler) replacePost(w http.ResponseWriter, r *http.Request) {
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

	var draft models.PostDraft
	if err := json.NewDecoder(r.Body).Decode(&draft); err != nil {
		log.Err(err).Msg("Invalid JSON was passed")
		apiError(w, app.MsgInvalidRequestBody, http.StatusUnprocessableEntity)
		return
	}

	if !h.checkPostOwnership(w, r, postID, userID) {
		return
	}

	updatedPost, err := h.services.PostService.ReplacePost(ctx, postID, draft)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrInvalidDataProvided):
			log.Err(err).Msg("invalid data provided")
			apiError(w, app.MsgTitleAndContentRequired, http.StatusUnprocessableEntity)
			return
		case errors.Is(err, store.ErrPostNotFound):
			log.Err(err).Int64("id", postID).Msg("post was not found")
			apiError(w, fmt.Sprintf(app.MsgPostNotFoundFmt, postID), http.StatusNotFound)
			return
		default:
			log.Err(err).Msg("unexpected error occurred during post replacement")
			mappedError(w, err)
			return
		}
	}

	utils.WriteJSON(w, updatedPost, http.StatusOK)
}

func (h *Handler) patchPost(w http.ResponseWriter, r *http.Request) {
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

	var patch models.PostPatch
	if err := json.NewDecoder(r.Body).Decode(&patch); err != nil {
		log.Err(err).Msg("Invalid JSON was passed")
		apiError(w, app.MsgInvalidRequestBody, http.StatusUnprocessableEntity)
		return
	}

	if !h.checkPostOwnership(w, r, postID, userID) {
		return
	}

	patchedPost, err := h.services.PostService.PatchPost(ctx, postID, patch)
	if err != nil {
		switch {
		case errors.Is(err, store.ErrPostNotFound):
			log.Err(err).Int64("id", postID).Msg("post was not found")
			apiError(w, fmt.Sprintf(app.MsgPostNotFoundFmt, postID), http.StatusNotFound)
			return
		default:
			log.Err(err).Msg("unexpected error occurred during post patching")
			mappedError(w, err)
			return
		}
	}

	utils.WriteJSON(w, patchedPost, http.StatusOK)
}

func (h *Handler) deletePost(w http.ResponseWriter, r *http.Request) {
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

	if !h.checkPostOwnership(w, r, postID, userID) {
		return
	}

	if err := h.services.PostService.DeletePost(ctx, postID); err != nil {
		switch {
		case errors.Is(err, store.ErrPostNotFound):
			log.Err(err).Int64("id", postID).Msg("post was not found")
			apiError(w, fmt.Sprintf(app.MsgPostNotFoundFmt, postID), http.StatusNotFound)
			return
		default:
			log.Err(err).Msg("unexpected error occurred during post deletion")
			mappedError(w, err)
			return
		}
	}

	log.Debug().Int64("id", postID).Msg("post successfully deleted")

	w.WriteHeader(http.StatusNoContent)
}

// checkPostOwnership loads the post and verifies that the caller owns it.
// When the post is missing or belongs to someone else, it writes the error
// response and returns false. Existence is checked before ownership, so a
// missing post always surfaces as 404 while a foreign post always surfaces
// as 403 — never the other way around.
func (h *Handler) checkPostOwnership(w http.ResponseWriter, r *http.Request, postID, userID int64) bool {
	log := logger.FromRequest(r)

	current, err := h.services.PostService.GetPost(r.Context(), postID)
	if err != nil {
		switch {
		case errors.Is(err, store.ErrPostNotFound):
			log.Err(err).Int64("id", postID).Msg("post was not found")
			apiError(w, fmt.Sprintf(app.MsgPostNotFoundFmt, postID), http.StatusNotFound)
			return false
		default:
			log.Err(err).Msg("unexpected error occurred during ownership check")
			mappedError(w, err)
			return false
		}
	}

	if current.Post.OwnerID != userID {
		log.Warn().Int64("post_id", postID).Int64("user_id", userID).Msg("user is not the owner of the post")
		apiError(w, app.MsgNotAuthorizedForAction, http.StatusForbidden)
		return false
	}

	return true
}

// postIDFromURL parses the {id} route parameter as an int64.
func postIDFromURL(r *http.Request) (int64, error) {
	return strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
}

// listFilterFromQuery builds a [models.PostFilter] from the request query
// string. Absent limit and offset parameters fall back to the defaults
// (a page of defaultPageLimit posts from the beginning); present but
// non-numeric values are rejected.
func listFilterFromQuery(r *http.Request) (models.PostFilter, error) {
	filter := models.PostFilter{Limit: defaultPageLimit}

	query := r.URL.Query()
	if rawLimit := query.Get("limit"); rawLimit != "" {
		limit, err := strconv.ParseUint(rawLimit, 10, 64)
		if err != nil {
			return models.PostFilter{}, fmt.Errorf("invalid limit parameter: %w", err)
		}
		filter.Limit = limit
	}

	if rawOffset := query.Get("offset"); rawOffset != "" {
		offset, err := strconv.ParseUint(rawOffset, 10, 64)
		if err != nil {
			return models.PostFilter{}, fmt.Errorf("invalid offset parameter: %w", err)
		}
		filter.Offset = offset
	}

	filter.Search = query.Get("search")

	return filter, nil
}
