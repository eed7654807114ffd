package http

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/mzhurov/postboard/internal/app"
	"github.com/mzhurov/postboard/internal/logger"
	"github.com/mzhurov/postboard/internal/service"
	"github.com/mzhurov/postboard/internal/store"
	"github.com/mzhurov/postboard/internal/utils"
	"github.com/mzhurov/postboard/models"
)

func (h *Handler) register(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	var credentials models.Credentials
	if err := json.NewDecoder(r.Body).Decode(&credentials); err != nil {
		log.Err(err).Msg("Invalid JSON was passed")
		apiError(w, app.MsgInvalidRequestBody, http.StatusUnprocessableEntity)
		return
	}

	registeredUser, err := h.services.AuthService.RegisterUser(ctx, credentials)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrInvalidDataProvided):
			log.Err(err).Msg("invalid data provided")
			apiError(w, app.MsgInvalidEmailOrPassword, http.StatusUnprocessableEntity)
			return
		case errors.Is(err, store.ErrEmailAlreadyExists):
			log.Err(err).Msg("email already registered")
			apiError(w, app.MsgEmailAlreadyRegistered, http.StatusConflict)
			return
		default:
			log.Err(err).Msg("unexpected error occurred during user registration")
			apiError(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
			return
		}
	}

	log.Debug().Int64("id", registeredUser.ID).Str("email", registeredUser.Email).Msg("user successfully registered")

	utils.WriteJSON(w, registeredUser, http.StatusCreated)
}

// login authenticates a user and issues a bearer token.
//
// Credentials arrive as a URL-encoded form with "username" and "password"
// fields (the username field carries the account email), matching the OAuth2
// password flow. The response is the standard access-token envelope:
//
//	{"access_token": "<jwt>", "token_type": "bearer"}
func (h *Handler) login(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	if err := r.ParseForm(); err != nil {
		log.Err(err).Msg("invalid form data was passed")
		apiError(w, app.MsgInvalidFormData, http.StatusUnprocessableEntity)
		return
	}

	// A missing field is malformed input; a present-but-empty value still
	// goes through the credential check below.
	if !r.PostForm.Has("username") || !r.PostForm.Has("password") {
		log.Warn().Msg("login form is missing a required field")
		apiError(w, app.MsgUsernameAndPasswordRequired, http.StatusUnprocessableEntity)
		return
	}

	credentials := models.Credentials{
		Email:    r.PostFormValue("username"),
		Password: r.PostFormValue("password"),
	}

	foundUser, err := h.services.AuthService.Login(ctx, credentials)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrWrongCredentials):
			log.Err(err).Msg("wrong credentials")
			apiError(w, app.MsgInvalidCredentials, http.StatusUnauthorized)
			return
		default:
			log.Err(err).Msg("unexpected error occurred during user login")
			apiError(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
			return
		}
	}

	log.Debug().Int64("id", foundUser.ID).Msg("user successfully logged in")

	token, err := h.services.AuthService.CreateToken(ctx, foundUser)
	if err != nil {
		log.Err(err).Msg("creation of token failed")
		apiError(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
		return
	}

	utils.WriteJSON(w, models.TokenResponse{
		AccessToken: token.SignedString,
		TokenType:   "bearer",
	}, http.StatusOK)
}
