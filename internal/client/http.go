package client

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"sync"

	"github.com/go-resty/resty/v2"
	"github.com/mzhurov/postboard/internal/config"
	"github.com/mzhurov/postboard/internal/logger"
	"github.com/mzhurov/postboard/internal/utils"
	"github.com/mzhurov/postboard/models"
)

type httpServerAPI struct {
	client *utils.HTTPClient

	mu    sync.RWMutex
	token string

	logger *logger.Logger
}

// NewHTTPServerAPI constructs an HTTP/REST implementation of [ServerAPI].
// It normalises and validates the base URL from cfg.ServerURL and configures
// the underlying HTTP client with the resolved base URL and request timeout.
//
// Returns an error if cfg.ServerURL is empty or cannot be parsed as a valid
// URL.
func NewHTTPServerAPI(cfg config.ClientAPI, logger *logger.Logger) (ServerAPI, error) {
	client := utils.NewHTTPClient()
	baseURL, err := normalizeBaseURL(cfg.ServerURL)
	if err != nil {
		return nil, fmt.Errorf("invalid client server url: %w", err)
	}

	client.
		SetBaseURL(baseURL).
		SetTimeout(cfg.RequestTimeout)

	return &httpServerAPI{client: client, logger: logger}, nil
}

func normalizeBaseURL(raw string) (string, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return "", fmt.Errorf("empty address")
	}

	if !strings.Contains(raw, "://") {
		raw = "http://" + raw
	}

	u, err := url.Parse(raw)
	if err != nil {
		return "", err
	}
	if u.Scheme == "" || u.Host == "" {
		return "", fmt.Errorf("address must include host and scheme")
	}

	return strings.TrimRight(u.String(), "/"), nil
}

// SetToken implements [ServerAPI]. It stores token (whitespace-trimmed) for
// use in the Authorization header of all subsequent authenticated requests.
func (h *httpServerAPI) SetToken(token string) {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.token = strings.TrimSpace(token)
}

// Token implements [ServerAPI]. It returns the bearer token currently held,
// or an empty string if none has been set.
func (h *httpServerAPI) Token() string {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return h.token
}

// Register implements [ServerAPI]. It POSTs the credentials to POST /users
// and decodes the created account from the response body. Registration does
// not log the user in; a separate Login call is required to obtain a token.
func (h *httpServerAPI) Register(ctx context.Context, credentials models.Credentials) (models.User, error) {
	var created models.User

	resp, err := h.client.R().
		SetContext(ctx).
		SetHeader("Content-Type", "application/json").
		SetBody(credentials).
		SetResult(&created).
		Post("/users")
	if err != nil {
		return models.User{}, fmt.Errorf("register request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.User{}, err
	}

	return created, nil
}

// Login implements [ServerAPI]. It submits the credentials as the standard
// username/password form to POST /login and decodes the access-token
// envelope. On success the bearer token is stored via SetToken and returned
// together with the user id parsed from the token's subject claim.
func (h *httpServerAPI) Login(ctx context.Context, credentials models.Credentials) (models.Session, error) {
	var tokenResponse models.TokenResponse

	resp, err := h.client.R().
		SetContext(ctx).
		SetFormData(map[string]string{
			"username": credentials.Email,
			"password": credentials.Password,
		}).
		SetResult(&tokenResponse).
		Post("/login")
	if err != nil {
		return models.Session{}, fmt.Errorf("login request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.Session{}, err
	}

	// The client has no sign key, so the subject claim is read without
	// verifying the signature; the server re-validates the token on every
	// request anyway.
	userID, err := utils.ParseUserIDFromJWT(tokenResponse.AccessToken)
	if err != nil {
		return models.Session{}, fmt.Errorf("login parse user id: %w", err)
	}

	h.SetToken(tokenResponse.AccessToken)

	return models.Session{UserID: userID, Token: tokenResponse.AccessToken}, nil
}

// ListPosts implements [ServerAPI]. It GETs /posts with the filter encoded
// as query parameters and decodes the returned page.
func (h *httpServerAPI) ListPosts(ctx context.Context, filter models.PostFilter) ([]models.PostWithVotes, error) {
	req := h.client.R().
		SetContext(ctx).
		SetQueryParam("limit", strconv.FormatUint(filter.Limit, 10)).
		SetQueryParam("offset", strconv.FormatUint(filter.Offset, 10))
	if filter.Search != "" {
		req.SetQueryParam("search", filter.Search)
	}

	resp, err := req.Get("/posts")
	if err != nil {
		return nil, fmt.Errorf("list posts request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return nil, err
	}

	var items []models.PostWithVotes
	if err = json.Unmarshal(resp.Body(), &items); err != nil {
		return nil, fmt.Errorf("decode list posts response: %w", err)
	}

	return items, nil
}

// GetPost implements [ServerAPI].
func (h *httpServerAPI) GetPost(ctx context.Context, id int64) (models.PostWithVotes, error) {
	var item models.PostWithVotes

	resp, err := h.client.R().
		SetContext(ctx).
		SetResult(&item).
		Get(fmt.Sprintf("/posts/%d", id))
	if err != nil {
		return models.PostWithVotes{}, fmt.Errorf("get post request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.PostWithVotes{}, err
	}

	return item, nil
}

// CreatePost implements [ServerAPI]. Requires a valid bearer token.
func (h *httpServerAPI) CreatePost(ctx context.Context, draft models.PostDraft) (models.Post, error) {
	var created models.Post

	resp, err := h.authedRequest(ctx).
		SetHeader("Content-Type", "application/json").
		SetBody(draft).
		SetResult(&created).
		Post("/posts")
	if err != nil {
		return models.Post{}, fmt.Errorf("create post request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.Post{}, err
	}

	return created, nil
}

// ReplacePost implements [ServerAPI]. Requires a valid bearer token.
func (h *httpServerAPI) ReplacePost(ctx context.Context, id int64, draft models.PostDraft) (models.Post, error) {
	var updated models.Post

	resp, err := h.authedRequest(ctx).
		SetHeader("Content-Type", "application/json").
		SetBody(draft).
		SetResult(&updated).
		Put(fmt.Sprintf("/posts/%d", id))
	if err != nil {
		return models.Post{}, fmt.Errorf("replace post request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.Post{}, err
	}

	return updated, nil
}

// PatchPost implements [ServerAPI]. Requires a valid bearer token.
func (h *httpServerAPI) PatchPost(ctx context.Context, id int64, patch models.PostPatch) (models.Post, error) {
	var patched models.Post

	resp, err := h.authedRequest(ctx).
		SetHeader("Content-Type", "application/json").
		SetBody(patch).
		SetResult(&patched).
		Patch(fmt.Sprintf("/posts/%d", id))
	if err != nil {
		return models.Post{}, fmt.Errorf("patch post request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.Post{}, err
	}

	return patched, nil
}

// DeletePost implements [ServerAPI]. Requires a valid bearer token.
func (h *httpServerAPI) DeletePost(ctx context.Context, id int64) error {
	resp, err := h.authedRequest(ctx).
		Delete(fmt.Sprintf("/posts/%d", id))
	if err != nil {
		return fmt.Errorf("delete post request: %w", err)
	}

	return mapHTTPError(resp)
}

// CastVote implements [ServerAPI]. Requires a valid bearer token. Returns
// [ErrConflict] (wrapped) when the vote has already been cast.
func (h *httpServerAPI) CastVote(ctx context.Context, postID int64) error {
	resp, err := h.authedRequest(ctx).
		Post(fmt.Sprintf("/posts/%d/votes", postID))
	if err != nil {
		return fmt.Errorf("cast vote request: %w", err)
	}

	return mapHTTPError(resp)
}

// RetractVote implements [ServerAPI]. Requires a valid bearer token.
func (h *httpServerAPI) RetractVote(ctx context.Context, postID int64) error {
	resp, err := h.authedRequest(ctx).
		Delete(fmt.Sprintf("/posts/%d/votes", postID))
	if err != nil {
		return fmt.Errorf("retract vote request: %w", err)
	}

	return mapHTTPError(resp)
}

func (h *httpServerAPI) authedRequest(ctx context.Context) *resty.Request {
	req := h.client.R().SetContext(ctx)
	if token := h.Token(); token != "" {
		req.SetHeader("Authorization", "Bearer "+token)
	}
	return req
}

// mapHTTPError converts a non-2xx response into one of the package sentinel
// errors, attaching the server's detail message when the uniform error body
// can be decoded.
func mapHTTPError(resp *resty.Response) error {
	if resp.StatusCode() >= http.StatusOK && resp.StatusCode() < http.StatusMultipleChoices {
		return nil
	}

	detail := detailFromBody(resp.Body())
	if detail == "" {
		detail = http.StatusText(resp.StatusCode())
	}

	switch resp.StatusCode() {
	case http.StatusUnauthorized:
		return fmt.Errorf("%w: %s", ErrUnauthorized, detail)
	case http.StatusForbidden:
		return fmt.Errorf("%w: %s", ErrForbidden, detail)
	case http.StatusNotFound:
		return fmt.Errorf("%w: %s", ErrNotFound, detail)
	case http.StatusConflict:
		return fmt.Errorf("%w: %s", ErrConflict, detail)
	case http.StatusUnprocessableEntity:
		return fmt.Errorf("%w: %s", ErrValidation, detail)
	case http.StatusInternalServerError:
		return fmt.Errorf("%w: %s", ErrInternalServerError, detail)
	default:
		return fmt.Errorf("http %d: %s", resp.StatusCode(), detail)
	}
}

// detailFromBody extracts the "detail" field from the uniform JSON error
// body. Returns an empty string when the body has a different shape.
func detailFromBody(body []byte) string {
	var errorResponse models.ErrorResponse
	if err := json.Unmarshal(body, &errorResponse); err != nil {
		return strings.TrimSpace(string(body))
	}

	return strings.TrimSpace(errorResponse.Detail)
}
