package http

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/mzhurov/postboard/internal/store"
	"github.com/mzhurov/postboard/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// withURLParamID injects a chi route context carrying the {id} parameter, so
// handlers can be exercised directly without standing up a router.
func withURLParamID(req *http.Request, id string) *http.Request {
	rctx := chi.NewRouteContext()
	rctx.URLParams.Add("id", id)
	return req.WithContext(context.WithValue(req.Context(), chi.RouteCtxKey, rctx))
}

// ─────────────────────────────────────────────
// getUser
// ─────────────────────────────────────────────

func TestGetUser_Success(t *testing.T) {
	auth := &mockAuthService{
		getUserFn: func(_ context.Context, id int64) (models.User, error) {
			require.Equal(t, int64(7), id)
			return models.User{ID: 7, Email: "bob@example.com"}, nil
		},
	}

	h := newHandlerWithAuth(t, auth)
	req := withURLParamID(httptest.NewRequest(http.MethodGet, "/users/7", nil), "7")
	rec := httptest.NewRecorder()

	h.getUser(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)

	var found models.User
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &found))
	assert.Equal(t, int64(7), found.ID)
	assert.Equal(t, "bob@example.com", found.Email)
}

func TestGetUser_NotFound(t *testing.T) {
	auth := &mockAuthService{
		getUserFn: func(_ context.Context, _ int64) (models.User, error) {
			return models.User{}, store.ErrNoUserWasFound
		},
	}

	h := newHandlerWithAuth(t, auth)
	req := withURLParamID(httptest.NewRequest(http.MethodGet, "/users/99", nil), "99")
	rec := httptest.NewRecorder()

	h.getUser(rec, req)

	require.Equal(t, http.StatusNotFound, rec.Code)
	assert.Equal(t, "user with id: 99 not found", decodeErrorBody(t, rec).Detail)
}

func TestGetUser_InvalidID(t *testing.T) {
	h := newHandlerWithAuth(t, &mockAuthService{})
	req := withURLParamID(httptest.NewRequest(http.MethodGet, "/users/abc", nil), "abc")
	rec := httptest.NewRecorder()

	h.getUser(rec, req)

	require.Equal(t, http.StatusUnprocessableEntity, rec.Code)
	assert.Equal(t, "invalid user id", decodeErrorBody(t, rec).Detail)
}
