package http

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/mzhurov/postboard/internal/service"
	"github.com/mzhurov/postboard/internal/utils"
	"github.com/mzhurov/postboard/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// authProbe returns a next-handler that records whether it was reached and
// which user id the middleware stored in the context.
func authProbe(called *bool, userID *int64) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		*called = true
		if id, ok := utils.GetUserIDFromContext(r.Context()); ok {
			*userID = id
		}
		w.WriteHeader(http.StatusOK)
	})
}

func TestAuth_Success(t *testing.T) {
	auth := &mockAuthService{
		parseTokenFn: func(_ context.Context, tokenString string) (models.Token, error) {
			require.Equal(t, "valid-token", tokenString)
			return models.Token{UserID: 42}, nil
		},
	}
	h := newHandlerWithAuth(t, auth)

	var called bool
	var userID int64
	mw := h.auth(authProbe(&called, &userID))

	req := httptest.NewRequest(http.MethodPost, "/posts", nil)
	req.Header.Set("Authorization", "Bearer valid-token")
	rec := httptest.NewRecorder()

	mw.ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.True(t, called, "next handler must run for a valid token")
	assert.Equal(t, int64(42), userID, "user id from the token must be stored in the context")
}

func TestAuth_MissingHeader(t *testing.T) {
	h := newHandlerWithAuth(t, &mockAuthService{})

	var called bool
	var userID int64
	mw := h.auth(authProbe(&called, &userID))

	req := httptest.NewRequest(http.MethodPost, "/posts", nil)
	rec := httptest.NewRecorder()

	mw.ServeHTTP(rec, req)

	require.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.False(t, called, "next handler must not run without a token")
}

// TestAuth_WrongScheme verifies that a credential under any scheme other than
// Bearer is rejected with 401 before the token parser ever sees it — even
// when the token itself would validate.
func TestAuth_WrongScheme(t *testing.T) {
	var parsed bool
	auth := &mockAuthService{
		parseTokenFn: func(_ context.Context, _ string) (models.Token, error) {
			parsed = true
			return models.Token{UserID: 42}, nil
		},
	}
	h := newHandlerWithAuth(t, auth)

	for _, header := range []string{"Basic valid-token", "Digest valid-token", "Token valid-token"} {
		var called bool
		var userID int64
		mw := h.auth(authProbe(&called, &userID))

		req := httptest.NewRequest(http.MethodPost, "/posts", nil)
		req.Header.Set("Authorization", header)
		rec := httptest.NewRecorder()

		mw.ServeHTTP(rec, req)

		require.Equal(t, http.StatusUnauthorized, rec.Code, "header %q", header)
		assert.False(t, called, "next handler must not run for header %q", header)
		assert.Zero(t, userID)
	}

	assert.False(t, parsed, "the token parser must never see a non-Bearer credential")
}

// TestAuth_SchemeCaseInsensitive verifies that the Bearer scheme is matched
// case-insensitively, as the auth-scheme is per RFC 7235.
func TestAuth_SchemeCaseInsensitive(t *testing.T) {
	auth := &mockAuthService{
		parseTokenFn: func(_ context.Context, tokenString string) (models.Token, error) {
			require.Equal(t, "valid-token", tokenString)
			return models.Token{UserID: 42}, nil
		},
	}
	h := newHandlerWithAuth(t, auth)

	for _, header := range []string{"bearer valid-token", "BEARER valid-token"} {
		var called bool
		var userID int64
		mw := h.auth(authProbe(&called, &userID))

		req := httptest.NewRequest(http.MethodPost, "/posts", nil)
		req.Header.Set("Authorization", header)
		rec := httptest.NewRecorder()

		mw.ServeHTTP(rec, req)

		require.Equal(t, http.StatusOK, rec.Code, "header %q", header)
		assert.True(t, called, "next handler must run for header %q", header)
		assert.Equal(t, int64(42), userID)
	}
}

func TestAuth_InvalidToken(t *testing.T) {
	auth := &mockAuthService{
		parseTokenFn: func(_ context.Context, _ string) (models.Token, error) {
			return models.Token{}, service.ErrTokenIsExpiredOrInvalid
		},
	}
	h := newHandlerWithAuth(t, auth)

	var called bool
	var userID int64
	mw := h.auth(authProbe(&called, &userID))

	req := httptest.NewRequest(http.MethodPost, "/posts", nil)
	req.Header.Set("Authorization", "Bearer expired-token")
	rec := httptest.NewRecorder()

	mw.ServeHTTP(rec, req)

	require.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.False(t, called)
}

// TestAuth_UniformRejectionBody verifies that every rejection path produces
// byte-identical error bodies: callers cannot tell a missing token from a
// malformed or an expired one.
func TestAuth_UniformRejectionBody(t *testing.T) {
	auth := &mockAuthService{
		parseTokenFn: func(_ context.Context, _ string) (models.Token, error) {
			return models.Token{}, service.ErrTokenIsExpiredOrInvalid
		},
	}
	h := newHandlerWithAuth(t, auth)

	headers := []string{
		"",                   // header absent
		"Bearer",             // no token part at all
		"Bearer ",            // token part is empty
		"Bearer bad-token",   // token fails validation
		"Basic dXNlcjpwdw==", // wrong scheme
	}

	var bodies []string
	for _, header := range headers {
		var called bool
		var userID int64
		mw := h.auth(authProbe(&called, &userID))

		req := httptest.NewRequest(http.MethodPost, "/posts", nil)
		if header != "" {
			req.Header.Set("Authorization", header)
		}
		rec := httptest.NewRecorder()

		mw.ServeHTTP(rec, req)

		require.Equal(t, http.StatusUnauthorized, rec.Code, "header %q", header)
		bodies = append(bodies, rec.Body.String())
	}

	for i := 1; i < len(bodies); i++ {
		assert.Equal(t, bodies[0], bodies[i], "rejection bodies must be indistinguishable")
	}
}

// ─────────────────────────────────────────────
// getTokenFromAuthHeader
// ─────────────────────────────────────────────

func Test_getTokenFromAuthHeader(t *testing.T) {
	tests := []struct {
		name      string
		header    string
		wantToken string
		wantErr   error
	}{
		{
			name:      "valid bearer header",
			header:    "Bearer abc.def.ghi",
			wantToken: "abc.def.ghi",
		},
		{
			name:      "lowercase scheme",
			header:    "bearer abc.def.ghi",
			wantToken: "abc.def.ghi",
		},
		{
			name:    "scheme only",
			header:  "Bearer",
			wantErr: ErrInvalidAuthorizationHeader,
		},
		{
			name:    "wrong scheme",
			header:  "Basic abc.def.ghi",
			wantErr: ErrUnsupportedAuthorizationScheme,
		},
		{
			name:    "empty token after scheme",
			header:  "Bearer ",
			wantErr: ErrEmptyToken,
		},
		{
			name:      "extra parts are ignored",
			header:    "Bearer abc extra",
			wantToken: "abc",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			token, err := getTokenFromAuthHeader(tt.header)

			if tt.wantErr != nil {
				require.ErrorIs(t, err, tt.wantErr)
				return
			}

			require.NoError(t, err)
			assert.Equal(t, tt.wantToken, token)
		})
	}
}
