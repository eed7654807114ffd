// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Mikhail Zhurov

package http

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/mzhurov/postboard/internal/logger"
	"github.com/mzhurov/postboard/internal/service"
	"github.com/mzhurov/postboard/internal/store"
	"github.com/mzhurov/postboard/internal/utils"
	"github.com/mzhurov/postboard/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// ─────────────────────────────────────────────
// Mock PostService
// ─────────────────────────────────────────────

// mockPostService implements service.PostService for unit tests.
// Each method field can be overridden per test case.
type mockPostService struct {
	createPostFn  func(ctx context.Context, ownerID int64, draft models.PostDraft) (models.Post, error)
	getPostFn     func(ctx context.Context, id int64) (models.PostWithVotes, error)
	listPostsFn   func(ctx context.Context, filter models.PostFilter) ([]models.PostWithVotes, error)
	replacePostFn func(ctx context.Context, id int64, draft models.PostDraft) (models.Post, error)
	patchPostFn   func(ctx context.Context, id int64, patch models.PostPatch) (models.Post, error)
	deletePostFn  func(ctx context.Context, id int64) error
}

func (m *mockPostService) CreatePost(ctx context.Context, ownerID int64, draft models.PostDraft) (models.Post, error) {
	return m.createPostFn(ctx, ownerID, draft)
}

func (m *mockPostService) GetPost(ctx context.Context, id int64) (models.PostWithVotes, error) {
	return m.getPostFn(ctx, id)
}

func (m *mockPostService) ListPosts(ctx context.Context, filter models.PostFilter) ([]models.PostWithVotes, error) {
	return m.listPostsFn(ctx, filter)
}

func (m *mockPostService) ReplacePost(ctx context.Context, id int64, draft models.PostDraft) (models.Post, error) {
	return m.replacePostFn(ctx, id, draft)
}

func (m *mockPostService) PatchPost(ctx context.Context, id int64, patch models.PostPatch) (models.Post, error) {
	return m.patchPostFn(ctx, id, patch)
}

func (m *mockPostService) DeletePost(ctx context.Context, id int64) error {
	return m.deletePostFn(ctx, id)
}

// ─────────────────────────────────────────────
// Helpers
// ─────────────────────────────────────────────

// newHandlerWithPosts builds a Handler with the given PostService mock.
func newHandlerWithPosts(t *testing.T, posts service.PostService) *Handler {
	t.Helper()
	svcs := &service.Services{
		PostService: posts,
	}
	return NewHandler(svcs, nil, logger.Nop())
}

// asUser stamps the request context with an authenticated user id, the same
// way the auth middleware does after validating a token.
func asUser(req *http.Request, userID int64) *http.Request {
	ctx := context.WithValue(req.Context(), utils.UserIDCtxKey, userID)
	return req.WithContext(ctx)
}

// ownedPost returns a PostWithVotes fixture owned by the given user.
func ownedPost(id, ownerID int64) models.PostWithVotes {
	return models.PostWithVotes{
		Post: models.Post{
			ID:        id,
			Title:     "beach day",
			Content:   "sand everywhere",
			Published: true,
			OwnerID:   ownerID,
		},
		Votes: 3,
	}
}

// ─────────────────────────────────────────────
// listPosts
// ─────────────────────────────────────────────

func TestListPosts_Success(t *testing.T) {
	posts := &mockPostService{
		listPostsFn: func(_ context.Context, _ models.PostFilter) ([]models.PostWithVotes, error) {
			return []models.PostWithVotes{ownedPost(1, 10), ownedPost(2, 20)}, nil
		},
	}

	h := newHandlerWithPosts(t, posts)
	req := httptest.NewRequest(http.MethodGet, "/posts", nil)
	rec := httptest.NewRecorder()

	h.listPosts(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)

	var listed []models.PostWithVotes
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &listed))
	require.Len(t, listed, 2)
	assert.Equal(t, int64(1), listed[0].Post.ID)
	assert.Equal(t, int64(3), listed[0].Votes)
}

// TestListPosts_DefaultFilter verifies that absent query parameters fall back
// to the default page: ten posts from the beginning, no search term.
func TestListPosts_DefaultFilter(t *testing.T) {
	var receivedFilter models.PostFilter
	posts := &mockPostService{
		listPostsFn: func(_ context.Context, filter models.PostFilter) ([]models.PostWithVotes, error) {
			receivedFilter = filter
			return []models.PostWithVotes{}, nil
		},
	}

	h := newHandlerWithPosts(t, posts)
	req := httptest.NewRequest(http.MethodGet, "/posts", nil)
	rec := httptest.NewRecorder()

	h.listPosts(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, models.PostFilter{Search: "", Limit: 10, Offset: 0}, receivedFilter)
}

func TestListPosts_QueryParamsArePassedToFilter(t *testing.T) {
	var receivedFilter models.PostFilter
	posts := &mockPostService{
		listPostsFn: func(_ context.Context, filter models.PostFilter) ([]models.PostWithVotes, error) {
			receivedFilter = filter
			return []models.PostWithVotes{}, nil
		},
	}

	h := newHandlerWithPosts(t, posts)
	req := httptest.NewRequest(http.MethodGet, "/posts?limit=3&offset=6&search=beach", nil)
	rec := httptest.NewRecorder()

	h.listPosts(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, models.PostFilter{Search: "beach", Limit: 3, Offset: 6}, receivedFilter)
}

// TestListPosts_ZeroLimit verifies that an explicit limit=0 is forwarded
// verbatim: the caller asked for an empty page and gets one.
func TestListPosts_ZeroLimit(t *testing.T) {
	var receivedFilter models.PostFilter
	posts := &mockPostService{
		listPostsFn: func(_ context.Context, filter models.PostFilter) ([]models.PostWithVotes, error) {
			receivedFilter = filter
			return []models.PostWithVotes{}, nil
		},
	}

	h := newHandlerWithPosts(t, posts)
	req := httptest.NewRequest(http.MethodGet, "/posts?limit=0", nil)
	rec := httptest.NewRecorder()

	h.listPosts(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, uint64(0), receivedFilter.Limit)
	assert.JSONEq(t, "[]", rec.Body.String())
}

func TestListPosts_InvalidLimit(t *testing.T) {
	h := newHandlerWithPosts(t, &mockPostService{})
	req := httptest.NewRequest(http.MethodGet, "/posts?limit=ten", nil)
	rec := httptest.NewRecorder()

	h.listPosts(rec, req)

	require.Equal(t, http.StatusUnprocessableEntity, rec.Code)
	assert.Equal(t, "invalid pagination parameters", decodeErrorBody(t, rec).Detail)
}

func TestListPosts_InvalidOffset(t *testing.T) {
	h := newHandlerWithPosts(t, &mockPostService{})
	req := httptest.NewRequest(http.MethodGet, "/posts?offset=-5", nil)
	rec := httptest.NewRecorder()

	h.listPosts(rec, req)

	require.Equal(t, http.StatusUnprocessableEntity, rec.Code)
}

// ─────────────────────────────────────────────
// getPost
// ─────────────────────────────────────────────

func TestGetPost_Success(t *testing.T) {
	posts := &mockPostService{
		getPostFn: func(_ context.Context, id int64) (models.PostWithVotes, error) {
			require.Equal(t, int64(5), id)
			return ownedPost(5, 10), nil
		},
	}

	h := newHandlerWithPosts(t, posts)
	req := withURLParamID(httptest.NewRequest(http.MethodGet, "/posts/5", nil), "5")
	rec := httptest.NewRecorder()

	h.getPost(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)

	var found models.PostWithVotes
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &found))
	assert.Equal(t, int64(5), found.Post.ID)
	assert.Equal(t, int64(3), found.Votes)
}

func TestGetPost_NotFound(t *testing.T) {
	posts := &mockPostService{
		getPostFn: func(_ context.Context, _ int64) (models.PostWithVotes, error) {
			return models.PostWithVotes{}, store.ErrPostNotFound
		},
	}

	h := newHandlerWithPosts(t, posts)
	req := withURLParamID(httptest.NewRequest(http.MethodGet, "/posts/404", nil), "404")
	rec := httptest.NewRecorder()

	h.getPost(rec, req)

	require.Equal(t, http.StatusNotFound, rec.Code)
	assert.Equal(t, "post with id: 404 not found", decodeErrorBody(t, rec).Detail)
}

func TestGetPost_InvalidID(t *testing.T) {
	h := newHandlerWithPosts(t, &mockPostService{})
	req := withURLParamID(httptest.NewRequest(http.MethodGet, "/posts/oops", nil), "oops")
	rec := httptest.NewRecorder()

	h.getPost(rec, req)

	require.Equal(t, http.StatusUnprocessableEntity, rec.Code)
}

// ─────────────────────────────────────────────
// createPost
// ─────────────────────────────────────────────

func TestCreatePost_Success(t *testing.T) {
	posts := &mockPostService{
		createPostFn: func(_ context.Context, ownerID int64, draft models.PostDraft) (models.Post, error) {
			require.Equal(t, int64(10), ownerID)
			return models.Post{ID: 1, Title: draft.Title, Content: draft.Content, Published: true, OwnerID: ownerID}, nil
		},
	}

	h := newHandlerWithPosts(t, posts)
	body := `{"title": "beach day", "content": "sand everywhere"}`
	req := asUser(httptest.NewRequest(http.MethodPost, "/posts", strings.NewReader(body)), 10)
	rec := httptest.NewRecorder()

	h.createPost(rec, req)

	require.Equal(t, http.StatusCreated, rec.Code)

	var created models.Post
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &created))
	assert.Equal(t, int64(1), created.ID)
	assert.Equal(t, int64(10), created.OwnerID)
	assert.True(t, created.Published)
}

// TestCreatePost_NoUserInContext calls the handler directly, without the auth
// middleware having stamped a user id into the context.
func TestCreatePost_NoUserInContext(t *testing.T) {
	h := newHandlerWithPosts(t, &mockPostService{})
	req := httptest.NewRequest(http.MethodPost, "/posts", strings.NewReader(`{"title": "x", "content": "y"}`))
	rec := httptest.NewRecorder()

	h.createPost(rec, req)

	require.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestCreatePost_InvalidJSON(t *testing.T) {
	h := newHandlerWithPosts(t, &mockPostService{})
	req := asUser(httptest.NewRequest(http.MethodPost, "/posts", strings.NewReader("{broken")), 10)
	rec := httptest.NewRecorder()

	h.createPost(rec, req)

	require.Equal(t, http.StatusUnprocessableEntity, rec.Code)
}

func TestCreatePost_MissingFields(t *testing.T) {
	posts := &mockPostService{
		createPostFn: func(_ context.Context, _ int64, _ models.PostDraft) (models.Post, error) {
			return models.Post{}, service.ErrInvalidDataProvided
		},
	}

	h := newHandlerWithPosts(t, posts)
	req := asUser(httptest.NewRequest(http.MethodPost, "/posts", strings.NewReader(`{"title": ""}`)), 10)
	rec := httptest.NewRecorder()

	h.createPost(rec, req)

	require.Equal(t, http.StatusUnprocessableEntity, rec.Code)
	assert.Equal(t, "title and content are required", decodeErrorBody(t, rec).Detail)
}

// ─────────────────────────────────────────────
// replacePost — ownership
// ─────────────────────────────────────────────

func TestReplacePost_Success(t *testing.T) {
	posts := &mockPostService{
		getPostFn: func(_ context.Context, id int64) (models.PostWithVotes, error) {
			return ownedPost(id, 10), nil
		},
		replacePostFn: func(_ context.Context, id int64, draft models.PostDraft) (models.Post, error) {
			return models.Post{ID: id, Title: draft.Title, Content: draft.Content, Published: true, OwnerID: 10}, nil
		},
	}

	h := newHandlerWithPosts(t, posts)
	body := `{"title": "new title", "content": "new content"}`
	req := asUser(withURLParamID(httptest.NewRequest(http.MethodPut, "/posts/5", strings.NewReader(body)), "5"), 10)
	rec := httptest.NewRecorder()

	h.replacePost(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)

	var updated models.Post
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &updated))
	assert.Equal(t, "new title", updated.Title)
}

// TestReplacePost_NotOwner verifies that a caller who does not own the post
// gets 403 and that the mutation never reaches the service.
func TestReplacePost_NotOwner(t *testing.T) {
	posts := &mockPostService{
		getPostFn: func(_ context.Context, id int64) (models.PostWithVotes, error) {
			return ownedPost(id, 10), nil
		},
		replacePostFn: func(_ context.Context, _ int64, _ models.PostDraft) (models.Post, error) {
			t.Fatal("ReplacePost should not be called for a foreign post")
			return models.Post{}, nil
		},
	}

	h := newHandlerWithPosts(t, posts)
	body := `{"title": "hijack", "content": "attempt"}`
	req := asUser(withURLParamID(httptest.NewRequest(http.MethodPut, "/posts/5", strings.NewReader(body)), "5"), 99)
	rec := httptest.NewRecorder()

	h.replacePost(rec, req)

	require.Equal(t, http.StatusForbidden, rec.Code)
	assert.Equal(t, "not authorized to perform requested action", decodeErrorBody(t, rec).Detail)
}

// TestReplacePost_MissingPostIs404NotForbidden pins the check order: a post
// that does not exist surfaces as 404 even for a caller who would not have
// owned it.
func TestReplacePost_MissingPostIs404NotForbidden(t *testing.T) {
	posts := &mockPostService{
		getPostFn: func(_ context.Context, _ int64) (models.PostWithVotes, error) {
			return models.PostWithVotes{}, store.ErrPostNotFound
		},
	}

	h := newHandlerWithPosts(t, posts)
	body := `{"title": "x", "content": "y"}`
	req := asUser(withURLParamID(httptest.NewRequest(http.MethodPut, "/posts/77", strings.NewReader(body)), "77"), 99)
	rec := httptest.NewRecorder()

	h.replacePost(rec, req)

	require.Equal(t, http.StatusNotFound, rec.Code)
	assert.Equal(t, "post with id: 77 not found", decodeErrorBody(t, rec).Detail)
}

func TestReplacePost_InvalidJSON(t *testing.T) {
	h := newHandlerWithPosts(t, &mockPostService{})
	req := asUser(withURLParamID(httptest.NewRequest(http.MethodPut, "/posts/5", strings.NewReader("{broken")), "5"), 10)
	rec := httptest.NewRecorder()

	h.replacePost(rec, req)

	require.Equal(t, http.StatusUnprocessableEntity, rec.Code)
}

// ─────────────────────────────────────────────
// patchPost — ownership
// ─────────────────────────────────────────────

func TestPatchPost_Success(t *testing.T) {
	posts := &mockPostService{
		getPostFn: func(_ context.Context, id int64) (models.PostWithVotes, error) {
			return ownedPost(id, 10), nil
		},
		patchPostFn: func(_ context.Context, id int64, patch models.PostPatch) (models.Post, error) {
			require.NotNil(t, patch.Title)
			require.Nil(t, patch.Content)
			return models.Post{ID: id, Title: *patch.Title, Content: "sand everywhere", Published: true, OwnerID: 10}, nil
		},
	}

	h := newHandlerWithPosts(t, posts)
	req := asUser(withURLParamID(httptest.NewRequest(http.MethodPatch, "/posts/5", strings.NewReader(`{"title": "renamed"}`)), "5"), 10)
	rec := httptest.NewRecorder()

	h.patchPost(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)

	var patched models.Post
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &patched))
	assert.Equal(t, "renamed", patched.Title)
	assert.Equal(t, "sand everywhere", patched.Content)
}

func TestPatchPost_NotOwner(t *testing.T) {
	posts := &mockPostService{
		getPostFn: func(_ context.Context, id int64) (models.PostWithVotes, error) {
			return ownedPost(id, 10), nil
		},
		patchPostFn: func(_ context.Context, _ int64, _ models.PostPatch) (models.Post, error) {
			t.Fatal("PatchPost should not be called for a foreign post")
			return models.Post{}, nil
		},
	}

	h := newHandlerWithPosts(t, posts)
	req := asUser(withURLParamID(httptest.NewRequest(http.MethodPatch, "/posts/5", strings.NewReader(`{"title": "hijack"}`)), "5"), 99)
	rec := httptest.NewRecorder()

	h.patchPost(rec, req)

	require.Equal(t, http.StatusForbidden, rec.Code)
}

// ─────────────────────────────────────────────
// deletePost — ownership
// ─────────────────────────────────────────────

func TestDeletePost_Success(t *testing.T) {
	deleted := false
	posts := &mockPostService{
		getPostFn: func(_ context.Context, id int64) (models.PostWithVotes, error) {
			return ownedPost(id, 10), nil
		},
		deletePostFn: func(_ context.Context, id int64) error {
			require.Equal(t, int64(5), id)
			deleted = true
			return nil
		},
	}

	h := newHandlerWithPosts(t, posts)
	req := asUser(withURLParamID(httptest.NewRequest(http.MethodDelete, "/posts/5", nil), "5"), 10)
	rec := httptest.NewRecorder()

	h.deletePost(rec, req)

	require.Equal(t, http.StatusNoContent, rec.Code)
	assert.True(t, deleted)
	assert.Empty(t, rec.Body.String())
}

func TestDeletePost_NotOwner(t *testing.T) {
	posts := &mockPostService{
		getPostFn: func(_ context.Context, id int64) (models.PostWithVotes, error) {
			return ownedPost(id, 10), nil
		},
		deletePostFn: func(_ context.Context, _ int64) error {
			t.Fatal("DeletePost should not be called for a foreign post")
			return nil
		},
	}

	h := newHandlerWithPosts(t, posts)
	req := asUser(withURLParamID(httptest.NewRequest(http.MethodDelete, "/posts/5", nil), "5"), 99)
	rec := httptest.NewRecorder()

	h.deletePost(rec, req)

	require.Equal(t, http.StatusForbidden, rec.Code)
}

func TestDeletePost_NotFound(t *testing.T) {
	posts := &mockPostService{
		getPostFn: func(_ context.Context, _ int64) (models.PostWithVotes, error) {
			return models.PostWithVotes{}, store.ErrPostNotFound
		},
	}

	h := newHandlerWithPosts(t, posts)
	req := asUser(withURLParamID(httptest.NewRequest(http.MethodDelete, "/posts/123", nil), "123"), 10)
	rec := httptest.NewRecorder()

	h.deletePost(rec, req)

	require.Equal(t, http.StatusNotFound, rec.Code)
}
