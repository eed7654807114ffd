// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Mikhail Zhurov

package client

import (
	"context"

	"github.com/mzhurov/postboard/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/server_api_mock.go -package=mock

// ServerAPI defines transport-agnostic communication with the postboard
// server. Implementations are responsible for serialisation, authentication
// header management, and mapping transport-level errors to the sentinel
// values defined in this package.
type ServerAPI interface {
	// SetToken stores the bearer token that will be attached to all
	// subsequent authenticated requests. It is called with the restored
	// session token before an authenticated command runs.
	SetToken(token string)

	// Token returns the bearer token currently stored, or an empty string
	// if no token has been set yet.
	Token() string

	// Register creates a new account and returns the created user record.
	Register(ctx context.Context, credentials models.Credentials) (models.User, error)

	// Login exchanges credentials for a bearer token. On success the token
	// is stored via SetToken and returned together with the user id parsed
	// from the token's subject claim.
	Login(ctx context.Context, credentials models.Credentials) (models.Session, error)

	// ListPosts fetches a page of posts with their vote counts.
	ListPosts(ctx context.Context, filter models.PostFilter) ([]models.PostWithVotes, error)

	// GetPost fetches a single post with its vote count.
	GetPost(ctx context.Context, id int64) (models.PostWithVotes, error)

	// CreatePost publishes a new post owned by the logged-in user.
	CreatePost(ctx context.Context, draft models.PostDraft) (models.Post, error)

	// ReplacePost fully replaces the client-supplied fields of a post.
	ReplacePost(ctx context.Context, id int64, draft models.PostDraft) (models.Post, error)

	// PatchPost updates only the provided fields of a post.
	PatchPost(ctx context.Context, id int64, patch models.PostPatch) (models.Post, error)

	// DeletePost removes a post.
	DeletePost(ctx context.Context, id int64) error

	// CastVote records the logged-in user's vote for a post.
	CastVote(ctx context.Context, postID int64) error

	// RetractVote removes the logged-in user's vote from a post.
	RetractVote(ctx context.Context, postID int64) error
}

// Client defines the minimal lifecycle contract for runnable client
// applications.
type Client interface {
	// Run executes a single CLI command and returns its error, if any.
	Run(ctx context.Context, args []string) error
}
