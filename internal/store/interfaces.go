package store

import (
	"context"

	"github.com/mzhurov/postboard/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/store_mock.go -package=mock

// UserRepository persists and looks up user accounts.
type UserRepository interface {
	CreateUser(ctx context.Context, user models.User) (models.User, error)
	FindUserByEmail(ctx context.Context, email string) (models.User, error)
	FindUserByID(ctx context.Context, id int64) (models.User, error)
}

// PostRepository persists posts and reads them back enriched with their
// author and vote count.
type PostRepository interface {
	CreatePost(ctx context.Context, post models.Post) (models.Post, error)
	GetPost(ctx context.Context, id int64) (models.PostWithVotes, error)
	ListPosts(ctx context.Context, filter models.PostFilter) ([]models.PostWithVotes, error)
	ReplacePost(ctx context.Context, post models.Post) (models.Post, error)
	PatchPost(ctx context.Context, id int64, patch models.PostPatch) (models.Post, error)
	DeletePost(ctx context.Context, id int64) error
}

// VoteRepository records which users voted on which posts.
type VoteRepository interface {
	CastVote(ctx context.Context, vote models.Vote) error
	RetractVote(ctx context.Context, vote models.Vote) error
	CountVotes(ctx context.Context, postID int64) (int64, error)
}
