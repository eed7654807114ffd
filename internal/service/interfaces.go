package service

import (
	"context"

	"github.com/mzhurov/postboard/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/service_mock.go -package=mock

type AuthService interface {
	RegisterUser(ctx context.Context, credentials models.Credentials) (models.User, error)
	Login(ctx context.Context, credentials models.Credentials) (models.User, error)
	GetUser(ctx context.Context, id int64) (models.User, error)
	CreateToken(ctx context.Context, user models.User) (models.Token, error)
	ParseToken(ctx context.Context, tokenString string) (models.Token, error)
}

type PostService interface {
	CreatePost(ctx context.Context, ownerID int64, draft models.PostDraft) (models.Post, error)
	GetPost(ctx context.Context, id int64) (models.PostWithVotes, error)
	ListPosts(ctx context.Context, filter models.PostFilter) ([]models.PostWithVotes, error)
	ReplacePost(ctx context.Context, id int64, draft models.PostDraft) (models.Post, error)
	PatchPost(ctx context.Context, id int64, patch models.PostPatch) (models.Post, error)
	DeletePost(ctx context.Context, id int64) error
}

type VoteService interface {
	CastVote(ctx context.Context, vote models.Vote) error
	RetractVote(ctx context.Context, vote models.Vote) error
}
