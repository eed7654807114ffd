package service

import (
	"context"
	"fmt"

	"github.com/mzhurov/postboard/internal/logger"
	"github.com/mzhurov/postboard/internal/store"
	"github.com/mzhurov/postboard/models"
)

type postService struct {
	postRepository store.PostRepository

	logger *logger.Logger
}

func NewPostService(postRepository store.PostRepository, logger *logger.Logger) PostService {
	return &postService{
		postRepository: postRepository,
		logger:         logger,
	}
}

// CreatePost validates the draft and persists a new post owned by ownerID.
// A draft without an explicit published flag is published.
func (p *postService) CreatePost(ctx context.Context, ownerID int64, draft models.PostDraft) (models.Post, error) {
	log := logger.FromContext(ctx)

	if draft.Title == "" || draft.Content == "" {
		log.Error().Int64("owner_id", ownerID).Msg("invalid post data provided")
		return models.Post{}, ErrInvalidDataProvided
	}

	created, err := p.postRepository.CreatePost(ctx, models.Post{
		Title:     draft.Title,
		Content:   draft.Content,
		Published: draft.PublishedOrDefault(),
		OwnerID:   ownerID,
	})
	if err != nil {
		log.Err(err).Int64("owner_id", ownerID).Msg("post creation ended with error")
		return models.Post{}, fmt.Errorf("post creation ended with error: %w", err)
	}

	return created, nil
}

func (p *postService) GetPost(ctx context.Context, id int64) (models.PostWithVotes, error) {
	return p.postRepository.GetPost(ctx, id)
}

func (p *postService) ListPosts(ctx context.Context, filter models.PostFilter) ([]models.PostWithVotes, error) {
	return p.postRepository.ListPosts(ctx, filter)
}

// ReplacePost validates the draft and overwrites every client-controlled
// field of the post. The owner and creation time are not touched.
func (p *postService) ReplacePost(ctx context.Context, id int64, draft models.PostDraft) (models.Post, error) {
	log := logger.FromContext(ctx)

	if draft.Title == "" || draft.Content == "" {
		log.Error().Int64("id", id).Msg("invalid post data provided")
		return models.Post{}, ErrInvalidDataProvided
	}

	updated, err := p.postRepository.ReplacePost(ctx, models.Post{
		ID:        id,
		Title:     draft.Title,
		Content:   draft.Content,
		Published: draft.PublishedOrDefault(),
	})
	if err != nil {
		return models.Post{}, err
	}

	return updated, nil
}

func (p *postService) PatchPost(ctx context.Context, id int64, patch models.PostPatch) (models.Post, error) {
	return p.postRepository.PatchPost(ctx, id, patch)
}

func (p *postService) DeletePost(ctx context.Context, id int64) error {
	return p.postRepository.DeletePost(ctx, id)
}
