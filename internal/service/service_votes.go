package service

import (
	"context"

	"github.com/mzhurov/postboard/internal/logger"
	"github.com/mzhurov/postboard/internal/store"
	"github.com/mzhurov/postboard/models"
)

type voteService struct {
	voteRepository store.VoteRepository

	logger *logger.Logger
}

func NewVoteService(voteRepository store.VoteRepository, logger *logger.Logger) VoteService {
	return &voteService{
		voteRepository: voteRepository,
		logger:         logger,
	}
}

// CastVote records a vote. Duplicate casts surface as
// store.ErrVoteAlreadyCast, enforced by the storage layer's composite key
// rather than a read-then-write check.
func (v *voteService) CastVote(ctx context.Context, vote models.Vote) error {
	return v.voteRepository.CastVote(ctx, vote)
}

func (v *voteService) RetractVote(ctx context.Context, vote models.Vote) error {
	return v.voteRepository.RetractVote(ctx, vote)
}
