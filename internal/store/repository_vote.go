package store

import (
	"context"
	"fmt"

	"github.com/jackc/pgerrcode"
	"github.com/mzhurov/postboard/internal/logger"
	"github.com/mzhurov/postboard/models"
)

type voteRepository struct {
	logger *logger.Logger
	db     *DB
}

// NewVoteRepository returns a VoteRepository backed by PostgreSQL.
func NewVoteRepository(db *DB, log *logger.Logger) VoteRepository {
	log.Debug().Msg("creating vote repository")
	return &voteRepository{db: db, logger: log}
}

// CastVote inserts the (user, post) pair. The composite primary key on the
// votes table rejects a second vote by the same user on the same post.
func (r *voteRepository) CastVote(ctx context.Context, vote models.Vote) error {
	log := logger.FromContext(ctx)

	_, err := r.db.session(ctx).ExecContext(ctx, castVote, vote.UserID, vote.PostID)
	if err != nil {
		switch postgresError(err) {
		case pgerrcode.UniqueViolation:
			log.Warn().Str("func", "*voteRepository.CastVote").
				Int64("user_id", vote.UserID).Int64("post_id", vote.PostID).
				Msg("vote already cast")
			return ErrVoteAlreadyCast
		case pgerrcode.ForeignKeyViolation:
			log.Warn().Str("func", "*voteRepository.CastVote").Int64("post_id", vote.PostID).Msg("post does not exist")
			return ErrPostNotFound
		default:
			log.Err(err).Str("func", "*voteRepository.CastVote").Msg("error inserting vote")
			return fmt.Errorf("%w: %w", ErrExecutingQuery, err)
		}
	}

	return nil
}

func (r *voteRepository) RetractVote(ctx context.Context, vote models.Vote) error {
	log := logger.FromContext(ctx)

	res, err := r.db.session(ctx).ExecContext(ctx, retractVote, vote.UserID, vote.PostID)
	if err != nil {
		log.Err(err).Str("func", "*voteRepository.RetractVote").Msg("error deleting vote")
		return fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}

	affected, err := res.RowsAffected()
	if err != nil {
		log.Err(err).Str("func", "*voteRepository.RetractVote").Msg("error reading affected rows")
		return fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	if affected == 0 {
		return ErrVoteNotFound
	}

	return nil
}

// CountVotes returns the number of votes recorded for the post. A post with
// no votes (or no post at all) counts as zero; read endpoints get the same
// number via the aggregate join in the post queries.
func (r *voteRepository) CountVotes(ctx context.Context, postID int64) (int64, error) {
	log := logger.FromContext(ctx)

	var count int64
	err := r.db.session(ctx).QueryRowContext(ctx, countVotes, postID).Scan(&count)
	if err != nil {
		log.Err(err).Str("func", "*voteRepository.CountVotes").Int64("post_id", postID).Msg("error counting votes")
		return 0, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}

	return count, nil
}
