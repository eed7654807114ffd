// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Mikhail Zhurov

package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/jackc/pgerrcode"
	"github.com/mzhurov/postboard/internal/logger"
	"github.com/mzhurov/postboard/models"
)

type postRepository struct {
	logger *logger.Logger
	db     *DB
}

// NewPostRepository returns a PostRepository backed by PostgreSQL.
func NewPostRepository(db *DB, log *logger.Logger) PostRepository {
	log.Debug().Msg("creating post repository")
	return &postRepository{db: db, logger: log}
}

func (r *postRepository) CreatePost(ctx context.Context, post models.Post) (models.Post, error) {
	log := logger.FromContext(ctx)

	row := r.db.session(ctx).QueryRowContext(ctx, createPost, post.Title, post.Content, post.Published, post.OwnerID)
	if err := row.Err(); err != nil {
		switch postgresError(err) {
		case pgerrcode.ForeignKeyViolation:
			log.Warn().Str("func", "*postRepository.CreatePost").Int64("owner_id", post.OwnerID).Msg("post owner does not exist")
			return models.Post{}, ErrNoUserWasFound
		default:
			log.Err(err).Str("func", "*postRepository.CreatePost").Msg("error inserting post")
			return models.Post{}, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
		}
	}

	var created models.Post
	err := row.Scan(&created.ID, &created.Title, &created.Content, &created.Published, &created.OwnerID, &created.CreatedAt)
	if err != nil {
		log.Err(err).Str("func", "*postRepository.CreatePost").Msg("error scanning created post")
		return models.Post{}, fmt.Errorf("%w: %w", ErrScanningRow, err)
	}

	return created, nil
}

func (r *postRepository) GetPost(ctx context.Context, id int64) (models.PostWithVotes, error) {
	log := logger.FromContext(ctx)

	row := r.db.session(ctx).QueryRowContext(ctx, getPostWithVotes, id)
	if err := row.Err(); err != nil {
		log.Err(err).Str("func", "*postRepository.GetPost").Msg("error querying post")
		return models.PostWithVotes{}, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}

	var item models.PostWithVotes
	var owner models.User
	err := row.Scan(
		&item.Post.ID, &item.Post.Title, &item.Post.Content, &item.Post.Published, &item.Post.OwnerID, &item.Post.CreatedAt,
		&owner.Email, &owner.CreatedAt,
		&item.Votes,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return models.PostWithVotes{}, ErrPostNotFound
		}
		log.Err(err).Str("func", "*postRepository.GetPost").Msg("error scanning post")
		return models.PostWithVotes{}, fmt.Errorf("%w: %w", ErrScanningRow, err)
	}

	owner.ID = item.Post.OwnerID
	item.Post.Owner = &owner

	return item, nil
}

func (r *postRepository) ListPosts(ctx context.Context, filter models.PostFilter) ([]models.PostWithVotes, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildListPostsQuery(filter)
	if err != nil {
		log.Err(err).Str("func", "*postRepository.ListPosts").Msg("error building list query")
		return nil, err
	}

	rows, err := r.db.session(ctx).QueryContext(ctx, query, args...)
	if err != nil {
		log.Err(err).Str("func", "*postRepository.ListPosts").Msg("error querying posts")
		return nil, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	defer func() {
		if closeErr := rows.Close(); closeErr != nil {
			log.Err(closeErr).Str("func", "*postRepository.ListPosts").Msg("error closing rows")
		}
	}()

	items := make([]models.PostWithVotes, 0)
	for rows.Next() {
		var item models.PostWithVotes
		var owner models.User
		err = rows.Scan(
			&item.Post.ID, &item.Post.Title, &item.Post.Content, &item.Post.Published, &item.Post.OwnerID, &item.Post.CreatedAt,
			&owner.Email, &owner.CreatedAt,
			&item.Votes,
		)
		if err != nil {
			log.Err(err).Str("func", "*postRepository.ListPosts").Msg("error scanning post row")
			return nil, fmt.Errorf("%w: %w", ErrScanningRow, err)
		}

		owner.ID = item.Post.OwnerID
		item.Post.Owner = &owner
		items = append(items, item)
	}
	if err = rows.Err(); err != nil {
		log.Err(err).Str("func", "*postRepository.ListPosts").Msg("error iterating post rows")
		return nil, fmt.Errorf("%w: %w", ErrScanningRows, err)
	}

	return items, nil
}

func (r *postRepository) ReplacePost(ctx context.Context, post models.Post) (models.Post, error) {
	log := logger.FromContext(ctx)

	row := r.db.session(ctx).QueryRowContext(ctx, replacePost, post.Title, post.Content, post.Published, post.ID)
	if err := row.Err(); err != nil {
		log.Err(err).Str("func", "*postRepository.ReplacePost").Msg("error updating post")
		return models.Post{}, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}

	var updated models.Post
	err := row.Scan(&updated.ID, &updated.Title, &updated.Content, &updated.Published, &updated.OwnerID, &updated.CreatedAt)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return models.Post{}, ErrPostNotFound
		}
		log.Err(err).Str("func", "*postRepository.ReplacePost").Msg("error scanning updated post")
		return models.Post{}, fmt.Errorf("%w: %w", ErrScanningRow, err)
	}

	return updated, nil
}

func (r *postRepository) PatchPost(ctx context.Context, id int64, patch models.PostPatch) (models.Post, error) {
	log := logger.FromContext(ctx)

	// An empty patch changes nothing: read the current row instead of
	// issuing an UPDATE with no SET clauses.
	if patch.IsEmpty() {
		row := r.db.session(ctx).QueryRowContext(ctx, getPost, id)
		if err := row.Err(); err != nil {
			log.Err(err).Str("func", "*postRepository.PatchPost").Msg("error querying post")
			return models.Post{}, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
		}

		var current models.Post
		err := row.Scan(&current.ID, &current.Title, &current.Content, &current.Published, &current.OwnerID, &current.CreatedAt)
		if err != nil {
			if errors.Is(err, sql.ErrNoRows) {
				return models.Post{}, ErrPostNotFound
			}
			log.Err(err).Str("func", "*postRepository.PatchPost").Msg("error scanning post")
			return models.Post{}, fmt.Errorf("%w: %w", ErrScanningRow, err)
		}

		return current, nil
	}

	query, args, err := buildPatchPostQuery(id, patch)
	if err != nil {
		log.Err(err).Str("func", "*postRepository.PatchPost").Msg("error building patch query")
		return models.Post{}, err
	}

	row := r.db.session(ctx).QueryRowContext(ctx, query, args...)
	if err = row.Err(); err != nil {
		log.Err(err).Str("func", "*postRepository.PatchPost").Msg("error updating post")
		return models.Post{}, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}

	var updated models.Post
	err = row.Scan(&updated.ID, &updated.Title, &updated.Content, &updated.Published, &updated.OwnerID, &updated.CreatedAt)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return models.Post{}, ErrPostNotFound
		}
		log.Err(err).Str("func", "*postRepository.PatchPost").Msg("error scanning updated post")
		return models.Post{}, fmt.Errorf("%w: %w", ErrScanningRow, err)
	}

	return updated, nil
}

func (r *postRepository) DeletePost(ctx context.Context, id int64) error {
	log := logger.FromContext(ctx)

	res, err := r.db.session(ctx).ExecContext(ctx, deletePost, id)
	if err != nil {
		log.Err(err).Str("func", "*postRepository.DeletePost").Msg("error deleting post")
		return fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}

	affected, err := res.RowsAffected()
	if err != nil {
		log.Err(err).Str("func", "*postRepository.DeletePost").Msg("error reading affected rows")
		return fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	if affected == 0 {
		return ErrPostNotFound
	}

	return nil
}
