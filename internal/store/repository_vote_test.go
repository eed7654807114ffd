// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Mikhail Zhurov

package store

import (
	"context"
	"database/sql"
	"errors"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/jackc/pgerrcode"
	"github.com/mzhurov/postboard/internal/logger"
	"github.com/mzhurov/postboard/models"
)

func newTestVoteRepo(t *testing.T) (*voteRepository, sqlmock.Sqlmock, *sql.DB) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("failed to create sqlmock: %v", err)
	}
	l := logger.NewLogger("test")
	repo := &voteRepository{
		db:     &DB{DB: db, logger: l},
		logger: l,
	}
	return repo, mock, db
}

func TestCastVote_Success(t *testing.T) {
	repo, mock, db := newTestVoteRepo(t)
	defer db.Close()

	ctx := context.Background()
	vote := models.Vote{UserID: 1, PostID: 7}

	mock.ExpectExec("INSERT INTO votes").
		WithArgs(vote.UserID, vote.PostID).
		WillReturnResult(sqlmock.NewResult(0, 1))

	if err := repo.CastVote(ctx, vote); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
}

func TestCastVote_AlreadyCast(t *testing.T) {
	repo, mock, db := newTestVoteRepo(t)
	defer db.Close()

	ctx := context.Background()
	vote := models.Vote{UserID: 1, PostID: 7}

	// composite primary key (user_id, post_id) raises a unique violation
	mock.ExpectExec("INSERT INTO votes").
		WithArgs(vote.UserID, vote.PostID).
		WillReturnError(pgError(pgerrcode.UniqueViolation))

	err := repo.CastVote(ctx, vote)
	if !errors.Is(err, ErrVoteAlreadyCast) {
		t.Fatalf("expected ErrVoteAlreadyCast, got %v", err)
	}
}

func TestCastVote_PostMissing(t *testing.T) {
	repo, mock, db := newTestVoteRepo(t)
	defer db.Close()

	ctx := context.Background()
	vote := models.Vote{UserID: 1, PostID: 404}

	mock.ExpectExec("INSERT INTO votes").
		WithArgs(vote.UserID, vote.PostID).
		WillReturnError(pgError(pgerrcode.ForeignKeyViolation))

	err := repo.CastVote(ctx, vote)
	if !errors.Is(err, ErrPostNotFound) {
		t.Fatalf("expected ErrPostNotFound, got %v", err)
	}
}

func TestCastVote_UnexpectedError(t *testing.T) {
	repo, mock, db := newTestVoteRepo(t)
	defer db.Close()

	ctx := context.Background()
	vote := models.Vote{UserID: 1, PostID: 7}

	mock.ExpectExec("INSERT INTO votes").
		WillReturnError(errors.New("db failure"))

	err := repo.CastVote(ctx, vote)
	if !errors.Is(err, ErrExecutingQuery) {
		t.Fatalf("expected wrapped ErrExecutingQuery, got %v", err)
	}
}

func TestRetractVote_Success(t *testing.T) {
	repo, mock, db := newTestVoteRepo(t)
	defer db.Close()

	ctx := context.Background()
	vote := models.Vote{UserID: 1, PostID: 7}

	mock.ExpectExec("DELETE FROM votes").
		WithArgs(vote.UserID, vote.PostID).
		WillReturnResult(sqlmock.NewResult(0, 1))

	if err := repo.RetractVote(ctx, vote); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
}

func TestRetractVote_NotFound(t *testing.T) {
	repo, mock, db := newTestVoteRepo(t)
	defer db.Close()

	ctx := context.Background()
	vote := models.Vote{UserID: 1, PostID: 7}

	mock.ExpectExec("DELETE FROM votes").
		WithArgs(vote.UserID, vote.PostID).
		WillReturnResult(sqlmock.NewResult(0, 0))

	err := repo.RetractVote(ctx, vote)
	if !errors.Is(err, ErrVoteNotFound) {
		t.Fatalf("expected ErrVoteNotFound, got %v", err)
	}
}

func TestCountVotes_Success(t *testing.T) {
	repo, mock, db := newTestVoteRepo(t)
	defer db.Close()

	ctx := context.Background()

	mock.ExpectQuery("SELECT COUNT").
		WithArgs(int64(7)).
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(3))

	count, err := repo.CountVotes(ctx, 7)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if count != 3 {
		t.Fatalf("expected 3 votes, got %d", count)
	}
}

func TestCountVotes_NoRows(t *testing.T) {
	repo, mock, db := newTestVoteRepo(t)
	defer db.Close()

	ctx := context.Background()

	// COUNT(*) returns a single row even for an unknown post
	mock.ExpectQuery("SELECT COUNT").
		WithArgs(int64(404)).
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(0))

	count, err := repo.CountVotes(ctx, 404)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if count != 0 {
		t.Fatalf("expected 0 votes, got %d", count)
	}
}

func TestCountVotes_QueryError(t *testing.T) {
	repo, mock, db := newTestVoteRepo(t)
	defer db.Close()

	ctx := context.Background()

	mock.ExpectQuery("SELECT COUNT").
		WillReturnError(errors.New("db failure"))

	_, err := repo.CountVotes(ctx, 7)
	if !errors.Is(err, ErrExecutingQuery) {
		t.Fatalf("expected wrapped ErrExecutingQuery, got %v", err)
	}
}
