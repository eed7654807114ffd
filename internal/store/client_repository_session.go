package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/mzhurov/postboard/internal/logger"
	"github.com/mzhurov/postboard/models"
)

type sessionRepository struct {
	*DB
	logger *logger.Logger
}

// NewSessionRepository returns a SessionRepository backed by the local
// SQLite database. The session table holds at most one row.
func NewSessionRepository(db *DB, logger *logger.Logger) SessionRepository {
	return &sessionRepository{
		DB:     db,
		logger: logger,
	}
}

func (s *sessionRepository) SaveSession(ctx context.Context, session models.Session) error {
	log := logger.FromContext(ctx)

	_, err := s.DB.ExecContext(ctx, saveSession,
		session.UserID,
		session.Token,
		session.ServerURL,
		session.CreatedAt,
	)
	if err != nil {
		log.Err(err).
			Str("func", "sessionRepository.SaveSession").
			Int64("user_id", session.UserID).
			Msg("failed to save session")
		return fmt.Errorf("failed to save session: %w", err)
	}

	return nil
}

func (s *sessionRepository) GetSession(ctx context.Context) (models.Session, error) {
	log := logger.FromContext(ctx)

	var session models.Session
	row := s.DB.QueryRowContext(ctx, getSession)
	if row.Err() != nil {
		err := row.Err()
		log.Err(err).
			Str("func", "sessionRepository.GetSession").
			Msg("failed to execute query for getting saved session")
		return models.Session{}, fmt.Errorf("failed to query saved session: %w", err)
	}

	scanErr := row.Scan(
		&session.UserID,
		&session.Token,
		&session.ServerURL,
		&session.CreatedAt,
	)
	if scanErr != nil {
		if errors.Is(scanErr, sql.ErrNoRows) {
			return models.Session{}, ErrSessionNotFound
		}
		log.Err(scanErr).
			Str("func", "sessionRepository.GetSession").
			Msg("failed to scan session row")
		return models.Session{}, fmt.Errorf("failed to scan session row: %w", scanErr)
	}

	return session, nil
}

func (s *sessionRepository) ClearSession(ctx context.Context) error {
	log := logger.FromContext(ctx)

	_, err := s.DB.ExecContext(ctx, clearSession)
	if err != nil {
		log.Err(err).
			Str("func", "sessionRepository.ClearSession").
			Msg("failed to clear session")
		return fmt.Errorf("failed to clear session: %w", err)
	}

	return nil
}
