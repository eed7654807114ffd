package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5/pgconn"
	_ "github.com/jackc/pgx/v5/stdlib"
	"github.com/mzhurov/postboard/internal/config"
	"github.com/mzhurov/postboard/internal/logger"
	"github.com/mzhurov/postboard/migrations"
)

// connectRetryIntervals are the pauses between ping attempts when the
// database is not ready yet (e.g. the container is still starting).
var connectRetryIntervals = []time.Duration{1 * time.Second, 3 * time.Second, 5 * time.Second}

type DB struct {
	*sql.DB
	errorClassificator ErrorClassificator
	logger             *logger.Logger
}

// NewDB wraps an already opened connection pool. NewConnectPostgres uses it
// after dialing; tests use it to substitute the pool with a fake.
func NewDB(conn *sql.DB, log *logger.Logger) *DB {
	return &DB{
		DB:                 conn,
		logger:             log,
		errorClassificator: NewPostgresErrorClassifier(),
	}
}

func NewConnectPostgres(ctx context.Context, cfg config.DB, log *logger.Logger) (*DB, error) {
	// establish connection
	conn, err := sql.Open("pgx", cfg.DSN)
	if err != nil {
		log.Err(err).Str("func", "NewConnectPostgres").Msg("error occured during database connection")
		return nil, fmt.Errorf("error occured during database connection: %w", err)
	}

	// setup connections
	conn.SetMaxOpenConns(10)
	conn.SetMaxIdleConns(4)

	db := NewDB(conn, log)

	// ping database, retrying transient failures
	if err := db.pingWithRetries(ctx); err != nil {
		log.Err(err).Str("func", "NewConnectPostgres").Msg("error connecting database (ping)")
		return nil, err
	}
	log.Info().Str("func", "NewConnectPostgres").Msg("connected to database successfully")

	return db, nil
}

// pingWithRetries pings the database and retries over connectRetryIntervals
// as long as the failure is classified as retryable.
func (db *DB) pingWithRetries(ctx context.Context) error {
	err := db.PingContext(ctx)
	if err == nil {
		return nil
	}

	for _, interval := range connectRetryIntervals {
		if db.errorClassificator.Classify(err) != Retryable {
			return err
		}

		db.logger.Warn().
			Err(err).
			Str("func", "pingWithRetries").
			Dur("retry_in", interval).
			Msg("database is not ready, retrying")

		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-time.After(interval):
		}

		if err = db.PingContext(ctx); err == nil {
			return nil
		}
	}

	return err
}

// Migrate applies all pending schema migrations.
func (db *DB) Migrate() error {
	return migrations.Migrate(db.DB)
}

func postgresError(err error) string {
	var pgErr *pgconn.PgError
	// if postgres returns error
	if errors.As(err, &pgErr) {
		return pgErr.Code
	}

	return ""
}
