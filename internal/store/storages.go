package store

import (
	"context"

	"github.com/mzhurov/postboard/internal/config"
	"github.com/mzhurov/postboard/internal/logger"
)

// Storages bundles the server-side repositories over a shared PostgreSQL
// connection pool.
type Storages struct {
	DB             *DB
	UserRepository UserRepository
	PostRepository PostRepository
	VoteRepository VoteRepository
}

// NewStorages connects to PostgreSQL, applies pending migrations and wires
// the repositories.
func NewStorages(ctx context.Context, cfg config.Storage, log *logger.Logger) (*Storages, error) {
	log.Debug().Str("func", "NewStorages").Msg("initializing server storages")

	db, err := NewConnectPostgres(ctx, cfg.DB, log)
	if err != nil {
		log.Err(err).Str("func", "NewStorages").Msg("error connecting to postgres")
		return nil, err
	}

	if err = db.Migrate(); err != nil {
		log.Err(err).Str("func", "NewStorages").Msg("error migrating database")
		return nil, err
	}

	return &Storages{
		DB:             db,
		UserRepository: NewUserRepository(db, log),
		PostRepository: NewPostRepository(db, log),
		VoteRepository: NewVoteRepository(db, log),
	}, nil
}

// Close releases the underlying connection pool.
func (s *Storages) Close() error {
	return s.DB.Close()
}
