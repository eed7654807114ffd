package service

import (
	"github.com/mzhurov/postboard/internal/config"
	"github.com/mzhurov/postboard/internal/logger"
	"github.com/mzhurov/postboard/internal/store"
)

type Services struct {
	AuthService AuthService
	PostService PostService
	VoteService VoteService
}

func NewServices(storages *store.Storages, cfg config.StructuredConfig, logger *logger.Logger) *Services {
	return &Services{
		AuthService: NewAuthService(storages.UserRepository, cfg.App, logger),
		PostService: NewPostService(storages.PostRepository, logger),
		VoteService: NewVoteService(storages.VoteRepository, logger),
	}
}
