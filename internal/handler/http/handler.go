package http

import (
	"github.com/mzhurov/postboard/internal/logger"
	"github.com/mzhurov/postboard/internal/service"
	"github.com/mzhurov/postboard/internal/store"
)

type Handler struct {
	services *service.Services

	// storages is used by the session middleware to check a dedicated
	// database connection out of the pool for each request.
	storages *store.Storages

	logger *logger.Logger
}

func NewHandler(services *service.Services, storages *store.Storages, logger *logger.Logger) *Handler {
	logger.Info().Msg("http handler created")
	return &Handler{
		services: services,
		storages: storages,
		logger:   logger,
	}
}
