package http

import (
	"github.com/legacykeep/legacy-vault/internal/config"
	"github.com/legacykeep/legacy-vault/internal/logger"
	"github.com/legacykeep/legacy-vault/internal/service"
)

type Handler struct {
	services *service.Services

	// tokenSignKey and tokenIssuer verify bearer tokens minted by the
	// external identity provider.
	tokenSignKey string
	tokenIssuer  string

	logger *logger.Logger
}

func NewHandler(services *service.Services, cfg config.Auth, logger *logger.Logger) *Handler {
	logger.Info().Msg("http handler created")
	return &Handler{
		services:     services,
		tokenSignKey: cfg.TokenSignKey,
		tokenIssuer:  cfg.TokenIssuer,
		logger:       logger,
	}
}
