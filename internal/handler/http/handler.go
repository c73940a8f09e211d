package http

import (
	"strings"
	"time"

	"github.com/MKhiriev/go-bookmarks/internal/config"
	"github.com/MKhiriev/go-bookmarks/internal/logger"
	"github.com/MKhiriev/go-bookmarks/internal/service"
)

type Handler struct {
	services *service.Services

	apiToken       string
	baseURL        string
	requestTimeout time.Duration

	logger *logger.Logger
}

func NewHandler(services *service.Services, cfg *config.StructuredConfig, logger *logger.Logger) *Handler {
	logger.Info().Str("base_url", cfg.App.BaseURL).Msg("http handler created")
	return &Handler{
		services:       services,
		apiToken:       cfg.App.APIToken,
		baseURL:        strings.TrimRight(cfg.App.BaseURL, "/"),
		requestTimeout: cfg.Server.RequestTimeout,
		logger:         logger,
	}
}
