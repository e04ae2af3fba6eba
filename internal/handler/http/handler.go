package http

import (
	"net/http"
	"time"

	"github.com/MKhiriev/go-wallet-keeper/internal/config"
	"github.com/MKhiriev/go-wallet-keeper/internal/logger"
	"github.com/MKhiriev/go-wallet-keeper/internal/service"
)

type Handler struct {
	services *service.Services

	// metrics serves /metrics; nil disables the route.
	metrics http.Handler

	requestTimeout time.Duration

	logger *logger.Logger
}

func NewHandler(services *service.Services, metrics http.Handler, cfg config.Server, logger *logger.Logger) *Handler {
	logger.Info().Msg("http handler created")
	return &Handler{
		services:       services,
		metrics:        metrics,
		requestTimeout: cfg.RequestTimeout,
		logger:         logger,
	}
}
