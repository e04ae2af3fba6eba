package adapter

import (
	"github.com/MKhiriev/go-wallet-keeper/internal/config"
	"github.com/MKhiriev/go-wallet-keeper/internal/logger"
)

// NewServerAdapter returns the adapter of cfg.Transport; HTTP by default.
func NewServerAdapter(cfg config.ClientAdapter, logger *logger.Logger) (ServerAdapter, error) {
	if cfg.Transport == config.TransportGRPC {
		return NewGRPCServerAdapter(cfg, logger)
	}
	return NewHTTPServerAdapter(cfg, logger)
}
