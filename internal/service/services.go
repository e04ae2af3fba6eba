package service

import (
	"fmt"

	"github.com/MKhiriev/go-wallet-keeper/internal/config"
	"github.com/MKhiriev/go-wallet-keeper/internal/logger"
	"github.com/MKhiriev/go-wallet-keeper/internal/metrics"
	"github.com/MKhiriev/go-wallet-keeper/internal/session"
)

// WalletServiceWrapper decorates a WalletService, e.g. with validation.
type WalletServiceWrapper interface {
	Wrap(WalletService) WalletService
}

type Services struct {
	WalletService  WalletService
	AuthService    AuthService
	AppInfoService AppInfoService
}

// NewServices assembles the server services. The wallet service is wrapped
// as metrics(validation(core)) so that rejected requests are counted too.
func NewServices(registry *session.Registry, library WalletLibrary, m *metrics.Metrics, cfg config.StructuredConfig, logger *logger.Logger) (*Services, error) {
	appInfo, err := NewAppInfoService(cfg.App, library.Network(), logger)
	if err != nil {
		return nil, fmt.Errorf("error creating app info service: %w", err)
	}

	wallets := NewWalletService(registry, library, logger)
	wallets = NewWalletValidationService().Wrap(wallets)
	wallets = NewWalletMetricsService(m).Wrap(wallets)

	return &Services{
		WalletService:  wallets,
		AuthService:    NewAuthService(cfg.App, logger),
		AppInfoService: appInfo,
	}, nil
}
