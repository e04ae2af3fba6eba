package service

import (
	"context"
	"time"

	"github.com/MKhiriev/go-wallet-keeper/internal/metrics"
	"github.com/MKhiriev/go-wallet-keeper/internal/wallet"
	"github.com/MKhiriev/go-wallet-keeper/models"
)

// Command labels reported to metrics.
const (
	CommandCreate   = "create"
	CommandOpen     = "open"
	CommandRestore  = "restore"
	CommandClose    = "close"
	CommandDestroy  = "destroy"
	CommandSend     = "send"
	CommandStatus   = "status"
	CommandAccounts = "accounts"
)

// WalletMetricsService counts every command and its outcome.
type WalletMetricsService struct {
	inner   WalletService
	metrics *metrics.Metrics
}

func NewWalletMetricsService(m *metrics.Metrics) WalletServiceWrapper {
	return &WalletMetricsService{metrics: m}
}

func (s *WalletMetricsService) Create(ctx context.Context, identifier string, req models.CreateRequest) (resp models.CreateResponse, err error) {
	defer s.observe(CommandCreate, time.Now(), &err)
	return s.inner.Create(ctx, identifier, req)
}

func (s *WalletMetricsService) Open(ctx context.Context, identifier string, req models.OpenRequest) (resp models.OpenResponse, err error) {
	defer s.observe(CommandOpen, time.Now(), &err)
	return s.inner.Open(ctx, identifier, req)
}

func (s *WalletMetricsService) Restore(ctx context.Context, identifier string, req models.RestoreRequest) (resp models.OpenResponse, err error) {
	defer s.observe(CommandRestore, time.Now(), &err)
	return s.inner.Restore(ctx, identifier, req)
}

func (s *WalletMetricsService) Close(ctx context.Context, identifier string) (resp models.CloseResponse, err error) {
	defer s.observe(CommandClose, time.Now(), &err)
	return s.inner.Close(ctx, identifier)
}

func (s *WalletMetricsService) Destroy(ctx context.Context, identifier string, req models.DestroyRequest) (resp models.DestroyResponse, err error) {
	defer s.observe(CommandDestroy, time.Now(), &err)
	return s.inner.Destroy(ctx, identifier, req)
}

func (s *WalletMetricsService) Send(ctx context.Context, identifier string, req models.SendRequest, progress wallet.ProgressFunc) (resp models.SendResponse, err error) {
	defer s.observe(CommandSend, time.Now(), &err)
	return s.inner.Send(ctx, identifier, req, progress)
}

func (s *WalletMetricsService) Status(ctx context.Context, identifier string) (resp models.StatusResponse, err error) {
	defer s.observe(CommandStatus, time.Now(), &err)
	return s.inner.Status(ctx, identifier)
}

func (s *WalletMetricsService) Accounts(ctx context.Context, identifier string) (resp models.AccountsResponse, err error) {
	defer s.observe(CommandAccounts, time.Now(), &err)
	return s.inner.Accounts(ctx, identifier)
}

func (s *WalletMetricsService) Wrap(inner WalletService) WalletService {
	s.inner = inner
	return s
}

func (s *WalletMetricsService) observe(command string, started time.Time, err *error) {
	s.metrics.ObserveCommand(command, started, *err, IsRejection)
}
