package grpc

import (
	"context"
	"errors"

	"github.com/MKhiriev/go-wallet-keeper/internal/app"
	"github.com/MKhiriev/go-wallet-keeper/internal/logger"
	"github.com/MKhiriev/go-wallet-keeper/internal/service"
	"github.com/MKhiriev/go-wallet-keeper/internal/utils"
	"github.com/MKhiriev/go-wallet-keeper/models"
)

func (h *Handler) Create(ctx context.Context, req *models.CreateRequest) (*models.CreateResponse, error) {
	identifier, err := identifierFrom(ctx)
	if err != nil {
		return nil, err
	}
	resp, err := h.services.WalletService.Create(ctx, identifier, *req)
	if err != nil {
		return nil, err
	}
	return &resp, nil
}

func (h *Handler) Open(ctx context.Context, req *models.OpenRequest) (*models.OpenResponse, error) {
	identifier, err := identifierFrom(ctx)
	if err != nil {
		return nil, err
	}
	resp, err := h.services.WalletService.Open(ctx, identifier, *req)
	if err != nil {
		return nil, err
	}
	return &resp, nil
}

func (h *Handler) Restore(ctx context.Context, req *models.RestoreRequest) (*models.OpenResponse, error) {
	identifier, err := identifierFrom(ctx)
	if err != nil {
		return nil, err
	}
	resp, err := h.services.WalletService.Restore(ctx, identifier, *req)
	if err != nil {
		return nil, err
	}
	return &resp, nil
}

func (h *Handler) Close(ctx context.Context, _ *Empty) (*models.CloseResponse, error) {
	identifier, err := identifierFrom(ctx)
	if err != nil {
		return nil, err
	}
	resp, err := h.services.WalletService.Close(ctx, identifier)
	if err != nil {
		return nil, err
	}
	return &resp, nil
}

// Destroy reports an aborted destroy as a successful call with
// destroyed=false, like the HTTP API.
func (h *Handler) Destroy(ctx context.Context, req *models.DestroyRequest) (*models.DestroyResponse, error) {
	identifier, err := identifierFrom(ctx)
	if err != nil {
		return nil, err
	}
	resp, err := h.services.WalletService.Destroy(ctx, identifier, *req)
	if errors.Is(err, service.ErrAbortedByUser) {
		return &models.DestroyResponse{Code: app.CodeAbortedByUser, Message: app.MsgAbortedByUser}, nil
	}
	if err != nil {
		return nil, err
	}
	return &resp, nil
}

func (h *Handler) Send(ctx context.Context, req *models.SendRequest) (*models.SendResponse, error) {
	identifier, err := identifierFrom(ctx)
	if err != nil {
		return nil, err
	}

	log := logger.FromContext(ctx)
	progress := func(p models.SendProgress) {
		log.Info().Str("stage", string(p.Stage)).Str("tx_id", p.TxID).Msg("send progress")
	}

	resp, err := h.services.WalletService.Send(ctx, identifier, *req, progress)
	if err != nil {
		return nil, err
	}
	return &resp, nil
}

func (h *Handler) Status(ctx context.Context, _ *Empty) (*models.StatusResponse, error) {
	identifier, err := identifierFrom(ctx)
	if err != nil {
		return nil, err
	}
	resp, err := h.services.WalletService.Status(ctx, identifier)
	if err != nil {
		return nil, err
	}
	return &resp, nil
}

func (h *Handler) Accounts(ctx context.Context, _ *Empty) (*models.AccountsResponse, error) {
	identifier, err := identifierFrom(ctx)
	if err != nil {
		return nil, err
	}
	resp, err := h.services.WalletService.Accounts(ctx, identifier)
	if err != nil {
		return nil, err
	}
	return &resp, nil
}

func (h *Handler) Version(ctx context.Context, _ *Empty) (*models.VersionResponse, error) {
	resp := h.services.AppInfoService.GetAppVersion(ctx)
	return &resp, nil
}

func identifierFrom(ctx context.Context) (string, error) {
	identifier, ok := utils.GetIdentifierFromContext(ctx)
	if !ok {
		logger.FromContext(ctx).Err(ErrNoIdentifier).Send()
		return "", service.ErrTokenIsExpiredOrInvalid
	}
	return identifier, nil
}
