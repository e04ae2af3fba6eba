package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/MKhiriev/go-wallet-keeper/internal/validators"
	"github.com/MKhiriev/go-wallet-keeper/internal/wallet"
	"github.com/MKhiriev/go-wallet-keeper/models"
)

// WalletValidationService rejects malformed requests before they reach the
// lifecycle service.
type WalletValidationService struct {
	inner     WalletService
	validator validators.Validator
}

func NewWalletValidationService() WalletServiceWrapper {
	return &WalletValidationService{
		validator: validators.NewWalletRequestValidator(),
	}
}

func (v *WalletValidationService) Create(ctx context.Context, identifier string, req models.CreateRequest) (models.CreateResponse, error) {
	if err := v.validate(ctx, identifier, req); err != nil {
		return models.CreateResponse{}, err
	}
	return v.inner.Create(ctx, identifier, req)
}

func (v *WalletValidationService) Open(ctx context.Context, identifier string, req models.OpenRequest) (models.OpenResponse, error) {
	if err := v.validate(ctx, identifier, req); err != nil {
		return models.OpenResponse{}, err
	}
	return v.inner.Open(ctx, identifier, req)
}

func (v *WalletValidationService) Restore(ctx context.Context, identifier string, req models.RestoreRequest) (models.OpenResponse, error) {
	if err := v.validate(ctx, identifier, req); err != nil {
		return models.OpenResponse{}, err
	}
	return v.inner.Restore(ctx, identifier, req)
}

func (v *WalletValidationService) Close(ctx context.Context, identifier string) (models.CloseResponse, error) {
	if identifier == "" {
		return models.CloseResponse{}, ErrInvalidDataProvided
	}
	return v.inner.Close(ctx, identifier)
}

// Destroy checks only the identifier: the confirmation is judged by the
// lifecycle service after it knows whether there is anything to destroy.
func (v *WalletValidationService) Destroy(ctx context.Context, identifier string, req models.DestroyRequest) (models.DestroyResponse, error) {
	if identifier == "" {
		return models.DestroyResponse{}, ErrInvalidDataProvided
	}
	return v.inner.Destroy(ctx, identifier, req)
}

func (v *WalletValidationService) Send(ctx context.Context, identifier string, req models.SendRequest, progress wallet.ProgressFunc) (models.SendResponse, error) {
	if err := v.validate(ctx, identifier, req); err != nil {
		return models.SendResponse{}, err
	}
	return v.inner.Send(ctx, identifier, req, progress)
}

func (v *WalletValidationService) Status(ctx context.Context, identifier string) (models.StatusResponse, error) {
	if identifier == "" {
		return models.StatusResponse{}, ErrInvalidDataProvided
	}
	return v.inner.Status(ctx, identifier)
}

func (v *WalletValidationService) Accounts(ctx context.Context, identifier string) (models.AccountsResponse, error) {
	if identifier == "" {
		return models.AccountsResponse{}, ErrInvalidDataProvided
	}
	return v.inner.Accounts(ctx, identifier)
}

func (v *WalletValidationService) Wrap(inner WalletService) WalletService {
	v.inner = inner
	return v
}

func (v *WalletValidationService) validate(ctx context.Context, identifier string, req any) error {
	if identifier == "" {
		return ErrInvalidDataProvided
	}

	err := v.validator.Validate(ctx, req)
	switch {
	case err == nil:
		return nil
	case errors.Is(err, validators.ErrWeakSecret):
		return fmt.Errorf("%w: %w", ErrWeakSecret, err)
	case errors.Is(err, validators.ErrInvalidMnemonic):
		return fmt.Errorf("%w: %w", ErrInvalidMnemonic, err)
	case errors.Is(err, validators.ErrEmptyAmount):
		return fmt.Errorf("%w: %w", ErrInvalidAmount, err)
	case errors.Is(err, validators.ErrEmptyRecipient):
		return fmt.Errorf("%w: %w", ErrInvalidAddress, err)
	default:
		return fmt.Errorf("%w: %w", ErrInvalidDataProvided, err)
	}
}
