// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/MKhiriev/go-wallet-keeper/internal/logger"
	"github.com/MKhiriev/go-wallet-keeper/internal/secret"
	"github.com/MKhiriev/go-wallet-keeper/internal/session"
	"github.com/MKhiriev/go-wallet-keeper/internal/store"
	"github.com/MKhiriev/go-wallet-keeper/internal/validators"
	"github.com/MKhiriev/go-wallet-keeper/internal/wallet"
	"github.com/MKhiriev/go-wallet-keeper/models"
)

// walletService implements the lifecycle on top of the session registry.
//
// Every command that builds or tears down a session first reserves the
// identifier in the registry, then does storage and wallet work without
// holding any lock, then commits or releases the reservation. A command
// that fails leaves no session behind.
type walletService struct {
	registry *session.Registry
	library  WalletLibrary
	logger   *logger.Logger
}

// NewWalletService builds the lifecycle service.
func NewWalletService(registry *session.Registry, library WalletLibrary, logger *logger.Logger) WalletService {
	return &walletService{
		registry: registry,
		library:  library,
		logger:   logger,
	}
}

func (s *walletService) Create(ctx context.Context, identifier string, req models.CreateRequest) (models.CreateResponse, error) {
	log := logger.FromContext(ctx)

	repo, err := s.registry.Storage()
	if err != nil {
		return models.CreateResponse{}, err
	}

	res, err := s.reserve(identifier, ErrAlreadyInitiated)
	if err != nil {
		return models.CreateResponse{}, err
	}
	defer res.Release()

	exists, err := repo.Exists(ctx, identifier)
	if err != nil {
		return models.CreateResponse{}, fmt.Errorf("error checking stored wallet: %w", err)
	}
	if exists {
		return models.CreateResponse{}, ErrAlreadyInitiated
	}

	sec := secret.New(req.Secret)
	defer sec.Zero()

	w, material, mnemonic, err := s.library.Create(ctx, identifier, sec)
	if err != nil {
		return models.CreateResponse{}, fmt.Errorf("error creating wallet: %w", err)
	}

	if err = repo.Create(ctx, material); err != nil {
		s.closeWallet(ctx, w)
		if errors.Is(err, store.ErrWalletAlreadyExists) {
			return models.CreateResponse{}, ErrAlreadyInitiated
		}
		return models.CreateResponse{}, fmt.Errorf("error storing wallet: %w", err)
	}

	h := res.Commit(session.NewHandle(identifier, w))
	log.Info().Str("receive_address", h.ReceiveAddress()).Msg("wallet created")

	return models.CreateResponse{
		Mnemonic:       mnemonic,
		ReceiveAddress: h.ReceiveAddress(),
	}, nil
}

func (s *walletService) Open(ctx context.Context, identifier string, req models.OpenRequest) (models.OpenResponse, error) {
	log := logger.FromContext(ctx)

	if h, ok := s.registry.Get(identifier); ok {
		h.Touch()
		return models.OpenResponse{ReceiveAddress: h.ReceiveAddress()}, nil
	}

	repo, err := s.registry.Storage()
	if err != nil {
		return models.OpenResponse{}, err
	}

	res, err := s.registry.Reserve(identifier)
	if errors.Is(err, session.ErrSessionExists) {
		// opened by a concurrent command between Get and Reserve
		if h, ok := s.registry.Get(identifier); ok {
			return models.OpenResponse{ReceiveAddress: h.ReceiveAddress()}, nil
		}
		return models.OpenResponse{}, ErrSessionBusy
	}
	if err != nil {
		return models.OpenResponse{}, s.reserveError(err, ErrWalletAlreadyOpen)
	}
	defer res.Release()

	material, err := repo.Load(ctx, identifier)
	if errors.Is(err, store.ErrWalletNotFound) {
		return models.OpenResponse{}, ErrNotInitiated
	}
	if err != nil {
		return models.OpenResponse{}, fmt.Errorf("error loading wallet: %w", err)
	}

	sec := secret.New(req.Secret)
	defer sec.Zero()

	w, err := s.library.Open(ctx, material, sec)
	if errors.Is(err, wallet.ErrDecryptionFailed) {
		log.Warn().Msg("wallet open with wrong secret")
		return models.OpenResponse{}, ErrDecryptionFailed
	}
	if err != nil {
		return models.OpenResponse{}, fmt.Errorf("error opening wallet: %w", err)
	}

	h := res.Commit(session.NewHandle(identifier, w))
	log.Info().Msg("wallet opened")

	return models.OpenResponse{ReceiveAddress: h.ReceiveAddress()}, nil
}

func (s *walletService) Restore(ctx context.Context, identifier string, req models.RestoreRequest) (models.OpenResponse, error) {
	log := logger.FromContext(ctx)

	repo, err := s.registry.Storage()
	if err != nil {
		return models.OpenResponse{}, err
	}

	res, err := s.reserve(identifier, ErrWalletAlreadyOpen)
	if err != nil {
		return models.OpenResponse{}, err
	}
	defer res.Release()

	sec := secret.New(req.Secret)
	defer sec.Zero()

	w, material, err := s.library.Restore(ctx, identifier, validators.SplitMnemonic(req.Mnemonic), sec)
	if errors.Is(err, wallet.ErrInvalidMnemonic) {
		return models.OpenResponse{}, fmt.Errorf("%w: %w", ErrInvalidMnemonic, err)
	}
	if err != nil {
		return models.OpenResponse{}, fmt.Errorf("error restoring wallet: %w", err)
	}

	if err = repo.Save(ctx, material); err != nil {
		s.closeWallet(ctx, w)
		return models.OpenResponse{}, fmt.Errorf("error storing wallet: %w", err)
	}

	h := res.Commit(session.NewHandle(identifier, w))
	log.Info().Str("receive_address", h.ReceiveAddress()).Msg("wallet restored")

	return models.OpenResponse{ReceiveAddress: h.ReceiveAddress()}, nil
}

func (s *walletService) Close(ctx context.Context, identifier string) (models.CloseResponse, error) {
	h, ok := s.registry.Remove(identifier)
	if !ok {
		return models.CloseResponse{}, nil
	}

	if err := h.Close(); err != nil {
		logger.FromContext(ctx).Err(err).Msg("wallet shutdown failed")
	}
	logger.FromContext(ctx).Info().Msg("wallet closed")

	return models.CloseResponse{Closed: true}, nil
}

func (s *walletService) Destroy(ctx context.Context, identifier string, req models.DestroyRequest) (models.DestroyResponse, error) {
	log := logger.FromContext(ctx)

	repo, err := s.registry.Storage()
	if err != nil {
		return models.DestroyResponse{}, err
	}

	initiated := s.registry.Exists(identifier)
	if !initiated {
		if initiated, err = repo.Exists(ctx, identifier); err != nil {
			return models.DestroyResponse{}, fmt.Errorf("error checking stored wallet: %w", err)
		}
	}
	if !initiated {
		return models.DestroyResponse{}, ErrNotInitiated
	}

	if req.Confirmation != DestroyConfirmation {
		log.Info().Msg("wallet destroy aborted")
		return models.DestroyResponse{}, ErrAbortedByUser
	}

	res, h, err := s.registry.ReserveOpen(identifier)
	if err != nil {
		return models.DestroyResponse{}, s.reserveError(err, ErrSessionBusy)
	}
	defer res.Release()

	if h != nil {
		if err = h.MarkDestroyed(); err != nil {
			log.Err(err).Msg("wallet shutdown failed")
		}
	}

	err = repo.Delete(ctx, identifier)
	if errors.Is(err, store.ErrWalletNotFound) {
		if h == nil {
			return models.DestroyResponse{}, ErrNotInitiated
		}
		err = nil
	}
	if err != nil {
		return models.DestroyResponse{}, fmt.Errorf("error deleting wallet: %w", err)
	}

	log.Info().Msg("wallet destroyed")
	return models.DestroyResponse{Destroyed: true}, nil
}

func (s *walletService) Send(ctx context.Context, identifier string, req models.SendRequest, progress wallet.ProgressFunc) (models.SendResponse, error) {
	log := logger.FromContext(ctx)

	amount, err := session.ParseAmount(req.Amount)
	if err != nil {
		return models.SendResponse{}, fmt.Errorf("%w: %w", ErrInvalidAmount, err)
	}

	h, ok := s.registry.Get(identifier)
	if !ok {
		return models.SendResponse{}, ErrWalletNotOpen
	}
	h.Touch()

	address, err := s.resolveRecipient(ctx, req.Recipient)
	if err != nil {
		return models.SendResponse{}, err
	}

	sec := secret.New(req.Secret)
	defer sec.Zero()

	outputs := []models.Output{{Address: address, Amount: amount}}
	summary, txids, err := h.Wallet().Send(ctx, outputs, sec, progress)
	switch {
	case err == nil:
	case errors.Is(err, wallet.ErrDecryptionFailed):
		return models.SendResponse{}, ErrDecryptionFailed
	case errors.Is(err, wallet.ErrWalletClosed):
		return models.SendResponse{}, ErrWalletNotOpen
	case errors.Is(err, wallet.ErrDustOutput):
		return models.SendResponse{}, fmt.Errorf("%w: %w", ErrInvalidAmount, err)
	case errors.Is(err, wallet.ErrInvalidAddress):
		return models.SendResponse{}, fmt.Errorf("%w: %w", ErrInvalidAddress, err)
	default:
		log.Err(err).Msg("send failed")
		return models.SendResponse{}, fmt.Errorf("%w: %w", ErrTransactionFailed, err)
	}

	log.Info().Strs("txids", txids).Int64("amount", amount).Msg("payment submitted")
	return models.SendResponse{Summary: summary, TxIDs: txids}, nil
}

func (s *walletService) Status(ctx context.Context, identifier string) (models.StatusResponse, error) {
	if s.registry.Exists(identifier) {
		return models.StatusResponse{IsOpened: true, IsInitiated: true}, nil
	}

	repo, err := s.registry.Storage()
	if err != nil {
		return models.StatusResponse{}, err
	}
	initiated, err := repo.Exists(ctx, identifier)
	if err != nil {
		return models.StatusResponse{}, fmt.Errorf("error checking stored wallet: %w", err)
	}

	return models.StatusResponse{IsInitiated: initiated}, nil
}

func (s *walletService) Accounts(ctx context.Context, identifier string) (models.AccountsResponse, error) {
	h, ok := s.registry.Get(identifier)
	if !ok {
		return models.AccountsResponse{}, ErrWalletNotOpen
	}
	h.Touch()

	accounts, err := h.Wallet().Accounts(ctx)
	if errors.Is(err, wallet.ErrWalletClosed) {
		return models.AccountsResponse{}, ErrWalletNotOpen
	}
	if err != nil {
		return models.AccountsResponse{}, fmt.Errorf("error listing accounts: %w", err)
	}

	return models.AccountsResponse{Accounts: accounts}, nil
}

// reserve claims identifier; an open session maps to whenOpen.
func (s *walletService) reserve(identifier string, whenOpen error) (*session.Reservation, error) {
	res, err := s.registry.Reserve(identifier)
	if err != nil {
		return nil, s.reserveError(err, whenOpen)
	}
	return res, nil
}

func (s *walletService) reserveError(err, whenOpen error) error {
	switch {
	case errors.Is(err, session.ErrSessionExists):
		return whenOpen
	case errors.Is(err, session.ErrSessionBusy):
		return ErrSessionBusy
	default:
		return err
	}
}

// closeWallet stops a wallet that never became a session.
func (s *walletService) closeWallet(ctx context.Context, w session.Wallet) {
	if err := w.Close(); err != nil {
		logger.FromContext(ctx).Err(err).Msg("error closing unregistered wallet")
	}
}
