package service

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/MKhiriev/go-wallet-keeper/internal/store"
)

// resolveRecipient turns a recipient into an address. A valid address is
// used as is; anything else is taken as another owner's identifier whose
// receive address is looked up in the registry, then in storage.
func (s *walletService) resolveRecipient(ctx context.Context, recipient string) (string, error) {
	recipient = strings.TrimSpace(recipient)

	addrErr := s.library.ValidateAddress(recipient)
	if addrErr == nil {
		return recipient, nil
	}

	if h, ok := s.registry.Get(recipient); ok {
		return h.ReceiveAddress(), nil
	}

	repo, err := s.registry.Storage()
	if err != nil {
		return "", err
	}
	material, err := repo.Load(ctx, recipient)
	if errors.Is(err, store.ErrWalletNotFound) {
		return "", fmt.Errorf("%w: %w", ErrInvalidAddress, addrErr)
	}
	if err != nil {
		return "", fmt.Errorf("error loading recipient wallet: %w", err)
	}
	if material.Network != s.library.Network() {
		return "", fmt.Errorf("%w: recipient wallet is on %s", ErrInvalidAddress, material.Network)
	}

	return material.ReceiveAddress, nil
}
