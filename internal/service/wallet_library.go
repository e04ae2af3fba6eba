package service

import (
	"context"

	"github.com/MKhiriev/go-wallet-keeper/internal/secret"
	"github.com/MKhiriev/go-wallet-keeper/internal/session"
	"github.com/MKhiriev/go-wallet-keeper/internal/wallet"
	"github.com/MKhiriev/go-wallet-keeper/models"
)

// walletLibrary adapts *wallet.Library to WalletLibrary.
type walletLibrary struct {
	lib *wallet.Library
}

// NewWalletLibrary wraps lib for the lifecycle service.
func NewWalletLibrary(lib *wallet.Library) WalletLibrary {
	return &walletLibrary{lib: lib}
}

func (l *walletLibrary) Network() string {
	return l.lib.Network()
}

func (l *walletLibrary) Create(ctx context.Context, identifier string, sec *secret.Secret) (session.Wallet, models.EncryptedWallet, []string, error) {
	w, material, mnemonic, err := l.lib.Create(ctx, identifier, sec)
	if err != nil {
		return nil, models.EncryptedWallet{}, nil, err
	}
	return w, material, mnemonic, nil
}

func (l *walletLibrary) Restore(ctx context.Context, identifier string, words []string, sec *secret.Secret) (session.Wallet, models.EncryptedWallet, error) {
	w, material, err := l.lib.Restore(ctx, identifier, words, sec)
	if err != nil {
		return nil, models.EncryptedWallet{}, err
	}
	return w, material, nil
}

func (l *walletLibrary) Open(ctx context.Context, material models.EncryptedWallet, sec *secret.Secret) (session.Wallet, error) {
	w, err := l.lib.Open(ctx, material, sec)
	if err != nil {
		return nil, err
	}
	return w, nil
}

func (l *walletLibrary) ValidateAddress(address string) error {
	_, err := l.lib.DecodeAddress(address)
	return err
}
