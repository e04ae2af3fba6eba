package store

import (
	"context"

	"github.com/MKhiriev/go-wallet-keeper/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/store_mock.go -package=mock

// WalletRepository persists encrypted wallet material keyed by the owner
// identifier. It never sees plaintext seeds or secrets.
type WalletRepository interface {
	// Exists reports whether material is stored for identifier.
	Exists(ctx context.Context, identifier string) (bool, error)

	// Create stores a new wallet. It fails with [ErrWalletAlreadyExists]
	// when the identifier is taken.
	Create(ctx context.Context, wallet models.EncryptedWallet) error

	// Save stores wallet, replacing whatever was stored for the identifier.
	Save(ctx context.Context, wallet models.EncryptedWallet) error

	// Load returns the stored wallet or [ErrWalletNotFound].
	Load(ctx context.Context, identifier string) (models.EncryptedWallet, error)

	// Delete removes the stored wallet. Deleting a missing wallet yields
	// [ErrWalletNotFound].
	Delete(ctx context.Context, identifier string) error
}

// ErrorClassificator decides how a driver error is handled.
type ErrorClassificator interface {
	// Classify reports whether the failed operation may be retried.
	Classify(err error) ErrorClassification

	// IsUniqueViolation reports a primary key or unique constraint clash.
	IsUniqueViolation(err error) bool
}
