package service

import (
	"context"

	"github.com/MKhiriev/go-wallet-keeper/internal/secret"
	"github.com/MKhiriev/go-wallet-keeper/internal/session"
	"github.com/MKhiriev/go-wallet-keeper/internal/wallet"
	"github.com/MKhiriev/go-wallet-keeper/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/service_mock.go -package=mock

// WalletService drives the wallet lifecycle of one identifier at a time.
// The identifier always comes from the authenticated caller.
type WalletService interface {
	// Create generates and stores a new wallet and opens it. The recovery
	// phrase is returned once and never stored.
	Create(ctx context.Context, identifier string, req models.CreateRequest) (models.CreateResponse, error)

	// Open decrypts the stored wallet with the secret. Opening an open
	// wallet returns the existing session.
	Open(ctx context.Context, identifier string, req models.OpenRequest) (models.OpenResponse, error)

	// Restore rebuilds a wallet from its recovery phrase, stores it under
	// a new secret and opens it. Not allowed while a session is open.
	Restore(ctx context.Context, identifier string, req models.RestoreRequest) (models.OpenResponse, error)

	// Close ends the session. Closing a closed wallet is not an error.
	Close(ctx context.Context, identifier string) (models.CloseResponse, error)

	// Destroy closes the session and deletes the stored wallet once the
	// caller confirmed with the exact word "destroy".
	Destroy(ctx context.Context, identifier string, req models.DestroyRequest) (models.DestroyResponse, error)

	// Send pays amount to the recipient from the open wallet. progress may
	// be nil.
	Send(ctx context.Context, identifier string, req models.SendRequest, progress wallet.ProgressFunc) (models.SendResponse, error)

	// Status reports whether a session is open and whether a wallet is
	// stored. It changes nothing.
	Status(ctx context.Context, identifier string) (models.StatusResponse, error)

	// Accounts describes the accounts of the open wallet.
	Accounts(ctx context.Context, identifier string) (models.AccountsResponse, error)
}

// WalletLibrary is the wallet library as the lifecycle service sees it.
type WalletLibrary interface {
	Network() string
	Create(ctx context.Context, identifier string, sec *secret.Secret) (session.Wallet, models.EncryptedWallet, []string, error)
	Restore(ctx context.Context, identifier string, words []string, sec *secret.Secret) (session.Wallet, models.EncryptedWallet, error)
	Open(ctx context.Context, material models.EncryptedWallet, sec *secret.Secret) (session.Wallet, error)
	ValidateAddress(address string) error
}

// AuthService resolves bearer tokens to wallet identifiers.
type AuthService interface {
	IssueToken(ctx context.Context, identifier string) (models.Token, error)
	ParseToken(ctx context.Context, tokenString string) (models.Token, error)
}

// AppInfoService reports build and network information.
type AppInfoService interface {
	GetAppVersion(ctx context.Context) models.VersionResponse
}
