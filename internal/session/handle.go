package session

import (
	"context"
	"sync"
	"sync/atomic"
	"time"

	"github.com/MKhiriev/go-wallet-keeper/internal/secret"
	"github.com/MKhiriev/go-wallet-keeper/internal/wallet"
	"github.com/MKhiriev/go-wallet-keeper/models"
)

//go:generate mockgen -source=handle.go -destination=../mock/session_wallet_mock.go -package=mock

// Wallet is the part of an open wallet a session uses. *wallet.Wallet
// implements it.
type Wallet interface {
	ReceiveAddress() string
	Close() error
	Send(ctx context.Context, outputs []models.Output, sec *secret.Secret, progress wallet.ProgressFunc) (models.TransactionSummary, []string, error)
	Accounts(ctx context.Context) ([]models.Account, error)
}

// Handle binds an identifier to one open wallet. Handles are shared by
// pointer between the registry and in-flight commands; Close is explicit
// and idempotent.
type Handle struct {
	identifier     string
	wallet         Wallet
	receiveAddress string
	openedAt       time.Time

	lastUsed atomic.Int64
	state    atomic.Int32

	closeOnce sync.Once
	closeErr  error
}

// NewHandle wraps an open wallet.
func NewHandle(identifier string, w Wallet) *Handle {
	now := time.Now()
	h := &Handle{
		identifier:     identifier,
		wallet:         w,
		receiveAddress: w.ReceiveAddress(),
		openedAt:       now,
	}
	h.lastUsed.Store(now.UnixNano())
	h.state.Store(int32(Opened))
	return h
}

func (h *Handle) Identifier() string { return h.identifier }

func (h *Handle) Wallet() Wallet { return h.wallet }

// ReceiveAddress returns the cached receive address.
func (h *Handle) ReceiveAddress() string { return h.receiveAddress }

func (h *Handle) OpenedAt() time.Time { return h.openedAt }

// State is Opened until Close, then InitiatedClosed, or Destroyed.
func (h *Handle) State() State { return State(h.state.Load()) }

// Touch records use of the session for idle accounting.
func (h *Handle) Touch() {
	h.lastUsed.Store(time.Now().UnixNano())
}

// LastUsed returns the time of the last Touch.
func (h *Handle) LastUsed() time.Time {
	return time.Unix(0, h.lastUsed.Load())
}

// Close stops the wallet once. Later calls return the first result.
func (h *Handle) Close() error {
	h.closeOnce.Do(func() {
		h.state.CompareAndSwap(int32(Opened), int32(InitiatedClosed))
		h.closeErr = h.wallet.Close()
	})
	return h.closeErr
}

// MarkDestroyed closes the handle and moves it to the terminal state.
func (h *Handle) MarkDestroyed() error {
	err := h.Close()
	h.state.Store(int32(Destroyed))
	return err
}
