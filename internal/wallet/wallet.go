package wallet

import (
	"context"
	"sync"
	"sync/atomic"
	"time"

	"github.com/btcsuite/btcd/btcutil"
	"github.com/btcsuite/btcd/chaincfg"
	"github.com/btcsuite/btcd/txscript"

	"github.com/MKhiriev/go-wallet-keeper/internal/crypto"
	"github.com/MKhiriev/go-wallet-keeper/internal/logger"
	"github.com/MKhiriev/go-wallet-keeper/internal/rpc"
	"github.com/MKhiriev/go-wallet-keeper/models"
)

// Wallet is an open wallet. It holds public data only; the seed is
// decrypted for each payment and wiped afterwards. Safe for concurrent
// use.
type Wallet struct {
	lib      *Library
	node     rpc.NodeClient
	keychain crypto.KeyChainService
	params   *chaincfg.Params
	logger   *logger.Logger

	material models.EncryptedWallet
	address  *btcutil.AddressWitnessPubKeyHash
	pkScript []byte

	balance atomic.Int64
	synced  atomic.Bool

	closed    atomic.Bool
	stop      chan struct{}
	done      chan struct{}
	closeOnce sync.Once
}

func newWallet(lib *Library, material models.EncryptedWallet, addr *btcutil.AddressWitnessPubKeyHash) (*Wallet, error) {
	pkScript, err := txscript.PayToAddrScript(addr)
	if err != nil {
		return nil, err
	}

	return &Wallet{
		lib:      lib,
		node:     lib.node,
		keychain: lib.keychain,
		params:   lib.params,
		logger:   lib.logger.ForIdentifier(material.Identifier),
		material: material,
		address:  addr,
		pkScript: pkScript,
		stop:     make(chan struct{}),
		done:     make(chan struct{}),
	}, nil
}

// Identifier returns the owner of the wallet.
func (w *Wallet) Identifier() string {
	return w.material.Identifier
}

// Network returns the chain parameter name.
func (w *Wallet) Network() string {
	return w.params.Name
}

// ReceiveAddress returns the wallet's receive address.
func (w *Wallet) ReceiveAddress() string {
	return w.address.EncodeAddress()
}

// Material returns the persisted form the wallet was opened from.
func (w *Wallet) Material() models.EncryptedWallet {
	return w.material
}

// Balance returns the last synchronized balance and whether a sync has
// completed yet.
func (w *Wallet) Balance() (int64, bool) {
	return w.balance.Load(), w.synced.Load()
}

// Close stops background synchronization and waits for it to exit. It is
// idempotent.
func (w *Wallet) Close() error {
	w.closeOnce.Do(func() {
		w.closed.Store(true)
		close(w.stop)
	})
	<-w.done
	return nil
}

// Closed reports whether Close was called.
func (w *Wallet) Closed() bool {
	return w.closed.Load()
}

// Accounts scans the chain and describes the wallet's account.
func (w *Wallet) Accounts(ctx context.Context) ([]models.Account, error) {
	if w.Closed() {
		return nil, ErrWalletClosed
	}

	balance, err := w.syncBalance(ctx)
	if err != nil {
		return nil, err
	}

	return []models.Account{{
		Index:          accountIndex,
		DerivationPath: derivationPath(w.params),
		ReceiveAddress: w.ReceiveAddress(),
		Balance:        balance,
		Network:        w.Network(),
	}}, nil
}

func (w *Wallet) startSync(interval time.Duration) {
	if interval <= 0 {
		close(w.done)
		return
	}
	go w.syncLoop(interval)
}

func (w *Wallet) syncLoop(interval time.Duration) {
	defer close(w.done)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	go func() {
		select {
		case <-w.stop:
			cancel()
		case <-ctx.Done():
		}
	}()

	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		if _, err := w.syncBalance(ctx); err != nil && ctx.Err() == nil {
			w.logger.Warn().Err(err).Msg("balance sync failed")
		}

		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
		}
	}
}

func (w *Wallet) syncBalance(ctx context.Context) (int64, error) {
	res, err := w.node.ScanUnspent(ctx, w.ReceiveAddress())
	if err != nil {
		return 0, err
	}
	total, err := res.Total()
	if err != nil {
		return 0, err
	}

	w.balance.Store(int64(total))
	w.synced.Store(true)
	return int64(total), nil
}
