package wallet

import (
	"context"
	"crypto/rand"
	"fmt"
	"strings"
	"time"

	"github.com/btcsuite/btcd/btcutil"
	"github.com/btcsuite/btcd/chaincfg"
	"github.com/lightningnetwork/lnd/aezeed"

	"github.com/MKhiriev/go-wallet-keeper/internal/crypto"
	"github.com/MKhiriev/go-wallet-keeper/internal/logger"
	"github.com/MKhiriev/go-wallet-keeper/internal/rpc"
	"github.com/MKhiriev/go-wallet-keeper/internal/secret"
	"github.com/MKhiriev/go-wallet-keeper/models"
)

// seedVersion is the aezeed internal version of new seeds.
const seedVersion uint8 = 0

// Options tune the wallets a [Library] builds.
type Options struct {
	// FeeRate in subunits per vbyte, used when the node cannot estimate.
	FeeRate int64

	// ConfTarget is the confirmation target passed to fee estimation.
	// Zero skips estimation.
	ConfTarget int

	// SyncInterval between background balance scans. Zero disables them.
	SyncInterval time.Duration
}

// Library creates, restores and opens wallets for one network.
type Library struct {
	network  string
	params   *chaincfg.Params
	node     rpc.NodeClient
	keychain crypto.KeyChainService
	opts     Options
	logger   *logger.Logger
	now      func() time.Time
}

// NewLibrary builds a library for networkID using node for chain access.
func NewLibrary(networkID string, node rpc.NodeClient, keychain crypto.KeyChainService, opts Options, log *logger.Logger) (*Library, error) {
	params, err := NetworkParams(networkID)
	if err != nil {
		return nil, err
	}
	if opts.FeeRate <= 0 {
		opts.FeeRate = 1
	}

	return &Library{
		network:  params.Name,
		params:   params,
		node:     node,
		keychain: keychain,
		opts:     opts,
		logger:   log,
		now:      time.Now,
	}, nil
}

// Network returns the chain parameter name, e.g. "regtest".
func (l *Library) Network() string {
	return l.network
}

// DecodeAddress decodes addr for the library's network.
func (l *Library) DecodeAddress(addr string) (btcutil.Address, error) {
	return DecodeAddress(addr, l.params)
}

// Create generates a new wallet. The returned recovery phrase is not kept
// anywhere; the caller shows it once.
func (l *Library) Create(ctx context.Context, identifier string, sec *secret.Secret) (*Wallet, models.EncryptedWallet, []string, error) {
	var entropy [aezeed.EntropySize]byte
	if _, err := rand.Read(entropy[:]); err != nil {
		return nil, models.EncryptedWallet{}, nil, fmt.Errorf("read entropy: %w", err)
	}
	defer secret.Wipe(entropy[:])

	seed, err := aezeed.New(seedVersion, &entropy, l.now())
	if err != nil {
		return nil, models.EncryptedWallet{}, nil, fmt.Errorf("new cipher seed: %w", err)
	}

	mnemonic, err := seed.ToMnemonic(nil)
	if err != nil {
		return nil, models.EncryptedWallet{}, nil, fmt.Errorf("encode mnemonic: %w", err)
	}

	w, material, err := l.build(ctx, identifier, seed, sec)
	if err != nil {
		return nil, models.EncryptedWallet{}, nil, err
	}

	return w, material, mnemonic[:], nil
}

// Restore rebuilds a wallet from its recovery phrase and seals it with a
// possibly new secret.
func (l *Library) Restore(ctx context.Context, identifier string, words []string, sec *secret.Secret) (*Wallet, models.EncryptedWallet, error) {
	if len(words) != aezeed.NumMnemonicWords {
		return nil, models.EncryptedWallet{}, fmt.Errorf("%w: expected %d words, got %d",
			ErrInvalidMnemonic, aezeed.NumMnemonicWords, len(words))
	}

	var mnemonic aezeed.Mnemonic
	for i, w := range words {
		mnemonic[i] = strings.ToLower(strings.TrimSpace(w))
	}

	seed, err := mnemonic.ToCipherSeed(nil)
	if err != nil {
		return nil, models.EncryptedWallet{}, fmt.Errorf("%w: %w", ErrInvalidMnemonic, err)
	}
	defer secret.Wipe(seed.Entropy[:])

	return l.build(ctx, identifier, seed, sec)
}

// Open decrypts stored material with sec and starts the wallet.
func (l *Library) Open(ctx context.Context, material models.EncryptedWallet, sec *secret.Secret) (*Wallet, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if material.Network != l.network {
		return nil, fmt.Errorf("%w: stored for %q", ErrNetworkMismatch, material.Network)
	}

	entropy, err := l.unseal(material, sec)
	if err != nil {
		return nil, err
	}
	defer secret.Wipe(entropy)

	addr, err := receiveAddress(entropy, l.params)
	if err != nil {
		return nil, err
	}
	if addr.EncodeAddress() != material.ReceiveAddress {
		return nil, fmt.Errorf("stored receive address does not match seed")
	}

	return l.start(material, addr)
}

func (l *Library) build(ctx context.Context, identifier string, seed *aezeed.CipherSeed, sec *secret.Secret) (*Wallet, models.EncryptedWallet, error) {
	if err := ctx.Err(); err != nil {
		return nil, models.EncryptedWallet{}, err
	}

	addr, err := receiveAddress(seed.Entropy[:], l.params)
	if err != nil {
		return nil, models.EncryptedWallet{}, err
	}

	salt, err := l.keychain.GenerateSalt()
	if err != nil {
		return nil, models.EncryptedWallet{}, err
	}
	kek := l.keychain.DeriveKEK(sec.Bytes(), salt)
	defer secret.Wipe(kek)

	ciphertext, err := l.keychain.Seal(seed.Entropy[:], kek)
	if err != nil {
		return nil, models.EncryptedWallet{}, fmt.Errorf("seal seed: %w", err)
	}

	now := l.now().UTC()
	material := models.EncryptedWallet{
		Identifier:     identifier,
		Network:        l.network,
		ReceiveAddress: addr.EncodeAddress(),
		Salt:           salt,
		Ciphertext:     ciphertext,
		Birthday:       seed.BirthdayTime().UTC(),
		CreatedAt:      now,
		UpdatedAt:      now,
	}

	w, err := l.start(material, addr)
	if err != nil {
		return nil, models.EncryptedWallet{}, err
	}
	return w, material, nil
}

func (l *Library) unseal(material models.EncryptedWallet, sec *secret.Secret) ([]byte, error) {
	kek := l.keychain.DeriveKEK(sec.Bytes(), material.Salt)
	defer secret.Wipe(kek)

	entropy, err := l.keychain.Open(material.Ciphertext, kek)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrDecryptionFailed, err)
	}
	return entropy, nil
}

func (l *Library) start(material models.EncryptedWallet, addr *btcutil.AddressWitnessPubKeyHash) (*Wallet, error) {
	w, err := newWallet(l, material, addr)
	if err != nil {
		return nil, err
	}
	w.startSync(l.opts.SyncInterval)
	return w, nil
}
