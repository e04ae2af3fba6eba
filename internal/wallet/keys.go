package wallet

import (
	"fmt"

	"github.com/btcsuite/btcd/btcec/v2"
	"github.com/btcsuite/btcd/btcutil"
	"github.com/btcsuite/btcd/btcutil/hdkeychain"
	"github.com/btcsuite/btcd/chaincfg"
)

const (
	purposeBIP84   = 84
	accountIndex   = 0
	externalBranch = 0
	receiveIndex   = 0
)

// derivationPath renders the receive key path for params.
func derivationPath(params *chaincfg.Params) string {
	return fmt.Sprintf("m/%d'/%d'/%d'/%d/%d",
		purposeBIP84, params.HDCoinType, accountIndex, externalBranch, receiveIndex)
}

// receiveKey derives the extended receive key from seed entropy.
func receiveKey(entropy []byte, params *chaincfg.Params) (*hdkeychain.ExtendedKey, error) {
	master, err := hdkeychain.NewMaster(entropy, params)
	if err != nil {
		return nil, fmt.Errorf("master key: %w", err)
	}

	path := []uint32{
		hdkeychain.HardenedKeyStart + purposeBIP84,
		hdkeychain.HardenedKeyStart + params.HDCoinType,
		hdkeychain.HardenedKeyStart + accountIndex,
		externalBranch,
		receiveIndex,
	}

	key := master
	for _, idx := range path {
		key, err = key.Derive(idx)
		if err != nil {
			return nil, fmt.Errorf("derive %d: %w", idx, err)
		}
	}
	return key, nil
}

// receiveAddress returns the P2WPKH address of the receive key.
func receiveAddress(entropy []byte, params *chaincfg.Params) (*btcutil.AddressWitnessPubKeyHash, error) {
	key, err := receiveKey(entropy, params)
	if err != nil {
		return nil, err
	}
	pub, err := key.ECPubKey()
	if err != nil {
		return nil, err
	}
	return p2wpkhAddress(pub, params)
}

func receivePrivKey(entropy []byte, params *chaincfg.Params) (*btcec.PrivateKey, error) {
	key, err := receiveKey(entropy, params)
	if err != nil {
		return nil, err
	}
	return key.ECPrivKey()
}

func p2wpkhAddress(pub *btcec.PublicKey, params *chaincfg.Params) (*btcutil.AddressWitnessPubKeyHash, error) {
	return btcutil.NewAddressWitnessPubKeyHash(btcutil.Hash160(pub.SerializeCompressed()), params)
}
