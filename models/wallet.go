package models

import "time"

// EncryptedWallet is the persisted form of a wallet. Only the receive
// address is public; the seed entropy is sealed with a key derived from
// the owner's secret.
type EncryptedWallet struct {
	// Identifier is the owner of the wallet and the storage key.
	Identifier string `json:"identifier"`

	// Network the wallet was created for ("mainnet", "testnet3", ...).
	Network string `json:"network"`

	// ReceiveAddress is the cached first receive address. It lets other
	// users address payments to this owner without opening the wallet.
	ReceiveAddress string `json:"receive_address"`

	// Salt feeds the Argon2id key derivation.
	Salt []byte `json:"salt"`

	// Ciphertext is nonce || AES-GCM(seed entropy).
	Ciphertext []byte `json:"ciphertext"`

	// Birthday is the cipher seed birthday. It is part of the recovery
	// phrase and is needed to reproduce the same phrase version.
	Birthday time.Time `json:"birthday"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
