package crypto

//go:generate mockgen -source=interfaces.go -destination=../mock/keychain_service_mock.go -package=mock

// KeyChainService protects wallet seed material at rest. It knows nothing
// about storage, wallets or users; it only derives keys and seals bytes.
//
// Scheme:
//
//	Salt  = GenerateSalt()
//	KEK   = DeriveKEK(secret, salt)        (Argon2id)
//	Blob  = Seal(seed, KEK)                (AES-256-GCM, nonce || ciphertext)
//	Seed  = Open(Blob, KEK)
type KeyChainService interface {
	// GenerateSalt returns 16 random bytes. The salt is stored in clear next
	// to the ciphertext.
	GenerateSalt() ([]byte, error)

	// DeriveKEK derives a 256-bit key-encryption key from the wallet secret
	// and salt using Argon2id. The caller wipes the result after use.
	DeriveKEK(secret, salt []byte) []byte

	// Seal encrypts plaintext with key. The result is nonce || ciphertext.
	Seal(plaintext, key []byte) ([]byte, error)

	// Open reverses Seal. A wrong key yields [ErrDecryptionFailed].
	Open(blob, key []byte) ([]byte, error)
}
