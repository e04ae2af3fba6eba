package crypto

import "errors"

var (
	// ErrDecryptionFailed is returned by Open when the GCM tag does not
	// verify, which in practice means the wallet secret is wrong.
	ErrDecryptionFailed = errors.New("decryption failed")

	// ErrCiphertextTooShort is returned when a blob cannot even hold a nonce.
	ErrCiphertextTooShort = errors.New("ciphertext too short")
)
