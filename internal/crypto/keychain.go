// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package crypto

import (
	"crypto/aes"
	"crypto/cipher"
	"crypto/rand"
	"fmt"
	"io"

	"golang.org/x/crypto/argon2"
)

// Params holds the Argon2id cost parameters.
type Params struct {
	Time    uint32
	Memory  uint32 // KiB
	Threads uint8
	KeyLen  uint32
}

// DefaultParams are the OWASP (2024) recommended Argon2id settings:
// 1 iteration, 64 MiB, 4 lanes, 32 byte key.
var DefaultParams = Params{
	Time:    1,
	Memory:  64 * 1024,
	Threads: 4,
	KeyLen:  32,
}

const saltSize = 16

// keyChainService is the private implementation of [KeyChainService].
type keyChainService struct {
	params Params
}

// NewKeyChainService constructs a [KeyChainService] with [DefaultParams].
func NewKeyChainService() KeyChainService {
	return NewKeyChainServiceWithParams(DefaultParams)
}

// NewKeyChainServiceWithParams constructs a [KeyChainService] with custom
// Argon2id parameters. Zero fields fall back to [DefaultParams].
func NewKeyChainServiceWithParams(p Params) KeyChainService {
	if p.Time == 0 {
		p.Time = DefaultParams.Time
	}
	if p.Memory == 0 {
		p.Memory = DefaultParams.Memory
	}
	if p.Threads == 0 {
		p.Threads = DefaultParams.Threads
	}
	if p.KeyLen == 0 {
		p.KeyLen = DefaultParams.KeyLen
	}
	return &keyChainService{params: p}
}

// GenerateSalt implements [KeyChainService].
func (k *keyChainService) GenerateSalt() ([]byte, error) {
	salt := make([]byte, saltSize)
	if _, err := io.ReadFull(rand.Reader, salt); err != nil {
		return nil, fmt.Errorf("read salt: %w", err)
	}
	return salt, nil
}

// DeriveKEK implements [KeyChainService].
func (k *keyChainService) DeriveKEK(secret, salt []byte) []byte {
	return argon2.IDKey(
		secret,
		salt,
		k.params.Time,
		k.params.Memory,
		k.params.Threads,
		k.params.KeyLen,
	)
}

// Seal implements [KeyChainService]. A random 12-byte nonce is prepended to
// the ciphertext: blob = nonce ‖ ciphertext.
func (k *keyChainService) Seal(plaintext, key []byte) ([]byte, error) {
	gcm, err := newGCM(key)
	if err != nil {
		return nil, err
	}

	nonce := make([]byte, gcm.NonceSize())
	if _, err := io.ReadFull(rand.Reader, nonce); err != nil {
		return nil, fmt.Errorf("generate nonce: %w", err)
	}

	return gcm.Seal(nonce, nonce, plaintext, nil), nil
}

// Open implements [KeyChainService]. An authentication-tag mismatch almost
// always means the wallet secret was wrong and is reported as
// [ErrDecryptionFailed].
func (k *keyChainService) Open(blob, key []byte) ([]byte, error) {
	gcm, err := newGCM(key)
	if err != nil {
		return nil, err
	}

	nonceSize := gcm.NonceSize()
	if len(blob) < nonceSize {
		return nil, ErrCiphertextTooShort
	}

	nonce, ciphertext := blob[:nonceSize], blob[nonceSize:]

	plaintext, err := gcm.Open(nil, nonce, ciphertext, nil)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrDecryptionFailed, err)
	}

	return plaintext, nil
}

func newGCM(key []byte) (cipher.AEAD, error) {
	block, err := aes.NewCipher(key)
	if err != nil {
		return nil, fmt.Errorf("create cipher: %w", err)
	}
	gcm, err := cipher.NewGCM(block)
	if err != nil {
		return nil, fmt.Errorf("create gcm: %w", err)
	}
	return gcm, nil
}
