// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package secret provides a container for user supplied wallet passphrases.
//
// A [Secret] is never printed, never serialised and is compared only in
// constant time. Owners must call [Secret.Zero] when the value is no longer
// needed; the backing bytes are overwritten in place.
package secret

import (
	"crypto/subtle"
	"runtime"
	"unicode/utf8"

	"github.com/rs/zerolog"
)

const redacted = "[REDACTED]"

// Secret holds passphrase bytes. The zero value is an empty secret.
type Secret struct {
	b []byte
}

// New copies s into a fresh Secret. The caller's string cannot be wiped, so
// transports should drop their own references as early as possible.
func New(s string) *Secret {
	return &Secret{b: []byte(s)}
}

// FromBytes takes ownership of b. The slice is wiped by [Secret.Zero].
func FromBytes(b []byte) *Secret {
	return &Secret{b: b}
}

// Bytes exposes the raw bytes. The slice aliases the secret's storage and
// becomes all zeroes after Zero.
func (s *Secret) Bytes() []byte {
	if s == nil {
		return nil
	}
	return s.b
}

// Len returns the passphrase length in characters.
func (s *Secret) Len() int {
	if s == nil {
		return 0
	}
	return utf8.RuneCount(s.b)
}

// Equal reports whether both secrets hold the same bytes in constant time.
func (s *Secret) Equal(other *Secret) bool {
	return subtle.ConstantTimeCompare(s.Bytes(), other.Bytes()) == 1
}

// Zero overwrites the secret with zeroes.
//
//go:noinline
func (s *Secret) Zero() {
	if s == nil {
		return
	}
	for i := range s.b {
		s.b[i] = 0
	}
	runtime.KeepAlive(&s.b)
}

// String implements fmt.Stringer and never reveals the value.
func (s *Secret) String() string {
	return redacted
}

// GoString implements fmt.GoStringer for %#v.
func (s *Secret) GoString() string {
	return redacted
}

// MarshalJSON keeps secrets out of any encoded payload.
func (s *Secret) MarshalJSON() ([]byte, error) {
	return []byte(`"` + redacted + `"`), nil
}

// MarshalZerologObject keeps secrets out of structured logs.
func (s *Secret) MarshalZerologObject(e *zerolog.Event) {
	e.Str("secret", redacted)
}

// Wipe zeroes an arbitrary buffer holding key material.
//
//go:noinline
func Wipe(b []byte) {
	for i := range b {
		b[i] = 0
	}
	runtime.KeepAlive(&b)
}
