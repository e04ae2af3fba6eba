package models

import (
	"errors"
	"fmt"

	"github.com/golang-jwt/jwt/v5"
)

// ErrEmptySubject is returned when a token carries no "sub" claim.
var ErrEmptySubject = errors.New("token subject is empty")

// Token wraps a JWT whose subject is the wallet owner identifier.
//
// Tokens are minted by the operator (see cmd/client "token") with the
// server's sign key; the server never issues them over the API.
type Token struct {
	*jwt.Token `json:"-"`

	jwt.RegisteredClaims

	// SignedString is the compact JWS form sent as "Bearer <token>".
	SignedString string `json:"-"`

	// Identifier is a cached copy of the subject claim.
	Identifier string `json:"-"`
}

// GetIdentifier returns the owner identifier stored in the subject claim.
func (t *Token) GetIdentifier() (string, error) {
	subject, err := t.GetSubject()
	if err != nil {
		return "", fmt.Errorf("error extracting identifier from token: %w", err)
	}
	if subject == "" {
		return "", ErrEmptySubject
	}
	return subject, nil
}

// String returns the compact JWS serialization.
func (t *Token) String() string {
	return t.SignedString
}
