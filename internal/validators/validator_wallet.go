package validators

import (
	"context"
	"fmt"
	"strings"
	"unicode/utf8"

	"github.com/MKhiriev/go-wallet-keeper/models"
)

const (
	FieldSecret       = "secret"
	FieldNewSecret    = "new_secret"
	FieldMnemonic     = "mnemonic"
	FieldConfirmation = "confirmation"
	FieldRecipient    = "recipient"
	FieldAmount       = "amount"
)

const (
	// MinSecretLength is the minimum number of characters of a secret that
	// seals a new wallet.
	MinSecretLength = 10

	// MnemonicWords is the length of a recovery phrase.
	MnemonicWords = 24
)

type WalletRequestValidator struct{}

func NewWalletRequestValidator() Validator {
	return &WalletRequestValidator{}
}

func (v *WalletRequestValidator) Validate(ctx context.Context, obj any, fields ...string) error {
	switch value := obj.(type) {
	case models.CreateRequest:
		return v.validate(fields, []string{FieldNewSecret}, value.Secret, "", "", "", "")
	case *models.CreateRequest:
		return v.Validate(ctx, *value, fields...)

	case models.OpenRequest:
		return v.validate(fields, []string{FieldSecret}, value.Secret, "", "", "", "")
	case *models.OpenRequest:
		return v.Validate(ctx, *value, fields...)

	case models.RestoreRequest:
		return v.validate(fields, []string{FieldMnemonic, FieldNewSecret}, value.Secret, value.Mnemonic, "", "", "")
	case *models.RestoreRequest:
		return v.Validate(ctx, *value, fields...)

	case models.DestroyRequest:
		return v.validate(fields, []string{FieldConfirmation}, "", "", value.Confirmation, "", "")
	case *models.DestroyRequest:
		return v.Validate(ctx, *value, fields...)

	case models.SendRequest:
		return v.validate(fields, []string{FieldRecipient, FieldAmount, FieldSecret}, value.Secret, "", "", value.Recipient, value.Amount)
	case *models.SendRequest:
		return v.Validate(ctx, *value, fields...)

	default:
		return ErrUnsupportedType
	}
}

func (v *WalletRequestValidator) validate(fields, defaults []string, secret, mnemonic, confirmation, recipient, amount string) error {
	if len(fields) == 0 {
		fields = defaults
	}

	for _, f := range fields {
		switch f {
		case FieldSecret:
			if secret == "" {
				return ErrEmptySecret
			}
		case FieldNewSecret:
			if utf8.RuneCountInString(secret) < MinSecretLength {
				return fmt.Errorf("%w: at least %d characters", ErrWeakSecret, MinSecretLength)
			}
		case FieldMnemonic:
			if n := len(SplitMnemonic(mnemonic)); n != MnemonicWords {
				return fmt.Errorf("%w, got %d", ErrInvalidMnemonic, n)
			}
		case FieldConfirmation:
			if strings.TrimSpace(confirmation) == "" {
				return ErrEmptyConfirmation
			}
		case FieldRecipient:
			if strings.TrimSpace(recipient) == "" {
				return ErrEmptyRecipient
			}
		case FieldAmount:
			if strings.TrimSpace(amount) == "" {
				return ErrEmptyAmount
			}
		default:
			return ErrUnknownField
		}
	}

	return nil
}

// SplitMnemonic splits a recovery phrase on any whitespace.
func SplitMnemonic(phrase string) []string {
	return strings.Fields(phrase)
}
