package validators

import "errors"

var (
	ErrUnsupportedType = errors.New("unsupported type for validation")
	ErrUnknownField    = errors.New("unknown field for validation")

	ErrEmptySecret       = errors.New("secret is required")
	ErrWeakSecret        = errors.New("secret is too short")
	ErrInvalidMnemonic   = errors.New("recovery phrase must have 24 words")
	ErrEmptyConfirmation = errors.New("confirmation is required")
	ErrEmptyRecipient    = errors.New("recipient is required")
	ErrEmptyAmount       = errors.New("amount is required")
)
