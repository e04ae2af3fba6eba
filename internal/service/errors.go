package service

import "errors"

// Validation errors.
var (
	ErrInvalidDataProvided = errors.New("invalid data provided")
	ErrWeakSecret          = errors.New("secret is too weak")
	ErrInvalidMnemonic     = errors.New("invalid recovery phrase")
	ErrInvalidAmount       = errors.New("invalid amount")
	ErrInvalidAddress      = errors.New("invalid recipient")
)

// State errors.
var (
	ErrAlreadyInitiated  = errors.New("wallet already initiated")
	ErrNotInitiated      = errors.New("wallet not initiated")
	ErrWalletNotOpen     = errors.New("wallet is not open")
	ErrWalletAlreadyOpen = errors.New("wallet is already open")
	ErrSessionBusy       = errors.New("wallet is busy")
	ErrAbortedByUser     = errors.New("aborted by user")
)

// ErrDecryptionFailed means the secret does not match the stored wallet.
var ErrDecryptionFailed = errors.New("decryption failed")

// ErrTransactionFailed wraps failures of the payment pipeline. The wallet
// library's *wallet.TransactionError stays reachable through errors.As.
var ErrTransactionFailed = errors.New("transaction failed")

var (
	ErrTokenCreationFailed     = errors.New("token creation failed")
	ErrTokenIsExpiredOrInvalid = errors.New("token is expired or invalid")
	ErrVersionIsNotSpecified   = errors.New("version is not specified")
)

// DestroyConfirmation is the word that confirms Destroy.
const DestroyConfirmation = "destroy"

// IsRejection reports whether err is the caller's fault (validation, state
// or wrong secret) rather than a failure of the service.
func IsRejection(err error) bool {
	for _, target := range []error{
		ErrInvalidDataProvided, ErrWeakSecret, ErrInvalidMnemonic, ErrInvalidAmount, ErrInvalidAddress,
		ErrAlreadyInitiated, ErrNotInitiated, ErrWalletNotOpen, ErrWalletAlreadyOpen, ErrSessionBusy,
		ErrAbortedByUser, ErrDecryptionFailed,
	} {
		if errors.Is(err, target) {
			return true
		}
	}
	return false
}
