package wallet

import (
	"errors"
	"fmt"
)

var (
	// ErrUnknownNetwork is returned for a network id without chain params.
	ErrUnknownNetwork = errors.New("unknown network")

	// ErrDecryptionFailed means the secret does not open the stored seed.
	ErrDecryptionFailed = errors.New("wallet secret is wrong")

	// ErrInvalidMnemonic is returned when a recovery phrase does not decode.
	ErrInvalidMnemonic = errors.New("invalid recovery phrase")

	// ErrInvalidAddress is returned for addresses that do not decode for
	// the wallet's network.
	ErrInvalidAddress = errors.New("invalid address")

	// ErrNetworkMismatch is returned when stored material belongs to
	// another network than the library serves.
	ErrNetworkMismatch = errors.New("wallet belongs to another network")

	// ErrInsufficientFunds is returned when unspent outputs cannot cover
	// the payment and its fee.
	ErrInsufficientFunds = errors.New("insufficient funds")

	// ErrDustOutput is returned when an output is below the dust limit.
	ErrDustOutput = errors.New("output amount below dust limit")

	// ErrNoOutputs is returned by Send without outputs.
	ErrNoOutputs = errors.New("no outputs")

	// ErrWalletClosed is returned by operations on a closed wallet.
	ErrWalletClosed = errors.New("wallet is closed")
)

// TransactionError wraps a failure of the payment pipeline with the step
// that failed.
type TransactionError struct {
	Step string
	Err  error
}

func (e *TransactionError) Error() string {
	return fmt.Sprintf("transaction %s: %v", e.Step, e.Err)
}

func (e *TransactionError) Unwrap() error {
	return e.Err
}

func txError(step string, err error) error {
	return &TransactionError{Step: step, Err: err}
}
