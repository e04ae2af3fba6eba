package adapter

import (
	"errors"
	"fmt"

	"github.com/MKhiriev/go-wallet-keeper/internal/app"
)

var (
	ErrUnauthorized      = errors.New("client unauthorized")
	ErrInvalidInput      = errors.New("invalid input")
	ErrWrongSecret       = errors.New("wrong secret")
	ErrNotInitiated      = errors.New("wallet is not initiated")
	ErrWalletState       = errors.New("command not allowed in the current wallet state")
	ErrInsufficientFunds = errors.New("insufficient funds")
	ErrNodeUnavailable   = errors.New("node unavailable")
	ErrServer            = errors.New("server error")
)

// sentinelByCode groups server error codes into the client sentinels.
var sentinelByCode = map[string]error{
	app.CodeUnauthorized:      ErrUnauthorized,
	app.CodeInvalidData:       ErrInvalidInput,
	app.CodeWeakSecret:        ErrInvalidInput,
	app.CodeInvalidMnemonic:   ErrInvalidInput,
	app.CodeInvalidAmount:     ErrInvalidInput,
	app.CodeInvalidAddress:    ErrInvalidInput,
	app.CodeDecryptionFailed:  ErrWrongSecret,
	app.CodeNotInitiated:      ErrNotInitiated,
	app.CodeAlreadyInitiated:  ErrWalletState,
	app.CodeWalletNotOpen:     ErrWalletState,
	app.CodeWalletOpen:        ErrWalletState,
	app.CodeSessionBusy:       ErrWalletState,
	app.CodeInsufficientFunds: ErrInsufficientFunds,
	app.CodeNodeUnavailable:   ErrNodeUnavailable,
	app.CodeTransactionFailed: ErrServer,
	app.CodeInternal:          ErrServer,
}

// CommandError is a command the server rejected or failed.
type CommandError struct {
	// Status is the HTTP status or the gRPC code number.
	Status  int
	Code    string
	Message string
}

func (e *CommandError) Error() string {
	if e.Code == "" {
		return fmt.Sprintf("server returned %d: %s", e.Status, e.Message)
	}
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

// Unwrap lets errors.Is match the sentinel of the error code.
func (e *CommandError) Unwrap() error {
	return sentinelByCode[e.Code]
}
