package grpc

import (
	"errors"

	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	"github.com/MKhiriev/go-wallet-keeper/internal/app"
	"github.com/MKhiriev/go-wallet-keeper/internal/rpc"
	"github.com/MKhiriev/go-wallet-keeper/internal/service"
	"github.com/MKhiriev/go-wallet-keeper/internal/wallet"
)

type errorMapping struct {
	target  error
	code    codes.Code
	errCode string
	message string
}

// errorMappings is ordered like its HTTP counterpart: the first match wins.
var errorMappings = []errorMapping{
	{service.ErrTokenIsExpiredOrInvalid, codes.Unauthenticated, app.CodeUnauthorized, app.MsgTokenIsExpiredOrInvalid},

	{service.ErrWeakSecret, codes.InvalidArgument, app.CodeWeakSecret, app.MsgWeakSecret},
	{service.ErrInvalidMnemonic, codes.InvalidArgument, app.CodeInvalidMnemonic, app.MsgInvalidMnemonic},
	{service.ErrInvalidAmount, codes.InvalidArgument, app.CodeInvalidAmount, app.MsgInvalidAmount},
	{service.ErrInvalidAddress, codes.InvalidArgument, app.CodeInvalidAddress, app.MsgInvalidAddress},
	{service.ErrInvalidDataProvided, codes.InvalidArgument, app.CodeInvalidData, app.MsgInvalidDataProvided},

	{service.ErrDecryptionFailed, codes.Unauthenticated, app.CodeDecryptionFailed, app.MsgDecryptionFailed},

	{service.ErrAlreadyInitiated, codes.FailedPrecondition, app.CodeAlreadyInitiated, app.MsgAlreadyInitiated},
	{service.ErrNotInitiated, codes.NotFound, app.CodeNotInitiated, app.MsgNotInitiated},
	{service.ErrWalletNotOpen, codes.FailedPrecondition, app.CodeWalletNotOpen, app.MsgWalletNotOpen},
	{service.ErrWalletAlreadyOpen, codes.FailedPrecondition, app.CodeWalletOpen, app.MsgWalletOpen},
	{service.ErrSessionBusy, codes.Aborted, app.CodeSessionBusy, app.MsgSessionBusy},

	{wallet.ErrInsufficientFunds, codes.FailedPrecondition, app.CodeInsufficientFunds, app.MsgInsufficientFunds},
	{rpc.ErrNoNodes, codes.Unavailable, app.CodeNodeUnavailable, app.MsgNodeUnavailable},
	{rpc.ErrNodeUnreachable, codes.Unavailable, app.CodeNodeUnavailable, app.MsgNodeUnavailable},
	{service.ErrTransactionFailed, codes.Internal, app.CodeTransactionFailed, app.MsgTransactionFailed},
}

// statusFromError returns the status for err and the error code sent in
// the trailer.
func statusFromError(err error) (*status.Status, string) {
	for _, m := range errorMappings {
		if errors.Is(err, m.target) {
			return status.New(m.code, m.message), m.errCode
		}
	}
	return status.New(codes.Internal, app.MsgInternalServerError), app.CodeInternal
}

func isServerFault(c codes.Code) bool {
	switch c {
	case codes.Internal, codes.Unavailable, codes.Unknown:
		return true
	}
	return false
}
