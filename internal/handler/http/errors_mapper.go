package http

import (
	"errors"
	"net/http"

	"github.com/MKhiriev/go-wallet-keeper/internal/app"
	"github.com/MKhiriev/go-wallet-keeper/internal/rpc"
	"github.com/MKhiriev/go-wallet-keeper/internal/service"
	"github.com/MKhiriev/go-wallet-keeper/internal/wallet"
	"github.com/MKhiriev/go-wallet-keeper/models"
)

type errorMapping struct {
	target  error
	status  int
	code    string
	message string
}

// errorMappings is ordered: a wrapped error takes the first match, so the
// specific causes of a failed payment come before ErrTransactionFailed.
var errorMappings = []errorMapping{
	{service.ErrTokenIsExpiredOrInvalid, http.StatusUnauthorized, app.CodeUnauthorized, app.MsgTokenIsExpiredOrInvalid},

	{service.ErrWeakSecret, http.StatusBadRequest, app.CodeWeakSecret, app.MsgWeakSecret},
	{service.ErrInvalidMnemonic, http.StatusBadRequest, app.CodeInvalidMnemonic, app.MsgInvalidMnemonic},
	{service.ErrInvalidAmount, http.StatusBadRequest, app.CodeInvalidAmount, app.MsgInvalidAmount},
	{service.ErrInvalidAddress, http.StatusBadRequest, app.CodeInvalidAddress, app.MsgInvalidAddress},
	{service.ErrInvalidDataProvided, http.StatusBadRequest, app.CodeInvalidData, app.MsgInvalidDataProvided},

	{service.ErrDecryptionFailed, http.StatusUnauthorized, app.CodeDecryptionFailed, app.MsgDecryptionFailed},

	{service.ErrAlreadyInitiated, http.StatusConflict, app.CodeAlreadyInitiated, app.MsgAlreadyInitiated},
	{service.ErrNotInitiated, http.StatusNotFound, app.CodeNotInitiated, app.MsgNotInitiated},
	{service.ErrWalletNotOpen, http.StatusConflict, app.CodeWalletNotOpen, app.MsgWalletNotOpen},
	{service.ErrWalletAlreadyOpen, http.StatusConflict, app.CodeWalletOpen, app.MsgWalletOpen},
	{service.ErrSessionBusy, http.StatusConflict, app.CodeSessionBusy, app.MsgSessionBusy},
	{service.ErrAbortedByUser, http.StatusOK, app.CodeAbortedByUser, app.MsgAbortedByUser},

	{wallet.ErrInsufficientFunds, http.StatusUnprocessableEntity, app.CodeInsufficientFunds, app.MsgInsufficientFunds},
	{rpc.ErrNoNodes, http.StatusBadGateway, app.CodeNodeUnavailable, app.MsgNodeUnavailable},
	{rpc.ErrNodeUnreachable, http.StatusBadGateway, app.CodeNodeUnavailable, app.MsgNodeUnavailable},
	{service.ErrTransactionFailed, http.StatusBadGateway, app.CodeTransactionFailed, app.MsgTransactionFailed},
}

// responseFromError returns the status and body for err.
func responseFromError(err error) (int, models.ErrorResponse) {
	for _, m := range errorMappings {
		if errors.Is(err, m.target) {
			return m.status, models.ErrorResponse{Code: m.code, Message: m.message}
		}
	}
	return http.StatusInternalServerError, models.ErrorResponse{Code: app.CodeInternal, Message: app.MsgInternalServerError}
}
