package http

import (
	"errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/MKhiriev/go-wallet-keeper/internal/service"
	"github.com/MKhiriev/go-wallet-keeper/internal/wallet"
	"github.com/MKhiriev/go-wallet-keeper/models"
)

func TestWalletHandler_Create(t *testing.T) {
	api := newTestAPI(t, nil)
	req := models.CreateRequest{Secret: "correct horse battery"}
	want := models.CreateResponse{Mnemonic: []string{"abandon", "ability"}, ReceiveAddress: "bcrt1qalice"}

	api.wallets.EXPECT().Create(gomock.Any(), owner, req).Return(want, nil)

	rec := api.do(t, http.MethodPost, "/api/wallet/create", goodToken, req)
	require.Equal(t, http.StatusCreated, rec.Code)
	assert.Equal(t, want, decodeJSON[models.CreateResponse](t, rec))
}

func TestWalletHandler_InvalidJSON(t *testing.T) {
	api := newTestAPI(t, nil)

	for _, path := range []string{"/api/wallet/create", "/api/wallet/open", "/api/wallet/restore", "/api/wallet/destroy", "/api/wallet/send"} {
		rec := api.do(t, http.MethodPost, path, goodToken, "{not json")
		assert.Equal(t, http.StatusBadRequest, rec.Code, path)
		assert.Equal(t, "invalid_data", decodeJSON[models.ErrorResponse](t, rec).Code, path)
	}
}

func TestWalletHandler_Open(t *testing.T) {
	tests := []struct {
		name       string
		err        error
		wantStatus int
		wantCode   string
	}{
		{name: "ok", wantStatus: http.StatusOK},
		{name: "wrong secret", err: service.ErrDecryptionFailed, wantStatus: http.StatusUnauthorized, wantCode: "decryption_failed"},
		{name: "not initiated", err: service.ErrNotInitiated, wantStatus: http.StatusNotFound, wantCode: "not_initiated"},
		{name: "busy", err: service.ErrSessionBusy, wantStatus: http.StatusConflict, wantCode: "session_busy"},
		{name: "storage down", err: errors.New("connection refused"), wantStatus: http.StatusInternalServerError, wantCode: "internal"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			api := newTestAPI(t, nil)
			req := models.OpenRequest{Secret: "s"}
			api.wallets.EXPECT().Open(gomock.Any(), owner, req).Return(models.OpenResponse{ReceiveAddress: "bcrt1qalice"}, tt.err)

			rec := api.do(t, http.MethodPost, "/api/wallet/open", goodToken, req)
			require.Equal(t, tt.wantStatus, rec.Code)
			if tt.err == nil {
				assert.Equal(t, "bcrt1qalice", decodeJSON[models.OpenResponse](t, rec).ReceiveAddress)
				return
			}
			body := decodeJSON[models.ErrorResponse](t, rec)
			assert.Equal(t, tt.wantCode, body.Code)
			assert.NotContains(t, body.Message, "connection refused")
		})
	}
}

func TestWalletHandler_Restore(t *testing.T) {
	api := newTestAPI(t, nil)
	req := models.RestoreRequest{Mnemonic: "abandon ability", Secret: "new secret!"}
	api.wallets.EXPECT().Restore(gomock.Any(), owner, req).Return(models.OpenResponse{}, service.ErrInvalidMnemonic)

	rec := api.do(t, http.MethodPost, "/api/wallet/restore", goodToken, req)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, "invalid_mnemonic", decodeJSON[models.ErrorResponse](t, rec).Code)
}

func TestWalletHandler_CloseAndStatus(t *testing.T) {
	api := newTestAPI(t, nil)
	api.wallets.EXPECT().Close(gomock.Any(), owner).Return(models.CloseResponse{Closed: true}, nil)
	api.wallets.EXPECT().Status(gomock.Any(), owner).Return(models.StatusResponse{IsInitiated: true}, nil)

	rec := api.do(t, http.MethodPost, "/api/wallet/close", goodToken, nil)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.True(t, decodeJSON[models.CloseResponse](t, rec).Closed)

	rec = api.do(t, http.MethodGet, "/api/wallet/status", goodToken, nil)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, models.StatusResponse{IsInitiated: true}, decodeJSON[models.StatusResponse](t, rec))
}

func TestWalletHandler_Destroy(t *testing.T) {
	t.Run("confirmed", func(t *testing.T) {
		api := newTestAPI(t, nil)
		req := models.DestroyRequest{Confirmation: "destroy"}
		api.wallets.EXPECT().Destroy(gomock.Any(), owner, req).Return(models.DestroyResponse{Destroyed: true}, nil)

		rec := api.do(t, http.MethodPost, "/api/wallet/destroy", goodToken, req)
		require.Equal(t, http.StatusOK, rec.Code)
		assert.True(t, decodeJSON[models.DestroyResponse](t, rec).Destroyed)
	})

	t.Run("aborted", func(t *testing.T) {
		api := newTestAPI(t, nil)
		req := models.DestroyRequest{Confirmation: "yes"}
		api.wallets.EXPECT().Destroy(gomock.Any(), owner, req).Return(models.DestroyResponse{}, service.ErrAbortedByUser)

		rec := api.do(t, http.MethodPost, "/api/wallet/destroy", goodToken, req)
		require.Equal(t, http.StatusOK, rec.Code)
		body := decodeJSON[models.DestroyResponse](t, rec)
		assert.False(t, body.Destroyed)
		assert.Equal(t, "aborted_by_user", body.Code)
	})

	t.Run("not initiated", func(t *testing.T) {
		api := newTestAPI(t, nil)
		api.wallets.EXPECT().Destroy(gomock.Any(), owner, gomock.Any()).Return(models.DestroyResponse{}, service.ErrNotInitiated)

		rec := api.do(t, http.MethodPost, "/api/wallet/destroy", goodToken, models.DestroyRequest{Confirmation: "destroy"})
		assert.Equal(t, http.StatusNotFound, rec.Code)
	})
}

func TestWalletHandler_Send(t *testing.T) {
	t.Run("ok", func(t *testing.T) {
		api := newTestAPI(t, nil)
		req := models.SendRequest{Recipient: "bob", Amount: "1.5", Secret: "s"}
		want := models.SendResponse{
			Summary: models.TransactionSummary{Recipient: "bcrt1qbob", Amount: 150_000_000, Fee: 141},
			TxIDs:   []string{"txid"},
		}
		api.wallets.EXPECT().Send(gomock.Any(), owner, req, gomock.Not(gomock.Nil())).Return(want, nil)

		rec := api.do(t, http.MethodPost, "/api/wallet/send", goodToken, req)
		require.Equal(t, http.StatusOK, rec.Code)
		assert.Equal(t, want, decodeJSON[models.SendResponse](t, rec))
	})

	t.Run("insufficient funds", func(t *testing.T) {
		api := newTestAPI(t, nil)
		err := fmt.Errorf("%w: %w", service.ErrTransactionFailed,
			&wallet.TransactionError{Step: "select inputs", Err: wallet.ErrInsufficientFunds})
		api.wallets.EXPECT().Send(gomock.Any(), owner, gomock.Any(), gomock.Any()).Return(models.SendResponse{}, err)

		rec := api.do(t, http.MethodPost, "/api/wallet/send", goodToken, models.SendRequest{Recipient: "bob", Amount: "100", Secret: "s"})
		assert.Equal(t, http.StatusUnprocessableEntity, rec.Code)
		assert.Equal(t, "insufficient_funds", decodeJSON[models.ErrorResponse](t, rec).Code)
	})

	t.Run("wallet not open", func(t *testing.T) {
		api := newTestAPI(t, nil)
		api.wallets.EXPECT().Send(gomock.Any(), owner, gomock.Any(), gomock.Any()).Return(models.SendResponse{}, service.ErrWalletNotOpen)

		rec := api.do(t, http.MethodPost, "/api/wallet/send", goodToken, models.SendRequest{})
		assert.Equal(t, http.StatusConflict, rec.Code)
		assert.Equal(t, "wallet_not_open", decodeJSON[models.ErrorResponse](t, rec).Code)
	})
}

func TestWalletHandler_Accounts(t *testing.T) {
	api := newTestAPI(t, nil)
	accounts := []models.Account{{DerivationPath: "m/84'/1'/0'/0/0", ReceiveAddress: "bcrt1qalice", Network: "regtest"}}
	api.wallets.EXPECT().Accounts(gomock.Any(), owner).Return(models.AccountsResponse{Accounts: accounts}, nil)

	rec := api.do(t, http.MethodGet, "/api/wallet/accounts", goodToken, nil)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, accounts, decodeJSON[models.AccountsResponse](t, rec).Accounts)
}

func TestWalletHandler_RejectsForeignToken(t *testing.T) {
	api := newTestAPI(t, nil)

	rec := api.do(t, http.MethodGet, "/api/wallet/status", "forged", nil)
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}
