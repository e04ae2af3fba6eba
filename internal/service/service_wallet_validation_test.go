package service

import (
	"context"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/MKhiriev/go-wallet-keeper/internal/mock"
	"github.com/MKhiriev/go-wallet-keeper/models"
)

func newValidatedService(ctrl *gomock.Controller) (WalletService, *mock.MockWalletService) {
	inner := mock.NewMockWalletService(ctrl)
	return NewWalletValidationService().Wrap(inner), inner
}

func TestWalletValidationService_Create(t *testing.T) {
	tests := []struct {
		name    string
		secret  string
		wantErr error
	}{
		{name: "empty", secret: "", wantErr: ErrWeakSecret},
		{name: "short", secret: "123456789", wantErr: ErrWeakSecret},
		{name: "ten runes", secret: "пароль-123"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			svc, inner := newValidatedService(ctrl)
			ctx := context.Background()
			req := models.CreateRequest{Secret: tt.secret}

			if tt.wantErr == nil {
				inner.EXPECT().Create(ctx, testOwner, req).Return(models.CreateResponse{ReceiveAddress: testAddress}, nil)
			}

			resp, err := svc.Create(ctx, testOwner, req)
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, testAddress, resp.ReceiveAddress)
		})
	}
}

func TestWalletValidationService_OpenRequiresSecret(t *testing.T) {
	ctrl := gomock.NewController(t)
	svc, _ := newValidatedService(ctrl)

	_, err := svc.Open(context.Background(), testOwner, models.OpenRequest{})
	assert.ErrorIs(t, err, ErrInvalidDataProvided)
}

func TestWalletValidationService_OpenAcceptsShortSecret(t *testing.T) {
	ctrl := gomock.NewController(t)
	svc, inner := newValidatedService(ctrl)
	ctx := context.Background()

	// the length rule applies to new secrets only
	inner.EXPECT().Open(ctx, testOwner, models.OpenRequest{Secret: "short"}).Return(models.OpenResponse{}, nil)

	_, err := svc.Open(ctx, testOwner, models.OpenRequest{Secret: "short"})
	require.NoError(t, err)
}

func TestWalletValidationService_Restore(t *testing.T) {
	words := strings.TrimSpace(strings.Repeat("abandon ", 24))

	ctrl := gomock.NewController(t)
	svc, inner := newValidatedService(ctrl)
	ctx := context.Background()

	_, err := svc.Restore(ctx, testOwner, models.RestoreRequest{Mnemonic: "abandon abandon", Secret: testSecret})
	assert.ErrorIs(t, err, ErrInvalidMnemonic)

	_, err = svc.Restore(ctx, testOwner, models.RestoreRequest{Mnemonic: words, Secret: "short"})
	assert.ErrorIs(t, err, ErrWeakSecret)

	req := models.RestoreRequest{Mnemonic: words, Secret: testSecret}
	inner.EXPECT().Restore(ctx, testOwner, req).Return(models.OpenResponse{}, nil)
	_, err = svc.Restore(ctx, testOwner, req)
	require.NoError(t, err)
}

func TestWalletValidationService_Send(t *testing.T) {
	ctrl := gomock.NewController(t)
	svc, inner := newValidatedService(ctrl)
	ctx := context.Background()

	_, err := svc.Send(ctx, testOwner, models.SendRequest{Amount: "1", Secret: testSecret}, nil)
	assert.ErrorIs(t, err, ErrInvalidAddress)

	_, err = svc.Send(ctx, testOwner, models.SendRequest{Recipient: "bob", Secret: testSecret}, nil)
	assert.ErrorIs(t, err, ErrInvalidAmount)

	_, err = svc.Send(ctx, testOwner, models.SendRequest{Recipient: "bob", Amount: "1"}, nil)
	assert.ErrorIs(t, err, ErrInvalidDataProvided)

	req := models.SendRequest{Recipient: "bob", Amount: "1", Secret: "s"}
	inner.EXPECT().Send(ctx, testOwner, req, gomock.Nil()).Return(models.SendResponse{TxIDs: []string{"txid"}}, nil)
	resp, err := svc.Send(ctx, testOwner, req, nil)
	require.NoError(t, err)
	assert.Equal(t, []string{"txid"}, resp.TxIDs)
}

func TestWalletValidationService_DestroyPassesConfirmationThrough(t *testing.T) {
	ctrl := gomock.NewController(t)
	svc, inner := newValidatedService(ctrl)
	ctx := context.Background()

	inner.EXPECT().Destroy(ctx, testOwner, models.DestroyRequest{}).Return(models.DestroyResponse{}, ErrNotInitiated)

	_, err := svc.Destroy(ctx, testOwner, models.DestroyRequest{})
	assert.ErrorIs(t, err, ErrNotInitiated)
}

func TestWalletValidationService_EmptyIdentifier(t *testing.T) {
	ctrl := gomock.NewController(t)
	svc, _ := newValidatedService(ctrl)
	ctx := context.Background()

	_, err := svc.Create(ctx, "", models.CreateRequest{Secret: testSecret})
	assert.ErrorIs(t, err, ErrInvalidDataProvided)
	_, err = svc.Close(ctx, "")
	assert.ErrorIs(t, err, ErrInvalidDataProvided)
	_, err = svc.Destroy(ctx, "", models.DestroyRequest{Confirmation: DestroyConfirmation})
	assert.ErrorIs(t, err, ErrInvalidDataProvided)
	_, err = svc.Status(ctx, "")
	assert.ErrorIs(t, err, ErrInvalidDataProvided)
	_, err = svc.Accounts(ctx, "")
	assert.ErrorIs(t, err, ErrInvalidDataProvided)
}

func TestWalletValidationService_QueriesPassThrough(t *testing.T) {
	ctrl := gomock.NewController(t)
	svc, inner := newValidatedService(ctrl)
	ctx := context.Background()

	inner.EXPECT().Close(ctx, testOwner).Return(models.CloseResponse{Closed: true}, nil)
	inner.EXPECT().Status(ctx, testOwner).Return(models.StatusResponse{IsInitiated: true}, nil)
	inner.EXPECT().Accounts(ctx, testOwner).Return(models.AccountsResponse{}, nil)

	closed, err := svc.Close(ctx, testOwner)
	require.NoError(t, err)
	assert.True(t, closed.Closed)

	status, err := svc.Status(ctx, testOwner)
	require.NoError(t, err)
	assert.True(t, status.IsInitiated)

	_, err = svc.Accounts(ctx, testOwner)
	require.NoError(t, err)
}
