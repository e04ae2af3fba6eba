package service

import (
	"context"
	"errors"
	"io"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/MKhiriev/go-wallet-keeper/internal/metrics"
	"github.com/MKhiriev/go-wallet-keeper/internal/mock"
	"github.com/MKhiriev/go-wallet-keeper/models"
)

func scrape(t *testing.T, m *metrics.Metrics) string {
	t.Helper()
	rec := httptest.NewRecorder()
	m.Handler().ServeHTTP(rec, httptest.NewRequest("GET", "/metrics", nil))
	body, err := io.ReadAll(rec.Body)
	require.NoError(t, err)
	return string(body)
}

func TestWalletMetricsService_CountsOutcomes(t *testing.T) {
	ctrl := gomock.NewController(t)
	inner := mock.NewMockWalletService(ctrl)
	m := metrics.New(func() int { return 0 }, models.NewAppBuildInfo("1.0.0", "", ""), "regtest")
	svc := NewWalletMetricsService(m).Wrap(inner)
	ctx := context.Background()

	inner.EXPECT().Open(ctx, testOwner, gomock.Any()).Return(models.OpenResponse{ReceiveAddress: testAddress}, nil)
	inner.EXPECT().Open(ctx, testOwner, gomock.Any()).Return(models.OpenResponse{}, ErrDecryptionFailed)
	inner.EXPECT().Send(ctx, testOwner, gomock.Any(), gomock.Any()).Return(models.SendResponse{}, errors.New("node down"))

	resp, err := svc.Open(ctx, testOwner, models.OpenRequest{Secret: testSecret})
	require.NoError(t, err)
	assert.Equal(t, testAddress, resp.ReceiveAddress)

	_, err = svc.Open(ctx, testOwner, models.OpenRequest{Secret: "wrong"})
	assert.ErrorIs(t, err, ErrDecryptionFailed)

	_, err = svc.Send(ctx, testOwner, models.SendRequest{}, nil)
	assert.Error(t, err)

	body := scrape(t, m)
	assert.Contains(t, body, `wallet_keeper_commands_total{command="open",result="ok"} 1`)
	assert.Contains(t, body, `wallet_keeper_commands_total{command="open",result="rejected"} 1`)
	assert.Contains(t, body, `wallet_keeper_commands_total{command="send",result="error"} 1`)
}

func TestWalletMetricsService_NilMetrics(t *testing.T) {
	ctrl := gomock.NewController(t)
	inner := mock.NewMockWalletService(ctrl)
	svc := NewWalletMetricsService(nil).Wrap(inner)
	ctx := context.Background()

	inner.EXPECT().Status(ctx, testOwner).Return(models.StatusResponse{IsOpened: true, IsInitiated: true}, nil)

	status, err := svc.Status(ctx, testOwner)
	require.NoError(t, err)
	assert.True(t, status.IsOpened)
}

func TestIsRejection(t *testing.T) {
	assert.True(t, IsRejection(ErrAbortedByUser))
	assert.True(t, IsRejection(errors.Join(errors.New("ctx"), ErrInvalidAmount)))
	assert.False(t, IsRejection(ErrTransactionFailed))
	assert.False(t, IsRejection(errors.New("boom")))
}
