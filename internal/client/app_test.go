package client

import (
	"bytes"
	"context"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/MKhiriev/go-wallet-keeper/internal/adapter"
	"github.com/MKhiriev/go-wallet-keeper/internal/config"
	"github.com/MKhiriev/go-wallet-keeper/internal/logger"
	"github.com/MKhiriev/go-wallet-keeper/internal/mock"
	"github.com/MKhiriev/go-wallet-keeper/internal/utils"
	"github.com/MKhiriev/go-wallet-keeper/models"
)

type testClient struct {
	app     *App
	server  *mock.MockServerAdapter
	out     *bytes.Buffer
	adapter config.ClientAdapter
}

func newTestClient(t *testing.T, stdin string) *testClient {
	t.Helper()
	ctrl := gomock.NewController(t)

	tc := &testClient{
		server: mock.NewMockServerAdapter(ctrl),
		out:    &bytes.Buffer{},
	}
	cfg := &config.ClientConfig{
		App: config.ClientApp{TokenSignKey: "sign", TokenIssuer: "go-wallet-keeper", TokenDuration: time.Hour},
		Adapter: config.ClientAdapter{
			HTTPAddress:    "localhost:8080",
			RequestTimeout: time.Second,
		},
	}
	factory := func(c config.ClientAdapter) (adapter.ServerAdapter, error) {
		tc.adapter = c
		return tc.server, nil
	}
	tc.app = NewApp(cfg, factory, strings.NewReader(stdin), tc.out, logger.Nop())
	return tc
}

func (tc *testClient) expectShutdown() {
	tc.server.EXPECT().Shutdown().Return(nil)
}

func TestClient_Token(t *testing.T) {
	tc := newTestClient(t, "")

	require.NoError(t, tc.app.Run(context.Background(), []string{"token", "alice"}))

	signed := strings.TrimSpace(tc.out.String())
	token, err := utils.ValidateAndParseJWTToken(signed, "sign", "go-wallet-keeper")
	require.NoError(t, err)
	assert.Equal(t, "alice", token.Identifier)
}

func TestClient_TokenWithoutSignKey(t *testing.T) {
	tc := newTestClient(t, "")
	tc.app.cfg.App.TokenSignKey = ""

	assert.ErrorIs(t, tc.app.Run(context.Background(), []string{"token", "alice"}), errNoSignKey)
}

func TestClient_CreatePromptsForSecret(t *testing.T) {
	tc := newTestClient(t, "correct horse battery\n")
	tc.server.EXPECT().Create(gomock.Any(), models.CreateRequest{Secret: "correct horse battery"}).
		Return(models.CreateResponse{Mnemonic: []string{"abandon", "ability"}, ReceiveAddress: "bcrt1qalice"}, nil)
	tc.expectShutdown()

	require.NoError(t, tc.app.Run(context.Background(), []string{"create"}))

	out := tc.out.String()
	assert.Contains(t, out, " 1. abandon")
	assert.Contains(t, out, " 2. ability")
	assert.Contains(t, out, "bcrt1qalice")
}

func TestClient_FlagsOverrideConfig(t *testing.T) {
	tc := newTestClient(t, "")
	tc.server.EXPECT().Status(gomock.Any()).Return(models.StatusResponse{IsInitiated: true}, nil)
	tc.expectShutdown()

	err := tc.app.Run(context.Background(), []string{
		"status", "--transport", "grpc", "--grpc-address", "wallet:9090", "--token", "tok",
	})
	require.NoError(t, err)

	assert.Equal(t, config.TransportGRPC, tc.adapter.Transport)
	assert.Equal(t, "wallet:9090", tc.adapter.GRPCAddress)
	assert.Equal(t, "tok", tc.adapter.Token)
	assert.Contains(t, tc.out.String(), "initiated: true\nopened: false")
}

func TestClient_InvalidTransport(t *testing.T) {
	tc := newTestClient(t, "")

	err := tc.app.Run(context.Background(), []string{"status", "--transport", "smtp"})
	assert.ErrorIs(t, err, config.ErrInvalidAdapterConfigs)
}

func TestClient_Destroy(t *testing.T) {
	t.Run("confirmed at the prompt", func(t *testing.T) {
		tc := newTestClient(t, "destroy\n")
		tc.server.EXPECT().Destroy(gomock.Any(), models.DestroyRequest{Confirmation: "destroy"}).
			Return(models.DestroyResponse{Destroyed: true}, nil)
		tc.expectShutdown()

		require.NoError(t, tc.app.Run(context.Background(), []string{"destroy"}))
		assert.Contains(t, tc.out.String(), "wallet destroyed")
	})

	t.Run("aborted", func(t *testing.T) {
		tc := newTestClient(t, "")
		tc.server.EXPECT().Destroy(gomock.Any(), models.DestroyRequest{Confirmation: "nope"}).
			Return(models.DestroyResponse{Code: "aborted_by_user", Message: "destroy was not confirmed"}, nil)
		tc.expectShutdown()

		require.NoError(t, tc.app.Run(context.Background(), []string{"destroy", "--confirm", "nope"}))
		assert.Contains(t, tc.out.String(), "destroy aborted: destroy was not confirmed")
	})
}

func TestClient_Send(t *testing.T) {
	tc := newTestClient(t, "")
	tc.server.EXPECT().Send(gomock.Any(), models.SendRequest{Recipient: "bob", Amount: "1.5", Secret: "s3cret-s3cret"}).
		Return(models.SendResponse{
			Summary: models.TransactionSummary{Recipient: "bcrt1qbob", Amount: 150_000_000, Fee: 1_000, Inputs: 1, Network: "regtest"},
			TxIDs:   []string{"abc"},
		}, nil)
	tc.expectShutdown()

	require.NoError(t, tc.app.Run(context.Background(), []string{"send", "bob", "1.5", "--secret", "s3cret-s3cret"}))

	out := tc.out.String()
	assert.Contains(t, out, "bcrt1qbob")
	assert.Contains(t, out, "txid: abc")
}

func TestClient_ServerErrorIsReturned(t *testing.T) {
	tc := newTestClient(t, "")
	cmdErr := &adapter.CommandError{Status: 409, Code: "wallet_not_open", Message: "wallet is not open"}
	tc.server.EXPECT().Accounts(gomock.Any()).Return(models.AccountsResponse{}, cmdErr)
	tc.expectShutdown()

	err := tc.app.Run(context.Background(), []string{"accounts"})
	assert.ErrorIs(t, err, adapter.ErrWalletState)
}

func TestClient_PromptEOF(t *testing.T) {
	tc := newTestClient(t, "")
	tc.expectShutdown()

	err := tc.app.Run(context.Background(), []string{"open"})
	assert.Error(t, err)
}
