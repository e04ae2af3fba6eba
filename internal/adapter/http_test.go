// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package adapter

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MKhiriev/go-wallet-keeper/internal/config"
	"github.com/MKhiriev/go-wallet-keeper/internal/logger"
	"github.com/MKhiriev/go-wallet-keeper/models"
)

func newTestAdapter(t *testing.T, handler http.HandlerFunc) ServerAdapter {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)

	a, err := NewHTTPServerAdapter(config.ClientAdapter{
		HTTPAddress:    srv.URL,
		RequestTimeout: 5 * time.Second,
		Token:          " tok ",
	}, logger.Nop())
	require.NoError(t, err)
	return a
}

func writeJSON(t *testing.T, w http.ResponseWriter, status int, v any) {
	t.Helper()
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	require.NoError(t, json.NewEncoder(w).Encode(v))
}

func TestHTTPAdapter_Create(t *testing.T) {
	a := newTestAdapter(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/api/wallet/create", r.URL.Path)
		assert.Equal(t, "Bearer tok", r.Header.Get("Authorization"))

		var req models.CreateRequest
		require.NoError(t, json.NewDecoder(r.Body).Decode(&req))
		assert.Equal(t, "correct horse battery", req.Secret)

		writeJSON(t, w, http.StatusCreated, models.CreateResponse{Mnemonic: []string{"abandon"}, ReceiveAddress: "bcrt1q"})
	})

	resp, err := a.Create(context.Background(), models.CreateRequest{Secret: "correct horse battery"})
	require.NoError(t, err)
	assert.Equal(t, "bcrt1q", resp.ReceiveAddress)
	assert.Equal(t, "tok", a.Token())
}

func TestHTTPAdapter_ErrorBody(t *testing.T) {
	a := newTestAdapter(t, func(w http.ResponseWriter, r *http.Request) {
		writeJSON(t, w, http.StatusUnauthorized, models.ErrorResponse{Code: "decryption_failed", Message: "the secret is wrong"})
	})

	_, err := a.Open(context.Background(), models.OpenRequest{Secret: "nope"})
	require.ErrorIs(t, err, ErrWrongSecret)

	var cmdErr *CommandError
	require.ErrorAs(t, err, &cmdErr)
	assert.Equal(t, http.StatusUnauthorized, cmdErr.Status)
	assert.Equal(t, "the secret is wrong", cmdErr.Message)
}

func TestHTTPAdapter_PlainErrorBody(t *testing.T) {
	a := newTestAdapter(t, func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "upstream down", http.StatusBadGateway)
	})

	_, err := a.Status(context.Background())
	assert.ErrorIs(t, err, ErrNodeUnavailable)
	assert.Contains(t, err.Error(), "upstream down")
}

func TestHTTPAdapter_DestroyAbortedIsNotAnError(t *testing.T) {
	a := newTestAdapter(t, func(w http.ResponseWriter, r *http.Request) {
		writeJSON(t, w, http.StatusOK, models.DestroyResponse{Code: "aborted_by_user", Message: "aborted"})
	})

	resp, err := a.Destroy(context.Background(), models.DestroyRequest{Confirmation: "no"})
	require.NoError(t, err)
	assert.False(t, resp.Destroyed)
	assert.Equal(t, "aborted_by_user", resp.Code)
}

func TestHTTPAdapter_VersionIsUnauthenticated(t *testing.T) {
	a := newTestAdapter(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/api/version/", r.URL.Path)
		assert.Empty(t, r.Header.Get("Authorization"))
		writeJSON(t, w, http.StatusOK, models.VersionResponse{Version: "1.0.0", Network: "regtest"})
	})

	resp, err := a.Version(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "regtest", resp.Network)
}

func TestHTTPAdapter_MalformedResponse(t *testing.T) {
	a := newTestAdapter(t, func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte("not json"))
	})

	_, err := a.Accounts(context.Background())
	assert.ErrorContains(t, err, "decode")
}

func TestNormalizeBaseURL(t *testing.T) {
	tests := []struct {
		in      string
		want    string
		wantErr bool
	}{
		{in: "localhost:8080", want: "http://localhost:8080"},
		{in: "https://wallet.example.com/", want: "https://wallet.example.com"},
		{in: "  ", wantErr: true},
		{in: "http://", wantErr: true},
	}

	for _, tt := range tests {
		got, err := normalizeBaseURL(tt.in)
		if tt.wantErr {
			assert.Error(t, err, tt.in)
			continue
		}
		require.NoError(t, err, tt.in)
		assert.Equal(t, tt.want, got)
	}
}
