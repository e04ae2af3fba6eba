// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package adapter talks to the wallet keeper server on behalf of the
// command-line client.
//
// [ServerAdapter] hides the transport. The HTTP implementation uses resty,
// the gRPC one the wallet.v1.Wallet client. Both turn failed commands into
// a *[CommandError] that matches the sentinels of errors.go with errors.Is.
package adapter

import (
	"context"

	"github.com/MKhiriev/go-wallet-keeper/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/adapter_mock.go -package=mock

// ServerAdapter is the client view of the wallet command API.
type ServerAdapter interface {
	// SetToken stores the bearer token sent with every command.
	SetToken(token string)

	// Token returns the stored bearer token.
	Token() string

	Create(ctx context.Context, req models.CreateRequest) (models.CreateResponse, error)
	Open(ctx context.Context, req models.OpenRequest) (models.OpenResponse, error)
	Restore(ctx context.Context, req models.RestoreRequest) (models.OpenResponse, error)
	Close(ctx context.Context) (models.CloseResponse, error)

	// Destroy returns a response with Destroyed=false and Code set when
	// the server aborted the destroy; that is not an error.
	Destroy(ctx context.Context, req models.DestroyRequest) (models.DestroyResponse, error)

	Send(ctx context.Context, req models.SendRequest) (models.SendResponse, error)
	Status(ctx context.Context) (models.StatusResponse, error)
	Accounts(ctx context.Context) (models.AccountsResponse, error)
	Version(ctx context.Context) (models.VersionResponse, error)

	// Close of the transport itself.
	Shutdown() error
}
