package client

import (
	"context"

	"github.com/MKhiriev/go-wallet-keeper/internal/adapter"
	"github.com/MKhiriev/go-wallet-keeper/internal/config"
)

// Client is a runnable command-line application.
type Client interface {
	// Run executes the command line args and returns its error.
	Run(ctx context.Context, args []string) error
}

// AdapterFactory builds the server adapter once flags are applied.
type AdapterFactory func(cfg config.ClientAdapter) (adapter.ServerAdapter, error)
