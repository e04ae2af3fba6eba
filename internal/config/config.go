// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"time"
)

// StructuredConfig is the top-level configuration of the wallet server. It is
// populated by merging environment variables, command-line flags, an optional
// JSON or TOML file and built-in defaults, and is immutable once returned.
//
// Struct tags:
//   - envPrefix: prefix applied to nested env lookups (caarlos0/env).
//   - env: environment variable name for scalar fields.
type StructuredConfig struct {
	// App holds token parameters and the application version.
	App App `envPrefix:"APP_"`

	// Network selects the ledger network and the node the server talks to.
	Network Network `envPrefix:"NETWORK_"`

	// Storage holds the wallet database settings.
	Storage Storage `envPrefix:"STORAGE_"`

	// Server holds listen addresses and timeouts of the HTTP and gRPC servers.
	Server Server `envPrefix:"SERVER_"`

	// Adapter is the client-side view of the server (used by cmd/client).
	Adapter Adapter `envPrefix:"ADAPTER_"`

	// Workers holds background job settings.
	Workers Workers `envPrefix:"WORKERS_"`

	// FilePath is the optional path to a JSON or TOML configuration file,
	// selected by extension. Env: CONFIG, flags: -c / -config.
	FilePath string `env:"CONFIG"`
}

// App holds application-level settings.
type App struct {
	// TokenSignKey signs and verifies the bearer tokens that carry the wallet
	// owner identifier. Required.
	// Env: APP_TOKEN_SIGN_KEY
	TokenSignKey string `env:"TOKEN_SIGN_KEY"`

	// TokenIssuer is the "iss" claim minted into and required from tokens.
	// Env: APP_TOKEN_ISSUER
	TokenIssuer string `env:"TOKEN_ISSUER"`

	// TokenDuration is the lifetime of minted tokens.
	// Env: APP_TOKEN_DURATION
	TokenDuration time.Duration `env:"TOKEN_DURATION"`

	// Version is exposed via /api/version/.
	// Env: APP_VERSION
	Version string `env:"VERSION"`

	// LogLevel is a zerolog level name ("debug", "info", ...).
	// Env: APP_LOG_LEVEL
	LogLevel string `env:"LOG_LEVEL"`
}

// Network selects the ledger network and node endpoints.
type Network struct {
	// ID is the network name: mainnet, testnet3, regtest, simnet or signet.
	// Required.
	// Env: NETWORK_ID
	ID string `env:"ID"`

	// ForcedNodeURL, when set, overrides the resolver and is always used.
	// Env: NETWORK_FORCED_NODE_URL
	ForcedNodeURL string `env:"FORCED_NODE_URL"`

	// Nodes is the resolver's candidate list, comma separated in env.
	// Env: NETWORK_NODES
	Nodes []string `env:"NODES"`

	// RPCUser and RPCPassword authenticate against the node JSON-RPC.
	// Env: NETWORK_RPC_USER, NETWORK_RPC_PASSWORD
	RPCUser     string `env:"RPC_USER"`
	RPCPassword string `env:"RPC_PASSWORD"`

	// Timeout bounds a single node request.
	// Env: NETWORK_TIMEOUT
	Timeout time.Duration `env:"TIMEOUT"`

	// FeeRate is the fee in subunits per virtual byte used by send.
	// Env: NETWORK_FEE_RATE
	FeeRate int64 `env:"FEE_RATE"`
}

// Storage groups the persistence settings.
type Storage struct {
	DB DB `envPrefix:"DB_"`
}

// DB holds the database connection settings.
type DB struct {
	// DSN selects the driver by scheme: "postgres://..." uses pgx, anything
	// else ("file:wallets.db", "wallets.db") uses sqlite3.
	// Env: STORAGE_DB_DATABASE_URI
	DSN string `env:"DATABASE_URI"`
}

// Server holds the inbound transport settings.
type Server struct {
	// Env: SERVER_ADDRESS
	HTTPAddress string `env:"ADDRESS"`

	// Env: SERVER_GRPC_ADDRESS
	GRPCAddress string `env:"GRPC_ADDRESS"`

	// RequestTimeout bounds a single inbound request. Send may take longer
	// than other commands and is bounded by the same value.
	// Env: SERVER_REQUEST_TIMEOUT
	RequestTimeout time.Duration `env:"REQUEST_TIMEOUT"`
}

// Adapter holds the client's view of the server.
type Adapter struct {
	// Env: ADAPTER_ADDRESS
	HTTPAddress string `env:"ADDRESS"`

	// Env: ADAPTER_GRPC_ADDRESS
	GRPCAddress string `env:"GRPC_ADDRESS"`

	// Env: ADAPTER_REQUEST_TIMEOUT
	RequestTimeout time.Duration `env:"REQUEST_TIMEOUT"`

	// Token is the bearer token the client sends.
	// Env: ADAPTER_TOKEN
	Token string `env:"TOKEN"`
}

// Workers holds background job settings.
type Workers struct {
	// IdleTimeout closes sessions that were not used for this long.
	// Zero disables the reaper.
	// Env: WORKERS_IDLE_TIMEOUT
	IdleTimeout time.Duration `env:"IDLE_TIMEOUT"`

	// ReapInterval is how often the idle reaper scans the registry.
	// Env: WORKERS_REAP_INTERVAL
	ReapInterval time.Duration `env:"REAP_INTERVAL"`

	// SyncInterval is how often an open wallet refreshes its balance.
	// Env: WORKERS_SYNC_INTERVAL
	SyncInterval time.Duration `env:"SYNC_INTERVAL"`
}

// GetStructuredConfig loads, merges and validates the server configuration.
// For every field the first non-zero value wins, in this order:
//  1. Environment variables
//  2. Command-line flags
//  3. Configuration file (path resolved from sources 1 and 2)
//  4. Defaults
func GetStructuredConfig() (*StructuredConfig, error) {
	return newConfigBuilder().
		withEnv().
		withFlags().
		withFile().
		withDefaults().
		build()
}
