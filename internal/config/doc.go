// Package config loads, merges and validates the configuration of the wallet
// server and the command-line client.
//
// Sources, first non-zero value wins:
//  1. Environment variables
//  2. Command-line flags (server only)
//  3. JSON or TOML file
//  4. Defaults
//
// The entry points are [GetStructuredConfig] for the server and
// [GetClientConfig] for the client.
package config
