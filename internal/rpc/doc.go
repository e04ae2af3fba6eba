// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package rpc talks to a bitcoind-compatible node over JSON-RPC.
//
// A [Resolver] decides which node URLs are tried and in what order; the
// forced node URL, when configured, is the only candidate. [Client] walks
// the candidates until one answers at the transport level. Errors returned
// by the node itself are not retried on another node.
//
// The client is shared by every wallet session and lives for the process.
package rpc
