// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package client implements the wallet keeper command-line client.
//
// Every wallet command maps to one server command sent through an
// [adapter.ServerAdapter]. The "token" command mints a bearer token locally
// with the server's sign key and does not contact the server.
package client
