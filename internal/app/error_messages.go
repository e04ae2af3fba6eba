// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package app holds the user-facing messages shared by the HTTP and gRPC
// command layers and the client.
package app

const (
	// MsgInvalidDataProvided is returned when the request body cannot be
	// decoded.
	MsgInvalidDataProvided = "invalid data provided"

	// MsgInternalServerError hides infrastructure failures from the caller.
	MsgInternalServerError = "internal server error"

	// MsgNodeUnavailable is returned when the ledger node cannot be reached.
	MsgNodeUnavailable = "ledger node is unavailable, try again later"

	MsgTokenIsExpiredOrInvalid = "token is expired or invalid"
	MsgNoIdentifierProvided    = "no wallet identifier provided"

	MsgWeakSecret       = "secret must be at least 10 characters long"
	MsgEmptySecret      = "secret is required"
	MsgInvalidMnemonic  = "recovery phrase is invalid"
	MsgInvalidAmount    = "amount must be a positive number with at most 8 decimal places"
	MsgInvalidAddress   = "recipient is neither a known wallet nor a valid address"
	MsgEmptyRequired    = "a required field is missing"
	MsgDecryptionFailed = "secret is wrong"

	MsgAlreadyInitiated = "wallet already exists, open or destroy it first"
	MsgNotInitiated     = "no wallet exists, create or restore one first"
	MsgWalletNotOpen    = "wallet is not open"
	MsgWalletOpen       = "wallet is open, close it first"
	MsgSessionBusy      = "another command for this wallet is in progress"
	MsgAbortedByUser    = "destroy aborted, type \"destroy\" to confirm"

	MsgInsufficientFunds = "insufficient funds"
	MsgTransactionFailed = "transaction failed"
)
