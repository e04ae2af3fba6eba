package rpc

import (
	"errors"
	"fmt"
)

var (
	// ErrNoNodes is returned when the resolver has no candidate URL.
	ErrNoNodes = errors.New("no node url configured")

	// ErrNodeUnreachable is returned when every candidate failed at the
	// transport level.
	ErrNodeUnreachable = errors.New("node unreachable")

	// ErrUnauthorized is returned when the node rejects the credentials.
	ErrUnauthorized = errors.New("node rejected rpc credentials")

	// ErrNetworkMismatch is returned by Connect when the node runs a
	// different chain than configured.
	ErrNetworkMismatch = errors.New("node network mismatch")

	// ErrFeeEstimateUnavailable is returned when the node has not collected
	// enough data to estimate fees.
	ErrFeeEstimateUnavailable = errors.New("fee estimate unavailable")

	// ErrMalformedResponse is returned when a response cannot be decoded.
	ErrMalformedResponse = errors.New("malformed rpc response")
)

// Error is an error reported by the node in the JSON-RPC error member.
type Error struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}

func (e *Error) Error() string {
	return fmt.Sprintf("rpc error %d: %s", e.Code, e.Message)
}
