// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package grpc

import "errors"

var (
	// ErrEmptyAuthorization is returned when the authorization metadata key
	// is missing.
	ErrEmptyAuthorization = errors.New("empty authorization metadata")

	// ErrNoIdentifier is logged when an authenticated method runs without
	// an identifier in its context.
	ErrNoIdentifier = errors.New("no identifier in context")
)
