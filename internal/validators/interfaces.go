// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package validators checks command requests before they reach the wallet
// lifecycle: secret strength, recovery phrase shape and required fields.
//
// Validate takes optional field names to restrict the check to those
// fields; without them every field of the request type is checked.
package validators

import "context"

// Validator validates a request value, optionally only the named fields.
type Validator interface {
	Validate(context.Context, any, ...string) error
}
