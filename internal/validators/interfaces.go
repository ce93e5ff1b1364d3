// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package validators checks HEFIN form payloads before they reach the
// service layer.
//
// Core concepts:
//   - Validator: generic interface to validate arbitrary values. Supports
//     optional field-level scoping for targeted validation.
//   - ValidationError: the ordered list of human readable messages that the
//     HTTP layer returns in the "errors" field of the response envelope.
//
// Predicates shared with the site (email shape, password strength, sign-in
// password length) are exported as plain functions.
package validators

import "context"

// Validator defines a generic validation interface for arbitrary input values.
type Validator interface {

	// Validate validates the provided input and optionally
	// restricts validation to specific named fields.
	Validate(context.Context, any, ...string) error
}
