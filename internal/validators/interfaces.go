// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package validators checks the structure of vault items before they are
// sealed for the document store or re-encrypted into the local cache.
//
// Validation never looks inside ciphertext: for encrypted items it only
// verifies that the identifying and cipher fields are present, leaving
// authenticity to the envelope engine.
package validators

import "context"

// Validator checks a value and reports the first rule it breaks. When fields
// are given only those fields are checked; otherwise every rule applies.
type Validator interface {
	Validate(ctx context.Context, obj any, fields ...string) error
}
