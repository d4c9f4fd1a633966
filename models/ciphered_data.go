// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

type (
	// CipheredContent is the base64 blob (nonce || ciphertext) of an item's
	// full JSON field set, encrypted under the item key.
	CipheredContent string

	// CipheredItemKey is the base64 blob of a per-item key wrapped under the
	// user secret key.
	CipheredItemKey string

	// CipheredSecret is the base64 blob of the single sensitive field of an
	// item (the password), wrapped under the item key.
	CipheredSecret string
)
