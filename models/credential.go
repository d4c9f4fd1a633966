// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

// CachedCredential is the local mirror of one vault item.
//
// Display metadata (Title, Username, URL) is kept in the clear for fast
// search. The secret is never stored in plaintext: SecretCipher wraps it
// under the item key and ItemKeyCipher wraps the item key under the current
// user secret key, so the row is useless without a live session.
type CachedCredential struct {
	ID            string          `json:"id"`
	Title         string          `json:"title"`
	Username      string          `json:"username"`
	URL           string          `json:"url"`
	ItemKeyCipher CipheredItemKey `json:"item_key_cipher"`
	SecretCipher  CipheredSecret  `json:"secret_cipher"`
}
