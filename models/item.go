// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import "time"

// ItemContent is the plaintext field set of a single vault item. It only
// ever exists in client memory: remotely it is stored as one JSON blob
// encrypted under the item key.
type ItemContent struct {
	// Title is the human-readable display name of the item.
	Title string `json:"title"`

	// Username is the login associated with the credential.
	Username string `json:"username"`

	// Secret is the sensitive value (usually the password).
	Secret string `json:"password"`

	// Note is an optional free-form annotation.
	Note string `json:"note,omitempty"`

	// URL is the address the credential belongs to. Used for domain
	// suggestions.
	URL string `json:"url,omitempty"`
}

// RemoteEncryptedItem is the shape of a vault item as held by the remote
// document store. The store never sees any plaintext.
type RemoteEncryptedItem struct {
	// ID is the opaque item identifier.
	ID string `json:"id"`

	// ContentCipher is JSON(ItemContent) wrapped under the item key.
	ContentCipher CipheredContent `json:"content_cipher"`

	// ItemKeyCipher is the item key wrapped under the user secret key.
	ItemKeyCipher CipheredItemKey `json:"item_key_cipher"`

	// CreatedAt is the creation timestamp reported by the store.
	CreatedAt time.Time `json:"created_at"`

	// UpdatedAt is the last-modification timestamp reported by the store.
	UpdatedAt time.Time `json:"updated_at"`
}
