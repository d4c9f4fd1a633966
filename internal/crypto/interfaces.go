// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package crypto holds every client-side cryptographic primitive of the vault
// engine. It knows nothing about the network, storage or users; its only job
// is to derive keys and to protect data with them.
//
// Key hierarchy:
//
//	USK       = DeriveUserSecretKey(masterPassword, salt)   (Argon2id)
//	IK        = GenerateItemKey()                           (random, per item)
//	content   = Wrap(IK, value)                             (AEAD, fresh nonce)
//	itemKey   = Wrap(USK, IK)                               (AEAD, fresh nonce)
//
// Every ciphertext produced here is base64(nonce || sealed).
package crypto

import "github.com/MKhiriev/go-pass-vault/models"

// KeyDerivation turns a master password and a per-user salt into the user
// secret key.
type KeyDerivation interface {
	// GenerateSalt returns 16 fresh random bytes. Salts are not secret.
	GenerateSalt() ([]byte, error)

	// DeriveUserSecretKey derives the 32-byte user secret key from
	// masterPassword and salt. It is deterministic for the same inputs and
	// returns an InvalidInput error if either input is empty or the salt is
	// too short.
	DeriveUserSecretKey(masterPassword string, salt []byte) ([]byte, error)
}

// Envelope provides authenticated symmetric encryption and the two-level
// wrap/unwrap protocol.
type Envelope interface {
	// GenerateItemKey returns a fresh random 32-byte item key.
	GenerateItemKey() ([]byte, error)

	// Wrap encrypts plaintext under key with a freshly sampled nonce.
	Wrap(key, plaintext []byte) (string, error)

	// Unwrap reverses Wrap. It returns an AuthenticationFailure error if the
	// blob was tampered with, is malformed, or was wrapped under another key.
	Unwrap(key []byte, ciphertext string) ([]byte, error)

	// Seal applies the double envelope to value for ownerKey.
	Seal(ownerKey, value []byte) (Sealed, error)

	// Open recovers the value protected by Seal.
	Open(ownerKey []byte, sealed Sealed) ([]byte, error)

	// WrapItemKey wraps an item key under the owner key.
	WrapItemKey(ownerKey, itemKey []byte) (models.CipheredItemKey, error)

	// UnwrapItemKey recovers an item key wrapped under the owner key.
	UnwrapItemKey(ownerKey []byte, wrapped models.CipheredItemKey) ([]byte, error)
}

// Sealed is the output of the double envelope.
type Sealed struct {
	ContentCipher models.CipheredContent
	ItemKeyCipher models.CipheredItemKey
}
