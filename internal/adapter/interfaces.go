// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package adapter provides transport-layer abstractions for the two remote
// collaborators of the vault engine: the document store that holds the
// per-item encrypted vault, and the identity provider that authenticates the
// user and issues the key-derivation salt.
//
// The package ships HTTP/REST implementations on go-resty. HTTP status codes
// are mapped by mapHTTPError to the sentinels in errors.go, and every failure
// is surfaced as a vaulterr RemoteError that keeps the mapped cause, so
// callers can use both errors.Is(err, vaulterr.ErrRemoteError) and
// errors.Is(err, adapter.ErrUnauthorized).
package adapter

import (
	"context"

	"github.com/MKhiriev/go-pass-vault/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/adapter_mock.go -package=mock

// DocumentStore is the remote store of per-item encrypted vault entries. It
// never receives plaintext.
type DocumentStore interface {
	// SetToken stores the bearer token attached to every subsequent request.
	// An empty token clears it.
	SetToken(token string)

	// Token returns the bearer token currently held, or "".
	Token() string

	// GetAllEncryptedItems returns every encrypted item owned by userID.
	GetAllEncryptedItems(ctx context.Context, userID string) ([]models.RemoteEncryptedItem, error)

	// CreateItem stores a new encrypted item and returns it as persisted.
	CreateItem(ctx context.Context, userID string, item models.RemoteEncryptedItem) (models.RemoteEncryptedItem, error)

	// UpdateItem overwrites the ciphertexts of an existing item.
	UpdateItem(ctx context.Context, userID string, item models.RemoteEncryptedItem) (models.RemoteEncryptedItem, error)

	// DeleteItem removes the item with the given id.
	DeleteItem(ctx context.Context, userID, itemID string) error
}

// IdentityProvider authenticates the user against the remote service.
type IdentityProvider interface {
	// Authenticate checks email and password. The result either carries an
	// MFA challenge token or the terminal credential bundle.
	Authenticate(ctx context.Context, email, password string) (models.AuthResult, error)

	// VerifyMFA answers an MFA challenge and returns the credential bundle.
	VerifyMFA(ctx context.Context, mfaToken, code string) (models.CredentialBundle, error)
}
