// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"

	"github.com/MKhiriev/go-pass-vault/models"
)

// CredentialRepository persists the re-encrypted credential cache.
type CredentialRepository interface {
	// ReplaceAll atomically swaps the whole cache for creds, preserving
	// their order.
	ReplaceAll(ctx context.Context, creds []models.CachedCredential) error

	// GetAll returns every cached credential in insertion order.
	GetAll(ctx context.Context) ([]models.CachedCredential, error)

	// Get returns the credential with the given id or ErrCredentialNotFound.
	Get(ctx context.Context, id string) (models.CachedCredential, error)

	// Clear deletes every cached credential.
	Clear(ctx context.Context) error
}

// SecretRepository is a small key/value table for opaque local secrets
// (the wrapped user secret key, session metadata, the offline vault blob).
type SecretRepository interface {
	// Get returns the value stored under name or ErrSecretNotFound.
	Get(ctx context.Context, name string) ([]byte, error)

	// Set inserts or overwrites the value stored under name.
	Set(ctx context.Context, name string, value []byte) error

	// Delete removes the named values. Missing names are ignored.
	Delete(ctx context.Context, names ...string) error
}

// ErrorClassificator decides whether a failed database operation may be
// retried.
type ErrorClassificator interface {
	Classify(err error) ErrorClassification
}
