// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package platform abstracts the per-platform local capabilities the vault
// engine relies on: secure storage of the user secret key and the session
// metadata, the local credential cache, the optional offline vault blob, the
// clipboard and network reachability.
//
// Exactly one [Adapter] is constructed at start-up by [New] according to the
// configured platform name; the rest of the engine depends on the interface
// only.
package platform

import (
	"context"

	"github.com/MKhiriev/go-pass-vault/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/platform_mock.go -package=mock

// Adapter is the capability set one platform provides to the engine.
//
// Getters return [ErrNotFound] when nothing is stored. Encrypted vault
// methods return [ErrOfflineVaultUnsupported] when Info().Features.OfflineVault
// is false.
type Adapter interface {
	GetUserSecretKey(ctx context.Context) ([]byte, error)
	SetUserSecretKey(ctx context.Context, key []byte) error
	DeleteUserSecretKey(ctx context.Context) error

	GetSessionMetadata(ctx context.Context) (string, error)
	SetSessionMetadata(ctx context.Context, metadata string) error
	DeleteSessionMetadata(ctx context.Context) error

	GetEncryptedVault(ctx context.Context) (string, error)
	SetEncryptedVault(ctx context.Context, vault string) error
	DeleteEncryptedVault(ctx context.Context) error

	// Credentials returns the local credential cache store.
	Credentials() CredentialStore

	// ClearSessionState removes the user secret key and the session
	// metadata. Missing entries are not an error.
	ClearSessionState(ctx context.Context) error

	// Info describes the platform and its optional features.
	Info() Info

	Clipboard
	Prober

	// Close releases the underlying resources.
	Close() error
}

// CredentialStore persists the re-encrypted credential cache. ReplaceAll is
// atomic: readers observe either the old or the new set, never a mix.
type CredentialStore interface {
	ReplaceAll(ctx context.Context, creds []models.CachedCredential) error
	GetAll(ctx context.Context) ([]models.CachedCredential, error)
	Get(ctx context.Context, id string) (models.CachedCredential, error)
	Clear(ctx context.Context) error
}

// Clipboard writes and reads the platform clipboard.
type Clipboard interface {
	CopyToClipboard(ctx context.Context, text string) error
	ReadClipboard(ctx context.Context) (string, error)
}

// Prober reports whether the document store is reachable.
type Prober interface {
	IsOnline(ctx context.Context) bool
}

// Info describes a platform adapter.
type Info struct {
	// Platform is the configured platform name.
	Platform string
	// Features lists the optional capabilities.
	Features Features
}

// Features are the optional capabilities of a platform adapter.
type Features struct {
	// Biometric is true when the key store can be gated by a biometric
	// prompt.
	Biometric bool
	// OfflineVault is true when the encrypted vault blob can be persisted.
	OfflineVault bool
	// AtomicBatch is true when ReplaceAll commits in one transaction.
	AtomicBatch bool
}
