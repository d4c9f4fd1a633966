// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package service holds the vault engine's business logic: the session
// manager that gates the user secret key behind a wall-clock expiry, the
// re-encrypted credential cache, and the auth and vault item services that
// drive them from remote collaborators.
package service

import (
	"context"
	"time"

	"github.com/MKhiriev/go-pass-vault/models"
)

// SessionManager owns the lifetime of the user secret key.
//
// States: no session → active → expired → no session. An expired session
// is purged the moment it is observed.
type SessionManager interface {
	// CreateSession persists userSecretKey and a fresh session record.
	// Key and record are written as a pair: if the record cannot be stored
	// the key is removed again.
	CreateSession(ctx context.Context, userSecretKey []byte, opts models.SessionOptions) (models.SessionRecord, error)

	// GetSession returns the stored record without checking expiry.
	// Fails with NoActiveSession if absent and CorruptState if unparsable.
	GetSession(ctx context.Context) (models.SessionRecord, error)

	// ValidateSession returns the record if it has not expired. An expired
	// session is purged and SessionExpired is returned. Validation never
	// extends the session.
	ValidateSession(ctx context.Context) (models.SessionRecord, error)

	// RefreshSession recomputes the expiry from now for a valid session.
	RefreshSession(ctx context.Context, opts models.SessionOptions) (models.SessionRecord, error)

	// ExtendSession adds d to the current expiry of a valid session.
	ExtendSession(ctx context.Context, d time.Duration) (models.SessionRecord, error)

	// ClearSession removes the key, the record, and every session-scoped
	// state registered with OnClear. It is idempotent.
	ClearSession(ctx context.Context) error

	// IsAuthenticated reports whether a valid session exists. Any error
	// yields false.
	IsAuthenticated(ctx context.Context) bool

	// SessionTimeRemaining returns the time left on a valid session, or 0
	// on any error.
	SessionTimeRemaining(ctx context.Context) time.Duration

	// UserSecretKey validates the session and then returns the key.
	UserSecretKey(ctx context.Context) ([]byte, error)

	// OnClear registers a hook run whenever the session is cleared or
	// found expired.
	OnClear(hook ClearHook)
}

// ClearHook wipes session-scoped state owned by another component.
type ClearHook func(ctx context.Context) error

// CredentialCache is the locally re-encrypted mirror of the remote vault.
type CredentialCache interface {
	// Refresh pulls every remote item for userID, re-wraps it into the
	// cache shape, and atomically replaces the local cache.
	Refresh(ctx context.Context, userID string) (RefreshResult, error)

	// GetAll returns the cached credentials in insertion order.
	GetAll(ctx context.Context) ([]models.CachedCredential, error)

	// GetAllWithFallback is GetAll, refreshing first when the cache is
	// empty and has not been refreshed yet this session, or is stale.
	GetAllWithFallback(ctx context.Context, userID string) ([]models.CachedCredential, error)

	// GetByDomain returns cached credentials whose URL belongs to the same
	// registrable domain as domain, plus title matches for entries without a
	// usable URL.
	GetByDomain(ctx context.Context, domain string) ([]models.CachedCredential, error)

	// ReadSecret unwraps and returns the secret of one cached credential.
	ReadSecret(ctx context.Context, id string) (string, error)

	// CopySecret reads the secret of id and writes it to the clipboard.
	CopySecret(ctx context.Context, id string) error

	// Clear deletes every cached credential.
	Clear(ctx context.Context) error
}

// RefreshResult summarises one cache refresh.
type RefreshResult struct {
	// Fetched is the number of remote items received.
	Fetched int
	// Cached is the number of credentials written to the cache.
	Cached int
	// Skipped is the number of remote items that failed to decrypt.
	Skipped int
	// Stale is true when the remote answered with no items while the cache
	// still holds entries. The entries are kept.
	Stale bool
	// Offline is true when items came from the offline vault blob.
	Offline bool
}

// AuthService drives authentication against the identity provider and
// turns the result into a local session.
type AuthService interface {
	// Login authenticates email and password. The result is either an MFA
	// challenge or a completed login with an active session.
	Login(ctx context.Context, email, password string, opts models.SessionOptions) (LoginResult, error)

	// ConfirmMFA answers an MFA challenge and completes the login.
	ConfirmMFA(ctx context.Context, mfaToken, code, password string, opts models.SessionOptions) (LoginResult, error)

	// Unlock derives the user secret key locally from password and salt and
	// starts a new session without contacting the identity provider.
	Unlock(ctx context.Context, password string, salt []byte, opts models.SessionOptions) (models.SessionRecord, error)

	// Logout clears the session and the credential cache and forgets the
	// document store token.
	Logout(ctx context.Context) error

	// UserID returns the id of the logged-in user, or "".
	UserID() string
}

// LoginResult is the outcome of Login or ConfirmMFA.
type LoginResult struct {
	// MFAToken is set when a second factor is required.
	MFAToken string
	// UserID identifies the vault owner.
	UserID string
	// Session is the freshly created session record.
	Session models.SessionRecord
	// TokenExpiresAt is the expiry of the document store token, if known.
	TokenExpiresAt time.Time
}

// RequiresMFA reports whether ConfirmMFA must be called next.
func (r LoginResult) RequiresMFA() bool {
	return r.MFAToken != ""
}

// VaultService writes vault items to the document store.
type VaultService interface {
	// Create seals content under a fresh item key, stores it remotely and
	// refreshes the cache.
	Create(ctx context.Context, userID string, content models.ItemContent) (models.RemoteEncryptedItem, error)

	// Update re-seals content for an existing item.
	Update(ctx context.Context, userID, itemID string, content models.ItemContent) (models.RemoteEncryptedItem, error)

	// Delete removes an item remotely and refreshes the cache.
	Delete(ctx context.Context, userID, itemID string) error
}
