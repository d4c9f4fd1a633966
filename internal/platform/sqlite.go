// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package platform

import (
	"context"
	"errors"
	"fmt"

	"github.com/MKhiriev/go-pass-vault/internal/config"
	"github.com/MKhiriev/go-pass-vault/internal/logger"
	"github.com/MKhiriev/go-pass-vault/internal/store"
	"github.com/MKhiriev/go-pass-vault/models"
)

// sqliteAdapter is the desktop [Adapter]. Secrets and the credential cache
// live in one SQLite file managed by the store package.
type sqliteAdapter struct {
	storages *store.Storages
	secrets  store.SecretRepository
	creds    *sqliteCredentials
	options
}

// NewSQLite opens (and migrates) the SQLite database described by cfg.
// The default clipboard is the system clipboard.
func NewSQLite(ctx context.Context, cfg config.ClientDB, log *logger.Logger, opts ...Option) (Adapter, error) {
	storages, err := store.NewStorages(ctx, cfg, log)
	if err != nil {
		return nil, fmt.Errorf("open sqlite platform: %w", err)
	}
	return newSQLiteAdapter(storages, storages.Secrets, storages.Credentials, opts...), nil
}

func newSQLiteAdapter(storages *store.Storages, secrets store.SecretRepository, creds store.CredentialRepository, opts ...Option) *sqliteAdapter {
	return &sqliteAdapter{
		storages: storages,
		secrets:  secrets,
		creds:    &sqliteCredentials{repo: creds},
		options:  buildOptions(SystemClipboard{}, opts),
	}
}

func (a *sqliteAdapter) GetUserSecretKey(ctx context.Context) ([]byte, error) {
	return a.get(ctx, keyUserSecretKey)
}

func (a *sqliteAdapter) SetUserSecretKey(ctx context.Context, key []byte) error {
	if len(key) == 0 {
		return ErrEmptyKey
	}
	return a.secrets.Set(ctx, keyUserSecretKey, key)
}

func (a *sqliteAdapter) DeleteUserSecretKey(ctx context.Context) error {
	return a.secrets.Delete(ctx, keyUserSecretKey)
}

func (a *sqliteAdapter) GetSessionMetadata(ctx context.Context) (string, error) {
	value, err := a.get(ctx, keySessionMetadata)
	return string(value), err
}

func (a *sqliteAdapter) SetSessionMetadata(ctx context.Context, metadata string) error {
	return a.secrets.Set(ctx, keySessionMetadata, []byte(metadata))
}

func (a *sqliteAdapter) DeleteSessionMetadata(ctx context.Context) error {
	return a.secrets.Delete(ctx, keySessionMetadata)
}

func (a *sqliteAdapter) GetEncryptedVault(ctx context.Context) (string, error) {
	value, err := a.get(ctx, keyEncryptedVault)
	return string(value), err
}

func (a *sqliteAdapter) SetEncryptedVault(ctx context.Context, vault string) error {
	return a.secrets.Set(ctx, keyEncryptedVault, []byte(vault))
}

func (a *sqliteAdapter) DeleteEncryptedVault(ctx context.Context) error {
	return a.secrets.Delete(ctx, keyEncryptedVault)
}

func (a *sqliteAdapter) Credentials() CredentialStore {
	return a.creds
}

func (a *sqliteAdapter) ClearSessionState(ctx context.Context) error {
	return a.secrets.Delete(ctx, keyUserSecretKey, keySessionMetadata)
}

func (a *sqliteAdapter) Info() Info {
	return Info{
		Platform: config.PlatformSQLite,
		Features: Features{OfflineVault: true, AtomicBatch: true},
	}
}

func (a *sqliteAdapter) CopyToClipboard(ctx context.Context, text string) error {
	return a.clipboard.CopyToClipboard(ctx, text)
}

func (a *sqliteAdapter) ReadClipboard(ctx context.Context) (string, error) {
	return a.clipboard.ReadClipboard(ctx)
}

func (a *sqliteAdapter) IsOnline(ctx context.Context) bool {
	return a.prober.IsOnline(ctx)
}

func (a *sqliteAdapter) Close() error {
	if a.storages == nil {
		return nil
	}
	return a.storages.Close()
}

func (a *sqliteAdapter) get(ctx context.Context, name string) ([]byte, error) {
	value, err := a.secrets.Get(ctx, name)
	if errors.Is(err, store.ErrSecretNotFound) {
		return nil, ErrNotFound
	}
	return value, err
}

// sqliteCredentials translates store sentinels into platform ones.
type sqliteCredentials struct {
	repo store.CredentialRepository
}

func (c *sqliteCredentials) ReplaceAll(ctx context.Context, creds []models.CachedCredential) error {
	return c.repo.ReplaceAll(ctx, creds)
}

func (c *sqliteCredentials) GetAll(ctx context.Context) ([]models.CachedCredential, error) {
	return c.repo.GetAll(ctx)
}

func (c *sqliteCredentials) Get(ctx context.Context, id string) (models.CachedCredential, error) {
	cred, err := c.repo.Get(ctx, id)
	if errors.Is(err, store.ErrCredentialNotFound) {
		return models.CachedCredential{}, ErrNotFound
	}
	return cred, err
}

func (c *sqliteCredentials) Clear(ctx context.Context) error {
	return c.repo.Clear(ctx)
}
