// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package platform

import (
	"bytes"
	"context"
	"fmt"
	"slices"
	"sync"

	"github.com/awnumar/memguard"

	"github.com/MKhiriev/go-pass-vault/internal/config"
	"github.com/MKhiriev/go-pass-vault/models"
)

// memoryAdapter is the ephemeral secure-store [Adapter]. Nothing survives
// the process. The user secret key is kept sealed in a memguard Enclave and
// only decrypted into a locked buffer for the duration of a read.
type memoryAdapter struct {
	mu       sync.RWMutex
	key      *memguard.Enclave
	metadata *string

	creds *memoryCredentials
	options
}

// NewMemory constructs an in-memory adapter. It never supports the offline
// vault.
func NewMemory(opts ...Option) Adapter {
	return &memoryAdapter{
		creds:   newMemoryCredentials(),
		options: buildOptions(&MemoryClipboard{}, opts),
	}
}

func (a *memoryAdapter) GetUserSecretKey(ctx context.Context) ([]byte, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	a.mu.RLock()
	enclave := a.key
	a.mu.RUnlock()

	if enclave == nil {
		return nil, ErrNotFound
	}

	buf, err := enclave.Open()
	if err != nil {
		return nil, fmt.Errorf("open key enclave: %w", err)
	}
	defer buf.Destroy()

	return bytes.Clone(buf.Bytes()), nil
}

// SetUserSecretKey seals a copy of key; the caller keeps ownership of key.
func (a *memoryAdapter) SetUserSecretKey(ctx context.Context, key []byte) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	if len(key) == 0 {
		return ErrEmptyKey
	}

	// NewEnclave wipes its argument.
	enclave := memguard.NewEnclave(bytes.Clone(key))

	a.mu.Lock()
	a.key = enclave
	a.mu.Unlock()
	return nil
}

func (a *memoryAdapter) DeleteUserSecretKey(ctx context.Context) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	a.mu.Lock()
	a.key = nil
	a.mu.Unlock()
	return nil
}

func (a *memoryAdapter) GetSessionMetadata(ctx context.Context) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}

	a.mu.RLock()
	defer a.mu.RUnlock()
	if a.metadata == nil {
		return "", ErrNotFound
	}
	return *a.metadata, nil
}

func (a *memoryAdapter) SetSessionMetadata(ctx context.Context, metadata string) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	a.mu.Lock()
	a.metadata = &metadata
	a.mu.Unlock()
	return nil
}

func (a *memoryAdapter) DeleteSessionMetadata(ctx context.Context) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	a.mu.Lock()
	a.metadata = nil
	a.mu.Unlock()
	return nil
}

func (a *memoryAdapter) GetEncryptedVault(context.Context) (string, error) {
	return "", ErrOfflineVaultUnsupported
}

func (a *memoryAdapter) SetEncryptedVault(context.Context, string) error {
	return ErrOfflineVaultUnsupported
}

func (a *memoryAdapter) DeleteEncryptedVault(context.Context) error {
	return ErrOfflineVaultUnsupported
}

func (a *memoryAdapter) Credentials() CredentialStore {
	return a.creds
}

func (a *memoryAdapter) ClearSessionState(ctx context.Context) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	a.mu.Lock()
	a.key = nil
	a.metadata = nil
	a.mu.Unlock()
	return nil
}

func (a *memoryAdapter) Info() Info {
	return Info{
		Platform: config.PlatformMemory,
		Features: Features{AtomicBatch: true},
	}
}

func (a *memoryAdapter) CopyToClipboard(ctx context.Context, text string) error {
	return a.clipboard.CopyToClipboard(ctx, text)
}

func (a *memoryAdapter) ReadClipboard(ctx context.Context) (string, error) {
	return a.clipboard.ReadClipboard(ctx)
}

func (a *memoryAdapter) IsOnline(ctx context.Context) bool {
	return a.prober.IsOnline(ctx)
}

func (a *memoryAdapter) Close() error {
	a.mu.Lock()
	a.key = nil
	a.metadata = nil
	a.mu.Unlock()
	return nil
}

// memoryCredentials swaps a fully built shadow generation in under the lock,
// so readers always see one complete generation.
type memoryCredentials struct {
	mu         sync.RWMutex
	generation uint64
	entries    []models.CachedCredential
	byID       map[string]int
}

func newMemoryCredentials() *memoryCredentials {
	return &memoryCredentials{byID: make(map[string]int)}
}

func (c *memoryCredentials) ReplaceAll(ctx context.Context, creds []models.CachedCredential) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	shadow := slices.Clone(creds)
	index := make(map[string]int, len(shadow))
	for i, cred := range shadow {
		index[cred.ID] = i
	}

	if err := ctx.Err(); err != nil {
		return err
	}

	c.mu.Lock()
	c.entries = shadow
	c.byID = index
	c.generation++
	c.mu.Unlock()
	return nil
}

func (c *memoryCredentials) GetAll(ctx context.Context) ([]models.CachedCredential, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	c.mu.RLock()
	defer c.mu.RUnlock()
	out := make([]models.CachedCredential, len(c.entries))
	copy(out, c.entries)
	return out, nil
}

func (c *memoryCredentials) Get(ctx context.Context, id string) (models.CachedCredential, error) {
	if err := ctx.Err(); err != nil {
		return models.CachedCredential{}, err
	}

	c.mu.RLock()
	defer c.mu.RUnlock()
	i, ok := c.byID[id]
	if !ok {
		return models.CachedCredential{}, ErrNotFound
	}
	return c.entries[i], nil
}

func (c *memoryCredentials) Clear(ctx context.Context) error {
	return c.ReplaceAll(ctx, nil)
}

// Generation returns the number of completed swaps.
func (c *memoryCredentials) Generation() uint64 {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.generation
}
