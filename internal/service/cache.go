// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"sync"

	"golang.org/x/sync/singleflight"

	"github.com/MKhiriev/go-pass-vault/internal/adapter"
	"github.com/MKhiriev/go-pass-vault/internal/crypto"
	"github.com/MKhiriev/go-pass-vault/internal/logger"
	"github.com/MKhiriev/go-pass-vault/internal/platform"
	"github.com/MKhiriev/go-pass-vault/internal/validators"
	"github.com/MKhiriev/go-pass-vault/internal/vaulterr"
	"github.com/MKhiriev/go-pass-vault/models"
)

type credentialCache struct {
	platform  platform.Adapter
	documents adapter.DocumentStore
	sessions  SessionManager
	envelope  crypto.Envelope
	validator validators.Validator

	group singleflight.Group

	mu        sync.Mutex
	refreshed bool
	stale     bool
}

// NewCredentialCache builds a [CredentialCache] on the adapter's credential
// store. The cache registers itself with sessions so that clearing or
// expiring the session also wipes the cache.
func NewCredentialCache(p platform.Adapter, documents adapter.DocumentStore, sessions SessionManager, envelope crypto.Envelope) CredentialCache {
	c := &credentialCache{
		platform:  p,
		documents: documents,
		sessions:  sessions,
		envelope:  envelope,
		validator: validators.NewItemValidator(),
	}
	sessions.OnClear(c.Clear)
	return c
}

// Refresh implements [CredentialCache]. Concurrent refreshes for the same
// user share one execution. Each caller waits on its own ctx; a caller that
// joined a refresh abandoned by its initiator runs it again once.
func (c *credentialCache) Refresh(ctx context.Context, userID string) (RefreshResult, error) {
	const op = "cache.Refresh"
	if userID == "" {
		return RefreshResult{}, vaulterr.E(vaulterr.InvalidInput, op, ErrEmptyUserID)
	}

	log := logger.FromContext(ctx)
	for attempt := 0; ; attempt++ {
		ch := c.group.DoChan(userID, func() (any, error) {
			return c.refresh(ctx, userID)
		})

		select {
		case <-ctx.Done():
			return RefreshResult{}, vaulterr.E(vaulterr.RemoteError, op, ctx.Err())
		case res := <-ch:
			if res.Shared {
				log.Debug().Str("func", op).Str("user_id", userID).Msg("joined in-flight refresh")
			}
			if res.Err != nil {
				if attempt == 0 && res.Shared && ctx.Err() == nil && isContextError(res.Err) {
					log.Debug().Str("func", op).Str("user_id", userID).Msg("shared refresh was cancelled, retrying")
					continue
				}
				return RefreshResult{}, res.Err
			}
			return res.Val.(RefreshResult), nil
		}
	}
}

func isContextError(err error) bool {
	return errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded)
}

func (c *credentialCache) refresh(ctx context.Context, userID string) (RefreshResult, error) {
	const op = "cache.Refresh"
	log := logger.FromContext(ctx).With().Str("func", op).Str("user_id", userID).Logger()

	key, err := c.sessions.UserSecretKey(ctx)
	if err != nil {
		return RefreshResult{}, err
	}
	defer crypto.Zero(key)

	items, offline, err := c.fetch(ctx, userID)
	if err != nil {
		return RefreshResult{}, err
	}

	result := RefreshResult{Fetched: len(items), Offline: offline}

	creds := make([]models.CachedCredential, 0, len(items))
	seen := make(map[string]struct{}, len(items))
	for _, item := range items {
		if err = ctx.Err(); err != nil {
			return RefreshResult{}, vaulterr.E(vaulterr.RemoteError, op, err)
		}

		if _, dup := seen[item.ID]; dup {
			result.Skipped++
			log.Warn().Str("item_id", item.ID).Msg("skipping item with duplicate id")
			continue
		}

		cred, err := c.recache(ctx, key, item)
		if err != nil {
			result.Skipped++
			log.Warn().Err(err).Str("item_id", item.ID).Msg("skipping item that failed to decrypt")
			continue
		}
		seen[item.ID] = struct{}{}
		creds = append(creds, cred)
	}

	store := c.platform.Credentials()

	if len(items) == 0 {
		existing, err := store.GetAll(ctx)
		if err != nil {
			return RefreshResult{}, vaulterr.E(vaulterr.StorageError, op, err)
		}

		c.mu.Lock()
		wasStale := c.stale
		c.mu.Unlock()

		if len(existing) > 0 && !wasStale {
			c.mu.Lock()
			c.refreshed, c.stale = true, true
			c.mu.Unlock()

			log.Warn().Int("cached", len(existing)).Msg("remote vault is empty, keeping cache as stale")
			result.Stale = true
			result.Cached = len(existing)
			return result, nil
		}
	}

	if err = ctx.Err(); err != nil {
		return RefreshResult{}, vaulterr.E(vaulterr.StorageError, op, err)
	}

	if err = store.ReplaceAll(ctx, creds); err != nil {
		log.Err(err).Msg("failed to replace credential cache")
		return RefreshResult{}, vaulterr.E(vaulterr.StorageError, op, err)
	}

	c.mu.Lock()
	c.refreshed, c.stale = true, false
	c.mu.Unlock()

	result.Cached = len(creds)
	log.Info().
		Int("fetched", result.Fetched).
		Int("cached", result.Cached).
		Int("skipped", result.Skipped).
		Bool("offline", offline).
		Msg("credential cache refreshed")
	return result, nil
}

// fetch returns the remote item list. Platforms with an offline vault serve
// it from the stored blob while the document store is unreachable, and
// store a fresh copy of the ciphertexts after every online fetch.
func (c *credentialCache) fetch(ctx context.Context, userID string) ([]models.RemoteEncryptedItem, bool, error) {
	const op = "cache.fetch"
	log := logger.FromContext(ctx)

	offlineCapable := c.platform.Info().Features.OfflineVault

	if offlineCapable && !c.platform.IsOnline(ctx) {
		raw, err := c.platform.GetEncryptedVault(ctx)
		if errors.Is(err, platform.ErrNotFound) {
			return nil, true, vaulterr.E(vaulterr.RemoteError, op, ErrNoOfflineVault)
		}
		if err != nil {
			return nil, true, vaulterr.E(vaulterr.StorageError, op, err)
		}

		var items []models.RemoteEncryptedItem
		if err = json.Unmarshal([]byte(raw), &items); err != nil {
			return nil, true, vaulterr.E(vaulterr.CorruptState, op, err)
		}
		log.Info().Str("func", op).Int("items", len(items)).Msg("document store unreachable, using offline vault")
		return items, true, nil
	}

	items, err := c.documents.GetAllEncryptedItems(ctx, userID)
	if err != nil {
		if vaulterr.KindOf(err) == vaulterr.Unknown {
			err = vaulterr.E(vaulterr.RemoteError, op, err)
		}
		return nil, false, err
	}

	if offlineCapable {
		raw, err := json.Marshal(items)
		if err == nil {
			err = c.platform.SetEncryptedVault(ctx, string(raw))
		}
		if err != nil {
			log.Warn().Err(err).Str("func", op).Msg("failed to store offline vault")
		}
	}

	return items, false, nil
}

// recache turns one remote item into its cache shape: the item key is
// re-wrapped under key and the secret is wrapped alone under the item key.
func (c *credentialCache) recache(ctx context.Context, key []byte, item models.RemoteEncryptedItem) (models.CachedCredential, error) {
	if err := c.validator.Validate(ctx, item); err != nil {
		return models.CachedCredential{}, err
	}

	itemKey, err := c.envelope.UnwrapItemKey(key, item.ItemKeyCipher)
	if err != nil {
		return models.CachedCredential{}, err
	}
	defer crypto.Zero(itemKey)

	plain, err := c.envelope.Unwrap(itemKey, string(item.ContentCipher))
	if err != nil {
		return models.CachedCredential{}, fmt.Errorf("unwrap content: %w", err)
	}
	defer crypto.Zero(plain)

	var content models.ItemContent
	if err = json.Unmarshal(plain, &content); err != nil {
		return models.CachedCredential{}, fmt.Errorf("decode content: %w", err)
	}

	itemKeyCipher, err := c.envelope.WrapItemKey(key, itemKey)
	if err != nil {
		return models.CachedCredential{}, err
	}

	secret := []byte(content.Secret)
	defer crypto.Zero(secret)

	secretCipher, err := c.envelope.Wrap(itemKey, secret)
	if err != nil {
		return models.CachedCredential{}, fmt.Errorf("wrap secret: %w", err)
	}

	return models.CachedCredential{
		ID:            item.ID,
		Title:         content.Title,
		Username:      content.Username,
		URL:           content.URL,
		ItemKeyCipher: itemKeyCipher,
		SecretCipher:  models.CipheredSecret(secretCipher),
	}, nil
}

func (c *credentialCache) GetAll(ctx context.Context) ([]models.CachedCredential, error) {
	creds, err := c.platform.Credentials().GetAll(ctx)
	if err != nil {
		logger.FromContext(ctx).Err(err).Str("func", "cache.GetAll").Msg("failed to read credential cache")
		return nil, vaulterr.E(vaulterr.StorageError, "cache.GetAll", err)
	}
	return creds, nil
}

func (c *credentialCache) GetAllWithFallback(ctx context.Context, userID string) ([]models.CachedCredential, error) {
	creds, err := c.GetAll(ctx)
	if err != nil {
		return nil, err
	}

	c.mu.Lock()
	needsRefresh := c.stale || (len(creds) == 0 && !c.refreshed)
	c.mu.Unlock()

	if !needsRefresh {
		return creds, nil
	}

	if _, err = c.Refresh(ctx, userID); err != nil {
		return nil, err
	}
	return c.GetAll(ctx)
}

func (c *credentialCache) GetByDomain(ctx context.Context, domain string) ([]models.CachedCredential, error) {
	matcher, ok := newDomainMatcher(domain)
	if !ok {
		return nil, vaulterr.E(vaulterr.InvalidInput, "cache.GetByDomain", ErrEmptyDomain)
	}

	creds, err := c.GetAll(ctx)
	if err != nil {
		return nil, err
	}

	matched := make([]models.CachedCredential, 0)
	for _, cred := range creds {
		if matcher.match(cred.URL, cred.Title) {
			matched = append(matched, cred)
		}
	}
	return matched, nil
}

func (c *credentialCache) ReadSecret(ctx context.Context, id string) (string, error) {
	const op = "cache.ReadSecret"

	key, err := c.sessions.UserSecretKey(ctx)
	if err != nil {
		return "", err
	}
	defer crypto.Zero(key)

	cred, err := c.platform.Credentials().Get(ctx, id)
	if errors.Is(err, platform.ErrNotFound) {
		return "", vaulterr.E(vaulterr.NotFound, op, nil)
	}
	if err != nil {
		logger.FromContext(ctx).Err(err).Str("func", op).Str("item_id", id).Msg("failed to read cached credential")
		return "", vaulterr.E(vaulterr.StorageError, op, err)
	}

	itemKey, err := c.envelope.UnwrapItemKey(key, cred.ItemKeyCipher)
	if err != nil {
		return "", err
	}
	defer crypto.Zero(itemKey)

	secret, err := c.envelope.Unwrap(itemKey, string(cred.SecretCipher))
	if err != nil {
		return "", err
	}
	return string(secret), nil
}

func (c *credentialCache) CopySecret(ctx context.Context, id string) error {
	secret, err := c.ReadSecret(ctx, id)
	if err != nil {
		return err
	}

	if err = c.platform.CopyToClipboard(ctx, secret); err != nil {
		logger.FromContext(ctx).Err(err).Str("func", "cache.CopySecret").Str("item_id", id).Msg("failed to copy secret")
		return vaulterr.E(vaulterr.StorageError, "cache.CopySecret", err)
	}
	return nil
}

func (c *credentialCache) Clear(ctx context.Context) error {
	if err := c.platform.Credentials().Clear(ctx); err != nil {
		logger.FromContext(ctx).Err(err).Str("func", "cache.Clear").Msg("failed to clear credential cache")
		return vaulterr.E(vaulterr.StorageError, "cache.Clear", err)
	}

	c.mu.Lock()
	c.refreshed, c.stale = false, false
	c.mu.Unlock()
	return nil
}
