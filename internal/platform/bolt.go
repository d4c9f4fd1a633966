// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package platform

import (
	"bytes"
	"context"
	"encoding/binary"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"go.etcd.io/bbolt"

	"github.com/MKhiriev/go-pass-vault/internal/config"
	"github.com/MKhiriev/go-pass-vault/internal/logger"
	"github.com/MKhiriev/go-pass-vault/models"
)

// Bucket names
var (
	secretsBucket     = []byte("secrets")
	credentialsBucket = []byte("credentials")
	credentialIDIndex = []byte("credential_ids")
)

const boltOpenTimeout = 5 * time.Second

// boltAdapter is the embedded/mobile [Adapter] on a single bbolt file.
//
// Credentials are stored under a big-endian position key so that cursor
// order equals insertion order; credential_ids maps an id to its position.
type boltAdapter struct {
	db    *bbolt.DB
	creds *boltCredentials
	options
}

// NewBolt opens or creates the bbolt database described by cfg.
// The default clipboard is process-local.
func NewBolt(ctx context.Context, cfg config.ClientBolt, log *logger.Logger, opts ...Option) (Adapter, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	if dir := filepath.Dir(cfg.Path); dir != "" && dir != "." {
		if err := os.MkdirAll(dir, 0o700); err != nil {
			return nil, fmt.Errorf("failed to create bolt directory: %w", err)
		}
	}

	db, err := bbolt.Open(cfg.Path, 0o600, &bbolt.Options{Timeout: boltOpenTimeout})
	if err != nil {
		log.Err(err).Str("func", "platform.NewBolt").Str("path", cfg.Path).Msg("failed to open bolt database")
		return nil, fmt.Errorf("failed to open bolt database: %w", err)
	}

	err = db.Update(func(tx *bbolt.Tx) error {
		for _, name := range [][]byte{secretsBucket, credentialsBucket, credentialIDIndex} {
			if _, err := tx.CreateBucketIfNotExists(name); err != nil {
				return fmt.Errorf("failed to create %s bucket: %w", name, err)
			}
		}
		return nil
	})
	if err != nil {
		db.Close()
		return nil, err
	}

	log.Info().Str("path", cfg.Path).Msg("bolt platform opened")

	return &boltAdapter{
		db:      db,
		creds:   &boltCredentials{db: db},
		options: buildOptions(&MemoryClipboard{}, opts),
	}, nil
}

func (a *boltAdapter) GetUserSecretKey(ctx context.Context) ([]byte, error) {
	return a.getSecret(ctx, keyUserSecretKey)
}

func (a *boltAdapter) SetUserSecretKey(ctx context.Context, key []byte) error {
	if len(key) == 0 {
		return ErrEmptyKey
	}
	return a.putSecret(ctx, keyUserSecretKey, key)
}

func (a *boltAdapter) DeleteUserSecretKey(ctx context.Context) error {
	return a.deleteSecrets(ctx, keyUserSecretKey)
}

func (a *boltAdapter) GetSessionMetadata(ctx context.Context) (string, error) {
	value, err := a.getSecret(ctx, keySessionMetadata)
	return string(value), err
}

func (a *boltAdapter) SetSessionMetadata(ctx context.Context, metadata string) error {
	return a.putSecret(ctx, keySessionMetadata, []byte(metadata))
}

func (a *boltAdapter) DeleteSessionMetadata(ctx context.Context) error {
	return a.deleteSecrets(ctx, keySessionMetadata)
}

func (a *boltAdapter) GetEncryptedVault(ctx context.Context) (string, error) {
	value, err := a.getSecret(ctx, keyEncryptedVault)
	return string(value), err
}

func (a *boltAdapter) SetEncryptedVault(ctx context.Context, vault string) error {
	return a.putSecret(ctx, keyEncryptedVault, []byte(vault))
}

func (a *boltAdapter) DeleteEncryptedVault(ctx context.Context) error {
	return a.deleteSecrets(ctx, keyEncryptedVault)
}

func (a *boltAdapter) Credentials() CredentialStore {
	return a.creds
}

func (a *boltAdapter) ClearSessionState(ctx context.Context) error {
	return a.deleteSecrets(ctx, keyUserSecretKey, keySessionMetadata)
}

func (a *boltAdapter) Info() Info {
	return Info{
		Platform: config.PlatformBolt,
		Features: Features{OfflineVault: true, AtomicBatch: true},
	}
}

func (a *boltAdapter) CopyToClipboard(ctx context.Context, text string) error {
	return a.clipboard.CopyToClipboard(ctx, text)
}

func (a *boltAdapter) ReadClipboard(ctx context.Context) (string, error) {
	return a.clipboard.ReadClipboard(ctx)
}

func (a *boltAdapter) IsOnline(ctx context.Context) bool {
	return a.prober.IsOnline(ctx)
}

func (a *boltAdapter) Close() error {
	return a.db.Close()
}

func (a *boltAdapter) getSecret(ctx context.Context, name string) ([]byte, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	var value []byte
	err := a.db.View(func(tx *bbolt.Tx) error {
		v := tx.Bucket(secretsBucket).Get([]byte(name))
		if v == nil {
			return ErrNotFound
		}
		value = bytes.Clone(v)
		return nil
	})
	if err != nil {
		return nil, err
	}
	return value, nil
}

func (a *boltAdapter) putSecret(ctx context.Context, name string, value []byte) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	return a.db.Update(func(tx *bbolt.Tx) error {
		if err := tx.Bucket(secretsBucket).Put([]byte(name), value); err != nil {
			return fmt.Errorf("failed to store %s: %w", name, err)
		}
		return nil
	})
}

func (a *boltAdapter) deleteSecrets(ctx context.Context, names ...string) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	return a.db.Update(func(tx *bbolt.Tx) error {
		b := tx.Bucket(secretsBucket)
		for _, name := range names {
			if err := b.Delete([]byte(name)); err != nil {
				return fmt.Errorf("failed to delete %s: %w", name, err)
			}
		}
		return nil
	})
}

type boltCredentials struct {
	db *bbolt.DB
}

// ReplaceAll recreates both credential buckets inside one bbolt write
// transaction. The context is checked again right before the transaction
// returns so a cancelled refresh rolls back.
func (c *boltCredentials) ReplaceAll(ctx context.Context, creds []models.CachedCredential) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	return c.db.Update(func(tx *bbolt.Tx) error {
		data, index, err := resetCredentialBuckets(tx)
		if err != nil {
			return err
		}

		for i, cred := range creds {
			raw, err := json.Marshal(cred)
			if err != nil {
				return fmt.Errorf("failed to marshal credential %s: %w", cred.ID, err)
			}
			pos := positionKey(i)
			if err = data.Put(pos, raw); err != nil {
				return fmt.Errorf("failed to store credential %s: %w", cred.ID, err)
			}
			if err = index.Put([]byte(cred.ID), pos); err != nil {
				return fmt.Errorf("failed to index credential %s: %w", cred.ID, err)
			}
		}

		return ctx.Err()
	})
}

func (c *boltCredentials) GetAll(ctx context.Context) ([]models.CachedCredential, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	creds := make([]models.CachedCredential, 0)
	err := c.db.View(func(tx *bbolt.Tx) error {
		return tx.Bucket(credentialsBucket).ForEach(func(_, v []byte) error {
			var cred models.CachedCredential
			if err := json.Unmarshal(v, &cred); err != nil {
				return fmt.Errorf("failed to unmarshal credential: %w", err)
			}
			creds = append(creds, cred)
			return nil
		})
	})
	if err != nil {
		return nil, err
	}
	return creds, nil
}

func (c *boltCredentials) Get(ctx context.Context, id string) (models.CachedCredential, error) {
	if err := ctx.Err(); err != nil {
		return models.CachedCredential{}, err
	}

	var cred models.CachedCredential
	err := c.db.View(func(tx *bbolt.Tx) error {
		pos := tx.Bucket(credentialIDIndex).Get([]byte(id))
		if pos == nil {
			return ErrNotFound
		}
		raw := tx.Bucket(credentialsBucket).Get(pos)
		if raw == nil {
			return ErrNotFound
		}
		return json.Unmarshal(raw, &cred)
	})
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			return models.CachedCredential{}, ErrNotFound
		}
		return models.CachedCredential{}, fmt.Errorf("failed to read credential %s: %w", id, err)
	}
	return cred, nil
}

func (c *boltCredentials) Clear(ctx context.Context) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	return c.db.Update(func(tx *bbolt.Tx) error {
		_, _, err := resetCredentialBuckets(tx)
		return err
	})
}

func resetCredentialBuckets(tx *bbolt.Tx) (data, index *bbolt.Bucket, err error) {
	for _, name := range [][]byte{credentialsBucket, credentialIDIndex} {
		if err = tx.DeleteBucket(name); err != nil && !errors.Is(err, bbolt.ErrBucketNotFound) {
			return nil, nil, fmt.Errorf("failed to drop %s bucket: %w", name, err)
		}
	}
	if data, err = tx.CreateBucket(credentialsBucket); err != nil {
		return nil, nil, fmt.Errorf("failed to create %s bucket: %w", credentialsBucket, err)
	}
	if index, err = tx.CreateBucket(credentialIDIndex); err != nil {
		return nil, nil, fmt.Errorf("failed to create %s bucket: %w", credentialIDIndex, err)
	}
	return data, index, nil
}

func positionKey(i int) []byte {
	key := make([]byte, 8)
	binary.BigEndian.PutUint64(key, uint64(i))
	return key
}
