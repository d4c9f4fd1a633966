package platform

import (
	"context"
	"fmt"
	"path/filepath"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MKhiriev/go-pass-vault/internal/config"
	"github.com/MKhiriev/go-pass-vault/internal/logger"
	"github.com/MKhiriev/go-pass-vault/models"
)

func testContext() context.Context {
	return logger.Nop().WithContext(context.Background())
}

type adapterFactory struct {
	name string
	open func(t *testing.T) Adapter
}

func adapterFactories() []adapterFactory {
	return []adapterFactory{
		{
			name: config.PlatformSQLite,
			open: func(t *testing.T) Adapter {
				cfg := config.ClientDB{DSN: filepath.Join(t.TempDir(), "vault.db")}
				a, err := NewSQLite(testContext(), cfg, logger.Nop(), WithClipboard(&MemoryClipboard{}))
				require.NoError(t, err)
				t.Cleanup(func() { _ = a.Close() })
				return a
			},
		},
		{
			name: config.PlatformBolt,
			open: func(t *testing.T) Adapter {
				cfg := config.ClientBolt{Path: filepath.Join(t.TempDir(), "nested", "vault.bolt")}
				a, err := NewBolt(testContext(), cfg, logger.Nop())
				require.NoError(t, err)
				t.Cleanup(func() { _ = a.Close() })
				return a
			},
		},
		{
			name: config.PlatformMemory,
			open: func(t *testing.T) Adapter {
				a := NewMemory()
				t.Cleanup(func() { _ = a.Close() })
				return a
			},
		},
	}
}

func sampleCredentials(n int) []models.CachedCredential {
	creds := make([]models.CachedCredential, n)
	for i := range creds {
		creds[i] = models.CachedCredential{
			ID:            fmt.Sprintf("item-%03d", n-i),
			Title:         fmt.Sprintf("Title %d", i),
			Username:      "alice",
			URL:           "https://example.com",
			ItemKeyCipher: models.CipheredItemKey(fmt.Sprintf("ik-%d", i)),
			SecretCipher:  models.CipheredSecret(fmt.Sprintf("sc-%d", i)),
		}
	}
	return creds
}

func TestAdapter_UserSecretKey(t *testing.T) {
	for _, f := range adapterFactories() {
		t.Run(f.name, func(t *testing.T) {
			ctx := testContext()
			a := f.open(t)

			_, err := a.GetUserSecretKey(ctx)
			assert.ErrorIs(t, err, ErrNotFound)

			key := []byte("0123456789abcdef0123456789abcdef")
			require.NoError(t, a.SetUserSecretKey(ctx, key))
			assert.Equal(t, "0123456789abcdef0123456789abcdef", string(key), "caller's key must stay intact")

			got, err := a.GetUserSecretKey(ctx)
			require.NoError(t, err)
			assert.Equal(t, key, got)

			assert.ErrorIs(t, a.SetUserSecretKey(ctx, nil), ErrEmptyKey)

			require.NoError(t, a.DeleteUserSecretKey(ctx))
			_, err = a.GetUserSecretKey(ctx)
			assert.ErrorIs(t, err, ErrNotFound)

			require.NoError(t, a.DeleteUserSecretKey(ctx), "deleting twice is not an error")
		})
	}
}

func TestAdapter_SessionMetadataAndClearSessionState(t *testing.T) {
	for _, f := range adapterFactories() {
		t.Run(f.name, func(t *testing.T) {
			ctx := testContext()
			a := f.open(t)

			_, err := a.GetSessionMetadata(ctx)
			assert.ErrorIs(t, err, ErrNotFound)

			require.NoError(t, a.SetSessionMetadata(ctx, `{"expiresAt":"x"}`))
			require.NoError(t, a.SetSessionMetadata(ctx, `{"expiresAt":"y"}`))
			got, err := a.GetSessionMetadata(ctx)
			require.NoError(t, err)
			assert.Equal(t, `{"expiresAt":"y"}`, got)

			require.NoError(t, a.SetUserSecretKey(ctx, []byte("k")))
			require.NoError(t, a.Credentials().ReplaceAll(ctx, sampleCredentials(2)))

			require.NoError(t, a.ClearSessionState(ctx))

			_, err = a.GetSessionMetadata(ctx)
			assert.ErrorIs(t, err, ErrNotFound)
			_, err = a.GetUserSecretKey(ctx)
			assert.ErrorIs(t, err, ErrNotFound)

			creds, err := a.Credentials().GetAll(ctx)
			require.NoError(t, err)
			assert.Len(t, creds, 2, "session state clear leaves the cache to the session hooks")
		})
	}
}

func TestAdapter_EncryptedVault(t *testing.T) {
	for _, f := range adapterFactories() {
		t.Run(f.name, func(t *testing.T) {
			ctx := testContext()
			a := f.open(t)

			if !a.Info().Features.OfflineVault {
				_, err := a.GetEncryptedVault(ctx)
				assert.ErrorIs(t, err, ErrOfflineVaultUnsupported)
				assert.ErrorIs(t, a.SetEncryptedVault(ctx, "blob"), ErrOfflineVaultUnsupported)
				assert.ErrorIs(t, a.DeleteEncryptedVault(ctx), ErrOfflineVaultUnsupported)
				return
			}

			_, err := a.GetEncryptedVault(ctx)
			assert.ErrorIs(t, err, ErrNotFound)

			require.NoError(t, a.SetEncryptedVault(ctx, `[{"id":"1"}]`))
			got, err := a.GetEncryptedVault(ctx)
			require.NoError(t, err)
			assert.Equal(t, `[{"id":"1"}]`, got)

			require.NoError(t, a.DeleteEncryptedVault(ctx))
			_, err = a.GetEncryptedVault(ctx)
			assert.ErrorIs(t, err, ErrNotFound)
		})
	}
}

func TestCredentialStore_ReplaceAllKeepsOrder(t *testing.T) {
	for _, f := range adapterFactories() {
		t.Run(f.name, func(t *testing.T) {
			ctx := testContext()
			store := f.open(t).Credentials()

			first := sampleCredentials(12)
			require.NoError(t, store.ReplaceAll(ctx, first))

			got, err := store.GetAll(ctx)
			require.NoError(t, err)
			assert.Equal(t, first, got)

			second := sampleCredentials(3)
			require.NoError(t, store.ReplaceAll(ctx, second))

			got, err = store.GetAll(ctx)
			require.NoError(t, err)
			assert.Equal(t, second, got, "replace must not merge with the previous generation")

			one, err := store.Get(ctx, second[1].ID)
			require.NoError(t, err)
			assert.Equal(t, second[1], one)

			_, err = store.Get(ctx, "item-999")
			assert.ErrorIs(t, err, ErrNotFound)
		})
	}
}

func TestCredentialStore_CancelledReplaceWritesNothing(t *testing.T) {
	for _, f := range adapterFactories() {
		t.Run(f.name, func(t *testing.T) {
			ctx := testContext()
			store := f.open(t).Credentials()

			before := sampleCredentials(4)
			require.NoError(t, store.ReplaceAll(ctx, before))

			cancelled, cancel := context.WithCancel(ctx)
			cancel()
			assert.Error(t, store.ReplaceAll(cancelled, sampleCredentials(1)))

			got, err := store.GetAll(ctx)
			require.NoError(t, err)
			assert.Equal(t, before, got)
		})
	}
}

func TestCredentialStore_Clear(t *testing.T) {
	for _, f := range adapterFactories() {
		t.Run(f.name, func(t *testing.T) {
			ctx := testContext()
			store := f.open(t).Credentials()

			require.NoError(t, store.ReplaceAll(ctx, sampleCredentials(5)))
			require.NoError(t, store.Clear(ctx))

			got, err := store.GetAll(ctx)
			require.NoError(t, err)
			assert.Empty(t, got)

			_, err = store.Get(ctx, "item-001")
			assert.ErrorIs(t, err, ErrNotFound)
		})
	}
}

func TestAdapter_Info(t *testing.T) {
	for _, f := range adapterFactories() {
		t.Run(f.name, func(t *testing.T) {
			info := f.open(t).Info()
			assert.Equal(t, f.name, info.Platform)
			assert.True(t, info.Features.AtomicBatch)
			assert.False(t, info.Features.Biometric)
			assert.Equal(t, f.name != config.PlatformMemory, info.Features.OfflineVault)
		})
	}
}

func TestAdapter_ClipboardAndProber(t *testing.T) {
	for _, f := range adapterFactories() {
		t.Run(f.name, func(t *testing.T) {
			ctx := testContext()
			a := f.open(t)

			require.NoError(t, a.CopyToClipboard(ctx, "hunter2"))
			text, err := a.ReadClipboard(ctx)
			require.NoError(t, err)
			assert.Equal(t, "hunter2", text)

			assert.False(t, a.IsOnline(ctx), "default prober reports offline")
		})
	}
}

func TestMemoryCredentials_ConcurrentReadersSeeWholeGenerations(t *testing.T) {
	ctx := testContext()
	store := newMemoryCredentials()

	small, large := sampleCredentials(2), sampleCredentials(50)
	require.NoError(t, store.ReplaceAll(ctx, small))

	var wg sync.WaitGroup
	wg.Add(2)
	go func() {
		defer wg.Done()
		for i := 0; i < 200; i++ {
			next := small
			if i%2 == 0 {
				next = large
			}
			_ = store.ReplaceAll(ctx, next)
		}
	}()
	go func() {
		defer wg.Done()
		for i := 0; i < 200; i++ {
			got, err := store.GetAll(ctx)
			if err != nil {
				t.Error(err)
				return
			}
			if len(got) != len(small) && len(got) != len(large) {
				t.Errorf("observed partial generation of %d entries", len(got))
				return
			}
		}
	}()
	wg.Wait()

	assert.Equal(t, uint64(201), store.Generation())
}
