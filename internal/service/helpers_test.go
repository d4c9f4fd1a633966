package service

import (
	"context"
	"crypto/rand"
	"encoding/json"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/MKhiriev/go-pass-vault/internal/config"
	"github.com/MKhiriev/go-pass-vault/internal/crypto"
	"github.com/MKhiriev/go-pass-vault/internal/logger"
	"github.com/MKhiriev/go-pass-vault/models"
)

func testContext() context.Context {
	return logger.Nop().WithContext(context.Background())
}

func testKDF() crypto.KeyDerivation {
	return crypto.NewKeyDerivation(crypto.ArgonParams{Time: 1, Memory: 8 * 1024, Threads: 1})
}

func testEnvelope(t *testing.T) crypto.Envelope {
	t.Helper()
	env, err := crypto.NewEnvelope(crypto.CipherAESGCM)
	require.NoError(t, err)
	return env
}

func testSessionConfig() config.ClientSession {
	return config.ClientSession{Timeout: 15 * time.Minute, RememberMeTimeout: 7 * 24 * time.Hour}
}

func randomKey(t *testing.T) []byte {
	t.Helper()
	key := make([]byte, crypto.KeySize)
	_, err := rand.Read(key)
	require.NoError(t, err)
	return key
}

// fakeClock is a manually advanced clock.
type fakeClock struct {
	mu  sync.Mutex
	now time.Time
}

func newFakeClock() *fakeClock {
	return &fakeClock{now: time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)}
}

func (c *fakeClock) Now() time.Time {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.now
}

func (c *fakeClock) Advance(d time.Duration) {
	c.mu.Lock()
	c.now = c.now.Add(d)
	c.mu.Unlock()
}

// sealItem builds a remote item the way the document store holds it.
func sealItem(t *testing.T, env crypto.Envelope, key []byte, id string, content models.ItemContent) models.RemoteEncryptedItem {
	t.Helper()
	plain, err := json.Marshal(content)
	require.NoError(t, err)

	sealed, err := env.Seal(key, plain)
	require.NoError(t, err)

	return models.RemoteEncryptedItem{
		ID:            id,
		ContentCipher: sealed.ContentCipher,
		ItemKeyCipher: sealed.ItemKeyCipher,
	}
}

type fixedIDs string

func (f fixedIDs) Generate() string {
	return string(f)
}
