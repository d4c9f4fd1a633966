package client

import (
	"bytes"
	"context"
	"encoding/base64"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MKhiriev/go-pass-vault/internal/config"
	"github.com/MKhiriev/go-pass-vault/internal/crypto"
	"github.com/MKhiriev/go-pass-vault/internal/logger"
	"github.com/MKhiriev/go-pass-vault/internal/platform"
	"github.com/MKhiriev/go-pass-vault/models"
)

const (
	testEmail    = "alice@example.com"
	testPassword = "correct horse"
	testUserID   = "user-1"
)

var testSalt = []byte("0123456789abcdef")

// scriptedConsole answers prompts from a fixed list of lines.
type scriptedConsole struct {
	mu    sync.Mutex
	lines []string
	out   bytes.Buffer
}

func (c *scriptedConsole) Write(p []byte) (int, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.out.Write(p)
}

func (c *scriptedConsole) ReadLine(string) (string, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if len(c.lines) == 0 {
		return "", ErrEmptyInput
	}
	line := c.lines[0]
	c.lines = c.lines[1:]
	return line, nil
}

func (c *scriptedConsole) ReadSecret(prompt string) (string, error) {
	return c.ReadLine(prompt)
}

func (c *scriptedConsole) Output() string {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.out.String()
}

func testConfig(address string) *config.ClientConfig {
	return &config.ClientConfig{
		App:     config.ClientApp{Platform: config.PlatformMemory},
		Adapter: config.ClientAdapter{HTTPAddress: address, RequestTimeout: 5 * time.Second, HealthPath: "/health"},
		Crypto:  config.ClientCrypto{CipherSuite: crypto.CipherAESGCM, ArgonTime: 1, ArgonMemory: 8 * 1024, ArgonThreads: 1},
		Session: config.ClientSession{Timeout: 15 * time.Minute, RememberMeTimeout: time.Hour},
		Workers: config.ClientWorkers{ExpiryCheckSpec: "@every 1h", RefreshSpec: "@every 1h"},
	}
}

// newVaultServer fakes the identity provider and the document store for a
// single user whose vault holds one item.
func newVaultServer(t *testing.T, cfg config.ClientCrypto) *httptest.Server {
	t.Helper()

	kdf := crypto.NewKeyDerivation(crypto.ArgonParams{Time: cfg.ArgonTime, Memory: cfg.ArgonMemory, Threads: cfg.ArgonThreads})
	key, err := kdf.DeriveUserSecretKey(testPassword, testSalt)
	require.NoError(t, err)

	env, err := crypto.NewEnvelope(cfg.CipherSuite)
	require.NoError(t, err)

	content, err := json.Marshal(models.ItemContent{Title: "GitHub", Username: "alice", Secret: "pw", URL: "https://github.com"})
	require.NoError(t, err)
	sealed, err := env.Seal(key, content)
	require.NoError(t, err)

	items := []models.RemoteEncryptedItem{{ID: "item-1", ContentCipher: sealed.ContentCipher, ItemKeyCipher: sealed.ItemKeyCipher}}

	mux := http.NewServeMux()
	mux.HandleFunc("POST /api/auth/login", func(w http.ResponseWriter, r *http.Request) {
		var req struct {
			Email    string `json:"email"`
			Password string `json:"password"`
		}
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil || req.Password != testPassword {
			w.WriteHeader(http.StatusUnauthorized)
			return
		}
		w.Header().Set("Content-Type", "application/json")
		_ = json.NewEncoder(w).Encode(models.AuthResult{Bundle: &models.CredentialBundle{
			UserID: testUserID,
			Salt:   base64.StdEncoding.EncodeToString(testSalt),
			Token:  "opaque-token",
		}})
	})
	mux.HandleFunc("GET /api/users/{userID}/items", func(w http.ResponseWriter, r *http.Request) {
		if r.Header.Get("Authorization") != "Bearer opaque-token" || r.PathValue("userID") != testUserID {
			w.WriteHeader(http.StatusUnauthorized)
			return
		}
		w.Header().Set("Content-Type", "application/json")
		_ = json.NewEncoder(w).Encode(items)
	})

	srv := httptest.NewServer(mux)
	t.Cleanup(srv.Close)
	return srv
}

func TestApp_RunLogsInAndListsVault(t *testing.T) {
	cfg := testConfig("")
	srv := newVaultServer(t, cfg.Crypto)
	cfg.Adapter.HTTPAddress = srv.URL

	console := &scriptedConsole{lines: []string{testEmail, testPassword}}
	app, err := NewApp(context.Background(), cfg, logger.Nop(), console)
	require.NoError(t, err)

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() { done <- app.Run(ctx) }()

	assert.Eventually(t, func() bool {
		return strings.Contains(console.Output(), "1 item(s)")
	}, 5*time.Second, 20*time.Millisecond)
	assert.Contains(t, console.Output(), "GitHub")
	assert.NotContains(t, console.Output(), "pw\n")

	secret, err := app.Services().Cache.ReadSecret(context.Background(), "item-1")
	require.NoError(t, err)
	assert.Equal(t, "pw", secret)

	cancel()
	select {
	case err := <-done:
		assert.NoError(t, err)
	case <-time.After(5 * time.Second):
		t.Fatal("Run did not return after cancel")
	}
}

func TestApp_RunWrongPassword(t *testing.T) {
	cfg := testConfig("")
	srv := newVaultServer(t, cfg.Crypto)
	cfg.Adapter.HTTPAddress = srv.URL

	console := &scriptedConsole{lines: []string{testEmail, "wrong"}}
	app, err := NewApp(context.Background(), cfg, logger.Nop(), console)
	require.NoError(t, err)

	err = app.Run(context.Background())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "login")
}

func TestApp_RunWithoutInput(t *testing.T) {
	cfg := testConfig("http://127.0.0.1:1")

	app, err := NewApp(context.Background(), cfg, logger.Nop(), &scriptedConsole{})
	require.NoError(t, err)

	assert.ErrorIs(t, app.Run(context.Background()), ErrEmptyInput)
}

func TestNewApp_UnknownPlatform(t *testing.T) {
	cfg := testConfig("http://127.0.0.1:1")
	cfg.App.Platform = "keychain"

	_, err := NewApp(context.Background(), cfg, logger.Nop(), &scriptedConsole{})
	assert.ErrorIs(t, err, platform.ErrUnknownPlatform)
}

func TestNewApp_InvalidWorkerSpec(t *testing.T) {
	cfg := testConfig("http://127.0.0.1:1")
	cfg.Workers.RefreshSpec = "whenever"

	_, err := NewApp(context.Background(), cfg, logger.Nop(), &scriptedConsole{})
	require.Error(t, err)
	assert.False(t, errors.Is(err, platform.ErrUnknownPlatform))
}

func TestTerminalConsole_ReadLine(t *testing.T) {
	var out bytes.Buffer
	c := NewTerminalConsole(strings.NewReader("alice\r\nsecret"), &out)

	line, err := c.ReadLine("Email: ")
	require.NoError(t, err)
	assert.Equal(t, "alice", line)

	secret, err := c.ReadSecret("Password: ")
	require.NoError(t, err)
	assert.Equal(t, "secret", secret)

	_, err = c.ReadLine("More: ")
	assert.ErrorIs(t, err, ErrEmptyInput)

	assert.Equal(t, "Email: Password: More: ", out.String())
}
