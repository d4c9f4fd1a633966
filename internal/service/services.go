package service

import (
	"fmt"

	"github.com/MKhiriev/go-pass-vault/internal/adapter"
	"github.com/MKhiriev/go-pass-vault/internal/config"
	"github.com/MKhiriev/go-pass-vault/internal/crypto"
	"github.com/MKhiriev/go-pass-vault/internal/platform"
	"github.com/MKhiriev/go-pass-vault/internal/utils"
)

// Services groups the vault engine's services around one platform adapter.
type Services struct {
	Sessions SessionManager
	Cache    CredentialCache
	Auth     AuthService
	Vault    VaultService
}

// NewServices builds every service from cfg. The cache registers with the
// session manager, so clearing the session also clears the cache.
func NewServices(p platform.Adapter, documents adapter.DocumentStore, identity adapter.IdentityProvider, cfg *config.ClientConfig) (*Services, error) {
	envelope, err := crypto.NewEnvelope(cfg.Crypto.CipherSuite)
	if err != nil {
		return nil, fmt.Errorf("create envelope: %w", err)
	}

	kdf := crypto.NewKeyDerivation(crypto.ArgonParams{
		Time:    cfg.Crypto.ArgonTime,
		Memory:  cfg.Crypto.ArgonMemory,
		Threads: cfg.Crypto.ArgonThreads,
	})

	sessions := NewSessionManager(p, cfg.Session)
	cache := NewCredentialCache(p, documents, sessions, envelope)

	return &Services{
		Sessions: sessions,
		Cache:    cache,
		Auth:     NewAuthService(identity, documents, kdf, sessions, cache),
		Vault:    NewVaultService(documents, sessions, cache, envelope, utils.NewUUIDGenerator()),
	}, nil
}
