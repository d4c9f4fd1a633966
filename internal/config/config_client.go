package config

import (
	"fmt"
	"time"
)

// ClientApp holds application-level settings of the client runtime.
type ClientApp struct {
	// Platform names the platform storage adapter to construct.
	Platform string
	// Version is the semantic version of the build.
	Version string
}

// ClientAdapter holds network settings used by the remote adapters.
type ClientAdapter struct {
	// HTTPAddress is the vault API address.
	HTTPAddress string
	// RequestTimeout is the default timeout for outbound requests.
	RequestTimeout time.Duration
	// HealthPath is the reachability probe path.
	HealthPath string
}

// ClientDB contains local SQLite settings.
type ClientDB struct {
	// DSN is the SQLite database file path.
	DSN string
}

// ClientBolt contains local bbolt settings.
type ClientBolt struct {
	// Path is the bbolt database file path.
	Path string
}

// ClientStorage groups client storage backend settings.
type ClientStorage struct {
	// DB holds local database settings.
	DB ClientDB
	// Bolt holds bbolt settings.
	Bolt ClientBolt
}

// ClientCrypto holds key-derivation and cipher settings.
type ClientCrypto struct {
	CipherSuite  string
	ArgonTime    uint32
	ArgonMemory  uint32
	ArgonThreads uint8
}

// ClientSession holds session lifetime settings.
type ClientSession struct {
	Timeout           time.Duration
	RememberMeTimeout time.Duration
}

// ClientWorkers contains cron specifications of client background jobs.
type ClientWorkers struct {
	ExpiryCheckSpec string
	RefreshSpec     string
}

// ClientConfig is the top-level client configuration assembled from
// [StructuredConfig].
type ClientConfig struct {
	App     ClientApp
	Adapter ClientAdapter
	Storage ClientStorage
	Crypto  ClientCrypto
	Session ClientSession
	Workers ClientWorkers
}

// GetClientConfig builds and validates a client-specific config view from the
// merged structured configuration.
func GetClientConfig() (*ClientConfig, error) {
	cfg, err := GetStructuredConfig()
	if err != nil {
		return nil, fmt.Errorf("error get structured config: %w", err)
	}

	clientCfg := NewClientConfig(cfg)
	return clientCfg, clientCfg.validate()
}

// NewClientConfig maps the fields relevant to the client runtime.
func NewClientConfig(cfg *StructuredConfig) *ClientConfig {
	return &ClientConfig{
		App: ClientApp{
			Platform: cfg.App.Platform,
			Version:  cfg.App.Version,
		},
		Adapter: ClientAdapter{
			HTTPAddress:    cfg.Adapter.HTTPAddress,
			RequestTimeout: cfg.Adapter.RequestTimeout,
			HealthPath:     cfg.Adapter.HealthPath,
		},
		Storage: ClientStorage{
			DB:   ClientDB{DSN: cfg.Storage.DB.DSN},
			Bolt: ClientBolt{Path: cfg.Storage.Bolt.Path},
		},
		Crypto: ClientCrypto{
			CipherSuite:  cfg.Crypto.CipherSuite,
			ArgonTime:    cfg.Crypto.ArgonTime,
			ArgonMemory:  cfg.Crypto.ArgonMemory,
			ArgonThreads: cfg.Crypto.ArgonThreads,
		},
		Session: ClientSession{
			Timeout:           cfg.Session.Timeout,
			RememberMeTimeout: cfg.Session.RememberMeTimeout,
		},
		Workers: ClientWorkers{
			ExpiryCheckSpec: cfg.Workers.ExpiryCheckSpec,
			RefreshSpec:     cfg.Workers.RefreshSpec,
		},
	}
}
