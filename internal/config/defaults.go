package config

import "time"

// Platform names accepted in App.Platform.
const (
	PlatformSQLite = "sqlite"
	PlatformBolt   = "bolt"
	PlatformMemory = "memory"
)

// Defaults applied to every field left unset by the other sources.
const (
	DefaultPlatform          = PlatformSQLite
	DefaultAdapterAddress    = "localhost:8080"
	DefaultRequestTimeout    = 30 * time.Second
	DefaultHealthPath        = "/api/health"
	DefaultDSN               = "go-pass-vault.db"
	DefaultBoltPath          = "go-pass-vault.bolt"
	DefaultCipherSuite       = "aes-256-gcm"
	DefaultSessionTimeout    = 15 * time.Minute
	DefaultRememberMeTimeout = 7 * 24 * time.Hour
	DefaultExpiryCheckSpec   = "@every 1m"
	DefaultRefreshSpec       = "@every 15m"
)

// defaultConfig returns the lowest-priority configuration layer.
func defaultConfig() *StructuredConfig {
	return &StructuredConfig{
		App: App{
			Platform: DefaultPlatform,
		},
		Adapter: Adapter{
			HTTPAddress:    DefaultAdapterAddress,
			RequestTimeout: DefaultRequestTimeout,
			HealthPath:     DefaultHealthPath,
		},
		Storage: Storage{
			DB:   DB{DSN: DefaultDSN},
			Bolt: Bolt{Path: DefaultBoltPath},
		},
		Crypto: Crypto{
			CipherSuite: DefaultCipherSuite,
		},
		Session: Session{
			Timeout:           DefaultSessionTimeout,
			RememberMeTimeout: DefaultRememberMeTimeout,
		},
		Workers: Workers{
			ExpiryCheckSpec: DefaultExpiryCheckSpec,
			RefreshSpec:     DefaultRefreshSpec,
		},
	}
}
