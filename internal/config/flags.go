package config

import (
	"flag"
	"fmt"
	"net"
	"strconv"
	"strings"
	"time"
)

// NetAddress is the host and port of the vault API given with -a. It
// implements flag.Value.
type NetAddress struct {
	Host string
	Port int
}

// ParseFlags parses all configuration flags.
//
// Flags:
//
//	-a vault API address in format host:port
//	-platform platform storage adapter (sqlite, bolt, memory)
//	-d SQLite database path
//	-bolt-path bbolt database path
//	-c/-config json file path with configs
//	-request-timeout request timeout (e.g., "30s", "1m")
//	-health-path reachability probe path
//	-cipher cipher suite (aes-256-gcm, xchacha20-poly1305)
//	-session-timeout session lifetime (e.g., "15m")
//	-remember-me-timeout "remember me" session lifetime (e.g., "168h")
//	-expiry-check-cron cron spec of the session expiry sweep
//	-refresh-cron cron spec of the cache refresh
func ParseFlags() *StructuredConfig {
	var adapterAddress NetAddress
	var platform string
	var databaseDSN string
	var boltPath string
	var jsonConfigPath string
	var requestTimeout time.Duration
	var healthPath string
	var cipherSuite string
	var sessionTimeout time.Duration
	var rememberMeTimeout time.Duration
	var expiryCheckSpec string
	var refreshSpec string

	flag.Var(&adapterAddress, "a", "Vault API net address host:port")
	flag.StringVar(&platform, "platform", "", "Platform storage adapter: sqlite, bolt or memory")
	flag.StringVar(&databaseDSN, "d", "", "SQLite database path")
	flag.StringVar(&boltPath, "bolt-path", "", "bbolt database path")
	flag.StringVar(&jsonConfigPath, "c", "", "JSON config file path")
	flag.StringVar(&jsonConfigPath, "config", "", "JSON config file path (alias)")
	flag.DurationVar(&requestTimeout, "request-timeout", 0, "Request timeout (e.g., 30s, 1m)")
	flag.StringVar(&healthPath, "health-path", "", "Reachability probe path")
	flag.StringVar(&cipherSuite, "cipher", "", "Cipher suite: aes-256-gcm or xchacha20-poly1305")
	flag.DurationVar(&sessionTimeout, "session-timeout", 0, "Session lifetime (e.g., 15m)")
	flag.DurationVar(&rememberMeTimeout, "remember-me-timeout", 0, "Remember-me session lifetime (e.g., 168h)")
	flag.StringVar(&expiryCheckSpec, "expiry-check-cron", "", "Cron spec of the session expiry sweep")
	flag.StringVar(&refreshSpec, "refresh-cron", "", "Cron spec of the cache refresh")

	flag.Parse()

	return &StructuredConfig{
		App: App{
			Platform: platform,
		},
		Adapter: Adapter{
			HTTPAddress:    adapterAddress.String(),
			RequestTimeout: requestTimeout,
			HealthPath:     healthPath,
		},
		Storage: Storage{
			DB:   DB{DSN: databaseDSN},
			Bolt: Bolt{Path: boltPath},
		},
		Crypto: Crypto{
			CipherSuite: cipherSuite,
		},
		Session: Session{
			Timeout:           sessionTimeout,
			RememberMeTimeout: rememberMeTimeout,
		},
		Workers: Workers{
			ExpiryCheckSpec: expiryCheckSpec,
			RefreshSpec:     refreshSpec,
		},
		JSONFilePath: jsonConfigPath,
	}
}

// String returns the address in host:port form, bracketing IPv6 hosts. An
// unset address yields an empty string.
func (a *NetAddress) String() string {
	if a.Host == "" && a.Port == 0 {
		return ""
	}

	return net.JoinHostPort(a.Host, strconv.Itoa(a.Port))
}

// Set parses host:port into a. The host may be an IP literal (IPv6 in
// brackets) or a DNS name; the port must lie in 1-65535.
func (a *NetAddress) Set(s string) error {
	host, rawPort, err := net.SplitHostPort(s)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidNetAddress, err)
	}

	port, err := strconv.Atoi(rawPort)
	if err != nil || port < 1 || port > maxPort {
		return fmt.Errorf("%w: port %q is not in 1-%d", ErrInvalidNetAddress, rawPort, maxPort)
	}

	if net.ParseIP(host) == nil && !isHostname(host) {
		return fmt.Errorf("%w: bad host %q", ErrInvalidNetAddress, host)
	}

	a.Host = host
	a.Port = port
	return nil
}

const maxPort = 65535

// isHostname reports whether host is a syntactically valid DNS name.
func isHostname(host string) bool {
	if host == "" || len(host) > 253 {
		return false
	}

	for label := range strings.SplitSeq(strings.TrimSuffix(host, "."), ".") {
		if label == "" || len(label) > 63 || label[0] == '-' || label[len(label)-1] == '-' {
			return false
		}
		for _, r := range label {
			if !(r >= 'a' && r <= 'z' || r >= 'A' && r <= 'Z' || r >= '0' && r <= '9' || r == '-') {
				return false
			}
		}
	}
	return true
}
