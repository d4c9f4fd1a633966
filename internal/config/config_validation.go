// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"fmt"
	"slices"

	"github.com/robfig/cron/v3"
)

var (
	knownPlatforms    = []string{PlatformSQLite, PlatformBolt, PlatformMemory}
	knownCipherSuites = []string{"aes-256-gcm", "xchacha20-poly1305"}
)

// validate checks the merged [StructuredConfig]. Empty values are accepted
// here because the defaults layer may not have been applied (e.g. in tests);
// non-empty values must be well-formed.
func (cfg *StructuredConfig) validate() error {
	if cfg.App.Platform != "" && !slices.Contains(knownPlatforms, cfg.App.Platform) {
		return fmt.Errorf("%w: unknown platform %q", ErrInvalidAppConfigs, cfg.App.Platform)
	}

	if cfg.Crypto.CipherSuite != "" && !slices.Contains(knownCipherSuites, cfg.Crypto.CipherSuite) {
		return fmt.Errorf("%w: unknown cipher suite %q", ErrInvalidCryptoConfigs, cfg.Crypto.CipherSuite)
	}

	if cfg.Session.Timeout < 0 || cfg.Session.RememberMeTimeout < 0 {
		return ErrInvalidSessionConfigs
	}

	return nil
}

func (cfg *ClientConfig) validate() error {
	if !slices.Contains(knownPlatforms, cfg.App.Platform) {
		return ErrInvalidAppConfigs
	}

	switch cfg.App.Platform {
	case PlatformSQLite:
		if cfg.Storage.DB.DSN == "" {
			return ErrInvalidStorageConfigs
		}
	case PlatformBolt:
		if cfg.Storage.Bolt.Path == "" {
			return ErrInvalidStorageConfigs
		}
	}

	if cfg.Adapter.HTTPAddress == "" || cfg.Adapter.RequestTimeout <= 0 {
		return ErrInvalidAdapterConfigs
	}

	if !slices.Contains(knownCipherSuites, cfg.Crypto.CipherSuite) {
		return ErrInvalidCryptoConfigs
	}

	if cfg.Session.Timeout <= 0 || cfg.Session.RememberMeTimeout <= 0 {
		return ErrInvalidSessionConfigs
	}

	parser := cron.NewParser(cron.Minute | cron.Hour | cron.Dom | cron.Month | cron.Dow | cron.Descriptor)
	for _, spec := range []string{cfg.Workers.ExpiryCheckSpec, cfg.Workers.RefreshSpec} {
		if _, err := parser.Parse(spec); err != nil {
			return fmt.Errorf("%w: %w", ErrInvalidWorkerConfigs, err)
		}
	}

	return nil
}
