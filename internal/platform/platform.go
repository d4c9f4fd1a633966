// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package platform

import (
	"context"
	"fmt"

	"github.com/MKhiriev/go-pass-vault/internal/config"
	"github.com/MKhiriev/go-pass-vault/internal/logger"
)

// New constructs the adapter named by cfg.App.Platform and attaches an HTTP
// reachability prober for the configured document store.
func New(ctx context.Context, cfg *config.ClientConfig, log *logger.Logger, opts ...Option) (Adapter, error) {
	prober, err := NewHTTPProber(cfg.Adapter.HTTPAddress, cfg.Adapter.HealthPath, cfg.Adapter.RequestTimeout)
	if err != nil {
		return nil, fmt.Errorf("build reachability prober: %w", err)
	}
	opts = append([]Option{WithProber(prober)}, opts...)

	log.Info().Str("platform", cfg.App.Platform).Msg("selecting platform adapter")

	switch cfg.App.Platform {
	case config.PlatformSQLite:
		return NewSQLite(ctx, cfg.Storage.DB, log, opts...)
	case config.PlatformBolt:
		return NewBolt(ctx, cfg.Storage.Bolt, log, opts...)
	case config.PlatformMemory:
		return NewMemory(opts...), nil
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownPlatform, cfg.App.Platform)
	}
}
