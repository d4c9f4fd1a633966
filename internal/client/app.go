// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package client

import (
	"context"
	"fmt"

	"github.com/MKhiriev/go-pass-vault/internal/adapter"
	"github.com/MKhiriev/go-pass-vault/internal/config"
	"github.com/MKhiriev/go-pass-vault/internal/logger"
	"github.com/MKhiriev/go-pass-vault/internal/platform"
	"github.com/MKhiriev/go-pass-vault/internal/service"
	"github.com/MKhiriev/go-pass-vault/internal/workers"
	"github.com/MKhiriev/go-pass-vault/models"
)

// App owns every long-lived component of one client process.
type App struct {
	cfg      *config.ClientConfig
	log      *logger.Logger
	console  Console
	platform platform.Adapter
	services *service.Services
	workers  *workers.Workers
}

// NewApp builds the client from cfg. The platform adapter is chosen once,
// here, from cfg.App.Platform; opts are forwarded to its constructor.
func NewApp(ctx context.Context, cfg *config.ClientConfig, log *logger.Logger, console Console, opts ...platform.Option) (*App, error) {
	p, err := platform.New(ctx, cfg, log, opts...)
	if err != nil {
		return nil, fmt.Errorf("create platform adapter: %w", err)
	}

	app, err := newApp(cfg, log, console, p)
	if err != nil {
		_ = p.Close()
		return nil, err
	}
	return app, nil
}

func newApp(cfg *config.ClientConfig, log *logger.Logger, console Console, p platform.Adapter) (*App, error) {
	documents, err := adapter.NewHTTPDocumentStore(cfg.Adapter, log)
	if err != nil {
		return nil, fmt.Errorf("create document store adapter: %w", err)
	}

	identity, err := adapter.NewHTTPIdentityProvider(cfg.Adapter, log)
	if err != nil {
		return nil, fmt.Errorf("create identity provider adapter: %w", err)
	}

	services, err := service.NewServices(p, documents, identity, cfg)
	if err != nil {
		return nil, fmt.Errorf("create services: %w", err)
	}

	ws := workers.NewWorkers(log)
	if err = ws.Add(cfg.Workers.ExpiryCheckSpec, workers.NewSessionExpiryWorker(services.Sessions)); err != nil {
		return nil, err
	}
	if err = ws.Add(cfg.Workers.RefreshSpec, workers.NewCacheRefreshWorker(services.Sessions, services.Cache, services.Auth)); err != nil {
		return nil, err
	}

	log.Info().
		Str("platform", p.Info().Platform).
		Bool("offline_vault", p.Info().Features.OfflineVault).
		Msg("client app created")

	return &App{
		cfg:      cfg,
		log:      log,
		console:  console,
		platform: p,
		services: services,
		workers:  ws,
	}, nil
}

// Services exposes the wired services.
func (a *App) Services() *service.Services {
	return a.services
}

// Run logs the user in, prints the vault listing and keeps the background
// workers running until ctx is done. The platform adapter is closed on
// return.
func (a *App) Run(ctx context.Context) error {
	defer a.shutdown()
	ctx = a.log.WithContext(ctx)

	userID, err := a.login(ctx)
	if err != nil {
		return err
	}

	if err = a.printVault(ctx, userID); err != nil {
		a.log.Err(err).Str("user_id", userID).Msg("failed to list vault")
		fmt.Fprintf(a.console, "vault unavailable: %v\n", err)
	}

	if err = a.workers.Start(ctx); err != nil {
		return fmt.Errorf("start workers: %w", err)
	}

	<-ctx.Done()
	a.log.Info().Msg("client shutting down")
	return nil
}

func (a *App) login(ctx context.Context) (string, error) {
	email, err := a.console.ReadLine("Email: ")
	if err != nil {
		return "", err
	}
	password, err := a.console.ReadSecret("Master password: ")
	if err != nil {
		return "", err
	}

	res, err := a.services.Auth.Login(ctx, email, password, models.SessionOptions{})
	if err != nil {
		return "", fmt.Errorf("login: %w", err)
	}

	if res.RequiresMFA() {
		code, err := a.console.ReadLine("MFA code: ")
		if err != nil {
			return "", err
		}
		res, err = a.services.Auth.ConfirmMFA(ctx, res.MFAToken, code, password, models.SessionOptions{})
		if err != nil {
			return "", fmt.Errorf("confirm mfa: %w", err)
		}
	}

	fmt.Fprintf(a.console, "Logged in, session expires at %s\n", res.Session.ExpiresAt.Local().Format("15:04:05"))
	return res.UserID, nil
}

func (a *App) printVault(ctx context.Context, userID string) error {
	creds, err := a.services.Cache.GetAllWithFallback(ctx, userID)
	if err != nil {
		return err
	}

	fmt.Fprintf(a.console, "%d item(s)\n", len(creds))
	for _, c := range creds {
		fmt.Fprintf(a.console, "  %-32s %-24s %s\n", c.Title, c.Username, c.URL)
	}
	return nil
}

func (a *App) shutdown() {
	a.workers.Stop()

	if err := a.platform.Close(); err != nil {
		a.log.Err(err).Msg("failed to close platform adapter")
	}
}
